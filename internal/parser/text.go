package parser

import (
	"fmt"
	"io"

	"github.com/dgallion1/docvox/internal/doctree"
)

// TextParser handles plain text files. Blank lines separate paragraphs;
// line breaks inside a paragraph are kept in its text.
type TextParser struct{}

func (p *TextParser) Parse(r io.Reader, filename string) (*doctree.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read text: %w", err)
	}

	b := doctree.NewBuilder(baseTitle(filename, ".txt"), "body")
	for _, para := range splitParagraphs(string(data)) {
		b.Text(b.Element(b.Root(), "p"), para)
	}
	return b.Build(), nil
}
