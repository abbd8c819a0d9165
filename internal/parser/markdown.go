package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/dgallion1/docvox/internal/doctree"
)

// MarkdownParser handles Markdown files using goldmark. The AST is mapped
// onto the HTML elements goldmark would render.
type MarkdownParser struct{}

func (p *MarkdownParser) Parse(r io.Reader, filename string) (*doctree.Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(src))

	c := &mdConverter{
		b:   doctree.NewBuilder(baseTitle(filename, ".md", ".markdown"), "body"),
		src: src,
	}
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		c.block(c.b.Root(), n)
	}
	return c.b.Build(), nil
}

type mdConverter struct {
	b   *doctree.Builder
	src []byte
}

func (c *mdConverter) block(parent doctree.NodeID, n ast.Node) {
	switch node := n.(type) {
	case *ast.Heading:
		c.inlines(c.b.Element(parent, fmt.Sprintf("h%d", node.Level)), n)
	case *ast.Paragraph:
		c.inlines(c.b.Element(parent, "p"), n)
	case *ast.TextBlock:
		// Tight list items hold their text without a paragraph.
		c.inlines(parent, n)
	case *ast.List:
		tag := "ul"
		if node.IsOrdered() {
			tag = "ol"
		}
		c.blocks(c.b.Element(parent, tag), n)
	case *ast.ListItem:
		c.blocks(c.b.Element(parent, "li"), n)
	case *ast.Blockquote:
		c.blocks(c.b.Element(parent, "blockquote"), n)
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		code := c.b.Element(c.b.Element(parent, "pre"), "code")
		if t := c.lines(n); t != "" {
			c.b.Text(code, t)
		}
	case *ast.ThematicBreak:
		c.b.Element(parent, "hr")
	case *ast.HTMLBlock:
		// Raw HTML is not interpreted.
	default:
		c.blocks(parent, n)
	}
}

func (c *mdConverter) blocks(parent doctree.NodeID, n ast.Node) {
	for ch := n.FirstChild(); ch != nil; ch = ch.NextSibling() {
		c.block(parent, ch)
	}
}

func (c *mdConverter) inlines(parent doctree.NodeID, n ast.Node) {
	for ch := n.FirstChild(); ch != nil; ch = ch.NextSibling() {
		switch node := ch.(type) {
		case *ast.Text:
			t := string(node.Value(c.src))
			if node.HardLineBreak() || node.SoftLineBreak() {
				t += "\n"
			}
			if t != "" {
				c.b.Text(parent, t)
			}
		case *ast.String:
			c.b.Text(parent, string(node.Value))
		case *ast.Emphasis:
			tag := "em"
			if node.Level >= 2 {
				tag = "strong"
			}
			c.inlines(c.b.Element(parent, tag), ch)
		case *ast.CodeSpan:
			c.inlines(c.b.Element(parent, "code"), ch)
		case *ast.Link:
			attrs := []string{"href", string(node.Destination)}
			if len(node.Title) > 0 {
				attrs = append(attrs, "title", string(node.Title))
			}
			c.inlines(c.b.Element(parent, "a", attrs...), ch)
		case *ast.AutoLink:
			a := c.b.Element(parent, "a", "href", string(node.URL(c.src)))
			c.b.Text(a, string(node.Label(c.src)))
		case *ast.Image:
			c.b.Element(parent, "img", "src", string(node.Destination), "alt", c.plain(ch))
		case *ast.RawHTML:
		default:
			c.inlines(parent, ch)
		}
	}
}

// plain concatenates the text below an inline node.
func (c *mdConverter) plain(n ast.Node) string {
	var buf strings.Builder
	for ch := n.FirstChild(); ch != nil; ch = ch.NextSibling() {
		switch node := ch.(type) {
		case *ast.Text:
			buf.Write(node.Value(c.src))
		case *ast.String:
			buf.Write(node.Value)
		default:
			buf.WriteString(c.plain(ch))
		}
	}
	return buf.String()
}

func (c *mdConverter) lines(n ast.Node) string {
	var buf strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		buf.Write(line.Value(c.src))
	}
	return strings.TrimRight(buf.String(), "\n")
}
