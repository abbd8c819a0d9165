package parser

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/dgallion1/docvox/internal/doctree"
)

// CSVParser handles CSV files. The first record becomes the header row of
// a table; data rows are grouped into labeled row groups.
type CSVParser struct{}

// rowGroupSize bounds the rows per tbody so long sheets stay navigable.
const rowGroupSize = 20

func (p *CSVParser) Parse(r io.Reader, filename string) (*doctree.Document, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	title := baseTitle(filename, ".csv")
	b := doctree.NewBuilder(title, "body")
	if len(records) == 0 {
		return b.Build(), nil
	}

	table := b.Element(b.Root(), "table")
	b.Text(b.Element(table, "caption"), title)

	headers := records[0]
	head := b.Element(b.Element(table, "thead"), "tr")
	for _, h := range headers {
		b.Text(b.Element(head, "th", "scope", "col"), h)
	}

	dataRows := records[1:]
	for i := 0; i < len(dataRows); i += rowGroupSize {
		end := min(i+rowGroupSize, len(dataRows))
		// Row numbers are 1-indexed and count the header.
		group := b.Element(table, "tbody", "aria-label", fmt.Sprintf("Rows %d-%d", i+2, end+1))
		for _, row := range dataRows[i:end] {
			tr := b.Element(group, "tr")
			for j, cell := range row {
				var td doctree.NodeID
				if j < len(headers) {
					td = b.Element(tr, "td", "headers", headers[j])
				} else {
					td = b.Element(tr, "td")
				}
				if cell != "" {
					b.Text(td, cell)
				}
			}
		}
	}
	return b.Build(), nil
}
