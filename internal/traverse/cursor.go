package traverse

import (
	"fmt"
	"unicode/utf8"

	"github.com/dgallion1/docvox/internal/doctree"
)

// Cursor is a position in the flattened text stream of a document: Index is
// a byte offset into Text, the text of Node cached when the cursor moved
// there. Element nodes carry empty text. Cursors are plain values; copying
// one yields an independent cursor.
type Cursor struct {
	Node  doctree.NodeID `json:"node"`
	Index int            `json:"index"`
	Text  string         `json:"-"`
}

// NewCursor places a cursor at byte offset index of node.
func NewCursor(doc *doctree.Document, node doctree.NodeID, index int) (Cursor, error) {
	if err := doc.Check(node); err != nil {
		return Cursor{}, err
	}
	c := Cursor{Node: node, Index: index, Text: nodeText(doc, node)}
	if index < 0 || index > len(c.Text) {
		return Cursor{}, fmt.Errorf("index %d outside [0,%d] of node %d: %w", index, len(c.Text), node, doctree.ErrInvalidArgument)
	}
	return c, nil
}

// Validate checks that c points into doc at a legal offset.
func Validate(doc *doctree.Document, c Cursor) error {
	if err := doc.Check(c.Node); err != nil {
		return err
	}
	if c.Index < 0 || c.Index > len(c.Text) {
		return fmt.Errorf("cursor index %d outside [0,%d]: %w", c.Index, len(c.Text), doctree.ErrInvalidArgument)
	}
	return nil
}

func nodeText(doc *doctree.Document, n doctree.NodeID) string {
	if doc.IsText(n) {
		return doc.Text(n)
	}
	return ""
}

func (c *Cursor) moveTo(doc *doctree.Document, n doctree.NodeID, dir Direction) {
	c.Node = n
	c.Text = nodeText(doc, n)
	if dir == Forward {
		c.Index = 0
	} else {
		c.Index = len(c.Text)
	}
}

// read consumes one rune in direction dir, reporting false when the cached
// text is exhausted on that side.
func (c *Cursor) read(dir Direction) (rune, int, bool) {
	if dir == Forward {
		if c.Index >= len(c.Text) {
			return 0, 0, false
		}
		r, size := utf8.DecodeRuneInString(c.Text[c.Index:])
		c.Index += size
		return r, size, true
	}
	if c.Index <= 0 {
		return 0, 0, false
	}
	r, size := utf8.DecodeLastRuneInString(c.Text[:c.Index])
	c.Index -= size
	return r, size, true
}
