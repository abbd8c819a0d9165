package describe

import (
	"github.com/dgallion1/docvox/internal/doctree"
	"github.com/dgallion1/docvox/internal/traverse"
)

// attrSemantics reads every fact straight from attributes so tests can
// state expectations without a real role table.
type attrSemantics struct {
	doc *doctree.Document
}

var testRoles = map[string]string{
	"a":  "Link",
	"ul": "List",
	"h1": "Heading 1",
}

func (s attrSemantics) Name(n doctree.NodeID, recursive bool) string {
	if s.doc.IsText(n) {
		return s.doc.Text(n)
	}
	if label, ok := s.doc.Attr(n, "aria-label"); ok {
		return label
	}
	if recursive {
		return s.doc.TextContent(n)
	}
	return ""
}

func (s attrSemantics) Value(n doctree.NodeID) string {
	v, _ := s.doc.Attr(n, "value")
	return v
}

func (s attrSemantics) Role(n doctree.NodeID, _ Verbosity) string {
	if s.doc.IsText(n) {
		return ""
	}
	if role, ok := s.doc.Attr(n, "role"); ok {
		return role
	}
	return testRoles[s.doc.Tag(n)]
}

func (s attrSemantics) State(n doctree.NodeID, verbose bool) string {
	if !verbose || s.doc.IsText(n) {
		return ""
	}
	v, _ := s.doc.Attr(n, "data-state")
	return v
}

func (s attrSemantics) Personality(n doctree.NodeID) Personality {
	if s.doc.IsText(n) {
		return ""
	}
	v, _ := s.doc.Attr(n, "data-voice")
	return Personality(v)
}

func (s attrSemantics) Earcon(n doctree.NodeID) Earcon {
	if s.doc.IsText(n) {
		return ""
	}
	v, _ := s.doc.Attr(n, "data-earcon")
	return Earcon(v)
}

type attrControls struct {
	doc *doctree.Document
}

func (c attrControls) SurroundingControl(n doctree.NodeID) doctree.NodeID {
	for p := c.doc.Parent(n); p != doctree.NoNode; p = c.doc.Parent(p) {
		if c.doc.Tag(p) == "fieldset" {
			return p
		}
	}
	return doctree.NoNode
}

func (c attrControls) HeuristicLabel(n doctree.NodeID) string {
	v, _ := c.doc.Attr(n, "placeholder")
	return v
}

// allVisible is an oracle that shows everything and leafs nothing.
type allVisible struct{}

func (allVisible) Visible(doctree.NodeID) bool { return true }
func (allVisible) Skippable(doctree.NodeID) bool { return false }
func (allVisible) Display(doctree.NodeID) traverse.Display { return traverse.DisplayInline }
func (allVisible) TreatAsLeaf(doctree.NodeID) bool { return false }

func newTestBuilder(doc *doctree.Document) *Builder {
	return NewBuilder(doc, attrSemantics{doc: doc})
}
