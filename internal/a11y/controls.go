package a11y

import (
	"github.com/dgallion1/docvox/internal/doctree"
)

var compositeRoles = map[string]bool{
	"radiogroup": true, "listbox": true, "combobox": true, "group": true,
	"menu": true, "menubar": true, "tablist": true, "tree": true, "grid": true,
}

// Controls implements describe.Controls.
type Controls struct {
	doc *doctree.Document
	sem *Semantics
}

func NewControls(doc *doctree.Document, sem *Semantics) *Controls {
	return &Controls{doc: doc, sem: sem}
}

// SurroundingControl returns the nearest composite widget enclosing n, or
// NoNode.
func (c *Controls) SurroundingControl(n doctree.NodeID) doctree.NodeID {
	for p := c.doc.Parent(n); p != doctree.NoNode; p = c.doc.Parent(p) {
		switch c.doc.Tag(p) {
		case "select", "fieldset", "datalist":
			return p
		}
		if compositeRoles[c.doc.Role(p)] {
			return p
		}
	}
	return doctree.NoNode
}

// HeuristicLabel guesses a name for an unlabeled control from its
// placeholder, or else the nearest text rendered before it within the same
// parent.
func (c *Controls) HeuristicLabel(n doctree.NodeID) string {
	if p := c.sem.attr(n, "placeholder"); p != "" {
		return p
	}
	for s := c.doc.PrevSibling(n); s != doctree.NoNode; s = c.doc.PrevSibling(s) {
		if c.doc.IsElement(s) && isFormControl(c.doc, s) {
			break
		}
		if text := c.sem.textOf(s); text != "" {
			return text
		}
	}
	return ""
}
