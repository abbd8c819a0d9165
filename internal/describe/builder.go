package describe

import (
	"fmt"
	"slices"

	"github.com/dgallion1/docvox/internal/doctree"
)

// Semantics supplies the per-node facts a description is built from. One
// implementation serves one document.
type Semantics interface {
	Name(n doctree.NodeID, recursive bool) string
	Value(n doctree.NodeID) string
	Role(n doctree.NodeID, v Verbosity) string
	// State describes dynamic state; verbose is true when the text lands
	// in the annotation and false when it lands in the context.
	State(n doctree.NodeID, verbose bool) string
	Personality(n doctree.NodeID) Personality
	Earcon(n doctree.NodeID) Earcon
}

// Controls locates the control around a node and guesses names for
// controls that have none.
type Controls interface {
	SurroundingControl(n doctree.NodeID) doctree.NodeID
	HeuristicLabel(n doctree.NodeID) string
}

// Builder describes ancestor chains of one document.
type Builder struct {
	doc *doctree.Document
	sem Semantics
}

func NewBuilder(doc *doctree.Document, sem Semantics) *Builder {
	return &Builder{doc: doc, sem: sem}
}

func (b *Builder) Document() *doctree.Document { return b.doc }

// IsDialog reports whether n carries a dialog or alertdialog role. Dialogs
// are announced by their own events, never while navigating.
func IsDialog(doc *doctree.Document, n doctree.NodeID) bool {
	role := doc.Role(n)
	return role == "dialog" || role == "alertdialog"
}

// Describe builds the description of a navigation whose changed ancestors
// are chain, ordered from the outermost ancestor down to the leaf. The
// chain is walked leaf first: roles fill the annotation until a context has
// started, or until an ancestor with several child elements is reached
// while an annotation exists; from then on they are prepended to the
// context. The result reads "outer context ... annotation" around the leaf
// text.
func (b *Builder) Describe(chain []doctree.NodeID, recursive bool, v Verbosity) (NavDescription, error) {
	if len(chain) == 0 {
		return NavDescription{}, fmt.Errorf("empty ancestor chain: %w", doctree.ErrInvalidArgument)
	}
	for _, n := range chain {
		if err := b.doc.Check(n); err != nil {
			return NavDescription{}, fmt.Errorf("ancestor chain: %w", err)
		}
	}

	var d NavDescription
	last := len(chain) - 1
	if leaf := chain[last]; !IsDialog(b.doc, leaf) {
		d.Text = b.sem.Name(leaf, recursive)
		d.UserValue = b.sem.Value(leaf)
	}

	for i := last; i >= 0; i-- {
		n := chain[i]
		if IsDialog(b.doc, n) {
			continue
		}

		roleText := b.sem.Role(n, v)
		if d.Personality == "" {
			d.Personality = b.sem.Personality(n)
		}
		if i < last && b.doc.HasAttr(n, "role") {
			if name := b.sem.Name(n, false); name != "" {
				roleText = name + " " + roleText
			}
		}

		if roleText != "" {
			switch {
			case d.Context != "" || (d.Annotation != "" && b.doc.ChildElementCount(n) > 1):
				d.Context = roleText + " " + b.sem.State(n, false) + " " + d.Context
			case d.Annotation != "":
				d.Annotation += " " + roleText + " " + b.sem.State(n, true)
			default:
				d.Annotation = roleText + " " + b.sem.State(n, true)
			}
		}

		if e := b.sem.Earcon(n); e != "" && !slices.Contains(d.Earcons, e) {
			d.Earcons = append(d.Earcons, e)
		}
	}

	d.collapse()
	return d, nil
}

// ControlDescription describes a form control as if it had been navigated
// to. changed, when non-empty, is the ancestor chain to describe; otherwise
// the control is described together with its surrounding control, if any.
// A control without a name gets one from controls' heuristics.
func (b *Builder) ControlDescription(control doctree.NodeID, changed []doctree.NodeID, controls Controls) (NavDescription, error) {
	if err := b.doc.Check(control); err != nil {
		return NavDescription{}, err
	}

	chain := []doctree.NodeID{control}
	surrounding := doctree.NoNode
	if len(changed) > 0 {
		chain = changed
	} else if surrounding = controls.SurroundingControl(control); surrounding != doctree.NoNode {
		chain = []doctree.NodeID{surrounding, control}
	}

	d, err := b.Describe(chain, true, Verbose)
	if err != nil {
		return NavDescription{}, err
	}

	if surrounding != doctree.NoNode {
		if b.sem.Name(surrounding, true) == "" {
			if label := controls.HeuristicLabel(surrounding); label != "" {
				d.Context = CollapseWhitespace(label + " " + d.Context)
			}
		}
		return d, nil
	}

	if b.sem.Name(control, true) == "" {
		if label := controls.HeuristicLabel(control); label != "" {
			d.Text = CollapseWhitespace(label)
		}
	}
	if value := b.sem.Value(control); value != "" {
		d.UserValue = CollapseWhitespace(value)
	}
	return d, nil
}
