package traverse

import "github.com/dgallion1/docvox/internal/doctree"

// Display is the effective CSS-like display of an element.
type Display string

const (
	DisplayInline    Display = "inline"
	DisplayBlock     Display = "block"
	DisplayListItem  Display = "list-item"
	DisplayTableCell Display = "table-cell"
	DisplayNone      Display = "none"
)

// Oracle answers live presentation questions about the nodes of one
// document. Implementations must return the same answer for the same node
// for as long as a traversal call runs.
type Oracle interface {
	// Visible reports whether the node is currently rendered.
	Visible(n doctree.NodeID) bool
	// Skippable reports whether the node is marked, or sits below a node
	// marked, to be left out of traversal and speech.
	Skippable(n doctree.NodeID) bool
	// Display returns the effective display of an element.
	Display(n doctree.NodeID) Display
	// TreatAsLeaf reports whether an element's descendants are never
	// traversed, as for a select box.
	TreatAsLeaf(n doctree.NodeID) bool
}

// Crossed is the ordered log of element boundaries passed while stepping.
// A nil *Crossed discards the log.
type Crossed []doctree.NodeID

func (c *Crossed) add(n doctree.NodeID) {
	if c != nil {
		*c = append(*c, n)
	}
}

func (c *Crossed) extend(nodes Crossed) {
	if c != nil {
		*c = append(*c, nodes...)
	}
}

func (c *Crossed) len() int {
	if c == nil {
		return 0
	}
	return len(*c)
}

// Direction selects forward or backward traversal.
type Direction int

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}
