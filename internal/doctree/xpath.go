package doctree

import (
	"fmt"

	"github.com/antchfx/xpath"
)

// Navigator walks a Document for XPath evaluation. The document root plays
// the role of the XPath root node, so "//a" finds every link below it.
type Navigator struct {
	doc  *Document
	cur  NodeID
	attr int
}

var _ xpath.NodeNavigator = (*Navigator)(nil)

func NewNavigator(doc *Document) *Navigator {
	return &Navigator{doc: doc, cur: doc.root, attr: -1}
}

// Node returns the element or text node the navigator is positioned on.
func (n *Navigator) Node() NodeID { return n.cur }

func (n *Navigator) NodeType() xpath.NodeType {
	switch {
	case n.attr >= 0:
		return xpath.AttributeNode
	case n.cur == n.doc.root:
		return xpath.RootNode
	case n.doc.IsText(n.cur):
		return xpath.TextNode
	default:
		return xpath.ElementNode
	}
}

func (n *Navigator) LocalName() string {
	if n.attr >= 0 {
		return n.doc.nodes[n.cur].attrs[n.attr].Key
	}
	return n.doc.Tag(n.cur)
}

func (n *Navigator) Prefix() string { return "" }

func (n *Navigator) Value() string {
	switch {
	case n.attr >= 0:
		return n.doc.nodes[n.cur].attrs[n.attr].Value
	case n.doc.IsText(n.cur):
		return n.doc.Text(n.cur)
	default:
		return n.doc.TextContent(n.cur)
	}
}

func (n *Navigator) Copy() xpath.NodeNavigator {
	c := *n
	return &c
}

func (n *Navigator) MoveToRoot() {
	n.cur = n.doc.root
	n.attr = -1
}

func (n *Navigator) MoveToParent() bool {
	if n.attr >= 0 {
		n.attr = -1
		return true
	}
	p := n.doc.Parent(n.cur)
	if p == NoNode {
		return false
	}
	n.cur = p
	return true
}

func (n *Navigator) MoveToNextAttribute() bool {
	if n.doc.IsText(n.cur) || n.attr+1 >= len(n.doc.nodes[n.cur].attrs) {
		return false
	}
	n.attr++
	return true
}

func (n *Navigator) MoveToChild() bool {
	if n.attr >= 0 {
		return false
	}
	kids := n.doc.Children(n.cur)
	if len(kids) == 0 {
		return false
	}
	n.cur = kids[0]
	return true
}

func (n *Navigator) MoveToFirst() bool {
	if n.attr >= 0 {
		return false
	}
	p := n.doc.Parent(n.cur)
	if p == NoNode {
		return false
	}
	n.cur = n.doc.Children(p)[0]
	return true
}

func (n *Navigator) MoveToNext() bool {
	if n.attr >= 0 {
		return false
	}
	s := n.doc.NextSibling(n.cur)
	if s == NoNode {
		return false
	}
	n.cur = s
	return true
}

func (n *Navigator) MoveToPrevious() bool {
	if n.attr >= 0 {
		return false
	}
	s := n.doc.PrevSibling(n.cur)
	if s == NoNode {
		return false
	}
	n.cur = s
	return true
}

func (n *Navigator) MoveTo(other xpath.NodeNavigator) bool {
	o, ok := other.(*Navigator)
	if !ok || o.doc != n.doc {
		return false
	}
	*n = *o
	return true
}

// Select evaluates expr and returns the matching nodes in document order.
// Attribute matches resolve to their owning element.
func (d *Document) Select(expr string) ([]NodeID, error) {
	compiled, err := xpath.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("compile xpath %q: %w", expr, err)
	}
	var out []NodeID
	seen := make(map[NodeID]bool)
	iter := compiled.Select(NewNavigator(d))
	for iter.MoveNext() {
		nav, ok := iter.Current().(*Navigator)
		if !ok || seen[nav.cur] {
			continue
		}
		seen[nav.cur] = true
		out = append(out, nav.cur)
	}
	return out, nil
}

// SelectFirst returns the first node matching expr, or NoNode.
func (d *Document) SelectFirst(expr string) (NodeID, error) {
	nodes, err := d.Select(expr)
	if err != nil {
		return NoNode, err
	}
	if len(nodes) == 0 {
		return NoNode, nil
	}
	return nodes[0], nil
}
