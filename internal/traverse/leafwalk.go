package traverse

import (
	"strings"

	"github.com/dgallion1/docvox/internal/doctree"
)

// contentLeafTags are childless elements that still stand for content.
var contentLeafTags = map[string]bool{
	"img": true, "input": true, "textarea": true, "select": true, "button": true,
	"hr": true, "iframe": true, "object": true, "embed": true, "video": true,
	"audio": true, "canvas": true, "svg": true, "meter": true, "progress": true,
}

// LeafWalker visits the leaves of a document one at a time in document
// order: non-blank text nodes, leaf-treated elements and childless content
// elements. It keeps no position between calls; each call starts from the
// node it is given.
type LeafWalker struct {
	doc    *doctree.Document
	oracle Oracle
}

func NewLeafWalker(doc *doctree.Document, oracle Oracle) *LeafWalker {
	return &LeafWalker{doc: doc, oracle: oracle}
}

// Sync returns the first leaf at or below n, or n itself when the subtree
// holds no leaf.
func (lw *LeafWalker) Sync(n doctree.NodeID) doctree.NodeID {
	if leaf := lw.firstLeaf(n); leaf != doctree.NoNode {
		return leaf
	}
	return n
}

// Next returns the first leaf after the subtree of n, or NoNode at the end
// of the document.
func (lw *LeafWalker) Next(n doctree.NodeID) doctree.NodeID {
	for cur := n; cur != doctree.NoNode; cur = lw.doc.Parent(cur) {
		for s := lw.doc.NextSibling(cur); s != doctree.NoNode; s = lw.doc.NextSibling(s) {
			if leaf := lw.firstLeaf(s); leaf != doctree.NoNode {
				return leaf
			}
		}
	}
	return doctree.NoNode
}

// IsLeaf reports whether n would be visited as a leaf.
func (lw *LeafWalker) IsLeaf(n doctree.NodeID) bool {
	if lw.doc.IsText(n) {
		return strings.TrimSpace(lw.doc.Text(n)) != ""
	}
	if lw.oracle.TreatAsLeaf(n) {
		return true
	}
	if !contentLeafTags[lw.doc.Tag(n)] {
		return false
	}
	for _, c := range lw.doc.Children(n) {
		if lw.enterable(c) {
			return false
		}
	}
	return true
}

func (lw *LeafWalker) enterable(n doctree.NodeID) bool {
	return !lw.oracle.Skippable(n) && lw.oracle.Visible(n)
}

func (lw *LeafWalker) firstLeaf(n doctree.NodeID) doctree.NodeID {
	if !lw.enterable(n) {
		return doctree.NoNode
	}
	if lw.IsLeaf(n) {
		return n
	}
	if lw.doc.IsText(n) {
		return doctree.NoNode
	}
	for _, c := range lw.doc.Children(n) {
		if leaf := lw.firstLeaf(c); leaf != doctree.NoNode {
			return leaf
		}
	}
	return doctree.NoNode
}
