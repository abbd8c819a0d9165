package traverse

import "github.com/dgallion1/docvox/internal/doctree"

// attrOracle is a minimal Oracle for tests: "hidden" hides a node, class
// "skip" marks a subtree, a few tags are block level and select is a leaf.
type attrOracle struct {
	doc *doctree.Document
}

var testBlockTags = map[string]bool{
	"body": true, "p": true, "div": true, "ul": true, "li": true, "h1": true, "h2": true, "section": true,
}

func (o attrOracle) Visible(n doctree.NodeID) bool {
	return o.doc.IsText(n) || !o.doc.HasAttr(n, "hidden")
}

func (o attrOracle) Skippable(n doctree.NodeID) bool {
	for ; n != doctree.NoNode; n = o.doc.Parent(n) {
		if o.doc.IsElement(n) && o.doc.HasClass(n, "skip") {
			return true
		}
	}
	return false
}

func (o attrOracle) Display(n doctree.NodeID) Display {
	if testBlockTags[o.doc.Tag(n)] {
		return DisplayBlock
	}
	return DisplayInline
}

func (o attrOracle) TreatAsLeaf(n doctree.NodeID) bool {
	return o.doc.Tag(n) == "select"
}

func newTestWalker(doc *doctree.Document) *Walker {
	return NewWalker(doc, attrOracle{doc: doc})
}

// paragraphDoc builds <body><p>text</p></body> and returns the text node.
func paragraphDoc(text string) (*doctree.Document, doctree.NodeID) {
	b := doctree.NewBuilder("test", "body")
	p := b.Element(b.Root(), "p")
	t := b.Text(p, text)
	return b.Build(), t
}
