package traverse

import "github.com/dgallion1/docvox/internal/doctree"

// Step is the outcome of moving a cursor by one character: either a
// character, or End when traversal ran off the edge of the document.
type Step struct {
	Char rune
	End  bool

	size int // bytes consumed from the cursor's text
}

var endOfDocument = Step{End: true}

type phase int

const (
	phaseDescend phase = iota
	phaseRead
	phaseAscend
)

// Walker steps cursors through one document. It holds no position of its
// own, so one Walker can serve any number of cursors.
type Walker struct {
	doc    *doctree.Document
	oracle Oracle
}

func NewWalker(doc *doctree.Document, oracle Oracle) *Walker {
	return &Walker{doc: doc, oracle: oracle}
}

func (w *Walker) Document() *doctree.Document { return w.doc }

func (w *Walker) Oracle() Oracle { return w.oracle }

// StepForward moves c past exactly one character and returns it. Every
// element entered, left or skipped on the way is appended to crossed. On
// End, c is left where it was.
func (w *Walker) StepForward(c *Cursor, crossed *Crossed) Step {
	return w.step(c, crossed, Forward)
}

// StepBackward moves c before the previous character and returns it.
func (w *Walker) StepBackward(c *Cursor, crossed *Crossed) Step {
	return w.step(c, crossed, Backward)
}

func (w *Walker) step(c *Cursor, crossed *Crossed, dir Direction) Step {
	saved := *c
	ph := phaseDescend
	for {
		switch ph {
		case phaseDescend:
			w.logElement(c.Node, crossed)
			child := w.enterableChild(c.Node, dir, crossed)
			if child == doctree.NoNode {
				ph = phaseRead
				continue
			}
			c.moveTo(w.doc, child, dir)

		case phaseRead:
			if r, size, ok := c.read(dir); ok {
				return Step{Char: r, size: size}
			}
			ph = phaseAscend

		case phaseAscend:
			w.logElement(c.Node, crossed)
			if sib := w.enterableSibling(c.Node, dir, crossed); sib != doctree.NoNode {
				c.moveTo(w.doc, sib, dir)
				ph = phaseDescend
				continue
			}
			parent := w.doc.Parent(c.Node)
			if parent == doctree.NoNode || parent == w.doc.Root() {
				*c = saved
				return endOfDocument
			}
			c.Node, c.Text, c.Index = parent, "", 0
		}
	}
}

func (w *Walker) logElement(n doctree.NodeID, crossed *Crossed) {
	if w.doc.IsElement(n) {
		crossed.add(n)
	}
}

// enterableChild finds the first (last, going backward) visible child of n
// that is not skipped. Skipped children are logged but never entered.
func (w *Walker) enterableChild(n doctree.NodeID, dir Direction, crossed *Crossed) doctree.NodeID {
	if w.doc.IsText(n) || w.oracle.TreatAsLeaf(n) {
		return doctree.NoNode
	}
	kids := w.doc.Children(n)
	for i := range kids {
		k := kids[i]
		if dir == Backward {
			k = kids[len(kids)-1-i]
		}
		if w.accept(k, crossed) {
			return k
		}
	}
	return doctree.NoNode
}

func (w *Walker) enterableSibling(n doctree.NodeID, dir Direction, crossed *Crossed) doctree.NodeID {
	next := w.doc.NextSibling
	if dir == Backward {
		next = w.doc.PrevSibling
	}
	for s := next(n); s != doctree.NoNode; s = next(s) {
		if w.accept(s, crossed) {
			return s
		}
	}
	return doctree.NoNode
}

func (w *Walker) accept(n doctree.NodeID, crossed *Crossed) bool {
	if w.oracle.Skippable(n) {
		w.logElement(n, crossed)
		return false
	}
	return w.oracle.Visible(n)
}
