package traverse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgallion1/docvox/internal/doctree"
)

func TestStepForward_ReadsCharactersThenEnds(t *testing.T) {
	doc, text := paragraphDoc("ab")
	w := newTestWalker(doc)
	c, err := NewCursor(doc, text, 0)
	require.NoError(t, err)

	var crossed Crossed
	assert.Equal(t, Step{Char: 'a', size: 1}, w.StepForward(&c, &crossed))
	assert.Equal(t, Step{Char: 'b', size: 1}, w.StepForward(&c, &crossed))
	assert.Equal(t, 2, c.Index)

	before := c
	s := w.StepForward(&c, &crossed)
	assert.True(t, s.End)
	assert.Equal(t, before, c, "cursor must not move when the document ends")
}

func TestStepForward_DescendsAndLogsElements(t *testing.T) {
	b := doctree.NewBuilder("test", "body")
	p1 := b.Element(b.Root(), "p")
	b.Text(p1, "a")
	p2 := b.Element(b.Root(), "p")
	t2 := b.Text(p2, "b")
	doc := b.Build()
	w := newTestWalker(doc)

	c, err := NewCursor(doc, doc.Root(), 0)
	require.NoError(t, err)
	var crossed Crossed
	assert.Equal(t, 'a', w.StepForward(&c, &crossed).Char)
	assert.Equal(t, Crossed{doc.Root(), p1}, crossed)

	crossed = nil
	assert.Equal(t, 'b', w.StepForward(&c, &crossed).Char)
	assert.Equal(t, Crossed{p1, p2}, crossed)
	assert.Equal(t, t2, c.Node)
}

func TestStepForward_SkippedSiblingLoggedNotEntered(t *testing.T) {
	b := doctree.NewBuilder("test", "body")
	p := b.Element(b.Root(), "p")
	ta := b.Text(p, "a")
	skip := b.Element(p, "span", "class", "skip")
	b.Text(skip, "zz")
	tb := b.Text(p, "b")
	doc := b.Build()
	w := newTestWalker(doc)

	c, err := NewCursor(doc, ta, 1)
	require.NoError(t, err)
	var crossed Crossed
	s := w.StepForward(&c, &crossed)
	assert.Equal(t, 'b', s.Char)
	assert.Equal(t, tb, c.Node)
	assert.Equal(t, Crossed{skip}, crossed)
}

func TestStepForward_InvisibleAndLeafTreated(t *testing.T) {
	b := doctree.NewBuilder("test", "body")
	p := b.Element(b.Root(), "p")
	hidden := b.Element(p, "span", "hidden", "")
	b.Text(hidden, "nope")
	sel := b.Element(p, "select")
	opt := b.Element(sel, "option")
	b.Text(opt, "choice")
	b.Text(p, "x")
	doc := b.Build()
	w := newTestWalker(doc)

	c, err := NewCursor(doc, doc.Root(), 0)
	require.NoError(t, err)
	var crossed Crossed
	s := w.StepForward(&c, &crossed)
	assert.Equal(t, 'x', s.Char)
	assert.Contains(t, crossed, sel, "leaf-treated select is crossed")
	assert.NotContains(t, crossed, opt, "leaf-treated select is never entered")
	assert.NotContains(t, crossed, hidden, "invisible nodes are passed silently")
}

func TestStepBackward_Mirror(t *testing.T) {
	doc, text := paragraphDoc("ab")
	w := newTestWalker(doc)
	c, err := NewCursor(doc, text, 2)
	require.NoError(t, err)

	assert.Equal(t, 'b', w.StepBackward(&c, nil).Char)
	assert.Equal(t, 'a', w.StepBackward(&c, nil).Char)
	assert.True(t, w.StepBackward(&c, nil).End)
	assert.Equal(t, 0, c.Index)
}

func TestStepper_Symmetry(t *testing.T) {
	b := doctree.NewBuilder("test", "body")
	p1 := b.Element(b.Root(), "p")
	b.Text(p1, "ab")
	p2 := b.Element(b.Root(), "p")
	b.Text(p2, "cd")
	bold := b.Element(p2, "b")
	b.Text(bold, "e f")
	skip := b.Element(p2, "span", "class", "skip")
	b.Text(skip, "zz")
	b.Text(p2, "gé")
	doc := b.Build()
	w := newTestWalker(doc)

	for id := doctree.NodeID(0); int(id) < doc.Len(); id++ {
		if !doc.IsText(id) || w.oracle.Skippable(id) {
			continue
		}
		for i := range doc.Text(id) {
			start, err := NewCursor(doc, id, i)
			require.NoError(t, err)
			for n := 1; n <= 6; n++ {
				c := start
				steps := 0
				for ; steps < n; steps++ {
					if w.StepForward(&c, nil).End {
						break
					}
				}
				for k := 0; k < steps; k++ {
					require.False(t, w.StepBackward(&c, nil).End)
				}
				assert.Equal(t, start, c, "node %d index %d after %d steps", id, i, steps)
			}
		}
	}
}

func TestStepForward_MultibyteRunes(t *testing.T) {
	doc, text := paragraphDoc("né")
	w := newTestWalker(doc)
	c, err := NewCursor(doc, text, 0)
	require.NoError(t, err)

	assert.Equal(t, 'n', w.StepForward(&c, nil).Char)
	assert.Equal(t, 'é', w.StepForward(&c, nil).Char)
	assert.Equal(t, len("né"), c.Index)
	assert.Equal(t, 'é', w.StepBackward(&c, nil).Char)
	assert.Equal(t, 1, c.Index)
}

func TestNewCursor_RejectsBadInput(t *testing.T) {
	doc, text := paragraphDoc("ab")
	_, err := NewCursor(doc, text, 3)
	assert.ErrorIs(t, err, doctree.ErrInvalidArgument)
	_, err = NewCursor(doc, doctree.NodeID(99), 0)
	assert.ErrorIs(t, err, doctree.ErrInvalidArgument)
}
