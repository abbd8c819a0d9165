package traverse

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dgallion1/docvox/internal/doctree"
)

func TestLeafWalker(t *testing.T) {
	b := doctree.NewBuilder("test", "body")
	intro := b.Element(b.Root(), "p")
	introText := b.Text(intro, "Intro")
	list := b.Element(b.Root(), "ul")
	li1 := b.Element(list, "li")
	a1 := b.Element(li1, "a", "href", "#1")
	one := b.Text(a1, "One")
	li2 := b.Element(list, "li")
	b.Text(li2, "  ")
	img := b.Element(li2, "img", "alt", "pic")
	skipped := b.Element(b.Root(), "p", "class", "skip")
	b.Text(skipped, "skipped")
	tail := b.Element(b.Root(), "p")
	b.Text(tail, " ")
	doc := b.Build()
	lw := NewLeafWalker(doc, attrOracle{doc: doc})

	assert.Equal(t, introText, lw.Sync(doc.Root()))
	assert.Equal(t, one, lw.Sync(list))
	assert.Equal(t, img, lw.Next(one), "blank text is not a leaf, img is")
	assert.Equal(t, doctree.NoNode, lw.Next(img), "skipped and blank content ends the walk")
	assert.Equal(t, tail, lw.Sync(tail), "leafless subtree syncs to itself")
	assert.True(t, lw.IsLeaf(img))
	assert.False(t, lw.IsLeaf(li1))
}
