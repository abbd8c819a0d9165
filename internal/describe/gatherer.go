package describe

import (
	"fmt"

	"github.com/dgallion1/docvox/internal/doctree"
	"github.com/dgallion1/docvox/internal/traverse"
)

// Gatherer produces the descriptions a leaf-by-leaf reader would speak
// while walking through a selected subtree.
type Gatherer struct {
	builder *Builder
	leaves  *traverse.LeafWalker
}

func NewGatherer(b *Builder, leaves *traverse.LeafWalker) *Gatherer {
	return &Gatherer{builder: b, leaves: leaves}
}

// Descriptions walks the leaves below selection in document order. Each
// leaf is described by the ancestors it opens relative to the leaf before
// it; the first leaf is compared with prev, the node the previous
// selection ended on (NoNode for none). The walk is recomputed on every
// call.
func (g *Gatherer) Descriptions(prev, selection doctree.NodeID, v Verbosity) ([]NavDescription, error) {
	doc := g.builder.doc
	if err := doc.Check(selection); err != nil {
		return nil, fmt.Errorf("selection: %w", err)
	}
	if prev != doctree.NoNode {
		if err := doc.Check(prev); err != nil {
			return nil, fmt.Errorf("previous node: %w", err)
		}
	}

	var out []NavDescription
	node := g.leaves.Sync(selection)
	prevNode := prev
	for doc.IsDescendantOf(node, selection) {
		d, err := g.builder.Describe(doc.UniqueAncestors(prevNode, node), true, v)
		if err != nil {
			return nil, err
		}
		out = append(out, d)

		next := g.leaves.Next(node)
		if next == doctree.NoNode {
			break
		}
		prevNode, node = node, next
	}
	return out, nil
}

// CollectionDescriptions is Descriptions followed by Summarize.
func (g *Gatherer) CollectionDescriptions(prev, selection doctree.NodeID, v Verbosity, loc Localizer) ([]NavDescription, error) {
	descs, err := g.Descriptions(prev, selection, v)
	if err != nil {
		return nil, err
	}
	return Summarize(descs, loc), nil
}
