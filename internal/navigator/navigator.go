// Package navigator holds a reading position in one document and moves it
// the way a screen reader user does: by character, word, sentence, line or
// paragraph, or straight to a node picked by XPath. Every move is described
// by the ancestors it enters.
package navigator

import (
	"errors"
	"fmt"
	"sync"

	"github.com/dgallion1/docvox/internal/a11y"
	"github.com/dgallion1/docvox/internal/chunker"
	"github.com/dgallion1/docvox/internal/describe"
	"github.com/dgallion1/docvox/internal/doctree"
	"github.com/dgallion1/docvox/internal/traverse"
)

// ErrNotFound is returned when an XPath expression matches nothing.
var ErrNotFound = errors.New("no matching node")

// Settings are the reading preferences of one navigator.
type Settings struct {
	Verbosity describe.Verbosity
	Options   traverse.Options
	SkipClass string
}

func DefaultSettings() Settings {
	return Settings{
		Verbosity: describe.Verbose,
		Options:   traverse.DefaultOptions(),
		SkipClass: a11y.DefaultSkipClass,
	}
}

// Position is a snapshot of the reading position: the span last read and
// the node the last description ended on.
type Position struct {
	Start traverse.Cursor `json:"start"`
	End   traverse.Cursor `json:"end"`
	Last  doctree.NodeID  `json:"last"`
}

// Result is the outcome of one move.
type Result struct {
	Text        string                   `json:"text"`
	End         bool                     `json:"end"`
	Node        doctree.NodeID           `json:"node"`
	Description *describe.NavDescription `json:"description,omitempty"`
}

// Navigator is safe for concurrent use; moves are serialized.
type Navigator struct {
	doc      *doctree.Document
	walker   *traverse.Walker
	sem      *a11y.Semantics
	controls *a11y.Controls
	builder  *describe.Builder
	gatherer *describe.Gatherer
	loc      describe.Localizer
	settings Settings

	mu  sync.Mutex
	pos Position
}

// New positions a navigator at the start of doc.
func New(doc *doctree.Document, loc describe.Localizer, settings Settings) *Navigator {
	oracle := a11y.NewOracle(doc, settings.SkipClass)
	sem := a11y.NewSemantics(doc, oracle, loc)
	builder := describe.NewBuilder(doc, sem)
	start := traverse.Cursor{Node: doc.Root()}
	return &Navigator{
		doc:      doc,
		walker:   traverse.NewWalker(doc, oracle),
		sem:      sem,
		controls: a11y.NewControls(doc, sem),
		builder:  builder,
		gatherer: describe.NewGatherer(builder, traverse.NewLeafWalker(doc, oracle)),
		loc:      loc,
		settings: settings,
		pos:      Position{Start: start, End: start, Last: doctree.NoNode},
	}
}

func (n *Navigator) Document() *doctree.Document { return n.doc }

func (n *Navigator) Settings() Settings { return n.settings }

// Position returns the current reading position.
func (n *Navigator) Position() Position {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.pos
}

// Move reads the next (or previous) unit of g and describes the ancestors
// entered to reach it. At the edge of the document the result has End set
// and the position does not change.
func (n *Navigator) Move(g traverse.Granularity, dir traverse.Direction, skipWhitespace bool) (Result, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	opts := n.settings.Options
	opts.SkipWhitespace = skipWhitespace

	start, end := n.pos.Start, n.pos.End
	text, ok, err := n.walker.Move(g, dir, &start, &end, nil, opts)
	if err != nil {
		return Result{}, err
	}
	if !ok {
		return Result{End: true, Node: n.pos.Last}, nil
	}

	// Describe from the node reading arrived at; the far end of the span
	// is what stays open for the next move.
	arrived, far := start.Node, end.Node
	if dir == traverse.Backward {
		arrived, far = end.Node, start.Node
	}
	d, err := n.builder.Describe(n.doc.UniqueAncestors(n.pos.Last, arrived), false, n.settings.Verbosity)
	if err != nil {
		return Result{}, err
	}
	d.Text = describe.CollapseWhitespace(text)

	n.pos = Position{Start: start, End: end, Last: far}
	return Result{Text: text, Node: arrived, Description: &d}, nil
}

// Seek moves to the first node matching expr and describes it. Form
// controls are described with their surrounding control and heuristic
// labels.
func (n *Navigator) Seek(expr string) (Result, error) {
	node, err := n.selectFirst(expr)
	if err != nil {
		return Result{}, err
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	var d describe.NavDescription
	if isControl(n.doc, node) {
		d, err = n.builder.ControlDescription(node, nil, n.controls)
	} else {
		d, err = n.builder.Describe(n.doc.UniqueAncestors(n.pos.Last, node), true, n.settings.Verbosity)
	}
	if err != nil {
		return Result{}, err
	}

	c, err := traverse.NewCursor(n.doc, node, 0)
	if err != nil {
		return Result{}, err
	}
	// Park both cursors just before the first character inside node, so
	// forward moves read node and backward moves read what precedes it.
	s, e := c, c
	if _, ok := n.walker.NextChar(&s, &e, nil, true); ok && n.doc.IsDescendantOf(s.Node, node) {
		c = s
	}
	n.pos = Position{Start: c, End: c, Last: node}
	return Result{Text: d.String(), Node: node, Description: &d}, nil
}

// Describe returns the full description of the first node matching expr,
// from the document root down. The position does not change.
func (n *Navigator) Describe(expr string) (describe.NavDescription, error) {
	node, err := n.selectFirst(expr)
	if err != nil {
		return describe.NavDescription{}, err
	}
	return n.builder.Describe(n.doc.Ancestors(node), true, n.settings.Verbosity)
}

// Collection describes the leaves below the first node matching expr and
// summarizes repeated annotations. With an empty expr the collection is the
// nearest container around the node last read, or the whole document
// before anything was read.
func (n *Navigator) Collection(expr string) ([]describe.NavDescription, error) {
	n.mu.Lock()
	last := n.pos.Last
	n.mu.Unlock()

	var selection doctree.NodeID
	switch {
	case expr != "":
		node, err := n.selectFirst(expr)
		if err != nil {
			return nil, err
		}
		selection = node
	case last != doctree.NoNode:
		selection = n.container(last)
	default:
		return n.gatherer.CollectionDescriptions(doctree.NoNode, n.doc.Root(), n.settings.Verbosity, n.loc)
	}
	// The selection is already announced; only what opens below it is
	// described.
	return n.gatherer.CollectionDescriptions(selection, selection, n.settings.Verbosity, n.loc)
}

// container returns the closest ancestor of id holding more than one child
// element, or the root.
func (n *Navigator) container(id doctree.NodeID) doctree.NodeID {
	for p := id; p != doctree.NoNode; p = n.doc.Parent(p) {
		if n.doc.IsElement(p) && n.doc.ChildElementCount(p) > 1 {
			return p
		}
	}
	return n.doc.Root()
}

// Chunks reads the whole document at granularity g.
func (n *Navigator) Chunks(g traverse.Granularity, dir traverse.Direction) ([]doctree.Chunk, error) {
	return chunker.ChunkDocument(n.walker, chunker.Config{
		Granularity: g,
		Direction:   dir,
		Options:     n.settings.Options,
	})
}

func (n *Navigator) selectFirst(expr string) (doctree.NodeID, error) {
	node, err := n.doc.SelectFirst(expr)
	if err != nil {
		return doctree.NoNode, fmt.Errorf("%w: %w", doctree.ErrInvalidArgument, err)
	}
	if node == doctree.NoNode {
		return doctree.NoNode, fmt.Errorf("%q: %w", expr, ErrNotFound)
	}
	return node, nil
}

func isControl(doc *doctree.Document, n doctree.NodeID) bool {
	switch doc.Tag(n) {
	case "input", "select", "textarea", "button":
		return true
	}
	return false
}
