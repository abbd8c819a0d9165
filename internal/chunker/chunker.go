package chunker

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dgallion1/docvox/internal/doctree"
	"github.com/dgallion1/docvox/internal/traverse"
)

// Config controls whole-document reading.
type Config struct {
	Granularity traverse.Granularity
	Direction   traverse.Direction
	Options     traverse.Options
	MinChunk    int // Minimum chunk length in runes to emit.
}

// DefaultConfig reads forward by sentence.
func DefaultConfig() Config {
	return Config{
		Granularity: traverse.Sentence,
		Direction:   traverse.Forward,
		Options:     traverse.DefaultOptions(),
	}
}

// ChunkDocument reads the whole document behind w one unit at a time and
// returns the units as chunks in reading order. Backward reading starts at
// the end of the document. Each chunk carries the heading hierarchy in
// effect where it starts.
func ChunkDocument(w *traverse.Walker, cfg Config) ([]doctree.Chunk, error) {
	doc := w.Document()
	start, err := traverse.NewCursor(doc, doc.Root(), 0)
	if err != nil {
		return nil, err
	}
	end := start
	crumbs := newBreadcrumbs(doc)

	var chunks []doctree.Chunk
	for {
		text, ok, err := w.Move(cfg.Granularity, cfg.Direction, &start, &end, nil, cfg.Options)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", cfg.Granularity, err)
		}
		if !ok {
			break
		}
		if utf8.RuneCountInString(text) < cfg.MinChunk {
			continue
		}
		chunks = append(chunks, doctree.Chunk{
			Text:       text,
			Index:      len(chunks),
			Breadcrumb: crumbs.at(start.Node),
			StartNode:  start.Node,
			EndNode:    end.Node,
		})
	}
	return chunks, nil
}

type heading struct {
	order int
	level int
	title string
}

// breadcrumbs answers "which headings are open at this node" for one
// document.
type breadcrumbs struct {
	order    map[doctree.NodeID]int // pre-order position
	headings []heading              // in document order
}

func newBreadcrumbs(doc *doctree.Document) *breadcrumbs {
	bc := &breadcrumbs{order: make(map[doctree.NodeID]int, doc.Len())}
	var walk func(doctree.NodeID)
	walk = func(n doctree.NodeID) {
		bc.order[n] = len(bc.order)
		if level := doctree.HeadingLevel(doc.Tag(n)); level > 0 {
			if title := doc.TextContent(n); title != "" {
				bc.headings = append(bc.headings, heading{order: bc.order[n], level: level, title: strings.Join(strings.Fields(title), " ")})
			}
		}
		for _, c := range doc.Children(n) {
			walk(c)
		}
	}
	walk(doc.Root())
	return bc
}

// at returns the titles of the headings enclosing n, outermost first. A
// heading closes when a later heading of the same or a higher level starts.
func (bc *breadcrumbs) at(n doctree.NodeID) []string {
	pos, ok := bc.order[n]
	if !ok {
		return nil
	}
	var stack []heading
	for _, h := range bc.headings {
		if h.order > pos {
			break
		}
		for len(stack) > 0 && stack[len(stack)-1].level >= h.level {
			stack = stack[:len(stack)-1]
		}
		stack = append(stack, h)
	}
	if len(stack) == 0 {
		return nil
	}
	out := make([]string, len(stack))
	for i, h := range stack {
		out[i] = h.title
	}
	return out
}
