package traverse

import (
	"fmt"
	"strings"

	"github.com/dgallion1/docvox/internal/doctree"
)

// Granularity is the unit a cursor pair moves by.
type Granularity int

const (
	Character Granularity = iota
	Word
	Sentence
	Line
	Paragraph
)

var granularityNames = [...]string{"character", "word", "sentence", "line", "paragraph"}

func (g Granularity) String() string {
	if g < 0 || int(g) >= len(granularityNames) {
		return fmt.Sprintf("granularity(%d)", int(g))
	}
	return granularityNames[g]
}

// ParseGranularity accepts the names above plus "char".
func ParseGranularity(s string) (Granularity, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "char" {
		return Character, nil
	}
	for i, name := range granularityNames {
		if s == name {
			return Granularity(i), nil
		}
	}
	return 0, fmt.Errorf("unknown granularity %q: %w", s, doctree.ErrInvalidArgument)
}

// ParseDirection accepts "forward"/"next" and "backward"/"previous".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "forward", "next":
		return Forward, nil
	case "backward", "previous", "prev":
		return Backward, nil
	}
	return 0, fmt.Errorf("unknown direction %q: %w", s, doctree.ErrInvalidArgument)
}

// Options carries the per-call settings of Move.
type Options struct {
	BreakTags      TagSet
	LineLength     int
	SkipWhitespace bool
}

func DefaultOptions() Options {
	return Options{
		BreakTags:  DefaultBreakTags(),
		LineLength: 60,
	}
}

// Move advances the start/end pair by one unit of g. Forward moves search
// from end, backward moves from start. The bool result is false at the edge
// of the document. Invalid cursors or options return an error wrapping
// doctree.ErrInvalidArgument.
func (w *Walker) Move(g Granularity, dir Direction, start, end *Cursor, crossed *Crossed, opts Options) (string, bool, error) {
	if err := Validate(w.doc, *start); err != nil {
		return "", false, fmt.Errorf("start cursor: %w", err)
	}
	if err := Validate(w.doc, *end); err != nil {
		return "", false, fmt.Errorf("end cursor: %w", err)
	}

	var (
		text string
		ok   bool
	)
	switch g {
	case Character:
		if dir == Forward {
			text, ok = w.NextChar(start, end, crossed, opts.SkipWhitespace)
		} else {
			text, ok = w.PreviousChar(start, end, crossed, opts.SkipWhitespace)
		}
	case Word:
		if dir == Forward {
			text, ok = w.NextWord(start, end, crossed)
		} else {
			text, ok = w.PreviousWord(start, end, crossed)
		}
	case Sentence:
		if dir == Forward {
			text, ok = w.NextSentence(start, end, crossed, opts.BreakTags)
		} else {
			text, ok = w.PreviousSentence(start, end, crossed, opts.BreakTags)
		}
	case Line:
		if opts.LineLength <= 0 {
			return "", false, fmt.Errorf("line length %d: %w", opts.LineLength, doctree.ErrInvalidArgument)
		}
		if dir == Forward {
			text, ok = w.NextLine(start, end, crossed, opts.LineLength, opts.BreakTags)
		} else {
			text, ok = w.PreviousLine(start, end, crossed, opts.LineLength, opts.BreakTags)
		}
	case Paragraph:
		if dir == Forward {
			text, ok = w.NextParagraph(start, end, crossed)
		} else {
			text, ok = w.PreviousParagraph(start, end, crossed)
		}
	default:
		return "", false, fmt.Errorf("granularity %d: %w", int(g), doctree.ErrInvalidArgument)
	}
	return text, ok, nil
}
