package traverse

import (
	"strings"
	"unicode/utf8"
)

// TagSet is a set of lower case tag names.
type TagSet map[string]bool

func NewTagSet(tags ...string) TagSet {
	s := make(TagSet, len(tags))
	for _, t := range tags {
		if t = strings.ToLower(strings.TrimSpace(t)); t != "" {
			s[t] = true
		}
	}
	return s
}

// DefaultBreakTags end sentences and lines even when styled inline.
func DefaultBreakTags() TagSet {
	return NewTagSet("br", "li", "td", "th", "dt", "dd")
}

// boundary reports whether any crossed element is skipped, is not inline,
// or is listed in breakTags.
func (w *Walker) boundary(crossed Crossed, breakTags TagSet) bool {
	for _, n := range crossed {
		if w.oracle.Skippable(n) {
			return true
		}
		if w.oracle.Display(n) != DisplayInline || breakTags[w.doc.Tag(n)] {
			return true
		}
	}
	return false
}

// SentenceBreak ends a sentence after a word ending in a period, or at a
// structural boundary. Going backward the candidate word precedes the
// accumulated text, so its own trailing period is what ends the sentence.
func (w *Walker) SentenceBreak(dir Direction, breakTags TagSet) BreakFunc {
	return func(soFar, word string, crossed Crossed) bool {
		ender := soFar
		if dir == Backward {
			ender = word
		}
		if strings.HasSuffix(ender, ".") {
			return true
		}
		return w.boundary(crossed, breakTags)
	}
}

// LineBreak ends a line when adding the word and a space would exceed
// lineLength characters, or at a structural boundary.
func (w *Walker) LineBreak(lineLength int, breakTags TagSet) BreakFunc {
	return func(soFar, word string, crossed Crossed) bool {
		if utf8.RuneCountInString(soFar)+utf8.RuneCountInString(word)+1 > lineLength {
			return true
		}
		return w.boundary(crossed, breakTags)
	}
}

// ParagraphBreak ends a paragraph only at skipped or non-inline elements.
func (w *Walker) ParagraphBreak() BreakFunc {
	return func(_, _ string, crossed Crossed) bool {
		return w.boundary(crossed, nil)
	}
}

func (w *Walker) NextSentence(start, end *Cursor, crossed *Crossed, breakTags TagSet) (string, bool) {
	return w.NextString(start, end, crossed, w.SentenceBreak(Forward, breakTags))
}

func (w *Walker) PreviousSentence(start, end *Cursor, crossed *Crossed, breakTags TagSet) (string, bool) {
	return w.PreviousString(start, end, crossed, w.SentenceBreak(Backward, breakTags))
}

func (w *Walker) NextLine(start, end *Cursor, crossed *Crossed, lineLength int, breakTags TagSet) (string, bool) {
	return w.NextString(start, end, crossed, w.LineBreak(lineLength, breakTags))
}

func (w *Walker) PreviousLine(start, end *Cursor, crossed *Crossed, lineLength int, breakTags TagSet) (string, bool) {
	return w.PreviousString(start, end, crossed, w.LineBreak(lineLength, breakTags))
}

func (w *Walker) NextParagraph(start, end *Cursor, crossed *Crossed) (string, bool) {
	return w.NextString(start, end, crossed, w.ParagraphBreak())
}

func (w *Walker) PreviousParagraph(start, end *Cursor, crossed *Crossed) (string, bool) {
	return w.PreviousString(start, end, crossed, w.ParagraphBreak())
}
