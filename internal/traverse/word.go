package traverse

import (
	"strings"
	"unicode/utf8"
)

// IsWhitespace reports whether r is a tab, line feed, carriage return or
// space.
func IsWhitespace(r rune) bool {
	return r == ' ' || r == '\n' || r == '\r' || r == '\t'
}

// NextWord finds the next word after end. A word is a run of one or more
// non-whitespace characters that crosses no element boundary. On success
// start and end surround the word; elements crossed before its first
// character are appended to crossed. The boundary that ends a word is not
// consumed. Returns false, leaving the cursors alone, at the document end.
func (w *Walker) NextWord(start, end *Cursor, crossed *Crossed) (string, bool) {
	cur := *end
	s := w.StepForward(&cur, crossed)
	for !s.End && (IsWhitespace(s.Char) || w.oracle.Skippable(cur.Node)) {
		s = w.StepForward(&cur, crossed)
	}
	if s.End {
		return "", false
	}

	*start = cur
	start.Index -= s.size
	*end = cur

	var word strings.Builder
	word.WriteRune(s.Char)
	for {
		var fresh Crossed
		s = w.StepForward(&cur, &fresh)
		if s.End || IsWhitespace(s.Char) || len(fresh) > 0 {
			break
		}
		word.WriteRune(s.Char)
		*end = cur
	}
	return word.String(), true
}

// PreviousWord mirrors NextWord, searching backward from start.
func (w *Walker) PreviousWord(start, end *Cursor, crossed *Crossed) (string, bool) {
	cur := *start
	s := w.StepBackward(&cur, crossed)
	for !s.End && (IsWhitespace(s.Char) || w.oracle.Skippable(cur.Node)) {
		s = w.StepBackward(&cur, crossed)
	}
	if s.End {
		return "", false
	}

	*end = cur
	end.Index += s.size
	*start = cur

	runes := []rune{s.Char}
	for {
		var fresh Crossed
		s = w.StepBackward(&cur, &fresh)
		if s.End || IsWhitespace(s.Char) || len(fresh) > 0 {
			break
		}
		runes = append(runes, s.Char)
		*start = cur
	}

	buf := make([]byte, 0, len(runes))
	for i := len(runes) - 1; i >= 0; i-- {
		buf = utf8.AppendRune(buf, runes[i])
	}
	return string(buf), true
}
