package traverse

import "strings"

// BreakFunc decides whether a string should end before word is added.
// soFar is the text accumulated so far, crossed the elements passed in
// reaching word.
type BreakFunc func(soFar, word string, crossed Crossed) bool

// NextString accumulates words after end until breakBefore fires, joining
// them with single spaces. The first word is always taken, so any non-end
// result is non-empty and the cursor always advances. The word that
// triggered the break is not consumed and starts the next call. On exit
// start and end surround the returned string and crossed holds the elements
// passed to reach each accepted word.
func (w *Walker) NextString(start, end *Cursor, crossed *Crossed, breakBefore BreakFunc) (string, bool) {
	wordStart, wordEnd := *end, *end
	var fresh Crossed
	word, ok := w.NextWord(&wordStart, &wordEnd, &fresh)
	if !ok {
		return "", false
	}
	*start = wordStart

	var str strings.Builder
	for str.Len() == 0 || !breakBefore(str.String(), word, fresh) {
		if str.Len() > 0 {
			str.WriteByte(' ')
		}
		str.WriteString(word)
		crossed.extend(fresh)
		*end = wordEnd

		fresh = nil
		if word, ok = w.NextWord(&wordStart, &wordEnd, &fresh); !ok {
			break
		}
	}
	return str.String(), true
}

// PreviousString mirrors NextString, accumulating words backward from start.
func (w *Walker) PreviousString(start, end *Cursor, crossed *Crossed, breakBefore BreakFunc) (string, bool) {
	wordStart, wordEnd := *start, *start
	var fresh Crossed
	word, ok := w.PreviousWord(&wordStart, &wordEnd, &fresh)
	if !ok {
		return "", false
	}
	*end = wordEnd

	str := ""
	for str == "" || !breakBefore(str, word, fresh) {
		if str != "" {
			str = word + " " + str
		} else {
			str = word
		}
		crossed.extend(fresh)
		*start = wordStart

		fresh = nil
		if word, ok = w.PreviousWord(&wordStart, &wordEnd, &fresh); !ok {
			break
		}
	}
	return str, true
}
