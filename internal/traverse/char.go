package traverse

import "unicode/utf8"

// NextChar finds the next character after end; on exit start and end
// surround it. With skipWhitespace the scan runs on to the first
// non-whitespace character. Without it, a leading whitespace run is reported
// as a single " " and the cursors bracket the whole run, up to but not
// including the next non-whitespace character. When that run passes a
// skipped node the cursors shrink to the part after it so the skipped
// content stays outside the range. Returns false at the document end,
// leaving both cursors untouched.
func (w *Walker) NextChar(start, end *Cursor, crossed *Crossed, skipWhitespace bool) (string, bool) {
	origStart, origEnd := *start, *end
	var local Crossed

	*start = *end
	s := w.StepForward(end, &local)
	initialWhitespace := !s.End && IsWhitespace(s.Char)
	for !s.End && (IsWhitespace(s.Char) || w.oracle.Skippable(end.Node)) {
		s = w.StepForward(end, &local)
	}
	if s.End {
		*start, *end = origStart, origEnd
		return "", false
	}
	crossed.extend(local)

	if skipWhitespace || !initialWhitespace {
		*start = *end
		start.Index -= s.size
		return string(s.Char), true
	}

	end.Index -= s.size
	if w.anySkippable(local) {
		*start = *end
		if r, size := utf8.DecodeLastRuneInString(start.Text[:start.Index]); size > 0 && IsWhitespace(r) {
			start.Index -= size
		}
	}
	return " ", true
}

// PreviousChar mirrors NextChar, searching backward from start.
func (w *Walker) PreviousChar(start, end *Cursor, crossed *Crossed, skipWhitespace bool) (string, bool) {
	origStart, origEnd := *start, *end
	var local Crossed

	*end = *start
	s := w.StepBackward(start, &local)
	initialWhitespace := !s.End && IsWhitespace(s.Char)
	for !s.End && (IsWhitespace(s.Char) || w.oracle.Skippable(start.Node)) {
		s = w.StepBackward(start, &local)
	}
	if s.End {
		*start, *end = origStart, origEnd
		return "", false
	}
	crossed.extend(local)

	if skipWhitespace || !initialWhitespace {
		*end = *start
		end.Index += s.size
		return string(s.Char), true
	}

	start.Index += s.size
	if w.anySkippable(local) {
		*end = *start
		if r, size := utf8.DecodeRuneInString(end.Text[end.Index:]); size > 0 && IsWhitespace(r) {
			end.Index += size
		}
	}
	return " ", true
}

func (w *Walker) anySkippable(nodes Crossed) bool {
	for _, n := range nodes {
		if w.oracle.Skippable(n) {
			return true
		}
	}
	return false
}
