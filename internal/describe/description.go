// Package describe turns ancestor chains of a document into structured
// spoken descriptions and summarizes runs of alike descriptions.
package describe

import (
	"fmt"
	"strings"
)

// Earcon names a non-speech audio cue.
type Earcon string

// Personality is an opaque voice style token. Empty means none.
type Personality string

// Verbosity controls how much role and state text is spoken.
type Verbosity int

const (
	Brief Verbosity = iota
	Verbose
)

func (v Verbosity) String() string {
	if v == Brief {
		return "brief"
	}
	return "verbose"
}

// ParseVerbosity accepts "brief" and "verbose".
func ParseVerbosity(s string) (Verbosity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "brief":
		return Brief, nil
	case "", "verbose":
		return Verbose, nil
	}
	return Verbose, fmt.Errorf("unknown verbosity %q", s)
}

// NavDescription is what gets spoken for one navigation step.
type NavDescription struct {
	Context     string      `json:"context,omitempty"`
	Text        string      `json:"text"`
	UserValue   string      `json:"user_value,omitempty"`
	Annotation  string      `json:"annotation,omitempty"`
	Earcons     []Earcon    `json:"earcons,omitempty"`
	Personality Personality `json:"personality,omitempty"`
}

// String returns the description in speaking order.
func (d NavDescription) String() string {
	return CollapseWhitespace(strings.Join([]string{d.Context, d.Text, d.UserValue, d.Annotation}, " "))
}

// IsEmpty reports whether nothing would be spoken.
func (d NavDescription) IsEmpty() bool {
	return d.Context == "" && d.Text == "" && d.UserValue == "" && d.Annotation == ""
}

// CollapseWhitespace trims s and folds every whitespace run into one space.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func (d *NavDescription) collapse() {
	d.Context = CollapseWhitespace(d.Context)
	d.Text = CollapseWhitespace(d.Text)
	d.UserValue = CollapseWhitespace(d.UserValue)
	d.Annotation = CollapseWhitespace(d.Annotation)
}
