// Package a11y derives presentation and accessibility facts for document
// nodes from their tags and attributes: visibility, display, roles, names,
// values and states.
package a11y

import (
	"strings"

	"github.com/dgallion1/docvox/internal/doctree"
	"github.com/dgallion1/docvox/internal/traverse"
)

// DefaultSkipClass marks subtrees left out of reading.
const DefaultSkipClass = "vox-skip"

var tagDisplay = map[string]traverse.Display{
	"address": traverse.DisplayBlock, "article": traverse.DisplayBlock, "aside": traverse.DisplayBlock,
	"blockquote": traverse.DisplayBlock, "body": traverse.DisplayBlock, "dd": traverse.DisplayBlock,
	"details": traverse.DisplayBlock, "dialog": traverse.DisplayBlock, "div": traverse.DisplayBlock,
	"dl": traverse.DisplayBlock, "dt": traverse.DisplayBlock, "fieldset": traverse.DisplayBlock,
	"figcaption": traverse.DisplayBlock, "figure": traverse.DisplayBlock, "footer": traverse.DisplayBlock,
	"form": traverse.DisplayBlock, "h1": traverse.DisplayBlock, "h2": traverse.DisplayBlock,
	"h3": traverse.DisplayBlock, "h4": traverse.DisplayBlock, "h5": traverse.DisplayBlock,
	"h6": traverse.DisplayBlock, "header": traverse.DisplayBlock, "hr": traverse.DisplayBlock,
	"html": traverse.DisplayBlock, "legend": traverse.DisplayBlock, "main": traverse.DisplayBlock,
	"nav": traverse.DisplayBlock, "ol": traverse.DisplayBlock, "p": traverse.DisplayBlock,
	"pre": traverse.DisplayBlock, "section": traverse.DisplayBlock, "table": traverse.DisplayBlock,
	"tbody": traverse.DisplayBlock, "thead": traverse.DisplayBlock, "tfoot": traverse.DisplayBlock,
	"tr": traverse.DisplayBlock, "ul": traverse.DisplayBlock, "caption": traverse.DisplayBlock,

	"li": traverse.DisplayListItem,
	"td": traverse.DisplayTableCell,
	"th": traverse.DisplayTableCell,

	"head": traverse.DisplayNone, "script": traverse.DisplayNone, "style": traverse.DisplayNone,
	"template": traverse.DisplayNone, "title": traverse.DisplayNone, "noscript": traverse.DisplayNone,
}

var leafTags = map[string]bool{
	"select": true, "textarea": true, "object": true, "svg": true,
}

// Oracle answers traverse.Oracle questions from tags, the hidden and
// aria-hidden attributes and inline style declarations.
type Oracle struct {
	doc       *doctree.Document
	skipClass string
}

func NewOracle(doc *doctree.Document, skipClass string) *Oracle {
	if skipClass == "" {
		skipClass = DefaultSkipClass
	}
	return &Oracle{doc: doc, skipClass: skipClass}
}

// Visible reports whether n is rendered. Text nodes are always visible;
// hiding is a property of their elements.
func (o *Oracle) Visible(n doctree.NodeID) bool {
	if o.doc.IsText(n) {
		return true
	}
	if o.doc.HasAttr(n, "hidden") {
		return false
	}
	if v, _ := o.doc.Attr(n, "aria-hidden"); v == "true" {
		return false
	}
	style := parseStyle(o.doc, n)
	if style["display"] == "none" {
		return false
	}
	if v := style["visibility"]; v == "hidden" || v == "collapse" {
		return false
	}
	return o.Display(n) != traverse.DisplayNone
}

// Skippable reports whether n or one of its ancestors carries the skip
// class.
func (o *Oracle) Skippable(n doctree.NodeID) bool {
	for ; n != doctree.NoNode; n = o.doc.Parent(n) {
		if o.doc.IsElement(n) && o.doc.HasClass(n, o.skipClass) {
			return true
		}
	}
	return false
}

// Display returns the inline style display when one is declared, else the
// tag's default.
func (o *Oracle) Display(n doctree.NodeID) traverse.Display {
	if o.doc.IsText(n) {
		return traverse.DisplayInline
	}
	if v, ok := parseStyle(o.doc, n)["display"]; ok && v != "" {
		return traverse.Display(v)
	}
	if d, ok := tagDisplay[o.doc.Tag(n)]; ok {
		return d
	}
	return traverse.DisplayInline
}

func (o *Oracle) TreatAsLeaf(n doctree.NodeID) bool {
	return leafTags[o.doc.Tag(n)]
}

// parseStyle reads the declarations of an inline style attribute. Property
// names and values are lower cased; !important is dropped.
func parseStyle(doc *doctree.Document, n doctree.NodeID) map[string]string {
	raw, ok := doc.Attr(n, "style")
	if !ok {
		return nil
	}
	out := make(map[string]string)
	for decl := range strings.SplitSeq(raw, ";") {
		prop, val, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		val = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(val), "!important"))
		out[strings.ToLower(strings.TrimSpace(prop))] = strings.ToLower(val)
	}
	return out
}
