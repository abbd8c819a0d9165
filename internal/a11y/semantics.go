package a11y

import (
	"strconv"
	"strings"

	"github.com/dgallion1/docvox/internal/describe"
	"github.com/dgallion1/docvox/internal/doctree"
	"github.com/dgallion1/docvox/internal/msgs"
)

// Personality tokens.
const (
	PersonalityHeading    describe.Personality = "heading"
	PersonalityLink       describe.Personality = "link"
	PersonalityAnnotation describe.Personality = "annotation"
)

// Earcons.
const (
	EarconLink         describe.Earcon = "link"
	EarconButton       describe.Earcon = "button"
	EarconCheckOn      describe.Earcon = "check_on"
	EarconCheckOff     describe.Earcon = "check_off"
	EarconEditableText describe.Earcon = "editable_text"
	EarconListbox      describe.Earcon = "listbox"
	EarconList         describe.Earcon = "list"
	EarconSelect       describe.Earcon = "select"
)

var ariaRoles = map[string]string{
	"button":        msgs.RoleButton,
	"checkbox":      msgs.RoleCheckbox,
	"radio":         msgs.RoleRadio,
	"textbox":       msgs.RoleTextbox,
	"searchbox":     msgs.RoleTextbox,
	"slider":        msgs.RoleSlider,
	"combobox":      msgs.RoleCombobox,
	"listbox":       msgs.RoleListbox,
	"option":        msgs.RoleOption,
	"list":          msgs.RoleList,
	"table":         msgs.RoleTable,
	"grid":          msgs.RoleTable,
	"img":           msgs.RoleImage,
	"link":          msgs.TagLink,
	"navigation":    msgs.RoleNavigation,
	"main":          msgs.RoleMain,
	"banner":        msgs.RoleBanner,
	"contentinfo":   msgs.RoleContentInf,
	"complementary": msgs.RoleComplement,
	"region":        msgs.RoleRegion,
	"form":          msgs.RoleForm,
	"article":       msgs.RoleArticle,
	"separator":     msgs.RoleSeparator,
	"group":         msgs.RoleGroup,
	"radiogroup":    msgs.RoleGroup,
	"menu":          msgs.RoleMenu,
	"menubar":       msgs.RoleMenu,
	"menuitem":      msgs.RoleMenuItem,
	"tab":           msgs.RoleTab,
	"dialog":        msgs.RoleDialog,
	"alertdialog":   msgs.RoleDialog,
}

var tagRoles = map[string]string{
	"button":     msgs.RoleButton,
	"textarea":   msgs.RoleTextarea,
	"ul":         msgs.RoleList,
	"ol":         msgs.RoleList,
	"table":      msgs.RoleTable,
	"img":        msgs.RoleImage,
	"nav":        msgs.RoleNavigation,
	"main":       msgs.RoleMain,
	"header":     msgs.RoleBanner,
	"footer":     msgs.RoleContentInf,
	"aside":      msgs.RoleComplement,
	"form":       msgs.RoleForm,
	"article":    msgs.RoleArticle,
	"blockquote": msgs.RoleQuote,
	"hr":         msgs.RoleSeparator,
	"fieldset":   msgs.RoleGroup,
	"dialog":     msgs.RoleDialog,
	"option":     msgs.RoleOption,
}

var inputRoles = map[string]string{
	"checkbox": msgs.RoleCheckbox,
	"radio":    msgs.RoleRadio,
	"range":    msgs.RoleSlider,
	"button":   msgs.RoleButton,
	"submit":   msgs.RoleButton,
	"reset":    msgs.RoleButton,
	"image":    msgs.RoleButton,
}

// Semantics implements describe.Semantics for one document.
type Semantics struct {
	doc    *doctree.Document
	oracle *Oracle
	loc    describe.Localizer
	ids    map[string]doctree.NodeID
	labels map[string]doctree.NodeID // label[for] by target id
}

func NewSemantics(doc *doctree.Document, oracle *Oracle, loc describe.Localizer) *Semantics {
	s := &Semantics{
		doc:    doc,
		oracle: oracle,
		loc:    loc,
		ids:    make(map[string]doctree.NodeID),
		labels: make(map[string]doctree.NodeID),
	}
	for i := range doc.Len() {
		n := doctree.NodeID(i)
		if !doc.IsElement(n) {
			continue
		}
		if id, ok := doc.Attr(n, "id"); ok && id != "" {
			if _, dup := s.ids[id]; !dup {
				s.ids[id] = n
			}
		}
		if doc.Tag(n) == "label" {
			if target, ok := doc.Attr(n, "for"); ok && target != "" {
				s.labels[target] = n
			}
		}
	}
	return s
}

// Name computes the accessible name of n. Explicit labels win over
// content; recursive names fall back to the visible text below n.
func (s *Semantics) Name(n doctree.NodeID, recursive bool) string {
	if s.doc.IsText(n) {
		return s.doc.Text(n)
	}
	if refs, ok := s.doc.Attr(n, "aria-labelledby"); ok {
		var parts []string
		for _, id := range strings.Fields(refs) {
			if ref, ok := s.ids[id]; ok {
				parts = append(parts, s.textOf(ref))
			}
		}
		if name := strings.TrimSpace(strings.Join(parts, " ")); name != "" {
			return name
		}
	}
	if label := s.attr(n, "aria-label"); label != "" {
		return label
	}
	if id := s.attr(n, "id"); id != "" && isFormControl(s.doc, n) {
		if label, ok := s.labels[id]; ok {
			return s.textOf(label)
		}
	}
	switch tag := s.doc.Tag(n); {
	case tag == "img" || tag == "area":
		if alt := s.attr(n, "alt"); alt != "" {
			return alt
		}
	case tag == "input":
		switch s.inputType(n) {
		case "button", "submit", "reset":
			if v := s.attr(n, "value"); v != "" {
				return v
			}
		case "image":
			if alt := s.attr(n, "alt"); alt != "" {
				return alt
			}
		}
	case tag == "fieldset":
		for _, c := range s.doc.Children(n) {
			if s.doc.Tag(c) == "legend" {
				return s.textOf(c)
			}
		}
	}
	if title := s.attr(n, "title"); title != "" {
		return title
	}
	if recursive && !isFormControl(s.doc, n) {
		return s.textOf(n)
	}
	return ""
}

// Value returns what the user has entered or selected in a control.
func (s *Semantics) Value(n doctree.NodeID) string {
	if s.doc.IsText(n) {
		return ""
	}
	switch s.doc.Tag(n) {
	case "input":
		switch s.inputType(n) {
		case "checkbox", "radio", "button", "submit", "reset", "image", "hidden", "password":
			return ""
		}
		return s.attr(n, "value")
	case "textarea":
		return s.doc.TextContent(n)
	case "select":
		first := doctree.NoNode
		for _, o := range s.options(n) {
			if first == doctree.NoNode {
				first = o
			}
			if s.doc.HasAttr(o, "selected") {
				return s.doc.TextContent(o)
			}
		}
		if first != doctree.NoNode {
			return s.doc.TextContent(first)
		}
		return ""
	}
	if v := s.attr(n, "aria-valuetext"); v != "" {
		return v
	}
	return s.attr(n, "aria-valuenow")
}

// Role returns the localized role description, "" for nodes with no
// spoken role.
func (s *Semantics) Role(n doctree.NodeID, v describe.Verbosity) string {
	if s.doc.IsText(n) {
		return ""
	}
	if level := s.headingLevel(n); level > 0 {
		if v == describe.Brief {
			return s.loc.Get(msgs.RoleHeadingBr, level)
		}
		return s.loc.Get(msgs.RoleHeading, level)
	}
	if key := s.roleKey(n); key != "" {
		return s.loc.Get(key)
	}
	return ""
}

// State describes checked, expanded, pressed, selected, disabled and
// required states. verbose adds list sizes.
func (s *Semantics) State(n doctree.NodeID, verbose bool) string {
	if s.doc.IsText(n) {
		return ""
	}
	var parts []string
	add := func(key string, args ...any) { parts = append(parts, s.loc.Get(key, args...)) }

	if s.isCheckable(n) {
		if s.isChecked(n) {
			add(msgs.StateChecked)
		} else {
			add(msgs.StateUnchecked)
		}
	}
	switch s.attr(n, "aria-expanded") {
	case "true":
		add(msgs.StateExpanded)
	case "false":
		add(msgs.StateCollapsed)
	}
	if s.attr(n, "aria-pressed") == "true" {
		add(msgs.StatePressed)
	}
	if s.attr(n, "aria-selected") == "true" {
		add(msgs.StateSelected)
	}
	if s.doc.HasAttr(n, "disabled") || s.attr(n, "aria-disabled") == "true" {
		add(msgs.StateDisabled)
	}
	if s.doc.HasAttr(n, "required") || s.attr(n, "aria-required") == "true" {
		add(msgs.StateRequired)
	}
	if verbose && s.roleKey(n) == msgs.RoleList {
		items := 0
		for _, c := range s.doc.Children(n) {
			if s.doc.Tag(c) == "li" || s.doc.Role(c) == "listitem" {
				items++
			}
		}
		add(msgs.StateListItems, items)
	}
	return strings.Join(parts, " ")
}

func (s *Semantics) Personality(n doctree.NodeID) describe.Personality {
	if s.doc.IsText(n) {
		return ""
	}
	switch {
	case s.headingLevel(n) > 0:
		return PersonalityHeading
	case s.roleKey(n) == msgs.TagLink:
		return PersonalityLink
	case s.doc.Tag(n) == "blockquote":
		return PersonalityAnnotation
	}
	return ""
}

func (s *Semantics) Earcon(n doctree.NodeID) describe.Earcon {
	if s.doc.IsText(n) {
		return ""
	}
	if s.isCheckable(n) {
		if s.isChecked(n) {
			return EarconCheckOn
		}
		return EarconCheckOff
	}
	switch s.roleKey(n) {
	case msgs.TagLink:
		return EarconLink
	case msgs.RoleButton:
		return EarconButton
	case msgs.RoleTextbox, msgs.RoleTextarea:
		return EarconEditableText
	case msgs.RoleListbox:
		return EarconListbox
	case msgs.RoleCombobox:
		return EarconSelect
	case msgs.RoleList:
		return EarconList
	}
	return ""
}

// roleKey maps n to a message key: an explicit role attribute first, then
// the implicit role of its tag.
func (s *Semantics) roleKey(n doctree.NodeID) string {
	if s.doc.HasAttr(n, "role") {
		return ariaRoles[s.doc.Role(n)]
	}
	switch tag := s.doc.Tag(n); tag {
	case "a", "area":
		if s.doc.HasAttr(n, "href") {
			return msgs.TagLink
		}
		return ""
	case "input":
		if key, ok := inputRoles[s.inputType(n)]; ok {
			return key
		}
		if s.inputType(n) == "hidden" {
			return ""
		}
		return msgs.RoleTextbox
	case "select":
		if s.doc.HasAttr(n, "multiple") {
			return msgs.RoleListbox
		}
		return msgs.RoleCombobox
	case "img":
		if alt, ok := s.doc.Attr(n, "alt"); ok && alt == "" {
			return ""
		}
		return msgs.RoleImage
	default:
		return tagRoles[tag]
	}
}

func (s *Semantics) headingLevel(n doctree.NodeID) int {
	if role := s.doc.Role(n); role != "" {
		if role != "heading" {
			return 0
		}
		if l, err := strconv.Atoi(s.attr(n, "aria-level")); err == nil && l > 0 {
			return l
		}
		return 2
	}
	return doctree.HeadingLevel(s.doc.Tag(n))
}

func (s *Semantics) isCheckable(n doctree.NodeID) bool {
	switch s.doc.Role(n) {
	case "checkbox", "radio", "menuitemcheckbox", "menuitemradio", "switch":
		return true
	}
	if s.doc.Tag(n) == "input" {
		t := s.inputType(n)
		return t == "checkbox" || t == "radio"
	}
	return false
}

func (s *Semantics) isChecked(n doctree.NodeID) bool {
	if v, ok := s.doc.Attr(n, "aria-checked"); ok {
		return v == "true" || v == "mixed"
	}
	return s.doc.HasAttr(n, "checked")
}

func (s *Semantics) inputType(n doctree.NodeID) string {
	t := strings.ToLower(s.attr(n, "type"))
	if t == "" {
		return "text"
	}
	return t
}

func (s *Semantics) options(sel doctree.NodeID) []doctree.NodeID {
	var out []doctree.NodeID
	for _, c := range s.doc.Children(sel) {
		switch s.doc.Tag(c) {
		case "option":
			out = append(out, c)
		case "optgroup":
			out = append(out, s.options(c)...)
		}
	}
	return out
}

func (s *Semantics) attr(n doctree.NodeID, key string) string {
	v, _ := s.doc.Attr(n, key)
	return strings.TrimSpace(v)
}

// textOf joins the rendered text below n. Hidden and skipped subtrees are
// left out; images contribute their alt text.
func (s *Semantics) textOf(n doctree.NodeID) string {
	var buf strings.Builder
	var walk func(doctree.NodeID)
	walk = func(c doctree.NodeID) {
		if !s.oracle.Visible(c) || s.oracle.Skippable(c) {
			return
		}
		if s.doc.IsText(c) {
			buf.WriteString(s.doc.Text(c))
			return
		}
		if s.doc.Tag(c) == "img" {
			buf.WriteString(" " + s.attr(c, "alt") + " ")
			return
		}
		for _, cc := range s.doc.Children(c) {
			walk(cc)
		}
	}
	walk(n)
	return describe.CollapseWhitespace(buf.String())
}

func isFormControl(doc *doctree.Document, n doctree.NodeID) bool {
	switch doc.Tag(n) {
	case "input", "select", "textarea":
		return true
	}
	return false
}
