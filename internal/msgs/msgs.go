// Package msgs holds the spoken message catalog. Messages are looked up by
// key with ordered substitution arguments; plural forms are selected by the
// golang.org/x/text plural rules of the catalog language.
package msgs

import (
	"fmt"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys.
const (
	TagLink        = "tag_link"
	Collection     = "collection"
	RoleHeading    = "role_heading"
	RoleHeadingBr  = "role_heading_brief"
	RoleButton     = "role_button"
	RoleCheckbox   = "role_checkbox"
	RoleRadio      = "role_radio"
	RoleTextbox    = "role_textbox"
	RoleTextarea   = "role_textarea"
	RoleSlider     = "role_slider"
	RoleCombobox   = "role_combobox"
	RoleListbox    = "role_listbox"
	RoleOption     = "role_option"
	RoleList       = "role_list"
	RoleTable      = "role_table"
	RoleImage      = "role_image"
	RoleNavigation = "role_navigation"
	RoleMain       = "role_main"
	RoleBanner     = "role_banner"
	RoleContentInf = "role_contentinfo"
	RoleComplement = "role_complementary"
	RoleRegion     = "role_region"
	RoleForm       = "role_form"
	RoleArticle    = "role_article"
	RoleQuote      = "role_blockquote"
	RoleSeparator  = "role_separator"
	RoleGroup      = "role_group"
	RoleMenu       = "role_menu"
	RoleMenuItem   = "role_menuitem"
	RoleTab        = "role_tab"
	RoleDialog     = "role_dialog"
	StateChecked   = "state_checked"
	StateUnchecked = "state_not_checked"
	StateExpanded  = "state_expanded"
	StateCollapsed = "state_collapsed"
	StatePressed   = "state_pressed"
	StateSelected  = "state_selected"
	StateDisabled  = "state_disabled"
	StateRequired  = "state_required"
	StateListItems = "state_list_items"
)

var english = map[string]string{
	TagLink:        "Link",
	RoleHeading:    "Heading %d",
	RoleHeadingBr:  "H%d",
	RoleButton:     "Button",
	RoleCheckbox:   "Check box",
	RoleRadio:      "Radio button",
	RoleTextbox:    "Edit text",
	RoleTextarea:   "Text area",
	RoleSlider:     "Slider",
	RoleCombobox:   "Combo box",
	RoleListbox:    "List box",
	RoleOption:     "Option",
	RoleList:       "List",
	RoleTable:      "Table",
	RoleImage:      "Image",
	RoleNavigation: "Navigation",
	RoleMain:       "Main",
	RoleBanner:     "Banner",
	RoleContentInf: "Content info",
	RoleComplement: "Complementary",
	RoleRegion:     "Region",
	RoleForm:       "Form",
	RoleArticle:    "Article",
	RoleQuote:      "Quote",
	RoleSeparator:  "Separator",
	RoleGroup:      "Group",
	RoleMenu:       "Menu",
	RoleMenuItem:   "Menu item",
	RoleTab:        "Tab",
	RoleDialog:     "Dialog",
	StateChecked:   "checked",
	StateUnchecked: "not checked",
	StateExpanded:  "expanded",
	StateCollapsed: "collapsed",
	StatePressed:   "pressed",
	StateSelected:  "selected",
	StateDisabled:  "disabled",
	StateRequired:  "required",
}

var spanish = map[string]string{
	TagLink:        "Enlace",
	RoleHeading:    "Encabezado %d",
	RoleHeadingBr:  "E%d",
	RoleButton:     "Botón",
	RoleCheckbox:   "Casilla",
	RoleList:       "Lista",
	RoleTable:      "Tabla",
	RoleImage:      "Imagen",
	RoleNavigation: "Navegación",
	StateChecked:   "marcada",
	StateUnchecked: "no marcada",
}

// Catalog resolves message keys for one language. It is safe for
// concurrent use once built.
type Catalog struct {
	tag     language.Tag
	printer *message.Printer
}

// Supported lists the languages with translations.
var Supported = []language.Tag{language.English, language.Spanish}

// New builds the catalog for lang, a BCP 47 tag such as "en" or "es-MX".
// Unsupported languages fall back to English.
func New(lang string) (*Catalog, error) {
	requested, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("parse language %q: %w", lang, err)
	}

	b := catalog.NewBuilder(catalog.Fallback(language.English))
	if err := load(b, language.English, english); err != nil {
		return nil, err
	}
	if err := load(b, language.Spanish, overlay(english, spanish)); err != nil {
		return nil, err
	}
	plurals := []struct {
		tag       language.Tag
		key       string
		one, many string
	}{
		{language.English, Collection, "%[1]s collection with %[2]d item", "%[1]s collection with %[2]d items"},
		{language.Spanish, Collection, "Colección de %[1]s con %[2]d elemento", "Colección de %[1]s con %[2]d elementos"},
		{language.English, StateListItems, "with %d item", "with %d items"},
		{language.Spanish, StateListItems, "con %d elemento", "con %d elementos"},
	}
	for _, p := range plurals {
		argIndex := 2
		if p.key == StateListItems {
			argIndex = 1
		}
		msg := plural.Selectf(argIndex, "%d", "one", p.one, "other", p.many)
		if err := b.Set(p.tag, p.key, msg); err != nil {
			return nil, fmt.Errorf("set %s/%s: %w", p.tag, p.key, err)
		}
	}

	matcher := language.NewMatcher(Supported)
	_, idx, _ := matcher.Match(requested)
	tag := Supported[idx]
	return &Catalog{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(b)),
	}, nil
}

// MustNew is New for package level defaults and tests.
func MustNew(lang string) *Catalog {
	c, err := New(lang)
	if err != nil {
		panic(err)
	}
	return c
}

func load(b *catalog.Builder, tag language.Tag, table map[string]string) error {
	for key, msg := range table {
		if err := b.SetString(tag, key, msg); err != nil {
			return fmt.Errorf("set %s/%s: %w", tag, key, err)
		}
	}
	return nil
}

// overlay returns base with the translated entries replaced, so keys
// without a translation still speak in the base language.
func overlay(base, translated map[string]string) map[string]string {
	out := make(map[string]string, len(base))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range translated {
		out[k] = v
	}
	return out
}

// Get formats the message stored under key with args. Unknown keys are
// formatted as-is.
func (c *Catalog) Get(key string, args ...any) string {
	return c.printer.Sprintf(key, args...)
}

// Language returns the resolved catalog language.
func (c *Catalog) Language() language.Tag { return c.tag }
