package describe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgallion1/docvox/internal/doctree"
)

// navList builds <body><ul><li><a>Home</a></li><li><a>About</a></li></ul></body>.
func navList() (*doctree.Document, []doctree.NodeID) {
	b := doctree.NewBuilder("test", "body")
	ul := b.Element(b.Root(), "ul")
	li := b.Element(ul, "li")
	a := b.Element(li, "a", "href", "/")
	home := b.Text(a, "Home")
	li2 := b.Element(ul, "li")
	a2 := b.Element(li2, "a", "href", "/about")
	b.Text(a2, "About")
	doc := b.Build()
	return doc, doc.Ancestors(home)
}

func TestDescribe_ContextAndAnnotation(t *testing.T) {
	doc, chain := navList()
	d, err := newTestBuilder(doc).Describe(chain, true, Verbose)
	require.NoError(t, err)

	assert.Equal(t, "List", d.Context)
	assert.Equal(t, "Home", d.Text)
	assert.Equal(t, "Link", d.Annotation)
	assert.Equal(t, "List Home Link", d.String())
}

func TestDescribe_SingleChildAncestorJoinsAnnotation(t *testing.T) {
	b := doctree.NewBuilder("test", "body")
	ul := b.Element(b.Root(), "ul")
	li := b.Element(ul, "li")
	a := b.Element(li, "a")
	text := b.Text(a, "Only")
	doc := b.Build()

	d, err := newTestBuilder(doc).Describe(doc.Ancestors(text), true, Verbose)
	require.NoError(t, err)
	assert.Empty(t, d.Context)
	assert.Equal(t, "Link List", d.Annotation)
}

func TestDescribe_StateFollowsRouting(t *testing.T) {
	b := doctree.NewBuilder("test", "body")
	a := b.Element(b.Root(), "a", "data-state", "visited")
	text := b.Text(a, "Docs")
	doc := b.Build()

	d, err := newTestBuilder(doc).Describe(doc.Ancestors(text), true, Verbose)
	require.NoError(t, err)
	assert.Equal(t, "Link visited", d.Annotation)
}

func TestDescribe_DialogNeverContributes(t *testing.T) {
	for _, role := range []string{"dialog", "alertdialog", "Dialog", " alertdialog region"} {
		t.Run(role, func(t *testing.T) {
			b := doctree.NewBuilder("test", "body")
			dlg := b.Element(b.Root(), "div", "role", role, "aria-label", "Settings",
				"data-earcon", "alert", "data-voice", "announce")
			a := b.Element(dlg, "a")
			text := b.Text(a, "Close")
			doc := b.Build()
			builder := newTestBuilder(doc)

			d, err := builder.Describe(doc.Ancestors(text), true, Verbose)
			require.NoError(t, err)
			assert.NotContains(t, d.String(), "Settings")
			assert.NotContains(t, d.String(), role)
			assert.Empty(t, d.Earcons)
			assert.Empty(t, d.Personality)

			// Dialog as the leaf of the chain.
			d, err = builder.Describe([]doctree.NodeID{doc.Root(), dlg}, true, Verbose)
			require.NoError(t, err)
			assert.True(t, d.IsEmpty(), "got %+v", d)
		})
	}
}

func TestIsDialog(t *testing.T) {
	b := doctree.NewBuilder("test", "body")
	upper := b.Element(b.Root(), "div", "role", "DIALOG")
	list := b.Element(b.Root(), "div", "role", "dialog document")
	later := b.Element(b.Root(), "div", "role", "document dialog")
	plain := b.Element(b.Root(), "div")
	doc := b.Build()

	assert.True(t, IsDialog(doc, upper))
	assert.True(t, IsDialog(doc, list))
	assert.False(t, IsDialog(doc, later), "only the first role token counts")
	assert.False(t, IsDialog(doc, plain))
}

func TestDescribe_ExplicitRoleGetsNamePrefix(t *testing.T) {
	b := doctree.NewBuilder("test", "body")
	nav := b.Element(b.Root(), "div", "role", "navigation", "aria-label", "Main")
	a := b.Element(nav, "a")
	text := b.Text(a, "Home")
	doc := b.Build()

	d, err := newTestBuilder(doc).Describe(doc.Ancestors(text), true, Verbose)
	require.NoError(t, err)
	assert.Equal(t, "Link Main navigation", d.Annotation)
}

func TestDescribe_LeafRoleHasNoNamePrefix(t *testing.T) {
	b := doctree.NewBuilder("test", "body")
	btn := b.Element(b.Root(), "div", "role", "button", "aria-label", "Save")
	doc := b.Build()

	d, err := newTestBuilder(doc).Describe(doc.Ancestors(btn), true, Verbose)
	require.NoError(t, err)
	assert.Equal(t, "Save", d.Text)
	assert.Equal(t, "button", d.Annotation)
}

func TestDescribe_PersonalityInnermostWins(t *testing.T) {
	b := doctree.NewBuilder("test", "body")
	outer := b.Element(b.Root(), "div", "data-voice", "outer", "data-earcon", "section")
	inner := b.Element(outer, "a", "data-voice", "inner", "data-earcon", "link")
	mid := b.Element(inner, "span", "data-earcon", "section")
	text := b.Text(mid, "x")
	doc := b.Build()

	d, err := newTestBuilder(doc).Describe(doc.Ancestors(text), true, Verbose)
	require.NoError(t, err)
	assert.Equal(t, Personality("inner"), d.Personality)
	assert.Equal(t, []Earcon{"section", "link"}, d.Earcons)
}

func TestDescribe_UserValueAndCollapse(t *testing.T) {
	b := doctree.NewBuilder("test", "body")
	in := b.Element(b.Root(), "input", "aria-label", "  First \n name ", "value", "Ada   Lovelace")
	doc := b.Build()

	d, err := newTestBuilder(doc).Describe(doc.Ancestors(in), true, Verbose)
	require.NoError(t, err)
	assert.Equal(t, "First name", d.Text)
	assert.Equal(t, "Ada Lovelace", d.UserValue)
}

func TestDescribe_InvalidChain(t *testing.T) {
	doc, _ := navList()
	builder := newTestBuilder(doc)

	_, err := builder.Describe(nil, true, Verbose)
	assert.ErrorIs(t, err, doctree.ErrInvalidArgument)

	_, err = builder.Describe([]doctree.NodeID{doc.Root(), 999}, true, Verbose)
	assert.ErrorIs(t, err, doctree.ErrInvalidArgument)
}

func TestCollapseWhitespace_Idempotent(t *testing.T) {
	for _, s := range []string{"", "  a  ", "a\t\tb\nc", " x  y  z ", " nbsp"} {
		once := CollapseWhitespace(s)
		assert.Equal(t, once, CollapseWhitespace(once), "input %q", s)
	}
}

func TestControlDescription(t *testing.T) {
	b := doctree.NewBuilder("test", "body")
	fs := b.Element(b.Root(), "fieldset", "role", "group", "placeholder", "Shipping")
	in := b.Element(fs, "input", "placeholder", "Street")
	lone := b.Element(b.Root(), "input", "placeholder", "Search", "value", "go")
	doc := b.Build()
	builder := newTestBuilder(doc)
	controls := attrControls{doc: doc}

	d, err := builder.ControlDescription(lone, nil, controls)
	require.NoError(t, err)
	assert.Equal(t, "Search", d.Text)
	assert.Equal(t, "go", d.UserValue)

	d, err = builder.ControlDescription(in, nil, controls)
	require.NoError(t, err)
	assert.Equal(t, "Shipping", d.Context)
	assert.Equal(t, "group", d.Annotation)

	_, err = builder.ControlDescription(999, nil, controls)
	assert.ErrorIs(t, err, doctree.ErrInvalidArgument)
}

func TestParseVerbosity(t *testing.T) {
	v, err := ParseVerbosity("Brief")
	require.NoError(t, err)
	assert.Equal(t, Brief, v)

	v, err = ParseVerbosity("")
	require.NoError(t, err)
	assert.Equal(t, Verbose, v)

	_, err = ParseVerbosity("chatty")
	assert.Error(t, err)
}
