package describe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgallion1/docvox/internal/msgs"
)

func links(annotations ...string) []NavDescription {
	out := make([]NavDescription, len(annotations))
	for i, a := range annotations {
		out[i] = NavDescription{Text: "item", Annotation: a}
	}
	return out
}

func TestSummarize_CollapsesLinkRun(t *testing.T) {
	loc := msgs.MustNew("en")
	got := Summarize(links("Link", "Link", "Link"), loc)

	require.Len(t, got, 4)
	assert.Equal(t, "Link collection with 3 items", got[0].Annotation)
	assert.Empty(t, got[0].Context)
	for _, d := range got[1:] {
		assert.Empty(t, d.Annotation)
		assert.Equal(t, "item", d.Text)
	}
}

func TestSummarize_FoldsLinkVariants(t *testing.T) {
	loc := msgs.MustNew("en")
	got := Summarize(links("Link", "Internal link", "link"), loc)

	require.Len(t, got, 4)
	assert.Equal(t, "Link collection with 3 items", got[0].Annotation)
}

func TestSummarize_LeavesOthersAlone(t *testing.T) {
	loc := msgs.MustNew("en")
	tests := []struct {
		name  string
		descs []NavDescription
	}{
		{"below threshold", links("Link", "Link")},
		{"two distinct annotations", links("Link", "Link", "Button")},
		{"not summarizable", links("Button", "Button", "Button")},
		{"empty annotation", links("", "", "")},
		{"leading context", func() []NavDescription {
			d := links("Link", "Link", "Link")
			d[0].Context = "Menu"
			return d
		}()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := append([]NavDescription(nil), tt.descs...)
			assert.Equal(t, want, Summarize(tt.descs, loc))
		})
	}
}

func TestSummarize_Stable(t *testing.T) {
	loc := msgs.MustNew("en")
	once := Summarize(links("Link", "Link", "Link", "Link"), loc)
	again := Summarize(append([]NavDescription(nil), once...), loc)
	assert.Equal(t, once, again)
}

func TestSummarize_Localized(t *testing.T) {
	loc := msgs.MustNew("es")
	got := Summarize(links("Enlace", "Enlace", "Enlace"), loc)
	require.Len(t, got, 4)
	assert.Equal(t, "Colección de Enlace con 3 elementos", got[0].Annotation)
}
