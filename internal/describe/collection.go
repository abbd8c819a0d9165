package describe

import (
	"strings"

	"github.com/dgallion1/docvox/internal/msgs"
)

// Localizer looks up a spoken message by key with ordered arguments.
type Localizer interface {
	Get(key string, args ...any) string
}

// minCollection is the smallest run worth summarizing.
const minCollection = 3

// summarizable lists the message keys of annotations that may be folded
// into a collection summary.
var summarizable = []string{msgs.TagLink}

// Summarize rewrites descs when every entry shares one summarizable
// annotation: the shared annotation is replaced by a leading entry that
// announces the collection and its size, and the first entry's context
// moves onto that leading entry. Otherwise descs is returned unchanged.
// descs is modified in place; callers must own it.
func Summarize(descs []NavDescription, loc Localizer) []NavDescription {
	annotations := distinctAnnotations(descs, loc)
	if len(descs) < minCollection ||
		descs[0].Context != "" ||
		len(annotations) != 1 ||
		annotations[0] == "" ||
		!isSummarizable(annotations[0], loc) {
		return descs
	}

	common := annotations[0]
	firstContext := descs[0].Context
	descs[0].Context = ""
	for i := range descs {
		descs[i].Annotation = ""
	}

	lead := NavDescription{
		Context:    firstContext,
		Annotation: loc.Get(msgs.Collection, common, len(descs)),
	}
	return append([]NavDescription{lead}, descs...)
}

// distinctAnnotations lists annotations in first-seen order. Any
// annotation mentioning a link is counted as the plain link annotation, so
// "Internal link" and "Link" group together.
func distinctAnnotations(descs []NavDescription, loc Localizer) []string {
	link := loc.Get(msgs.TagLink)
	lowerLink := strings.ToLower(link)
	var out []string
	seen := make(map[string]bool)
	for _, d := range descs {
		a := d.Annotation
		if strings.Contains(strings.ToLower(a), lowerLink) {
			a = link
		}
		if !seen[a] {
			seen[a] = true
			out = append(out, a)
		}
	}
	return out
}

func isSummarizable(annotation string, loc Localizer) bool {
	for _, key := range summarizable {
		if annotation == loc.Get(key) {
			return true
		}
	}
	return false
}
