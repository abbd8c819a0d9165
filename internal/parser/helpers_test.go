package parser

import (
	"testing"

	"github.com/dgallion1/docvox/internal/doctree"
)

// texts returns the trimmed text content of every node matching expr.
func texts(t *testing.T, doc *doctree.Document, expr string) []string {
	t.Helper()
	nodes, err := doc.Select(expr)
	if err != nil {
		t.Fatalf("select %q: %v", expr, err)
	}
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = doc.TextContent(n)
	}
	return out
}
