package parser

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/dgallion1/docvox/internal/doctree"
)

// HTMLParser handles HTML files. The body is copied element for element;
// comments, doctypes and everything outside the body are dropped.
type HTMLParser struct{}

func (p *HTMLParser) Parse(r io.Reader, filename string) (*doctree.Document, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	title := baseTitle(filename, ".html", ".htm")
	if t := findTitle(doc); t != "" {
		title = t
	}

	b := doctree.NewBuilder(title, "body")
	if body := findBody(doc); body != nil {
		copyChildren(b, b.Root(), body)
	}
	return b.Build(), nil
}

func copyChildren(b *doctree.Builder, parent doctree.NodeID, n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			if c.Data != "" {
				b.Text(parent, c.Data)
			}
		case html.ElementNode:
			attrs := make([]doctree.Attr, 0, len(c.Attr))
			for _, a := range c.Attr {
				if a.Namespace != "" {
					continue
				}
				attrs = append(attrs, doctree.Attr{Key: a.Key, Value: a.Val})
			}
			copyChildren(b, b.ElementAttrs(parent, c.Data, attrs), c)
		}
	}
}

func textContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(buf.String())
}

func findTitle(n *html.Node) string {
	if n.Type == html.ElementNode && n.Data == "title" {
		return textContent(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if t := findTitle(c); t != "" {
			return t
		}
	}
	return ""
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}
