package doctree

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidArgument marks a caller contract violation: a handle that is not
// part of the document, an empty ancestor chain, an out of range cursor.
var ErrInvalidArgument = errors.New("invalid argument")

// NodeID is a handle into a Document's node arena.
type NodeID int32

// NoNode is the zero handle for "no such node".
const NoNode NodeID = -1

// Kind distinguishes text payload nodes from element nodes.
type Kind uint8

const (
	ElementNode Kind = iota
	TextNode
)

func (k Kind) String() string {
	if k == TextNode {
		return "text"
	}
	return "element"
}

// Attr is one element attribute. Keys are lower case.
type Attr struct {
	Key   string
	Value string
}

type node struct {
	kind     Kind
	tag      string
	text     string
	attrs    []Attr
	parent   NodeID
	pos      int // index within parent's children
	children []NodeID
}

// Document is a read-only content tree. Nodes live in one arena and refer to
// each other by NodeID; parent links are plain back-references.
type Document struct {
	Title string

	nodes []node
	root  NodeID
}

// Root returns the outer boundary node of the document.
func (d *Document) Root() NodeID { return d.root }

// Len returns the number of nodes in the arena.
func (d *Document) Len() int { return len(d.nodes) }

// Valid reports whether id refers to a node of this document.
func (d *Document) Valid(id NodeID) bool {
	return id >= 0 && int(id) < len(d.nodes)
}

// Check returns an ErrInvalidArgument wrapped error when id is not valid.
func (d *Document) Check(id NodeID) error {
	if !d.Valid(id) {
		return fmt.Errorf("node %d not in document: %w", id, ErrInvalidArgument)
	}
	return nil
}

func (d *Document) Kind(id NodeID) Kind { return d.nodes[id].kind }

func (d *Document) IsText(id NodeID) bool { return d.nodes[id].kind == TextNode }

func (d *Document) IsElement(id NodeID) bool { return d.nodes[id].kind == ElementNode }

// Tag returns the lower case tag name of an element, "" for text nodes.
func (d *Document) Tag(id NodeID) string { return d.nodes[id].tag }

// Text returns the payload of a text node, "" for elements.
func (d *Document) Text(id NodeID) string { return d.nodes[id].text }

func (d *Document) Attrs(id NodeID) []Attr { return d.nodes[id].attrs }

// Attr looks up an attribute by its lower case key.
func (d *Document) Attr(id NodeID, key string) (string, bool) {
	for _, a := range d.nodes[id].attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// Role returns the first token of the role attribute, lower cased, or ""
// when there is none.
func (d *Document) Role(id NodeID) string {
	v, _ := d.Attr(id, "role")
	if f := strings.Fields(v); len(f) > 0 {
		return strings.ToLower(f[0])
	}
	return ""
}

func (d *Document) HasAttr(id NodeID, key string) bool {
	_, ok := d.Attr(id, key)
	return ok
}

// HasClass reports whether the class attribute lists class.
func (d *Document) HasClass(id NodeID, class string) bool {
	v, ok := d.Attr(id, "class")
	if !ok {
		return false
	}
	for _, c := range strings.Fields(v) {
		if c == class {
			return true
		}
	}
	return false
}

func (d *Document) Parent(id NodeID) NodeID { return d.nodes[id].parent }

func (d *Document) Children(id NodeID) []NodeID { return d.nodes[id].children }

// ChildElementCount counts element children, ignoring text nodes.
func (d *Document) ChildElementCount(id NodeID) int {
	n := 0
	for _, c := range d.nodes[id].children {
		if d.nodes[c].kind == ElementNode {
			n++
		}
	}
	return n
}

func (d *Document) NextSibling(id NodeID) NodeID {
	n := d.nodes[id]
	if n.parent == NoNode {
		return NoNode
	}
	sibs := d.nodes[n.parent].children
	if n.pos+1 < len(sibs) {
		return sibs[n.pos+1]
	}
	return NoNode
}

func (d *Document) PrevSibling(id NodeID) NodeID {
	n := d.nodes[id]
	if n.parent == NoNode || n.pos == 0 {
		return NoNode
	}
	return d.nodes[n.parent].children[n.pos-1]
}

// TextContent concatenates every text node below id.
func (d *Document) TextContent(id NodeID) string {
	var buf strings.Builder
	var walk func(NodeID)
	walk = func(n NodeID) {
		if d.nodes[n].kind == TextNode {
			buf.WriteString(d.nodes[n].text)
			return
		}
		for _, c := range d.nodes[n].children {
			walk(c)
		}
	}
	walk(id)
	return buf.String()
}

// Builder assembles a Document. Nodes can only be appended, so handles stay
// stable and the finished tree is acyclic.
type Builder struct {
	doc *Document
}

// NewBuilder starts a document whose root element has the given tag.
func NewBuilder(title, rootTag string) *Builder {
	d := &Document{Title: title}
	d.nodes = append(d.nodes, node{kind: ElementNode, tag: strings.ToLower(rootTag), parent: NoNode})
	d.root = 0
	return &Builder{doc: d}
}

func (b *Builder) Root() NodeID { return b.doc.root }

// Element appends an element child to parent. attrs are key, value pairs.
func (b *Builder) Element(parent NodeID, tag string, attrs ...string) NodeID {
	n := node{kind: ElementNode, tag: strings.ToLower(tag)}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.attrs = append(n.attrs, Attr{Key: strings.ToLower(attrs[i]), Value: attrs[i+1]})
	}
	return b.add(parent, n)
}

// ElementAttrs appends an element child with a prepared attribute list.
func (b *Builder) ElementAttrs(parent NodeID, tag string, attrs []Attr) NodeID {
	n := node{kind: ElementNode, tag: strings.ToLower(tag)}
	for _, a := range attrs {
		n.attrs = append(n.attrs, Attr{Key: strings.ToLower(a.Key), Value: a.Value})
	}
	return b.add(parent, n)
}

// Text appends a text child to parent.
func (b *Builder) Text(parent NodeID, text string) NodeID {
	return b.add(parent, node{kind: TextNode, text: text})
}

func (b *Builder) add(parent NodeID, n node) NodeID {
	if !b.doc.Valid(parent) || b.doc.nodes[parent].kind == TextNode {
		panic(fmt.Sprintf("doctree: parent %d cannot hold children", parent))
	}
	id := NodeID(len(b.doc.nodes))
	n.parent = parent
	n.pos = len(b.doc.nodes[parent].children)
	b.doc.nodes = append(b.doc.nodes, n)
	b.doc.nodes[parent].children = append(b.doc.nodes[parent].children, id)
	return id
}

// Build returns the finished document. The builder must not be used after.
func (b *Builder) Build() *Document {
	d := b.doc
	b.doc = nil
	return d
}

// Chunk is a span of spoken text produced by reading a document at one
// granularity, with its structural context.
type Chunk struct {
	Text       string   `json:"text"`
	Index      int      `json:"index"`
	Breadcrumb []string `json:"breadcrumb,omitempty"` // Heading hierarchy, e.g. ["Results", "Q4"]
	StartNode  NodeID   `json:"start_node"`
	EndNode    NodeID   `json:"end_node"`
}

// HeadingLevel returns 1 through 6 for h1 through h6 and 0 for any other
// tag.
func HeadingLevel(tag string) int {
	switch tag {
	case "h1":
		return 1
	case "h2":
		return 2
	case "h3":
		return 3
	case "h4":
		return 4
	case "h5":
		return 5
	case "h6":
		return 6
	}
	return 0
}
