package xmltree

import (
	"encoding/xml"
	"strings"
)

// Writer builds an XML fragment sequentially: elements are opened, given
// attributes and character data, and closed in strictly nested order. There
// is no backtracking; once an element is closed its bytes are final.
//
// A Writer must be used by a single goroutine.
type Writer struct {
	b     strings.Builder
	stack []string

	// openTag is true while the current start tag has not been closed with
	// ">" yet, i.e. attributes may still be appended.
	openTag bool

	// hasContent is true when the innermost element received children or
	// character data, so EndElement must emit a full closing tag instead of
	// collapsing to "/>".
	hasContent []bool
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// StartElement opens a new element with the given tag.
func (w *Writer) StartElement(tag string) {
	w.closeStartTag()
	w.markContent()

	w.b.WriteByte('<')
	w.b.WriteString(tag)

	w.stack = append(w.stack, tag)
	w.hasContent = append(w.hasContent, false)
	w.openTag = true
}

// DefaultNamespace declares ns as the default namespace of the element just
// opened. It must be called before any attribute, child, or character data
// is written for that element; otherwise it is ignored.
func (w *Writer) DefaultNamespace(ns string) {
	w.Attribute("xmlns", ns)
}

// Attribute appends an attribute to the element just opened. Calls made
// after the start tag has been closed are ignored.
func (w *Writer) Attribute(name, value string) {
	if !w.openTag {
		return
	}
	w.b.WriteByte(' ')
	w.b.WriteString(name)
	w.b.WriteString(`="`)
	w.b.WriteString(escape(value))
	w.b.WriteByte('"')
}

// OptionalAttribute appends an attribute only when value is non-empty. An
// explicitly empty value therefore serializes to no attribute at all.
func (w *Writer) OptionalAttribute(name, value string) {
	if value == "" {
		return
	}
	w.Attribute(name, value)
}

// CharData appends escaped character data inside the current element.
func (w *Writer) CharData(s string) {
	w.closeStartTag()
	w.markContent()
	w.b.WriteString(escape(s))
}

// EndElement closes the innermost open element. An element that received no
// content is collapsed to a self-closing tag.
func (w *Writer) EndElement() {
	if len(w.stack) == 0 {
		return
	}

	tag := w.stack[len(w.stack)-1]
	empty := !w.hasContent[len(w.hasContent)-1]
	w.stack = w.stack[:len(w.stack)-1]
	w.hasContent = w.hasContent[:len(w.hasContent)-1]

	if w.openTag && empty {
		w.b.WriteString("/>")
		w.openTag = false
		return
	}

	w.closeStartTag()
	w.b.WriteString("</")
	w.b.WriteString(tag)
	w.b.WriteByte('>')
}

// String returns the XML produced so far.
func (w *Writer) String() string {
	return w.b.String()
}

func (w *Writer) closeStartTag() {
	if w.openTag {
		w.b.WriteByte('>')
		w.openTag = false
	}
}

func (w *Writer) markContent() {
	if len(w.hasContent) > 0 {
		w.hasContent[len(w.hasContent)-1] = true
	}
}

func escape(s string) string {
	var sb strings.Builder
	// xml.EscapeText never fails on a strings.Builder.
	_ = xml.EscapeText(&sb, []byte(s))
	return sb.String()
}
