// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The go-keyhub Authors

// Package xmltree provides the minimal XML surface the payload codecs are
// written against: an in-memory element tree for inbound documents, a
// streaming writer for outbound ones, and the lenient scalar conversions
// shared by every codec.
//
// The tree is deliberately small. Lookups on a nil *Element are safe and
// return zero values, so codecs can chain "first child of ... text of ..."
// without checking for absence at every step; absent structure degrades to
// default scalars instead of raising errors.
package xmltree

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"
)

// ErrNoElement is returned by Parse when the input contains no element at all.
var ErrNoElement = errors.New("no root element found")

// Attr is a single attribute of an element. Attribute order is preserved as
// it appeared in the document, but no codec depends on it.
type Attr struct {
	Name  string
	Value string
}

// Element is one node of a parsed XML document.
//
// Namespace holds the resolved namespace URI of the element (default
// namespaces declared on ancestors are already applied). CharData holds the
// concatenated character data directly inside the element.
type Element struct {
	Tag       string
	Namespace string
	Attrs     []Attr
	Children  []*Element
	CharData  string
}

// Parse reads a complete XML document from r and returns its root element.
// Namespace prefixes and default-namespace declarations are resolved by the
// underlying decoder; xmlns declarations themselves are not retained as
// attributes.
func Parse(r io.Reader) (*Element, error) {
	dec := xml.NewDecoder(r)

	var root *Element
	var stack []*Element

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := &Element{Tag: t.Name.Local, Namespace: t.Name.Space}
			for _, a := range t.Attr {
				if a.Name.Local == "xmlns" || a.Name.Space == "xmlns" {
					continue
				}
				el.Attrs = append(el.Attrs, Attr{Name: a.Name.Local, Value: a.Value})
			}

			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			} else if root == nil {
				root = el
			}
			stack = append(stack, el)

		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}

		case xml.CharData:
			if len(stack) > 0 {
				top := stack[len(stack)-1]
				top.CharData += string(t)
			}
		}
	}

	if root == nil {
		return nil, ErrNoElement
	}

	return root, nil
}

// ParseString parses a complete XML document held in s.
func ParseString(s string) (*Element, error) {
	return Parse(strings.NewReader(s))
}

// Attribute returns the value of the named attribute, or the empty string if
// the attribute is absent or the receiver is nil.
func (e *Element) Attribute(name string) string {
	if e == nil {
		return ""
	}
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value
		}
	}
	return ""
}

// HasAttribute reports whether the named attribute is present, regardless of
// its value. A present-but-empty attribute is distinct from an absent one.
func (e *Element) HasAttribute(name string) bool {
	if e == nil {
		return false
	}
	for _, a := range e.Attrs {
		if a.Name == name {
			return true
		}
	}
	return false
}

// Text returns the character data directly inside the element, or the empty
// string for a nil receiver.
func (e *Element) Text() string {
	if e == nil {
		return ""
	}
	return e.CharData
}

// FirstChild returns the first direct child element with the given tag, or
// nil if there is none.
func (e *Element) FirstChild(tag string) *Element {
	if e == nil {
		return nil
	}
	for _, c := range e.Children {
		if c.Tag == tag {
			return c
		}
	}
	return nil
}

// ChildElements returns the direct child elements with the given tag in
// document order. An empty tag matches every child.
func (e *Element) ChildElements(tag string) []*Element {
	if e == nil {
		return nil
	}
	out := make([]*Element, 0, len(e.Children))
	for _, c := range e.Children {
		if tag == "" || c.Tag == tag {
			out = append(out, c)
		}
	}
	return out
}
