// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The go-keyhub Authors

// Package stanza defines the contract between payload codecs and the stanza
// containers that carry them: IQ envelopes for request/response exchanges and
// pubsub items for publish/subscribe nodes.
//
// A container never inspects a payload's internals. It classifies an element
// with the payload's discrimination predicate, delegates decoding to the
// payload's Parse, and delegates encoding to the payload's WriteXML. Any type
// implementing Payload can therefore be mounted under either container kind
// without modification.
package stanza

import (
	"github.com/xmppfed/go-keyhub/internal/xmltree"
)

// Payload is the extension point a type must satisfy to be embedded as the
// body of an envelope or item.
//
// Parse reads the payload's own root element; it never fails, degrading
// malformed content to defaults instead (tolerant parsing). WriteXML appends
// the payload's root element, including its namespace declaration, to w.
type Payload interface {
	Parse(el *xmltree.Element)
	WriteXML(w *xmltree.Writer)
}

// Match is a discrimination predicate: it reports whether an element should
// be decoded as a particular payload type, based on tag name and namespace.
// A false result means "do not parse this element as that type"; it is the
// caller's job to skip or report the element.
type Match func(el *xmltree.Element) bool

// firstChild returns the first direct child element of el, or nil.
func firstChild(el *xmltree.Element) *xmltree.Element {
	if el == nil || len(el.Children) == 0 {
		return nil
	}
	return el.Children[0]
}
