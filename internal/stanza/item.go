package stanza

import (
	"github.com/xmppfed/go-keyhub/internal/xmltree"
)

// Item is the base of a pubsub item carrying a typed payload. Concrete item
// types embed Item and supply the payload wiring; Item itself owns only the
// container attributes.
type Item struct {
	ID        string
	Publisher string
}

// IsItem reports whether el can act as an item for a payload satisfying
// match: at most one child element, and if one is present it must match.
// An empty item (no payload, e.g. a retraction) is accepted.
func IsItem(el *xmltree.Element, match Match) bool {
	if el == nil {
		return false
	}
	children := el.ChildElements("")
	switch len(children) {
	case 0:
		return true
	case 1:
		return match(children[0])
	default:
		return false
	}
}

// ParseAttributes reads the container-owned attributes from the item element.
func (it *Item) ParseAttributes(el *xmltree.Element) {
	it.ID = el.Attribute("id")
	it.Publisher = el.Attribute("publisher")
}

// WriteAttributes appends the container-owned attributes to an already-open
// item element. Absent attributes are omitted.
func (it *Item) WriteAttributes(w *xmltree.Writer) {
	w.OptionalAttribute("id", it.ID)
	w.OptionalAttribute("publisher", it.Publisher)
}

// PayloadElement returns the item's payload element, or nil for an empty
// item.
func (it *Item) PayloadElement(el *xmltree.Element) *xmltree.Element {
	return firstChild(el)
}
