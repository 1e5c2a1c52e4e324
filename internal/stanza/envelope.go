package stanza

import (
	"github.com/xmppfed/go-keyhub/internal/xmltree"
)

// Envelope is a request/response container holding exactly one typed payload.
// Serialization produces no wrapper element of its own: the payload's root
// element becomes the envelope body.
type Envelope struct {
	Payload Payload
}

// IsEnvelope reports whether el carries exactly one child element and that
// child satisfies the payload's discrimination predicate (double dispatch:
// the envelope owns the child-count rule, the payload owns its own shape).
func IsEnvelope(el *xmltree.Element, match Match) bool {
	if el == nil {
		return false
	}
	children := el.ChildElements("")
	return len(children) == 1 && match(children[0])
}

// Parse decodes the envelope body into the already-mounted payload. Only the
// first child element is considered; callers gate multi-child input with
// IsEnvelope beforehand.
func (e *Envelope) Parse(el *xmltree.Element) {
	if e.Payload == nil {
		return
	}
	e.Payload.Parse(firstChild(el))
}

// WriteXML delegates directly to the payload.
func (e *Envelope) WriteXML(w *xmltree.Writer) {
	if e.Payload == nil {
		return
	}
	e.Payload.WriteXML(w)
}
