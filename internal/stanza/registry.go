package stanza

import (
	"github.com/xmppfed/go-keyhub/internal/xmltree"
)

// Kind binds a payload type's discrimination predicate to a factory for
// fresh payload values. The set of kinds known to a Registry is closed at
// construction time.
type Kind struct {
	// Name identifies the kind in logs and handler routing.
	Name string

	// Match is the payload's discrimination predicate.
	Match Match

	// New returns an empty payload value ready to Parse.
	New func() Payload
}

// Registry classifies elements against a fixed, ordered set of payload
// kinds. It replaces ad hoc predicate checks at call sites: containers ask
// the registry which payload an element is, then delegate.
type Registry struct {
	kinds []Kind
}

// NewRegistry returns a registry over the given kinds. Kinds are tried in
// the order given; the first match wins.
func NewRegistry(kinds ...Kind) *Registry {
	return &Registry{kinds: kinds}
}

// Classify returns the kind matching el, or ok=false when no kind matches.
func (r *Registry) Classify(el *xmltree.Element) (Kind, bool) {
	for _, k := range r.kinds {
		if k.Match(el) {
			return k, true
		}
	}
	return Kind{}, false
}

// Decode classifies el and, on a match, parses it into a fresh payload
// value. ok is false when no known kind matches; the element is then left
// for the caller to skip or report.
func (r *Registry) Decode(el *xmltree.Element) (Payload, bool) {
	k, ok := r.Classify(el)
	if !ok {
		return nil, false
	}
	p := k.New()
	p.Parse(el)
	return p, true
}

// DecodeEnvelope classifies the single child of an envelope element and
// decodes it. ok is false when the envelope shape or the child's type is not
// recognised.
func (r *Registry) DecodeEnvelope(el *xmltree.Element) (Payload, bool) {
	child := firstChild(el)
	if child == nil || len(el.ChildElements("")) != 1 {
		return nil, false
	}
	return r.Decode(child)
}
