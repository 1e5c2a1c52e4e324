package extdisco

import (
	"github.com/xmppfed/go-keyhub/internal/stanza"
	"github.com/xmppfed/go-keyhub/internal/xmltree"
)

// ServicesIQ is the body of a service discovery exchange: an ordered list of
// service entities under a "services" root. Order is preserved end to end
// and duplicates are permitted.
type ServicesIQ struct {
	Services []ExternalService
}

// IsServicesIQ reports whether el is a service discovery collection.
func IsServicesIQ(el *xmltree.Element) bool {
	return el != nil && el.Tag == "services" && el.Namespace == NS
}

// AddService appends a service to the collection.
func (iq *ServicesIQ) AddService(s ExternalService) {
	iq.Services = append(iq.Services, s)
}

// Parse decodes every direct child satisfying IsExternalService, in document
// order. Children failing the predicate are skipped silently, not reported.
func (iq *ServicesIQ) Parse(el *xmltree.Element) {
	for _, child := range el.ChildElements("") {
		if !IsExternalService(child) {
			continue
		}
		var s ExternalService
		s.Parse(child)
		iq.Services = append(iq.Services, s)
	}
}

// WriteXML appends the services element, declaring the discovery namespace
// as default and serializing members in stored order.
func (iq *ServicesIQ) WriteXML(w *xmltree.Writer) {
	w.StartElement("services")
	w.DefaultNamespace(NS)
	for i := range iq.Services {
		iq.Services[i].WriteXML(w)
	}
	w.EndElement()
}

// Kinds returns the discovery payload kinds for registry-based
// classification.
func Kinds() []stanza.Kind {
	return []stanza.Kind{
		{
			Name:  "external-services",
			Match: IsServicesIQ,
			New:   func() stanza.Payload { return &ServicesIQ{} },
		},
	}
}
