// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The go-keyhub Authors

// Package extdisco implements the wire codec for external service discovery:
// entities describing services external to the federation (TURN/STUN relays,
// proxies) together with the credentials and transport details needed to use
// them.
//
// Optional attributes are tri-state: absent, present-empty, and
// present-with-value are distinguished through pointer fields, with one
// deliberate exception: action and transport collapse "attribute absent"
// and "unrecognised value" into the same nil state, as the protocol always
// has.
package extdisco

import (
	"strconv"
	"time"

	"github.com/xmppfed/go-keyhub/internal/xmltree"
)

// NS is the external service discovery namespace.
const NS = "urn:xmpp:extdisco:2"

// Action describes a change pushed for a known service.
type Action int

const (
	ActionAdd Action = iota
	ActionDelete
	ActionModify
)

// String returns the wire spelling of the action.
func (a Action) String() string {
	switch a {
	case ActionAdd:
		return "add"
	case ActionDelete:
		return "delete"
	case ActionModify:
		return "modify"
	}
	return ""
}

// ActionFromString converts wire text to an Action. ok is false for any
// unrecognised text, including the empty string.
func ActionFromString(s string) (Action, bool) {
	switch s {
	case "add":
		return ActionAdd, true
	case "delete":
		return ActionDelete, true
	case "modify":
		return ActionModify, true
	}
	return 0, false
}

// Transport is the transport protocol a service is reachable over.
type Transport int

const (
	TransportTCP Transport = iota
	TransportUDP
)

// String returns the wire spelling of the transport.
func (tr Transport) String() string {
	switch tr {
	case TransportTCP:
		return "tcp"
	case TransportUDP:
		return "udp"
	}
	return ""
}

// TransportFromString converts wire text to a Transport. ok is false for any
// unrecognised text, including the empty string.
func TransportFromString(s string) (Transport, bool) {
	switch s {
	case "tcp":
		return TransportTCP, true
	case "udp":
		return TransportUDP, true
	}
	return 0, false
}

// ExternalService is one discoverable service entity. Host and Type are
// required by the discrimination predicate but not re-validated by Parse;
// every other field is optional and nil when the attribute was absent.
type ExternalService struct {
	Host string
	Type string

	Action     *Action
	Expires    *time.Time
	Name       *string
	Password   *string
	Port       *int
	Restricted *bool
	Transport  *Transport
	Username   *string
}

// IsExternalService reports whether el is a service entity that can be
// parsed: tag "service" with non-empty host and type attributes. The
// predicate is stricter than Parse, which does not re-check emptiness.
func IsExternalService(el *xmltree.Element) bool {
	if el == nil || el.Tag != "service" {
		return false
	}
	return el.Attribute("host") != "" && el.Attribute("type") != ""
}

// Parse decodes el.
//
// Host and type are read unconditionally, degrading to the empty string.
// Action and transport are converted from their attribute text; an absent
// attribute and an unrecognised value both leave the field nil,
// indistinguishably. The remaining optional attributes are read only when
// literally present, so a present-but-empty attribute yields a present-empty
// value distinct from nil. Restricted is true only for the exact texts
// "true" and "1"; any other present text is a present false.
func (s *ExternalService) Parse(el *xmltree.Element) {
	s.Host = el.Attribute("host")
	s.Type = el.Attribute("type")

	if a, ok := ActionFromString(el.Attribute("action")); ok {
		s.Action = &a
	} else {
		s.Action = nil
	}

	if el.HasAttribute("expires") {
		expires := xmltree.LenientDateTime(el.Attribute("expires"))
		s.Expires = &expires
	}

	if el.HasAttribute("name") {
		name := el.Attribute("name")
		s.Name = &name
	}

	if el.HasAttribute("password") {
		password := el.Attribute("password")
		s.Password = &password
	}

	if el.HasAttribute("port") {
		port := xmltree.LenientInt(el.Attribute("port"))
		s.Port = &port
	}

	if el.HasAttribute("restricted") {
		restricted := xmltree.LenientBool(el.Attribute("restricted"))
		s.Restricted = &restricted
	}

	if tr, ok := TransportFromString(el.Attribute("transport")); ok {
		s.Transport = &tr
	} else {
		s.Transport = nil
	}

	if el.HasAttribute("username") {
		username := el.Attribute("username")
		s.Username = &username
	}
}

// WriteXML appends the service element. Host and type are written through
// the empty-skipping attribute writer, so an explicitly empty required field
// round-trips to no attribute at all. Optional fields are written only when
// present: expires as ISO-8601 with milliseconds, restricted as the literal
// "true"/"false", port as decimal, action and transport via their enum
// spellings.
func (s *ExternalService) WriteXML(w *xmltree.Writer) {
	w.StartElement("service")
	w.OptionalAttribute("host", s.Host)
	w.OptionalAttribute("type", s.Type)

	if s.Action != nil {
		w.OptionalAttribute("action", s.Action.String())
	}
	if s.Expires != nil {
		w.OptionalAttribute("expires", xmltree.FormatDateTime(*s.Expires))
	}
	if s.Name != nil {
		w.OptionalAttribute("name", *s.Name)
	}
	if s.Password != nil {
		w.OptionalAttribute("password", *s.Password)
	}
	if s.Port != nil {
		w.OptionalAttribute("port", strconv.Itoa(*s.Port))
	}
	if s.Restricted != nil {
		if *s.Restricted {
			w.OptionalAttribute("restricted", "true")
		} else {
			w.OptionalAttribute("restricted", "false")
		}
	}
	if s.Transport != nil {
		w.OptionalAttribute("transport", s.Transport.String())
	}
	if s.Username != nil {
		w.OptionalAttribute("username", *s.Username)
	}

	w.EndElement()
}
