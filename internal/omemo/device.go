// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The go-keyhub Authors

// Package omemo implements the wire codecs for OMEMO key-distribution
// payloads: the device list announcing a user's encryption-capable devices
// and the device bundle carrying the public key material needed to establish
// a session with one of them.
//
// Parsing is tolerant throughout: absent or malformed wire content degrades
// to zero values and is never reported as an error. Strictness, where
// needed, belongs to the validators applied at publish time, not to the
// codec.
package omemo

import (
	"strconv"

	"github.com/xmppfed/go-keyhub/internal/xmltree"
)

// NS is the OMEMO device-list and bundle namespace.
const NS = "urn:xmpp:omemo:2"

// DeviceElement is one entry of a device list: a device id and an optional
// human-readable label.
//
// The id is intended to be in [1, INT32_MAX]; the range is not enforced
// here. Two elements are considered equal when their ids match, regardless
// of label.
type DeviceElement struct {
	ID    uint32
	Label string
}

// IsDeviceElement reports whether el is an OMEMO device element.
func IsDeviceElement(el *xmltree.Element) bool {
	return el != nil && el.Tag == "device" && el.Namespace == NS
}

// Parse reads the id and label attributes. A missing or malformed id
// degrades to 0; a missing label degrades to the empty string.
func (d *DeviceElement) Parse(el *xmltree.Element) {
	d.ID = xmltree.LenientUint32(el.Attribute("id"))
	d.Label = el.Attribute("label")
}

// WriteXML appends the device element to w. The id attribute is always
// written; the label only when non-empty, so an explicitly empty label is
// indistinguishable from an absent one after a round trip.
func (d *DeviceElement) WriteXML(w *xmltree.Writer) {
	w.StartElement("device")
	w.Attribute("id", strconv.FormatUint(uint64(d.ID), 10))
	w.OptionalAttribute("label", d.Label)
	w.EndElement()
}

// Equal reports whether both elements refer to the same device id.
func (d DeviceElement) Equal(other DeviceElement) bool {
	return d.ID == other.ID
}

// DeviceList is an ordered list of device elements. Document order is
// preserved on both directions and duplicate ids are permitted.
type DeviceList []DeviceElement

// IsDeviceList reports whether el is an OMEMO device list.
func IsDeviceList(el *xmltree.Element) bool {
	return el != nil && el.Tag == "devices" && el.Namespace == NS
}

// Parse decodes every direct "device" child of el in document order,
// appending to the list.
func (l *DeviceList) Parse(el *xmltree.Element) {
	for _, child := range el.ChildElements("device") {
		var d DeviceElement
		d.Parse(child)
		*l = append(*l, d)
	}
}

// WriteXML appends the devices element, declaring the OMEMO namespace as
// default and serializing members in stored order.
func (l *DeviceList) WriteXML(w *xmltree.Writer) {
	w.StartElement("devices")
	w.DefaultNamespace(NS)
	for i := range *l {
		(*l)[i].WriteXML(w)
	}
	w.EndElement()
}
