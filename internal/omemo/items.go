package omemo

import (
	"github.com/xmppfed/go-keyhub/internal/stanza"
	"github.com/xmppfed/go-keyhub/internal/xmltree"
)

// DeviceListItem mounts a DeviceList as a pubsub item body. The adapter owns
// only the item attributes; everything payload-shaped is delegated to the
// list codec.
type DeviceListItem struct {
	stanza.Item
	DeviceList DeviceList
}

// IsDeviceListItem reports whether el is an item whose payload is an OMEMO
// device list.
func IsDeviceListItem(el *xmltree.Element) bool {
	return stanza.IsItem(el, IsDeviceList)
}

// Parse reads the item attributes and decodes the payload element, if any.
func (it *DeviceListItem) Parse(el *xmltree.Element) {
	it.ParseAttributes(el)
	if payload := it.PayloadElement(el); payload != nil {
		it.DeviceList.Parse(payload)
	}
}

// ParsePayload decodes only the payload element.
func (it *DeviceListItem) ParsePayload(el *xmltree.Element) {
	it.DeviceList.Parse(el)
}

// SerializePayload appends only the payload element.
func (it *DeviceListItem) SerializePayload(w *xmltree.Writer) {
	it.DeviceList.WriteXML(w)
}

// WriteXML appends the full item element with its payload.
func (it *DeviceListItem) WriteXML(w *xmltree.Writer) {
	w.StartElement("item")
	it.WriteAttributes(w)
	it.SerializePayload(w)
	w.EndElement()
}

// DeviceBundleItem mounts a DeviceBundle as a pubsub item body.
type DeviceBundleItem struct {
	stanza.Item
	DeviceBundle DeviceBundle
}

// IsDeviceBundleItem reports whether el is an item whose payload is an OMEMO
// device bundle.
func IsDeviceBundleItem(el *xmltree.Element) bool {
	return stanza.IsItem(el, IsDeviceBundle)
}

// Parse reads the item attributes and decodes the payload element, if any.
func (it *DeviceBundleItem) Parse(el *xmltree.Element) {
	it.ParseAttributes(el)
	if payload := it.PayloadElement(el); payload != nil {
		it.DeviceBundle.Parse(payload)
	}
}

// ParsePayload decodes only the payload element.
func (it *DeviceBundleItem) ParsePayload(el *xmltree.Element) {
	it.DeviceBundle.Parse(el)
}

// SerializePayload appends only the payload element.
func (it *DeviceBundleItem) SerializePayload(w *xmltree.Writer) {
	it.DeviceBundle.WriteXML(w)
}

// WriteXML appends the full item element with its payload.
func (it *DeviceBundleItem) WriteXML(w *xmltree.Writer) {
	w.StartElement("item")
	it.WriteAttributes(w)
	it.SerializePayload(w)
	w.EndElement()
}

// Kinds returns the OMEMO payload kinds for registry-based classification.
func Kinds() []stanza.Kind {
	return []stanza.Kind{
		{
			Name:  "omemo-device-list",
			Match: IsDeviceList,
			New:   func() stanza.Payload { return &DeviceList{} },
		},
		{
			Name:  "omemo-device-bundle",
			Match: IsDeviceBundle,
			New:   func() stanza.Payload { return &DeviceBundle{} },
		},
	}
}
