package omemo

import (
	"encoding/base64"
	"slices"
	"strconv"

	"github.com/xmppfed/go-keyhub/internal/xmltree"
)

// DeviceBundle is the publicly published key material of one device: the
// long-term identity key, the signed pre-key with its id and signature, and
// a set of single-use pre-keys keyed by id.
//
// All binary fields travel base64-encoded on the wire. A bundle parsed from
// an input missing sub-elements keeps the corresponding fields at their zero
// values; serialization is intentionally not symmetric and always emits
// every sub-element (see WriteXML).
type DeviceBundle struct {
	PublicIdentityKey []byte

	SignedPublicPreKey          []byte
	SignedPublicPreKeyID        uint32
	SignedPublicPreKeySignature []byte

	PublicPreKeys map[uint32][]byte
}

// IsDeviceBundle reports whether el is an OMEMO device bundle.
func IsDeviceBundle(el *xmltree.Element) bool {
	return el != nil && el.Tag == "bundle" && el.Namespace == NS
}

// AddPublicPreKey stores a pre-key under id, overwriting any existing entry.
func (b *DeviceBundle) AddPublicPreKey(id uint32, key []byte) {
	if b.PublicPreKeys == nil {
		b.PublicPreKeys = make(map[uint32][]byte)
	}
	b.PublicPreKeys[id] = key
}

// RemovePublicPreKey deletes the pre-key stored under id. Removing an absent
// id is a no-op.
func (b *DeviceBundle) RemovePublicPreKey(id uint32) {
	delete(b.PublicPreKeys, id)
}

// Parse decodes el. Absent children leave fields at their zero values:
// missing-child text is the empty string and empty base64 text decodes to
// empty bytes, so no error can arise. The spk id and text are only read when
// the spk child is present; pre-keys are collected from the pk children of
// prekeys in document order, later duplicates overwriting earlier ones.
func (b *DeviceBundle) Parse(el *xmltree.Element) {
	b.PublicIdentityKey = xmltree.LenientBase64(el.FirstChild("ik").Text())

	if spk := el.FirstChild("spk"); spk != nil {
		b.SignedPublicPreKeyID = xmltree.LenientUint32(spk.Attribute("id"))
		b.SignedPublicPreKey = xmltree.LenientBase64(spk.Text())
	}

	b.SignedPublicPreKeySignature = xmltree.LenientBase64(el.FirstChild("spks").Text())

	if preKeys := el.FirstChild("prekeys"); preKeys != nil {
		for _, pk := range preKeys.ChildElements("pk") {
			b.AddPublicPreKey(xmltree.LenientUint32(pk.Attribute("id")), xmltree.LenientBase64(pk.Text()))
		}
	}
}

// WriteXML appends the bundle element, declaring the OMEMO namespace as
// default. Every sub-element is emitted unconditionally, even at its zero
// value: a bundle parsed without an spk re-serializes with spk id "0" and
// empty content. That normalization is lossy but deterministic. Pre-keys are
// written in ascending id order so equal bundles serialize identically
// across runs.
func (b *DeviceBundle) WriteXML(w *xmltree.Writer) {
	w.StartElement("bundle")
	w.DefaultNamespace(NS)

	w.StartElement("ik")
	w.CharData(base64.StdEncoding.EncodeToString(b.PublicIdentityKey))
	w.EndElement()

	w.StartElement("spk")
	w.Attribute("id", strconv.FormatUint(uint64(b.SignedPublicPreKeyID), 10))
	w.CharData(base64.StdEncoding.EncodeToString(b.SignedPublicPreKey))
	w.EndElement()

	w.StartElement("spks")
	w.CharData(base64.StdEncoding.EncodeToString(b.SignedPublicPreKeySignature))
	w.EndElement()

	w.StartElement("prekeys")
	ids := make([]uint32, 0, len(b.PublicPreKeys))
	for id := range b.PublicPreKeys {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		w.StartElement("pk")
		w.Attribute("id", strconv.FormatUint(uint64(id), 10))
		w.CharData(base64.StdEncoding.EncodeToString(b.PublicPreKeys[id]))
		w.EndElement()
	}
	w.EndElement()

	w.EndElement()
}
