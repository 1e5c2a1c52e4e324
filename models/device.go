// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The go-keyhub Authors

package models

// DeviceRecord is one persisted entry of a publisher's device list. The
// whole list is replaced atomically on publish, so the row carries a
// position column to preserve document order across reads.
type DeviceRecord struct {
	// PublisherID is the owning publisher account.
	PublisherID int64 `json:"-"`

	// DeviceID is the OMEMO device id as announced on the wire.
	// Intended range is [1, INT32_MAX]; the wire codec does not enforce it,
	// the publish validator does.
	DeviceID uint32 `json:"device_id"`

	// Label is the optional human-readable device label.
	Label string `json:"label,omitempty"`

	// Position is the zero-based index of the entry within the published
	// list. Reads order by it to reproduce document order.
	Position int `json:"-"`
}

// TableName returns the name of the database table associated with the
// DeviceRecord model.
func (d DeviceRecord) TableName() string {
	return "device_lists"
}

// BundleRecord is the persisted form of one device's published key bundle.
// Key material is stored as raw bytes; base64 exists only on the wire.
type BundleRecord struct {
	PublisherID int64  `json:"-"`
	DeviceID    uint32 `json:"device_id"`

	// IdentityKey is the device's public long-term identity key.
	IdentityKey []byte `json:"identity_key"`

	// SignedPreKey and its id/signature are the medium-term key signed by
	// the identity key.
	SignedPreKey          []byte `json:"signed_pre_key"`
	SignedPreKeyID        uint32 `json:"signed_pre_key_id"`
	SignedPreKeySignature []byte `json:"signed_pre_key_signature"`
}

// TableName returns the name of the database table associated with the
// BundleRecord model.
func (b BundleRecord) TableName() string {
	return "device_bundles"
}

// PreKeyRecord is one single-use pre-key belonging to a bundle. Rows are
// deleted as keys are handed out to session initiators.
type PreKeyRecord struct {
	PublisherID int64  `json:"-"`
	DeviceID    uint32 `json:"device_id"`

	// KeyID is the pre-key id unique within the bundle.
	KeyID uint32 `json:"key_id"`

	// Data is the public pre-key bytes.
	Data []byte `json:"data"`
}

// TableName returns the name of the database table associated with the
// PreKeyRecord model.
func (p PreKeyRecord) TableName() string {
	return "pre_keys"
}
