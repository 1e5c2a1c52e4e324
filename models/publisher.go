// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The go-keyhub Authors

package models

import "time"

// Publisher represents an account allowed to publish key material and
// service entries through the API. A publisher corresponds to one federated
// user identified by a bare JID.
type Publisher struct {
	// ID is the internal unique identifier of the publisher.
	// It is not exposed via JSON and is used only at the persistence layer.
	ID int64 `json:"-"`

	// JID is the bare JID of the publisher (e.g. "alice@example.com").
	// It is unique and used as the login identifier.
	JID string `json:"jid"`

	// Name is an optional display name. Non-sensitive.
	Name string `json:"name"`

	// AuthHash is the Argon2id-encoded hash of the publisher's API password.
	// Never plaintext, never exposed via JSON.
	AuthHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table associated with the
// Publisher model.
func (p Publisher) TableName() string {
	return "publishers"
}
