package models

import "time"

// ServiceRecord is the persisted form of one external service entry
// (TURN/STUN relay, proxy, ...) announced to federated peers.
//
// Optional columns use pointers so the tri-state of the wire format (absent /
// present-empty / present-with-value) survives storage: a nil pointer maps to
// an absent attribute on re-serialization.
type ServiceRecord struct {
	// ID is the internal row identifier.
	ID int64 `json:"-"`

	// PublisherID is the owning publisher account.
	PublisherID int64 `json:"-"`

	// Host and Type are required by the discovery protocol's entity
	// predicate; rows missing either would be unannouncable.
	Host string `json:"host"`
	Type string `json:"type"`

	Name       *string    `json:"name,omitempty"`
	Port       *int       `json:"port,omitempty"`
	Transport  *string    `json:"transport,omitempty"`
	Username   *string    `json:"username,omitempty"`
	Password   *string    `json:"password,omitempty"`
	Restricted *bool      `json:"restricted,omitempty"`
	Expires    *time.Time `json:"expires,omitempty"`
}

// TableName returns the name of the database table associated with the
// ServiceRecord model.
func (s ServiceRecord) TableName() string {
	return "external_services"
}
