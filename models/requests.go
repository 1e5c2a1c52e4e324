package models

// RegisterRequest is the body of a publisher registration call.
type RegisterRequest struct {
	// JID is the bare JID the account publishes under.
	JID string `json:"jid"`

	// Password is the plaintext API password; it is hashed server-side and
	// never stored.
	Password string `json:"password"`

	// Name is an optional display name.
	Name string `json:"name,omitempty"`
}

// LoginRequest is the body of a publisher login call.
type LoginRequest struct {
	JID      string `json:"jid"`
	Password string `json:"password"`
}

// TokenResponse carries a freshly issued bearer token.
type TokenResponse struct {
	Token string `json:"token"`
}

// PreKeyCountResponse reports how many single-use pre-keys remain published
// for a device.
type PreKeyCountResponse struct {
	DeviceID uint32 `json:"device_id"`
	Count    int    `json:"count"`
}

// ErrorResponse is the JSON error body returned by the API for non-2xx
// results.
type ErrorResponse struct {
	Error string `json:"error"`
}
