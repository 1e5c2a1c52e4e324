package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidJID        = errors.New("invalid jid")
	ErrEmptyPassword     = errors.New("password is required")
	ErrInvalidDeviceID   = errors.New("device id out of range")
	ErrEmptyIdentityKey  = errors.New("identity key is required")
	ErrEmptySignedPreKey = errors.New("signed pre-key is required")
	ErrMissingSignature  = errors.New("signed pre-key signature is required")
	ErrNoPreKeys         = errors.New("at least one pre-key is required")
	ErrEmptyHost         = errors.New("host is required")
	ErrEmptyServiceType  = errors.New("service type is required")
	ErrInvalidPort       = errors.New("port out of range")
	ErrMissingAction     = errors.New("action is required")
)
