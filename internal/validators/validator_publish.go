package validators

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/xmppfed/go-keyhub/internal/extdisco"
	"github.com/xmppfed/go-keyhub/internal/omemo"
	"github.com/xmppfed/go-keyhub/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldJID targets the bare JID of an account request.
	FieldJID = "jid"

	// FieldPassword targets the plaintext password of an account request.
	FieldPassword = "password"

	// FieldDeviceIDs targets every device id of a published device list.
	FieldDeviceIDs = "device_ids"

	// FieldIdentityKey targets the public identity key of a bundle.
	FieldIdentityKey = "identity_key"

	// FieldSignedPreKey targets the signed pre-key of a bundle.
	FieldSignedPreKey = "signed_pre_key"

	// FieldSignature targets the signed pre-key signature of a bundle.
	FieldSignature = "signature"

	// FieldPreKeys targets the one-time pre-key set of a bundle.
	FieldPreKeys = "pre_keys"

	// FieldHost targets the host of an external service entry.
	FieldHost = "host"

	// FieldServiceType targets the type of an external service entry.
	FieldServiceType = "service_type"

	// FieldPort targets the port of an external service entry.
	FieldPort = "port"
)

// PublishValidator enforces the publish-time business rules that the
// tolerant wire codec deliberately does not: the codec accepts anything,
// the validator decides what this server is willing to store.
type PublishValidator struct {
}

func NewPublishValidator() Validator {
	return &PublishValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported type are accepted.
//
// Supported types:
//   - omemo.DeviceList / *omemo.DeviceList
//   - omemo.DeviceBundle / *omemo.DeviceBundle
//   - extdisco.ExternalService / *extdisco.ExternalService
//   - models.RegisterRequest / *models.RegisterRequest
//   - models.LoginRequest / *models.LoginRequest
//
// Returns ErrUnsupportedType if obj does not match any known type.
// Optional fields restrict validation to the named subset; when omitted,
// a sensible default set of fields is validated.
func (v *PublishValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case omemo.DeviceList:
		return v.validateDeviceList(ctx, value, fields...)
	case *omemo.DeviceList:
		return v.validateDeviceList(ctx, *value, fields...)

	case omemo.DeviceBundle:
		return v.validateDeviceBundle(ctx, value, fields...)
	case *omemo.DeviceBundle:
		return v.validateDeviceBundle(ctx, *value, fields...)

	case extdisco.ExternalService:
		return v.validateExternalService(ctx, value, fields...)
	case *extdisco.ExternalService:
		return v.validateExternalService(ctx, *value, fields...)

	case models.RegisterRequest:
		return v.validateAccountRequest(ctx, value.JID, value.Password, fields...)
	case *models.RegisterRequest:
		return v.validateAccountRequest(ctx, value.JID, value.Password, fields...)

	case models.LoginRequest:
		return v.validateAccountRequest(ctx, value.JID, value.Password, fields...)
	case *models.LoginRequest:
		return v.validateAccountRequest(ctx, value.JID, value.Password, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateDeviceList checks every announced device id against the protocol
// range [1, INT32_MAX]. Duplicate ids are allowed, the wire format permits
// them.
func (v *PublishValidator) validateDeviceList(_ context.Context, list omemo.DeviceList, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDeviceIDs}
	}

	for _, f := range fields {
		switch f {
		case FieldDeviceIDs:
			for i, device := range list {
				if device.ID == 0 || device.ID > math.MaxInt32 {
					return fmt.Errorf("device at index %d: %w", i, ErrInvalidDeviceID)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateDeviceBundle checks bundle completeness: all key material present
// and at least one one-time pre-key to hand out.
func (v *PublishValidator) validateDeviceBundle(_ context.Context, bundle omemo.DeviceBundle, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldIdentityKey, FieldSignedPreKey, FieldSignature, FieldPreKeys}
	}

	for _, f := range fields {
		switch f {
		case FieldIdentityKey:
			if len(bundle.PublicIdentityKey) == 0 {
				return ErrEmptyIdentityKey
			}
		case FieldSignedPreKey:
			if len(bundle.SignedPublicPreKey) == 0 {
				return ErrEmptySignedPreKey
			}
		case FieldSignature:
			if len(bundle.SignedPublicPreKeySignature) == 0 {
				return ErrMissingSignature
			}
		case FieldPreKeys:
			if len(bundle.PublicPreKeys) == 0 {
				return ErrNoPreKeys
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateExternalService checks the attributes a storable entry must carry.
// The port check only applies when a port is present; absence is legal.
func (v *PublishValidator) validateExternalService(_ context.Context, service extdisco.ExternalService, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldHost, FieldServiceType, FieldPort}
	}

	for _, f := range fields {
		switch f {
		case FieldHost:
			if service.Host == "" {
				return ErrEmptyHost
			}
		case FieldServiceType:
			if service.Type == "" {
				return ErrEmptyServiceType
			}
		case FieldPort:
			if service.Port != nil && (*service.Port < 0 || *service.Port > 65535) {
				return ErrInvalidPort
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateAccountRequest checks registration and login bodies. A bare JID
// must contain exactly one "@" with non-empty local and domain parts.
func (v *PublishValidator) validateAccountRequest(_ context.Context, jid, password string, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldJID, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldJID:
			local, domain, found := strings.Cut(jid, "@")
			if !found || local == "" || domain == "" || strings.Contains(domain, "@") {
				return ErrInvalidJID
			}
		case FieldPassword:
			if password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
