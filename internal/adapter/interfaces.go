// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The go-keyhub Authors

// Package adapter provides the transport layer the CLI client uses to talk
// to the key server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// commands from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/xmppfed/go-keyhub/internal/extdisco"
	"github.com/xmppfed/go-keyhub/internal/omemo"
	"github.com/xmppfed/go-keyhub/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the key
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It should be called immediately
	// after a successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a publisher account. On success it stores the
	// returned bearer token via SetToken.
	Register(ctx context.Context, request models.RegisterRequest) error

	// Login authenticates the publisher. On success it stores the returned
	// bearer token via SetToken.
	Login(ctx context.Context, request models.LoginRequest) error

	// DeviceList fetches the publisher's current device list.
	DeviceList(ctx context.Context) (omemo.DeviceList, error)

	// PublishDeviceList replaces the publisher's device list on the server.
	PublishDeviceList(ctx context.Context, list omemo.DeviceList) error

	// Bundle fetches the published bundle for one device.
	Bundle(ctx context.Context, deviceID uint32) (omemo.DeviceBundle, error)

	// PublishBundle replaces the bundle published for one device.
	PublishBundle(ctx context.Context, deviceID uint32, bundle omemo.DeviceBundle) error

	// TakePreKey consumes one single-use pre-key from a device's bundle.
	TakePreKey(ctx context.Context, deviceID uint32) (keyID uint32, data []byte, err error)

	// PreKeyCount reports how many unused pre-keys a device has left.
	PreKeyCount(ctx context.Context, deviceID uint32) (int, error)

	// Services fetches the publisher's announced external services. A
	// non-empty serviceType restricts the result to entries of that type.
	Services(ctx context.Context, serviceType string) (extdisco.ServicesIQ, error)

	// PushServices submits a services document whose entries carry their
	// add, modify, or delete actions.
	PushServices(ctx context.Context, iq extdisco.ServicesIQ) error
}
