package service

import (
	"context"

	"github.com/xmppfed/go-keyhub/internal/extdisco"
	"github.com/xmppfed/go-keyhub/internal/omemo"
	"github.com/xmppfed/go-keyhub/internal/store"
	"github.com/xmppfed/go-keyhub/models"
)

// KeyDistributionService owns the business logic around published OMEMO
// device lists and key bundles.
type KeyDistributionService interface {
	PublishDeviceList(ctx context.Context, publisherID int64, list omemo.DeviceList) error
	DeviceList(ctx context.Context, publisherID int64) (omemo.DeviceList, error)

	PublishBundle(ctx context.Context, publisherID int64, deviceID uint32, bundle omemo.DeviceBundle) error
	Bundle(ctx context.Context, publisherID int64, deviceID uint32) (omemo.DeviceBundle, error)

	// TakePreKey hands out one single-use pre-key from the device's bundle
	// and removes it from the published set.
	TakePreKey(ctx context.Context, publisherID int64, deviceID uint32) (keyID uint32, data []byte, err error)

	PreKeyCount(ctx context.Context, publisherID int64, deviceID uint32) (int, error)

	// ListDepletedBundles reports bundles with fewer than threshold pre-keys
	// remaining.
	ListDepletedBundles(ctx context.Context, threshold int) ([]store.DepletedBundle, error)
}

// DiscoveryService owns the business logic around announced external
// services.
type DiscoveryService interface {
	// Services returns the publisher's current entries as a serializable
	// services document. A non-empty serviceType restricts the result to
	// entries of that type.
	Services(ctx context.Context, publisherID int64, serviceType string) (extdisco.ServicesIQ, error)

	// Apply executes the actions carried by the document: entries marked
	// delete are removed, modify updates them in place, everything else is
	// added.
	Apply(ctx context.Context, publisherID int64, iq extdisco.ServicesIQ) error

	// DeleteExpiredServices removes all entries past their expiry. Returns
	// the number of removed entries.
	DeleteExpiredServices(ctx context.Context) (int64, error)
}

// AuthService owns publisher account registration, credential verification,
// and token lifecycle.
type AuthService interface {
	Register(ctx context.Context, request models.RegisterRequest) (models.Publisher, error)
	Login(ctx context.Context, request models.LoginRequest) (models.Publisher, error)
	CreateToken(ctx context.Context, publisher models.Publisher) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// KeyDistributionServiceWrapper defines middleware composition for
// KeyDistributionService. Implementations wrap an existing service to add
// behavior such as validation.
type KeyDistributionServiceWrapper interface {
	Wrap(KeyDistributionService) KeyDistributionService
}

// DiscoveryServiceWrapper defines middleware composition for
// DiscoveryService.
type DiscoveryServiceWrapper interface {
	Wrap(DiscoveryService) DiscoveryService
}
