package store

import (
	"context"
	"time"

	"github.com/xmppfed/go-keyhub/models"
)

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// PublisherRepository manages publisher accounts.
type PublisherRepository interface {
	CreatePublisher(ctx context.Context, publisher models.Publisher) (models.Publisher, error)
	FindPublisherByJID(ctx context.Context, jid string) (models.Publisher, error)
}

// DeviceListRepository persists published device lists. A publish replaces
// the publisher's whole list atomically; reads reproduce document order.
type DeviceListRepository interface {
	ReplaceDeviceList(ctx context.Context, publisherID int64, devices []models.DeviceRecord) error
	GetDeviceList(ctx context.Context, publisherID int64) ([]models.DeviceRecord, error)
}

// DepletedBundle reports a device bundle running low on one-time pre-keys.
type DepletedBundle struct {
	PublisherID int64
	DeviceID    uint32
	Remaining   int
}

// BundleRepository persists device key bundles and their one-time pre-keys.
type BundleRepository interface {
	UpsertBundle(ctx context.Context, bundle models.BundleRecord, preKeys []models.PreKeyRecord) error
	GetBundle(ctx context.Context, publisherID int64, deviceID uint32) (models.BundleRecord, []models.PreKeyRecord, error)

	// TakePreKey removes and returns one pre-key from the bundle, so a key
	// is handed to at most one session initiator.
	TakePreKey(ctx context.Context, publisherID int64, deviceID uint32) (models.PreKeyRecord, error)

	CountPreKeys(ctx context.Context, publisherID int64, deviceID uint32) (int, error)

	// ListDepletedBundles returns all bundles whose remaining pre-key count
	// is strictly below threshold.
	ListDepletedBundles(ctx context.Context, threshold int) ([]DepletedBundle, error)
}

// ServiceRepository persists external service entries announced via service
// discovery.
type ServiceRepository interface {
	AddService(ctx context.Context, service models.ServiceRecord) (models.ServiceRecord, error)
	ModifyService(ctx context.Context, service models.ServiceRecord) error
	DeleteService(ctx context.Context, publisherID int64, host, serviceType string, port *int) error
	GetServices(ctx context.Context, publisherID int64) ([]models.ServiceRecord, error)

	// DeleteExpiredServices removes all entries whose expiry timestamp is at
	// or before now. Returns the number of removed rows.
	DeleteExpiredServices(ctx context.Context, now time.Time) (int64, error)
}
