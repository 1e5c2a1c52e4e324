package store

import "github.com/xmppfed/go-keyhub/internal/logger"

// Repositories bundles all server-side repositories behind one constructor
// so the application layer wires a single dependency.
type Repositories struct {
	PublisherRepository  PublisherRepository
	DeviceListRepository DeviceListRepository
	BundleRepository     BundleRepository
	ServiceRepository    ServiceRepository
}

// NewRepositories constructs every repository on top of the shared database
// connection.
func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		PublisherRepository:  NewPublisherRepository(db, log),
		DeviceListRepository: NewDeviceListRepository(db, log),
		BundleRepository:     NewBundleRepository(db, log),
		ServiceRepository:    NewServiceRepository(db, log),
	}
}
