package store

import (
	"context"
	"time"
)

// Cache document kinds used by the CLI client. A bundle document is keyed as
// "bundle:<device-id>" via [BundleDocumentKind].
const (
	DeviceListDocument = "device-list"
	ServicesDocument   = "services"
)

// CachedDocument is one locally cached XML document fetched from the server.
type CachedDocument struct {
	Kind      string
	JID       string
	Body      string
	FetchedAt time.Time
}

// ClientSession is the locally persisted login state of the CLI client.
type ClientSession struct {
	JID   string
	Token string
}

// CacheRepository is the CLI client's local storage: the current session and
// the last fetched copy of each remote document.
type CacheRepository interface {
	SaveSession(ctx context.Context, session ClientSession) error
	GetSession(ctx context.Context) (ClientSession, error)
	DeleteSession(ctx context.Context) error

	SaveDocument(ctx context.Context, document CachedDocument) error
	GetDocument(ctx context.Context, kind, jid string) (CachedDocument, error)
}
