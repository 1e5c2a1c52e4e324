package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/xmppfed/go-keyhub/internal/logger"
)

// ErrLocalSessionNotFound is returned when the CLI client has no persisted
// login session.
var ErrLocalSessionNotFound = errors.New("local session not found")

// ErrDocumentNotCached is returned when a requested document has never been
// fetched from the server.
var ErrDocumentNotCached = errors.New("document not cached")

// BundleDocumentKind builds the cache kind for one device's bundle document.
func BundleDocumentKind(deviceID uint32) string {
	return fmt.Sprintf("bundle:%d", deviceID)
}

// cacheRepository is the sqlite-backed implementation of [CacheRepository].
type cacheRepository struct {
	*DB
	logger *logger.Logger
}

// NewCacheRepository constructs a [CacheRepository] backed by the provided
// sqlite connection and logger.
func NewCacheRepository(db *DB, logger *logger.Logger) CacheRepository {
	return &cacheRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveSession persists the login session, replacing any previous one. The
// cache holds at most one session at a time.
func (r *cacheRepository) SaveSession(ctx context.Context, session ClientSession) error {
	if _, err := r.DB.ExecContext(ctx, saveSession, session.JID, session.Token, time.Now()); err != nil {
		r.logger.Err(err).Str("func", "cacheRepository.SaveSession").Msg("failed to save session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// GetSession returns the persisted login session, or
// [ErrLocalSessionNotFound] if the client has never logged in.
func (r *cacheRepository) GetSession(ctx context.Context) (ClientSession, error) {
	var session ClientSession

	row := r.DB.QueryRowContext(ctx, getSession)
	if err := row.Scan(&session.JID, &session.Token); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ClientSession{}, ErrLocalSessionNotFound
		}

		r.logger.Err(err).Str("func", "cacheRepository.GetSession").Msg("failed to scan session")
		return ClientSession{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return session, nil
}

// DeleteSession drops the persisted login session. Deleting an absent
// session is not an error.
func (r *cacheRepository) DeleteSession(ctx context.Context) error {
	if _, err := r.DB.ExecContext(ctx, deleteSession); err != nil {
		r.logger.Err(err).Str("func", "cacheRepository.DeleteSession").Msg("failed to delete session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// SaveDocument stores the fetched document, replacing the previous copy of
// the same (kind, jid) pair.
func (r *cacheRepository) SaveDocument(ctx context.Context, document CachedDocument) error {
	fetchedAt := document.FetchedAt
	if fetchedAt.IsZero() {
		fetchedAt = time.Now()
	}

	if _, err := r.DB.ExecContext(ctx, saveDocument, document.Kind, document.JID, document.Body, fetchedAt); err != nil {
		r.logger.Err(err).
			Str("func", "cacheRepository.SaveDocument").
			Str("kind", document.Kind).
			Str("jid", document.JID).
			Msg("failed to save document")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// GetDocument returns the cached copy of the (kind, jid) document, or
// [ErrDocumentNotCached] when it was never fetched.
func (r *cacheRepository) GetDocument(ctx context.Context, kind, jid string) (CachedDocument, error) {
	document := CachedDocument{Kind: kind, JID: jid}

	row := r.DB.QueryRowContext(ctx, getDocument, kind, jid)
	if err := row.Scan(&document.Body, &document.FetchedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CachedDocument{}, ErrDocumentNotCached
		}

		r.logger.Err(err).
			Str("func", "cacheRepository.GetDocument").
			Str("kind", kind).
			Str("jid", jid).
			Msg("failed to scan document")
		return CachedDocument{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return document, nil
}
