package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/xmppfed/go-keyhub/internal/logger"
	"github.com/xmppfed/go-keyhub/models"
)

// publisherRepository is the PostgreSQL-backed implementation of
// [PublisherRepository]. It handles publisher account creation and lookup
// against the "publishers" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type publisherRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPublisherRepository constructs a [PublisherRepository] backed by the
// provided database connection and logger.
func NewPublisherRepository(db *DB, logger *logger.Logger) PublisherRepository {
	logger.Debug().Msg("creating publisher repository")
	return &publisherRepository{
		db:     db,
		logger: logger,
	}
}

// CreatePublisher persists a new publisher record and returns the fully
// populated [models.Publisher] with server-assigned fields (ID, CreatedAt).
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrJIDAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *publisherRepository) CreatePublisher(ctx context.Context, publisher models.Publisher) (models.Publisher, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createPublisher, publisher.JID, publisher.Name, publisher.AuthHash)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*publisherRepository.CreatePublisher").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Publisher{}, ErrJIDAlreadyExists
		default:
			return models.Publisher{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if err := row.Scan(&publisher.ID, &publisher.JID, &publisher.Name, &publisher.AuthHash, &publisher.CreatedAt); err != nil {
		log.Err(err).Str("func", "*publisherRepository.CreatePublisher").Msg("error: scanning error")

		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Publisher{}, ErrJIDAlreadyExists
		}
		return models.Publisher{}, err
	}

	return publisher, nil
}

// FindPublisherByJID retrieves a publisher record whose JID matches the one
// provided.
//
// Error handling:
//   - No matching row → [ErrNoPublisherWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *publisherRepository) FindPublisherByJID(ctx context.Context, jid string) (models.Publisher, error) {
	log := logger.FromContext(ctx)

	var found models.Publisher
	row := r.db.QueryRowContext(ctx, findPublisherByJID, jid)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*publisherRepository.FindPublisherByJID").Msg("error: row is nil")
		return models.Publisher{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&found.ID, &found.JID, &found.Name, &found.AuthHash, &found.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Publisher{}, ErrNoPublisherWasFound
		}

		log.Err(err).Str("func", "*publisherRepository.FindPublisherByJID").Msg("error: scanning error")
		return models.Publisher{}, err
	}

	return found, nil
}
