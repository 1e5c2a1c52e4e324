package store

import (
	"context"
	"fmt"
	"time"

	"github.com/xmppfed/go-keyhub/internal/logger"
	"github.com/xmppfed/go-keyhub/models"
)

// serviceRepository is the PostgreSQL-backed implementation of
// [ServiceRepository]. An entry is identified within one publisher by its
// host and type, plus the port when one is present.
type serviceRepository struct {
	*DB
	logger *logger.Logger
}

// NewServiceRepository constructs a [ServiceRepository] backed by the
// provided database connection and logger.
func NewServiceRepository(db *DB, logger *logger.Logger) ServiceRepository {
	return &serviceRepository{
		DB:     db,
		logger: logger,
	}
}

// AddService inserts a new external service entry and returns it with the
// server-assigned row id.
func (r *serviceRepository) AddService(ctx context.Context, service models.ServiceRecord) (models.ServiceRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertServiceQuery(service)
	if err != nil {
		return models.ServiceRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&service.ID); err != nil {
		log.Err(err).
			Str("func", "serviceRepository.AddService").
			Int64("publisher_id", service.PublisherID).
			Str("host", service.Host).
			Str("type", service.Type).
			Msg("failed to insert external service")
		return models.ServiceRecord{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return service, nil
}

// ModifyService updates the mutable attributes of the entry matching the
// identity of service. Returns [ErrServiceNotFound] when no entry matches.
func (r *serviceRepository) ModifyService(ctx context.Context, service models.ServiceRecord) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateServiceQuery(service)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "serviceRepository.ModifyService").
			Int64("publisher_id", service.PublisherID).
			Str("host", service.Host).
			Str("type", service.Type).
			Msg("failed to update external service")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrServiceNotFound
	}

	return nil
}

// DeleteService removes the entry matching (publisherID, host, serviceType)
// and, when port is non-nil, the port as well. Returns [ErrServiceNotFound]
// when no entry matches.
func (r *serviceRepository) DeleteService(ctx context.Context, publisherID int64, host, serviceType string, port *int) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteServiceQuery(publisherID, host, serviceType, port)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "serviceRepository.DeleteService").
			Int64("publisher_id", publisherID).
			Str("host", host).
			Str("type", serviceType).
			Msg("failed to delete external service")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrServiceNotFound
	}

	return nil
}

// GetServices retrieves all external service entries of publisherID in
// insertion order.
func (r *serviceRepository) GetServices(ctx context.Context, publisherID int64) ([]models.ServiceRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectServicesQuery(publisherID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "serviceRepository.GetServices").
			Int64("publisher_id", publisherID).
			Msg("failed to execute query for getting external services")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	services := make([]models.ServiceRecord, 0, 8)

	for rows.Next() {
		var record models.ServiceRecord

		if scanErr := rows.Scan(
			&record.ID,
			&record.PublisherID,
			&record.Host,
			&record.Type,
			&record.Expires,
			&record.Name,
			&record.Password,
			&record.Port,
			&record.Restricted,
			&record.Transport,
			&record.Username,
		); scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		services = append(services, record)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return services, nil
}

// DeleteExpiredServices removes every entry whose expiry timestamp is at or
// before now. Entries without an expiry are never touched.
func (r *serviceRepository) DeleteExpiredServices(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteExpiredServicesQuery(now)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "serviceRepository.DeleteExpiredServices").
			Msg("failed to delete expired external services")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}

	return affected, nil
}
