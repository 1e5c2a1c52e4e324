package store

import (
	"context"
	"fmt"

	"github.com/xmppfed/go-keyhub/internal/logger"
	"github.com/xmppfed/go-keyhub/models"
)

// deviceListRepository is the PostgreSQL-backed implementation of
// [DeviceListRepository]. A publish replaces the publisher's whole list in
// one transaction: delete, then bulk insert with explicit positions.
type deviceListRepository struct {
	*DB
	logger *logger.Logger
}

// NewDeviceListRepository constructs a [DeviceListRepository] backed by the
// provided database connection and logger.
func NewDeviceListRepository(db *DB, logger *logger.Logger) DeviceListRepository {
	return &deviceListRepository{
		DB:     db,
		logger: logger,
	}
}

// ReplaceDeviceList atomically swaps the stored device list of publisherID
// for the given one. An empty devices slice clears the list. Document order
// and duplicate device IDs are preserved through the position column.
func (r *deviceListRepository) ReplaceDeviceList(ctx context.Context, publisherID int64, devices []models.DeviceRecord) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "deviceListRepository.ReplaceDeviceList").
			Int64("publisher_id", publisherID).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	deleteQuery, deleteArgs, err := buildDeleteDeviceListQuery(publisherID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		log.Err(err).
			Str("func", "deviceListRepository.ReplaceDeviceList").
			Int64("publisher_id", publisherID).
			Msg("failed to delete previous device list")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if len(devices) > 0 {
		insertQuery, insertArgs, buildErr := buildInsertDeviceListQuery(publisherID, devices)
		if buildErr != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}

		result, execErr := tx.ExecContext(ctx, insertQuery, insertArgs...)
		if execErr != nil {
			log.Err(execErr).
				Str("func", "deviceListRepository.ReplaceDeviceList").
				Int64("publisher_id", publisherID).
				Int("devices count", len(devices)).
				Msg("failed to insert device list")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}

		if affected, _ := result.RowsAffected(); affected == 0 {
			return ErrDeviceListNotSaved
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "deviceListRepository.ReplaceDeviceList").
			Int64("publisher_id", publisherID).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// GetDeviceList retrieves the stored device list of publisherID in publish
// order. Returns an empty slice when nothing has been published yet.
func (r *deviceListRepository) GetDeviceList(ctx context.Context, publisherID int64) ([]models.DeviceRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectDeviceListQuery(publisherID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "deviceListRepository.GetDeviceList").
			Int64("publisher_id", publisherID).
			Msg("failed to execute query for getting device list")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	devices := make([]models.DeviceRecord, 0, 8)

	for rows.Next() {
		var record models.DeviceRecord
		var deviceID int64

		if scanErr := rows.Scan(&record.PublisherID, &record.Position, &deviceID, &record.Label); scanErr != nil {
			log.Err(scanErr).
				Str("func", "deviceListRepository.GetDeviceList").
				Int64("publisher_id", publisherID).
				Msg("failed to scan device list row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		record.DeviceID = uint32(deviceID)
		devices = append(devices, record)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "deviceListRepository.GetDeviceList").
			Int64("publisher_id", publisherID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return devices, nil
}
