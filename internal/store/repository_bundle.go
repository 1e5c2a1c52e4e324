package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/xmppfed/go-keyhub/internal/logger"
	"github.com/xmppfed/go-keyhub/models"
)

// bundleRepository is the PostgreSQL-backed implementation of
// [BundleRepository]. Bundle rows and their pre-key rows are kept in two
// tables tied by a composite foreign key; a publish replaces both.
type bundleRepository struct {
	*DB
	logger *logger.Logger
}

// NewBundleRepository constructs a [BundleRepository] backed by the provided
// database connection and logger.
func NewBundleRepository(db *DB, logger *logger.Logger) BundleRepository {
	return &bundleRepository{
		DB:     db,
		logger: logger,
	}
}

// UpsertBundle stores the bundle row and replaces its one-time pre-keys in
// one transaction. Re-publishing a bundle therefore resets the pre-key set
// to exactly what was published.
func (r *bundleRepository) UpsertBundle(ctx context.Context, bundle models.BundleRecord, preKeys []models.PreKeyRecord) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "bundleRepository.UpsertBundle").
			Int64("publisher_id", bundle.PublisherID).
			Uint32("device_id", bundle.DeviceID).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	upsertQuery, upsertArgs, err := buildUpsertBundleQuery(bundle)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = tx.ExecContext(ctx, upsertQuery, upsertArgs...); err != nil {
		log.Err(err).
			Str("func", "bundleRepository.UpsertBundle").
			Int64("publisher_id", bundle.PublisherID).
			Uint32("device_id", bundle.DeviceID).
			Msg("failed to upsert bundle row")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	deleteQuery, deleteArgs, err := buildDeletePreKeysQuery(bundle.PublisherID, bundle.DeviceID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		log.Err(err).
			Str("func", "bundleRepository.UpsertBundle").
			Int64("publisher_id", bundle.PublisherID).
			Uint32("device_id", bundle.DeviceID).
			Msg("failed to delete previous pre-keys")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if len(preKeys) > 0 {
		insertQuery, insertArgs, buildErr := buildInsertPreKeysQuery(preKeys)
		if buildErr != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}

		if _, execErr := tx.ExecContext(ctx, insertQuery, insertArgs...); execErr != nil {
			log.Err(execErr).
				Str("func", "bundleRepository.UpsertBundle").
				Int64("publisher_id", bundle.PublisherID).
				Uint32("device_id", bundle.DeviceID).
				Int("pre-keys count", len(preKeys)).
				Msg("failed to insert pre-keys")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "bundleRepository.UpsertBundle").
			Int64("publisher_id", bundle.PublisherID).
			Uint32("device_id", bundle.DeviceID).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// GetBundle retrieves the bundle of (publisherID, deviceID) together with
// its remaining pre-keys, ordered by pre-key id.
func (r *bundleRepository) GetBundle(ctx context.Context, publisherID int64, deviceID uint32) (models.BundleRecord, []models.PreKeyRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectBundleQuery(publisherID, deviceID)
	if err != nil {
		return models.BundleRecord{}, nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var bundle models.BundleRecord
	var bundleDeviceID, signedPreKeyID int64

	row := r.DB.QueryRowContext(ctx, query, args...)
	if err = row.Scan(
		&bundle.PublisherID,
		&bundleDeviceID,
		&bundle.IdentityKey,
		&bundle.SignedPreKey,
		&signedPreKeyID,
		&bundle.SignedPreKeySignature,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.BundleRecord{}, nil, ErrBundleNotFound
		}

		log.Err(err).
			Str("func", "bundleRepository.GetBundle").
			Int64("publisher_id", publisherID).
			Uint32("device_id", deviceID).
			Msg("failed to scan bundle row")
		return models.BundleRecord{}, nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	bundle.DeviceID = uint32(bundleDeviceID)
	bundle.SignedPreKeyID = uint32(signedPreKeyID)

	preKeys, err := r.getPreKeys(ctx, publisherID, deviceID)
	if err != nil {
		return models.BundleRecord{}, nil, err
	}

	return bundle, preKeys, nil
}

func (r *bundleRepository) getPreKeys(ctx context.Context, publisherID int64, deviceID uint32) ([]models.PreKeyRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectPreKeysQuery(publisherID, deviceID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "bundleRepository.getPreKeys").
			Int64("publisher_id", publisherID).
			Uint32("device_id", deviceID).
			Msg("failed to execute query for getting pre-keys")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	preKeys := make([]models.PreKeyRecord, 0, 100)

	for rows.Next() {
		var record models.PreKeyRecord
		var recordDeviceID, keyID int64

		if scanErr := rows.Scan(&record.PublisherID, &recordDeviceID, &keyID, &record.Data); scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		record.DeviceID = uint32(recordDeviceID)
		record.KeyID = uint32(keyID)
		preKeys = append(preKeys, record)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return preKeys, nil
}

// TakePreKey removes one pre-key from the bundle and returns it. Uses a
// locked delete-returning so concurrent callers each receive a distinct key.
//
// Returns [ErrNoPreKeysLeft] when the pre-key set is exhausted.
func (r *bundleRepository) TakePreKey(ctx context.Context, publisherID int64, deviceID uint32) (models.PreKeyRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildTakePreKeyQuery(publisherID, deviceID)
	if err != nil {
		return models.PreKeyRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var record models.PreKeyRecord
	var recordDeviceID, keyID int64

	row := r.DB.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&record.PublisherID, &recordDeviceID, &keyID, &record.Data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.PreKeyRecord{}, ErrNoPreKeysLeft
		}

		log.Err(err).
			Str("func", "bundleRepository.TakePreKey").
			Int64("publisher_id", publisherID).
			Uint32("device_id", deviceID).
			Msg("failed to take pre-key")
		return models.PreKeyRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	record.DeviceID = uint32(recordDeviceID)
	record.KeyID = uint32(keyID)

	return record, nil
}

// CountPreKeys returns the number of remaining one-time pre-keys of the
// bundle.
func (r *bundleRepository) CountPreKeys(ctx context.Context, publisherID int64, deviceID uint32) (int, error) {
	query, args, err := buildCountPreKeysQuery(publisherID, deviceID)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return count, nil
}

// ListDepletedBundles returns all bundles whose remaining pre-key count is
// strictly below threshold, including bundles with no pre-keys at all.
func (r *bundleRepository) ListDepletedBundles(ctx context.Context, threshold int) ([]DepletedBundle, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDepletedBundlesQuery(threshold)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "bundleRepository.ListDepletedBundles").
			Int("threshold", threshold).
			Msg("failed to execute depleted bundles query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	depleted := make([]DepletedBundle, 0, 8)

	for rows.Next() {
		var entry DepletedBundle
		var deviceID int64

		if scanErr := rows.Scan(&entry.PublisherID, &deviceID, &entry.Remaining); scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		entry.DeviceID = uint32(deviceID)
		depleted = append(depleted, entry)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return depleted, nil
}
