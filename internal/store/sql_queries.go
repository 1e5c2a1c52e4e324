// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The go-keyhub Authors

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/xmppfed/go-keyhub/models"
)

// psql is the shared squirrel statement builder configured for PostgreSQL
// ($1-style) placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	createPublisher = `INSERT INTO publishers (jid, name, auth_hash)
    VALUES ($1, $2, $3)
    RETURNING id, jid, name, auth_hash, created_at;`

	findPublisherByJID = `SELECT id, jid, name, auth_hash, created_at
    FROM publishers
    WHERE jid = $1;`
)

func buildSelectDeviceListQuery(publisherID int64) (string, []any, error) {
	return psql.
		Select("publisher_id", "position", "device_id", "label").
		From(models.DeviceRecord{}.TableName()).
		Where(sq.Eq{"publisher_id": publisherID}).
		OrderBy("position ASC").
		ToSql()
}

func buildDeleteDeviceListQuery(publisherID int64) (string, []any, error) {
	return psql.
		Delete(models.DeviceRecord{}.TableName()).
		Where(sq.Eq{"publisher_id": publisherID}).
		ToSql()
}

func buildInsertDeviceListQuery(publisherID int64, devices []models.DeviceRecord) (string, []any, error) {
	builder := psql.
		Insert(models.DeviceRecord{}.TableName()).
		Columns("publisher_id", "position", "device_id", "label")

	for position, device := range devices {
		builder = builder.Values(publisherID, position, int64(device.DeviceID), device.Label)
	}

	return builder.ToSql()
}

func buildUpsertBundleQuery(bundle models.BundleRecord) (string, []any, error) {
	return psql.
		Insert(models.BundleRecord{}.TableName()).
		Columns(
			"publisher_id",
			"device_id",
			"public_identity_key",
			"signed_public_pre_key",
			"signed_public_pre_key_id",
			"signed_public_pre_key_signature",
		).
		Values(
			bundle.PublisherID,
			int64(bundle.DeviceID),
			bundle.IdentityKey,
			bundle.SignedPreKey,
			int64(bundle.SignedPreKeyID),
			bundle.SignedPreKeySignature,
		).
		Suffix(`ON CONFLICT (publisher_id, device_id) DO UPDATE SET
			public_identity_key = EXCLUDED.public_identity_key,
			signed_public_pre_key = EXCLUDED.signed_public_pre_key,
			signed_public_pre_key_id = EXCLUDED.signed_public_pre_key_id,
			signed_public_pre_key_signature = EXCLUDED.signed_public_pre_key_signature`).
		ToSql()
}

func buildSelectBundleQuery(publisherID int64, deviceID uint32) (string, []any, error) {
	return psql.
		Select(
			"publisher_id",
			"device_id",
			"public_identity_key",
			"signed_public_pre_key",
			"signed_public_pre_key_id",
			"signed_public_pre_key_signature",
		).
		From(models.BundleRecord{}.TableName()).
		Where(sq.Eq{"publisher_id": publisherID, "device_id": int64(deviceID)}).
		ToSql()
}

func buildDeletePreKeysQuery(publisherID int64, deviceID uint32) (string, []any, error) {
	return psql.
		Delete(models.PreKeyRecord{}.TableName()).
		Where(sq.Eq{"publisher_id": publisherID, "device_id": int64(deviceID)}).
		ToSql()
}

func buildInsertPreKeysQuery(preKeys []models.PreKeyRecord) (string, []any, error) {
	builder := psql.
		Insert(models.PreKeyRecord{}.TableName()).
		Columns("publisher_id", "device_id", "pre_key_id", "data")

	for _, preKey := range preKeys {
		builder = builder.Values(preKey.PublisherID, int64(preKey.DeviceID), int64(preKey.KeyID), preKey.Data)
	}

	return builder.ToSql()
}

func buildSelectPreKeysQuery(publisherID int64, deviceID uint32) (string, []any, error) {
	return psql.
		Select("publisher_id", "device_id", "pre_key_id", "data").
		From(models.PreKeyRecord{}.TableName()).
		Where(sq.Eq{"publisher_id": publisherID, "device_id": int64(deviceID)}).
		OrderBy("pre_key_id ASC").
		ToSql()
}

// buildTakePreKeyQuery removes the lowest-numbered remaining pre-key of the
// bundle and returns the removed row. The inner select takes a row lock so
// concurrent initiators cannot be handed the same key.
func buildTakePreKeyQuery(publisherID int64, deviceID uint32) (string, []any, error) {
	return psql.
		Delete(models.PreKeyRecord{}.TableName()).
		Where(sq.Expr(`(publisher_id, device_id, pre_key_id) IN (
			SELECT publisher_id, device_id, pre_key_id FROM pre_keys
			WHERE publisher_id = ? AND device_id = ?
			ORDER BY pre_key_id ASC LIMIT 1
			FOR UPDATE SKIP LOCKED)`, publisherID, int64(deviceID))).
		Suffix("RETURNING publisher_id, device_id, pre_key_id, data").
		ToSql()
}

func buildCountPreKeysQuery(publisherID int64, deviceID uint32) (string, []any, error) {
	return psql.
		Select("COUNT(*)").
		From(models.PreKeyRecord{}.TableName()).
		Where(sq.Eq{"publisher_id": publisherID, "device_id": int64(deviceID)}).
		ToSql()
}

func buildDepletedBundlesQuery(threshold int) (string, []any, error) {
	return psql.
		Select("b.publisher_id", "b.device_id", "COUNT(k.pre_key_id) AS remaining").
		From(models.BundleRecord{}.TableName() + " b").
		LeftJoin(models.PreKeyRecord{}.TableName() + " k ON k.publisher_id = b.publisher_id AND k.device_id = b.device_id").
		GroupBy("b.publisher_id", "b.device_id").
		Having(sq.Lt{"COUNT(k.pre_key_id)": threshold}).
		ToSql()
}

func buildInsertServiceQuery(service models.ServiceRecord) (string, []any, error) {
	return psql.
		Insert(models.ServiceRecord{}.TableName()).
		Columns(
			"publisher_id", "host", "type",
			"expires", "name", "password", "port", "restricted", "transport", "username",
		).
		Values(
			service.PublisherID, service.Host, service.Type,
			service.Expires, service.Name, service.Password, service.Port,
			service.Restricted, service.Transport, service.Username,
		).
		Suffix("RETURNING id").
		ToSql()
}

func buildUpdateServiceQuery(service models.ServiceRecord) (string, []any, error) {
	builder := psql.
		Update(models.ServiceRecord{}.TableName()).
		Set("expires", service.Expires).
		Set("name", service.Name).
		Set("password", service.Password).
		Set("restricted", service.Restricted).
		Set("transport", service.Transport).
		Set("username", service.Username).
		Where(sq.Eq{
			"publisher_id": service.PublisherID,
			"host":         service.Host,
			"type":         service.Type,
		})

	// The port participates in the identity of an entry when present.
	if service.Port != nil {
		builder = builder.Where(sq.Eq{"port": *service.Port})
	}

	return builder.ToSql()
}

func buildDeleteServiceQuery(publisherID int64, host, serviceType string, port *int) (string, []any, error) {
	builder := psql.
		Delete(models.ServiceRecord{}.TableName()).
		Where(sq.Eq{
			"publisher_id": publisherID,
			"host":         host,
			"type":         serviceType,
		})

	if port != nil {
		builder = builder.Where(sq.Eq{"port": *port})
	}

	return builder.ToSql()
}

func buildSelectServicesQuery(publisherID int64) (string, []any, error) {
	return psql.
		Select(
			"id", "publisher_id", "host", "type",
			"expires", "name", "password", "port", "restricted", "transport", "username",
		).
		From(models.ServiceRecord{}.TableName()).
		Where(sq.Eq{"publisher_id": publisherID}).
		OrderBy("id ASC").
		ToSql()
}

func buildDeleteExpiredServicesQuery(now time.Time) (string, []any, error) {
	return psql.
		Delete(models.ServiceRecord{}.TableName()).
		Where(sq.LtOrEq{"expires": now}).
		ToSql()
}
