package service

import (
	"slices"

	"github.com/xmppfed/go-keyhub/internal/extdisco"
	"github.com/xmppfed/go-keyhub/internal/omemo"
	"github.com/xmppfed/go-keyhub/models"
)

// Conversions between wire payload types and persistence records. The wire
// side is tolerant and pointer-heavy; the record side is flat and typed for
// SQL. Absent optional attributes survive as nil pointers on both sides.

func deviceListToRecords(publisherID int64, list omemo.DeviceList) []models.DeviceRecord {
	records := make([]models.DeviceRecord, 0, len(list))
	for position, device := range list {
		records = append(records, models.DeviceRecord{
			PublisherID: publisherID,
			DeviceID:    device.ID,
			Label:       device.Label,
			Position:    position,
		})
	}
	return records
}

func recordsToDeviceList(records []models.DeviceRecord) omemo.DeviceList {
	list := make(omemo.DeviceList, 0, len(records))
	for _, record := range records {
		list = append(list, omemo.DeviceElement{ID: record.DeviceID, Label: record.Label})
	}
	return list
}

func bundleToRecords(publisherID int64, deviceID uint32, bundle omemo.DeviceBundle) (models.BundleRecord, []models.PreKeyRecord) {
	record := models.BundleRecord{
		PublisherID:           publisherID,
		DeviceID:              deviceID,
		IdentityKey:           bundle.PublicIdentityKey,
		SignedPreKey:          bundle.SignedPublicPreKey,
		SignedPreKeyID:        bundle.SignedPublicPreKeyID,
		SignedPreKeySignature: bundle.SignedPublicPreKeySignature,
	}

	keyIDs := make([]uint32, 0, len(bundle.PublicPreKeys))
	for keyID := range bundle.PublicPreKeys {
		keyIDs = append(keyIDs, keyID)
	}
	slices.Sort(keyIDs)

	preKeys := make([]models.PreKeyRecord, 0, len(keyIDs))
	for _, keyID := range keyIDs {
		preKeys = append(preKeys, models.PreKeyRecord{
			PublisherID: publisherID,
			DeviceID:    deviceID,
			KeyID:       keyID,
			Data:        bundle.PublicPreKeys[keyID],
		})
	}

	return record, preKeys
}

func recordsToBundle(record models.BundleRecord, preKeys []models.PreKeyRecord) omemo.DeviceBundle {
	bundle := omemo.DeviceBundle{
		PublicIdentityKey:           record.IdentityKey,
		SignedPublicPreKey:          record.SignedPreKey,
		SignedPublicPreKeyID:        record.SignedPreKeyID,
		SignedPublicPreKeySignature: record.SignedPreKeySignature,
	}

	for _, preKey := range preKeys {
		bundle.AddPublicPreKey(preKey.KeyID, preKey.Data)
	}

	return bundle
}

// serviceToRecord drops the action attribute: actions steer Apply, they are
// never stored.
func serviceToRecord(publisherID int64, service extdisco.ExternalService) models.ServiceRecord {
	record := models.ServiceRecord{
		PublisherID: publisherID,
		Host:        service.Host,
		Type:        service.Type,
		Name:        service.Name,
		Port:        service.Port,
		Username:    service.Username,
		Password:    service.Password,
		Restricted:  service.Restricted,
		Expires:     service.Expires,
	}

	if service.Transport != nil {
		transport := service.Transport.String()
		record.Transport = &transport
	}

	return record
}

func recordToService(record models.ServiceRecord) extdisco.ExternalService {
	service := extdisco.ExternalService{
		Host:       record.Host,
		Type:       record.Type,
		Name:       record.Name,
		Port:       record.Port,
		Username:   record.Username,
		Password:   record.Password,
		Restricted: record.Restricted,
		Expires:    record.Expires,
	}

	// A stored transport value that no longer parses degrades to absent,
	// matching the wire codec's treatment of unknown transports.
	if record.Transport != nil {
		if transport, ok := extdisco.TransportFromString(*record.Transport); ok {
			service.Transport = &transport
		}
	}

	return service
}
