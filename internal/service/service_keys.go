// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The go-keyhub Authors

package service

import (
	"context"
	"fmt"

	"github.com/xmppfed/go-keyhub/internal/logger"
	"github.com/xmppfed/go-keyhub/internal/omemo"
	"github.com/xmppfed/go-keyhub/internal/store"
)

// keyDistributionService is the concrete implementation of
// KeyDistributionService. It converts between wire payload types and
// persistence records and delegates storage to the repositories.
type keyDistributionService struct {
	deviceListRepository store.DeviceListRepository
	bundleRepository     store.BundleRepository
	logger               *logger.Logger
}

// NewKeyDistributionService constructs a KeyDistributionService over the
// given repositories.
func NewKeyDistributionService(deviceListRepository store.DeviceListRepository, bundleRepository store.BundleRepository, logger *logger.Logger) KeyDistributionService {
	return &keyDistributionService{
		deviceListRepository: deviceListRepository,
		bundleRepository:     bundleRepository,
		logger:               logger,
	}
}

// PublishDeviceList replaces the publisher's whole device list. An empty
// list is a valid publish and clears the stored list.
func (s *keyDistributionService) PublishDeviceList(ctx context.Context, publisherID int64, list omemo.DeviceList) error {
	log := logger.FromContext(ctx)

	err := s.deviceListRepository.ReplaceDeviceList(ctx, publisherID, deviceListToRecords(publisherID, list))
	if err != nil {
		log.Err(err).Int64("publisher_id", publisherID).Msg("device list publish ended with error")
		return fmt.Errorf("device list publish ended with error: %w", err)
	}

	return nil
}

// DeviceList returns the publisher's stored device list in publish order.
// A publisher with no published list gets an empty list, not an error.
func (s *keyDistributionService) DeviceList(ctx context.Context, publisherID int64) (omemo.DeviceList, error) {
	log := logger.FromContext(ctx)

	records, err := s.deviceListRepository.GetDeviceList(ctx, publisherID)
	if err != nil {
		log.Err(err).Int64("publisher_id", publisherID).Msg("device list retrieval ended with error")
		return nil, fmt.Errorf("device list retrieval ended with error: %w", err)
	}

	return recordsToDeviceList(records), nil
}

// PublishBundle stores the bundle for the given device, replacing any
// previously published bundle and its pre-keys.
func (s *keyDistributionService) PublishBundle(ctx context.Context, publisherID int64, deviceID uint32, bundle omemo.DeviceBundle) error {
	log := logger.FromContext(ctx)

	record, preKeys := bundleToRecords(publisherID, deviceID, bundle)

	if err := s.bundleRepository.UpsertBundle(ctx, record, preKeys); err != nil {
		log.Err(err).Int64("publisher_id", publisherID).Uint32("device_id", deviceID).Msg("bundle publish ended with error")
		return fmt.Errorf("bundle publish ended with error: %w", err)
	}

	return nil
}

// Bundle returns the published bundle for the given device.
func (s *keyDistributionService) Bundle(ctx context.Context, publisherID int64, deviceID uint32) (omemo.DeviceBundle, error) {
	log := logger.FromContext(ctx)

	record, preKeys, err := s.bundleRepository.GetBundle(ctx, publisherID, deviceID)
	if err != nil {
		log.Err(err).Int64("publisher_id", publisherID).Uint32("device_id", deviceID).Msg("bundle retrieval ended with error")
		return omemo.DeviceBundle{}, fmt.Errorf("bundle retrieval ended with error: %w", err)
	}

	return recordsToBundle(record, preKeys), nil
}

// TakePreKey removes one pre-key from the bundle and returns it. Each key is
// handed to at most one caller.
func (s *keyDistributionService) TakePreKey(ctx context.Context, publisherID int64, deviceID uint32) (uint32, []byte, error) {
	log := logger.FromContext(ctx)

	preKey, err := s.bundleRepository.TakePreKey(ctx, publisherID, deviceID)
	if err != nil {
		log.Err(err).Int64("publisher_id", publisherID).Uint32("device_id", deviceID).Msg("pre-key retrieval ended with error")
		return 0, nil, fmt.Errorf("pre-key retrieval ended with error: %w", err)
	}

	return preKey.KeyID, preKey.Data, nil
}

// PreKeyCount reports the number of unused pre-keys left in the bundle.
func (s *keyDistributionService) PreKeyCount(ctx context.Context, publisherID int64, deviceID uint32) (int, error) {
	count, err := s.bundleRepository.CountPreKeys(ctx, publisherID, deviceID)
	if err != nil {
		return 0, fmt.Errorf("pre-key count ended with error: %w", err)
	}

	return count, nil
}

// ListDepletedBundles reports bundles with fewer than threshold pre-keys
// left.
func (s *keyDistributionService) ListDepletedBundles(ctx context.Context, threshold int) ([]store.DepletedBundle, error) {
	depleted, err := s.bundleRepository.ListDepletedBundles(ctx, threshold)
	if err != nil {
		return nil, fmt.Errorf("depleted bundle listing ended with error: %w", err)
	}

	return depleted, nil
}
