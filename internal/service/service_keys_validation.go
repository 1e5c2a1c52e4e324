package service

import (
	"context"
	"fmt"

	"github.com/xmppfed/go-keyhub/internal/logger"
	"github.com/xmppfed/go-keyhub/internal/omemo"
	"github.com/xmppfed/go-keyhub/internal/store"
	"github.com/xmppfed/go-keyhub/internal/validators"
)

// keyDistributionValidationService is a validating decorator for
// KeyDistributionService. Write operations are checked against the publish
// rules before they reach the inner service; read operations pass through.
type keyDistributionValidationService struct {
	inner     KeyDistributionService
	validator validators.Validator
	logger    *logger.Logger
}

// NewKeyDistributionValidationService constructs the decorator. Call Wrap to
// attach the inner service before use.
func NewKeyDistributionValidationService(validator validators.Validator, logger *logger.Logger) KeyDistributionServiceWrapper {
	return &keyDistributionValidationService{
		validator: validator,
		logger:    logger,
	}
}

// Wrap attaches the service the decorator delegates to and returns the
// decorated service.
func (v *keyDistributionValidationService) Wrap(inner KeyDistributionService) KeyDistributionService {
	v.inner = inner
	return v
}

func (v *keyDistributionValidationService) PublishDeviceList(ctx context.Context, publisherID int64, list omemo.DeviceList) error {
	if err := v.validator.Validate(ctx, list); err != nil {
		logger.FromContext(ctx).Err(err).Int64("publisher_id", publisherID).Msg("device list rejected")
		return fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	return v.inner.PublishDeviceList(ctx, publisherID, list)
}

func (v *keyDistributionValidationService) DeviceList(ctx context.Context, publisherID int64) (omemo.DeviceList, error) {
	return v.inner.DeviceList(ctx, publisherID)
}

func (v *keyDistributionValidationService) PublishBundle(ctx context.Context, publisherID int64, deviceID uint32, bundle omemo.DeviceBundle) error {
	if err := v.validator.Validate(ctx, bundle); err != nil {
		logger.FromContext(ctx).Err(err).Int64("publisher_id", publisherID).Uint32("device_id", deviceID).Msg("bundle rejected")
		return fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	return v.inner.PublishBundle(ctx, publisherID, deviceID, bundle)
}

func (v *keyDistributionValidationService) Bundle(ctx context.Context, publisherID int64, deviceID uint32) (omemo.DeviceBundle, error) {
	return v.inner.Bundle(ctx, publisherID, deviceID)
}

func (v *keyDistributionValidationService) TakePreKey(ctx context.Context, publisherID int64, deviceID uint32) (uint32, []byte, error) {
	return v.inner.TakePreKey(ctx, publisherID, deviceID)
}

func (v *keyDistributionValidationService) PreKeyCount(ctx context.Context, publisherID int64, deviceID uint32) (int, error) {
	return v.inner.PreKeyCount(ctx, publisherID, deviceID)
}

func (v *keyDistributionValidationService) ListDepletedBundles(ctx context.Context, threshold int) ([]store.DepletedBundle, error) {
	return v.inner.ListDepletedBundles(ctx, threshold)
}
