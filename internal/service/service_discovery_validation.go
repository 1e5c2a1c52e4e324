package service

import (
	"context"
	"fmt"

	"github.com/xmppfed/go-keyhub/internal/extdisco"
	"github.com/xmppfed/go-keyhub/internal/logger"
	"github.com/xmppfed/go-keyhub/internal/validators"
)

// discoveryValidationService is a validating decorator for DiscoveryService.
// Every entry of an incoming document is checked before any of them is
// applied, so a rejected document leaves the stored entries untouched.
type discoveryValidationService struct {
	inner     DiscoveryService
	validator validators.Validator
	logger    *logger.Logger
}

// NewDiscoveryValidationService constructs the decorator. Call Wrap to
// attach the inner service before use.
func NewDiscoveryValidationService(validator validators.Validator, logger *logger.Logger) DiscoveryServiceWrapper {
	return &discoveryValidationService{
		validator: validator,
		logger:    logger,
	}
}

// Wrap attaches the service the decorator delegates to and returns the
// decorated service.
func (v *discoveryValidationService) Wrap(inner DiscoveryService) DiscoveryService {
	v.inner = inner
	return v
}

func (v *discoveryValidationService) Services(ctx context.Context, publisherID int64, serviceType string) (extdisco.ServicesIQ, error) {
	return v.inner.Services(ctx, publisherID, serviceType)
}

func (v *discoveryValidationService) Apply(ctx context.Context, publisherID int64, iq extdisco.ServicesIQ) error {
	for i, svc := range iq.Services {
		// Deletions only need enough attributes to identify the entry, which
		// host and type validation already covers.
		if err := v.validator.Validate(ctx, svc); err != nil {
			logger.FromContext(ctx).Err(err).Int64("publisher_id", publisherID).Str("host", svc.Host).Msg("service entry rejected")
			return fmt.Errorf("%w: entry at index %d: %w", ErrValidationFailed, i, err)
		}
	}

	return v.inner.Apply(ctx, publisherID, iq)
}

func (v *discoveryValidationService) DeleteExpiredServices(ctx context.Context) (int64, error) {
	return v.inner.DeleteExpiredServices(ctx)
}
