package service

import (
	"context"
	"fmt"
	"time"

	"github.com/xmppfed/go-keyhub/internal/extdisco"
	"github.com/xmppfed/go-keyhub/internal/logger"
	"github.com/xmppfed/go-keyhub/internal/store"
)

// discoveryService is the concrete implementation of DiscoveryService.
type discoveryService struct {
	serviceRepository store.ServiceRepository
	logger            *logger.Logger
}

// NewDiscoveryService constructs a DiscoveryService over the given
// repository.
func NewDiscoveryService(serviceRepository store.ServiceRepository, logger *logger.Logger) DiscoveryService {
	return &discoveryService{
		serviceRepository: serviceRepository,
		logger:            logger,
	}
}

// Services returns the publisher's current entries as a services document in
// insertion order. A publisher with no entries gets an empty document. A
// non-empty serviceType keeps only entries of that type.
func (s *discoveryService) Services(ctx context.Context, publisherID int64, serviceType string) (extdisco.ServicesIQ, error) {
	log := logger.FromContext(ctx)

	records, err := s.serviceRepository.GetServices(ctx, publisherID)
	if err != nil {
		log.Err(err).Int64("publisher_id", publisherID).Msg("service listing ended with error")
		return extdisco.ServicesIQ{}, fmt.Errorf("service listing ended with error: %w", err)
	}

	var iq extdisco.ServicesIQ
	for _, record := range records {
		if serviceType != "" && record.Type != serviceType {
			continue
		}
		iq.AddService(recordToService(record))
	}

	return iq, nil
}

// Apply executes the actions carried by the document, in document order. An
// entry marked delete removes the matching stored entry, modify updates it,
// and everything else (including entries without an action attribute) is
// added as new. Entries are matched by host and type, plus port when the
// entry carries one.
func (s *discoveryService) Apply(ctx context.Context, publisherID int64, iq extdisco.ServicesIQ) error {
	log := logger.FromContext(ctx)

	for i, svc := range iq.Services {
		var err error

		switch {
		case svc.Action != nil && *svc.Action == extdisco.ActionDelete:
			err = s.serviceRepository.DeleteService(ctx, publisherID, svc.Host, svc.Type, svc.Port)
		case svc.Action != nil && *svc.Action == extdisco.ActionModify:
			err = s.serviceRepository.ModifyService(ctx, serviceToRecord(publisherID, svc))
		default:
			_, err = s.serviceRepository.AddService(ctx, serviceToRecord(publisherID, svc))
		}

		if err != nil {
			log.Err(err).
				Int64("publisher_id", publisherID).
				Str("host", svc.Host).
				Str("type", svc.Type).
				Msg("service change ended with error")
			return fmt.Errorf("service change at index %d ended with error: %w", i, err)
		}
	}

	return nil
}

// DeleteExpiredServices removes all entries past their expiry timestamp.
func (s *discoveryService) DeleteExpiredServices(ctx context.Context) (int64, error) {
	removed, err := s.serviceRepository.DeleteExpiredServices(ctx, time.Now().UTC())
	if err != nil {
		s.logger.Err(err).Str("func", "DeleteExpiredServices").Msg("expired service sweep ended with error")
		return 0, fmt.Errorf("expired service sweep ended with error: %w", err)
	}

	return removed, nil
}
