package workers

import (
	"context"
	"time"

	"github.com/xmppfed/go-keyhub/internal/logger"
	"github.com/xmppfed/go-keyhub/internal/service"
)

const (
	defaultPreKeyCheckInterval = 15 * time.Minute
	defaultPreKeyThreshold     = 5
)

// PreKeyMonitor periodically scans for device bundles running low on
// single-use pre-keys and logs a warning per depleted bundle, so publishers
// can be nudged to upload fresh keys before initiators are turned away.
type PreKeyMonitor struct {
	keys      service.KeyDistributionService
	interval  time.Duration
	threshold int
	logger    *logger.Logger
}

func NewPreKeyMonitor(keys service.KeyDistributionService, interval time.Duration, threshold int, log *logger.Logger) *PreKeyMonitor {
	if interval <= 0 {
		interval = defaultPreKeyCheckInterval
	}
	if threshold <= 0 {
		threshold = defaultPreKeyThreshold
	}
	return &PreKeyMonitor{
		keys:      keys,
		interval:  interval,
		threshold: threshold,
		logger:    log,
	}
}

// Run checks once immediately, then on every tick until ctx is cancelled.
func (m *PreKeyMonitor) Run(ctx context.Context) {
	m.logger.Info().
		Dur("interval", m.interval).
		Int("threshold", m.threshold).
		Msg("pre-key monitor started")

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.check(ctx)

	for {
		select {
		case <-ctx.Done():
			m.logger.Info().Msg("pre-key monitor stopped")
			return
		case <-ticker.C:
			m.check(ctx)
		}
	}
}

func (m *PreKeyMonitor) check(ctx context.Context) {
	depleted, err := m.keys.ListDepletedBundles(ctx, m.threshold)
	if err != nil {
		m.logger.Err(err).Msg("depleted bundle scan failed")
		return
	}

	for _, bundle := range depleted {
		m.logger.Warn().
			Int64("publisher_id", bundle.PublisherID).
			Uint32("device_id", bundle.DeviceID).
			Int("remaining", bundle.Remaining).
			Msg("bundle is running low on pre-keys")
	}
}
