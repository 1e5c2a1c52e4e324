// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The go-keyhub Authors

package workers

import (
	"context"
	"time"

	"github.com/xmppfed/go-keyhub/internal/logger"
	"github.com/xmppfed/go-keyhub/internal/service"
)

const defaultSweepInterval = time.Hour

// ExpirySweeper periodically removes external service entries whose expiry
// timestamp has passed, so stale relay announcements stop being served.
type ExpirySweeper struct {
	discovery service.DiscoveryService
	interval  time.Duration
	logger    *logger.Logger
}

func NewExpirySweeper(discovery service.DiscoveryService, interval time.Duration, log *logger.Logger) *ExpirySweeper {
	if interval <= 0 {
		interval = defaultSweepInterval
	}
	return &ExpirySweeper{
		discovery: discovery,
		interval:  interval,
		logger:    log,
	}
}

// Run sweeps once immediately, then on every tick until ctx is cancelled.
func (s *ExpirySweeper) Run(ctx context.Context) {
	s.logger.Info().Dur("interval", s.interval).Msg("expiry sweeper started")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.sweep(ctx)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("expiry sweeper stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *ExpirySweeper) sweep(ctx context.Context) {
	removed, err := s.discovery.DeleteExpiredServices(ctx)
	if err != nil {
		s.logger.Err(err).Msg("expired service sweep failed")
		return
	}

	if removed > 0 {
		s.logger.Info().Int64("removed", removed).Msg("expired services removed")
	}
}
