// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-doc-chat/internal/config"
	"github.com/MKhiriev/go-doc-chat/internal/logger"
	"github.com/MKhiriev/go-doc-chat/internal/service"
)

// SessionJanitor evicts document sessions that were idle for longer than the
// configured TTL. A sweep runs every SweepInterval.
type SessionJanitor struct {
	index    service.DocumentIndexService
	interval time.Duration
	ttl      time.Duration

	logger *logger.Logger
}

func NewSessionJanitor(index service.DocumentIndexService, cfg config.Server, logger *logger.Logger) *SessionJanitor {
	interval := cfg.SweepInterval
	if interval <= 0 {
		interval = config.DefaultSweepInterval
	}
	ttl := cfg.SessionTTL
	if ttl <= 0 {
		ttl = config.DefaultSessionTTL
	}

	return &SessionJanitor{
		index:    index,
		interval: interval,
		ttl:      ttl,
		logger:   logger,
	}
}

func (j *SessionJanitor) Run(ctx context.Context) {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	j.logger.Info().Dur("interval", j.interval).Dur("ttl", j.ttl).Msg("session janitor started")
	for {
		select {
		case <-ctx.Done():
			j.logger.Info().Msg("session janitor stopped")
			return
		case <-ticker.C:
			j.sweep(ctx)
		}
	}
}

func (j *SessionJanitor) sweep(ctx context.Context) {
	removed, err := j.index.EvictIdle(ctx, j.ttl)
	if err != nil {
		j.logger.Error().Err(err).Msg("idle session sweep failed")
		return
	}
	if removed > 0 {
		j.logger.Info().Int("removed", removed).Msg("idle sessions evicted")
	}
}
