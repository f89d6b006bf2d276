// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-mail-sync/internal/config"
	"github.com/MKhiriev/go-mail-sync/internal/logger"
	"github.com/MKhiriev/go-mail-sync/internal/service"
)

// syncPoller periodically drives a full synchronization cycle over every
// linked account. One cycle is executed immediately on startup, then the
// poller ticks at the configured interval until the stop channel is closed.
type syncPoller struct {
	sync     service.SyncService
	interval time.Duration
	stop     chan struct{}

	logger *logger.Logger
}

func NewSyncPoller(sync service.SyncService, cfg config.Workers, logger *logger.Logger) *syncPoller {
	return &syncPoller{
		sync:     sync,
		interval: cfg.PollInterval,
		stop:     make(chan struct{}),
		logger:   logger,
	}
}

func (p *syncPoller) Run() {
	go p.loop()
}

// Stop terminates the polling loop. A cycle already in flight finishes on
// its own.
func (p *syncPoller) Stop() {
	close(p.stop)
}

func (p *syncPoller) loop() {
	p.logger.Info().Dur("interval", p.interval).Msg("sync poller started")

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.runCycle()

	for {
		select {
		case <-p.stop:
			p.logger.Info().Msg("sync poller stopped")
			return
		case <-ticker.C:
			p.runCycle()
		}
	}
}

func (p *syncPoller) runCycle() {
	report, err := p.sync.RunAll(context.Background())
	if err != nil {
		p.logger.Err(err).Str("func", "*syncPoller.runCycle").Msg("sync cycle failed")
		return
	}

	p.logger.Info().
		Int("succeeded", report.Succeeded).
		Int("failed", report.Failed).
		Dur("duration", report.FinishedAt.Sub(report.StartedAt)).
		Msg("sync cycle finished")
}
