// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-mail-sync/internal/config"
	"github.com/MKhiriev/go-mail-sync/internal/logger"
	"github.com/MKhiriev/go-mail-sync/models"
)

// graphClient is the resty-backed implementation of [GraphAdapter].
//
// One client serves all users: the bearer credential is attached per call,
// never stored, and no retry state survives a FetchPage invocation — each
// page fetch starts with a fresh attempt counter.
type graphClient struct {
	client *resty.Client

	pageSize          int
	maxRetries        int
	retryAfterDefault time.Duration

	logger *logger.Logger
}

// NewGraphClient constructs a [GraphAdapter] with the sync tuning knobs from
// cfg: the advisory page size, the per-page retry budget, the fallback wait
// for unlabelled 429 responses, and the per-attempt timeout.
func NewGraphClient(cfg config.Sync, log *logger.Logger) GraphAdapter {
	cli := resty.New().SetTimeout(cfg.FetchTimeout)

	return &graphClient{
		client:            cli,
		pageSize:          cfg.PageSize,
		maxRetries:        cfg.MaxRetries,
		retryAfterDefault: cfg.RetryAfterDefault,
		logger:            log,
	}
}

// FetchPage implements [GraphAdapter].
//
// Every attempt — transport failure, non-2xx status, or rate limit — spends
// one unit of the retry budget. HTTP 429 additionally sleeps the
// server-advised Retry-After duration (default when absent) before the next
// attempt; other failures retry immediately. Once the budget is spent the
// last error is wrapped in [ErrMaxRetriesReached].
func (g *graphClient) FetchPage(ctx context.Context, url, accessToken string) (models.PageResponse, error) {
	log := logger.FromContext(ctx)

	var lastErr error

	for attempts := 0; attempts < g.maxRetries; attempts++ {
		resp, err := g.client.R().
			SetContext(ctx).
			SetHeader("Authorization", "Bearer "+accessToken).
			SetQueryParam("$top", strconv.Itoa(g.pageSize)).
			Get(url)

		switch {
		case err != nil:
			lastErr = fmt.Errorf("fetch request: %w", err)
			log.Warn().Err(err).Str("url", url).Int("attempt", attempts+1).
				Msg("fetch attempt failed")

			// A context error will not get better with retries.
			if ctx.Err() != nil {
				return models.PageResponse{}, fmt.Errorf("%w: %w", ErrMaxRetriesReached, lastErr)
			}

		case resp.StatusCode() == http.StatusTooManyRequests:
			wait := retryAfter(resp, g.retryAfterDefault)
			lastErr = fmt.Errorf("http %d: rate limited", resp.StatusCode())
			log.Warn().Str("url", url).Int("attempt", attempts+1).Dur("retry_after", wait).
				Msg("rate limited, backing off")

			if attempts+1 < g.maxRetries {
				select {
				case <-ctx.Done():
					return models.PageResponse{}, fmt.Errorf("%w: %w", ErrMaxRetriesReached, ctx.Err())
				case <-time.After(wait):
				}
			}

		case resp.IsError():
			lastErr = httpError(resp)
			log.Warn().Str("url", url).Int("attempt", attempts+1).Int("status", resp.StatusCode()).
				Msg("fetch attempt returned error status")

		default:
			var page models.PageResponse
			if decodeErr := json.Unmarshal(resp.Body(), &page); decodeErr != nil {
				return models.PageResponse{}, fmt.Errorf("decode page response: %w", decodeErr)
			}
			return page, nil
		}
	}

	return models.PageResponse{}, fmt.Errorf("%w: %w", ErrMaxRetriesReached, lastErr)
}

// retryAfter reads the advisory Retry-After header (whole seconds) from a
// 429 response, falling back to def when the header is absent or unusable.
func retryAfter(resp *resty.Response, def time.Duration) time.Duration {
	header := resp.Header().Get("Retry-After")
	if header == "" {
		return def
	}

	seconds, err := strconv.Atoi(header)
	if err != nil || seconds < 0 {
		return def
	}

	return time.Duration(seconds) * time.Second
}

func httpError(resp *resty.Response) error {
	body := string(resp.Body())
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
}
