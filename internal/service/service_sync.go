// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-mail-sync/internal/adapter"
	"github.com/MKhiriev/go-mail-sync/internal/config"
	"github.com/MKhiriev/go-mail-sync/internal/crypto"
	"github.com/MKhiriev/go-mail-sync/internal/logger"
	"github.com/MKhiriev/go-mail-sync/internal/store"
	"github.com/MKhiriev/go-mail-sync/models"
)

// syncPhase is the position of a resource sync run inside its lifecycle.
// A run always moves forward: start → fetching → normalizing → merging →
// page complete, then either back to fetching (more pages), to done, or to
// failed from any step.
type syncPhase int

const (
	phaseStart syncPhase = iota
	phaseFetching
	phaseNormalizing
	phaseMerging
	phasePageComplete
	phaseDone
	phaseFailed
)

func (p syncPhase) String() string {
	switch p {
	case phaseStart:
		return "start"
	case phaseFetching:
		return "fetching"
	case phaseNormalizing:
		return "normalizing"
	case phaseMerging:
		return "merging"
	case phasePageComplete:
		return "page_complete"
	case phaseDone:
		return "done"
	case phaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// resourceSpec binds a resource type to its traversal root and the
// normalizer producing its canonical record shape.
type resourceSpec struct {
	rootURL   string
	normalize normalizer
}

// syncService is the concrete implementation of [SyncService]. One instance
// serves all accounts; per-run state lives on the stack of each call.
type syncService struct {
	users      store.UserRepository
	containers store.ContainerRepository
	cursors    store.CursorRepository
	graph      adapter.GraphAdapter
	cipher     crypto.TokenCipher

	resources map[models.ResourceType]resourceSpec

	logger *logger.Logger
}

// NewSyncService constructs a [SyncService] wired to the given repositories,
// fetch adapter, and token cipher. The resource table is built from the sync
// configuration's root URLs.
func NewSyncService(repos *store.Repositories, graph adapter.GraphAdapter, cipher crypto.TokenCipher, cfg config.Sync, log *logger.Logger) SyncService {
	return &syncService{
		users:      repos.UserRepository,
		containers: repos.ContainerRepository,
		cursors:    repos.CursorRepository,
		graph:      graph,
		cipher:     cipher,
		resources: map[models.ResourceType]resourceSpec{
			models.ResourceMessages: {rootURL: cfg.MessagesURL, normalize: normalizeMessage},
			models.ResourceFolders:  {rootURL: cfg.FoldersURL, normalize: normalizeFolder},
		},
		logger: log,
	}
}

// SyncUser implements [SyncService]. Resources are synced sequentially; the
// first failing resource aborts the remaining ones for this account.
func (s *syncService) SyncUser(ctx context.Context, userID string) error {
	user, accessToken, err := s.loadCredentials(ctx, userID)
	if err != nil {
		return err
	}

	for _, resourceType := range models.AllResourceTypes {
		if syncErr := s.runResourceSync(ctx, user, accessToken, resourceType); syncErr != nil {
			return fmt.Errorf("sync %s for user %s: %w", resourceType, userID, syncErr)
		}
	}

	return nil
}

// SyncResource implements [SyncService].
func (s *syncService) SyncResource(ctx context.Context, userID string, resourceType models.ResourceType) error {
	user, accessToken, err := s.loadCredentials(ctx, userID)
	if err != nil {
		return err
	}

	if syncErr := s.runResourceSync(ctx, user, accessToken, resourceType); syncErr != nil {
		return fmt.Errorf("sync %s for user %s: %w", resourceType, userID, syncErr)
	}

	return nil
}

// RunAll implements [SyncService]. Accounts that never completed the OAuth
// flow are skipped; every attempted (account, resource) pair lands in the
// report whether it succeeded or not, and no failure stops the pass.
func (s *syncService) RunAll(ctx context.Context) (models.SyncReport, error) {
	log := logger.FromContext(ctx)

	report := models.SyncReport{StartedAt: time.Now()}

	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return models.SyncReport{}, fmt.Errorf("list users: %w", err)
	}

	for _, user := range users {
		if user.AccessToken == "" {
			log.Debug().Str("user_id", user.UserID).Msg("skipping unlinked account")
			continue
		}

		accessToken, decryptErr := s.cipher.Decrypt(user.AccessToken)
		if decryptErr != nil {
			log.Err(decryptErr).Str("user_id", user.UserID).Msg("failed to decrypt access token")
			for _, resourceType := range models.AllResourceTypes {
				report.Add(models.SyncOutcome{
					UserID:       user.UserID,
					ResourceType: resourceType,
					Success:      false,
					Error:        decryptErr.Error(),
				})
			}
			continue
		}

		for _, resourceType := range models.AllResourceTypes {
			outcome := models.SyncOutcome{UserID: user.UserID, ResourceType: resourceType, Success: true}

			if syncErr := s.runResourceSync(ctx, user, accessToken, resourceType); syncErr != nil {
				log.Err(syncErr).
					Str("user_id", user.UserID).
					Str("resource_type", string(resourceType)).
					Msg("resource sync failed")
				outcome.Success = false
				outcome.Error = syncErr.Error()
			}

			report.Add(outcome)
		}
	}

	report.FinishedAt = time.Now()

	log.Info().
		Int("succeeded", report.Succeeded).
		Int("failed", report.Failed).
		Dur("elapsed", report.FinishedAt.Sub(report.StartedAt)).
		Msg("sync pass finished")

	return report, nil
}

// loadCredentials fetches the account and decrypts its access token.
func (s *syncService) loadCredentials(ctx context.Context, userID string) (models.User, string, error) {
	user, err := s.users.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, "", err
	}

	if user.AccessToken == "" {
		return models.User{}, "", ErrAccountNotLinked
	}

	accessToken, err := s.cipher.Decrypt(user.AccessToken)
	if err != nil {
		return models.User{}, "", fmt.Errorf("decrypt access token: %w", err)
	}

	return user, accessToken, nil
}

// runResourceSync walks one resource traversal for one account.
//
// The run starts from the stored delta link when one exists and from the
// resource root otherwise. Each page is fetched, normalized, and merged
// record by record; only after the whole page is merged may the cursor
// advance to a delta link the page carried. Any failure ends the run with
// the cursor exactly where the last fully merged checkpoint left it, so the
// next run replays from there.
func (s *syncService) runResourceSync(ctx context.Context, user models.User, accessToken string, resourceType models.ResourceType) error {
	log := logger.FromContext(ctx)

	spec, known := s.resources[resourceType]
	if !known {
		return fmt.Errorf("%w: %q", ErrUnknownResource, resourceType)
	}

	cursor, err := s.cursors.Get(ctx, user.UserID, resourceType)
	if err != nil {
		return err
	}

	var (
		phase   = phaseStart
		url     string
		page    models.PageResponse
		records []models.Record
		pages   int
		merged  int
		runErr  error
	)

	for {
		if ctxErr := ctx.Err(); ctxErr != nil && phase != phaseFailed && phase != phaseDone {
			phase, runErr = phaseFailed, ctxErr
		}

		switch phase {
		case phaseStart:
			url = cursor.DeltaLink
			if url == "" {
				url = spec.rootURL
			}
			log.Debug().
				Str("user_id", user.UserID).
				Str("resource_type", string(resourceType)).
				Bool("delta_resume", cursor.DeltaLink != "").
				Msg("starting resource sync")
			phase = phaseFetching

		case phaseFetching:
			page, runErr = s.graph.FetchPage(ctx, url, accessToken)
			if runErr != nil {
				phase = phaseFailed
				continue
			}
			phase = phaseNormalizing

		case phaseNormalizing:
			records = records[:0]
			for _, raw := range page.Items {
				record, normErr := spec.normalize(raw)
				if normErr != nil {
					phase, runErr = phaseFailed, normErr
					break
				}
				records = append(records, record)
			}
			if phase != phaseFailed {
				phase = phaseMerging
			}

		case phaseMerging:
			for _, record := range records {
				if mergeErr := s.containers.UpsertRecord(ctx, user.UserID, resourceType, record); mergeErr != nil {
					phase, runErr = phaseFailed, mergeErr
					break
				}
				merged++
			}
			if phase != phaseFailed {
				phase = phasePageComplete
			}

		case phasePageComplete:
			pages++
			if page.DeltaLink != "" {
				if setErr := s.cursors.Set(ctx, models.SyncCursor{
					UserID:       user.UserID,
					ResourceType: resourceType,
					DeltaLink:    page.DeltaLink,
				}); setErr != nil {
					phase, runErr = phaseFailed, setErr
					continue
				}
			}
			if page.NextLink != "" {
				url = page.NextLink
				phase = phaseFetching
			} else {
				phase = phaseDone
			}

		case phaseDone:
			log.Info().
				Str("user_id", user.UserID).
				Str("resource_type", string(resourceType)).
				Int("pages", pages).
				Int("records_merged", merged).
				Msg("resource sync complete")
			return nil

		case phaseFailed:
			log.Err(runErr).
				Str("user_id", user.UserID).
				Str("resource_type", string(resourceType)).
				Str("phase", phase.String()).
				Int("pages", pages).
				Msg("resource sync failed")
			return runErr
		}
	}
}
