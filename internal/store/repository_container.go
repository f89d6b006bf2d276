// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-mail-sync/internal/logger"
	"github.com/MKhiriev/go-mail-sync/models"
)

// containerRepository is the PostgreSQL-backed implementation of
// [ContainerRepository]. A container is one row of the "mail_containers"
// table holding a JSONB array of normalized records; the array is the unit
// of storage and every merge rewrites it under a row lock.
type containerRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewContainerRepository constructs a [ContainerRepository] backed by the
// provided database connection and logger.
func NewContainerRepository(db *DB, logger *logger.Logger) ContainerRepository {
	logger.Debug().Msg("creating container repository")
	return &containerRepository{
		db:     db,
		logger: logger,
	}
}

// recordIdentity probes only the identity field of a stored record.
type recordIdentity struct {
	ID string `json:"_id"`
}

// UpsertRecord implements [ContainerRepository].
//
// The merge runs in a transaction. A missing container is seeded with a
// single-record array via INSERT … ON CONFLICT DO NOTHING; when the
// container already exists the row is read under FOR UPDATE, the record is
// replaced in place (matching "_id") or appended, and the whole array is
// written back. Stored order is preserved and a replace never moves the
// record.
//
// Any failure rolls the transaction back and is wrapped in [ErrMergeFailed]
// together with the record identity, leaving the container untouched.
func (r *containerRepository) UpsertRecord(ctx context.Context, userID string, resourceType models.ResourceType, record models.Record) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "containerRepository.UpsertRecord").
			Str("user_id", userID).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: record %q: %w: %w", ErrMergeFailed, record.ID, ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, seedContainer, userID, string(resourceType), []byte(record.Doc))
	if err != nil {
		log.Err(err).
			Str("func", "containerRepository.UpsertRecord").
			Str("user_id", userID).
			Str("record_id", record.ID).
			Msg("failed to seed container")
		return fmt.Errorf("%w: record %q: %w: %w", ErrMergeFailed, record.ID, ErrExecutingQuery, err)
	}

	if seeded, _ := result.RowsAffected(); seeded == 0 {
		// Container exists: merge into the stored array under a row lock.
		if mergeErr := r.mergeIntoExisting(ctx, tx, userID, resourceType, record); mergeErr != nil {
			return fmt.Errorf("%w: record %q: %w", ErrMergeFailed, record.ID, mergeErr)
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "containerRepository.UpsertRecord").
			Str("user_id", userID).
			Str("record_id", record.ID).
			Msg("failed to commit merge transaction")
		return fmt.Errorf("%w: record %q: %w: %w", ErrMergeFailed, record.ID, ErrCommitingTransaction, commitErr)
	}

	return nil
}

func (r *containerRepository) mergeIntoExisting(ctx context.Context, tx *sql.Tx, userID string, resourceType models.ResourceType, record models.Record) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectRecordsQuery(ctx, userID, resourceType, true)
	if err != nil {
		return err
	}

	var stored []byte
	if scanErr := tx.QueryRowContext(ctx, query, args...).Scan(&stored); scanErr != nil {
		log.Err(scanErr).
			Str("func", "containerRepository.mergeIntoExisting").
			Str("user_id", userID).
			Msg("failed to read container for merge")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, scanErr)
	}

	var records []json.RawMessage
	if decodeErr := json.Unmarshal(stored, &records); decodeErr != nil {
		log.Err(decodeErr).
			Str("func", "containerRepository.mergeIntoExisting").
			Str("user_id", userID).
			Msg("stored container is not a JSON array")
		return fmt.Errorf("%w: %w", ErrMalformedContainer, decodeErr)
	}

	replaced := false
	for idx, existing := range records {
		var identity recordIdentity
		if probeErr := json.Unmarshal(existing, &identity); probeErr != nil {
			// An element without a readable identity can never match.
			continue
		}

		if identity.ID == record.ID {
			records[idx] = record.Doc
			replaced = true
			break
		}
	}

	if !replaced {
		records = append(records, record.Doc)
	}

	merged, encodeErr := json.Marshal(records)
	if encodeErr != nil {
		return fmt.Errorf("%w: %w", ErrMalformedContainer, encodeErr)
	}

	if _, execErr := tx.ExecContext(ctx, updateContainerRecords, userID, string(resourceType), merged); execErr != nil {
		log.Err(execErr).
			Str("func", "containerRepository.mergeIntoExisting").
			Str("user_id", userID).
			Str("record_id", record.ID).
			Msg("failed to write merged container")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
	}

	log.Debug().
		Str("func", "containerRepository.mergeIntoExisting").
		Str("user_id", userID).
		Str("record_id", record.ID).
		Bool("replaced", replaced).
		Int("container_size", len(records)).
		Msg("merged record into container")

	return nil
}

// GetRecords implements [ContainerRepository]. A missing container is not an
// error: the caller receives an empty slice, the same view an empty mailbox
// would produce.
func (r *containerRepository) GetRecords(ctx context.Context, userID string, resourceType models.ResourceType) ([]json.RawMessage, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectRecordsQuery(ctx, userID, resourceType, false)
	if err != nil {
		return nil, err
	}

	var stored []byte
	if scanErr := r.db.QueryRowContext(ctx, query, args...).Scan(&stored); scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return []json.RawMessage{}, nil
		}

		log.Err(scanErr).
			Str("func", "containerRepository.GetRecords").
			Str("user_id", userID).
			Msg("failed to read container")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, scanErr)
	}

	var records []json.RawMessage
	if decodeErr := json.Unmarshal(stored, &records); decodeErr != nil {
		log.Err(decodeErr).
			Str("func", "containerRepository.GetRecords").
			Str("user_id", userID).
			Msg("stored container is not a JSON array")
		return nil, fmt.Errorf("%w: %w", ErrMalformedContainer, decodeErr)
	}

	return records, nil
}
