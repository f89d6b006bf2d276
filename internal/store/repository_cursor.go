package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-mail-sync/internal/logger"
	"github.com/MKhiriev/go-mail-sync/models"
)

// cursorRepository is the PostgreSQL-backed implementation of
// [CursorRepository] against the "sync_cursors" table.
type cursorRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCursorRepository constructs a [CursorRepository] backed by the provided
// database connection and logger.
func NewCursorRepository(db *DB, logger *logger.Logger) CursorRepository {
	logger.Debug().Msg("creating cursor repository")
	return &cursorRepository{
		db:     db,
		logger: logger,
	}
}

// Get implements [CursorRepository]. A pair without a stored cursor yields
// the zero value and a nil error; the empty DeltaLink is what sends the next
// sync back to the resource root.
func (r *cursorRepository) Get(ctx context.Context, userID string, resourceType models.ResourceType) (models.SyncCursor, error) {
	log := logger.FromContext(ctx)

	var cursor models.SyncCursor

	row := r.db.QueryRowContext(ctx, getCursor, userID, string(resourceType))
	if err := row.Scan(&cursor.UserID, &cursor.ResourceType, &cursor.DeltaLink, &cursor.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.SyncCursor{}, nil
		}

		log.Err(err).
			Str("func", "cursorRepository.Get").
			Str("user_id", userID).
			Str("resource_type", string(resourceType)).
			Msg("failed to read sync cursor")
		return models.SyncCursor{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return cursor, nil
}

// Set implements [CursorRepository] with an INSERT … ON CONFLICT upsert, so
// first checkpoint and every later advance go through the same statement.
// The upsert is idempotent, so a transient connection failure is retried once.
func (r *cursorRepository) Set(ctx context.Context, cursor models.SyncCursor) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, upsertCursor, cursor.UserID, string(cursor.ResourceType), cursor.DeltaLink)
	if err != nil && r.db.errorClassificator.Classify(err) == Retryable {
		log.Warn().
			Str("func", "cursorRepository.Set").
			Str("user_id", cursor.UserID).
			Msg("retrying sync cursor upsert after transient failure")
		_, err = r.db.ExecContext(ctx, upsertCursor, cursor.UserID, string(cursor.ResourceType), cursor.DeltaLink)
	}
	if err != nil {
		log.Err(err).
			Str("func", "cursorRepository.Set").
			Str("user_id", cursor.UserID).
			Str("resource_type", string(cursor.ResourceType)).
			Msg("failed to store sync cursor")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	log.Debug().
		Str("func", "cursorRepository.Set").
		Str("user_id", cursor.UserID).
		Str("resource_type", string(cursor.ResourceType)).
		Msg("sync cursor advanced")

	return nil
}
