package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-mail-sync/models"
)

const (
	createUser = `INSERT INTO users (user_id, email)
    VALUES ($1, $2)
    RETURNING user_id, email, access_token, refresh_token, created_at;`

	findUserByEmail = `SELECT user_id, email, access_token, refresh_token, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, email, access_token, refresh_token, created_at
    FROM users
    WHERE user_id = $1;`

	listUsers = `SELECT user_id, email, access_token, refresh_token, created_at
    FROM users
    ORDER BY created_at;`

	updateUserTokens = `UPDATE users
    SET access_token = $2, refresh_token = $3
    WHERE user_id = $1;`

	seedContainer = `INSERT INTO mail_containers (user_id, resource_type, records, updated_at)
    VALUES ($1, $2, jsonb_build_array($3::jsonb), NOW())
    ON CONFLICT (user_id, resource_type) DO NOTHING;`

	updateContainerRecords = `UPDATE mail_containers
    SET records = $3, updated_at = NOW()
    WHERE user_id = $1 AND resource_type = $2;`

	getCursor = `SELECT user_id, resource_type, delta_link, updated_at
    FROM sync_cursors
    WHERE user_id = $1 AND resource_type = $2;`

	upsertCursor = `INSERT INTO sync_cursors (user_id, resource_type, delta_link, updated_at)
    VALUES ($1, $2, $3, NOW())
    ON CONFLICT (user_id, resource_type) DO UPDATE
    SET delta_link = EXCLUDED.delta_link, updated_at = NOW();`
)

// buildSelectRecordsQuery builds the SELECT that reads a container's record
// array for one (user, resource type) pair. When forUpdate is true the row
// is locked so a concurrent merge of the same container waits its turn.
func buildSelectRecordsQuery(_ context.Context, userID string, resourceType models.ResourceType, forUpdate bool) (string, []any, error) {
	builder := sq.
		Select("records").
		From("mail_containers").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"resource_type": string(resourceType)}).
		PlaceholderFormat(sq.Dollar)

	if forUpdate {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
