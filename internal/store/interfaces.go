package store

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-mail-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mocks.go -package=mock

// UserRepository persists linked mailbox accounts.
type UserRepository interface {
	// CreateUser inserts a new account and returns the stored row.
	// Returns [ErrEmailAlreadyExists] when the email is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the account registered under email, or
	// [ErrNoUserWasFound].
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID returns the account with the given UserID, or
	// [ErrNoUserWasFound].
	FindUserByID(ctx context.Context, userID string) (models.User, error)

	// ListUsers returns every registered account.
	ListUsers(ctx context.Context) ([]models.User, error)

	// UpdateTokens stores the encrypted OAuth credential pair for an
	// existing account. Returns [ErrNoUserWasFound] when the account does
	// not exist.
	UpdateTokens(ctx context.Context, userID, accessToken, refreshToken string) error
}

// ContainerRepository persists per-user container documents: one JSON array
// of records per (user, resource type) pair.
type ContainerRepository interface {
	// UpsertRecord merges one normalized record into the user's container
	// by identity. A record whose "_id" already exists in the container is
	// replaced in place; a new identity is appended. A missing container is
	// seeded with a single-record array.
	UpsertRecord(ctx context.Context, userID string, resourceType models.ResourceType, record models.Record) error

	// GetRecords returns the container's record array in stored order.
	// A missing container yields an empty slice, not an error.
	GetRecords(ctx context.Context, userID string, resourceType models.ResourceType) ([]json.RawMessage, error)
}

// CursorRepository persists sync continuation state per (user, resource
// type) pair.
type CursorRepository interface {
	// Get returns the stored cursor. When no cursor exists the zero value
	// is returned with a nil error; an empty DeltaLink tells the caller to
	// start from the resource root.
	Get(ctx context.Context, userID string, resourceType models.ResourceType) (models.SyncCursor, error)

	// Set stores or replaces the cursor for the (UserID, ResourceType)
	// pair of the given value.
	Set(ctx context.Context, cursor models.SyncCursor) error
}
