package service

import (
	"context"

	"github.com/MKhiriev/go-mail-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mocks.go -package=mock

type SyncService interface {
	// SyncUser runs a full incremental sync of every resource type for one
	// account.
	SyncUser(ctx context.Context, userID string) error

	// SyncResource runs a full incremental sync of a single resource type
	// for one account: page-by-page fetch, normalize, merge, with cursor
	// checkpoints persisted along the way.
	SyncResource(ctx context.Context, userID string, resourceType models.ResourceType) error

	// RunAll drives a complete sync pass over every registered account.
	// A failing account never stops the pass; each (account, resource)
	// outcome is recorded in the returned report.
	RunAll(ctx context.Context) (models.SyncReport, error)
}

type UserService interface {
	// CreateAccount registers a new mailbox account and returns the OAuth
	// authorize URL the owner must visit to link it.
	CreateAccount(ctx context.Context, email string) (models.AccountResponse, error)
}

type AuthService interface {
	// HandleOAuthCallback exchanges the authorization code for tokens,
	// resolves the mailbox identity from the ID token, stores the encrypted
	// credential pair, and kicks off the account's first sync.
	HandleOAuthCallback(ctx context.Context, code string) (models.CallbackResponse, error)
}

type MailService interface {
	// FetchRecords returns one page of a user's stored container records.
	// Page and pageSize are clamped to sane minimums before use.
	FetchRecords(ctx context.Context, userID string, resourceType models.ResourceType, page, pageSize int) (models.PagedRecords, error)
}
