// Package adapter contains the outbound HTTP integrations: the paginated
// Microsoft Graph fetcher the sync engine pulls pages through, and the
// OAuth client used to link mailbox accounts.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-mail-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mocks.go -package=mock

// TokenSet is the raw result of an OAuth authorization-code exchange.
type TokenSet struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	IDToken      string `json:"id_token"`
}

// GraphAdapter fetches one page of a paginated Graph resource collection.
// Implementations own the retry policy; a returned error is terminal for
// the page (the retry budget is spent).
type GraphAdapter interface {
	// FetchPage performs one paginated GET against url — either a resource
	// root or a server-issued continuation/delta URL — attaching accessToken
	// as a bearer credential and the configured page-size hint. It retries
	// transient failures internally, honoring Retry-After on HTTP 429, and
	// gives up after the configured retry budget.
	//
	// FetchPage performs network I/O only; it never touches stored state.
	FetchPage(ctx context.Context, url, accessToken string) (models.PageResponse, error)
}

// OAuthAdapter handles the Microsoft identity platform leg of account
// linking.
type OAuthAdapter interface {
	// BuildAuthorizeURL returns the authorize URL the mailbox owner must
	// visit, carrying the given opaque state value.
	BuildAuthorizeURL(state string) string

	// ExchangeCode swaps an authorization code for the token set.
	ExchangeCode(ctx context.Context, code string) (TokenSet, error)

	// EmailFromIDToken extracts the email claim from an id_token without
	// signature verification; the token just came over TLS from the issuer.
	EmailFromIDToken(idToken string) (string, error)
}
