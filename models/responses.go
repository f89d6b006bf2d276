package models

import "encoding/json"

// AccountResponse is returned by the account creation endpoint. OAuthURL is
// the Microsoft authorize URL the mailbox owner must visit to link the
// account; until the callback completes no credential is stored.
type AccountResponse struct {
	Email    string `json:"email"`
	UserID   string `json:"userId"`
	OAuthURL string `json:"oauthUrl"`
}

// CallbackResponse is returned by the OAuth callback endpoint after a
// successful code exchange and initial sync kick-off.
type CallbackResponse struct {
	Message string `json:"message"`
	Email   string `json:"email"`
	UserID  string `json:"userId"`
}

// PagedRecords is one page of a user's synced container records, sliced
// server-side from the container document's array.
type PagedRecords struct {
	// Items holds the records of the requested page in insertion order.
	Items []json.RawMessage `json:"items"`

	// Total is the number of records in the whole container.
	Total int `json:"total"`

	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
}

// SyncRequest is the body of the manual sync endpoints, naming the account
// whose stored credential should drive the run.
type SyncRequest struct {
	UserID string `json:"userId"`
}
