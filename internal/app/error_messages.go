// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-mail-sync server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgNoUserIDProvided is returned when a handler requires a user ID but
	// none is present in the request body or URL.
	MsgNoUserIDProvided = "no user ID was given"

	// MsgAccountCreationFailed is returned when the account creation handler
	// encounters an error that prevents registering the mailbox owner.
	MsgAccountCreationFailed = "error creating account"

	// MsgAuthorizationDenied is returned when the OAuth provider redirects
	// back with an error instead of an authorization code.
	MsgAuthorizationDenied = "authorization was denied by the provider"

	// MsgCallbackFailed is returned when the OAuth callback handler cannot
	// exchange the authorization code or persist the issued tokens.
	MsgCallbackFailed = "error handling oauth callback"

	// MsgSyncFailed is returned when a synchronization run aborts before
	// reaching the end of the mailbox change feed.
	MsgSyncFailed = "error synchronizing resource"

	// MsgSynchronized is returned when a synchronization run completes and
	// the cursor has advanced past every fetched page.
	MsgSynchronized = "synchronized"

	// MsgFetchFailed is returned when stored mailbox records cannot be read
	// back from the container.
	MsgFetchFailed = "error fetching records"

	// MsgMailboxLinked is returned by the OAuth callback once tokens are
	// stored and the initial synchronization has been scheduled.
	MsgMailboxLinked = "mailbox linked"
)
