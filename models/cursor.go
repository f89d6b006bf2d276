package models

import "time"

// SyncCursor is the persisted continuation state of one (user, resource)
// pair: the delta link returned by the server at the last fully merged
// checkpoint page. At most one cursor exists per pair; a missing cursor
// means the next sync starts a full traversal from the resource root.
type SyncCursor struct {
	UserID       string       `json:"user_id"`
	ResourceType ResourceType `json:"resource_type"`

	// DeltaLink is the opaque server-issued URL to resume from.
	DeltaLink string `json:"delta_link"`

	// UpdatedAt is when the cursor was last advanced.
	UpdatedAt time.Time `json:"updated_at"`
}
