package models

import "encoding/json"

// PageResponse is one batch of items returned by a single paginated Graph
// fetch, together with the continuation tokens the server attached to it.
//
// NextLink, when non-empty, is the URL of the following page and keeps the
// fetch loop running. DeltaLink, when non-empty, marks a resumable
// incremental checkpoint; it usually appears on the final page of a
// traversal but the engine persists it whenever present. A page may carry
// both tokens or neither.
type PageResponse struct {
	// Items are the raw resource records of this page, unparsed. The
	// orchestrator normalizes them into the resource's canonical shape.
	Items []json.RawMessage `json:"value"`

	// NextLink is the @odata.nextLink continuation URL, if any.
	NextLink string `json:"@odata.nextLink"`

	// DeltaLink is the @odata.deltaLink checkpoint URL, if any.
	DeltaLink string `json:"@odata.deltaLink"`
}

// Record is one normalized resource item ready to be merged into a user's
// container document. Doc is the canonical JSON form ([Message] or [Folder])
// and always contains the "_id" field that ID duplicates for lookups.
type Record struct {
	ID  string
	Doc json.RawMessage
}
