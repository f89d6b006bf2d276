package models

// Folder is the normalized form of one Graph mail folder record as stored
// inside a user's "folders" container document.
//
// As with [Message], ID is the server-assigned Graph identifier and acts as
// the identity key for container upserts.
type Folder struct {
	ID               string `json:"_id"`
	DisplayName      string `json:"displayName"`
	ParentFolderID   string `json:"parentFolderId"`
	ChildFolderCount int    `json:"childFolderCount"`
	TotalItemCount   int    `json:"totalItemCount"`
	UnreadItemCount  int    `json:"unreadItemCount"`
	WellKnownName    string `json:"wellKnownName,omitempty"`
}
