package models

// ResourceType identifies one of the mailbox resource collections the sync
// engine knows how to traverse. Each type has its own Graph root URL, its own
// normalized record shape, and its own container document per user.
type ResourceType string

const (
	// ResourceMessages is the user's message collection
	// (https://graph.microsoft.com/v1.0/me/messages).
	ResourceMessages ResourceType = "messages"

	// ResourceFolders is the user's mail folder collection
	// (https://graph.microsoft.com/v1.0/me/mailFolders).
	ResourceFolders ResourceType = "folders"
)

// AllResourceTypes lists every resource collection a full user sync covers,
// in the order they are processed.
var AllResourceTypes = []ResourceType{ResourceMessages, ResourceFolders}
