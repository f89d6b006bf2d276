package models

// EmailAddress is a single mailbox participant as reported by Microsoft
// Graph (the emailAddress object nested inside sender/recipient fields).
type EmailAddress struct {
	// Name is the display name of the participant. May be empty.
	Name string `json:"name,omitempty"`

	// Address is the SMTP address of the participant.
	Address string `json:"address,omitempty"`
}

// Message is the normalized form of one Graph message record as stored
// inside a user's "messages" container document.
//
// ID carries the server-assigned Graph identifier and is the identity key
// for container upserts: a re-synced message with the same ID replaces the
// stored element wholesale. Recipient slices are always non-nil — an absent
// recipient list normalizes to an empty slice, never to null.
type Message struct {
	ID               string         `json:"_id"`
	Sender           *EmailAddress  `json:"sender,omitempty"`
	From             *EmailAddress  `json:"from,omitempty"`
	ToRecipients     []EmailAddress `json:"toRecipients"`
	CcRecipients     []EmailAddress `json:"ccRecipients"`
	BccRecipients    []EmailAddress `json:"bccRecipients"`
	IsRead           bool           `json:"isRead"`
	IsDraft          bool           `json:"isDraft"`
	Subject          string         `json:"subject"`
	BodyPreview      string         `json:"bodyPreview"`
	Importance       string         `json:"importance"`
	ReceivedDateTime string         `json:"receivedDateTime"`
	SentDateTime     string         `json:"sentDateTime"`
}
