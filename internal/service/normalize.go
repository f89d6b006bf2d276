// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-mail-sync/models"
)

// normalizer turns one raw fetched item into its canonical record form.
type normalizer func(raw json.RawMessage) (models.Record, error)

// graphRecipient is the wire shape of a Graph recipient wrapper.
type graphRecipient struct {
	EmailAddress models.EmailAddress `json:"emailAddress"`
}

// graphMessage is the wire shape of a Graph mail message, limited to the
// fields the canonical record keeps. Unknown fields are dropped.
type graphMessage struct {
	ID               string           `json:"id"`
	Subject          string           `json:"subject"`
	BodyPreview      string           `json:"bodyPreview"`
	Importance       string           `json:"importance"`
	IsRead           bool             `json:"isRead"`
	IsDraft          bool             `json:"isDraft"`
	Sender           *graphRecipient  `json:"sender"`
	From             *graphRecipient  `json:"from"`
	ToRecipients     []graphRecipient `json:"toRecipients"`
	CcRecipients     []graphRecipient `json:"ccRecipients"`
	BccRecipients    []graphRecipient `json:"bccRecipients"`
	ReceivedDateTime string           `json:"receivedDateTime"`
	SentDateTime     string           `json:"sentDateTime"`
}

// graphFolder is the wire shape of a Graph mail folder.
type graphFolder struct {
	ID               string `json:"id"`
	DisplayName      string `json:"displayName"`
	ParentFolderID   string `json:"parentFolderId"`
	ChildFolderCount int    `json:"childFolderCount"`
	TotalItemCount   int    `json:"totalItemCount"`
	UnreadItemCount  int    `json:"unreadItemCount"`
	WellKnownName    string `json:"wellKnownName"`
}

// normalizeMessage maps a raw Graph message into the canonical [models.Message]
// record. Missing optional fields default to their zero values; recipient
// lists are always materialized, so an empty list is stored as [] and never
// as null. An item with no id cannot be merged by identity and is rejected.
func normalizeMessage(raw json.RawMessage) (models.Record, error) {
	var msg graphMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		return models.Record{}, fmt.Errorf("%w: %w", ErrNormalization, err)
	}
	if msg.ID == "" {
		return models.Record{}, fmt.Errorf("%w: message without id", ErrNormalization)
	}

	normalized := models.Message{
		ID:               msg.ID,
		Subject:          msg.Subject,
		BodyPreview:      msg.BodyPreview,
		Importance:       msg.Importance,
		IsRead:           msg.IsRead,
		IsDraft:          msg.IsDraft,
		ToRecipients:     recipientAddresses(msg.ToRecipients),
		CcRecipients:     recipientAddresses(msg.CcRecipients),
		BccRecipients:    recipientAddresses(msg.BccRecipients),
		ReceivedDateTime: msg.ReceivedDateTime,
		SentDateTime:     msg.SentDateTime,
	}

	if msg.Sender != nil {
		sender := msg.Sender.EmailAddress
		normalized.Sender = &sender
	}
	if msg.From != nil {
		from := msg.From.EmailAddress
		normalized.From = &from
	}

	doc, err := json.Marshal(normalized)
	if err != nil {
		return models.Record{}, fmt.Errorf("%w: %w", ErrNormalization, err)
	}

	return models.Record{ID: msg.ID, Doc: doc}, nil
}

// normalizeFolder maps a raw Graph mail folder into the canonical
// [models.Folder] record.
func normalizeFolder(raw json.RawMessage) (models.Record, error) {
	var folder graphFolder
	if err := json.Unmarshal(raw, &folder); err != nil {
		return models.Record{}, fmt.Errorf("%w: %w", ErrNormalization, err)
	}
	if folder.ID == "" {
		return models.Record{}, fmt.Errorf("%w: folder without id", ErrNormalization)
	}

	normalized := models.Folder{
		ID:               folder.ID,
		DisplayName:      folder.DisplayName,
		ParentFolderID:   folder.ParentFolderID,
		ChildFolderCount: folder.ChildFolderCount,
		TotalItemCount:   folder.TotalItemCount,
		UnreadItemCount:  folder.UnreadItemCount,
		WellKnownName:    folder.WellKnownName,
	}

	doc, err := json.Marshal(normalized)
	if err != nil {
		return models.Record{}, fmt.Errorf("%w: %w", ErrNormalization, err)
	}

	return models.Record{ID: folder.ID, Doc: doc}, nil
}

func recipientAddresses(recipients []graphRecipient) []models.EmailAddress {
	addresses := make([]models.EmailAddress, 0, len(recipients))
	for _, recipient := range recipients {
		addresses = append(addresses, recipient.EmailAddress)
	}
	return addresses
}
