// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-mail-sync/internal/logger"
	"github.com/MKhiriev/go-mail-sync/internal/mock"
	"github.com/MKhiriev/go-mail-sync/models"
)

const (
	testUserID    = "11111111-1111-1111-1111-111111111111"
	testRootURL   = "https://graph.example.com/v1.0/me/messages"
	testFolderURL = "https://graph.example.com/v1.0/me/mailFolders"
)

func newTestSyncService(ctrl *gomock.Controller) (
	*syncService,
	*mock.MockUserRepository,
	*mock.MockContainerRepository,
	*mock.MockCursorRepository,
	*mock.MockGraphAdapter,
	*mock.MockTokenCipher,
) {
	users := mock.NewMockUserRepository(ctrl)
	containers := mock.NewMockContainerRepository(ctrl)
	cursors := mock.NewMockCursorRepository(ctrl)
	graph := mock.NewMockGraphAdapter(ctrl)
	cipher := mock.NewMockTokenCipher(ctrl)

	svc := &syncService{
		users:      users,
		containers: containers,
		cursors:    cursors,
		graph:      graph,
		cipher:     cipher,
		resources: map[models.ResourceType]resourceSpec{
			models.ResourceMessages: {rootURL: testRootURL, normalize: normalizeMessage},
			models.ResourceFolders:  {rootURL: testFolderURL, normalize: normalizeFolder},
		},
		logger: logger.Nop(),
	}

	return svc, users, containers, cursors, graph, cipher
}

func linkedUser() models.User {
	return models.User{
		UserID:      testUserID,
		Email:       "john@example.com",
		AccessToken: "enc-access",
	}
}

func messageItem(id string) json.RawMessage {
	return json.RawMessage(`{"id": "` + id + `", "subject": "s"}`)
}

func pageOf(next, delta string, ids ...string) models.PageResponse {
	page := models.PageResponse{NextLink: next, DeltaLink: delta}
	for _, id := range ids {
		page.Items = append(page.Items, messageItem(id))
	}
	return page
}

// mergedIDs wires the container mock to accept any upsert and record the
// identity order in which records arrive.
func mergedIDs(containers *mock.MockContainerRepository) *[]string {
	var ids []string
	containers.EXPECT().
		UpsertRecord(gomock.Any(), testUserID, models.ResourceMessages, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ models.ResourceType, record models.Record) error {
			ids = append(ids, record.ID)
			return nil
		}).
		AnyTimes()
	return &ids
}

func TestSyncResource_FirstSyncWalksAllPages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, users, containers, cursors, graph, cipher := newTestSyncService(ctrl)
	ctx := context.Background()

	users.EXPECT().FindUserByID(ctx, testUserID).Return(linkedUser(), nil)
	cipher.EXPECT().Decrypt("enc-access").Return("plain-access", nil)

	// No stored cursor: traversal starts at the resource root.
	cursors.EXPECT().Get(ctx, testUserID, models.ResourceMessages).Return(models.SyncCursor{}, nil)

	graph.EXPECT().FetchPage(ctx, testRootURL, "plain-access").
		Return(pageOf("https://graph.example.com/page2", "", "msg-1", "msg-2"), nil)
	graph.EXPECT().FetchPage(ctx, "https://graph.example.com/page2", "plain-access").
		Return(pageOf("", "https://graph.example.com/delta?token=abc", "msg-3"), nil)

	ids := mergedIDs(containers)

	cursors.EXPECT().Set(ctx, models.SyncCursor{
		UserID:       testUserID,
		ResourceType: models.ResourceMessages,
		DeltaLink:    "https://graph.example.com/delta?token=abc",
	}).Return(nil)

	err := svc.SyncResource(ctx, testUserID, models.ResourceMessages)
	require.NoError(t, err)

	assert.Equal(t, []string{"msg-1", "msg-2", "msg-3"}, *ids)
}

func TestSyncResource_ResumesFromStoredDeltaLink(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, users, containers, cursors, graph, cipher := newTestSyncService(ctrl)
	ctx := context.Background()

	users.EXPECT().FindUserByID(ctx, testUserID).Return(linkedUser(), nil)
	cipher.EXPECT().Decrypt("enc-access").Return("plain-access", nil)

	stored := "https://graph.example.com/delta?token=old"
	cursors.EXPECT().Get(ctx, testUserID, models.ResourceMessages).
		Return(models.SyncCursor{UserID: testUserID, ResourceType: models.ResourceMessages, DeltaLink: stored}, nil)

	// The first fetch must hit the stored delta link, not the root.
	graph.EXPECT().FetchPage(ctx, stored, "plain-access").
		Return(pageOf("", "https://graph.example.com/delta?token=new", "msg-9"), nil)

	mergedIDs(containers)

	cursors.EXPECT().Set(ctx, models.SyncCursor{
		UserID:       testUserID,
		ResourceType: models.ResourceMessages,
		DeltaLink:    "https://graph.example.com/delta?token=new",
	}).Return(nil)

	require.NoError(t, svc.SyncResource(ctx, testUserID, models.ResourceMessages))
}

func TestSyncResource_EmptyPageStillAdvancesCursor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, users, _, cursors, graph, cipher := newTestSyncService(ctrl)
	ctx := context.Background()

	users.EXPECT().FindUserByID(ctx, testUserID).Return(linkedUser(), nil)
	cipher.EXPECT().Decrypt("enc-access").Return("plain-access", nil)
	cursors.EXPECT().Get(ctx, testUserID, models.ResourceMessages).Return(models.SyncCursor{}, nil)

	graph.EXPECT().FetchPage(ctx, testRootURL, "plain-access").
		Return(pageOf("", "https://graph.example.com/delta?token=empty"), nil)

	cursors.EXPECT().Set(ctx, gomock.Any()).Return(nil)

	require.NoError(t, svc.SyncResource(ctx, testUserID, models.ResourceMessages))
}

func TestSyncResource_FetchFailureLeavesCursorUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, users, _, cursors, graph, cipher := newTestSyncService(ctrl)
	ctx := context.Background()

	users.EXPECT().FindUserByID(ctx, testUserID).Return(linkedUser(), nil)
	cipher.EXPECT().Decrypt("enc-access").Return("plain-access", nil)
	cursors.EXPECT().Get(ctx, testUserID, models.ResourceMessages).Return(models.SyncCursor{}, nil)

	fetchErr := errors.New("max retries reached")
	graph.EXPECT().FetchPage(ctx, testRootURL, "plain-access").Return(models.PageResponse{}, fetchErr)

	// No cursors.Set expectation: the cursor must not move on failure.
	err := svc.SyncResource(ctx, testUserID, models.ResourceMessages)
	require.Error(t, err)
	assert.ErrorIs(t, err, fetchErr)
}

func TestSyncResource_MergeFailureStopsBeforeCheckpoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, users, containers, cursors, graph, cipher := newTestSyncService(ctrl)
	ctx := context.Background()

	users.EXPECT().FindUserByID(ctx, testUserID).Return(linkedUser(), nil)
	cipher.EXPECT().Decrypt("enc-access").Return("plain-access", nil)
	cursors.EXPECT().Get(ctx, testUserID, models.ResourceMessages).Return(models.SyncCursor{}, nil)

	graph.EXPECT().FetchPage(ctx, testRootURL, "plain-access").
		Return(pageOf("", "https://graph.example.com/delta?token=abc", "msg-1", "msg-2"), nil)

	mergeErr := errors.New("container merge failed")
	gomock.InOrder(
		containers.EXPECT().
			UpsertRecord(ctx, testUserID, models.ResourceMessages, gomock.Any()).
			Return(nil),
		containers.EXPECT().
			UpsertRecord(ctx, testUserID, models.ResourceMessages, gomock.Any()).
			Return(mergeErr),
	)

	// The page never completed, so the delta link must not be persisted.
	err := svc.SyncResource(ctx, testUserID, models.ResourceMessages)
	require.Error(t, err)
	assert.ErrorIs(t, err, mergeErr)
}

func TestSyncResource_NormalizationFailureFailsRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, users, _, cursors, graph, cipher := newTestSyncService(ctrl)
	ctx := context.Background()

	users.EXPECT().FindUserByID(ctx, testUserID).Return(linkedUser(), nil)
	cipher.EXPECT().Decrypt("enc-access").Return("plain-access", nil)
	cursors.EXPECT().Get(ctx, testUserID, models.ResourceMessages).Return(models.SyncCursor{}, nil)

	badPage := models.PageResponse{Items: []json.RawMessage{json.RawMessage(`{"subject": "no id"}`)}}
	graph.EXPECT().FetchPage(ctx, testRootURL, "plain-access").Return(badPage, nil)

	err := svc.SyncResource(ctx, testUserID, models.ResourceMessages)
	assert.ErrorIs(t, err, ErrNormalization)
}

func TestSyncResource_InteriorCheckpointPersistsBeforeNextPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, users, containers, cursors, graph, cipher := newTestSyncService(ctrl)
	ctx := context.Background()

	users.EXPECT().FindUserByID(ctx, testUserID).Return(linkedUser(), nil)
	cipher.EXPECT().Decrypt("enc-access").Return("plain-access", nil)
	cursors.EXPECT().Get(ctx, testUserID, models.ResourceMessages).Return(models.SyncCursor{}, nil)

	mergedIDs(containers)

	// A page carrying both tokens checkpoints the delta link and continues.
	gomock.InOrder(
		graph.EXPECT().FetchPage(ctx, testRootURL, "plain-access").
			Return(pageOf("https://graph.example.com/page2", "https://graph.example.com/delta?token=mid", "msg-1"), nil),
		cursors.EXPECT().Set(ctx, models.SyncCursor{
			UserID:       testUserID,
			ResourceType: models.ResourceMessages,
			DeltaLink:    "https://graph.example.com/delta?token=mid",
		}).Return(nil),
		graph.EXPECT().FetchPage(ctx, "https://graph.example.com/page2", "plain-access").
			Return(pageOf("", "https://graph.example.com/delta?token=final", "msg-2"), nil),
		cursors.EXPECT().Set(ctx, models.SyncCursor{
			UserID:       testUserID,
			ResourceType: models.ResourceMessages,
			DeltaLink:    "https://graph.example.com/delta?token=final",
		}).Return(nil),
	)

	require.NoError(t, svc.SyncResource(ctx, testUserID, models.ResourceMessages))
}

func TestSyncResource_UnlinkedAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, users, _, _, _, _ := newTestSyncService(ctrl)
	ctx := context.Background()

	users.EXPECT().FindUserByID(ctx, testUserID).
		Return(models.User{UserID: testUserID, Email: "john@example.com"}, nil)

	err := svc.SyncResource(ctx, testUserID, models.ResourceMessages)
	assert.ErrorIs(t, err, ErrAccountNotLinked)
}

func TestSyncResource_UnknownResourceType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, users, _, _, _, cipher := newTestSyncService(ctrl)
	ctx := context.Background()

	users.EXPECT().FindUserByID(ctx, testUserID).Return(linkedUser(), nil)
	cipher.EXPECT().Decrypt("enc-access").Return("plain-access", nil)

	err := svc.SyncResource(ctx, testUserID, models.ResourceType("calendars"))
	assert.ErrorIs(t, err, ErrUnknownResource)
}

func TestRunAll_IsolatesFailingUsers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, users, containers, cursors, graph, cipher := newTestSyncService(ctrl)
	ctx := context.Background()

	broken := models.User{UserID: "user-broken", Email: "a@example.com", AccessToken: "enc-a"}
	healthy := models.User{UserID: "user-healthy", Email: "b@example.com", AccessToken: "enc-b"}

	users.EXPECT().ListUsers(ctx).Return([]models.User{broken, healthy}, nil)

	cipher.EXPECT().Decrypt("enc-a").Return("plain-a", nil)
	cipher.EXPECT().Decrypt("enc-b").Return("plain-b", nil)

	// Every fetch for the broken user fails; the healthy user's resources
	// complete with empty final pages.
	cursors.EXPECT().Get(ctx, "user-broken", gomock.Any()).Return(models.SyncCursor{}, nil).Times(2)
	graph.EXPECT().FetchPage(ctx, gomock.Any(), "plain-a").
		Return(models.PageResponse{}, errors.New("upstream down")).Times(2)

	cursors.EXPECT().Get(ctx, "user-healthy", gomock.Any()).Return(models.SyncCursor{}, nil).Times(2)
	graph.EXPECT().FetchPage(ctx, gomock.Any(), "plain-b").
		Return(pageOf("", "https://graph.example.com/delta?token=b", "rec-1"), nil).Times(2)
	containers.EXPECT().UpsertRecord(ctx, "user-healthy", gomock.Any(), gomock.Any()).Return(nil).Times(2)
	cursors.EXPECT().Set(ctx, gomock.Any()).Return(nil).Times(2)

	report, err := svc.RunAll(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, report.Succeeded)
	assert.Equal(t, 2, report.Failed)
	assert.Len(t, report.Outcomes, 4)

	for _, outcome := range report.Outcomes {
		switch outcome.UserID {
		case "user-broken":
			assert.False(t, outcome.Success)
			assert.NotEmpty(t, outcome.Error)
		case "user-healthy":
			assert.True(t, outcome.Success)
			assert.Empty(t, outcome.Error)
		default:
			t.Errorf("unexpected outcome user: %s", outcome.UserID)
		}
	}
}

func TestRunAll_SkipsUnlinkedAccounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, users, _, _, _, _ := newTestSyncService(ctrl)
	ctx := context.Background()

	users.EXPECT().ListUsers(ctx).Return([]models.User{
		{UserID: "user-unlinked", Email: "c@example.com"},
	}, nil)

	report, err := svc.RunAll(ctx)
	require.NoError(t, err)

	assert.Empty(t, report.Outcomes)
	assert.Zero(t, report.Succeeded)
	assert.Zero(t, report.Failed)
}

func TestRunAll_DecryptFailureCountsAllResources(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, users, _, _, _, cipher := newTestSyncService(ctrl)
	ctx := context.Background()

	users.EXPECT().ListUsers(ctx).Return([]models.User{
		{UserID: "user-1", Email: "a@example.com", AccessToken: "enc-bad"},
	}, nil)
	cipher.EXPECT().Decrypt("enc-bad").Return("", errors.New("cipher: message authentication failed"))

	report, err := svc.RunAll(ctx)
	require.NoError(t, err)

	assert.Equal(t, len(models.AllResourceTypes), report.Failed)
	assert.Zero(t, report.Succeeded)
}

func TestRunAll_ListUsersFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, users, _, _, _, _ := newTestSyncService(ctrl)
	ctx := context.Background()

	listErr := errors.New("db network error")
	users.EXPECT().ListUsers(ctx).Return(nil, listErr)

	_, err := svc.RunAll(ctx)
	assert.ErrorIs(t, err, listErr)
}

func TestSyncUser_SyncsEveryResource(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, users, containers, cursors, graph, cipher := newTestSyncService(ctrl)
	ctx := context.Background()

	users.EXPECT().FindUserByID(ctx, testUserID).Return(linkedUser(), nil)
	cipher.EXPECT().Decrypt("enc-access").Return("plain-access", nil)

	cursors.EXPECT().Get(ctx, testUserID, gomock.Any()).Return(models.SyncCursor{}, nil).Times(2)
	graph.EXPECT().FetchPage(ctx, testRootURL, "plain-access").
		Return(pageOf("", "", "msg-1"), nil)
	graph.EXPECT().FetchPage(ctx, testFolderURL, "plain-access").
		Return(models.PageResponse{Items: []json.RawMessage{json.RawMessage(`{"id": "folder-1"}`)}}, nil)
	containers.EXPECT().UpsertRecord(ctx, testUserID, gomock.Any(), gomock.Any()).Return(nil).Times(2)

	require.NoError(t, svc.SyncUser(ctx, testUserID))
}
