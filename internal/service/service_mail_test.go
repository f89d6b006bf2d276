package service

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-mail-sync/internal/logger"
	"github.com/MKhiriev/go-mail-sync/internal/mock"
	"github.com/MKhiriev/go-mail-sync/internal/store"
	"github.com/MKhiriev/go-mail-sync/models"
)

func newTestMailService(ctrl *gomock.Controller) (MailService, *mock.MockUserRepository, *mock.MockContainerRepository) {
	users := mock.NewMockUserRepository(ctrl)
	containers := mock.NewMockContainerRepository(ctrl)
	return NewMailService(users, containers, logger.Nop()), users, containers
}

func containerOf(n int) []json.RawMessage {
	records := make([]json.RawMessage, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, json.RawMessage(fmt.Sprintf(`{"_id":"msg-%d"}`, i)))
	}
	return records
}

func TestFetchRecords_Pagination(t *testing.T) {
	tests := []struct {
		name           string
		total          int
		page           int
		pageSize       int
		wantItems      int
		wantFirstID    string
		wantPage       int
		wantPageSize   int
		wantTotalPages int
	}{
		{
			name:  "first page with defaults",
			total: 25, page: 0, pageSize: 0,
			wantItems: 10, wantFirstID: "msg-0",
			wantPage: 1, wantPageSize: 10, wantTotalPages: 3,
		},
		{
			name:  "middle page",
			total: 25, page: 2, pageSize: 10,
			wantItems: 10, wantFirstID: "msg-10",
			wantPage: 2, wantPageSize: 10, wantTotalPages: 3,
		},
		{
			name:  "short last page",
			total: 25, page: 3, pageSize: 10,
			wantItems: 5, wantFirstID: "msg-20",
			wantPage: 3, wantPageSize: 10, wantTotalPages: 3,
		},
		{
			name:  "page beyond the end",
			total: 25, page: 9, pageSize: 10,
			wantItems: 0,
			wantPage:  9, wantPageSize: 10, wantTotalPages: 3,
		},
		{
			name:  "negative page and size clamp to defaults",
			total: 5, page: -2, pageSize: -1,
			wantItems: 5, wantFirstID: "msg-0",
			wantPage: 1, wantPageSize: 10, wantTotalPages: 1,
		},
		{
			name:  "empty container",
			total: 0, page: 1, pageSize: 10,
			wantItems: 0,
			wantPage:  1, wantPageSize: 10, wantTotalPages: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, users, containers := newTestMailService(ctrl)
			ctx := context.Background()

			users.EXPECT().FindUserByID(ctx, "user-1").Return(models.User{UserID: "user-1"}, nil)
			containers.EXPECT().GetRecords(ctx, "user-1", models.ResourceMessages).
				Return(containerOf(tt.total), nil)

			paged, err := svc.FetchRecords(ctx, "user-1", models.ResourceMessages, tt.page, tt.pageSize)
			require.NoError(t, err)

			assert.Len(t, paged.Items, tt.wantItems)
			assert.Equal(t, tt.total, paged.Total)
			assert.Equal(t, tt.wantPage, paged.Page)
			assert.Equal(t, tt.wantPageSize, paged.PageSize)
			assert.Equal(t, tt.wantTotalPages, paged.TotalPages)

			if tt.wantFirstID != "" && tt.wantItems > 0 {
				assert.Contains(t, string(paged.Items[0]), tt.wantFirstID)
			}
		})
	}
}

func TestFetchRecords_UnknownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, users, _ := newTestMailService(ctrl)
	ctx := context.Background()

	users.EXPECT().FindUserByID(ctx, "missing-id").Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.FetchRecords(ctx, "missing-id", models.ResourceMessages, 1, 10)
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}
