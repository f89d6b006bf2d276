package service

import (
	"context"

	"github.com/MKhiriev/go-mail-sync/internal/logger"
	"github.com/MKhiriev/go-mail-sync/internal/store"
	"github.com/MKhiriev/go-mail-sync/models"
)

const (
	defaultFetchPage     = 1
	defaultFetchPageSize = 10
)

// mailService is the concrete implementation of [MailService]. It serves
// read-only pages of the containers the sync engine maintains.
type mailService struct {
	users      store.UserRepository
	containers store.ContainerRepository

	logger *logger.Logger
}

// NewMailService constructs a [MailService].
func NewMailService(users store.UserRepository, containers store.ContainerRepository, log *logger.Logger) MailService {
	return &mailService{
		users:      users,
		containers: containers,
		logger:     log,
	}
}

// FetchRecords implements [MailService]. Page and pageSize below 1 fall back
// to 1 and 10 respectively. A page beyond the end of the container yields an
// empty item list with the real totals, so callers can still see how far
// they overshot.
func (m *mailService) FetchRecords(ctx context.Context, userID string, resourceType models.ResourceType, page, pageSize int) (models.PagedRecords, error) {
	log := logger.FromContext(ctx)

	if _, err := m.users.FindUserByID(ctx, userID); err != nil {
		return models.PagedRecords{}, err
	}

	if page < 1 {
		page = defaultFetchPage
	}
	if pageSize < 1 {
		pageSize = defaultFetchPageSize
	}

	records, err := m.containers.GetRecords(ctx, userID, resourceType)
	if err != nil {
		return models.PagedRecords{}, err
	}

	total := len(records)
	totalPages := (total + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	log.Debug().
		Str("user_id", userID).
		Str("resource_type", string(resourceType)).
		Int("page", page).
		Int("page_size", pageSize).
		Int("total", total).
		Msg("serving container page")

	return models.PagedRecords{
		Items:      records[start:end],
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}
