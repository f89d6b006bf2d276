package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-mail-sync/internal/adapter"
	"github.com/MKhiriev/go-mail-sync/internal/logger"
	"github.com/MKhiriev/go-mail-sync/internal/store"
	"github.com/MKhiriev/go-mail-sync/models"
)

// userService is the concrete implementation of [UserService].
type userService struct {
	users store.UserRepository
	oauth adapter.OAuthAdapter

	logger *logger.Logger
}

// NewUserService constructs a [UserService].
func NewUserService(users store.UserRepository, oauth adapter.OAuthAdapter, log *logger.Logger) UserService {
	return &userService{
		users:  users,
		oauth:  oauth,
		logger: log,
	}
}

// CreateAccount implements [UserService]. A known email keeps its existing
// UserID, so repeating the call only re-issues the authorize URL. The account
// starts unlinked: no credentials are stored until the owner completes the
// OAuth flow via the returned authorize URL. The account's UserID rides along
// as the OAuth state parameter.
func (u *userService) CreateAccount(ctx context.Context, email string) (models.AccountResponse, error) {
	log := logger.FromContext(ctx)

	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return models.AccountResponse{}, ErrInvalidEmail
	}

	account, err := u.users.FindUserByEmail(ctx, email)
	switch {
	case err == nil:
		log.Debug().
			Str("user_id", account.UserID).
			Str("email", account.Email).
			Msg("account already exists, reissuing authorize URL")
	case errors.Is(err, store.ErrNoUserWasFound):
		account, err = u.users.CreateUser(ctx, models.User{
			UserID: uuid.NewString(),
			Email:  email,
		})
		if err != nil {
			return models.AccountResponse{}, err
		}

		log.Info().
			Str("user_id", account.UserID).
			Str("email", account.Email).
			Msg("account created")
	default:
		return models.AccountResponse{}, err
	}

	return models.AccountResponse{
		Email:    account.Email,
		UserID:   account.UserID,
		OAuthURL: u.oauth.BuildAuthorizeURL(account.UserID),
	}, nil
}
