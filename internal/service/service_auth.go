package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-mail-sync/internal/adapter"
	"github.com/MKhiriev/go-mail-sync/internal/app"
	"github.com/MKhiriev/go-mail-sync/internal/crypto"
	"github.com/MKhiriev/go-mail-sync/internal/logger"
	"github.com/MKhiriev/go-mail-sync/internal/store"
	"github.com/MKhiriev/go-mail-sync/models"
)

// authService is the concrete implementation of [AuthService].
type authService struct {
	users  store.UserRepository
	oauth  adapter.OAuthAdapter
	cipher crypto.TokenCipher
	sync   SyncService

	logger *logger.Logger
}

// NewAuthService constructs an [AuthService].
func NewAuthService(users store.UserRepository, oauth adapter.OAuthAdapter, cipher crypto.TokenCipher, sync SyncService, log *logger.Logger) AuthService {
	return &authService{
		users:  users,
		oauth:  oauth,
		cipher: cipher,
		sync:   sync,
		logger: log,
	}
}

// HandleOAuthCallback implements [AuthService].
//
// The authorization code is exchanged for a token set, the mailbox address
// is read from the ID token's claims, and the token pair is stored encrypted
// on the matching account. The account's first full sync is started in the
// background; its outcome is logged, not reported to the caller, since the
// callback response only confirms that the mailbox was linked.
func (a *authService) HandleOAuthCallback(ctx context.Context, code string) (models.CallbackResponse, error) {
	log := logger.FromContext(ctx)

	if code == "" {
		return models.CallbackResponse{}, ErrEmptyAuthCode
	}

	tokens, err := a.oauth.ExchangeCode(ctx, code)
	if err != nil {
		return models.CallbackResponse{}, fmt.Errorf("exchange code: %w", err)
	}

	email, err := a.oauth.EmailFromIDToken(tokens.IDToken)
	if err != nil {
		return models.CallbackResponse{}, err
	}

	user, err := a.users.FindUserByEmail(ctx, email)
	if err != nil {
		return models.CallbackResponse{}, err
	}

	encryptedAccess, err := a.cipher.Encrypt(tokens.AccessToken)
	if err != nil {
		return models.CallbackResponse{}, fmt.Errorf("encrypt access token: %w", err)
	}

	encryptedRefresh, err := a.cipher.Encrypt(tokens.RefreshToken)
	if err != nil {
		return models.CallbackResponse{}, fmt.Errorf("encrypt refresh token: %w", err)
	}

	if err = a.users.UpdateTokens(ctx, user.UserID, encryptedAccess, encryptedRefresh); err != nil {
		return models.CallbackResponse{}, err
	}

	log.Info().
		Str("user_id", user.UserID).
		Str("email", email).
		Msg("mailbox linked, starting initial sync")

	go a.runInitialSync(context.WithoutCancel(ctx), user.UserID)

	return models.CallbackResponse{
		Message: app.MsgMailboxLinked,
		Email:   email,
		UserID:  user.UserID,
	}, nil
}

func (a *authService) runInitialSync(ctx context.Context, userID string) {
	if err := a.sync.SyncUser(ctx, userID); err != nil {
		a.logger.Err(err).Str("user_id", userID).Msg("initial sync failed")
		return
	}
	a.logger.Info().Str("user_id", userID).Msg("initial sync complete")
}
