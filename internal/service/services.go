package service

import (
	"github.com/MKhiriev/go-mail-sync/internal/adapter"
	"github.com/MKhiriev/go-mail-sync/internal/config"
	"github.com/MKhiriev/go-mail-sync/internal/crypto"
	"github.com/MKhiriev/go-mail-sync/internal/logger"
	"github.com/MKhiriev/go-mail-sync/internal/store"
)

type Services struct {
	SyncService SyncService
	UserService UserService
	AuthService AuthService
	MailService MailService
}

func NewServices(repos *store.Repositories, graph adapter.GraphAdapter, oauth adapter.OAuthAdapter, cipher crypto.TokenCipher, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	syncService := NewSyncService(repos, graph, cipher, cfg.Sync, logger)

	return &Services{
		SyncService: syncService,
		UserService: NewUserService(repos.UserRepository, oauth, logger),
		AuthService: NewAuthService(repos.UserRepository, oauth, cipher, syncService, logger),
		MailService: NewMailService(repos.UserRepository, repos.ContainerRepository, logger),
	}
}
