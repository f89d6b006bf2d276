package http

import (
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-mail-sync/internal/logger"
	"github.com/MKhiriev/go-mail-sync/internal/mock"
	"github.com/MKhiriev/go-mail-sync/internal/service"
)

// testServices bundles the gomock service doubles wired into a Handler.
type testServices struct {
	sync  *mock.MockSyncService
	users *mock.MockUserService
	auth  *mock.MockAuthService
	mail  *mock.MockMailService
}

// newTestHandler builds a Handler backed by mocked services.
func newTestHandler(t *testing.T, ctrl *gomock.Controller) (*Handler, *testServices) {
	t.Helper()

	mocks := &testServices{
		sync:  mock.NewMockSyncService(ctrl),
		users: mock.NewMockUserService(ctrl),
		auth:  mock.NewMockAuthService(ctrl),
		mail:  mock.NewMockMailService(ctrl),
	}
	services := &service.Services{
		SyncService: mocks.sync,
		UserService: mocks.users,
		AuthService: mocks.auth,
		MailService: mocks.mail,
	}

	return NewHandler(services, logger.Nop()), mocks
}
