package store

import "github.com/MKhiriev/go-mail-sync/internal/logger"

// Repositories aggregates every repository of the persistence layer behind
// one constructor, wired to a shared database connection.
type Repositories struct {
	UserRepository      UserRepository
	ContainerRepository ContainerRepository
	CursorRepository    CursorRepository
}

// NewRepositories constructs all repositories on top of the given connection.
func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:      NewUserRepository(db, log),
		ContainerRepository: NewContainerRepository(db, log),
		CursorRepository:    NewCursorRepository(db, log),
	}
}
