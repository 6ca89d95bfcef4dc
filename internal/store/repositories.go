package store

import "github.com/MKhiriev/go-blog-platform/internal/logger"

// Repositories groups every repository backed by the same database.
type Repositories struct {
	UserRepository UserRepository
}

// NewRepositories builds all repositories on top of db.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository: NewUserRepository(db, logger),
	}
}
