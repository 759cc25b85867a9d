package repository

import (
	"github.com/ductran2702/code-challenge-backend/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Item *ItemRepository
}

// NewRepositories constructs the repository container on top of the
// server's connection pool.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Item: NewItemRepository(s.DB.Pool),
	}
}
