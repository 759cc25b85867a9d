package service

import (
	"github.com/ductran2702/code-challenge-backend/internal/cache"
	"github.com/ductran2702/code-challenge-backend/internal/repository"
	"github.com/ductran2702/code-challenge-backend/internal/server"
)

type Services struct {
	Item *ItemService
}

// NewService wires the services on top of the repositories. The item list
// cache is only attached when Redis is configured and caching is enabled.
func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	var listCache ListCache
	if s.Redis != nil && s.Config.Cache.Enabled {
		listCache = cache.NewItemListCache(s.Redis, s.Config.Cache.TTL)
		s.Logger.Info().Dur("ttl", s.Config.Cache.TTL).Msg("item list cache enabled")
	}

	return &Services{
		Item: NewItemService(repos.Item, listCache),
	}, nil
}
