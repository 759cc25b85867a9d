package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ductran2702/code-challenge-backend/internal/errs"
	"github.com/ductran2702/code-challenge-backend/internal/model/item"
	"github.com/ductran2702/code-challenge-backend/internal/repository"
	"github.com/rs/zerolog"
)

// ItemStore is the persistence the item service needs. It is implemented
// by repository.ItemRepository.
type ItemStore interface {
	CreateItem(ctx context.Context, payload *item.CreateItemPayload) (*item.Item, error)
	GetItems(ctx context.Context, query *item.GetItemsQuery) ([]item.Item, error)
	GetItemByID(ctx context.Context, id int64) (*item.Item, error)
	UpdateItem(ctx context.Context, payload *item.UpdateItemPayload) (*item.Item, error)
	DeleteItem(ctx context.Context, id int64) (*item.Item, error)
}

// ListCache caches item listings. It is implemented by cache.ItemListCache.
//
// Key resolves a filter to the key of the current generation; Get and Set
// work on that key so a listing read before a write is never stored where
// readers after the write will look.
type ListCache interface {
	Key(ctx context.Context, filter string) (string, error)
	Get(ctx context.Context, key string) ([]item.Item, bool, error)
	Set(ctx context.Context, key string, items []item.Item) error
	Invalidate(ctx context.Context) error
}

const itemNotFoundCode = "ITEM_NOT_FOUND"

type ItemService struct {
	store ItemStore
	cache ListCache
}

// NewItemService builds the item service. listCache may be nil.
func NewItemService(store ItemStore, listCache ListCache) *ItemService {
	return &ItemService{
		store: store,
		cache: listCache,
	}
}

func (s *ItemService) CreateItem(ctx context.Context, payload *item.CreateItemPayload) (*item.Item, error) {
	created, err := s.store.CreateItem(ctx, payload)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)

	zerolog.Ctx(ctx).Info().
		Int64("item_id", created.ID).
		Msg("item created")

	return created, nil
}

// GetItems returns every item matching the query, newest first. Listings
// are served from the cache when one is configured; a cache failure only
// costs the round trip to the store.
func (s *ItemService) GetItems(ctx context.Context, query *item.GetItemsQuery) ([]item.Item, error) {
	filter := ""
	if query != nil {
		filter = query.Name
	}

	key := ""
	if s.cache != nil {
		var err error
		if key, err = s.cache.Key(ctx, filter); err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Msg("item list cache key lookup failed")
		} else if cached, ok, err := s.cache.Get(ctx, key); err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Msg("item list cache read failed")
		} else if ok {
			return cached, nil
		}
	}

	items, err := s.store.GetItems(ctx, query)
	if err != nil {
		return nil, err
	}

	if key != "" {
		if err := s.cache.Set(ctx, key, items); err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Msg("item list cache write failed")
		}
	}

	return items, nil
}

func (s *ItemService) GetItemByID(ctx context.Context, id int64) (*item.Item, error) {
	found, err := s.store.GetItemByID(ctx, id)
	if err != nil {
		return nil, notFound(err, id)
	}
	return found, nil
}

func (s *ItemService) UpdateItem(ctx context.Context, payload *item.UpdateItemPayload) (*item.Item, error) {
	updated, err := s.store.UpdateItem(ctx, payload)
	if err != nil {
		return nil, notFound(err, payload.ID)
	}

	s.invalidate(ctx)

	zerolog.Ctx(ctx).Info().
		Int64("item_id", updated.ID).
		Msg("item updated")

	return updated, nil
}

func (s *ItemService) DeleteItem(ctx context.Context, id int64) (*item.Item, error) {
	deleted, err := s.store.DeleteItem(ctx, id)
	if err != nil {
		return nil, notFound(err, id)
	}

	s.invalidate(ctx)

	zerolog.Ctx(ctx).Info().
		Int64("item_id", id).
		Msg("item deleted")

	return deleted, nil
}

func (s *ItemService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("item list cache invalidation failed")
	}
}

// notFound turns repository.ErrItemNotFound into a 404 and wraps anything else.
func notFound(err error, id int64) error {
	if errors.Is(err, repository.ErrItemNotFound) {
		code := itemNotFoundCode
		return errs.NewNotFoundError("Item not found", &code)
	}
	return fmt.Errorf("item %d: %w", id, err)
}
