// Package repositorytest provides an in-memory item store that behaves
// like the Postgres repository, for tests of the layers above it.
package repositorytest

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/ductran2702/code-challenge-backend/internal/model/item"
	"github.com/ductran2702/code-challenge-backend/internal/repository"
)

// MemoryItemStore keeps items in a map guarded by a mutex.
//
// Ids start at 1 and are never reused. The clock is strictly increasing so
// ordering by creation time and updatedAt > createdAt hold as they do in
// Postgres.
type MemoryItemStore struct {
	mu     sync.Mutex
	items  map[int64]item.Item
	nextID int64
	now    time.Time

	// Err, when set, is returned by every call.
	Err error
}

func NewMemoryItemStore() *MemoryItemStore {
	return &MemoryItemStore{
		items:  make(map[int64]item.Item),
		nextID: 1,
		now:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (s *MemoryItemStore) tick() time.Time {
	s.now = s.now.Add(time.Millisecond)
	return s.now
}

func (s *MemoryItemStore) CreateItem(ctx context.Context, payload *item.CreateItemPayload) (*item.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.check(ctx); err != nil {
		return nil, err
	}

	now := s.tick()
	it := item.Item{
		Name:        payload.Name,
		Description: copyString(payload.Description),
	}
	it.ID = s.nextID
	it.CreatedAt = now
	it.UpdatedAt = now

	s.items[it.ID] = it
	s.nextID++

	return clone(it), nil
}

func (s *MemoryItemStore) GetItems(ctx context.Context, query *item.GetItemsQuery) ([]item.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.check(ctx); err != nil {
		return nil, err
	}

	var filter string
	if query != nil {
		filter = strings.ToLower(query.Name)
	}

	items := make([]item.Item, 0, len(s.items))
	for _, it := range s.items {
		if filter != "" && !strings.Contains(strings.ToLower(it.Name), filter) {
			continue
		}
		items = append(items, *clone(it))
	}

	sort.Slice(items, func(i, j int) bool {
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.After(items[j].CreatedAt)
		}
		return items[i].ID > items[j].ID
	})

	return items, nil
}

func (s *MemoryItemStore) GetItemByID(ctx context.Context, id int64) (*item.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.check(ctx); err != nil {
		return nil, err
	}

	it, ok := s.items[id]
	if !ok {
		return nil, repository.ErrItemNotFound
	}
	return clone(it), nil
}

func (s *MemoryItemStore) UpdateItem(ctx context.Context, payload *item.UpdateItemPayload) (*item.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.check(ctx); err != nil {
		return nil, err
	}

	it, ok := s.items[payload.ID]
	if !ok {
		return nil, repository.ErrItemNotFound
	}

	if payload.Name != nil {
		it.Name = *payload.Name
	}
	switch {
	case payload.ClearDescription:
		it.Description = nil
	case payload.Description != nil:
		it.Description = copyString(payload.Description)
	}
	it.UpdatedAt = s.tick()

	s.items[it.ID] = it
	return clone(it), nil
}

func (s *MemoryItemStore) DeleteItem(ctx context.Context, id int64) (*item.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.check(ctx); err != nil {
		return nil, err
	}

	it, ok := s.items[id]
	if !ok {
		return nil, repository.ErrItemNotFound
	}
	delete(s.items, id)

	return clone(it), nil
}

// Len returns the number of stored items.
func (s *MemoryItemStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func (s *MemoryItemStore) check(ctx context.Context) error {
	if s.Err != nil {
		return s.Err
	}
	return ctx.Err()
}

func clone(it item.Item) *item.Item {
	it.Description = copyString(it.Description)
	return &it
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
