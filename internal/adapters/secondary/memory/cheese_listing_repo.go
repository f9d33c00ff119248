// Package memory keeps cheese listings in process memory. It backs the
// "memory" storage driver and the HTTP contract tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"cheese-api/internal/core/domain"
	ports "cheese-api/internal/core/ports/output"
)

// Stored listings are copies; callers never share pointers with the store.
type cheeseListingRepo struct {
	mu      sync.RWMutex
	records map[int64]*domain.CheeseListing
	counter int64
}

func NewCheeseListingRepository() ports.CheeseListingRepository {
	return &cheeseListingRepo{records: make(map[int64]*domain.CheeseListing)}
}

func (r *cheeseListingRepo) Create(ctx context.Context, listing *domain.CheeseListing) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.counter + 1
	if err := listing.AssignID(id); err != nil {
		return fmt.Errorf("create cheese listing: %w", err)
	}
	r.counter = id
	r.records[id] = clone(listing)
	return nil
}

func (r *cheeseListingRepo) GetByID(ctx context.Context, id int64) (*domain.CheeseListing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.records[id]
	if !ok {
		return nil, domain.ErrCheeseListingNotFound
	}
	return clone(rec), nil
}

func (r *cheeseListingRepo) Update(ctx context.Context, listing *domain.CheeseListing) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !listing.Persisted() {
		return fmt.Errorf("update cheese listing: %w", domain.ErrNotPersisted)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[listing.ID()]; !ok {
		return domain.ErrCheeseListingNotFound
	}
	r.records[listing.ID()] = clone(listing)
	return nil
}

func (r *cheeseListingRepo) List(ctx context.Context, filter ports.ListFilter) ([]*domain.CheeseListing, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	r.mu.RLock()
	matched := make([]*domain.CheeseListing, 0, len(r.records))
	for _, rec := range r.records {
		if filter.Title != "" && !strings.Contains(rec.Title(), filter.Title) {
			continue
		}
		price, _ := rec.Price()
		if !filter.Price.Matches(price) {
			continue
		}
		matched = append(matched, clone(rec))
	}
	r.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool { return matched[i].ID() < matched[j].ID() })

	total := len(matched)
	start := min(max(filter.Offset, 0), total)
	end := total
	if filter.Limit > 0 {
		end = min(start+filter.Limit, total)
	}

	return matched[start:end], total, nil
}

func clone(l *domain.CheeseListing) *domain.CheeseListing {
	price, _ := l.Price()
	return domain.RestoreCheeseListing(l.ID(), l.Title(), l.Description(), price, l.CreatedAt(), l.IsPublished())
}
