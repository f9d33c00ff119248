package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"cheese-api/internal/core/domain"
	"cheese-api/internal/core/ports/output"
	"cheese-api/internal/observability/metrics"
)

const DefaultItemsPerPage = 10

type CreateCheeseListingInput struct {
	Title       string
	Description *string
	Price       *int
	CreatedAt   *time.Time
	IsPublished *bool
}

// UpdateCheeseListingInput holds the fields sent with a PUT. Nil fields are
// left untouched. Title is absent because it never changes after creation.
type UpdateCheeseListingInput struct {
	Description *string
	Price       *int
	CreatedAt   *time.Time
	IsPublished *bool
}

type ListQuery struct {
	Title string
	Price ports.PriceRange
	Page  int
}

type Page struct {
	Items        []*domain.CheeseListing
	TotalItems   int
	CurrentPage  int
	ItemsPerPage int
}

// LastPage is the 1-based number of the final page, at least 1.
func (p Page) LastPage() int {
	if p.TotalItems == 0 || p.ItemsPerPage <= 0 {
		return 1
	}
	return (p.TotalItems + p.ItemsPerPage - 1) / p.ItemsPerPage
}

type CheeseListingService struct {
	repo         ports.CheeseListingRepository
	itemsPerPage int
}

func NewCheeseListingService(repo ports.CheeseListingRepository, itemsPerPage int) *CheeseListingService {
	if itemsPerPage <= 0 {
		itemsPerPage = DefaultItemsPerPage
	}
	return &CheeseListingService{repo: repo, itemsPerPage: itemsPerPage}
}

func (s *CheeseListingService) Create(ctx context.Context, in CreateCheeseListingInput) (*domain.CheeseListing, error) {
	listing := domain.NewCheeseListing(in.Title)

	if in.Description != nil {
		listing.SetTextDescription(*in.Description)
	}
	if in.Price != nil {
		listing.SetPrice(*in.Price)
	}
	if in.CreatedAt != nil {
		listing.SetCreatedAt(*in.CreatedAt)
	}
	if in.IsPublished != nil {
		listing.SetIsPublished(*in.IsPublished)
	}

	if err := listing.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, listing); err != nil {
		return nil, err
	}
	if !listing.Persisted() {
		return nil, fmt.Errorf("create cheese listing: %w", domain.ErrNotPersisted)
	}
	metrics.CheeseListingsCreatedTotal.Inc()

	return s.repo.GetByID(ctx, listing.ID())
}

func (s *CheeseListingService) Get(ctx context.Context, id int64) (*domain.CheeseListing, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CheeseListingService) List(ctx context.Context, q ListQuery) (*Page, error) {
	if q.Page == 0 {
		q.Page = 1
	}
	if q.Page < 0 || q.Page > s.maxPage() {
		return nil, domain.ErrInvalidPage
	}

	filter := ports.ListFilter{
		Title:  q.Title,
		Price:  q.Price,
		Limit:  s.itemsPerPage,
		Offset: (q.Page - 1) * s.itemsPerPage,
	}

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*domain.CheeseListing{}
	}

	return &Page{
		Items:        items,
		TotalItems:   total,
		CurrentPage:  q.Page,
		ItemsPerPage: s.itemsPerPage,
	}, nil
}

// maxPage is the highest page whose offset still fits in an int.
func (s *CheeseListingService) maxPage() int {
	return math.MaxInt/s.itemsPerPage + 1
}

func (s *CheeseListingService) Update(ctx context.Context, id int64, in UpdateCheeseListingInput) (*domain.CheeseListing, error) {
	listing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Description != nil {
		listing.SetTextDescription(*in.Description)
	}
	if in.Price != nil {
		listing.SetPrice(*in.Price)
	}
	if in.CreatedAt != nil {
		listing.SetCreatedAt(*in.CreatedAt)
	}
	if in.IsPublished != nil {
		listing.SetIsPublished(*in.IsPublished)
	}

	if err := listing.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, listing); err != nil {
		return nil, err
	}
	metrics.CheeseListingsUpdatedTotal.Inc()

	return s.repo.GetByID(ctx, id)
}
