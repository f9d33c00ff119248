package ports

import (
	"context"

	"cheese-api/internal/core/domain"
)

// PriceRange bounds the price filter. Nil bounds are not applied.
type PriceRange struct {
	Gt  *int
	Gte *int
	Lt  *int
	Lte *int
}

// IsZero reports whether no bound is set.
func (r PriceRange) IsZero() bool {
	return r.Gt == nil && r.Gte == nil && r.Lt == nil && r.Lte == nil
}

// Matches reports whether price falls inside every set bound.
func (r PriceRange) Matches(price int) bool {
	if r.Gt != nil && price <= *r.Gt {
		return false
	}
	if r.Gte != nil && price < *r.Gte {
		return false
	}
	if r.Lt != nil && price >= *r.Lt {
		return false
	}
	if r.Lte != nil && price > *r.Lte {
		return false
	}
	return true
}

type ListFilter struct {
	Title  string
	Price  PriceRange
	Limit  int
	Offset int
}

type CheeseListingRepository interface {
	Create(ctx context.Context, listing *domain.CheeseListing) error
	GetByID(ctx context.Context, id int64) (*domain.CheeseListing, error)
	Update(ctx context.Context, listing *domain.CheeseListing) error
	List(ctx context.Context, filter ListFilter) ([]*domain.CheeseListing, int, error)
}
