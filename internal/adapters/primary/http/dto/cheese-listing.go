package dto

import (
	"strconv"
	"time"

	"cheese-api/internal/core/domain"
	"cheese-api/internal/core/services"
)

const timeFormat = time.RFC3339

// CreateCheeseListingRequest is the POST body. Constraint checks happen in
// the domain so that every violation is reported at once.
type CreateCheeseListingRequest struct {
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Price       *int       `json:"price"`
	CreatedAt   *time.Time `json:"createdAt"`
	IsPublished *bool      `json:"isPublished"`
}

// UpdateCheeseListingRequest is the PUT body. A "title" key is accepted and ignored.
type UpdateCheeseListingRequest struct {
	Description *string    `json:"description"`
	Price       *int       `json:"price"`
	CreatedAt   *time.Time `json:"createdAt"`
	IsPublished *bool      `json:"isPublished"`
}

func (r CreateCheeseListingRequest) ToInput() services.CreateCheeseListingInput {
	return services.CreateCheeseListingInput{
		Title:       r.Title,
		Description: r.Description,
		Price:       r.Price,
		CreatedAt:   r.CreatedAt,
		IsPublished: r.IsPublished,
	}
}

func (r UpdateCheeseListingRequest) ToInput() services.UpdateCheeseListingInput {
	return services.UpdateCheeseListingInput{
		Description: r.Description,
		Price:       r.Price,
		CreatedAt:   r.CreatedAt,
		IsPublished: r.IsPublished,
	}
}

// CheeseListingResponse is the plain JSON representation.
type CheeseListingResponse struct {
	ID               int64  `json:"id"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	Price            *int   `json:"price"`
	CreatedAt        string `json:"createdAt"`
	IsPublished      bool   `json:"isPublished"`
	ShortDescription string `json:"shortDescription"`
	CreatedAtAgo     string `json:"createdAtAgo"`
}

func ToCheeseListingResponse(l *domain.CheeseListing, now time.Time) CheeseListingResponse {
	resp := CheeseListingResponse{
		ID:               l.ID(),
		Title:            l.Title(),
		Description:      l.Description(),
		CreatedAt:        l.CreatedAt().Format(timeFormat),
		IsPublished:      l.IsPublished(),
		ShortDescription: l.ShortDescription(),
		CreatedAtAgo:     l.CreatedAtAgo(now),
	}
	if price, ok := l.Price(); ok {
		resp.Price = &price
	}
	return resp
}

func ToCheeseListingResponses(items []*domain.CheeseListing, now time.Time) []CheeseListingResponse {
	out := make([]CheeseListingResponse, 0, len(items))
	for _, l := range items {
		out = append(out, ToCheeseListingResponse(l, now))
	}
	return out
}

// IRI returns the resource path of a listing, e.g. /api/cheeses/7.
func IRI(id int64) string {
	return ResourcePath + "/" + strconv.FormatInt(id, 10)
}
