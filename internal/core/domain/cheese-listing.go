package domain

import (
	"time"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
)

const shortDescriptionLength = 40

// CheeseListing is a cheese offered for sale.
//
// The title is fixed at construction. The identifier is zero until a
// repository persists the listing and assigns it.
type CheeseListing struct {
	id          int64
	title       string
	description string
	price       *int
	createdAt   time.Time
	isPublished bool
}

// NewCheeseListing creates an unpublished listing stamped with the current time.
func NewCheeseListing(title string) *CheeseListing {
	return &CheeseListing{
		title:     title,
		createdAt: time.Now(),
	}
}

// RestoreCheeseListing rebuilds a persisted listing from storage.
func RestoreCheeseListing(id int64, title, description string, price int, createdAt time.Time, isPublished bool) *CheeseListing {
	return &CheeseListing{
		id:          id,
		title:       title,
		description: description,
		price:       &price,
		createdAt:   createdAt,
		isPublished: isPublished,
	}
}

func (c *CheeseListing) ID() int64 {
	return c.id
}

// Persisted reports whether an identifier has been assigned.
func (c *CheeseListing) Persisted() bool {
	return c.id != 0
}

// AssignID is called by repositories once the record is stored.
func (c *CheeseListing) AssignID(id int64) error {
	if c.id != 0 {
		return ErrIdentifierAssigned
	}
	if id <= 0 {
		return ErrInvalidIdentifier
	}
	c.id = id
	return nil
}

func (c *CheeseListing) Title() string {
	return c.title
}

func (c *CheeseListing) Description() string {
	return c.description
}

// ShortDescription returns the description cut to 40 characters with a
// trailing ellipsis when it is longer.
func (c *CheeseListing) ShortDescription() string {
	if utf8.RuneCountInString(c.description) < shortDescriptionLength {
		return c.description
	}
	return string([]rune(c.description)[:shortDescriptionLength]) + "..."
}

func (c *CheeseListing) SetDescription(description string) *CheeseListing {
	c.description = description
	return c
}

// SetTextDescription stores free text with line-break markup inserted before
// every newline. The stored value is what every reader sees afterwards.
func (c *CheeseListing) SetTextDescription(description string) *CheeseListing {
	c.description = NewlinesToBreaks(description)
	return c
}

// Price returns the price in minor units and whether one was set.
func (c *CheeseListing) Price() (int, bool) {
	if c.price == nil {
		return 0, false
	}
	return *c.price, true
}

func (c *CheeseListing) SetPrice(price int) *CheeseListing {
	c.price = &price
	return c
}

func (c *CheeseListing) CreatedAt() time.Time {
	return c.createdAt
}

// CreatedAtAgo describes the age of the listing relative to now, e.g. "3 days ago".
func (c *CheeseListing) CreatedAtAgo(now time.Time) string {
	return humanize.RelTime(c.createdAt, now, "ago", "from now")
}

func (c *CheeseListing) SetCreatedAt(createdAt time.Time) *CheeseListing {
	c.createdAt = createdAt
	return c
}

func (c *CheeseListing) IsPublished() bool {
	return c.isPublished
}

func (c *CheeseListing) SetIsPublished(isPublished bool) *CheeseListing {
	c.isPublished = isPublished
	return c
}
