package services

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cheese-api/internal/core/domain"
	"cheese-api/internal/core/ports/output"
	"cheese-api/internal/testutil"
)

func ptr[T any](v T) *T { return &v }

func TestCheeseListingService_Create(t *testing.T) {
	repo := new(testutil.MockCheeseListingRepo)
	svc := NewCheeseListingService(repo, 10)

	var created *domain.CheeseListing
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.CheeseListing")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*domain.CheeseListing)
			_ = created.AssignID(1)
		}).
		Return(nil)
	stored := domain.RestoreCheeseListing(1, "Brie", "Soft<br />\nand creamy", 1250, time.Now(), false)
	repo.On("GetByID", mock.Anything, int64(1)).Return(stored, nil)

	listing, err := svc.Create(context.Background(), CreateCheeseListingInput{
		Title:       "Brie",
		Description: ptr("Soft\nand creamy"),
		Price:       ptr(1250),
	})
	require.NoError(t, err)
	assert.Same(t, stored, listing)

	require.NotNil(t, created)
	assert.Equal(t, int64(1), created.ID())
	assert.Equal(t, "Brie", created.Title())
	assert.Equal(t, "Soft<br />\nand creamy", created.Description())
	assert.False(t, created.IsPublished())
	assert.WithinDuration(t, time.Now(), created.CreatedAt(), time.Second)
	repo.AssertExpectations(t)
}

func TestCheeseListingService_Create_OptionalFields(t *testing.T) {
	repo := new(testutil.MockCheeseListingRepo)
	svc := NewCheeseListingService(repo, 10)

	createdAt := time.Date(2023, 11, 5, 9, 30, 0, 0, time.UTC)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(l *domain.CheeseListing) bool {
		return l.IsPublished() && l.CreatedAt().Equal(createdAt)
	})).Run(testutil.AssignIDOnCreate(5)).Return(nil)
	repo.On("GetByID", mock.Anything, int64(5)).
		Return(domain.RestoreCheeseListing(5, "Brie", "x", 1, createdAt, true), nil)

	_, err := svc.Create(context.Background(), CreateCheeseListingInput{
		Title:       "Brie",
		Description: ptr("x"),
		Price:       ptr(1),
		CreatedAt:   &createdAt,
		IsPublished: ptr(true),
	})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCheeseListingService_Create_ValidationFails(t *testing.T) {
	repo := new(testutil.MockCheeseListingRepo)
	svc := NewCheeseListingService(repo, 10)

	_, err := svc.Create(context.Background(), CreateCheeseListingInput{Title: "B"})

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Len(t, ve.Violations, 3)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCheeseListingService_Create_RepoError(t *testing.T) {
	repo := new(testutil.MockCheeseListingRepo)
	svc := NewCheeseListingService(repo, 10)

	dbErr := errors.New("connection refused")
	repo.On("Create", mock.Anything, mock.Anything).Return(dbErr)

	_, err := svc.Create(context.Background(), CreateCheeseListingInput{
		Title: "Brie", Description: ptr("x"), Price: ptr(1),
	})
	assert.ErrorIs(t, err, dbErr)
}

func TestCheeseListingService_Create_IDNotAssigned(t *testing.T) {
	repo := new(testutil.MockCheeseListingRepo)
	svc := NewCheeseListingService(repo, 10)

	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	_, err := svc.Create(context.Background(), CreateCheeseListingInput{
		Title: "Brie", Description: ptr("x"), Price: ptr(1),
	})
	assert.ErrorIs(t, err, domain.ErrNotPersisted)
}

func TestCheeseListingService_Get_NotFound(t *testing.T) {
	repo := new(testutil.MockCheeseListingRepo)
	svc := NewCheeseListingService(repo, 10)

	repo.On("GetByID", mock.Anything, int64(9)).Return(nil, domain.ErrCheeseListingNotFound)

	_, err := svc.Get(context.Background(), 9)
	assert.ErrorIs(t, err, domain.ErrCheeseListingNotFound)
}

func TestCheeseListingService_List_DefaultsToFirstPage(t *testing.T) {
	repo := new(testutil.MockCheeseListingRepo)
	svc := NewCheeseListingService(repo, 0)

	expected := ports.ListFilter{Title: "br", Limit: DefaultItemsPerPage, Offset: 0}
	items := []*domain.CheeseListing{domain.RestoreCheeseListing(1, "Brie", "x", 1, time.Now(), false)}
	repo.On("List", mock.Anything, expected).Return(items, 23, nil)

	page, err := svc.List(context.Background(), ListQuery{Title: "br"})
	require.NoError(t, err)

	assert.Equal(t, 1, page.CurrentPage)
	assert.Equal(t, 23, page.TotalItems)
	assert.Equal(t, 3, page.LastPage())
	assert.Len(t, page.Items, 1)
}

func TestCheeseListingService_List_Offset(t *testing.T) {
	repo := new(testutil.MockCheeseListingRepo)
	svc := NewCheeseListingService(repo, 10)

	price := ports.PriceRange{Gte: ptr(100)}
	expected := ports.ListFilter{Price: price, Limit: 10, Offset: 20}
	repo.On("List", mock.Anything, expected).Return(nil, 0, nil)

	page, err := svc.List(context.Background(), ListQuery{Price: price, Page: 3})
	require.NoError(t, err)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
	assert.Equal(t, 1, page.LastPage())
}

func TestCheeseListingService_List_InvalidPage(t *testing.T) {
	repo := new(testutil.MockCheeseListingRepo)
	svc := NewCheeseListingService(repo, 10)

	_, err := svc.List(context.Background(), ListQuery{Page: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidPage)
}

func TestCheeseListingService_List_PageOffsetOverflow(t *testing.T) {
	repo := new(testutil.MockCheeseListingRepo)
	svc := NewCheeseListingService(repo, 10)

	for _, page := range []int{1_000_000_000_000_000_000, math.MaxInt} {
		_, err := svc.List(context.Background(), ListQuery{Page: page})
		assert.ErrorIs(t, err, domain.ErrInvalidPage, "page %d", page)
	}
	repo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestCheeseListingService_List_HighestPage(t *testing.T) {
	repo := new(testutil.MockCheeseListingRepo)
	svc := NewCheeseListingService(repo, 10)

	last := math.MaxInt/10 + 1
	expected := ports.ListFilter{Limit: 10, Offset: (last - 1) * 10}
	repo.On("List", mock.Anything, expected).Return(nil, 3, nil)

	page, err := svc.List(context.Background(), ListQuery{Page: last})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, expected.Offset, 0)
	assert.Empty(t, page.Items)
}

func TestCheeseListingService_Update(t *testing.T) {
	repo := new(testutil.MockCheeseListingRepo)
	svc := NewCheeseListingService(repo, 10)

	existing := domain.RestoreCheeseListing(3, "Brie", "old", 100, time.Now(), false)
	repo.On("GetByID", mock.Anything, int64(3)).Return(existing, nil)
	repo.On("Update", mock.Anything, existing).Return(nil)

	updated, err := svc.Update(context.Background(), 3, UpdateCheeseListingInput{
		Description: ptr("new\nline"),
		IsPublished: ptr(true),
	})
	require.NoError(t, err)

	assert.Equal(t, "Brie", updated.Title())
	assert.Equal(t, "new<br />\nline", updated.Description())
	assert.True(t, updated.IsPublished())
	price, _ := updated.Price()
	assert.Equal(t, 100, price)
	repo.AssertExpectations(t)
}

func TestCheeseListingService_Update_ValidationFails(t *testing.T) {
	repo := new(testutil.MockCheeseListingRepo)
	svc := NewCheeseListingService(repo, 10)

	existing := domain.RestoreCheeseListing(3, "Brie", "old", 100, time.Now(), false)
	repo.On("GetByID", mock.Anything, int64(3)).Return(existing, nil)

	_, err := svc.Update(context.Background(), 3, UpdateCheeseListingInput{Description: ptr("")})
	assert.True(t, domain.IsValidationError(err))
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCheeseListingService_Update_NotFound(t *testing.T) {
	repo := new(testutil.MockCheeseListingRepo)
	svc := NewCheeseListingService(repo, 10)

	repo.On("GetByID", mock.Anything, int64(3)).Return(nil, domain.ErrCheeseListingNotFound)

	_, err := svc.Update(context.Background(), 3, UpdateCheeseListingInput{})
	assert.ErrorIs(t, err, domain.ErrCheeseListingNotFound)
}

func TestPage_LastPage(t *testing.T) {
	assert.Equal(t, 1, Page{TotalItems: 0, ItemsPerPage: 10}.LastPage())
	assert.Equal(t, 1, Page{TotalItems: 10, ItemsPerPage: 10}.LastPage())
	assert.Equal(t, 2, Page{TotalItems: 11, ItemsPerPage: 10}.LastPage())
}
