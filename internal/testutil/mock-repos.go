package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"cheese-api/internal/core/domain"
	"cheese-api/internal/core/ports/output"
)

// MockCheeseListingRepo is a mock of CheeseListingRepository.
type MockCheeseListingRepo struct {
	mock.Mock
}

func (m *MockCheeseListingRepo) Create(ctx context.Context, listing *domain.CheeseListing) error {
	args := m.Called(ctx, listing)
	return args.Error(0)
}

func (m *MockCheeseListingRepo) GetByID(ctx context.Context, id int64) (*domain.CheeseListing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CheeseListing), args.Error(1)
}

func (m *MockCheeseListingRepo) Update(ctx context.Context, listing *domain.CheeseListing) error {
	args := m.Called(ctx, listing)
	return args.Error(0)
}

func (m *MockCheeseListingRepo) List(ctx context.Context, filter ports.ListFilter) ([]*domain.CheeseListing, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.CheeseListing), args.Int(1), args.Error(2)
}

// AssignIDOnCreate returns a mock Run func that assigns id to the created listing.
func AssignIDOnCreate(id int64) func(mock.Arguments) {
	return func(args mock.Arguments) {
		_ = args.Get(1).(*domain.CheeseListing).AssignID(id)
	}
}
