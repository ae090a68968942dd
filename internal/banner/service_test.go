package banner

import (
	"context"
	"testing"

	"grosirku-be/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetAll(ctx context.Context, onlyActive bool) ([]Banner, error) {
	args := m.Called(ctx, onlyActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Banner), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id int64) (*Banner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Banner), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, input NewBanner) (*Banner, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Banner), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, input UpdateBanner) (*Banner, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Banner), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		input := NewBanner{Title: "Weekend Sale", IsActive: true}
		repo.On("Create", ctx, input).Return(&Banner{ID: 1, Title: "Weekend Sale"}, nil)

		b, err := svc.Create(ctx, input)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), b.ID)
		repo.AssertExpectations(t)
	})

	t.Run("Empty title", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		_, err := svc.Create(ctx, NewBanner{Title: "   "})
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
		repo.AssertNotCalled(t, "Create")
	})
}

func TestService_List(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)
	ctx := context.Background()

	repo.On("GetAll", ctx, true).Return([]Banner{{ID: 1}, {ID: 2}}, nil)

	banners, err := svc.List(ctx, false)
	assert.NoError(t, err)
	assert.Len(t, banners, 2)
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing banner", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetByID", ctx, int64(7)).Return(nil, nil)

		_, err := svc.Delete(ctx, 7)
		assert.ErrorIs(t, err, ErrNotFound)
		repo.AssertNotCalled(t, "Delete")
	})

	t.Run("Returns deleted record", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		img := "uploads/banners/sale.png"
		repo.On("GetByID", ctx, int64(7)).Return(&Banner{ID: 7, ImagePath: &img}, nil)
		repo.On("Delete", ctx, int64(7)).Return(nil)

		b, err := svc.Delete(ctx, 7)
		assert.NoError(t, err)
		assert.Equal(t, &img, b.ImagePath)
	})
}
