package pickup

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetAll(ctx context.Context) ([]Slot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Slot), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id int64) (*Slot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Slot), args.Error(1)
}

func (m *MockRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) Insert(ctx context.Context, slots []Slot) error {
	args := m.Called(ctx, slots)
	return args.Error(0)
}

func seededSlots() []Slot {
	slots := DefaultSlots()
	for i := range slots {
		slots[i].ID = int64(i + 1)
	}
	return slots
}

// fixedService pins the clock for deterministic slot filtering.
func fixedService(repo Repository, now time.Time) *service {
	return &service{repo: repo, now: func() time.Time { return now }}
}

func TestDefaultSlots(t *testing.T) {
	slots := DefaultSlots()

	require.Len(t, slots, 9)
	assert.Equal(t, "09:00", slots[0].Start)
	assert.Equal(t, "10:00", slots[0].End)
	assert.Equal(t, "17:00", slots[8].Start)
	assert.Equal(t, "18:00", slots[8].End)
}

func TestAvailableSlots(t *testing.T) {
	ctx := context.Background()

	t.Run("Future date returns all slots", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetAll", ctx).Return(seededSlots(), nil)

		svc := fixedService(repo, time.Date(2026, 9, 1, 23, 0, 0, 0, time.UTC))

		slots, err := svc.AvailableSlots(ctx, "2099-01-01")
		assert.NoError(t, err)
		assert.Len(t, slots, 9)
	})

	t.Run("Today filters elapsed starts", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetAll", ctx).Return(seededSlots(), nil)

		// 12:30: the 09, 10, 11 and 12 o'clock windows have started.
		svc := fixedService(repo, time.Date(2026, 9, 1, 12, 30, 0, 0, time.UTC))

		slots, err := svc.AvailableSlots(ctx, "2026-09-01")
		assert.NoError(t, err)
		require.Len(t, slots, 5)
		assert.Equal(t, "13:00", slots[0].Start)
	})

	t.Run("Today before opening returns all", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetAll", ctx).Return(seededSlots(), nil)

		svc := fixedService(repo, time.Date(2026, 9, 1, 7, 0, 0, 0, time.UTC))

		slots, err := svc.AvailableSlots(ctx, "2026-09-01")
		assert.NoError(t, err)
		assert.Len(t, slots, 9)
	})

	t.Run("Past date returns none", func(t *testing.T) {
		repo := new(MockRepository)
		svc := fixedService(repo, time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))

		slots, err := svc.AvailableSlots(ctx, "2026-08-31")
		assert.NoError(t, err)
		assert.Empty(t, slots)
		repo.AssertNotCalled(t, "GetAll")
	})

	t.Run("Malformed date", func(t *testing.T) {
		repo := new(MockRepository)
		svc := fixedService(repo, time.Now())

		_, err := svc.AvailableSlots(ctx, "01/01/2099")
		assert.ErrorIs(t, err, ErrInvalidDate)
	})
}

func TestSuggestedDate(t *testing.T) {
	ctx := context.Background()

	t.Run("Today while slots remain", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetAll", ctx).Return(seededSlots(), nil)

		svc := fixedService(repo, time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC))

		date, err := svc.SuggestedDate(ctx)
		assert.NoError(t, err)
		assert.Equal(t, "2026-09-01", date)
	})

	t.Run("Tomorrow after the last start", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetAll", ctx).Return(seededSlots(), nil)

		svc := fixedService(repo, time.Date(2026, 9, 1, 17, 30, 0, 0, time.UTC))

		date, err := svc.SuggestedDate(ctx)
		assert.NoError(t, err)
		assert.Equal(t, "2026-09-02", date)
	})
}

func TestEnsureSeeded(t *testing.T) {
	ctx := context.Background()

	t.Run("Seeds empty store", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("Count", ctx).Return(0, nil)
		repo.On("Insert", ctx, DefaultSlots()).Return(nil)

		svc := NewService(repo)
		assert.NoError(t, svc.EnsureSeeded(ctx))
		repo.AssertExpectations(t)
	})

	t.Run("Skips populated store", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("Count", ctx).Return(9, nil)

		svc := NewService(repo)
		assert.NoError(t, svc.EnsureSeeded(ctx))
		repo.AssertNotCalled(t, "Insert")
	})
}
