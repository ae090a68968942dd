package seller

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) FindByUsername(ctx context.Context, username string) (*Seller, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Seller), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, username, passwordHash string) (*Seller, error) {
	args := m.Called(ctx, username, passwordHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Seller), args.Error(1)
}

func (m *MockRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	hash, err := HashPassword("admin123")
	require.NoError(t, err)

	t.Run("Valid credentials", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("FindByUsername", ctx, "admin").
			Return(&Seller{ID: 1, Username: "admin", PasswordHash: hash}, nil)

		svc := NewService(repo, testSecret)
		token, sel, err := svc.Login(ctx, "admin", "admin123")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, "admin", sel.Username)

		claims, err := ParseJWT(testSecret, token)
		require.NoError(t, err)
		assert.Equal(t, int64(1), claims.SellerID)
	})

	t.Run("Unknown username", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("FindByUsername", ctx, "ghost").Return(nil, nil)

		svc := NewService(repo, testSecret)
		_, _, err := svc.Login(ctx, "ghost", "admin123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Wrong password", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("FindByUsername", ctx, "admin").
			Return(&Seller{ID: 1, Username: "admin", PasswordHash: hash}, nil)

		svc := NewService(repo, testSecret)
		_, _, err := svc.Login(ctx, "admin", "nope")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Blank username", func(t *testing.T) {
		repo := new(MockRepository)

		svc := NewService(repo, testSecret)
		_, _, err := svc.Login(ctx, "  ", "admin123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		repo.AssertNotCalled(t, "FindByUsername")
	})
}

func TestEnsureDefault(t *testing.T) {
	ctx := context.Background()

	t.Run("Seeds empty table", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("Count", ctx).Return(0, nil)
		repo.On("Create", ctx, "admin", mock.AnythingOfType("string")).
			Return(&Seller{ID: 1, Username: "admin"}, nil)

		svc := NewService(repo, testSecret)
		require.NoError(t, svc.EnsureDefault(ctx, "admin", "admin123"))
		repo.AssertCalled(t, "Create", ctx, "admin", mock.Anything)
	})

	t.Run("Skips when sellers exist", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("Count", ctx).Return(1, nil)

		svc := NewService(repo, testSecret)
		require.NoError(t, svc.EnsureDefault(ctx, "admin", "admin123"))
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("Rejects short default password", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("Count", ctx).Return(0, nil)

		svc := NewService(repo, testSecret)
		assert.Error(t, svc.EnsureDefault(ctx, "admin", "short"))
		repo.AssertNotCalled(t, "Create")
	})
}
