package seller

import (
	"context"
	"strings"

	"grosirku-be/internal/apperr"
	"grosirku-be/internal/logger"

	"go.uber.org/zap"
)

const minPasswordLength = 8

var ErrInvalidCredentials = apperr.Unauthorized("invalid username or password")

type Service interface {
	Login(ctx context.Context, username, password string) (string, *Seller, error)
	EnsureDefault(ctx context.Context, username, password string) error
}

type service struct {
	repo      Repository
	jwtSecret string
}

func NewService(repo Repository, jwtSecret string) Service {
	return &service{repo: repo, jwtSecret: jwtSecret}
}

// Login checks credentials against the sellers table and issues a
// signed token. Username lookup failures and password mismatches are
// indistinguishable to the caller.
func (s *service) Login(ctx context.Context, username, password string) (string, *Seller, error) {
	log := logger.FromCtx(ctx)

	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", nil, ErrInvalidCredentials
	}

	sel, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return "", nil, err
	}
	if sel == nil {
		log.Info("login rejected, unknown username", zap.String("username", username))
		return "", nil, ErrInvalidCredentials
	}

	if !CheckPasswordHash(password, sel.PasswordHash) {
		log.Info("login rejected, wrong password", zap.String("username", username))
		return "", nil, ErrInvalidCredentials
	}

	token, err := GenerateJWT(s.jwtSecret, sel)
	if err != nil {
		log.Error("failed to generate jwt", zap.Error(err))
		return "", nil, err
	}

	log.Info("seller logged in", zap.String("username", username))
	return token, sel, nil
}

// EnsureDefault seeds the initial seller account when the table is
// empty so a fresh deployment is reachable.
func (s *service) EnsureDefault(ctx context.Context, username, password string) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if len(password) < minPasswordLength {
		return apperr.Validation("default seller password is too short")
	}

	hash, err := HashPassword(password)
	if err != nil {
		return err
	}

	if _, err := s.repo.Create(ctx, username, hash); err != nil {
		return err
	}

	logger.FromCtx(ctx).Info("seeded default seller account",
		zap.String("username", username),
	)
	return nil
}
