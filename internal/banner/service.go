package banner

import (
	"context"
	"strings"

	"grosirku-be/internal/apperr"
	"grosirku-be/internal/logger"

	"go.uber.org/zap"
)

const maxTitleLength = 200

type Service interface {
	List(ctx context.Context, includeInactive bool) ([]Banner, error)
	Get(ctx context.Context, id int64) (*Banner, error)
	Create(ctx context.Context, input NewBanner) (*Banner, error)
	Update(ctx context.Context, input UpdateBanner) (*Banner, error)
	Delete(ctx context.Context, id int64) (*Banner, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, includeInactive bool) ([]Banner, error) {
	return s.repo.GetAll(ctx, !includeInactive)
}

func (s *service) Get(ctx context.Context, id int64) (*Banner, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrNotFound
	}
	return b, nil
}

func (s *service) Create(ctx context.Context, input NewBanner) (*Banner, error) {
	if err := validateTitle(input.Title); err != nil {
		return nil, err
	}

	b, err := s.repo.Create(ctx, input)
	if err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("banner created",
		zap.Int64("banner_id", b.ID),
		zap.String("title", b.Title),
	)

	return b, nil
}

func (s *service) Update(ctx context.Context, input UpdateBanner) (*Banner, error) {
	if input.ID == 0 {
		return nil, apperr.Validation("banner id is required")
	}
	if err := validateTitle(input.Title); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, input)
}

// Delete removes the banner and returns the deleted record so the
// caller can clean up its stored image.
func (s *service) Delete(ctx context.Context, id int64) (*Banner, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}

	return b, nil
}

func validateTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return apperr.Validation("title cannot be empty")
	}
	if len(title) > maxTitleLength {
		return apperr.Validation("title is too long")
	}
	return nil
}
