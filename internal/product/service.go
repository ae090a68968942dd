package product

import (
	"context"
	"strings"

	"grosirku-be/internal/apperr"
	"grosirku-be/internal/logger"

	"go.uber.org/zap"
)

// Validation limits match the storefront's form constraints.
const (
	MaxNameLength        = 200
	MaxDescriptionLength = 2000
	MaxPrice             = 999999.99
	MaxQuantity          = 999999.99
)

type Service interface {
	List(ctx context.Context, includeInactive bool) ([]Product, error)
	Get(ctx context.Context, id int64) (*Product, error)
	Create(ctx context.Context, input NewProduct) (*Product, error)
	Update(ctx context.Context, input UpdateProduct) (*Product, error)
	Delete(ctx context.Context, id int64) (*Product, error)
	MarkOutOfStock(ctx context.Context, id int64) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, includeInactive bool) ([]Product, error) {
	return s.repo.GetAll(ctx, !includeInactive)
}

func (s *service) Get(ctx context.Context, id int64) (*Product, error) {
	p, err := s.repo.GetByID(ctx, id, true)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}

func (s *service) Create(ctx context.Context, input NewProduct) (*Product, error) {
	if err := validateFields(input.Name, input.Description, input.Price, input.Quantity); err != nil {
		return nil, err
	}
	if input.UnitType == "" {
		input.UnitType = UnitQuantity
	}

	p, err := s.repo.Create(ctx, input)
	if err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("product created",
		zap.Int64("product_id", p.ID),
		zap.String("name", p.Name),
	)

	return p, nil
}

func (s *service) Update(ctx context.Context, input UpdateProduct) (*Product, error) {
	if input.ID == 0 {
		return nil, apperr.Validation("product id is required")
	}
	if err := validateFields(input.Name, input.Description, input.Price, input.Quantity); err != nil {
		return nil, err
	}
	if input.UnitType == "" {
		input.UnitType = UnitQuantity
	}

	return s.repo.Update(ctx, input)
}

// Delete removes the product and returns the deleted record so the
// caller can clean up its stored image.
func (s *service) Delete(ctx context.Context, id int64) (*Product, error) {
	p, err := s.repo.GetByID(ctx, id, false)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("product deleted", zap.Int64("product_id", id))
	return p, nil
}

func (s *service) MarkOutOfStock(ctx context.Context, id int64) error {
	return s.repo.SetQuantity(ctx, id, 0)
}

func validateFields(name, description string, price, quantity float64) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return apperr.Validation("name cannot be empty")
	}
	if len(name) > MaxNameLength {
		return apperr.Validation("name is too long")
	}
	if len(description) > MaxDescriptionLength {
		return apperr.Validation("description is too long")
	}
	if price < 0 || price > MaxPrice {
		return apperr.Validation("price must be between 0 and 999999.99")
	}
	if quantity < 0 || quantity > MaxQuantity {
		return apperr.Validation("quantity must be between 0 and 999999.99")
	}
	return nil
}
