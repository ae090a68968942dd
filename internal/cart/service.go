package cart

import (
	"context"

	"grosirku-be/internal/logger"
	"grosirku-be/internal/product"

	"go.uber.org/zap"
)

// Service defines the business logic for session carts.
type Service interface {
	Add(ctx context.Context, sessionID string, productID int64, quantity float64) (int, error)
	SetQuantity(ctx context.Context, sessionID string, productID int64, quantity float64) error
	Remove(ctx context.Context, sessionID string, productID int64) error
	List(ctx context.Context, sessionID string) ([]ViewItem, error)
	Count(ctx context.Context, sessionID string) (int, error)
	Lines(ctx context.Context, sessionID string) ([]Line, error)
	Clear(ctx context.Context, sessionID string) error
}

type service struct {
	store       Store
	productRepo product.Repository
}

func NewService(store Store, productRepo product.Repository) Service {
	return &service{store: store, productRepo: productRepo}
}

// Add upserts a line, summing with any existing quantity for the same
// product. Returns the resulting line count for the UI badge.
func (s *service) Add(ctx context.Context, sessionID string, productID int64, quantity float64) (int, error) {
	if quantity <= 0 {
		return 0, ErrInvalidQuantity
	}

	p, err := s.productRepo.GetByID(ctx, productID, true)
	if err != nil {
		return 0, err
	}
	if p == nil {
		return 0, product.ErrNotFound
	}

	c, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return 0, err
	}

	finalQty := quantity
	if line := c.find(productID); line != nil {
		finalQty += line.Quantity
	}

	if finalQty > p.QuantityAvailable {
		return 0, ErrInsufficientStock
	}

	if line := c.find(productID); line != nil {
		line.Quantity = finalQty
	} else {
		c.Lines = append(c.Lines, Line{ProductID: productID, Quantity: quantity})
	}

	if err := s.store.Save(ctx, sessionID, c); err != nil {
		return 0, err
	}

	logger.FromCtx(ctx).Debug("cart line added",
		zap.String("session_id", sessionID),
		zap.Int64("product_id", productID),
		zap.Float64("quantity", finalQty),
	)

	return len(c.Lines), nil
}

// SetQuantity replaces a line's quantity; zero removes the line.
func (s *service) SetQuantity(ctx context.Context, sessionID string, productID int64, quantity float64) error {
	if quantity < 0 {
		return ErrInvalidQuantity
	}
	if quantity == 0 {
		return s.Remove(ctx, sessionID, productID)
	}

	p, err := s.productRepo.GetByID(ctx, productID, true)
	if err != nil {
		return err
	}
	if p == nil {
		return product.ErrNotFound
	}
	if quantity > p.QuantityAvailable {
		return ErrInsufficientStock
	}

	c, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return err
	}

	line := c.find(productID)
	if line == nil {
		return ErrLineNotFound
	}
	line.Quantity = quantity

	return s.store.Save(ctx, sessionID, c)
}

func (s *service) Remove(ctx context.Context, sessionID string, productID int64) error {
	c, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return err
	}

	c.remove(productID)
	return s.store.Save(ctx, sessionID, c)
}

// List joins cart lines with live product data. Lines whose product
// has been removed from the catalog are skipped, matching how the
// storefront renders the cart page.
func (s *service) List(ctx context.Context, sessionID string) ([]ViewItem, error) {
	c, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	items := make([]ViewItem, 0, len(c.Lines))
	for _, line := range c.Lines {
		p, err := s.productRepo.GetByID(ctx, line.ProductID, true)
		if err != nil {
			return nil, err
		}
		if p == nil {
			continue
		}

		items = append(items, ViewItem{
			ProductID:   p.ID,
			Name:        p.Name,
			Price:       p.Price,
			Quantity:    line.Quantity,
			Subtotal:    p.Price * line.Quantity,
			ImagePath:   p.ImagePath,
			UnitType:    p.UnitType,
			MaxQuantity: p.QuantityAvailable,
		})
	}

	return items, nil
}

func (s *service) Count(ctx context.Context, sessionID string) (int, error) {
	c, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	return len(c.Lines), nil
}

// Lines returns the raw cart lines, used by checkout to build the
// order snapshot.
func (s *service) Lines(ctx context.Context, sessionID string) ([]Line, error) {
	c, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return c.Lines, nil
}

func (s *service) Clear(ctx context.Context, sessionID string) error {
	return s.store.Clear(ctx, sessionID)
}
