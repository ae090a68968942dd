package order

import (
	"context"
	"strings"
	"time"

	"grosirku-be/internal/apperr"
	"grosirku-be/internal/cart"
	"grosirku-be/internal/logger"
	"grosirku-be/internal/metrics"
	"grosirku-be/internal/pickup"
	"grosirku-be/internal/product"

	"go.uber.org/zap"
)

const (
	maxNameLength  = 200
	maxPhoneLength = 20
)

// Notifier is told about successfully placed orders. Implementations
// must be best-effort: they may not fail the checkout.
type Notifier interface {
	OrderPlaced(ctx context.Context, o *Order)
}

type Service interface {
	PlaceOrder(ctx context.Context, sessionID string, input PlaceOrderInput) (*Order, error)
	Get(ctx context.Context, id int64) (*Order, error)
	List(ctx context.Context) ([]Order, error)
	AdvanceStatus(ctx context.Context, id int64, next Status) (*Order, error)
	Cancel(ctx context.Context, id int64) (*Order, error)
	Delete(ctx context.Context, id int64) error
	DashboardStats(ctx context.Context) (*DashboardStats, error)
}

type service struct {
	repo        Repository
	cartSvc     cart.Service
	productRepo product.Repository
	pickupSvc   pickup.Service
	notifier    Notifier
}

func NewService(
	repo Repository,
	cartSvc cart.Service,
	productRepo product.Repository,
	pickupSvc pickup.Service,
	notifier Notifier,
) Service {
	return &service{
		repo:        repo,
		cartSvc:     cartSvc,
		productRepo: productRepo,
		pickupSvc:   pickupSvc,
		notifier:    notifier,
	}
}

// PlaceOrder converts the session's cart into a persisted order. Cart
// contents are copied, prices frozen from the live product at this
// instant; the cart is cleared only after the order is committed.
func (s *service) PlaceOrder(ctx context.Context, sessionID string, input PlaceOrderInput) (*Order, error) {
	log := logger.FromCtx(ctx)

	if err := validateCustomer(input); err != nil {
		return nil, err
	}

	lines, err := s.cartSvc.Lines(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	slot, err := s.resolveSlot(ctx, input.PickupDate, input.SlotID)
	if err != nil {
		return nil, err
	}

	pickupDay, err := time.ParseInLocation(pickup.DateLayout, input.PickupDate, time.Local)
	if err != nil {
		return nil, pickup.ErrInvalidDate
	}
	pickupTime, err := slot.StartOn(pickupDay)
	if err != nil {
		return nil, err
	}

	o := &Order{
		CustomerName:  strings.TrimSpace(input.CustomerName),
		CustomerEmail: input.CustomerEmail,
		CustomerPhone: strings.TrimSpace(input.CustomerPhone),
		Notes:         input.Notes,
		PickupTime:    pickupTime,
		PickupSlot:    slot.Start + " - " + slot.End,
		Status:        StatusPending,
	}

	for _, line := range lines {
		p, err := s.productRepo.GetByID(ctx, line.ProductID, true)
		if err != nil {
			return nil, err
		}
		if p == nil || p.QuantityAvailable < line.Quantity {
			return nil, ErrProductUnavailable
		}

		o.Items = append(o.Items, Item{
			ProductID:   p.ID,
			ProductName: p.Name,
			Quantity:    line.Quantity,
			UnitPrice:   p.Price,
			UnitType:    p.UnitType,
		})
		o.TotalAmount += p.Price * line.Quantity
	}

	if err := s.repo.CreateOrderTx(ctx, o); err != nil {
		return nil, err
	}

	if err := s.cartSvc.Clear(ctx, sessionID); err != nil {
		// The order is already committed; an expiring cart key is
		// recoverable, a lost order is not.
		log.Warn("failed to clear cart after checkout",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
	}

	s.notifier.OrderPlaced(ctx, o)
	metrics.OrdersPlaced.Inc()

	log.Info("order placed",
		zap.Int64("order_id", o.ID),
		zap.Float64("total", o.TotalAmount),
		zap.Int("items", len(o.Items)),
	)

	return o, nil
}

func (s *service) resolveSlot(ctx context.Context, date string, slotID int64) (*pickup.Slot, error) {
	available, err := s.pickupSvc.AvailableSlots(ctx, date)
	if err != nil {
		return nil, err
	}

	for _, slot := range available {
		if slot.ID == slotID {
			return &slot, nil
		}
	}
	return nil, ErrInvalidSlot
}

func (s *service) Get(ctx context.Context, id int64) (*Order, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrOrderNotFound
	}
	return o, nil
}

func (s *service) List(ctx context.Context) ([]Order, error) {
	return s.repo.List(ctx)
}

// AdvanceStatus moves an order forward through pending → ready →
// completed. Cancellation has its own path because it restores stock.
func (s *service) AdvanceStatus(ctx context.Context, id int64, next Status) (*Order, error) {
	if !next.Valid() {
		return nil, apperr.Validation("unknown order status")
	}
	if next == StatusCancelled {
		return s.Cancel(ctx, id)
	}

	o, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !o.Status.CanTransitionTo(next) {
		return nil, ErrInvalidTransition
	}

	if err := s.repo.UpdateStatus(ctx, id, next); err != nil {
		return nil, err
	}
	o.Status = next

	logger.FromCtx(ctx).Info("order status advanced",
		zap.Int64("order_id", id),
		zap.String("status", string(next)),
	)

	return o, nil
}

// Cancel is legal from pending or ready and restores each line's
// quantity to its product.
func (s *service) Cancel(ctx context.Context, id int64) (*Order, error) {
	o, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !o.Status.CanTransitionTo(StatusCancelled) {
		return nil, ErrInvalidTransition
	}

	if err := s.repo.CancelTx(ctx, o); err != nil {
		return nil, err
	}
	o.Status = StatusCancelled
	metrics.OrdersCancelled.Inc()

	logger.FromCtx(ctx).Info("order cancelled", zap.Int64("order_id", id))
	return o, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, err
	}

	stats.TotalProducts, err = s.productRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	return stats, nil
}

func validateCustomer(input PlaceOrderInput) error {
	name := strings.TrimSpace(input.CustomerName)
	phone := strings.TrimSpace(input.CustomerPhone)

	if name == "" {
		return apperr.Validation("customer name is required")
	}
	if len(name) > maxNameLength {
		return apperr.Validation("customer name is too long")
	}
	if phone == "" {
		return apperr.Validation("customer phone is required")
	}
	if len(phone) > maxPhoneLength {
		return apperr.Validation("customer phone is too long")
	}
	return nil
}
