package pickup

import (
	"context"
	"time"

	"grosirku-be/internal/apperr"
	"grosirku-be/internal/logger"

	"go.uber.org/zap"
)

const DateLayout = "2006-01-02"

var ErrInvalidDate = apperr.Validation("invalid pickup date")

type Service interface {
	ListSlots(ctx context.Context) ([]Slot, error)
	AvailableSlots(ctx context.Context, date string) ([]Slot, error)
	SuggestedDate(ctx context.Context) (string, error)
	EnsureSeeded(ctx context.Context) error
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) ListSlots(ctx context.Context) ([]Slot, error) {
	return s.repo.GetAll(ctx)
}

// AvailableSlots returns the selectable windows for a date: all of
// them for a future date, only those whose start has not elapsed for
// today, none for a past date. There is no per-slot capacity cap.
func (s *service) AvailableSlots(ctx context.Context, date string) ([]Slot, error) {
	now := s.now()

	day, err := time.ParseInLocation(DateLayout, date, now.Location())
	if err != nil {
		return nil, ErrInvalidDate
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if day.Before(today) {
		return []Slot{}, nil
	}

	slots, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if day.After(today) {
		return slots, nil
	}

	available := make([]Slot, 0, len(slots))
	for _, slot := range slots {
		start, err := slot.StartOn(day)
		if err != nil {
			return nil, err
		}
		if start.After(now) {
			available = append(available, slot)
		}
	}

	return available, nil
}

// SuggestedDate returns today while at least one slot remains,
// otherwise tomorrow.
func (s *service) SuggestedDate(ctx context.Context) (string, error) {
	now := s.now()
	today := now.Format(DateLayout)

	slots, err := s.AvailableSlots(ctx, today)
	if err != nil {
		return "", err
	}
	if len(slots) > 0 {
		return today, nil
	}

	return now.AddDate(0, 0, 1).Format(DateLayout), nil
}

// EnsureSeeded writes the daily template into the store when it is
// empty. Ran once at startup.
func (s *service) EnsureSeeded(ctx context.Context) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	slots := DefaultSlots()
	if err := s.repo.Insert(ctx, slots); err != nil {
		return err
	}

	logger.FromCtx(ctx).Info("pickup slots seeded", zap.Int("count", len(slots)))
	return nil
}
