package pickup

import (
	"context"
	"database/sql"

	"grosirku-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	GetAll(ctx context.Context) ([]Slot, error)
	GetByID(ctx context.Context, id int64) (*Slot, error)
	Count(ctx context.Context) (int, error)
	Insert(ctx context.Context, slots []Slot) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetAll(ctx context.Context) ([]Slot, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, start_time, end_time
		FROM pickup_time_slots
		ORDER BY start_time
	`)
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to query pickup slots", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var slots []Slot
	for rows.Next() {
		var s Slot
		if err := rows.Scan(&s.ID, &s.Start, &s.End); err != nil {
			return nil, err
		}
		slots = append(slots, s)
	}

	return slots, rows.Err()
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Slot, error) {
	var s Slot
	err := r.db.QueryRowContext(ctx, `
		SELECT id, start_time, end_time FROM pickup_time_slots WHERE id = $1
	`, id).Scan(&s.ID, &s.Start, &s.End)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM pickup_time_slots`).Scan(&count)
	return count, err
}

func (r *repository) Insert(ctx context.Context, slots []Slot) error {
	for _, s := range slots {
		_, err := r.db.ExecContext(ctx, `
			INSERT INTO pickup_time_slots (start_time, end_time)
			VALUES ($1, $2)
			ON CONFLICT (start_time) DO NOTHING
		`, s.Start, s.End)
		if err != nil {
			return err
		}
	}
	return nil
}
