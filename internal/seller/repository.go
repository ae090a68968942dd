package seller

import (
	"context"
	"database/sql"

	"grosirku-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	FindByUsername(ctx context.Context, username string) (*Seller, error)
	Create(ctx context.Context, username, passwordHash string) (*Seller, error)
	Count(ctx context.Context) (int, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByUsername(ctx context.Context, username string) (*Seller, error) {
	var s Seller
	err := r.db.QueryRowContext(ctx, `
		SELECT id, username, password_hash, created_at
		FROM sellers
		WHERE username = $1
	`, username).Scan(&s.ID, &s.Username, &s.PasswordHash, &s.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to query seller",
			zap.String("username", username),
			zap.Error(err),
		)
		return nil, err
	}
	return &s, nil
}

func (r *repository) Create(ctx context.Context, username, passwordHash string) (*Seller, error) {
	var s Seller
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO sellers (username, password_hash)
		VALUES ($1, $2)
		RETURNING id, username, password_hash, created_at
	`, username, passwordHash).Scan(&s.ID, &s.Username, &s.PasswordHash, &s.CreatedAt)
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to insert seller",
			zap.String("username", username),
			zap.Error(err),
		)
		return nil, err
	}
	return &s, nil
}

func (r *repository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sellers`).Scan(&count)
	return count, err
}
