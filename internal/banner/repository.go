package banner

import (
	"context"
	"database/sql"

	"grosirku-be/internal/apperr"
	"grosirku-be/internal/logger"

	"go.uber.org/zap"
)

var ErrNotFound = apperr.NotFound("banner not found")

type Repository interface {
	GetAll(ctx context.Context, onlyActive bool) ([]Banner, error)
	GetByID(ctx context.Context, id int64) (*Banner, error)
	Create(ctx context.Context, input NewBanner) (*Banner, error)
	Update(ctx context.Context, input UpdateBanner) (*Banner, error)
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const bannerColumns = `id, title, description, image_path, is_active, created_at`

func scanBanner(row interface{ Scan(...any) error }) (*Banner, error) {
	var b Banner
	err := row.Scan(&b.ID, &b.Title, &b.Description, &b.ImagePath, &b.IsActive, &b.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repository) GetAll(ctx context.Context, onlyActive bool) ([]Banner, error) {
	query := `SELECT ` + bannerColumns + ` FROM offer_banners`
	if onlyActive {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to query banners", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var banners []Banner
	for rows.Next() {
		b, err := scanBanner(rows)
		if err != nil {
			return nil, err
		}
		banners = append(banners, *b)
	}

	return banners, rows.Err()
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Banner, error) {
	b, err := scanBanner(r.db.QueryRowContext(ctx,
		`SELECT `+bannerColumns+` FROM offer_banners WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *repository) Create(ctx context.Context, input NewBanner) (*Banner, error) {
	return scanBanner(r.db.QueryRowContext(ctx, `
		INSERT INTO offer_banners (title, description, image_path, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING `+bannerColumns,
		input.Title, input.Description, input.ImagePath, input.IsActive,
	))
}

func (r *repository) Update(ctx context.Context, input UpdateBanner) (*Banner, error) {
	b, err := scanBanner(r.db.QueryRowContext(ctx, `
		UPDATE offer_banners
		SET title = $1, description = $2,
			image_path = COALESCE($3, image_path), is_active = $4
		WHERE id = $5
		RETURNING `+bannerColumns,
		input.Title, input.Description, input.ImagePath, input.IsActive, input.ID,
	))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM offer_banners WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
