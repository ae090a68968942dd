package product

import (
	"context"
	"database/sql"

	"grosirku-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	GetAll(ctx context.Context, onlyActive bool) ([]Product, error)
	GetByID(ctx context.Context, id int64, onlyActive bool) (*Product, error)
	Create(ctx context.Context, input NewProduct) (*Product, error)
	Update(ctx context.Context, input UpdateProduct) (*Product, error)
	Delete(ctx context.Context, id int64) error
	SetQuantity(ctx context.Context, id int64, quantity float64) error
	Count(ctx context.Context) (int, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const productColumns = `id, name, description, price, original_price,
	quantity_available, unit_type, image_path, is_active, created_at`

func scanProduct(row interface{ Scan(...any) error }) (*Product, error) {
	var p Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.OriginalPrice,
		&p.QuantityAvailable, &p.UnitType, &p.ImagePath, &p.IsActive,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) GetAll(ctx context.Context, onlyActive bool) ([]Product, error) {
	query := `SELECT ` + productColumns + ` FROM products`
	if onlyActive {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}

	return products, rows.Err()
}

func (r *repository) GetByID(ctx context.Context, id int64, onlyActive bool) (*Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	if onlyActive {
		query += ` AND is_active = TRUE`
	}

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *repository) Create(ctx context.Context, input NewProduct) (*Product, error) {
	log := logger.FromCtx(ctx)

	p, err := scanProduct(r.db.QueryRowContext(ctx, `
		INSERT INTO products (name, description, price, original_price,
			quantity_available, unit_type, image_path, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, TRUE)
		RETURNING `+productColumns,
		input.Name, input.Description, input.Price, input.OriginalPrice,
		input.Quantity, input.UnitType, input.ImagePath,
	))
	if err != nil {
		log.Error("db: failed to insert product",
			zap.String("name", input.Name),
			zap.Error(err),
		)
		return nil, err
	}

	return p, nil
}

func (r *repository) Update(ctx context.Context, input UpdateProduct) (*Product, error) {
	p, err := scanProduct(r.db.QueryRowContext(ctx, `
		UPDATE products
		SET name = $1, description = $2, price = $3, original_price = $4,
			quantity_available = $5, unit_type = $6,
			image_path = COALESCE($7, image_path), is_active = $8
		WHERE id = $9
		RETURNING `+productColumns,
		input.Name, input.Description, input.Price, input.OriginalPrice,
		input.Quantity, input.UnitType, input.ImagePath, input.IsActive, input.ID,
	))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
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

func (r *repository) SetQuantity(ctx context.Context, id int64, quantity float64) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE products SET quantity_available = $1 WHERE id = $2
	`, quantity, id)
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

func (r *repository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&count)
	return count, err
}
