package product

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"ayushyaa-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repository interface {
	List(ctx context.Context, opts ListOptions) ([]*Product, error)
	GetByID(ctx context.Context, opts GetProductOptions) (*Product, error)
	Create(ctx context.Context, p *Product) (*Product, error)
	Update(ctx context.Context, p *Product) (*Product, error)
	SetActive(ctx context.Context, productID string, active bool, updatedAt time.Time) error
	Delete(ctx context.Context, productID string) error

	ListVariants(ctx context.Context, productID string) ([]*Variant, error)
	CreateVariant(ctx context.Context, v *Variant) (*Variant, error)
	UpdateVariant(ctx context.Context, v *Variant) (*Variant, error)
	DeleteVariant(ctx context.Context, productID, variantID string) error
}

type repository struct {
	db  *sql.DB
	now func() time.Time
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db, now: time.Now}
}

const productColumns = `
	p.id,
	COALESCE(p.category_id, ''),
	p.name,
	p.slug,
	COALESCE(p.description, ''),
	COALESCE(p.image_url, ''),
	p.base_price,
	p.is_active,
	p.created_at,
	p.updated_at
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(s rowScanner) (*Product, error) {
	var p Product
	err := s.Scan(
		&p.ID,
		&p.CategoryID,
		&p.Name,
		&p.Slug,
		&p.Description,
		&p.ImageURL,
		&p.BasePrice,
		&p.IsActive,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) List(ctx context.Context, opts ListOptions) ([]*Product, error) {
	log := logger.FromCtx(ctx).With(zap.Bool("only_active", opts.OnlyActive))

	query := "SELECT " + productColumns + " FROM products p"
	args := []any{}
	if opts.OnlyActive {
		query += " WHERE p.is_active = $1"
		args = append(args, true)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("DB query failed ListProducts", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrFailedListProducts, err)
	}
	defer rows.Close()

	products := []*Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			log.Error("Row scan failed", zap.Error(err))
			return nil, fmt.Errorf("%w: %v", ErrFailedListProducts, err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		log.Error("Rows iteration failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrFailedListProducts, err)
	}

	return products, nil
}

func (r *repository) GetByID(ctx context.Context, opts GetProductOptions) (*Product, error) {
	query := "SELECT " + productColumns + " FROM products p WHERE p.id = $1"
	args := []any{opts.ProductID}
	if opts.OnlyActive {
		query += " AND p.is_active = $2"
		args = append(args, true)
	}

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		logger.FromCtx(ctx).Error("DB query failed GetProductByID",
			zap.String("product_id", opts.ProductID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", ErrFailedGetProduct, err)
	}

	return p, nil
}

func (r *repository) Create(ctx context.Context, p *Product) (*Product, error) {
	log := logger.FromCtx(ctx).With(zap.String("product_slug", p.Slug))

	created := *p
	created.ID = uuid.New().String()
	now := r.now().UTC()
	created.CreatedAt = now
	created.UpdatedAt = now

	query := `
		INSERT INTO products (
			id, category_id, name, slug, description, image_url,
			base_price, is_active, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.ExecContext(ctx, query,
		created.ID,
		created.CategoryID,
		created.Name,
		created.Slug,
		created.Description,
		created.ImageURL,
		created.BasePrice,
		created.IsActive,
		created.CreatedAt,
		created.UpdatedAt,
	)
	if err != nil {
		log.Error("CreateProduct DB query failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrFailedWriteProduct, err)
	}

	log.Info("CreateProduct success", zap.String("product_id", created.ID))
	return &created, nil
}

func (r *repository) Update(ctx context.Context, p *Product) (*Product, error) {
	log := logger.FromCtx(ctx).With(zap.String("product_id", p.ID))

	updated := *p
	updated.UpdatedAt = r.now().UTC()

	query := `
		UPDATE products
		SET category_id = $1,
			name = $2,
			slug = $3,
			description = $4,
			image_url = $5,
			base_price = $6,
			is_active = $7,
			updated_at = $8
		WHERE id = $9
	`

	res, err := r.db.ExecContext(ctx, query,
		updated.CategoryID,
		updated.Name,
		updated.Slug,
		updated.Description,
		updated.ImageURL,
		updated.BasePrice,
		updated.IsActive,
		updated.UpdatedAt,
		updated.ID,
	)
	if err := checkAffected(res, err, ErrProductNotFound); err != nil {
		if !errors.Is(err, ErrProductNotFound) {
			log.Error("UpdateProduct DB query failed", zap.Error(err))
			return nil, fmt.Errorf("%w: %v", ErrFailedWriteProduct, err)
		}
		return nil, err
	}

	return &updated, nil
}

func (r *repository) SetActive(ctx context.Context, productID string, active bool, updatedAt time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE products SET is_active = $1, updated_at = $2 WHERE id = $3`,
		active, updatedAt.UTC(), productID,
	)
	if err := checkAffected(res, err, ErrProductNotFound); err != nil {
		if !errors.Is(err, ErrProductNotFound) {
			logger.FromCtx(ctx).Error("SetActive DB query failed",
				zap.String("product_id", productID),
				zap.Error(err),
			)
			return fmt.Errorf("%w: %v", ErrFailedWriteProduct, err)
		}
		return err
	}
	return nil
}

// Delete removes the product row only. Variants must already be gone; the
// foreign key on product_variants rejects the delete otherwise.
func (r *repository) Delete(ctx context.Context, productID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, productID)
	if err := checkAffected(res, err, ErrProductNotFound); err != nil {
		if !errors.Is(err, ErrProductNotFound) {
			logger.FromCtx(ctx).Error("DeleteProduct DB query failed",
				zap.String("product_id", productID),
				zap.Error(err),
			)
			return fmt.Errorf("%w: %v", ErrFailedWriteProduct, err)
		}
		return err
	}
	return nil
}

// checkAffected turns a zero-row write into notFound.
func checkAffected(res sql.Result, err error, notFound error) error {
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound
	}
	return nil
}
