package product

import (
	"context"
	"errors"
	"fmt"

	"ayushyaa-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ListVariants returns every variant stored under productID, active or not.
func (r *repository) ListVariants(ctx context.Context, productID string) ([]*Variant, error) {
	log := logger.FromCtx(ctx).With(zap.String("product_id", productID))

	rows, err := r.db.QueryContext(ctx, `
		SELECT v.id, v.product_id, v.weight, v.price, v.stock, v.is_active
		FROM product_variants v
		WHERE v.product_id = $1
	`, productID)
	if err != nil {
		log.Error("DB query failed ListVariants", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrFailedListVariants, err)
	}
	defer rows.Close()

	variants := []*Variant{}
	for rows.Next() {
		var v Variant
		if err := rows.Scan(&v.ID, &v.ProductID, &v.Weight, &v.Price, &v.Stock, &v.IsActive); err != nil {
			log.Error("Row scan failed", zap.Error(err))
			return nil, fmt.Errorf("%w: %v", ErrFailedListVariants, err)
		}
		variants = append(variants, &v)
	}

	if err := rows.Err(); err != nil {
		log.Error("Rows iteration failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrFailedListVariants, err)
	}

	return variants, nil
}

func (r *repository) CreateVariant(ctx context.Context, v *Variant) (*Variant, error) {
	created := *v
	created.ID = uuid.New().String()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO product_variants (id, product_id, weight, price, stock, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, created.ID, created.ProductID, created.Weight, created.Price, created.Stock, created.IsActive)
	if err != nil {
		logger.FromCtx(ctx).Error("CreateVariant DB query failed",
			zap.String("product_id", created.ProductID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", ErrFailedWriteVariant, err)
	}

	return &created, nil
}

// UpdateVariant rewrites weight, price and stock; the active flag is left alone.
func (r *repository) UpdateVariant(ctx context.Context, v *Variant) (*Variant, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE product_variants
		SET weight = $1, price = $2, stock = $3
		WHERE id = $4 AND product_id = $5
	`, v.Weight, v.Price, v.Stock, v.ID, v.ProductID)
	if err := checkAffected(res, err, ErrVariantNotFound); err != nil {
		if !errors.Is(err, ErrVariantNotFound) {
			logger.FromCtx(ctx).Error("UpdateVariant DB query failed",
				zap.String("variant_id", v.ID),
				zap.Error(err),
			)
			return nil, fmt.Errorf("%w: %v", ErrFailedWriteVariant, err)
		}
		return nil, err
	}

	updated := *v
	return &updated, nil
}

func (r *repository) DeleteVariant(ctx context.Context, productID, variantID string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM product_variants WHERE id = $1 AND product_id = $2`,
		variantID, productID,
	)
	if err := checkAffected(res, err, ErrVariantNotFound); err != nil {
		if !errors.Is(err, ErrVariantNotFound) {
			logger.FromCtx(ctx).Error("DeleteVariant DB query failed",
				zap.String("variant_id", variantID),
				zap.Error(err),
			)
			return fmt.Errorf("%w: %v", ErrFailedWriteVariant, err)
		}
		return err
	}
	return nil
}
