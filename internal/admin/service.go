package admin

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ayushyaa-be/internal/blob"
	"ayushyaa-be/internal/category"
	"ayushyaa-be/internal/logger"
	"ayushyaa-be/internal/product"
	"ayushyaa-be/internal/utils"

	"go.uber.org/zap"
)

// Service is the only write path for categories, products and variants.
// Writes are sequential and never rolled back: an upload followed by a failed
// record write leaves the blob behind.
type Service interface {
	CreateProduct(ctx context.Context, p ProductInput, v VariantInput, image *blob.Upload) (*ProductRecord, error)
	// UpdateProduct edits the first variant if one exists; it never creates one.
	UpdateProduct(ctx context.Context, id string, p ProductInput, v VariantInput, image *blob.Upload) (*ProductRecord, error)
	// DeleteProduct removes every variant before the product itself.
	DeleteProduct(ctx context.Context, id string) error
	ToggleActive(ctx context.Context, p *product.Product) (*product.Product, error)
	GetProduct(ctx context.Context, id string) (*product.Product, error)
	CreateCategory(ctx context.Context, in CategoryInput) (*category.Category, error)
}

type service struct {
	productRepo  product.Repository
	categoryRepo category.Repository
	blobs        blob.Store
	now          func() time.Time
}

func NewService(productRepo product.Repository, categoryRepo category.Repository, blobs blob.Store) Service {
	return &service{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		blobs:        blobs,
		now:          time.Now,
	}
}

func (s *service) CreateProduct(ctx context.Context, in ProductInput, vin VariantInput, image *blob.Upload) (*ProductRecord, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateProduct"),
	)
	log.Info("started")

	in = normalizeProduct(in)
	if err := validateProduct(in, vin); err != nil {
		log.Warn("validation failed", zap.Error(err))
		return nil, err
	}
	if image == nil && in.ImageURL == "" {
		return nil, ErrMissingImage
	}

	imageURL, err := s.resolveImage(ctx, in.Name, in.ImageURL, image)
	if err != nil {
		log.Error("failed", zap.Error(err))
		return nil, err
	}

	created, err := s.productRepo.Create(ctx, &product.Product{
		CategoryID:  in.CategoryID,
		Name:        in.Name,
		Slug:        in.Slug,
		Description: in.Description,
		ImageURL:    imageURL,
		BasePrice:   in.BasePrice,
		IsActive:    in.IsActive,
	})
	if err != nil {
		log.Error("failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}

	variant, err := s.productRepo.CreateVariant(ctx, &product.Variant{
		ProductID: created.ID,
		Weight:    strings.TrimSpace(vin.Weight),
		Price:     vin.Price,
		Stock:     vin.Stock,
		IsActive:  true,
	})
	if err != nil {
		log.Error("variant write failed, product left without variant",
			zap.String("product_id", created.ID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}

	log.Info("success", zap.String("product_id", created.ID))
	return &ProductRecord{Product: *created, Variants: []*product.Variant{variant}}, nil
}

func (s *service) UpdateProduct(ctx context.Context, id string, in ProductInput, vin VariantInput, image *blob.Upload) (*ProductRecord, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "UpdateProduct"),
		zap.String("product_id", id),
	)
	log.Info("started")

	in = normalizeProduct(in)
	if err := validateProduct(in, vin); err != nil {
		log.Warn("validation failed", zap.Error(err))
		return nil, err
	}

	existing, err := s.productRepo.GetByID(ctx, product.GetProductOptions{ProductID: id})
	if err != nil {
		log.Error("failed", zap.Error(err))
		return nil, err
	}

	imageURL := existing.ImageURL
	if in.ImageURL != "" {
		imageURL = in.ImageURL
	}
	imageURL, err = s.resolveImage(ctx, in.Name, imageURL, image)
	if err != nil {
		log.Error("failed", zap.Error(err))
		return nil, err
	}

	updated, err := s.productRepo.Update(ctx, &product.Product{
		ID:          existing.ID,
		CategoryID:  in.CategoryID,
		Name:        in.Name,
		Slug:        in.Slug,
		Description: in.Description,
		ImageURL:    imageURL,
		BasePrice:   in.BasePrice,
		IsActive:    in.IsActive,
		CreatedAt:   existing.CreatedAt,
	})
	if err != nil {
		log.Error("failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}

	variants, err := s.productRepo.ListVariants(ctx, id)
	if err != nil {
		log.Error("failed to list variants", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}

	if len(variants) > 0 {
		first := *variants[0]
		first.Weight = strings.TrimSpace(vin.Weight)
		first.Price = vin.Price
		first.Stock = vin.Stock

		written, err := s.productRepo.UpdateVariant(ctx, &first)
		if err != nil {
			log.Error("variant write failed", zap.String("variant_id", first.ID), zap.Error(err))
			return nil, fmt.Errorf("%w: %w", ErrWriteFailure, err)
		}
		variants[0] = written
	} else {
		log.Warn("product has no variant, variant fields ignored")
	}

	log.Info("success")
	return &ProductRecord{Product: *updated, Variants: variants}, nil
}

func (s *service) DeleteProduct(ctx context.Context, id string) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "DeleteProduct"),
		zap.String("product_id", id),
	)
	log.Info("started")

	variants, err := s.productRepo.ListVariants(ctx, id)
	if err != nil {
		log.Error("failed to list variants", zap.Error(err))
		return fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}

	for _, v := range variants {
		if err := s.productRepo.DeleteVariant(ctx, id, v.ID); err != nil {
			log.Error("failed to delete variant", zap.String("variant_id", v.ID), zap.Error(err))
			return fmt.Errorf("%w: %w", ErrWriteFailure, err)
		}
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		log.Error("failed", zap.Error(err))
		return fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}

	log.Info("success", zap.Int("variants_deleted", len(variants)))
	return nil
}

func (s *service) ToggleActive(ctx context.Context, p *product.Product) (*product.Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "ToggleActive"),
		zap.String("product_id", p.ID),
	)

	toggled := *p
	toggled.IsActive = !p.IsActive
	toggled.UpdatedAt = s.now().UTC()

	if err := s.productRepo.SetActive(ctx, p.ID, toggled.IsActive, toggled.UpdatedAt); err != nil {
		log.Error("failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}

	log.Info("success", zap.Bool("is_active", toggled.IsActive))
	return &toggled, nil
}

func (s *service) GetProduct(ctx context.Context, id string) (*product.Product, error) {
	return s.productRepo.GetByID(ctx, product.GetProductOptions{ProductID: id})
}

func (s *service) CreateCategory(ctx context.Context, in CategoryInput) (*category.Category, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateCategory"),
	)

	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	in.Slug = strings.TrimSpace(in.Slug)
	if in.Slug == "" {
		in.Slug = utils.Slugify(in.Name)
	}
	if err := validateCategory(in); err != nil {
		return nil, err
	}

	created, err := s.categoryRepo.Create(ctx, &category.Category{
		Name:        in.Name,
		Slug:        in.Slug,
		Description: in.Description,
	})
	if err != nil {
		log.Error("failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}

	log.Info("success", zap.String("category_id", created.ID))
	return created, nil
}

// resolveImage uploads image when present, otherwise keeps fallback.
func (s *service) resolveImage(ctx context.Context, name, fallback string, image *blob.Upload) (string, error) {
	if image == nil {
		return fallback, nil
	}
	u := *image
	if u.Filename == "" {
		u.Filename = name
	}
	url, err := s.blobs.Upload(ctx, u)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUploadFailed, err)
	}
	return url, nil
}
