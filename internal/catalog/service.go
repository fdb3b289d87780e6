package catalog

import (
	"context"
	"errors"
	"fmt"

	"ayushyaa-be/internal/category"
	"ayushyaa-be/internal/logger"
	"ayushyaa-be/internal/metrics"
	"ayushyaa-be/internal/product"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const defaultVariantFetchLimit = 8

// Service aggregates categories, products and variants into the storefront view.
type Service interface {
	// Load returns active products joined with category and variants.
	Load(ctx context.Context) ([]*ProductWithVariants, error)
	// LoadAll is Load without the active filter, for the admin listing.
	LoadAll(ctx context.Context) ([]*ProductWithVariants, error)
	// Categories lists categories, seeding the defaults when none exist.
	Categories(ctx context.Context) ([]*category.Category, error)
	Stats() Stats
}

type service struct {
	categoryRepo category.Repository
	productRepo  product.Repository
	fetchLimit   int

	loads        metrics.Counter
	readFailures metrics.Counter
	seeds        metrics.Counter
	loadLatency  metrics.Latency
}

func NewService(categoryRepo category.Repository, productRepo product.Repository) Service {
	return &service{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		fetchLimit:   defaultVariantFetchLimit,
	}
}

func (s *service) Load(ctx context.Context) ([]*ProductWithVariants, error) {
	return s.load(ctx, "Load", true)
}

func (s *service) LoadAll(ctx context.Context) ([]*ProductWithVariants, error) {
	return s.load(ctx, "LoadAll", false)
}

func (s *service) Stats() Stats {
	return Stats{
		Loads:        s.loads.Load(),
		ReadFailures: s.readFailures.Load(),
		Seeds:        s.seeds.Load(),
		LoadLatency:  s.loadLatency.Snapshot(),
	}
}

func (s *service) load(ctx context.Context, method string, onlyActive bool) ([]*ProductWithVariants, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", method),
	)
	timer := metrics.StartTimer()
	s.loads.Inc()

	items, err := s.aggregate(ctx, onlyActive)
	if err != nil {
		s.readFailures.Inc()
		log.Error("catalog load failed",
			zap.Error(err),
			zap.Duration("duration", timer.Duration()),
		)
		return []*ProductWithVariants{}, fmt.Errorf("%w: %w", ErrReadFailure, err)
	}

	log.Info("catalog load success",
		zap.Int("count", len(items)),
		zap.Duration("duration", timer.ObserveInto(&s.loadLatency)),
	)
	return items, nil
}

func (s *service) aggregate(ctx context.Context, onlyActive bool) ([]*ProductWithVariants, error) {
	// 1. Categories (seeded on first use)
	categories, err := s.Categories(ctx)
	if err != nil {
		return nil, err
	}

	// 2. id -> category with Uncategorized defaults
	byID := lo.KeyBy(lo.Map(categories, func(c *category.Category, _ int) category.Category {
		return c.WithDefaults()
	}), func(c category.Category) string {
		return c.ID
	})

	// 3. Products
	products, err := s.productRepo.List(ctx, product.ListOptions{OnlyActive: onlyActive})
	if err != nil {
		return nil, err
	}

	// 4. Join; variant fetches fan out but results keep store order
	out := make([]*ProductWithVariants, len(products))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.fetchLimit)

	for i, p := range products {
		g.Go(func() error {
			variants, err := s.productRepo.ListVariants(gctx, p.ID)
			if err != nil {
				return fmt.Errorf("variants of %s: %w", p.ID, err)
			}
			out[i] = &ProductWithVariants{
				Product:  *p,
				Category: resolveCategory(byID, p.CategoryID),
				Variants: variants,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

func resolveCategory(byID map[string]category.Category, id string) category.Category {
	if id == "" {
		return category.Placeholder()
	}
	if c, ok := byID[id]; ok {
		return c
	}
	return category.Placeholder()
}

func (s *service) Categories(ctx context.Context) ([]*category.Category, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(categories) > 0 {
		return categories, nil
	}

	// Two first loads may race; whichever insert loses on the slug is skipped.
	log := logger.FromCtx(ctx)
	log.Info("category collection empty, seeding defaults")
	for _, c := range category.Defaults {
		if _, err := s.categoryRepo.Create(ctx, &c); err != nil {
			if errors.Is(err, category.ErrDuplicateSlug) {
				log.Info("default category already seeded", zap.String("slug", c.Slug))
				continue
			}
			log.Error("seeding category failed", zap.String("slug", c.Slug), zap.Error(err))
			return nil, err
		}
	}
	s.seeds.Inc()

	return s.categoryRepo.List(ctx)
}
