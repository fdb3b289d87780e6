package category

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"ayushyaa-be/internal/logger"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	List(ctx context.Context) ([]*Category, error)
	Create(ctx context.Context, c *Category) (*Category, error)
}

type repository struct {
	db  *sql.DB
	now func() time.Time
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db, now: time.Now}
}

func (r *repository) List(ctx context.Context) ([]*Category, error) {
	log := logger.FromCtx(ctx)

	query := `
		SELECT
			c.id,
			COALESCE(c.name, ''),
			COALESCE(c.slug, ''),
			COALESCE(c.description, ''),
			c.created_at
		FROM categories c
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("DB query failed ListCategories", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrFailedListCategories, err)
	}
	defer rows.Close()

	categories := []*Category{}
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.CreatedAt); err != nil {
			log.Error("Row scan failed", zap.Error(err))
			return nil, fmt.Errorf("%w: %v", ErrFailedListCategories, err)
		}
		categories = append(categories, &c)
	}

	if err := rows.Err(); err != nil {
		log.Error("Rows iteration failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrFailedListCategories, err)
	}

	return categories, nil
}

func (r *repository) Create(ctx context.Context, c *Category) (*Category, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("category_name", c.Name),
		zap.String("category_slug", c.Slug),
	)

	if c.Name == "" {
		log.Warn("CreateCategory validation failed: empty name")
		return nil, ErrEmptyName
	}
	if c.Slug == "" {
		log.Warn("CreateCategory validation failed: empty slug")
		return nil, ErrEmptySlug
	}

	created := *c
	created.ID = uuid.New().String()
	created.CreatedAt = r.now().UTC()

	query := `
		INSERT INTO categories (id, name, slug, description, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	if _, err := r.db.ExecContext(ctx, query,
		created.ID, created.Name, created.Slug, created.Description, created.CreatedAt,
	); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == PgUniqueViolation {
			log.Info("CreateCategory slug taken")
			return nil, fmt.Errorf("%w: %v", ErrDuplicateSlug, err)
		}
		log.Error("CreateCategory DB query failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrFailedCreateCategory, err)
	}

	log.Info("CreateCategory success", zap.String("category_id", created.ID))
	return &created, nil
}
