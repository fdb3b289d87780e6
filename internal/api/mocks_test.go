package api

import (
	"context"
	"time"

	"ayushyaa-be/internal/admin"
	"ayushyaa-be/internal/blob"
	"ayushyaa-be/internal/catalog"
	"ayushyaa-be/internal/category"
	"ayushyaa-be/internal/product"

	"github.com/stretchr/testify/mock"
)

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) Load(ctx context.Context) ([]*catalog.ProductWithVariants, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*catalog.ProductWithVariants), args.Error(1)
}

func (m *MockCatalogService) LoadAll(ctx context.Context) ([]*catalog.ProductWithVariants, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*catalog.ProductWithVariants), args.Error(1)
}

func (m *MockCatalogService) Categories(ctx context.Context) ([]*category.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*category.Category), args.Error(1)
}

func (m *MockCatalogService) Stats() catalog.Stats {
	return m.Called().Get(0).(catalog.Stats)
}

type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) CreateProduct(ctx context.Context, p admin.ProductInput, v admin.VariantInput, image *blob.Upload) (*admin.ProductRecord, error) {
	args := m.Called(ctx, p, v, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*admin.ProductRecord), args.Error(1)
}

func (m *MockAdminService) UpdateProduct(ctx context.Context, id string, p admin.ProductInput, v admin.VariantInput, image *blob.Upload) (*admin.ProductRecord, error) {
	args := m.Called(ctx, id, p, v, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*admin.ProductRecord), args.Error(1)
}

func (m *MockAdminService) DeleteProduct(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockAdminService) ToggleActive(ctx context.Context, p *product.Product) (*product.Product, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockAdminService) GetProduct(ctx context.Context, id string) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockAdminService) CreateCategory(ctx context.Context, in admin.CategoryInput) (*category.Category, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*category.Category), args.Error(1)
}

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) List(ctx context.Context, opts product.ListOptions) ([]*product.Product, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(ctx context.Context, opts product.GetProductOptions) (*product.Product, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, p *product.Product) (*product.Product, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, p *product.Product) (*product.Product, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) SetActive(ctx context.Context, productID string, active bool, updatedAt time.Time) error {
	return m.Called(ctx, productID, active, updatedAt).Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, productID string) error {
	return m.Called(ctx, productID).Error(0)
}

func (m *MockProductRepository) ListVariants(ctx context.Context, productID string) ([]*product.Variant, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Variant), args.Error(1)
}

func (m *MockProductRepository) CreateVariant(ctx context.Context, v *product.Variant) (*product.Variant, error) {
	args := m.Called(ctx, v)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Variant), args.Error(1)
}

func (m *MockProductRepository) UpdateVariant(ctx context.Context, v *product.Variant) (*product.Variant, error) {
	args := m.Called(ctx, v)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Variant), args.Error(1)
}

func (m *MockProductRepository) DeleteVariant(ctx context.Context, productID, variantID string) error {
	return m.Called(ctx, productID, variantID).Error(0)
}
