package repositories

import (
	"context"

	"github.com/FiscalFlow/fiscal_flow_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ProductReader defines read operations for product data
type ProductReader interface {
	// FindProductByID retrieves a specific product by its unique identifier.
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// ListProducts retrieves a paginated list of products.
	ListProducts(ctx context.Context, limit int, offset int) ([]domain.Product, error)
}

// ProductWriter defines write operations for product data
type ProductWriter interface {
	// SaveProduct persists a new product.
	SaveProduct(ctx context.Context, product domain.Product) error

	// AdjustStockQuantity applies a signed delta to a product's stock counter
	// as a single atomic statement and returns the resulting quantity.
	// Returns apperrors.ErrNotFound when the product does not exist.
	AdjustStockQuantity(ctx context.Context, productID string, delta decimal.Decimal, userID string) (decimal.Decimal, error)
}

// ProductRepositoryFacade combines all product-related repository interfaces
type ProductRepositoryFacade interface {
	ProductReader
	ProductWriter
}
