package services

import (
	"context"

	"github.com/FiscalFlow/fiscal_flow_app/internal/core/domain"
	"github.com/FiscalFlow/fiscal_flow_app/internal/dto"
	"github.com/shopspring/decimal"
)

// StockAdjusterSvc applies signed stock deltas for fiscal operations.
type StockAdjusterSvc interface {
	// AdjustStock decreases stock for sales and increases it for purchases,
	// returning the resulting quantity. Fails with apperrors.ErrNotFound when
	// the product does not exist.
	AdjustStock(ctx context.Context, productID string, quantity decimal.Decimal, kind domain.OperationKind, userID string) (decimal.Decimal, error)
}

// ProductSvcFacade combines product CRUD with stock adjustment.
type ProductSvcFacade interface {
	StockAdjusterSvc

	// GetProductByID retrieves a specific product by its ID.
	GetProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// CreateProduct persists a new product.
	CreateProduct(ctx context.Context, req dto.CreateProductRequest, creatorUserID string) (*domain.Product, error)

	// ListProducts retrieves a paginated list of products.
	ListProducts(ctx context.Context, params dto.ListProductsParams) ([]domain.Product, error)
}
