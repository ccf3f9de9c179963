package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/FiscalFlow/fiscal_flow_app/internal/apperrors"
	"github.com/FiscalFlow/fiscal_flow_app/internal/core/domain"
	portsrepo "github.com/FiscalFlow/fiscal_flow_app/internal/core/ports/repositories"
	portssvc "github.com/FiscalFlow/fiscal_flow_app/internal/core/ports/services"
	"github.com/FiscalFlow/fiscal_flow_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// productService implements the ProductSvcFacade interface
type productService struct {
	BaseService
	productRepo portsrepo.ProductRepositoryFacade
}

// NewProductService creates a new product service
func NewProductService(repo portsrepo.ProductRepositoryFacade) portssvc.ProductSvcFacade {
	return &productService{productRepo: repo}
}

// Ensure productService implements the ProductSvcFacade interface
var _ portssvc.ProductSvcFacade = (*productService)(nil)

// AdjustStock applies the operation's quantity to the product counter: sales
// deplete, purchases replenish. The delta is applied atomically at the
// storage layer, so concurrent adjustments for the same product serialize
// there instead of racing through a read-modify-write here.
func (s *productService) AdjustStock(ctx context.Context, productID string, quantity decimal.Decimal, kind domain.OperationKind, userID string) (decimal.Decimal, error) {
	delta := quantity
	if kind == domain.Sale {
		delta = delta.Neg()
	}

	newStock, err := s.productRepo.AdjustStockQuantity(ctx, productID, delta, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Stock adjustment requested for unknown product",
				slog.String("product_id", productID))
			return decimal.Zero, fmt.Errorf("%w: product %s", apperrors.ErrNotFound, productID)
		}
		s.LogError(ctx, err, "Failed to adjust stock",
			slog.String("product_id", productID))
		return decimal.Zero, fmt.Errorf("failed to adjust stock for product %s: %w", productID, err)
	}

	s.LogDebug(ctx, "Stock adjusted",
		slog.String("product_id", productID),
		slog.String("delta", delta.String()),
		slog.String("new_stock", newStock.String()))
	return newStock, nil
}

func (s *productService) GetProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find product by ID",
				slog.String("product_id", productID))
		}
		return nil, err
	}
	return product, nil
}

func (s *productService) CreateProduct(ctx context.Context, req dto.CreateProductRequest, creatorUserID string) (*domain.Product, error) {
	now := time.Now()
	product := domain.Product{
		ProductID:     uuid.NewString(),
		Name:          req.Name,
		StockQuantity: req.StockQuantity,
		UnitCost:      req.UnitCost,
		IsActive:      true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		s.LogError(ctx, err, "Failed to save product",
			slog.String("product_id", product.ProductID))
		return nil, err
	}

	s.LogInfo(ctx, "Product created",
		slog.String("product_id", product.ProductID),
		slog.String("name", product.Name))
	return &product, nil
}

func (s *productService) ListProducts(ctx context.Context, params dto.ListProductsParams) ([]domain.Product, error) {
	products, err := s.productRepo.ListProducts(ctx, params.Limit, params.Offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list products",
			slog.Int("limit", params.Limit),
			slog.Int("offset", params.Offset))
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	if products == nil {
		return []domain.Product{}, nil
	}
	return products, nil
}
