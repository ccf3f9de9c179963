package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/FiscalFlow/fiscal_flow_app/internal/apperrors"
	"github.com/FiscalFlow/fiscal_flow_app/internal/core/domain"
	portssvc "github.com/FiscalFlow/fiscal_flow_app/internal/core/ports/services"
	"github.com/FiscalFlow/fiscal_flow_app/internal/core/services"
	"github.com/FiscalFlow/fiscal_flow_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ProductServiceTestSuite struct {
	suite.Suite
	mockRepo *MockProductRepository
	service  portssvc.ProductSvcFacade
}

func (suite *ProductServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockProductRepository)
	suite.service = services.NewProductService(suite.mockRepo)
}

func (suite *ProductServiceTestSuite) TestAdjustStock_SaleDecreases() {
	ctx := context.Background()
	productID := uuid.NewString()
	userID := uuid.NewString()

	suite.mockRepo.On("AdjustStockQuantity", ctx, productID, mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(dec("-3"))
	}), userID).Return(dec("7"), nil).Once()

	newStock, err := suite.service.AdjustStock(ctx, productID, dec("3"), domain.Sale, userID)

	suite.Require().NoError(err)
	suite.True(newStock.Equal(dec("7")))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProductServiceTestSuite) TestAdjustStock_PurchaseIncreases() {
	ctx := context.Background()
	productID := uuid.NewString()
	userID := uuid.NewString()

	suite.mockRepo.On("AdjustStockQuantity", ctx, productID, mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(dec("5"))
	}), userID).Return(dec("15"), nil).Once()

	newStock, err := suite.service.AdjustStock(ctx, productID, dec("5"), domain.Purchase, userID)

	suite.Require().NoError(err)
	suite.True(newStock.Equal(dec("15")))
}

func (suite *ProductServiceTestSuite) TestAdjustStock_ProductNotFound() {
	ctx := context.Background()
	productID := uuid.NewString()

	suite.mockRepo.On("AdjustStockQuantity", ctx, productID, mock.Anything, mock.Anything).
		Return(decimal.Zero, apperrors.ErrNotFound).Once()

	_, err := suite.service.AdjustStock(ctx, productID, dec("1"), domain.Sale, uuid.NewString())

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrNotFound))
	suite.Contains(err.Error(), productID)
}

func (suite *ProductServiceTestSuite) TestCreateProduct_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	req := dto.CreateProductRequest{
		Name:          "Parafuso M8",
		StockQuantity: dec("100"),
		UnitCost:      dec("0.35"),
	}

	suite.mockRepo.On("SaveProduct", ctx, mock.AnythingOfType("domain.Product")).Return(nil).Once()

	product, err := suite.service.CreateProduct(ctx, req, userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(product)
	suite.NotEmpty(product.ProductID)
	suite.True(product.IsActive)
	suite.Equal(userID, product.CreatedBy)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestProductServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProductServiceTestSuite))
}
