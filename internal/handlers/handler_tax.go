package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/FiscalFlow/fiscal_flow_app/internal/core/ports/services"
	"github.com/FiscalFlow/fiscal_flow_app/internal/dto"
	"github.com/FiscalFlow/fiscal_flow_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// taxHandler handles HTTP requests for standalone tax cascade calculations.
type taxHandler struct {
	calculator portssvc.TaxCalculatorSvc
}

// newTaxHandler creates a new taxHandler.
func newTaxHandler(calculator portssvc.TaxCalculatorSvc) *taxHandler {
	return &taxHandler{calculator: calculator}
}

// registerTaxRoutes registers routes related to tax calculation.
func registerTaxRoutes(rg *gin.RouterGroup, calculator portssvc.TaxCalculatorSvc) {
	h := newTaxHandler(calculator)

	tax := rg.Group("/tax")
	{
		tax.POST("/calculate", h.calculateTaxes)
	}
}

// calculateTaxes runs the fiscal cascade for a single operation and returns
// the per-tax values plus the audit detail trail. No state is touched.
func (h *taxHandler) calculateTaxes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CalculateTaxesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CalculateTaxes", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if req.GrossAmount.IsNegative() {
		logger.Warn("Rejected negative gross amount", slog.String("gross_amount", req.GrossAmount.String()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "grossAmount must not be negative"})
		return
	}

	result := h.calculator.Compute(req.ToFiscalOperation())

	logger.Info("Tax cascade calculated",
		slog.String("operation_kind", string(req.OperationKind)),
		slog.String("final_total_net", result.FinalTotalNet.String()),
	)
	c.JSON(http.StatusOK, dto.ToTaxCascadeResponse(result))
}
