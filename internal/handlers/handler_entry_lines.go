package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/FiscalFlow/fiscal_flow_app/internal/apperrors"
	portssvc "github.com/FiscalFlow/fiscal_flow_app/internal/core/ports/services"
	"github.com/FiscalFlow/fiscal_flow_app/internal/dto"
	"github.com/FiscalFlow/fiscal_flow_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// entryLineHandler handles HTTP requests for fiscal entry line generation.
type entryLineHandler struct {
	fiscalService portssvc.FiscalEntrySvcFacade
}

// newEntryLineHandler creates a new entryLineHandler.
func newEntryLineHandler(fs portssvc.FiscalEntrySvcFacade) *entryLineHandler {
	return &entryLineHandler{fiscalService: fs}
}

// registerEntryLineRoutes registers routes related to entry lines.
func registerEntryLineRoutes(rg *gin.RouterGroup, fiscalService portssvc.FiscalEntrySvcFacade) {
	h := newEntryLineHandler(fiscalService)

	entryLines := rg.Group("/entry-lines")
	{
		entryLines.POST("", h.createEntryLines)
		entryLines.GET("/:entryID", h.getEntryLines)
	}
}

// createEntryLines runs the full fiscal flow for an existing journal entry:
// compute the cascade, resolve role accounts, generate balanced lines, persist
// them, and adjust product stock when the operation carries product linkage.
func (h *entryLineHandler) createEntryLines(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateEntryLinesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateEntryLines", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Acting user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("entry_id", req.EntryID), slog.String("operation_kind", string(req.OperationKind)))
	logger.Info("Received request to create entry lines")

	lines, err := h.fiscalService.CreateFiscalLines(c.Request.Context(), req, creatorUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Dependency not found creating entry lines", slog.String("error", err.Error()))
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrAccountResolution):
			logger.Warn("Validation error creating entry lines", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to create entry lines in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create entry lines"})
		}
		return
	}

	logger.Info("Entry lines created successfully", slog.Int("line_count", len(lines)))
	c.JSON(http.StatusCreated, dto.ToEntryLineResponses(lines))
}

// getEntryLines retrieves the persisted lines of a journal entry.
func (h *entryLineHandler) getEntryLines(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("entryID")

	logger = logger.With(slog.String("entry_id", entryID))
	logger.Info("Received request to get entry lines")

	lines, err := h.fiscalService.GetEntryLines(c.Request.Context(), entryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Journal entry not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Journal entry not found"})
		} else {
			logger.Error("Failed to get entry lines from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve entry lines"})
		}
		return
	}

	logger.Info("Entry lines retrieved successfully", slog.Int("line_count", len(lines)))
	c.JSON(http.StatusOK, dto.ToEntryLineResponses(lines))
}
