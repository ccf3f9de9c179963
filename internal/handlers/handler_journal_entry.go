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

// journalEntryHandler handles HTTP requests related to journal entries.
type journalEntryHandler struct {
	journalService portssvc.JournalEntrySvcFacade
}

// newJournalEntryHandler creates a new journalEntryHandler.
func newJournalEntryHandler(js portssvc.JournalEntrySvcFacade) *journalEntryHandler {
	return &journalEntryHandler{journalService: js}
}

// registerJournalEntryRoutes registers routes related to journal entries.
func registerJournalEntryRoutes(rg *gin.RouterGroup, journalService portssvc.JournalEntrySvcFacade) {
	h := newJournalEntryHandler(journalService)

	entries := rg.Group("/journal-entries")
	{
		entries.POST("", h.createEntry)
		entries.GET("", h.listEntries)
		entries.GET("/:entryID", h.getEntry)
		entries.POST("/confirm", h.confirmProposedEntries)
	}
}

// createEntry persists a new journal entry header. Lines are attached later
// through the entry-lines flow.
func (h *journalEntryHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Acting user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("creator_user_id", creatorUserID))
	logger.Info("Received request to create journal entry", slog.String("description", req.Description))

	entry, err := h.journalService.CreateEntry(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating journal entry", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create journal entry in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create journal entry"})
		}
		return
	}

	logger.Info("Journal entry created successfully", slog.String("entry_id", entry.EntryID))
	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(entry))
}

// getEntry retrieves a journal entry header together with its lines.
func (h *journalEntryHandler) getEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("entryID")

	logger = logger.With(slog.String("entry_id", entryID))
	logger.Info("Received request to get journal entry")

	entry, err := h.journalService.GetEntryByID(c.Request.Context(), entryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Journal entry not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Journal entry not found"})
		} else {
			logger.Error("Failed to get journal entry from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve journal entry"})
		}
		return
	}

	logger.Info("Journal entry retrieved successfully")
	c.JSON(http.StatusOK, dto.GetJournalEntryResponse{
		Entry: dto.ToJournalEntryResponse(entry),
		Lines: dto.ToEntryLineResponses(entry.Lines),
	})
}

// listEntries retrieves a paginated list of journal entry headers.
func (h *journalEntryHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListEntries", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	logger.Info("Received request to list journal entries", slog.Int("limit", params.Limit), slog.Int("offset", params.Offset))

	entries, err := h.journalService.ListEntries(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list journal entries from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list journal entries"})
		return
	}

	logger.Info("Journal entries listed successfully", slog.Int("count", len(entries)))
	c.JSON(http.StatusOK, dto.ListEntriesResponse{Entries: dto.ToJournalEntryResponses(entries)})
}

// confirmProposedEntries turns a batch of name-addressed proposed entries into
// persisted journal entries. Processing is sequential: a failure aborts the
// batch but entries committed before it stand, and the response reports both
// the committed prefix and the failure.
func (h *journalEntryHandler) confirmProposedEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ConfirmProposedEntriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ConfirmProposedEntries", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Acting user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("creator_user_id", creatorUserID))
	logger.Info("Received request to confirm proposed entries", slog.Int("entry_count", len(req.Entries)))

	confirmed, err := h.journalService.ConfirmProposedEntries(c.Request.Context(), req.Entries, creatorUserID)
	if err != nil {
		resp := dto.ConfirmProposedEntriesResponse{
			Confirmed: dto.ToJournalEntryResponses(confirmed),
			Error:     err.Error(),
		}
		if len(confirmed) > 0 {
			logger.Warn("Proposed entry batch partially confirmed",
				slog.Int("confirmed_count", len(confirmed)),
				slog.String("error", err.Error()),
			)
			c.JSON(http.StatusMultiStatus, resp)
			return
		}
		if errors.Is(err, apperrors.ErrValidation) || errors.Is(err, apperrors.ErrUnbalanced) || errors.Is(err, apperrors.ErrAccountResolution) {
			logger.Warn("Proposed entry batch rejected", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, resp)
			return
		}
		logger.Error("Failed to confirm proposed entries", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, resp)
		return
	}

	logger.Info("Proposed entries confirmed successfully", slog.Int("confirmed_count", len(confirmed)))
	c.JSON(http.StatusCreated, dto.ConfirmProposedEntriesResponse{
		Confirmed: dto.ToJournalEntryResponses(confirmed),
	})
}
