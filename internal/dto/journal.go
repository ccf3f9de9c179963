package dto

import (
	"time"

	"github.com/FiscalFlow/fiscal_flow_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateJournalEntryRequest defines the data needed to create a journal entry header.
type CreateJournalEntryRequest struct {
	EntryDate   time.Time `json:"entryDate" binding:"required"`
	Description string    `json:"description" binding:"required"`
	Reference   string    `json:"reference"`
}

// JournalEntryResponse defines the data returned for a journal entry header.
type JournalEntryResponse struct {
	EntryID     string             `json:"entryID"`
	EntryDate   time.Time          `json:"entryDate"`
	Description string             `json:"description"`
	Reference   string             `json:"reference,omitempty"`
	Status      domain.EntryStatus `json:"status"`
	CreatedAt   time.Time          `json:"createdAt"`
	CreatedBy   string             `json:"createdBy"`
}

// GetJournalEntryResponse defines the combined response for an entry and its lines.
type GetJournalEntryResponse struct {
	Entry JournalEntryResponse `json:"entry"`
	Lines []EntryLineResponse  `json:"lines"`
}

// ListEntriesParams defines query parameters for listing journal entries.
type ListEntriesParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListEntriesResponse wraps the list of journal entries.
type ListEntriesResponse struct {
	Entries []JournalEntryResponse `json:"entries"`
}

// ProposedLine is one side of a proposed entry, addressed by ledger account name.
type ProposedLine struct {
	Account string          `json:"account" binding:"required"`
	Value   decimal.Decimal `json:"value" binding:"required"`
}

// ProposedEntry is a draft journal entry awaiting confirmation. Accounts are
// referenced by name and created on demand during confirmation.
type ProposedEntry struct {
	EntryDate   time.Time      `json:"entryDate" binding:"required"`
	Description string         `json:"description" binding:"required"`
	Reference   string         `json:"reference"`
	Debits      []ProposedLine `json:"debits" binding:"required,min=1,dive"`
	Credits     []ProposedLine `json:"credits" binding:"required,min=1,dive"`
}

// ConfirmProposedEntriesRequest defines a batch of proposed entries to confirm.
type ConfirmProposedEntriesRequest struct {
	Entries []ProposedEntry `json:"entries" binding:"required,min=1,dive"`
}

// ConfirmProposedEntriesResponse reports which entries were committed. Error is
// set when the batch aborted partway through.
type ConfirmProposedEntriesResponse struct {
	Confirmed []JournalEntryResponse `json:"confirmed"`
	Error     string                 `json:"error,omitempty"`
}

// ToJournalEntryResponse converts a domain.JournalEntry to JournalEntryResponse DTO.
func ToJournalEntryResponse(e *domain.JournalEntry) JournalEntryResponse {
	return JournalEntryResponse{
		EntryID:     e.EntryID,
		EntryDate:   e.EntryDate,
		Description: e.Description,
		Reference:   e.Reference,
		Status:      e.Status,
		CreatedAt:   e.CreatedAt,
		CreatedBy:   e.CreatedBy,
	}
}

// ToJournalEntryResponses converts a slice of domain.JournalEntry to []JournalEntryResponse.
func ToJournalEntryResponses(entries []domain.JournalEntry) []JournalEntryResponse {
	responses := make([]JournalEntryResponse, len(entries))
	for i, e := range entries {
		responses[i] = ToJournalEntryResponse(&e)
	}
	return responses
}
