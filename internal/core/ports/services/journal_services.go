package services

import (
	"context"

	"github.com/FiscalFlow/fiscal_flow_app/internal/core/domain"
	"github.com/FiscalFlow/fiscal_flow_app/internal/dto"
)

// JournalEntryReaderSvc defines read operations for journal entry data
type JournalEntryReaderSvc interface {
	// GetEntryByID retrieves a journal entry header with its lines populated.
	GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// ListEntries retrieves a paginated list of journal entries.
	ListEntries(ctx context.Context, params dto.ListEntriesParams) ([]domain.JournalEntry, error)
}

// JournalEntryWriterSvc defines write operations for journal entry data
type JournalEntryWriterSvc interface {
	// CreateEntry persists a new journal entry header.
	CreateEntry(ctx context.Context, req dto.CreateJournalEntryRequest, creatorUserID string) (*domain.JournalEntry, error)
}

// ProposedEntrySvc confirms batches of human/AI-proposed entries, resolving
// account names and persisting each entry with its lines.
type ProposedEntrySvc interface {
	// ConfirmProposedEntries processes the batch sequentially. A failure
	// aborts only the failing entry; entries confirmed before it stand. The
	// returned slice holds the entries committed before any error.
	ConfirmProposedEntries(ctx context.Context, proposed []dto.ProposedEntry, creatorUserID string) ([]domain.JournalEntry, error)
}

// JournalEntrySvcFacade combines all journal-entry-related service interfaces
type JournalEntrySvcFacade interface {
	JournalEntryReaderSvc
	JournalEntryWriterSvc
	ProposedEntrySvc
}
