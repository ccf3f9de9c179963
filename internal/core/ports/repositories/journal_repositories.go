package repositories

import (
	"context"
	"time"

	"github.com/FiscalFlow/fiscal_flow_app/internal/core/domain"
)

// EntryReader defines read operations for journal entry data
type EntryReader interface {
	// FindEntryByID retrieves a specific journal entry header by its unique identifier.
	FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// ListEntries retrieves a paginated list of journal entries, newest first.
	ListEntries(ctx context.Context, limit int, offset int) ([]domain.JournalEntry, error)
}

// EntryWriter defines write operations for journal entry data
type EntryWriter interface {
	// SaveEntry persists a journal entry header.
	SaveEntry(ctx context.Context, entry domain.JournalEntry) error

	// SaveEntryWithLines persists a header and its lines, and applies the
	// corresponding account balance changes, within one database transaction.
	SaveEntryWithLines(ctx context.Context, entry domain.JournalEntry, lines []domain.EntryLine) error

	// SaveEntryLines persists lines for an existing journal entry and applies
	// the corresponding account balance changes within one database
	// transaction.
	SaveEntryLines(ctx context.Context, entryID string, lines []domain.EntryLine) error

	// UpdateEntryStatus updates the status of a journal entry.
	UpdateEntryStatus(ctx context.Context, entryID string, status domain.EntryStatus, updatedByUserID string, updatedAt time.Time) error
}

// LineReader defines read operations for entry line data
type LineReader interface {
	// FindLinesByEntryID retrieves all lines associated with a single journal entry.
	FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.EntryLine, error)

	// FindLinesByAccountID retrieves a paginated list of lines for a specific account.
	FindLinesByAccountID(ctx context.Context, accountID string, limit int, offset int) ([]domain.EntryLine, error)
}

// JournalRepositoryFacade combines all journal-related repository interfaces
// This is a facade for clients that need access to all operations
type JournalRepositoryFacade interface {
	EntryReader
	EntryWriter
	LineReader
}

// JournalRepositoryWithTx extends JournalRepositoryFacade with transaction capabilities
type JournalRepositoryWithTx interface {
	JournalRepositoryFacade
	TransactionManager
}
