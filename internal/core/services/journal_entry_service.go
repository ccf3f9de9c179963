package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/FiscalFlow/fiscal_flow_app/internal/core/domain"
	portsrepo "github.com/FiscalFlow/fiscal_flow_app/internal/core/ports/repositories"
	portssvc "github.com/FiscalFlow/fiscal_flow_app/internal/core/ports/services"
	"github.com/FiscalFlow/fiscal_flow_app/internal/dto"
	"github.com/FiscalFlow/fiscal_flow_app/internal/utils/accounting"
	"github.com/google/uuid"
)

// journalEntryService implements the JournalEntrySvcFacade interface
type journalEntryService struct {
	BaseService
	journalRepo portsrepo.JournalRepositoryWithTx
	accountSvc  portssvc.AccountResolverSvc
}

// NewJournalEntryService creates a new journal entry service
func NewJournalEntryService(journalRepo portsrepo.JournalRepositoryWithTx, accountSvc portssvc.AccountResolverSvc) portssvc.JournalEntrySvcFacade {
	return &journalEntryService{
		journalRepo: journalRepo,
		accountSvc:  accountSvc,
	}
}

// Ensure journalEntryService implements the JournalEntrySvcFacade interface
var _ portssvc.JournalEntrySvcFacade = (*journalEntryService)(nil)

func (s *journalEntryService) CreateEntry(ctx context.Context, req dto.CreateJournalEntryRequest, creatorUserID string) (*domain.JournalEntry, error) {
	now := time.Now()
	entry := domain.JournalEntry{
		EntryID:     uuid.NewString(),
		EntryDate:   req.EntryDate,
		Description: req.Description,
		Reference:   req.Reference,
		Status:      domain.Posted,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.journalRepo.SaveEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save journal entry",
			slog.String("entry_id", entry.EntryID))
		return nil, fmt.Errorf("failed to save journal entry: %w", err)
	}

	s.LogInfo(ctx, "Journal entry created",
		slog.String("entry_id", entry.EntryID))
	return &entry, nil
}

func (s *journalEntryService) GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}

	lines, err := s.journalRepo.FindLinesByEntryID(ctx, entryID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load entry lines",
			slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to load lines for entry %s: %w", entryID, err)
	}
	entry.Lines = lines
	return entry, nil
}

func (s *journalEntryService) ListEntries(ctx context.Context, params dto.ListEntriesParams) ([]domain.JournalEntry, error) {
	entries, err := s.journalRepo.ListEntries(ctx, params.Limit, params.Offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journal entries",
			slog.Int("limit", params.Limit),
			slog.Int("offset", params.Offset))
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	if entries == nil {
		return []domain.JournalEntry{}, nil
	}
	return entries, nil
}

// ConfirmProposedEntries turns a batch of name-addressed drafts into persisted
// journal entries. Entries are processed strictly in order because later
// drafts may reference accounts auto-created by earlier ones; a failure stops
// the batch but leaves previously committed entries in place.
func (s *journalEntryService) ConfirmProposedEntries(ctx context.Context, proposed []dto.ProposedEntry, creatorUserID string) ([]domain.JournalEntry, error) {
	confirmed := make([]domain.JournalEntry, 0, len(proposed))
	for i, draft := range proposed {
		entry, err := s.confirmOne(ctx, draft, creatorUserID)
		if err != nil {
			s.LogError(ctx, err, "Proposed entry confirmation aborted",
				slog.Int("index", i),
				slog.String("description", draft.Description))
			return confirmed, fmt.Errorf("proposed entry %d (%s): %w", i, draft.Description, err)
		}
		confirmed = append(confirmed, *entry)
	}

	s.LogInfo(ctx, "Proposed entries confirmed",
		slog.Int("count", len(confirmed)))
	return confirmed, nil
}

func (s *journalEntryService) confirmOne(ctx context.Context, draft dto.ProposedEntry, creatorUserID string) (*domain.JournalEntry, error) {
	now := time.Now()
	entry := domain.JournalEntry{
		EntryID:     uuid.NewString(),
		EntryDate:   draft.EntryDate,
		Description: draft.Description,
		Reference:   draft.Reference,
		Status:      domain.Posted,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	lines := make([]domain.EntryLine, 0, len(draft.Debits)+len(draft.Credits))
	for _, d := range draft.Debits {
		account, err := s.accountSvc.FindOrCreateAccountByName(ctx, d.Account, creatorUserID)
		if err != nil {
			return nil, err
		}
		value := d.Value
		lines = append(lines, domain.EntryLine{
			LineID:    uuid.NewString(),
			EntryID:   entry.EntryID,
			AccountID: account.AccountID,
			Debit:     &value,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     creatorUserID,
				LastUpdatedAt: now,
				LastUpdatedBy: creatorUserID,
			},
		})
	}
	for _, c := range draft.Credits {
		account, err := s.accountSvc.FindOrCreateAccountByName(ctx, c.Account, creatorUserID)
		if err != nil {
			return nil, err
		}
		value := c.Value
		lines = append(lines, domain.EntryLine{
			LineID:    uuid.NewString(),
			EntryID:   entry.EntryID,
			AccountID: account.AccountID,
			Credit:    &value,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     creatorUserID,
				LastUpdatedAt: now,
				LastUpdatedBy: creatorUserID,
			},
		})
	}

	// The upstream proposal claims to balance; never take its word for it.
	if err := accounting.ValidateLineBalance(lines); err != nil {
		return nil, err
	}

	if err := s.journalRepo.SaveEntryWithLines(ctx, entry, lines); err != nil {
		return nil, fmt.Errorf("failed to persist confirmed entry: %w", err)
	}
	entry.Lines = lines
	return &entry, nil
}
