package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/FiscalFlow/fiscal_flow_app/internal/apperrors"
	"github.com/FiscalFlow/fiscal_flow_app/internal/core/domain"
	portsrepo "github.com/FiscalFlow/fiscal_flow_app/internal/core/ports/repositories"
	portssvc "github.com/FiscalFlow/fiscal_flow_app/internal/core/ports/services"
	"github.com/FiscalFlow/fiscal_flow_app/internal/dto"
	"github.com/google/uuid"
)

// fiscalEntryService implements the FiscalEntrySvcFacade interface. It is the
// orchestration seam: calculate the cascade, resolve role accounts, generate
// balanced lines, persist them, then move stock.
type fiscalEntryService struct {
	BaseService
	journalRepo portsrepo.JournalRepositoryWithTx
	accountSvc  portssvc.AccountResolverSvc
	stockSvc    portssvc.StockAdjusterSvc
	calculator  portssvc.TaxCalculatorSvc
	generator   portssvc.EntryLineGeneratorSvc
}

// NewFiscalEntryService creates a new fiscal entry service
func NewFiscalEntryService(
	journalRepo portsrepo.JournalRepositoryWithTx,
	accountSvc portssvc.AccountResolverSvc,
	stockSvc portssvc.StockAdjusterSvc,
	calculator portssvc.TaxCalculatorSvc,
	generator portssvc.EntryLineGeneratorSvc,
) portssvc.FiscalEntrySvcFacade {
	return &fiscalEntryService{
		journalRepo: journalRepo,
		accountSvc:  accountSvc,
		stockSvc:    stockSvc,
		calculator:  calculator,
		generator:   generator,
	}
}

// Ensure fiscalEntryService implements the FiscalEntrySvcFacade interface
var _ portssvc.FiscalEntrySvcFacade = (*fiscalEntryService)(nil)

func (s *fiscalEntryService) CreateFiscalLines(ctx context.Context, req dto.CreateEntryLinesRequest, creatorUserID string) ([]domain.EntryLine, error) {
	if req.GrossAmount.IsNegative() {
		return nil, fmt.Errorf("%w: gross amount must not be negative", apperrors.ErrValidation)
	}

	entry, err := s.journalRepo.FindEntryByID(ctx, req.EntryID)
	if err != nil {
		return nil, fmt.Errorf("failed to load journal entry %s: %w", req.EntryID, err)
	}

	op := req.ToFiscalOperation()
	taxes := s.calculator.Compute(op)

	roles := domain.SaleRoles
	if op.Kind == domain.Purchase {
		roles = domain.PurchaseRoles
	}
	accounts, err := s.accountSvc.ResolveRoles(ctx, roles, creatorUserID)
	if err != nil {
		return nil, err
	}

	lines, err := s.generator.Generate(op, taxes, accounts, req.MainAccountID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	for i := range lines {
		lines[i].LineID = uuid.NewString()
		lines[i].EntryID = entry.EntryID
		lines[i].CreatedAt = now
		lines[i].CreatedBy = creatorUserID
		lines[i].LastUpdatedAt = now
		lines[i].LastUpdatedBy = creatorUserID
	}

	if err := s.journalRepo.SaveEntryLines(ctx, entry.EntryID, lines); err != nil {
		s.LogError(ctx, err, "Failed to persist generated lines",
			slog.String("entry_id", entry.EntryID))
		return nil, fmt.Errorf("failed to persist entry lines: %w", err)
	}

	if op.HasProductLinkage() {
		newStock, err := s.stockSvc.AdjustStock(ctx, op.ProductID, op.Quantity, op.Kind, creatorUserID)
		if err != nil {
			// Lines are already committed; surface the stock failure so the
			// caller can reconcile instead of hiding the divergence.
			s.LogError(ctx, err, "Stock adjustment failed after line persistence",
				slog.String("entry_id", entry.EntryID),
				slog.String("product_id", op.ProductID))
			return nil, err
		}
		s.LogInfo(ctx, "Stock adjusted for fiscal entry",
			slog.String("product_id", op.ProductID),
			slog.String("new_stock", newStock.String()))
	}

	s.LogInfo(ctx, "Fiscal entry lines created",
		slog.String("entry_id", entry.EntryID),
		slog.Int("line_count", len(lines)))
	return lines, nil
}

func (s *fiscalEntryService) GetEntryLines(ctx context.Context, entryID string) ([]domain.EntryLine, error) {
	if _, err := s.journalRepo.FindEntryByID(ctx, entryID); err != nil {
		return nil, err
	}
	lines, err := s.journalRepo.FindLinesByEntryID(ctx, entryID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load entry lines",
			slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to load lines for entry %s: %w", entryID, err)
	}
	if lines == nil {
		return []domain.EntryLine{}, nil
	}
	return lines, nil
}
