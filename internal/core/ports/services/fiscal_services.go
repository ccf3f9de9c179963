package services

import (
	"context"

	"github.com/FiscalFlow/fiscal_flow_app/internal/core/domain"
	"github.com/FiscalFlow/fiscal_flow_app/internal/dto"
)

// TaxCalculatorSvc computes the fiscal tax cascade for a single operation.
// Implementations are pure: no I/O, no side effects.
type TaxCalculatorSvc interface {
	Compute(op domain.FiscalOperation) domain.TaxCascadeResult
}

// EntryLineGeneratorSvc turns a calculated operation into a balanced set of
// entry lines against resolved accounts.
type EntryLineGeneratorSvc interface {
	// Generate emits the ordered line set for the operation. It fails with
	// apperrors.ErrAccountResolution when a required role is missing from
	// accounts, and with apperrors.ErrUnbalanced if the emitted lines do not
	// balance (a logic defect, asserted defensively).
	Generate(op domain.FiscalOperation, taxes domain.TaxCascadeResult, accounts domain.AccountRoleMap, mainAccountID string) ([]domain.EntryLine, error)
}

// FiscalEntrySvcFacade is the orchestrated flow: calculate taxes, resolve
// accounts, generate lines, persist, adjust stock.
type FiscalEntrySvcFacade interface {
	// CreateFiscalLines generates and persists the lines for an existing
	// journal entry from a fiscal operation description.
	CreateFiscalLines(ctx context.Context, req dto.CreateEntryLinesRequest, creatorUserID string) ([]domain.EntryLine, error)

	// GetEntryLines retrieves the persisted lines of a journal entry.
	GetEntryLines(ctx context.Context, entryID string) ([]domain.EntryLine, error)
}
