package services

import (
	"fmt"

	"github.com/FiscalFlow/fiscal_flow_app/internal/apperrors"
	"github.com/FiscalFlow/fiscal_flow_app/internal/core/domain"
	portssvc "github.com/FiscalFlow/fiscal_flow_app/internal/core/ports/services"
	"github.com/FiscalFlow/fiscal_flow_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// entryGeneratorService implements the EntryLineGeneratorSvc interface. Pure
// construction: accounts are consumed by role, persistence identifiers and
// audit fields are filled in by the caller.
type entryGeneratorService struct{}

// NewEntryGeneratorService creates the double-entry line generator.
func NewEntryGeneratorService() portssvc.EntryLineGeneratorSvc {
	return &entryGeneratorService{}
}

// Ensure entryGeneratorService implements the EntryLineGeneratorSvc interface
var _ portssvc.EntryLineGeneratorSvc = (*entryGeneratorService)(nil)

func amountRef(v decimal.Decimal) *decimal.Decimal {
	return &v
}

func debitLine(accountID string, v decimal.Decimal) domain.EntryLine {
	return domain.EntryLine{AccountID: accountID, Debit: amountRef(v)}
}

func creditLine(accountID string, v decimal.Decimal) domain.EntryLine {
	return domain.EntryLine{AccountID: accountID, Credit: amountRef(v)}
}

// accountFor resolves a role from the pre-resolved map, failing fast with the
// offending role name when it is absent.
func accountFor(accounts domain.AccountRoleMap, role domain.AccountRole) (string, error) {
	id, ok := accounts[role]
	if !ok || id == "" {
		return "", fmt.Errorf("%w: no account resolved for role %s", apperrors.ErrAccountResolution, role)
	}
	return id, nil
}

func (s *entryGeneratorService) Generate(op domain.FiscalOperation, taxes domain.TaxCascadeResult, accounts domain.AccountRoleMap, mainAccountID string) ([]domain.EntryLine, error) {
	if mainAccountID == "" {
		return nil, fmt.Errorf("%w: main account is required", apperrors.ErrValidation)
	}
	if op.GrossAmount.IsNegative() {
		return nil, fmt.Errorf("%w: gross amount must not be negative", apperrors.ErrValidation)
	}

	var lines []domain.EntryLine
	var err error
	switch op.Kind {
	case domain.Purchase:
		lines, err = s.generatePurchase(op, taxes, accounts)
	default:
		lines, err = s.generateSale(op, taxes, accounts, mainAccountID)
	}
	if err != nil {
		return nil, err
	}

	// The construction above balances by design; verify anyway so unbalanced
	// lines can never escape this package.
	debits, credits := accounting.SumLines(lines)
	if !debits.Equal(credits) {
		return nil, fmt.Errorf("%w: generated lines are inconsistent: debits %s != credits %s",
			apperrors.ErrUnbalanced, debits.String(), credits.String())
	}
	return lines, nil
}

// generateSale emits the primary receivable line, the unconditional revenue
// credit, one line (or pair) per strictly positive tax, and the COGS pair when
// the operation carries full product costing data.
func (s *entryGeneratorService) generateSale(op domain.FiscalOperation, taxes domain.TaxCascadeResult, accounts domain.AccountRoleMap, mainAccountID string) ([]domain.EntryLine, error) {
	revenueID, err := accountFor(accounts, domain.RoleSalesRevenue)
	if err != nil {
		return nil, err
	}

	primary := debitLine(mainAccountID, taxes.FinalTotalNet)
	primary.ProductID = op.ProductID
	primary.Quantity = op.Quantity
	primary.UnitCost = op.UnitCost
	primary.TotalGross = op.GrossAmount
	primary.ICMSValue = taxes.ICMSValue
	primary.IPIValue = taxes.IPIValue
	primary.PISValue = taxes.PISValue
	primary.COFINSValue = taxes.COFINSValue
	primary.ICMSSTValue = taxes.ICMSSTValue
	primary.TotalNet = taxes.FinalTotalNet

	lines := []domain.EntryLine{
		primary,
		creditLine(revenueID, op.GrossAmount),
	}

	if taxes.IPIValue.IsPositive() {
		ipiID, err := accountFor(accounts, domain.RoleIPIPayable)
		if err != nil {
			return nil, err
		}
		lines = append(lines, creditLine(ipiID, taxes.IPIValue))
	}

	if taxes.ICMSValue.IsPositive() {
		// ICMS próprio reduces recognized revenue: contra-revenue, not expense.
		icmsID, err := accountFor(accounts, domain.RoleICMSPayable)
		if err != nil {
			return nil, err
		}
		lines = append(lines,
			debitLine(revenueID, taxes.ICMSValue),
			creditLine(icmsID, taxes.ICMSValue),
		)
	}

	if taxes.ICMSSTValue.IsPositive() {
		// No offsetting debit: the primary line already carries the ST amount
		// inside the invoice total.
		stID, err := accountFor(accounts, domain.RoleICMSSTPayable)
		if err != nil {
			return nil, err
		}
		lines = append(lines, creditLine(stID, taxes.ICMSSTValue))
	}

	if taxes.PISValue.IsPositive() {
		expenseID, err := accountFor(accounts, domain.RolePISExpense)
		if err != nil {
			return nil, err
		}
		payableID, err := accountFor(accounts, domain.RolePISPayable)
		if err != nil {
			return nil, err
		}
		lines = append(lines,
			debitLine(expenseID, taxes.PISValue),
			creditLine(payableID, taxes.PISValue),
		)
	}

	if taxes.COFINSValue.IsPositive() {
		expenseID, err := accountFor(accounts, domain.RoleCOFINSExpense)
		if err != nil {
			return nil, err
		}
		payableID, err := accountFor(accounts, domain.RoleCOFINSPayable)
		if err != nil {
			return nil, err
		}
		lines = append(lines,
			debitLine(expenseID, taxes.COFINSValue),
			creditLine(payableID, taxes.COFINSValue),
		)
	}

	if op.HasCOGSData() {
		cogsID, err := accountFor(accounts, domain.RoleCostOfGoodsSold)
		if err != nil {
			return nil, err
		}
		inventoryID, err := accountFor(accounts, domain.RoleFinishedGoodsInventory)
		if err != nil {
			return nil, err
		}
		cogs := op.Quantity.Mul(op.UnitCost)
		lines = append(lines,
			debitLine(cogsID, cogs),
			creditLine(inventoryID, cogs),
		)
	}

	return lines, nil
}

// generatePurchase records the whole invoice cost as inventory against the
// supplier: input taxes are folded into inventory cost and kept as metadata
// only.
func (s *entryGeneratorService) generatePurchase(op domain.FiscalOperation, taxes domain.TaxCascadeResult, accounts domain.AccountRoleMap) ([]domain.EntryLine, error) {
	inventoryID, err := accountFor(accounts, domain.RoleMerchandiseInventory)
	if err != nil {
		return nil, err
	}
	supplierID, err := accountFor(accounts, domain.RoleSuppliersPayable)
	if err != nil {
		return nil, err
	}

	// A purchase without an invoice total would emit a zero-amount pair,
	// which violates the one-positive-side line rule.
	if !taxes.FinalTotalNet.IsPositive() {
		return nil, fmt.Errorf("%w: purchase total net must be positive", apperrors.ErrValidation)
	}

	inventory := debitLine(inventoryID, taxes.FinalTotalNet)
	inventory.ProductID = op.ProductID
	inventory.Quantity = op.Quantity
	inventory.UnitCost = op.UnitCost
	inventory.TotalGross = op.GrossAmount
	inventory.ICMSValue = taxes.ICMSValue
	inventory.IPIValue = taxes.IPIValue
	inventory.PISValue = taxes.PISValue
	inventory.COFINSValue = taxes.COFINSValue
	inventory.ICMSSTValue = taxes.ICMSSTValue
	inventory.TotalNet = taxes.FinalTotalNet

	return []domain.EntryLine{
		inventory,
		creditLine(supplierID, taxes.FinalTotalNet),
	}, nil
}
