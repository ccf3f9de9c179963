package accounting

import (
	"fmt"

	"github.com/FiscalFlow/fiscal_flow_app/internal/apperrors"
	"github.com/FiscalFlow/fiscal_flow_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CalculateSignedAmount applies the correct sign to an entry line amount based
// on account type and line side. Used in both services and repositories so the
// balance convention lives in one place.
func CalculateSignedAmount(line domain.EntryLine, accountType domain.AccountType) (decimal.Decimal, error) {
	signedAmount := line.Amount()
	isDebit := line.IsDebit()

	// DEBIT to ASSET/EXPENSE -> Positive (+)
	// CREDIT to ASSET/EXPENSE -> Negative (-)
	// DEBIT to LIABILITY/EQUITY/REVENUE -> Negative (-)
	// CREDIT to LIABILITY/EQUITY/REVENUE -> Positive (+)
	switch accountType {
	case domain.Asset, domain.Expense:
		if !isDebit {
			signedAmount = signedAmount.Neg()
		}
	case domain.Liability, domain.Equity, domain.Revenue:
		if isDebit {
			signedAmount = signedAmount.Neg()
		}
	default:
		return decimal.Zero, fmt.Errorf("unknown account type '%s' encountered for account ID %s", accountType, line.AccountID)
	}
	return signedAmount, nil
}

// SumLines totals the debit and credit sides of a line set.
func SumLines(lines []domain.EntryLine) (debits decimal.Decimal, credits decimal.Decimal) {
	debits = decimal.Zero
	credits = decimal.Zero
	for _, line := range lines {
		if line.Debit != nil {
			debits = debits.Add(*line.Debit)
		}
		if line.Credit != nil {
			credits = credits.Add(*line.Credit)
		}
	}
	return debits, credits
}

// ValidateLineBalance checks that every line carries exactly one positive side
// and that total debits equal total credits. The returned error wraps
// apperrors.ErrUnbalanced and carries the imbalance amount.
func ValidateLineBalance(lines []domain.EntryLine) error {
	if len(lines) < 2 {
		return fmt.Errorf("%w: entry must have at least two lines", apperrors.ErrValidation)
	}

	for _, line := range lines {
		if (line.Debit == nil) == (line.Credit == nil) {
			return fmt.Errorf("%w: line for account %s must set exactly one of debit or credit", apperrors.ErrValidation, line.AccountID)
		}
		if line.Amount().LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("%w: line amount must be positive for account %s", apperrors.ErrValidation, line.AccountID)
		}
	}

	debits, credits := SumLines(lines)
	if !debits.Equal(credits) {
		return fmt.Errorf("%w: debits %s != credits %s (imbalance %s)",
			apperrors.ErrUnbalanced, debits.String(), credits.String(), debits.Sub(credits).String())
	}
	return nil
}
