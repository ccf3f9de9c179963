package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryStatus indicates the state of a journal entry.
type EntryStatus string

const (
	Posted   EntryStatus = "POSTED"
	Reversed EntryStatus = "REVERSED"
)

// JournalEntry represents a single, balanced financial event composed of
// multiple entry lines.
type JournalEntry struct {
	EntryID     string      `json:"entryID"`     // Primary Key (UUID)
	EntryDate   time.Time   `json:"entryDate"`   // Date the event occurred
	Description string      `json:"description"` // User description
	Reference   string      `json:"reference"`   // External document reference (e.g. invoice number)
	Status      EntryStatus `json:"status"`      // Default: Posted
	AuditFields

	// Lines is populated on demand; a persisted entry is immutable except
	// through explicit reversal flows.
	Lines []EntryLine `json:"lines,omitempty"`
}

// EntryLine is a single debit or credit against one account. Exactly one of
// Debit and Credit is non-nil, and that amount is positive.
//
// The fiscal metadata fields are attached to the primary line of a generated
// entry only, for audit traceability; they never participate in balance
// checks.
type EntryLine struct {
	LineID    string           `json:"lineID"`
	EntryID   string           `json:"entryID"`
	AccountID string           `json:"accountID"`
	Debit     *decimal.Decimal `json:"debit,omitempty"`
	Credit    *decimal.Decimal `json:"credit,omitempty"`

	ProductID   string          `json:"productID,omitempty"`
	Quantity    decimal.Decimal `json:"quantity,omitempty"`
	UnitCost    decimal.Decimal `json:"unitCost,omitempty"`
	TotalGross  decimal.Decimal `json:"totalGross,omitempty"`
	ICMSValue   decimal.Decimal `json:"icmsValue,omitempty"`
	IPIValue    decimal.Decimal `json:"ipiValue,omitempty"`
	PISValue    decimal.Decimal `json:"pisValue,omitempty"`
	COFINSValue decimal.Decimal `json:"cofinsValue,omitempty"`
	ICMSSTValue decimal.Decimal `json:"icmsStValue,omitempty"`
	TotalNet    decimal.Decimal `json:"totalNet,omitempty"`

	AuditFields
}

// Amount returns the line's monetary value regardless of side.
func (l EntryLine) Amount() decimal.Decimal {
	if l.Debit != nil {
		return *l.Debit
	}
	if l.Credit != nil {
		return *l.Credit
	}
	return decimal.Zero
}

// IsDebit reports whether the line sits on the debit side.
func (l EntryLine) IsDebit() bool {
	return l.Debit != nil
}
