package models

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

// JournalEntry represents a journal entry header row.
type JournalEntry struct {
	EntryID     string      `db:"entry_id"`
	EntryDate   time.Time   `db:"entry_date"`
	Description string      `db:"description"`
	Reference   string      `db:"reference"`
	Status      EntryStatus `db:"status"`
	AuditFields
}

// EntryLine represents a single debit or credit row. Debit and Credit map to
// nullable numeric columns; exactly one is non-null per row, enforced by a
// table check constraint.
type EntryLine struct {
	LineID    string           `db:"line_id"`
	EntryID   string           `db:"entry_id"`
	AccountID string           `db:"account_id"`
	Debit     *decimal.Decimal `db:"debit"`
	Credit    *decimal.Decimal `db:"credit"`

	ProductID   *string         `db:"product_id"`
	Quantity    decimal.Decimal `db:"quantity"`
	UnitCost    decimal.Decimal `db:"unit_cost"`
	TotalGross  decimal.Decimal `db:"total_gross"`
	ICMSValue   decimal.Decimal `db:"icms_value"`
	IPIValue    decimal.Decimal `db:"ipi_value"`
	PISValue    decimal.Decimal `db:"pis_value"`
	COFINSValue decimal.Decimal `db:"cofins_value"`
	ICMSSTValue decimal.Decimal `db:"icms_st_value"`
	TotalNet    decimal.Decimal `db:"total_net"`

	AuditFields
}
