package mapping

import (
	"github.com/FiscalFlow/fiscal_flow_app/internal/core/domain"
	"github.com/FiscalFlow/fiscal_flow_app/internal/models"
)

// ToModelJournalEntry converts a domain JournalEntry to a model JournalEntry
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		EntryID:     d.EntryID,
		EntryDate:   d.EntryDate,
		Description: d.Description,
		Reference:   d.Reference,
		Status:      models.EntryStatus(d.Status),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournalEntry converts a model JournalEntry to a domain JournalEntry
func ToDomainJournalEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:     m.EntryID,
		EntryDate:   m.EntryDate,
		Description: m.Description,
		Reference:   m.Reference,
		Status:      domain.EntryStatus(m.Status),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelEntryLine converts a domain EntryLine to a model EntryLine
func ToModelEntryLine(d domain.EntryLine) models.EntryLine {
	var productID *string
	if d.ProductID != "" {
		p := d.ProductID
		productID = &p
	}
	return models.EntryLine{
		LineID:      d.LineID,
		EntryID:     d.EntryID,
		AccountID:   d.AccountID,
		Debit:       d.Debit,
		Credit:      d.Credit,
		ProductID:   productID,
		Quantity:    d.Quantity,
		UnitCost:    d.UnitCost,
		TotalGross:  d.TotalGross,
		ICMSValue:   d.ICMSValue,
		IPIValue:    d.IPIValue,
		PISValue:    d.PISValue,
		COFINSValue: d.COFINSValue,
		ICMSSTValue: d.ICMSSTValue,
		TotalNet:    d.TotalNet,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainEntryLine converts a model EntryLine to a domain EntryLine
func ToDomainEntryLine(m models.EntryLine) domain.EntryLine {
	productID := ""
	if m.ProductID != nil {
		productID = *m.ProductID
	}
	return domain.EntryLine{
		LineID:      m.LineID,
		EntryID:     m.EntryID,
		AccountID:   m.AccountID,
		Debit:       m.Debit,
		Credit:      m.Credit,
		ProductID:   productID,
		Quantity:    m.Quantity,
		UnitCost:    m.UnitCost,
		TotalGross:  m.TotalGross,
		ICMSValue:   m.ICMSValue,
		IPIValue:    m.IPIValue,
		PISValue:    m.PISValue,
		COFINSValue: m.COFINSValue,
		ICMSSTValue: m.ICMSSTValue,
		TotalNet:    m.TotalNet,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainEntryLineSlice converts a slice of model EntryLines to domain EntryLines
func ToDomainEntryLineSlice(ms []models.EntryLine) []domain.EntryLine {
	ds := make([]domain.EntryLine, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainEntryLine(m)
	}
	return ds
}
