package dto

import (
	"time"

	"github.com/FiscalFlow/fiscal_flow_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateEntryLinesRequest defines the fiscal operation to turn into entry lines
// for an existing journal entry.
type CreateEntryLinesRequest struct {
	EntryID       string               `json:"entryID" binding:"required,uuid"`
	MainAccountID string               `json:"mainAccountID" binding:"required,uuid"`
	OperationKind domain.OperationKind `json:"operationKind" binding:"required,oneof=SALE PURCHASE"`
	GrossAmount   decimal.Decimal      `json:"grossAmount" binding:"required"`
	ICMSRate      decimal.Decimal      `json:"icmsRate"`
	IPIRate       decimal.Decimal      `json:"ipiRate"`
	PISRate       decimal.Decimal      `json:"pisRate"`
	COFINSRate    decimal.Decimal      `json:"cofinsRate"`
	MVARate       decimal.Decimal      `json:"mvaRate"`
	TotalNet      decimal.Decimal      `json:"totalNet"`
	ProductID     string               `json:"productID"`
	Quantity      decimal.Decimal      `json:"quantity"`
	UnitCost      decimal.Decimal      `json:"unitCost"`
}

// ToFiscalOperation converts the request into the domain operation.
func (r *CreateEntryLinesRequest) ToFiscalOperation() domain.FiscalOperation {
	return domain.FiscalOperation{
		Kind:        r.OperationKind,
		GrossAmount: r.GrossAmount,
		ICMSRate:    r.ICMSRate,
		IPIRate:     r.IPIRate,
		PISRate:     r.PISRate,
		COFINSRate:  r.COFINSRate,
		MVARate:     r.MVARate,
		TotalNet:    r.TotalNet,
		ProductID:   r.ProductID,
		Quantity:    r.Quantity,
		UnitCost:    r.UnitCost,
	}
}

// EntryLineResponse defines the data returned for a single entry line.
type EntryLineResponse struct {
	LineID      string           `json:"lineID"`
	EntryID     string           `json:"entryID"`
	AccountID   string           `json:"accountID"`
	Debit       *decimal.Decimal `json:"debit,omitempty"`
	Credit      *decimal.Decimal `json:"credit,omitempty"`
	ProductID   string           `json:"productID,omitempty"`
	Quantity    decimal.Decimal  `json:"quantity"`
	UnitCost    decimal.Decimal  `json:"unitCost"`
	TotalGross  decimal.Decimal  `json:"totalGross"`
	ICMSValue   decimal.Decimal  `json:"icmsValue"`
	IPIValue    decimal.Decimal  `json:"ipiValue"`
	PISValue    decimal.Decimal  `json:"pisValue"`
	COFINSValue decimal.Decimal  `json:"cofinsValue"`
	ICMSSTValue decimal.Decimal  `json:"icmsStValue"`
	TotalNet    decimal.Decimal  `json:"totalNet"`
	CreatedAt   time.Time        `json:"createdAt"`
}

// ToEntryLineResponse converts a domain.EntryLine to EntryLineResponse DTO.
func ToEntryLineResponse(line *domain.EntryLine) EntryLineResponse {
	return EntryLineResponse{
		LineID:      line.LineID,
		EntryID:     line.EntryID,
		AccountID:   line.AccountID,
		Debit:       line.Debit,
		Credit:      line.Credit,
		ProductID:   line.ProductID,
		Quantity:    line.Quantity,
		UnitCost:    line.UnitCost,
		TotalGross:  line.TotalGross,
		ICMSValue:   line.ICMSValue,
		IPIValue:    line.IPIValue,
		PISValue:    line.PISValue,
		COFINSValue: line.COFINSValue,
		ICMSSTValue: line.ICMSSTValue,
		TotalNet:    line.TotalNet,
		CreatedAt:   line.CreatedAt,
	}
}

// ToEntryLineResponses converts a slice of domain.EntryLine to []EntryLineResponse.
func ToEntryLineResponses(lines []domain.EntryLine) []EntryLineResponse {
	responses := make([]EntryLineResponse, len(lines))
	for i, line := range lines {
		responses[i] = ToEntryLineResponse(&line)
	}
	return responses
}
