package dto

import (
	"github.com/FiscalFlow/fiscal_flow_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CalculateTaxesRequest defines the input for a standalone tax cascade calculation.
// Rates are percentage points; omitted rates contribute zero.
type CalculateTaxesRequest struct {
	OperationKind domain.OperationKind `json:"operationKind" binding:"required,oneof=SALE PURCHASE"`
	GrossAmount   decimal.Decimal      `json:"grossAmount" binding:"required"`
	ICMSRate      decimal.Decimal      `json:"icmsRate"`
	IPIRate       decimal.Decimal      `json:"ipiRate"`
	PISRate       decimal.Decimal      `json:"pisRate"`
	COFINSRate    decimal.Decimal      `json:"cofinsRate"`
	MVARate       decimal.Decimal      `json:"mvaRate"`
	TotalNet      decimal.Decimal      `json:"totalNet"`
}

// ToFiscalOperation converts the request into the domain operation.
func (r *CalculateTaxesRequest) ToFiscalOperation() domain.FiscalOperation {
	return domain.FiscalOperation{
		Kind:        r.OperationKind,
		GrossAmount: r.GrossAmount,
		ICMSRate:    r.ICMSRate,
		IPIRate:     r.IPIRate,
		PISRate:     r.PISRate,
		COFINSRate:  r.COFINSRate,
		MVARate:     r.MVARate,
		TotalNet:    r.TotalNet,
	}
}

// TaxDetailResponse is one audit-trail row of the cascade calculation.
type TaxDetailResponse struct {
	TaxType         string          `json:"taxType"`
	Description     string          `json:"description"`
	RateApplied     decimal.Decimal `json:"rateApplied"`
	BaseValue       decimal.Decimal `json:"baseValue"`
	CalculatedValue decimal.Decimal `json:"calculatedValue"`
}

// TaxCascadeResponse defines the data returned for a tax cascade calculation.
type TaxCascadeResponse struct {
	IPIValue      decimal.Decimal     `json:"ipiValue"`
	ICMSValue     decimal.Decimal     `json:"icmsValue"`
	ICMSSTValue   decimal.Decimal     `json:"icmsStValue"`
	PISValue      decimal.Decimal     `json:"pisValue"`
	COFINSValue   decimal.Decimal     `json:"cofinsValue"`
	FinalTotalNet decimal.Decimal     `json:"finalTotalNet"`
	Details       []TaxDetailResponse `json:"details"`
}

// ToTaxCascadeResponse converts a domain.TaxCascadeResult to TaxCascadeResponse DTO.
func ToTaxCascadeResponse(res domain.TaxCascadeResult) TaxCascadeResponse {
	details := make([]TaxDetailResponse, len(res.Details))
	for i, d := range res.Details {
		details[i] = TaxDetailResponse{
			TaxType:         d.TaxType,
			Description:     d.Description,
			RateApplied:     d.RateApplied,
			BaseValue:       d.BaseValue,
			CalculatedValue: d.CalculatedValue,
		}
	}
	return TaxCascadeResponse{
		IPIValue:      res.IPIValue,
		ICMSValue:     res.ICMSValue,
		ICMSSTValue:   res.ICMSSTValue,
		PISValue:      res.PISValue,
		COFINSValue:   res.COFINSValue,
		FinalTotalNet: res.FinalTotalNet,
		Details:       details,
	}
}
