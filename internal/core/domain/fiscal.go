package domain

import (
	"github.com/shopspring/decimal"
)

// OperationKind distinguishes the two commercial transaction flavours the
// fiscal engine understands.
type OperationKind string

const (
	Sale     OperationKind = "SALE"
	Purchase OperationKind = "PURCHASE"
)

// FiscalOperation is the input to a single tax calculation. Rates are
// percentage points (18 means 18%); a zero rate contributes nothing, so
// "absent" and "zero" are deliberately indistinguishable.
type FiscalOperation struct {
	Kind        OperationKind   `json:"kind"`
	GrossAmount decimal.Decimal `json:"grossAmount"` // Must be >= 0

	ICMSRate   decimal.Decimal `json:"icmsRate"`
	IPIRate    decimal.Decimal `json:"ipiRate"`
	PISRate    decimal.Decimal `json:"pisRate"`
	COFINSRate decimal.Decimal `json:"cofinsRate"`
	MVARate    decimal.Decimal `json:"mvaRate"` // ICMS-ST markup percentage

	// TotalNet is the invoice total for purchases; ignored and recomputed for
	// sales.
	TotalNet decimal.Decimal `json:"totalNet"`

	// Product linkage, all optional. COGS recognition and stock adjustment only
	// happen when ProductID and Quantity (and UnitCost for COGS) are set.
	ProductID string          `json:"productID"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unitCost"`
}

// HasProductLinkage reports whether the operation references a product with a
// quantity, the precondition for stock adjustment.
func (op FiscalOperation) HasProductLinkage() bool {
	return op.ProductID != "" && !op.Quantity.IsZero()
}

// HasCOGSData reports whether the operation carries everything needed to
// recognize cost of goods sold.
func (op FiscalOperation) HasCOGSData() bool {
	return op.ProductID != "" && !op.Quantity.IsZero() && !op.UnitCost.IsZero()
}

// TaxCascadeResult holds the computed tax amounts for one operation.
//
// For sales, FinalTotalNet == GrossAmount + IPIValue + ICMSSTValue: ICMS
// proprio and PIS/COFINS are contra-revenue/expense amounts, not price
// components. For purchases FinalTotalNet is the caller-supplied invoice total
// and the tax values are informational.
type TaxCascadeResult struct {
	IPIValue      decimal.Decimal `json:"ipiValue"`
	ICMSValue     decimal.Decimal `json:"icmsValue"`
	ICMSSTValue   decimal.Decimal `json:"icmsStValue"`
	PISValue      decimal.Decimal `json:"pisValue"`
	COFINSValue   decimal.Decimal `json:"cofinsValue"`
	FinalTotalNet decimal.Decimal `json:"finalTotalNet"`

	Details []TaxCalculationDetail `json:"details,omitempty"`
}

// TaxCalculationDetail records one step of the cascade for audit traceability.
type TaxCalculationDetail struct {
	TaxType         string          `json:"taxType"`
	Description     string          `json:"description"`
	RateApplied     decimal.Decimal `json:"rateApplied"`
	BaseValue       decimal.Decimal `json:"baseValue"`
	CalculatedValue decimal.Decimal `json:"calculatedValue"`
}
