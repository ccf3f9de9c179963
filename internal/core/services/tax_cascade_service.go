package services

import (
	"github.com/FiscalFlow/fiscal_flow_app/internal/core/domain"
	portssvc "github.com/FiscalFlow/fiscal_flow_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// taxCascadeService implements the TaxCalculatorSvc interface. It is pure
// decimal arithmetic; no I/O, no state.
type taxCascadeService struct{}

// NewTaxCascadeService creates the tax cascade calculator.
func NewTaxCascadeService() portssvc.TaxCalculatorSvc {
	return &taxCascadeService{}
}

// Ensure taxCascadeService implements the TaxCalculatorSvc interface
var _ portssvc.TaxCalculatorSvc = (*taxCascadeService)(nil)

// pct returns base * rate / 100.
func pct(base, rate decimal.Decimal) decimal.Decimal {
	return base.Mul(rate).Div(hundred)
}

func (s *taxCascadeService) Compute(op domain.FiscalOperation) domain.TaxCascadeResult {
	if op.Kind == domain.Purchase {
		return s.computePurchase(op)
	}
	return s.computeSale(op)
}

// computeSale applies the legally-ordered cascade: IPI off gross, ICMS off the
// IPI-widened base, PIS/COFINS off the original gross, ICMS-ST as the
// differential over the MVA-marked-up base. A zero rate contributes zero; it
// never fails.
func (s *taxCascadeService) computeSale(op domain.FiscalOperation) domain.TaxCascadeResult {
	gross := op.GrossAmount
	result := domain.TaxCascadeResult{
		IPIValue:    decimal.Zero,
		ICMSValue:   decimal.Zero,
		ICMSSTValue: decimal.Zero,
		PISValue:    decimal.Zero,
		COFINSValue: decimal.Zero,
	}

	if !op.IPIRate.IsZero() {
		result.IPIValue = pct(gross, op.IPIRate)
		result.Details = append(result.Details, domain.TaxCalculationDetail{
			TaxType:         "IPI",
			Description:     "IPI sobre o valor bruto",
			RateApplied:     op.IPIRate,
			BaseValue:       gross,
			CalculatedValue: result.IPIValue,
		})
	}

	// IPI widens the ICMS base: ICMS applies to price + IPI.
	icmsBase := gross.Add(result.IPIValue)
	if !op.ICMSRate.IsZero() {
		result.ICMSValue = pct(icmsBase, op.ICMSRate)
		result.Details = append(result.Details, domain.TaxCalculationDetail{
			TaxType:         "ICMS",
			Description:     "ICMS sobre a base ampliada (bruto + IPI)",
			RateApplied:     op.ICMSRate,
			BaseValue:       icmsBase,
			CalculatedValue: result.ICMSValue,
		})
	}

	// PIS and COFINS use the original gross, not the widened base.
	if !op.PISRate.IsZero() {
		result.PISValue = pct(gross, op.PISRate)
		result.Details = append(result.Details, domain.TaxCalculationDetail{
			TaxType:         "PIS",
			Description:     "PIS sobre o faturamento bruto",
			RateApplied:     op.PISRate,
			BaseValue:       gross,
			CalculatedValue: result.PISValue,
		})
	}
	if !op.COFINSRate.IsZero() {
		result.COFINSValue = pct(gross, op.COFINSRate)
		result.Details = append(result.Details, domain.TaxCalculationDetail{
			TaxType:         "COFINS",
			Description:     "COFINS sobre o faturamento bruto",
			RateApplied:     op.COFINSRate,
			BaseValue:       gross,
			CalculatedValue: result.COFINSValue,
		})
	}

	if !op.MVARate.IsZero() && !op.ICMSRate.IsZero() {
		stBase := icmsBase.Mul(decimal.NewFromInt(1).Add(op.MVARate.Div(hundred)))
		result.ICMSSTValue = clampZero(pct(stBase, op.ICMSRate).Sub(result.ICMSValue))
		result.Details = append(result.Details, domain.TaxCalculationDetail{
			TaxType:         "ICMS-ST",
			Description:     "Diferencial de substituição tributária sobre base com MVA",
			RateApplied:     op.ICMSRate,
			BaseValue:       stBase,
			CalculatedValue: result.ICMSSTValue,
		})
	}

	// ICMS próprio and PIS/COFINS are contra-revenue/expense amounts, not
	// price components, so they do not add to the invoice total.
	result.FinalTotalNet = gross.Add(result.IPIValue).Add(result.ICMSSTValue)
	return result
}

// computePurchase computes every tax directly off the gross amount with no
// cascading. The net total is the caller-supplied invoice total, passed
// through unchanged.
func (s *taxCascadeService) computePurchase(op domain.FiscalOperation) domain.TaxCascadeResult {
	gross := op.GrossAmount
	result := domain.TaxCascadeResult{
		IPIValue:      pct(gross, op.IPIRate),
		ICMSValue:     pct(gross, op.ICMSRate),
		ICMSSTValue:   decimal.Zero,
		PISValue:      pct(gross, op.PISRate),
		COFINSValue:   pct(gross, op.COFINSRate),
		FinalTotalNet: op.TotalNet,
	}

	for _, t := range []struct {
		taxType string
		rate    decimal.Decimal
		value   decimal.Decimal
	}{
		{"IPI", op.IPIRate, result.IPIValue},
		{"ICMS", op.ICMSRate, result.ICMSValue},
		{"PIS", op.PISRate, result.PISValue},
		{"COFINS", op.COFINSRate, result.COFINSValue},
	} {
		if t.rate.IsZero() {
			continue
		}
		result.Details = append(result.Details, domain.TaxCalculationDetail{
			TaxType:         t.taxType,
			Description:     t.taxType + " sobre o valor bruto da compra",
			RateApplied:     t.rate,
			BaseValue:       gross,
			CalculatedValue: t.value,
		})
	}

	if !op.MVARate.IsZero() && !op.ICMSRate.IsZero() {
		stBase := gross.Mul(decimal.NewFromInt(1).Add(op.MVARate.Div(hundred)))
		result.ICMSSTValue = clampZero(pct(stBase, op.ICMSRate).Sub(result.ICMSValue))
		result.Details = append(result.Details, domain.TaxCalculationDetail{
			TaxType:         "ICMS-ST",
			Description:     "Diferencial de substituição tributária sobre base com MVA",
			RateApplied:     op.ICMSRate,
			BaseValue:       stBase,
			CalculatedValue: result.ICMSSTValue,
		})
	}
	return result
}

// clampZero floors a tax differential at zero. Degenerate rate combinations
// (MVA near zero against an already-collected ICMS) can push the raw
// differential negative; nothing extra is owed in that case.
func clampZero(v decimal.Decimal) decimal.Decimal {
	if v.IsNegative() {
		return decimal.Zero
	}
	return v
}
