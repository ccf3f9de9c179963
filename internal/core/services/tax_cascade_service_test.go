package services_test

import (
	"testing"

	"github.com/FiscalFlow/fiscal_flow_app/internal/core/domain"
	"github.com/FiscalFlow/fiscal_flow_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecEqual(t *testing.T, want string, got decimal.Decimal, label string) {
	t.Helper()
	assert.Truef(t, got.Equal(dec(want)), "%s: want %s, got %s", label, want, got.String())
}

func TestTaxCascade_Sale(t *testing.T) {
	calc := services.NewTaxCascadeService()

	tests := []struct {
		name          string
		op            domain.FiscalOperation
		ipi           string
		icms          string
		icmsSt        string
		pis           string
		cofins        string
		finalTotalNet string
	}{
		{
			name: "full cascade with every rate set",
			op: domain.FiscalOperation{
				Kind:        domain.Sale,
				GrossAmount: dec("1000"),
				ICMSRate:    dec("18"),
				IPIRate:     dec("10"),
				PISRate:     dec("1.65"),
				COFINSRate:  dec("7.6"),
				MVARate:     dec("30"),
			},
			ipi: "100", icms: "198", icmsSt: "59.4", pis: "16.5", cofins: "76",
			finalTotalNet: "1159.4",
		},
		{
			name: "IPI widens the ICMS base",
			op: domain.FiscalOperation{
				Kind:        domain.Sale,
				GrossAmount: dec("500"),
				ICMSRate:    dec("12"),
				IPIRate:     dec("5"),
			},
			ipi: "25", icms: "63", icmsSt: "0", pis: "0", cofins: "0",
			finalTotalNet: "525",
		},
		{
			name: "ICMS-ST without IPI",
			op: domain.FiscalOperation{
				Kind:        domain.Sale,
				GrossAmount: dec("2000"),
				ICMSRate:    dec("17"),
				MVARate:     dec("50"),
			},
			ipi: "0", icms: "340", icmsSt: "170", pis: "0", cofins: "0",
			finalTotalNet: "2170",
		},
		{
			name: "all rates absent yields gross as net",
			op: domain.FiscalOperation{
				Kind:        domain.Sale,
				GrossAmount: dec("750"),
			},
			ipi: "0", icms: "0", icmsSt: "0", pis: "0", cofins: "0",
			finalTotalNet: "750",
		},
		{
			name: "zero gross yields all-zero taxes",
			op: domain.FiscalOperation{
				Kind:     domain.Sale,
				ICMSRate: dec("18"),
				IPIRate:  dec("10"),
				MVARate:  dec("30"),
			},
			ipi: "0", icms: "0", icmsSt: "0", pis: "0", cofins: "0",
			finalTotalNet: "0",
		},
		{
			name: "negative differential is clamped at zero",
			op: domain.FiscalOperation{
				Kind:        domain.Sale,
				GrossAmount: dec("1000"),
				ICMSRate:    dec("18"),
				MVARate:     dec("-50"),
			},
			ipi: "0", icms: "180", icmsSt: "0", pis: "0", cofins: "0",
			finalTotalNet: "1000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.Compute(tt.op)

			assertDecEqual(t, tt.ipi, got.IPIValue, "ipiValue")
			assertDecEqual(t, tt.icms, got.ICMSValue, "icmsValue")
			assertDecEqual(t, tt.icmsSt, got.ICMSSTValue, "icmsStValue")
			assertDecEqual(t, tt.pis, got.PISValue, "pisValue")
			assertDecEqual(t, tt.cofins, got.COFINSValue, "cofinsValue")
			assertDecEqual(t, tt.finalTotalNet, got.FinalTotalNet, "finalTotalNet")
		})
	}
}

func TestTaxCascade_Purchase(t *testing.T) {
	calc := services.NewTaxCascadeService()

	t.Run("taxes computed off gross with net pass-through", func(t *testing.T) {
		got := calc.Compute(domain.FiscalOperation{
			Kind:        domain.Purchase,
			GrossAmount: dec("1000"),
			ICMSRate:    dec("18"),
			IPIRate:     dec("10"),
			TotalNet:    dec("1200"),
		})

		assertDecEqual(t, "180", got.ICMSValue, "icmsValue")
		assertDecEqual(t, "100", got.IPIValue, "ipiValue")
		assertDecEqual(t, "1200", got.FinalTotalNet, "finalTotalNet")
	})

	t.Run("no IPI widening on purchases", func(t *testing.T) {
		got := calc.Compute(domain.FiscalOperation{
			Kind:        domain.Purchase,
			GrossAmount: dec("1000"),
			ICMSRate:    dec("18"),
			IPIRate:     dec("10"),
			MVARate:     dec("30"),
			TotalNet:    dec("1100"),
		})

		// ST base is gross*(1+mva), not the IPI-widened sale base.
		assertDecEqual(t, "180", got.ICMSValue, "icmsValue")
		assertDecEqual(t, "54", got.ICMSSTValue, "icmsStValue")
	})

	t.Run("missing totalNet defaults to zero", func(t *testing.T) {
		got := calc.Compute(domain.FiscalOperation{
			Kind:        domain.Purchase,
			GrossAmount: dec("500"),
			ICMSRate:    dec("12"),
		})
		assertDecEqual(t, "0", got.FinalTotalNet, "finalTotalNet")
	})
}

func TestTaxCascade_Details(t *testing.T) {
	calc := services.NewTaxCascadeService()

	got := calc.Compute(domain.FiscalOperation{
		Kind:        domain.Sale,
		GrossAmount: dec("1000"),
		ICMSRate:    dec("18"),
		IPIRate:     dec("10"),
		MVARate:     dec("30"),
	})

	require.Len(t, got.Details, 3)
	assert.Equal(t, "IPI", got.Details[0].TaxType)
	assert.Equal(t, "ICMS", got.Details[1].TaxType)
	assert.Equal(t, "ICMS-ST", got.Details[2].TaxType)
	assertDecEqual(t, "1100", got.Details[1].BaseValue, "icms base")
	assertDecEqual(t, "1430", got.Details[2].BaseValue, "st base")
}
