package services_test

import (
	"errors"
	"testing"

	"github.com/FiscalFlow/fiscal_flow_app/internal/apperrors"
	"github.com/FiscalFlow/fiscal_flow_app/internal/core/domain"
	"github.com/FiscalFlow/fiscal_flow_app/internal/core/services"
	"github.com/FiscalFlow/fiscal_flow_app/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullRoleMap() domain.AccountRoleMap {
	accounts := make(domain.AccountRoleMap, len(domain.RoleDefinitions))
	for role := range domain.RoleDefinitions {
		accounts[role] = uuid.NewString()
	}
	return accounts
}

func TestGenerate_SaleFullCascade(t *testing.T) {
	calc := services.NewTaxCascadeService()
	gen := services.NewEntryGeneratorService()
	accounts := fullRoleMap()
	mainAccountID := uuid.NewString()

	op := domain.FiscalOperation{
		Kind:        domain.Sale,
		GrossAmount: dec("1000"),
		ICMSRate:    dec("18"),
		IPIRate:     dec("10"),
		PISRate:     dec("1.65"),
		COFINSRate:  dec("7.6"),
		MVARate:     dec("30"),
	}
	taxes := calc.Compute(op)

	lines, err := gen.Generate(op, taxes, accounts, mainAccountID)
	require.NoError(t, err)

	// primary + revenue + IPI + ICMS pair + ST + PIS pair + COFINS pair
	require.Len(t, lines, 9)

	debits, credits := accounting.SumLines(lines)
	assert.True(t, debits.Equal(credits), "debits %s != credits %s", debits, credits)

	primary := lines[0]
	require.NotNil(t, primary.Debit)
	assert.Equal(t, mainAccountID, primary.AccountID)
	assertDecEqual(t, "1159.4", *primary.Debit, "primary debit")
	assertDecEqual(t, "1000", primary.TotalGross, "primary metadata gross")
	assertDecEqual(t, "198", primary.ICMSValue, "primary metadata icms")
	assertDecEqual(t, "59.4", primary.ICMSSTValue, "primary metadata icms-st")

	revenue := lines[1]
	require.NotNil(t, revenue.Credit)
	assert.Equal(t, accounts[domain.RoleSalesRevenue], revenue.AccountID)
	assertDecEqual(t, "1000", *revenue.Credit, "revenue credit")

	// ICMS próprio is booked as contra-revenue, not expense.
	contra := lines[3]
	require.NotNil(t, contra.Debit)
	assert.Equal(t, accounts[domain.RoleSalesRevenue], contra.AccountID)
	assertDecEqual(t, "198", *contra.Debit, "contra-revenue debit")

	// Fiscal metadata lives on the primary line only.
	for _, line := range lines[1:] {
		assert.True(t, line.TotalGross.IsZero(), "metadata leaked to line for account %s", line.AccountID)
	}
}

func TestGenerate_SaleWithProductCosting(t *testing.T) {
	calc := services.NewTaxCascadeService()
	gen := services.NewEntryGeneratorService()
	accounts := fullRoleMap()

	op := domain.FiscalOperation{
		Kind:        domain.Sale,
		GrossAmount: dec("1000"),
		ICMSRate:    dec("18"),
		IPIRate:     dec("10"),
		PISRate:     dec("1.65"),
		COFINSRate:  dec("7.6"),
		MVARate:     dec("30"),
		ProductID:   uuid.NewString(),
		Quantity:    dec("10"),
		UnitCost:    dec("8"),
	}
	taxes := calc.Compute(op)

	lines, err := gen.Generate(op, taxes, accounts, uuid.NewString())
	require.NoError(t, err)
	require.Len(t, lines, 11)

	debits, credits := accounting.SumLines(lines)
	assert.True(t, debits.Equal(credits), "debits %s != credits %s", debits, credits)

	cogs := lines[len(lines)-2]
	inventory := lines[len(lines)-1]
	require.NotNil(t, cogs.Debit)
	require.NotNil(t, inventory.Credit)
	assert.Equal(t, accounts[domain.RoleCostOfGoodsSold], cogs.AccountID)
	assert.Equal(t, accounts[domain.RoleFinishedGoodsInventory], inventory.AccountID)
	assertDecEqual(t, "80", *cogs.Debit, "cogs debit")
	assertDecEqual(t, "80", *inventory.Credit, "inventory credit")
}

func TestGenerate_SaleSkipsZeroTaxes(t *testing.T) {
	calc := services.NewTaxCascadeService()
	gen := services.NewEntryGeneratorService()
	accounts := fullRoleMap()

	op := domain.FiscalOperation{
		Kind:        domain.Sale,
		GrossAmount: dec("500"),
		ICMSRate:    dec("12"),
		IPIRate:     dec("5"),
	}
	lines, err := gen.Generate(op, calc.Compute(op), accounts, uuid.NewString())
	require.NoError(t, err)

	// primary + revenue + IPI + ICMS pair; no ST, PIS, COFINS or COGS lines.
	require.Len(t, lines, 5)
	debits, credits := accounting.SumLines(lines)
	assert.True(t, debits.Equal(credits))
}

func TestGenerate_Purchase(t *testing.T) {
	calc := services.NewTaxCascadeService()
	gen := services.NewEntryGeneratorService()
	accounts := fullRoleMap()

	op := domain.FiscalOperation{
		Kind:        domain.Purchase,
		GrossAmount: dec("1000"),
		ICMSRate:    dec("18"),
		IPIRate:     dec("10"),
		TotalNet:    dec("1200"),
	}
	lines, err := gen.Generate(op, calc.Compute(op), accounts, uuid.NewString())
	require.NoError(t, err)

	// Purchases always record a single inventory/supplier pair; taxes are
	// metadata, never lines of their own.
	require.Len(t, lines, 2)

	inventory := lines[0]
	supplier := lines[1]
	require.NotNil(t, inventory.Debit)
	require.NotNil(t, supplier.Credit)
	assert.Equal(t, accounts[domain.RoleMerchandiseInventory], inventory.AccountID)
	assert.Equal(t, accounts[domain.RoleSuppliersPayable], supplier.AccountID)
	assertDecEqual(t, "1200", *inventory.Debit, "inventory debit")
	assertDecEqual(t, "1200", *supplier.Credit, "supplier credit")
	assertDecEqual(t, "180", inventory.ICMSValue, "inventory metadata icms")
	assertDecEqual(t, "100", inventory.IPIValue, "inventory metadata ipi")
}

func TestGenerate_MissingRoleFails(t *testing.T) {
	calc := services.NewTaxCascadeService()
	gen := services.NewEntryGeneratorService()
	accounts := fullRoleMap()
	delete(accounts, domain.RolePISPayable)

	op := domain.FiscalOperation{
		Kind:        domain.Sale,
		GrossAmount: dec("1000"),
		PISRate:     dec("1.65"),
	}
	lines, err := gen.Generate(op, calc.Compute(op), accounts, uuid.NewString())

	require.Error(t, err)
	assert.Nil(t, lines)
	assert.True(t, errors.Is(err, apperrors.ErrAccountResolution))
	assert.Contains(t, err.Error(), string(domain.RolePISPayable))
}

func TestGenerate_NegativeGrossFails(t *testing.T) {
	calc := services.NewTaxCascadeService()
	gen := services.NewEntryGeneratorService()

	op := domain.FiscalOperation{
		Kind:        domain.Sale,
		GrossAmount: dec("-1000"),
		ICMSRate:    dec("18"),
	}
	lines, err := gen.Generate(op, calc.Compute(op), fullRoleMap(), uuid.NewString())

	require.Error(t, err)
	assert.Nil(t, lines)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}

func TestGenerate_PurchaseWithoutTotalNetFails(t *testing.T) {
	calc := services.NewTaxCascadeService()
	gen := services.NewEntryGeneratorService()

	// No invoice total means no meaningful inventory/supplier pair.
	op := domain.FiscalOperation{
		Kind:        domain.Purchase,
		GrossAmount: dec("1000"),
		ICMSRate:    dec("18"),
	}
	lines, err := gen.Generate(op, calc.Compute(op), fullRoleMap(), uuid.NewString())

	require.Error(t, err)
	assert.Nil(t, lines)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}

func TestGenerate_MissingMainAccountFails(t *testing.T) {
	calc := services.NewTaxCascadeService()
	gen := services.NewEntryGeneratorService()

	op := domain.FiscalOperation{Kind: domain.Sale, GrossAmount: dec("100")}
	_, err := gen.Generate(op, calc.Compute(op), fullRoleMap(), "")

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}

// Balance must hold for every combination of rates, not just the scenarios
// above.
func TestGenerate_BalanceInvariant(t *testing.T) {
	calc := services.NewTaxCascadeService()
	gen := services.NewEntryGeneratorService()
	accounts := fullRoleMap()

	rateSets := []domain.FiscalOperation{
		{Kind: domain.Sale, GrossAmount: dec("0.01"), ICMSRate: dec("18")},
		{Kind: domain.Sale, GrossAmount: dec("99999.99"), IPIRate: dec("65"), MVARate: dec("120"), ICMSRate: dec("25")},
		{Kind: domain.Sale, GrossAmount: dec("1234.56"), PISRate: dec("0.65"), COFINSRate: dec("3")},
		{Kind: domain.Sale, GrossAmount: dec("10"), ICMSRate: dec("7"), MVARate: dec("1000")},
		{Kind: domain.Purchase, GrossAmount: dec("500"), ICMSRate: dec("18"), TotalNet: dec("620.77")},
	}
	for _, op := range rateSets {
		lines, err := gen.Generate(op, calc.Compute(op), accounts, uuid.NewString())
		require.NoError(t, err)

		debits, credits := accounting.SumLines(lines)
		assert.True(t, debits.Equal(credits), "unbalanced for %+v: %s != %s", op, debits, credits)
		for _, line := range lines {
			assert.False(t, line.Amount().LessThan(decimal.Zero))
		}
	}
}
