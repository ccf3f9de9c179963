package models

import (
	"github.com/shopspring/decimal"
)

// Product represents a product row with its stock counter.
type Product struct {
	ProductID     string          `db:"product_id"`
	Name          string          `db:"name"`
	StockQuantity decimal.Decimal `db:"stock_quantity"`
	UnitCost      decimal.Decimal `db:"unit_cost"`
	IsActive      bool            `db:"is_active"`
	AuditFields
}
