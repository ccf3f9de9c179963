package domain

import (
	"github.com/shopspring/decimal"
)

// Product represents an inventory item whose stock counter the fiscal entry
// flow adjusts on sales and purchases.
type Product struct {
	ProductID     string          `json:"productID"` // Primary Key (UUID)
	Name          string          `json:"name"`
	StockQuantity decimal.Decimal `json:"stockQuantity"`
	UnitCost      decimal.Decimal `json:"unitCost"` // Current average cost
	IsActive      bool            `json:"isActive"`
	AuditFields
}
