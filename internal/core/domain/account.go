package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// AccountRole identifies the semantic role an account plays in fiscal entry
// generation. The line generator consumes accounts by role, never by free-text
// name; names only matter at the resolution boundary.
type AccountRole string

const (
	RoleSalesRevenue           AccountRole = "SALES_REVENUE"
	RoleIPIPayable             AccountRole = "IPI_PAYABLE"
	RoleICMSPayable            AccountRole = "ICMS_PAYABLE"
	RoleICMSSTPayable          AccountRole = "ICMS_ST_PAYABLE"
	RolePISPayable             AccountRole = "PIS_PAYABLE"
	RoleCOFINSPayable          AccountRole = "COFINS_PAYABLE"
	RolePISExpense             AccountRole = "PIS_EXPENSE"
	RoleCOFINSExpense          AccountRole = "COFINS_EXPENSE"
	RoleCostOfGoodsSold        AccountRole = "COST_OF_GOODS_SOLD"
	RoleFinishedGoodsInventory AccountRole = "FINISHED_GOODS_INVENTORY"
	RoleMerchandiseInventory   AccountRole = "MERCHANDISE_INVENTORY"
	RoleSuppliersPayable       AccountRole = "SUPPLIERS_PAYABLE"
	// RoleGeneral tags accounts auto-created from proposed entries, where no
	// fiscal role can be inferred from the name.
	RoleGeneral AccountRole = "GENERAL"
)

// RoleDefinition describes how an account for a given role is created when it
// does not exist yet: its ledger name and fundamental type.
type RoleDefinition struct {
	Name        string
	AccountType AccountType
}

// RoleDefinitions is the fixed chart-of-accounts vocabulary the fiscal entry
// generator depends on. The names match the Brazilian chart the product ships
// with.
var RoleDefinitions = map[AccountRole]RoleDefinition{
	RoleSalesRevenue:           {Name: "Receita de Vendas", AccountType: Revenue},
	RoleIPIPayable:             {Name: "IPI a Recolher", AccountType: Liability},
	RoleICMSPayable:            {Name: "ICMS a Recolher", AccountType: Liability},
	RoleICMSSTPayable:          {Name: "ICMS-ST a Recolher", AccountType: Liability},
	RolePISPayable:             {Name: "PIS a Recolher", AccountType: Liability},
	RoleCOFINSPayable:          {Name: "COFINS a Recolher", AccountType: Liability},
	RolePISExpense:             {Name: "PIS sobre Faturamento", AccountType: Expense},
	RoleCOFINSExpense:          {Name: "COFINS sobre Faturamento", AccountType: Expense},
	RoleCostOfGoodsSold:        {Name: "Custo da Mercadoria Vendida", AccountType: Expense},
	RoleFinishedGoodsInventory: {Name: "Estoque de Produtos Acabados", AccountType: Asset},
	RoleMerchandiseInventory:   {Name: "Estoque de Mercadorias", AccountType: Asset},
	RoleSuppliersPayable:       {Name: "Fornecedores", AccountType: Liability},
}

// SaleRoles are the roles that must resolve before a sale entry can be
// generated.
var SaleRoles = []AccountRole{
	RoleSalesRevenue,
	RoleIPIPayable,
	RoleICMSPayable,
	RoleICMSSTPayable,
	RolePISPayable,
	RoleCOFINSPayable,
	RolePISExpense,
	RoleCOFINSExpense,
	RoleCostOfGoodsSold,
	RoleFinishedGoodsInventory,
}

// PurchaseRoles are the roles that must resolve before a purchase entry can be
// generated.
var PurchaseRoles = []AccountRole{
	RoleMerchandiseInventory,
	RoleSuppliersPayable,
}

// AccountRoleMap maps resolved roles to concrete account IDs for one
// operation.
type AccountRoleMap map[AccountRole]string

// Account represents a ledger account within the core domain.
type Account struct {
	AccountID   string      `json:"accountID"`   // Primary Key (UUID)
	Name        string      `json:"name"`        // Ledger name, unique
	AccountType AccountType `json:"accountType"` // ASSET, LIABILITY, etc.
	Role        AccountRole `json:"role"`        // Semantic role for fiscal entry generation
	Description string      `json:"description"` // Nullable user description
	IsActive    bool        `json:"isActive"`    // Soft delete or status flag
	AuditFields             // Embed CreatedAt, CreatedBy, etc.
	Balance     decimal.Decimal `json:"balance"` // Persisted account balance
}
