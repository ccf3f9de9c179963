package services

import (
	"context"

	"github.com/FiscalFlow/fiscal_flow_app/internal/core/domain"
	"github.com/FiscalFlow/fiscal_flow_app/internal/dto"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific account by its ID.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts retrieves a paginated list of accounts.
	ListAccounts(ctx context.Context, params dto.ListAccountsParams) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	// CreateAccount persists a new account.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error)
}

// AccountResolverSvc resolves semantic account roles and free-text account
// names to concrete accounts, creating missing accounts on demand.
type AccountResolverSvc interface {
	// ResolveRoles maps each requested role to an account ID, creating any
	// missing account from the role's definition. Fails with
	// apperrors.ErrAccountResolution when a role can neither be found nor
	// created.
	ResolveRoles(ctx context.Context, roles []domain.AccountRole, userID string) (domain.AccountRoleMap, error)

	// FindOrCreateAccountByName returns the account with the given ledger
	// name, creating it with the default role when absent.
	FindOrCreateAccountByName(ctx context.Context, name string, userID string) (*domain.Account, error)
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
	AccountResolverSvc
}
