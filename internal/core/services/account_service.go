package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/FiscalFlow/fiscal_flow_app/internal/apperrors"
	"github.com/FiscalFlow/fiscal_flow_app/internal/core/domain"
	portsrepo "github.com/FiscalFlow/fiscal_flow_app/internal/core/ports/repositories"
	portssvc "github.com/FiscalFlow/fiscal_flow_app/internal/core/ports/services"
	"github.com/FiscalFlow/fiscal_flow_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new account service
func NewAccountService(repo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: repo}
}

// Ensure accountService implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error) {
	role := req.Role
	if role == "" {
		role = domain.RoleGeneral
	}
	if _, known := domain.RoleDefinitions[role]; !known && role != domain.RoleGeneral {
		err := fmt.Errorf("%w: unknown account role %s", apperrors.ErrValidation, role)
		s.LogError(ctx, err, "Rejected account creation", slog.String("role", string(role)))
		return nil, err
	}

	now := time.Now()
	account := domain.Account{
		AccountID:   uuid.NewString(),
		Name:        req.Name,
		AccountType: req.AccountType,
		Role:        role,
		Description: req.Description,
		IsActive:    true,
		Balance:     decimal.Zero,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account",
			slog.String("account_id", account.AccountID),
			slog.String("name", account.Name))
		return nil, err
	}

	s.LogInfo(ctx, "Account created successfully",
		slog.String("account_id", account.AccountID),
		slog.String("name", account.Name))
	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by ID",
				slog.String("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context, params dto.ListAccountsParams) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, params.Limit, params.Offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts",
			slog.Int("limit", params.Limit),
			slog.Int("offset", params.Offset))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	return accounts, nil
}

// ResolveRoles maps every requested role to an account ID, creating the
// missing ones from the role definition table. The whole map resolves or the
// call fails; partial role maps would let the line generator emit entries
// against absent accounts.
func (s *accountService) ResolveRoles(ctx context.Context, roles []domain.AccountRole, userID string) (domain.AccountRoleMap, error) {
	existing, err := s.accountRepo.FindAccountsByRoles(ctx, roles)
	if err != nil {
		s.LogError(ctx, err, "Failed to look up accounts by role")
		return nil, fmt.Errorf("failed to look up accounts by role: %w", err)
	}

	resolved := make(domain.AccountRoleMap, len(roles))
	for _, role := range roles {
		if account, ok := existing[role]; ok {
			resolved[role] = account.AccountID
			continue
		}

		def, ok := domain.RoleDefinitions[role]
		if !ok {
			return nil, fmt.Errorf("%w: role %s has no definition to create an account from", apperrors.ErrAccountResolution, role)
		}

		account, err := s.createRoleAccount(ctx, role, def, userID)
		if err != nil {
			return nil, fmt.Errorf("%w: role %s (%s)", apperrors.ErrAccountResolution, role, def.Name)
		}
		resolved[role] = account.AccountID
	}
	return resolved, nil
}

// createRoleAccount creates the chart-of-accounts entry for a role. A
// duplicate error means another request created it first; re-read by name.
func (s *accountService) createRoleAccount(ctx context.Context, role domain.AccountRole, def domain.RoleDefinition, userID string) (*domain.Account, error) {
	now := time.Now()
	account := domain.Account{
		AccountID:   uuid.NewString(),
		Name:        def.Name,
		AccountType: def.AccountType,
		Role:        role,
		IsActive:    true,
		Balance:     decimal.Zero,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	err := s.accountRepo.SaveAccount(ctx, account)
	if err == nil {
		s.LogInfo(ctx, "Created account for fiscal role",
			slog.String("account_id", account.AccountID),
			slog.String("role", string(role)))
		return &account, nil
	}
	if errors.Is(err, apperrors.ErrDuplicate) {
		return s.accountRepo.FindAccountByName(ctx, def.Name)
	}
	s.LogError(ctx, err, "Failed to create account for fiscal role",
		slog.String("role", string(role)))
	return nil, err
}

func (s *accountService) FindOrCreateAccountByName(ctx context.Context, name string, userID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByName(ctx, name)
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to find account by name", slog.String("name", name))
		return nil, err
	}

	now := time.Now()
	created := domain.Account{
		AccountID:   uuid.NewString(),
		Name:        name,
		AccountType: domain.Asset,
		Role:        domain.RoleGeneral,
		Description: "Criada automaticamente na confirmação de lançamentos",
		IsActive:    true,
		Balance:     decimal.Zero,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.accountRepo.SaveAccount(ctx, created); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return s.accountRepo.FindAccountByName(ctx, name)
		}
		s.LogError(ctx, err, "Failed to auto-create account", slog.String("name", name))
		return nil, fmt.Errorf("%w: could not create account %q", apperrors.ErrAccountResolution, name)
	}

	s.LogInfo(ctx, "Auto-created account from proposed entry",
		slog.String("account_id", created.AccountID),
		slog.String("name", name))
	return &created, nil
}
