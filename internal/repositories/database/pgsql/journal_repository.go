package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/FiscalFlow/fiscal_flow_app/internal/apperrors"
	"github.com/FiscalFlow/fiscal_flow_app/internal/core/domain"
	portsrepo "github.com/FiscalFlow/fiscal_flow_app/internal/core/ports/repositories"
	"github.com/FiscalFlow/fiscal_flow_app/internal/models"
	"github.com/FiscalFlow/fiscal_flow_app/internal/utils/accounting"
	"github.com/FiscalFlow/fiscal_flow_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const entryColumns = `entry_id, entry_date, description, reference, status, created_at, created_by, last_updated_at, last_updated_by`

const lineColumns = `line_id, entry_id, account_id, debit, credit, product_id, quantity, unit_cost, total_gross, icms_value, ipi_value, pis_value, cofins_value, icms_st_value, total_net, created_at, created_by, last_updated_at, last_updated_by`

type PgxJournalRepository struct {
	BaseRepository
	accountRepo portsrepo.AccountRepositoryFacade
}

// newPgxJournalRepository creates a new repository for journal entry and line data.
func newPgxJournalRepository(pool *pgxpool.Pool, accountRepo portsrepo.AccountRepositoryFacade) portsrepo.JournalRepositoryWithTx {
	return &PgxJournalRepository{
		BaseRepository: BaseRepository{Pool: pool},
		accountRepo:    accountRepo,
	}
}

// Ensure PgxJournalRepository implements portsrepo.JournalRepositoryWithTx
var _ portsrepo.JournalRepositoryWithTx = (*PgxJournalRepository)(nil)

func scanEntry(row pgx.Row) (models.JournalEntry, error) {
	var m models.JournalEntry
	err := row.Scan(
		&m.EntryID,
		&m.EntryDate,
		&m.Description,
		&m.Reference,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func scanLine(row pgx.Row) (models.EntryLine, error) {
	var m models.EntryLine
	err := row.Scan(
		&m.LineID,
		&m.EntryID,
		&m.AccountID,
		&m.Debit,
		&m.Credit,
		&m.ProductID,
		&m.Quantity,
		&m.UnitCost,
		&m.TotalGross,
		&m.ICMSValue,
		&m.IPIValue,
		&m.PISValue,
		&m.COFINSValue,
		&m.ICMSSTValue,
		&m.TotalNet,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func insertEntryTx(ctx context.Context, tx pgx.Tx, entry domain.JournalEntry) error {
	m := mapping.ToModelJournalEntry(entry)
	query := `
		INSERT INTO journal_entries (` + entryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := tx.Exec(ctx, query,
		m.EntryID,
		m.EntryDate,
		m.Description,
		m.Reference,
		m.Status,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert journal entry "+m.EntryID, err)
	}
	return nil
}

// SaveEntry persists a journal entry header on its own.
func (r *PgxJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := insertEntryTx(ctx, tx, entry); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// SaveEntryWithLines persists a header plus its lines and applies account
// balance changes atomically.
func (r *PgxJournalRepository) SaveEntryWithLines(ctx context.Context, entry domain.JournalEntry, lines []domain.EntryLine) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := insertEntryTx(ctx, tx, entry); err != nil {
		return err
	}
	if err := r.insertLinesTx(ctx, tx, entry.EntryID, lines); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// SaveEntryLines persists lines for an already-existing entry and applies
// account balance changes atomically.
func (r *PgxJournalRepository) SaveEntryLines(ctx context.Context, entryID string, lines []domain.EntryLine) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := r.insertLinesTx(ctx, tx, entryID, lines); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// insertLinesTx locks the touched accounts, applies the aggregated balance
// deltas, then batch-inserts the line rows, all on the caller's transaction.
func (r *PgxJournalRepository) insertLinesTx(ctx context.Context, tx pgx.Tx, entryID string, lines []domain.EntryLine) error {
	if len(lines) == 0 {
		return nil
	}

	accountIDSet := make(map[string]struct{}, len(lines))
	accountIDs := make([]string, 0, len(lines))
	for _, line := range lines {
		if _, seen := accountIDSet[line.AccountID]; !seen {
			accountIDSet[line.AccountID] = struct{}{}
			accountIDs = append(accountIDs, line.AccountID)
		}
	}

	lockedAccounts, err := r.accountRepo.FindAccountsByIDsForUpdate(ctx, tx, accountIDs)
	if err != nil {
		return apperrors.NewAppError(500, "failed to lock accounts for update", err)
	}

	balanceChanges := make(map[string]decimal.Decimal, len(lockedAccounts))
	for _, line := range lines {
		account := lockedAccounts[line.AccountID]
		signedAmount, err := accounting.CalculateSignedAmount(line, account.AccountType)
		if err != nil {
			return apperrors.NewAppError(500, "failed to calculate signed amount for line "+line.LineID, err)
		}
		balanceChanges[line.AccountID] = balanceChanges[line.AccountID].Add(signedAmount)
	}

	userID := lines[0].CreatedBy
	now := lines[0].CreatedAt
	if err := r.accountRepo.UpdateAccountBalancesInTx(ctx, tx, balanceChanges, userID, now); err != nil {
		return apperrors.NewAppError(500, "failed to update account balances", err)
	}

	lineQuery := `
		INSERT INTO entry_lines (` + lineColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19);
	`
	batch := &pgx.Batch{}
	for _, line := range lines {
		m := mapping.ToModelEntryLine(line)
		m.EntryID = entryID
		batch.Queue(lineQuery,
			m.LineID,
			m.EntryID,
			m.AccountID,
			m.Debit,
			m.Credit,
			m.ProductID,
			m.Quantity,
			m.UnitCost,
			m.TotalGross,
			m.ICMSValue,
			m.IPIValue,
			m.PISValue,
			m.COFINSValue,
			m.ICMSSTValue,
			m.TotalNet,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to execute line batch for entry "+entryID, err)
	}
	return nil
}

// FindEntryByID retrieves a journal entry header by its ID.
func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE entry_id = $1;`

	m, err := scanEntry(r.Pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find journal entry by ID "+entryID, err)
	}

	entry := mapping.ToDomainJournalEntry(m)
	return &entry, nil
}

// ListEntries retrieves a paginated list of journal entries, newest first.
func (r *PgxJournalRepository) ListEntries(ctx context.Context, limit int, offset int) ([]domain.JournalEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT ` + entryColumns + `
		FROM journal_entries
		ORDER BY entry_date DESC, created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query journal entries", err)
	}
	defer rows.Close()

	entries := []domain.JournalEntry{}
	for rows.Next() {
		m, err := scanEntry(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan journal entry row", err)
		}
		entries = append(entries, mapping.ToDomainJournalEntry(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating journal entry rows", err)
	}
	return entries, nil
}

// UpdateEntryStatus updates the status of a journal entry.
func (r *PgxJournalRepository) UpdateEntryStatus(ctx context.Context, entryID string, status domain.EntryStatus, updatedByUserID string, updatedAt time.Time) error {
	query := `
		UPDATE journal_entries
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE entry_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, entryID, status, updatedAt, updatedByUserID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update status for entry "+entryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindLinesByEntryID retrieves all lines of a journal entry in insertion order.
func (r *PgxJournalRepository) FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.EntryLine, error) {
	query := `
		SELECT ` + lineColumns + `
		FROM entry_lines
		WHERE entry_id = $1
		ORDER BY created_at, line_id;
	`
	rows, err := r.Pool.Query(ctx, query, entryID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query lines for entry "+entryID, err)
	}
	defer rows.Close()

	lines := []models.EntryLine{}
	for rows.Next() {
		m, err := scanLine(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan line row for entry "+entryID, err)
		}
		lines = append(lines, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating line rows for entry "+entryID, err)
	}
	return mapping.ToDomainEntryLineSlice(lines), nil
}

// FindLinesByAccountID retrieves a paginated list of lines for one account,
// newest first.
func (r *PgxJournalRepository) FindLinesByAccountID(ctx context.Context, accountID string, limit int, offset int) ([]domain.EntryLine, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT ` + lineColumns + `
		FROM entry_lines
		WHERE account_id = $1
		ORDER BY created_at DESC, line_id
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, accountID, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query lines for account "+accountID, err)
	}
	defer rows.Close()

	lines := []models.EntryLine{}
	for rows.Next() {
		m, err := scanLine(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan line row for account "+accountID, err)
		}
		lines = append(lines, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating line rows for account "+accountID, err)
	}
	return mapping.ToDomainEntryLineSlice(lines), nil
}
