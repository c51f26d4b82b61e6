package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stabilis-labs/tes_engine/internal/apperrors"
	"github.com/stabilis-labs/tes_engine/internal/core/domain"
	"github.com/stabilis-labs/tes_engine/internal/core/ports"
	"github.com/stabilis-labs/tes_engine/internal/utils/mapping"
)

// PgxLedgerRepository is the PostgreSQL ledger backend. Each mint/burn is one
// database transaction covering the balance row and the issuance row, so a
// mutation is applied atomically relative to any other ledger change. Balance
// rows are locked with SELECT ... FOR UPDATE before being changed.
type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates the ledger backend adapter.
func newPgxLedgerRepository(pool *pgxpool.Pool) ports.LedgerRepository {
	return &PgxLedgerRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ ports.LedgerRepository = (*PgxLedgerRepository)(nil)

// TotalIssuance returns the currency's total issuance; zero when no supply
// has ever been minted.
func (r *PgxLedgerRepository) TotalIssuance(ctx context.Context, currencyID domain.CurrencyID) (uint64, error) {
	query := `SELECT total FROM issuance WHERE currency_code = $1;`

	var total decimal.Decimal
	err := r.Pool.QueryRow(ctx, query, string(currencyID)).Scan(&total)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read issuance for %s: %w", currencyID, err)
	}
	return mapping.DecimalToAmount(total), nil
}

// FreeBalance returns the account's spendable balance; zero when the account
// holds nothing in the currency.
func (r *PgxLedgerRepository) FreeBalance(ctx context.Context, currencyID domain.CurrencyID, accountID domain.AccountID) (uint64, error) {
	return r.balanceColumn(ctx, currencyID, accountID, "free")
}

// ReservedBalance returns the account's reserved balance.
func (r *PgxLedgerRepository) ReservedBalance(ctx context.Context, currencyID domain.CurrencyID, accountID domain.AccountID) (uint64, error) {
	return r.balanceColumn(ctx, currencyID, accountID, "reserved")
}

func (r *PgxLedgerRepository) balanceColumn(ctx context.Context, currencyID domain.CurrencyID, accountID domain.AccountID, column string) (uint64, error) {
	// column is one of the two fixed names above, never caller input.
	query := `SELECT ` + column + ` FROM balances WHERE account_id = $1 AND currency_code = $2;`

	var value decimal.Decimal
	err := r.Pool.QueryRow(ctx, query, string(accountID), string(currencyID)).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read %s balance of %s in %s: %w", column, accountID, currencyID, err)
	}
	return mapping.DecimalToAmount(value), nil
}

// Mint credits the account's free balance and raises total issuance in one
// transaction.
func (r *PgxLedgerRepository) Mint(ctx context.Context, currencyID domain.CurrencyID, accountID domain.AccountID, amount uint64) error {
	if amount == 0 {
		return nil
	}
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	now := time.Now().UTC()
	value := mapping.AmountToDecimal(amount)

	balanceQuery := `
		INSERT INTO balances (account_id, currency_code, free, reserved, last_updated_at)
		VALUES ($1, $2, $3, 0, $4)
		ON CONFLICT (account_id, currency_code) DO UPDATE SET
			free = balances.free + EXCLUDED.free,
			last_updated_at = EXCLUDED.last_updated_at;
	`
	if _, err := tx.Exec(ctx, balanceQuery, string(accountID), string(currencyID), value, now); err != nil {
		return fmt.Errorf("failed to credit %s: %w", accountID, err)
	}

	issuanceQuery := `
		INSERT INTO issuance (currency_code, total, last_updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (currency_code) DO UPDATE SET
			total = issuance.total + EXCLUDED.total,
			last_updated_at = EXCLUDED.last_updated_at;
	`
	if _, err := tx.Exec(ctx, issuanceQuery, string(currencyID), value, now); err != nil {
		return fmt.Errorf("failed to raise issuance for %s: %w", currencyID, err)
	}

	return r.Commit(ctx, tx)
}

// Burn debits the account's reserved balance and lowers total issuance in one
// transaction. Fails with apperrors.ErrLedgerRejected when the reserved
// balance does not cover the amount.
func (r *PgxLedgerRepository) Burn(ctx context.Context, currencyID domain.CurrencyID, accountID domain.AccountID, amount uint64) error {
	if amount == 0 {
		return nil
	}
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	reserved, err := r.lockBalance(ctx, tx, currencyID, accountID, "reserved")
	if err != nil {
		return err
	}
	value := mapping.AmountToDecimal(amount)
	if reserved.LessThan(value) {
		return fmt.Errorf("%w: reserved balance %s of %s is below burn amount %d",
			apperrors.ErrLedgerRejected, reserved.String(), accountID, amount)
	}

	now := time.Now().UTC()
	balanceQuery := `
		UPDATE balances SET reserved = reserved - $3, last_updated_at = $4
		WHERE account_id = $1 AND currency_code = $2;
	`
	if _, err := tx.Exec(ctx, balanceQuery, string(accountID), string(currencyID), value, now); err != nil {
		return fmt.Errorf("failed to debit reserve of %s: %w", accountID, err)
	}

	issuanceQuery := `
		UPDATE issuance SET total = GREATEST(total - $2, 0), last_updated_at = $3
		WHERE currency_code = $1;
	`
	if _, err := tx.Exec(ctx, issuanceQuery, string(currencyID), value, now); err != nil {
		return fmt.Errorf("failed to lower issuance for %s: %w", currencyID, err)
	}

	return r.Commit(ctx, tx)
}

// Reserve moves amount from free to reserved. Fails with
// apperrors.ErrLedgerRejected on insufficient free balance.
func (r *PgxLedgerRepository) Reserve(ctx context.Context, currencyID domain.CurrencyID, accountID domain.AccountID, amount uint64) error {
	if amount == 0 {
		return nil
	}
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	free, err := r.lockBalance(ctx, tx, currencyID, accountID, "free")
	if err != nil {
		return err
	}
	value := mapping.AmountToDecimal(amount)
	if free.LessThan(value) {
		return fmt.Errorf("%w: free balance %s of %s is below reserve amount %d",
			apperrors.ErrLedgerRejected, free.String(), accountID, amount)
	}

	query := `
		UPDATE balances SET free = free - $3, reserved = reserved + $3, last_updated_at = $4
		WHERE account_id = $1 AND currency_code = $2;
	`
	if _, err := tx.Exec(ctx, query, string(accountID), string(currencyID), value, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to reserve for %s: %w", accountID, err)
	}

	return r.Commit(ctx, tx)
}

// Unreserve moves amount back from reserved to free, capped at the reserved
// balance.
func (r *PgxLedgerRepository) Unreserve(ctx context.Context, currencyID domain.CurrencyID, accountID domain.AccountID, amount uint64) error {
	if amount == 0 {
		return nil
	}
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	reserved, err := r.lockBalance(ctx, tx, currencyID, accountID, "reserved")
	if err != nil {
		return err
	}
	value := mapping.AmountToDecimal(amount)
	if reserved.LessThan(value) {
		value = reserved
	}

	query := `
		UPDATE balances SET reserved = reserved - $3, free = free + $3, last_updated_at = $4
		WHERE account_id = $1 AND currency_code = $2;
	`
	if _, err := tx.Exec(ctx, query, string(accountID), string(currencyID), value, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to unreserve for %s: %w", accountID, err)
	}

	return r.Commit(ctx, tx)
}

// lockBalance reads one balance column under FOR UPDATE. A missing row reads
// as zero without creating it.
func (r *PgxLedgerRepository) lockBalance(ctx context.Context, tx pgx.Tx, currencyID domain.CurrencyID, accountID domain.AccountID, column string) (decimal.Decimal, error) {
	query := `SELECT ` + column + ` FROM balances WHERE account_id = $1 AND currency_code = $2 FOR UPDATE;`

	var value decimal.Decimal
	err := tx.QueryRow(ctx, query, string(accountID), string(currencyID)).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, nil
		}
		return decimal.Zero, fmt.Errorf("failed to lock balance of %s in %s: %w", accountID, currencyID, err)
	}
	return value, nil
}
