package journals

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/contalivre/contalivre/internal/ledger/shared"
)

// Repository encapsulates DB operations for journal entries.
type Repository interface {
	List(ctx context.Context) ([]JournalEntry, error)
	WithTx(ctx context.Context, fn func(context.Context, TxRepository) error) error
}

// TxRepository exposes methods available within the posting transaction.
type TxRepository interface {
	InsertEntry(ctx context.Context, in EntryInput) (int64, error)
	InsertPostings(ctx context.Context, entryID int64, lines []EntryLineInput) error
}

type repository struct {
	db *pgxpool.Pool
}

// NewRepository constructs the pgx-backed Repository.
func NewRepository(db *pgxpool.Pool) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]JournalEntry, error) {
	rows, err := r.db.Query(ctx, `SELECT id, date, COALESCE(memo,''), created_at FROM journal_entries ORDER BY date DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var entries []JournalEntry
	for rows.Next() {
		var e JournalEntry
		if err := rows.Scan(&e.ID, &e.Date, &e.Memo, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// WithTx runs fn inside a single transaction; any error rolls everything back
// so no partial entry is ever visible to readers.
func (r *repository) WithTx(ctx context.Context, fn func(context.Context, TxRepository) error) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	wrapper := &txRepository{tx: tx}
	if err := fn(ctx, wrapper); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	return tx.Commit(ctx)
}

type txRepository struct {
	tx pgx.Tx
}

func (r *txRepository) InsertEntry(ctx context.Context, in EntryInput) (int64, error) {
	var memo *string
	if in.Memo != "" {
		memo = &in.Memo
	}
	var id int64
	err := r.tx.QueryRow(ctx, `INSERT INTO journal_entries (date, memo) VALUES ($1,$2) RETURNING id`, in.Date, memo).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *txRepository) InsertPostings(ctx context.Context, entryID int64, lines []EntryLineInput) error {
	for _, line := range lines {
		if _, err := r.tx.Exec(ctx, `INSERT INTO postings (entry_id, account_id, debit, credit) VALUES ($1,$2,$3,$4)`,
			entryID, line.AccountID, line.Debit, line.Credit); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23503" {
				return shared.ErrAccountNotFound
			}
			return err
		}
	}
	return nil
}
