package reports

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Window bounds a report period. Either side may be open.
type Window struct {
	From *time.Time
	To   *time.Time
}

// Repository reads raw posting sums for the report builders. It owns no
// state: every call recomputes from the full committed posting history.
type Repository interface {
	AccountActivity(ctx context.Context, w Window) ([]AccountActivity, error)
	PeriodActivity(ctx context.Context, from, to time.Time) ([]PeriodActivity, error)
	AccountPostings(ctx context.Context, accountID int64, w Window) ([]PostingLine, error)
}

type repository struct {
	db *pgxpool.Pool
}

// NewRepository constructs the pgx-backed Repository.
func NewRepository(db *pgxpool.Pool) Repository {
	return &repository{db: db}
}

// AccountActivity returns every active account with its pre-window and
// in-window debit/credit sums. Left joins keep silent accounts in the result
// with zero sums. With an open "from", pre-window sums are zero: nothing
// precedes all time.
func (r *repository) AccountActivity(ctx context.Context, w Window) ([]AccountActivity, error) {
	rows, err := r.db.Query(ctx, `
WITH before AS (
	SELECT p.account_id,
	       COALESCE(SUM(p.debit),0)  AS deb,
	       COALESCE(SUM(p.credit),0) AS cred
	FROM postings p
	JOIN journal_entries e ON e.id = p.entry_id
	WHERE $1::date IS NOT NULL AND e.date < $1::date
	GROUP BY p.account_id
),
period AS (
	SELECT p.account_id,
	       COALESCE(SUM(p.debit),0)  AS deb,
	       COALESCE(SUM(p.credit),0) AS cred
	FROM postings p
	JOIN journal_entries e ON e.id = p.entry_id
	WHERE ($1::date IS NULL OR e.date >= $1::date)
	  AND ($2::date IS NULL OR e.date <= $2::date)
	GROUP BY p.account_id
)
SELECT a.id, a.code, a.name, a.type,
       COALESCE(b.deb,0), COALESCE(b.cred,0),
       COALESCE(pr.deb,0), COALESCE(pr.cred,0)
FROM accounts a
LEFT JOIN before b  ON b.account_id  = a.id
LEFT JOIN period pr ON pr.account_id = a.id
WHERE a.is_active = true
ORDER BY a.code`, w.From, w.To)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []AccountActivity
	for rows.Next() {
		var a AccountActivity
		if err := rows.Scan(&a.AccountID, &a.Code, &a.Name, &a.Type,
			&a.OpeningDebit, &a.OpeningCredit, &a.PeriodDebit, &a.PeriodCredit); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// PeriodActivity returns revenue and expense accounts holding at least one
// posting inside [from,to]. Inner joins drop silent accounts. Deactivated
// accounts still appear so past periods stay reproducible.
func (r *repository) PeriodActivity(ctx context.Context, from, to time.Time) ([]PeriodActivity, error) {
	rows, err := r.db.Query(ctx, `
SELECT a.code, a.name, a.type,
       COALESCE(SUM(p.debit),0), COALESCE(SUM(p.credit),0)
FROM accounts a
JOIN postings p        ON p.account_id = a.id
JOIN journal_entries e ON e.id = p.entry_id
WHERE a.type IN ('revenue','expense')
  AND e.date BETWEEN $1::date AND $2::date
GROUP BY a.code, a.name, a.type
ORDER BY a.type, a.code`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []PeriodActivity
	for rows.Next() {
		var a PeriodActivity
		if err := rows.Scan(&a.Code, &a.Name, &a.Type, &a.Debit, &a.Credit); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// AccountPostings returns the account's postings inside the window in the
// canonical chronological, tie-broken order.
func (r *repository) AccountPostings(ctx context.Context, accountID int64, w Window) ([]PostingLine, error) {
	rows, err := r.db.Query(ctx, `
SELECT p.id, e.id, e.date, COALESCE(e.memo,''), p.debit, p.credit
FROM postings p
JOIN journal_entries e ON e.id = p.entry_id
WHERE p.account_id = $1
  AND ($2::date IS NULL OR e.date >= $2::date)
  AND ($3::date IS NULL OR e.date <= $3::date)
ORDER BY e.date, e.id, p.id`, accountID, w.From, w.To)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []PostingLine
	for rows.Next() {
		var l PostingLine
		if err := rows.Scan(&l.PostingID, &l.EntryID, &l.Date, &l.Memo, &l.Debit, &l.Credit); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
