package accounts

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/contalivre/contalivre/internal/ledger/shared"
)

// Repository encapsulates DB operations for the chart of accounts.
type Repository interface {
	List(ctx context.Context) ([]Account, error)
	Get(ctx context.Context, id int64) (Account, error)
	Insert(ctx context.Context, in CreateInput) (Account, error)
	Update(ctx context.Context, id int64, in UpdateInput) error
	SetActive(ctx context.Context, id int64, active bool) error
}

type repository struct {
	db *pgxpool.Pool
}

// NewRepository constructs the pgx-backed Repository.
func NewRepository(db *pgxpool.Pool) Repository {
	return &repository{db: db}
}

const accountColumns = `id, code, name, type, parent_id, is_active, created_at, updated_at`

func (r *repository) List(ctx context.Context) ([]Account, error) {
	rows, err := r.db.Query(ctx, `SELECT `+accountColumns+` FROM accounts ORDER BY code`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Account
	for rows.Next() {
		var a Account
		if err := rows.Scan(&a.ID, &a.Code, &a.Name, &a.Type, &a.ParentID, &a.IsActive, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *repository) Get(ctx context.Context, id int64) (Account, error) {
	var a Account
	err := r.db.QueryRow(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id=$1`, id).
		Scan(&a.ID, &a.Code, &a.Name, &a.Type, &a.ParentID, &a.IsActive, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Account{}, shared.ErrAccountNotFound
		}
		return Account{}, err
	}
	return a, nil
}

func (r *repository) Insert(ctx context.Context, in CreateInput) (Account, error) {
	var a Account
	err := r.db.QueryRow(ctx, `INSERT INTO accounts (code, name, type, parent_id)
VALUES ($1,$2,$3,$4) RETURNING `+accountColumns, in.Code, in.Name, in.Type, in.ParentID).
		Scan(&a.ID, &a.Code, &a.Name, &a.Type, &a.ParentID, &a.IsActive, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return Account{}, mapConstraint(err)
	}
	return a, nil
}

func (r *repository) Update(ctx context.Context, id int64, in UpdateInput) error {
	cmd, err := r.db.Exec(ctx, `UPDATE accounts SET code=$2, name=$3, type=$4, is_active=$5, parent_id=$6, updated_at=NOW()
WHERE id=$1`, id, in.Code, in.Name, in.Type, in.IsActive, in.ParentID)
	if err != nil {
		return mapConstraint(err)
	}
	if cmd.RowsAffected() == 0 {
		return shared.ErrAccountNotFound
	}
	return nil
}

// SetActive toggles visibility. Unknown ids are a no-op so that repeated
// deactivations stay idempotent.
func (r *repository) SetActive(ctx context.Context, id int64, active bool) error {
	_, err := r.db.Exec(ctx, `UPDATE accounts SET is_active=$2, updated_at=NOW() WHERE id=$1`, id, active)
	return err
}

func mapConstraint(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return shared.ErrDuplicateCode
	}
	return err
}
