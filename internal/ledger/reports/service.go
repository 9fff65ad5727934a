package reports

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/contalivre/contalivre/internal/ledger/accounts"
	"github.com/contalivre/contalivre/internal/ledger/shared"
	internalShared "github.com/contalivre/contalivre/internal/shared"
)

// AccountGetter resolves the statement account header.
type AccountGetter interface {
	Get(ctx context.Context, id int64) (accounts.Account, error)
}

// Service computes the three derived reports. Read-only: every call is a
// fresh projection over the committed posting history, nothing is cached.
type Service struct {
	repo     Repository
	accounts AccountGetter
}

// NewService constructs the reporting service.
func NewService(repo Repository, accounts AccountGetter) *Service {
	return &Service{repo: repo, accounts: accounts}
}

// TrialBalance computes opening, movement and closing per active account.
func (s *Service) TrialBalance(ctx context.Context, w Window, onlyWithActivity bool) (TrialBalance, error) {
	activity, err := s.repo.AccountActivity(ctx, w)
	if err != nil {
		return TrialBalance{}, err
	}
	return BuildTrialBalance(activity, onlyWithActivity), nil
}

// IncomeStatement computes revenue/expense totals over a mandatory window.
func (s *Service) IncomeStatement(ctx context.Context, from, to time.Time) (IncomeStatement, error) {
	if from.IsZero() || to.IsZero() {
		return IncomeStatement{}, fmt.Errorf("%w: from and to are required (YYYY-MM-DD)", shared.ErrInvalidInput)
	}
	activity, err := s.repo.PeriodActivity(ctx, from, to)
	if err != nil {
		return IncomeStatement{}, err
	}
	return BuildIncomeStatement(activity), nil
}

// StatementAccount is the resolved account header echoed with the statement.
type StatementAccount struct {
	ID   int64                `json:"id"`
	Code string               `json:"code"`
	Name string               `json:"name"`
	Type accounts.AccountType `json:"type"`
}

// Statement is the paginated running-balance ledger for one account.
type Statement struct {
	Account StatementAccount    `json:"account"`
	Rows    []StatementRow      `json:"rows"`
	Page    internalShared.Page `json:"pagination"`
}

// AccountStatement produces the ordered running-balance ledger for one
// account. The fold runs over the full filtered sequence before the page
// slice is taken.
func (s *Service) AccountStatement(ctx context.Context, accountID int64, w Window, page internalShared.Page) (Statement, error) {
	account, err := s.accounts.Get(ctx, accountID)
	if err != nil {
		return Statement{}, err
	}
	lines, err := s.repo.AccountPostings(ctx, accountID, w)
	if err != nil {
		return Statement{}, err
	}
	return Statement{
		Account: StatementAccount{ID: account.ID, Code: account.Code, Name: account.Name, Type: account.Type},
		Rows:    BuildStatement(account.Type, lines, page),
		Page:    page,
	}, nil
}

// Overview bundles the trial balance and the income statement for one window.
type Overview struct {
	TrialBalance    TrialBalance    `json:"trial_balance"`
	IncomeStatement IncomeStatement `json:"income_statement"`
}

// Overview computes both reports concurrently for the same mandatory window.
func (s *Service) Overview(ctx context.Context, from, to time.Time) (Overview, error) {
	if from.IsZero() || to.IsZero() {
		return Overview{}, fmt.Errorf("%w: from and to are required (YYYY-MM-DD)", shared.ErrInvalidInput)
	}
	var ov Overview
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		tb, err := s.TrialBalance(ctx, Window{From: &from, To: &to}, true)
		if err != nil {
			return err
		}
		ov.TrialBalance = tb
		return nil
	})
	g.Go(func() error {
		is, err := s.IncomeStatement(ctx, from, to)
		if err != nil {
			return err
		}
		ov.IncomeStatement = is
		return nil
	})
	if err := g.Wait(); err != nil {
		return Overview{}, err
	}
	return ov, nil
}
