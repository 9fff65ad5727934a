package reports

import (
	"github.com/shopspring/decimal"

	"github.com/contalivre/contalivre/internal/ledger/accounts"
	"github.com/contalivre/contalivre/internal/ledger/balance"
)

// AccountActivity carries raw debit/credit sums for one account: everything
// before the window start plus everything inside the window. Sums arrive
// unsigned; normalization happens here, in one place, per account type.
type AccountActivity struct {
	AccountID     int64
	Code          string
	Name          string
	Type          accounts.AccountType
	OpeningDebit  decimal.Decimal
	OpeningCredit decimal.Decimal
	PeriodDebit   decimal.Decimal
	PeriodCredit  decimal.Decimal
}

// TrialBalanceRow is one account line of the trial balance.
type TrialBalanceRow struct {
	AccountID int64                `json:"account_id"`
	Code      string               `json:"code"`
	Name      string               `json:"name"`
	Type      accounts.AccountType `json:"type"`
	Opening   decimal.Decimal      `json:"opening"`
	Inflow    decimal.Decimal      `json:"inflow"`
	Outflow   decimal.Decimal      `json:"outflow"`
	Movement  decimal.Decimal      `json:"movement"`
	Closing   decimal.Decimal      `json:"closing"`
}

// TrialBalanceTotals aggregates all rows.
type TrialBalanceTotals struct {
	Opening  decimal.Decimal `json:"opening"`
	Inflow   decimal.Decimal `json:"inflow"`
	Outflow  decimal.Decimal `json:"outflow"`
	Movement decimal.Decimal `json:"movement"`
	Closing  decimal.Decimal `json:"closing"`
}

// TrialBalance is the final report structure.
type TrialBalance struct {
	Rows   []TrialBalanceRow  `json:"rows"`
	Totals TrialBalanceTotals `json:"totals"`
}

// BuildTrialBalance converts per-account activity into trial balance rows.
// Input arrives ordered by account code and every active account is present,
// all-zero when silent. With onlyWithActivity set, rows with zero opening and
// zero movement are dropped.
func BuildTrialBalance(activity []AccountActivity, onlyWithActivity bool) TrialBalance {
	tb := TrialBalance{Rows: []TrialBalanceRow{}}
	for _, acc := range activity {
		opening := balance.Normalize(acc.Type, acc.OpeningDebit, acc.OpeningCredit)
		movement := balance.Normalize(acc.Type, acc.PeriodDebit, acc.PeriodCredit)
		if onlyWithActivity && opening.IsZero() && movement.IsZero() {
			continue
		}
		in, out := balance.Flows(acc.Type, acc.PeriodDebit, acc.PeriodCredit)
		row := TrialBalanceRow{
			AccountID: acc.AccountID,
			Code:      acc.Code,
			Name:      acc.Name,
			Type:      acc.Type,
			Opening:   opening,
			Inflow:    in,
			Outflow:   out,
			Movement:  movement,
			Closing:   opening.Add(movement),
		}
		tb.Rows = append(tb.Rows, row)
		tb.Totals.Opening = tb.Totals.Opening.Add(row.Opening)
		tb.Totals.Inflow = tb.Totals.Inflow.Add(row.Inflow)
		tb.Totals.Outflow = tb.Totals.Outflow.Add(row.Outflow)
		tb.Totals.Movement = tb.Totals.Movement.Add(row.Movement)
		tb.Totals.Closing = tb.Totals.Closing.Add(row.Closing)
	}
	return tb
}
