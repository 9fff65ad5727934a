// Package balance holds the sign-normalization rule shared by every report.
//
// Asset and expense accounts carry a natural debit balance; liability, equity
// and revenue accounts carry a natural credit balance. Every aggregation in
// this module converts raw debit/credit magnitudes into a signed amount
// through Normalize so the type branch exists in exactly one place.
package balance

import (
	"github.com/shopspring/decimal"

	"github.com/contalivre/contalivre/internal/ledger/accounts"
)

// Normalize maps raw debit/credit sums to a signed amount for the account type.
func Normalize(t accounts.AccountType, debit, credit decimal.Decimal) decimal.Decimal {
	if t.DebitNature() {
		return debit.Sub(credit)
	}
	return credit.Sub(debit)
}

// Flows maps raw debit/credit to presentational inflow/outflow columns.
// The mapping mirrors Normalize's branch but carries no sign; it never feeds
// balance arithmetic.
func Flows(t accounts.AccountType, debit, credit decimal.Decimal) (in, out decimal.Decimal) {
	if t.DebitNature() {
		return debit, credit
	}
	return credit, debit
}
