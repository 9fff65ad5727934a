package reports

import (
	"github.com/shopspring/decimal"

	"github.com/contalivre/contalivre/internal/ledger/accounts"
	"github.com/contalivre/contalivre/internal/ledger/balance"
)

// PeriodActivity carries raw in-window sums for one revenue or expense
// account. Accounts with no postings in range never appear.
type PeriodActivity struct {
	Code   string
	Name   string
	Type   accounts.AccountType
	Debit  decimal.Decimal
	Credit decimal.Decimal
}

// IncomeStatementLine is one account row of the income statement.
type IncomeStatementLine struct {
	Code  string               `json:"code"`
	Name  string               `json:"name"`
	Type  accounts.AccountType `json:"type"`
	Value decimal.Decimal      `json:"value"`
}

// IncomeStatementTotals holds the section totals and the period result.
type IncomeStatementTotals struct {
	Revenue decimal.Decimal `json:"total_revenue"`
	Expense decimal.Decimal `json:"total_expense"`
	Result  decimal.Decimal `json:"result"`
}

// IncomeStatement is the final report structure.
type IncomeStatement struct {
	Revenues []IncomeStatementLine `json:"revenues"`
	Expenses []IncomeStatementLine `json:"expenses"`
	Totals   IncomeStatementTotals `json:"totals"`
}

// BuildIncomeStatement splits period activity into revenue and expense
// sections. Input arrives ordered by (type, code); order is preserved.
func BuildIncomeStatement(activity []PeriodActivity) IncomeStatement {
	is := IncomeStatement{Revenues: []IncomeStatementLine{}, Expenses: []IncomeStatementLine{}}
	for _, acc := range activity {
		line := IncomeStatementLine{
			Code:  acc.Code,
			Name:  acc.Name,
			Type:  acc.Type,
			Value: balance.Normalize(acc.Type, acc.Debit, acc.Credit),
		}
		switch acc.Type {
		case accounts.AccountTypeRevenue:
			is.Revenues = append(is.Revenues, line)
			is.Totals.Revenue = is.Totals.Revenue.Add(line.Value)
		case accounts.AccountTypeExpense:
			is.Expenses = append(is.Expenses, line)
			is.Totals.Expense = is.Totals.Expense.Add(line.Value)
		}
	}
	is.Totals.Result = is.Totals.Revenue.Sub(is.Totals.Expense)
	return is
}
