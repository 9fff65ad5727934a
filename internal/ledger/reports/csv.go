package reports

import (
	"encoding/csv"
	"io"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Amounts are rendered with the pt-BR decimal convention, matching the
// bookkeeping UI locale. The CSV delimiter stays ';' so spreadsheet imports
// do not collide with the comma decimal separator.
var csvPrinter = message.NewPrinter(language.BrazilianPortuguese)

func formatAmount(d decimal.Decimal) string {
	return csvPrinter.Sprint(number.Decimal(d.InexactFloat64(), number.Scale(2)))
}

// WriteTrialBalanceCSV serialises the trial balance report as CSV.
func WriteTrialBalanceCSV(w io.Writer, tb TrialBalance) error {
	writer := csv.NewWriter(w)
	writer.Comma = ';'
	defer writer.Flush()

	if err := writer.Write([]string{"Code", "Name", "Type", "Opening", "Inflow", "Outflow", "Movement", "Closing"}); err != nil {
		return err
	}
	for _, row := range tb.Rows {
		if err := writer.Write([]string{
			row.Code,
			row.Name,
			string(row.Type),
			formatAmount(row.Opening),
			formatAmount(row.Inflow),
			formatAmount(row.Outflow),
			formatAmount(row.Movement),
			formatAmount(row.Closing),
		}); err != nil {
			return err
		}
	}
	if err := writer.Write([]string{
		"", "Total", "",
		formatAmount(tb.Totals.Opening),
		formatAmount(tb.Totals.Inflow),
		formatAmount(tb.Totals.Outflow),
		formatAmount(tb.Totals.Movement),
		formatAmount(tb.Totals.Closing),
	}); err != nil {
		return err
	}
	writer.Flush()
	return writer.Error()
}

// WriteIncomeStatementCSV serialises the income statement report as CSV.
func WriteIncomeStatementCSV(w io.Writer, is IncomeStatement) error {
	writer := csv.NewWriter(w)
	writer.Comma = ';'
	defer writer.Flush()

	if err := writer.Write([]string{"Code", "Name", "Type", "Value"}); err != nil {
		return err
	}
	for _, line := range append(is.Revenues, is.Expenses...) {
		if err := writer.Write([]string{line.Code, line.Name, string(line.Type), formatAmount(line.Value)}); err != nil {
			return err
		}
	}
	records := [][]string{
		{"", "Total revenue", "", formatAmount(is.Totals.Revenue)},
		{"", "Total expense", "", formatAmount(is.Totals.Expense)},
		{"", "Result", "", formatAmount(is.Totals.Result)},
	}
	for _, record := range records {
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
