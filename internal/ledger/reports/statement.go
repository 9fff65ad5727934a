package reports

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/contalivre/contalivre/internal/ledger/accounts"
	"github.com/contalivre/contalivre/internal/ledger/balance"
	internalShared "github.com/contalivre/contalivre/internal/shared"
)

// PostingLine is one raw posting of the statement account, joined with its
// entry header. Input arrives in the canonical sequence ordered by
// (entry date, entry id, posting id).
type PostingLine struct {
	PostingID int64
	EntryID   int64
	Date      time.Time
	Memo      string
	Debit     decimal.Decimal
	Credit    decimal.Decimal
}

// StatementRow is one ledger line with its running balance.
type StatementRow struct {
	PostingID int64           `json:"posting_id"`
	EntryID   int64           `json:"entry_id"`
	Date      time.Time       `json:"date"`
	Memo      string          `json:"memo"`
	Inflow    decimal.Decimal `json:"inflow"`
	Outflow   decimal.Decimal `json:"outflow"`
	Balance   decimal.Decimal `json:"balance"`
}

// BuildStatement folds the running balance over the whole filtered sequence
// and only then applies the page slice: each page's first balance depends on
// every prior row, so pagination must never cut the fold short. The running
// balance accumulates within the filtered range only; it is not seeded with
// the account's opening balance.
func BuildStatement(t accounts.AccountType, lines []PostingLine, page internalShared.Page) []StatementRow {
	rows := make([]StatementRow, 0, len(lines))
	var running decimal.Decimal
	for _, line := range lines {
		running = running.Add(balance.Normalize(t, line.Debit, line.Credit))
		in, out := balance.Flows(t, line.Debit, line.Credit)
		rows = append(rows, StatementRow{
			PostingID: line.PostingID,
			EntryID:   line.EntryID,
			Date:      line.Date,
			Memo:      line.Memo,
			Inflow:    in,
			Outflow:   out,
			Balance:   running,
		})
	}
	if page.Offset >= len(rows) {
		return []StatementRow{}
	}
	end := page.Offset + page.Limit
	if end > len(rows) {
		end = len(rows)
	}
	return rows[page.Offset:end]
}
