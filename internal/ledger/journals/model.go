package journals

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is a dated, atomic group of postings recording one business event.
type JournalEntry struct {
	ID        int64     `json:"id"`
	Date      time.Time `json:"date"`
	Memo      string    `json:"memo"`
	CreatedAt time.Time `json:"created_at"`
	Lines     []Posting `json:"lines,omitempty"`
}

// Posting is one debit-or-credit line within a journal entry.
type Posting struct {
	ID        int64           `json:"id"`
	EntryID   int64           `json:"entry_id"`
	AccountID int64           `json:"account_id"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
}
