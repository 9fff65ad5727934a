package journals

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/contalivre/contalivre/internal/ledger/shared"
)

// EntryLineInput describes one posting line of an entry to be created.
// Absent amounts default to zero.
type EntryLineInput struct {
	AccountID int64
	Debit     decimal.Decimal
	Credit    decimal.Decimal
}

// EntryInput groups fields required to create a journal entry.
type EntryInput struct {
	Date  time.Time
	Memo  string
	Lines []EntryLineInput
}

// Validate checks the input before anything touches storage. Checks run in a
// fixed order and the first failure wins; line indexes in messages are 1-based.
func (in EntryInput) Validate() error {
	if in.Date.IsZero() {
		return fmt.Errorf("%w: date is required (YYYY-MM-DD)", shared.ErrInvalidInput)
	}
	if len(in.Lines) < 2 {
		return shared.ErrTooFewLines
	}
	var debits, credits decimal.Decimal
	for i, line := range in.Lines {
		if line.AccountID == 0 {
			return fmt.Errorf("%w: line %d: account_id is required", shared.ErrInvalidInput, i+1)
		}
		if line.Debit.IsNegative() || line.Credit.IsNegative() {
			return fmt.Errorf("%w: line %d: amounts must be non-negative", shared.ErrInvalidInput, i+1)
		}
		if line.Debit.IsZero() && line.Credit.IsZero() {
			return fmt.Errorf("%w: line %d: debit or credit must be > 0", shared.ErrInvalidInput, i+1)
		}
		if line.Debit.IsPositive() && line.Credit.IsPositive() {
			return fmt.Errorf("%w: line %d: cannot carry both debit and credit", shared.ErrInvalidInput, i+1)
		}
		debits = debits.Add(line.Debit)
		credits = credits.Add(line.Credit)
	}
	if !debits.Equal(credits) {
		return shared.ErrUnbalanced
	}
	return nil
}
