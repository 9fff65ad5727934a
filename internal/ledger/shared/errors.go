package shared

import "errors"

var (
	// ErrInvalidInput indicates a malformed or missing request field.
	ErrInvalidInput = errors.New("ledger: invalid input")
	// ErrDuplicateCode indicates the account code is already taken.
	ErrDuplicateCode = errors.New("ledger: account code already exists")
	// ErrAccountNotFound indicates the referenced account does not exist.
	ErrAccountNotFound = errors.New("ledger: account not found")
	// ErrUnbalanced indicates total debits differ from total credits.
	ErrUnbalanced = errors.New("ledger: entry lines must balance")
	// ErrTooFewLines indicates less than two lines.
	ErrTooFewLines = errors.New("ledger: entry requires at least two lines")
)
