package jobs

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// UnbalancedEntry reports one persisted entry violating the double-entry law.
type UnbalancedEntry struct {
	EntryID int64
	Date    time.Time
	Debit   decimal.Decimal
	Credit  decimal.Decimal
}

// IntegrityScanner audits the posting history: every journal entry must hold
// equal debit and credit totals. The posting engine rejects unbalanced input,
// so a hit here means rows were altered outside the application.
type IntegrityScanner struct {
	db     *pgxpool.Pool
	logger *slog.Logger
}

// NewIntegrityScanner constructs the scanner.
func NewIntegrityScanner(db *pgxpool.Pool, logger *slog.Logger) *IntegrityScanner {
	return &IntegrityScanner{db: db, logger: logger}
}

// Scan returns every entry dated on or after since whose sums diverge.
// A zero since scans the full history.
func (s *IntegrityScanner) Scan(ctx context.Context, since time.Time) ([]UnbalancedEntry, error) {
	rows, err := s.db.Query(ctx, `
SELECT e.id, e.date, SUM(p.debit), SUM(p.credit)
FROM journal_entries e
JOIN postings p ON p.entry_id = e.id
WHERE $1::date IS NULL OR e.date >= $1::date
GROUP BY e.id, e.date
HAVING SUM(p.debit) <> SUM(p.credit)
ORDER BY e.id`, nullableDate(since))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []UnbalancedEntry
	for rows.Next() {
		var u UnbalancedEntry
		if err := rows.Scan(&u.EntryID, &u.Date, &u.Debit, &u.Credit); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// Handle processes TaskLedgerIntegrityScan tasks.
func (s *IntegrityScanner) Handle(ctx context.Context, t *asynq.Task) error {
	var payload IntegrityScanPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return asynq.SkipRetry
	}
	var since time.Time
	if payload.Since != "" {
		parsed, err := time.Parse("2006-01-02", payload.Since)
		if err != nil {
			return asynq.SkipRetry
		}
		since = parsed
	}
	hits, err := s.Scan(ctx, since)
	if err != nil {
		return err
	}
	if len(hits) == 0 {
		s.logger.Info("ledger integrity scan clean", slog.String("job", TaskLedgerIntegrityScan))
		return nil
	}
	for _, hit := range hits {
		s.logger.Error("unbalanced journal entry",
			slog.Int64("entry_id", hit.EntryID),
			slog.String("date", hit.Date.Format("2006-01-02")),
			slog.String("debit", hit.Debit.String()),
			slog.String("credit", hit.Credit.String()))
	}
	return nil
}

func nullableDate(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t
}
