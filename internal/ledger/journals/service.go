package journals

import "context"

// Service validates and atomically persists journal entries. It is the only
// writer of posting history; reports are recomputed from it on demand.
type Service struct {
	repo Repository
}

// NewService constructs the posting service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns entry headers, most recent first.
func (s *Service) List(ctx context.Context) ([]JournalEntry, error) {
	return s.repo.List(ctx)
}

// CreateEntry validates the input, asserts the double-entry law and persists
// the header plus every line in one transaction. Returns the new entry id.
func (s *Service) CreateEntry(ctx context.Context, in EntryInput) (int64, error) {
	if err := in.Validate(); err != nil {
		return 0, err
	}
	var id int64
	err := s.repo.WithTx(ctx, func(ctx context.Context, tx TxRepository) error {
		entryID, err := tx.InsertEntry(ctx, in)
		if err != nil {
			return err
		}
		if err := tx.InsertPostings(ctx, entryID, in.Lines); err != nil {
			return err
		}
		id = entryID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}
