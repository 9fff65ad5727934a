package accounts

import "context"

// Service coordinates account registry operations.
type Service struct {
	repo Repository
}

// NewService constructs the registry service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns every account ordered by code.
func (s *Service) List(ctx context.Context) ([]Account, error) {
	return s.repo.List(ctx)
}

// Get returns one account by id.
func (s *Service) Get(ctx context.Context, id int64) (Account, error) {
	return s.repo.Get(ctx, id)
}

// Create registers a new active account.
func (s *Service) Create(ctx context.Context, in CreateInput) (Account, error) {
	if err := in.Validate(); err != nil {
		return Account{}, err
	}
	return s.repo.Insert(ctx, in)
}

// Update replaces all mutable fields of an existing account.
func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) error {
	if err := in.Validate(); err != nil {
		return err
	}
	return s.repo.Update(ctx, id, in)
}

// SetActive toggles account visibility without deleting anything.
func (s *Service) SetActive(ctx context.Context, id int64, active bool) error {
	return s.repo.SetActive(ctx, id, active)
}

// Deactivate is the public delete operation. Postings referencing the account
// remain valid and keep aggregating, so rows are never removed.
func (s *Service) Deactivate(ctx context.Context, id int64) error {
	return s.repo.SetActive(ctx, id, false)
}
