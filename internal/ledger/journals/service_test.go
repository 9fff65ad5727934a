package journals

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contalivre/contalivre/internal/ledger/shared"
)

type mockRepository struct {
	entries  map[int64]EntryInput
	nextID   int64
	txErr    error
	lineErr  error
	headerOK bool
}

func newMockRepository() *mockRepository {
	return &mockRepository{entries: map[int64]EntryInput{}, nextID: 1}
}

func (m *mockRepository) List(ctx context.Context) ([]JournalEntry, error) {
	out := make([]JournalEntry, 0, len(m.entries))
	for id, in := range m.entries {
		out = append(out, JournalEntry{ID: id, Date: in.Date, Memo: in.Memo})
	}
	return out, nil
}

// WithTx snapshots state up front and restores it when fn fails, mirroring a
// database rollback.
func (m *mockRepository) WithTx(ctx context.Context, fn func(context.Context, TxRepository) error) error {
	if m.txErr != nil {
		return m.txErr
	}
	snapshot := make(map[int64]EntryInput, len(m.entries))
	for k, v := range m.entries {
		snapshot[k] = v
	}
	snapID := m.nextID
	if err := fn(ctx, &mockTx{mock: m}); err != nil {
		m.entries = snapshot
		m.nextID = snapID
		return err
	}
	return nil
}

type mockTx struct {
	mock *mockRepository
}

func (t *mockTx) InsertEntry(ctx context.Context, in EntryInput) (int64, error) {
	id := t.mock.nextID
	t.mock.nextID++
	t.mock.entries[id] = EntryInput{Date: in.Date, Memo: in.Memo}
	t.mock.headerOK = true
	return id, nil
}

func (t *mockTx) InsertPostings(ctx context.Context, entryID int64, lines []EntryLineInput) error {
	if t.mock.lineErr != nil {
		return t.mock.lineErr
	}
	in := t.mock.entries[entryID]
	in.Lines = lines
	t.mock.entries[entryID] = in
	return nil
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func balancedInput() EntryInput {
	return EntryInput{
		Date: date("2024-03-01"),
		Memo: "sale",
		Lines: []EntryLineInput{
			{AccountID: 1, Debit: dec("50.00")},
			{AccountID: 2, Credit: dec("50.00")},
		},
	}
}

func TestCreateEntryPersistsBalancedLines(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo)

	id, err := svc.CreateEntry(context.Background(), balancedInput())
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	require.Len(t, repo.entries, 1)
	assert.Len(t, repo.entries[1].Lines, 2)
}

func TestCreateEntryRejectsUnbalanced(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo)

	in := balancedInput()
	in.Lines[1].Credit = dec("40.00")
	_, err := svc.CreateEntry(context.Background(), in)
	require.ErrorIs(t, err, shared.ErrUnbalanced)
	assert.Empty(t, repo.entries, "nothing may be persisted")
}

func TestCreateEntryValidation(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*EntryInput)
		wantErr error
		wantMsg string
	}{
		{
			name:    "missing date",
			mutate:  func(in *EntryInput) { in.Date = time.Time{} },
			wantErr: shared.ErrInvalidInput,
			wantMsg: "date",
		},
		{
			name:    "single line",
			mutate:  func(in *EntryInput) { in.Lines = in.Lines[:1] },
			wantErr: shared.ErrTooFewLines,
		},
		{
			name:    "missing account",
			mutate:  func(in *EntryInput) { in.Lines[1].AccountID = 0 },
			wantErr: shared.ErrInvalidInput,
			wantMsg: "line 2",
		},
		{
			name:    "negative amount",
			mutate:  func(in *EntryInput) { in.Lines[0].Debit = dec("-1") },
			wantErr: shared.ErrInvalidInput,
			wantMsg: "line 1",
		},
		{
			name: "line moves no value",
			mutate: func(in *EntryInput) {
				in.Lines[0].Debit = decimal.Zero
				in.Lines[1].Credit = decimal.Zero
			},
			wantErr: shared.ErrInvalidInput,
			wantMsg: "line 1",
		},
		{
			name:    "line carries both directions",
			mutate:  func(in *EntryInput) { in.Lines[0].Credit = dec("10") },
			wantErr: shared.ErrInvalidInput,
			wantMsg: "line 1",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newMockRepository()
			svc := NewService(repo)
			in := balancedInput()
			tc.mutate(&in)

			_, err := svc.CreateEntry(context.Background(), in)
			require.ErrorIs(t, err, tc.wantErr)
			if tc.wantMsg != "" {
				assert.Contains(t, err.Error(), tc.wantMsg)
			}
			assert.Empty(t, repo.entries)
		})
	}
}

func TestCreateEntryRollsBackOnLineFailure(t *testing.T) {
	repo := newMockRepository()
	repo.lineErr = shared.ErrAccountNotFound
	svc := NewService(repo)

	_, err := svc.CreateEntry(context.Background(), balancedInput())
	require.ErrorIs(t, err, shared.ErrAccountNotFound)
	assert.True(t, repo.headerOK, "header insert ran before the failure")
	assert.Empty(t, repo.entries, "rollback must discard the header")
}

func TestCreateEntryPropagatesTxError(t *testing.T) {
	repo := newMockRepository()
	repo.txErr = errors.New("connection lost")
	svc := NewService(repo)

	_, err := svc.CreateEntry(context.Background(), balancedInput())
	require.Error(t, err)
	assert.Empty(t, repo.entries)
}

func TestCreateEntryAcceptsManyLines(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo)

	in := EntryInput{
		Date: date("2024-03-05"),
		Lines: []EntryLineInput{
			{AccountID: 1, Debit: dec("30.00")},
			{AccountID: 2, Debit: dec("20.00")},
			{AccountID: 3, Credit: dec("50.00")},
		},
	}
	id, err := svc.CreateEntry(context.Background(), in)
	require.NoError(t, err)
	assert.Len(t, repo.entries[id].Lines, 3)
}
