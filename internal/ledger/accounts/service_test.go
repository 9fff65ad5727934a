package accounts

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contalivre/contalivre/internal/ledger/shared"
)

type mockRepository struct {
	byID   map[int64]*Account
	byCode map[string]*Account
	nextID int64
}

func newMockRepository() *mockRepository {
	return &mockRepository{byID: map[int64]*Account{}, byCode: map[string]*Account{}, nextID: 1}
}

func (m *mockRepository) List(ctx context.Context) ([]Account, error) {
	out := make([]Account, 0, len(m.byID))
	for _, a := range m.byID {
		out = append(out, *a)
	}
	return out, nil
}

func (m *mockRepository) Get(ctx context.Context, id int64) (Account, error) {
	a, ok := m.byID[id]
	if !ok {
		return Account{}, shared.ErrAccountNotFound
	}
	return *a, nil
}

func (m *mockRepository) Insert(ctx context.Context, in CreateInput) (Account, error) {
	if _, taken := m.byCode[in.Code]; taken {
		return Account{}, shared.ErrDuplicateCode
	}
	a := &Account{ID: m.nextID, Code: in.Code, Name: in.Name, Type: in.Type, ParentID: in.ParentID, IsActive: true}
	m.nextID++
	m.byID[a.ID] = a
	m.byCode[a.Code] = a
	return *a, nil
}

func (m *mockRepository) Update(ctx context.Context, id int64, in UpdateInput) error {
	a, ok := m.byID[id]
	if !ok {
		return shared.ErrAccountNotFound
	}
	if other, taken := m.byCode[in.Code]; taken && other.ID != id {
		return shared.ErrDuplicateCode
	}
	delete(m.byCode, a.Code)
	a.Code, a.Name, a.Type, a.IsActive, a.ParentID = in.Code, in.Name, in.Type, in.IsActive, in.ParentID
	m.byCode[a.Code] = a
	return nil
}

func (m *mockRepository) SetActive(ctx context.Context, id int64, active bool) error {
	if a, ok := m.byID[id]; ok {
		a.IsActive = active
	}
	return nil
}

func TestCreateAccount(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo)
	ctx := context.Background()

	a, err := svc.Create(ctx, CreateInput{Code: "1.1", Name: "Caixa", Type: AccountTypeAsset})
	require.NoError(t, err)
	assert.True(t, a.IsActive, "new accounts start active")

	_, err = svc.Create(ctx, CreateInput{Code: "1.1", Name: "Outro", Type: AccountTypeAsset})
	require.ErrorIs(t, err, shared.ErrDuplicateCode)
}

func TestCreateAccountValidation(t *testing.T) {
	svc := NewService(newMockRepository())
	ctx := context.Background()

	cases := []struct {
		name string
		in   CreateInput
	}{
		{"missing code", CreateInput{Name: "Caixa", Type: AccountTypeAsset}},
		{"missing name", CreateInput{Code: "1.1", Type: AccountTypeAsset}},
		{"unknown type", CreateInput{Code: "1.1", Name: "Caixa", Type: "cash"}},
		{"empty type", CreateInput{Code: "1.1", Name: "Caixa"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tc.in)
			require.ErrorIs(t, err, shared.ErrInvalidInput)
		})
	}
}

func TestUpdateAccount(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo)
	ctx := context.Background()

	a, err := svc.Create(ctx, CreateInput{Code: "1.1", Name: "Caixa", Type: AccountTypeAsset})
	require.NoError(t, err)

	err = svc.Update(ctx, a.ID, UpdateInput{Code: "1.9", Name: "Caixa Geral", Type: AccountTypeAsset, IsActive: true})
	require.NoError(t, err)
	got, err := svc.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "1.9", got.Code)
	assert.Equal(t, "Caixa Geral", got.Name)

	err = svc.Update(ctx, 999, UpdateInput{Code: "9.9", Name: "Nada", Type: AccountTypeAsset, IsActive: true})
	require.ErrorIs(t, err, shared.ErrAccountNotFound)
}

func TestDeactivateKeepsRow(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo)
	ctx := context.Background()

	a, err := svc.Create(ctx, CreateInput{Code: "5.1", Name: "Aluguel", Type: AccountTypeExpense})
	require.NoError(t, err)

	require.NoError(t, svc.Deactivate(ctx, a.ID))
	got, err := svc.Get(ctx, a.ID)
	require.NoError(t, err, "deactivated accounts stay resolvable")
	assert.False(t, got.IsActive)

	// Deactivation is idempotent and never a business failure.
	require.NoError(t, svc.Deactivate(ctx, a.ID))
	require.NoError(t, svc.Deactivate(ctx, 12345))
}

func TestAccountTypeSet(t *testing.T) {
	valid := []AccountType{AccountTypeAsset, AccountTypeLiability, AccountTypeEquity, AccountTypeRevenue, AccountTypeExpense}
	for _, typ := range valid {
		assert.True(t, typ.Valid(), string(typ))
	}
	assert.False(t, AccountType("cogs").Valid())

	assert.True(t, AccountTypeAsset.DebitNature())
	assert.True(t, AccountTypeExpense.DebitNature())
	assert.False(t, AccountTypeLiability.DebitNature())
	assert.False(t, AccountTypeEquity.DebitNature())
	assert.False(t, AccountTypeRevenue.DebitNature())
}
