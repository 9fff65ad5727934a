package balance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/contalivre/contalivre/internal/ledger/accounts"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		name          string
		typ           accounts.AccountType
		debit, credit string
		want          string
	}{
		{"asset debit balance", accounts.AccountTypeAsset, "1000.00", "200.00", "800.00"},
		{"expense debit balance", accounts.AccountTypeExpense, "300.50", "0.50", "300.00"},
		{"liability credit balance", accounts.AccountTypeLiability, "100.00", "400.00", "300.00"},
		{"equity credit balance", accounts.AccountTypeEquity, "0", "500.00", "500.00"},
		{"revenue credit balance", accounts.AccountTypeRevenue, "20.00", "120.00", "100.00"},
		{"asset can go negative", accounts.AccountTypeAsset, "50.00", "75.00", "-25.00"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Normalize(tc.typ, dec(tc.debit), dec(tc.credit))
			assert.True(t, got.Equal(dec(tc.want)), "got %s want %s", got, tc.want)
		})
	}
}

func TestFlowsSwapByNature(t *testing.T) {
	in, out := Flows(accounts.AccountTypeAsset, dec("10"), dec("4"))
	assert.True(t, in.Equal(dec("10")))
	assert.True(t, out.Equal(dec("4")))

	in, out = Flows(accounts.AccountTypeRevenue, dec("10"), dec("4"))
	assert.True(t, in.Equal(dec("4")))
	assert.True(t, out.Equal(dec("10")))
}
