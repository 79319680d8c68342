package service

import (
	"testing"

	"github.com/Jetixia-Updates/oddos-finance/common"
	"github.com/Jetixia-Updates/oddos-finance/db/models"
	"github.com/stretchr/testify/assert"
)

func TestEntryBalanced(t *testing.T) {
	lines := []models.JournalLine{
		{AccountID: 1, Debit: 100},
		{AccountID: 2, Credit: 60},
		{AccountID: 3, Credit: 40},
	}
	assert.True(t, entryBalanced(lines))
}

func TestEntryUnbalanced(t *testing.T) {
	lines := []models.JournalLine{
		{AccountID: 1, Debit: 100},
		{AccountID: 2, Credit: 99},
	}
	assert.False(t, entryBalanced(lines))
}

func TestEntryBalancedEmpty(t *testing.T) {
	assert.True(t, entryBalanced(nil))
}

func TestEntryBalancedFloatTolerance(t *testing.T) {
	lines := []models.JournalLine{
		{AccountID: 1, Debit: 0.1},
		{AccountID: 2, Debit: 0.2},
		{AccountID: 3, Credit: 0.3},
	}
	assert.True(t, entryBalanced(lines))
}

func TestBalanceDeltaDebitNormalAccounts(t *testing.T) {
	for _, accountType := range []string{
		common.AccountTypeCash,
		common.AccountTypeBank,
		common.AccountTypeAsset,
		common.AccountTypeExpense,
	} {
		assert.Equal(t, 100.0, balanceDelta(accountType, 100, 0), accountType)
		assert.Equal(t, -100.0, balanceDelta(accountType, 0, 100), accountType)
	}
}

func TestBalanceDeltaCreditNormalAccounts(t *testing.T) {
	for _, accountType := range []string{
		common.AccountTypeLiability,
		common.AccountTypeEquity,
		common.AccountTypeRevenue,
	} {
		assert.Equal(t, 100.0, balanceDelta(accountType, 0, 100), accountType)
		assert.Equal(t, -100.0, balanceDelta(accountType, 100, 0), accountType)
	}
}
