package service

import (
	"testing"
	"time"

	"github.com/Jetixia-Updates/oddos-finance/common"
	"github.com/Jetixia-Updates/oddos-finance/db/models"
	"github.com/stretchr/testify/assert"
)

var analyticsNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func TestAccountingStatsReceivablesAndOverdue(t *testing.T) {
	yesterday := analyticsNow.AddDate(0, 0, -1)
	nextWeek := analyticsNow.AddDate(0, 0, 7)
	invoices := []models.Invoice{
		{TotalAmount: 1000, PaidAmount: 1000, Status: common.DocumentStatusPaid, DueDate: yesterday},
		{TotalAmount: 2000, PaidAmount: 500, Status: common.DocumentStatusSent, DueDate: yesterday},
		{TotalAmount: 300, PaidAmount: 0, Status: common.DocumentStatusSent, DueDate: nextWeek},
	}

	stats := accountingStats(invoices, nil, nil, analyticsNow)

	assert.Equal(t, 3300.0, stats.TotalRevenue)
	assert.Equal(t, 1800.0, stats.TotalReceivables)
	assert.Equal(t, 1, stats.OverdueInvoices)
}

func TestAccountingStatsFutureDueDateNeverOverdue(t *testing.T) {
	nextWeek := analyticsNow.AddDate(0, 0, 7)
	invoices := []models.Invoice{
		{TotalAmount: 100, Status: common.DocumentStatusSent, DueDate: nextWeek},
		{TotalAmount: 100, Status: common.DocumentStatusDraft, DueDate: nextWeek},
		{TotalAmount: 100, Status: common.DocumentStatusCancelled, DueDate: nextWeek},
	}

	stats := accountingStats(invoices, nil, nil, analyticsNow)

	assert.Equal(t, 0, stats.OverdueInvoices)
}

func TestAccountingStatsPayablesMirrorReceivables(t *testing.T) {
	yesterday := analyticsNow.AddDate(0, 0, -1)
	bills := []models.Bill{
		{TotalAmount: 1000, PaidAmount: 1000, Status: common.DocumentStatusPaid, DueDate: yesterday},
		{TotalAmount: 2000, PaidAmount: 500, Status: common.DocumentStatusSent, DueDate: yesterday},
	}

	stats := accountingStats(nil, bills, nil, analyticsNow)

	assert.Equal(t, 3000.0, stats.TotalExpenses)
	assert.Equal(t, 1500.0, stats.TotalPayables)
	assert.Equal(t, 1, stats.OverdueBills)
	assert.Equal(t, -3000.0, stats.NetProfit)
}

func TestAccountingStatsProfitMarginZeroRevenue(t *testing.T) {
	bills := []models.Bill{{TotalAmount: 500, Status: common.DocumentStatusSent, DueDate: analyticsNow}}

	stats := accountingStats(nil, bills, nil, analyticsNow)

	assert.Equal(t, 0.0, stats.TotalRevenue)
	assert.Equal(t, 0.0, stats.ProfitMargin)
}

func TestAccountingStatsProfitMargin(t *testing.T) {
	future := analyticsNow.AddDate(0, 0, 30)
	invoices := []models.Invoice{{TotalAmount: 1000, Status: common.DocumentStatusPaid, DueDate: future}}
	bills := []models.Bill{{TotalAmount: 400, Status: common.DocumentStatusPaid, DueDate: future}}

	stats := accountingStats(invoices, bills, nil, analyticsNow)

	assert.Equal(t, 600.0, stats.NetProfit)
	assert.InDelta(t, 60.0, stats.ProfitMargin, 1e-9)
}

func TestAccountingStatsCashBalance(t *testing.T) {
	accounts := []models.Account{
		{Type: common.AccountTypeCash, Balance: 100},
		{Type: common.AccountTypeBank, Balance: 250},
		{Type: common.AccountTypeRevenue, Balance: 9999},
		{Type: common.AccountTypeLiability, Balance: -50},
	}

	stats := accountingStats(nil, nil, accounts, analyticsNow)

	assert.Equal(t, 350.0, stats.CashBalance)
}

func TestPayrollStatsCurrentMonthOnly(t *testing.T) {
	thisMonth := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	lastMonth := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	records := []models.PayrollRecord{
		{PayPeriodStart: thisMonth, GrossPay: 5500, NetPay: 5000, Deductions: 200, Tax: 300, Status: common.PayrollStatusPaid},
		{PayPeriodStart: thisMonth, GrossPay: 3300, NetPay: 3000, Deductions: 100, Tax: 200, Status: common.PayrollStatusDraft},
		{PayPeriodStart: lastMonth, GrossPay: 9999, NetPay: 9999, Deductions: 999, Tax: 999, Status: common.PayrollStatusPaid},
	}

	stats := payrollStats(records, nil, analyticsNow)

	assert.Equal(t, 2, stats.RecordCount)
	assert.Equal(t, 8000.0, stats.TotalPayroll)
	assert.Equal(t, 8800.0, stats.TotalGross)
	assert.Equal(t, 300.0, stats.TotalDeductions)
	assert.Equal(t, 500.0, stats.TotalTax)
	assert.Equal(t, 1, stats.ProcessedPayroll)
	assert.Equal(t, 1, stats.PendingPayroll)
	assert.Equal(t, 4000.0, stats.AvgSalary)
}

func TestPayrollStatsEmptyMonth(t *testing.T) {
	stats := payrollStats(nil, nil, analyticsNow)

	assert.Equal(t, 0, stats.RecordCount)
	assert.Equal(t, 0.0, stats.AvgSalary)
	assert.Equal(t, 0.0, stats.TotalPayroll)
}

func TestPayrollStatsBonuses(t *testing.T) {
	thisMonth := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	lastMonth := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	bonuses := []models.Bonus{
		{Amount: 500, Status: common.BonusStatusApproved, BonusDate: thisMonth},
		{Amount: 200, Status: common.BonusStatusPending, BonusDate: thisMonth},
		{Amount: 900, Status: common.BonusStatusApproved, BonusDate: lastMonth},
	}

	stats := payrollStats(nil, bonuses, analyticsNow)

	assert.Equal(t, 500.0, stats.TotalBonuses)
}
