package service

import (
	"context"
	"time"

	"github.com/Jetixia-Updates/oddos-finance/common"
	"github.com/Jetixia-Updates/oddos-finance/db/models"
)

// AccountingStats is recomputed from a full scan on every request; nothing
// is cached or materialized.
type AccountingStats struct {
	TotalRevenue     float64 `json:"total_revenue"`
	TotalExpenses    float64 `json:"total_expenses"`
	NetProfit        float64 `json:"net_profit"`
	TotalReceivables float64 `json:"total_receivables"`
	TotalPayables    float64 `json:"total_payables"`
	CashBalance      float64 `json:"cash_balance"`
	OverdueInvoices  int     `json:"overdue_invoices"`
	OverdueBills     int     `json:"overdue_bills"`
	ProfitMargin     float64 `json:"profit_margin"`
}

// PayrollStats covers payroll records whose pay period starts in the
// current calendar month, plus approved bonuses dated in it.
type PayrollStats struct {
	TotalPayroll     float64 `json:"total_payroll"`
	TotalGross       float64 `json:"total_gross"`
	TotalDeductions  float64 `json:"total_deductions"`
	TotalTax         float64 `json:"total_tax"`
	TotalBonuses     float64 `json:"total_bonuses"`
	ProcessedPayroll int     `json:"processed_payroll"`
	PendingPayroll   int     `json:"pending_payroll"`
	AvgSalary        float64 `json:"avg_salary"`
	RecordCount      int     `json:"record_count"`
}

func (svc *FinanceService) AccountingAnalytics(ctx context.Context) (*AccountingStats, error) {
	invoices, err := svc.Invoices(ctx)
	if err != nil {
		return nil, err
	}
	bills, err := svc.Bills(ctx)
	if err != nil {
		return nil, err
	}
	accounts, err := svc.Accounts(ctx)
	if err != nil {
		return nil, err
	}
	stats := accountingStats(invoices, bills, accounts, time.Now())
	return &stats, nil
}

func (svc *FinanceService) PayrollAnalytics(ctx context.Context) (*PayrollStats, error) {
	records, err := svc.PayrollRecords(ctx)
	if err != nil {
		return nil, err
	}
	bonuses, err := svc.Bonuses(ctx)
	if err != nil {
		return nil, err
	}
	stats := payrollStats(records, bonuses, time.Now())
	return &stats, nil
}

func accountingStats(invoices []models.Invoice, bills []models.Bill, accounts []models.Account, now time.Time) AccountingStats {
	var stats AccountingStats
	for _, invoice := range invoices {
		stats.TotalRevenue += invoice.TotalAmount
		if invoice.Status != common.DocumentStatusPaid {
			stats.TotalReceivables += invoice.Outstanding()
		}
		if invoice.Overdue(now) {
			stats.OverdueInvoices++
		}
	}
	for _, bill := range bills {
		stats.TotalExpenses += bill.TotalAmount
		if bill.Status != common.DocumentStatusPaid {
			stats.TotalPayables += bill.Outstanding()
		}
		if bill.Overdue(now) {
			stats.OverdueBills++
		}
	}
	for _, account := range accounts {
		if account.Type == common.AccountTypeCash || account.Type == common.AccountTypeBank {
			stats.CashBalance += account.Balance
		}
	}
	stats.NetProfit = stats.TotalRevenue - stats.TotalExpenses
	if stats.TotalRevenue != 0 {
		stats.ProfitMargin = stats.NetProfit / stats.TotalRevenue * 100
	}
	return stats
}

func payrollStats(records []models.PayrollRecord, bonuses []models.Bonus, now time.Time) PayrollStats {
	var stats PayrollStats
	for _, record := range records {
		if !sameMonth(record.PayPeriodStart, now) {
			continue
		}
		stats.RecordCount++
		stats.TotalPayroll += record.NetPay
		stats.TotalGross += record.GrossPay
		stats.TotalDeductions += record.Deductions
		stats.TotalTax += record.Tax
		switch record.Status {
		case common.PayrollStatusPaid:
			stats.ProcessedPayroll++
		case common.PayrollStatusDraft, common.PayrollStatusApproved:
			stats.PendingPayroll++
		}
	}
	for _, bonus := range bonuses {
		if bonus.Status == common.BonusStatusApproved && sameMonth(bonus.BonusDate, now) {
			stats.TotalBonuses += bonus.Amount
		}
	}
	if stats.RecordCount != 0 {
		stats.AvgSalary = stats.TotalPayroll / float64(stats.RecordCount)
	}
	return stats
}

func sameMonth(t, ref time.Time) bool {
	return t.Year() == ref.Year() && t.Month() == ref.Month()
}
