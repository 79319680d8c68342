package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

type reportRow struct {
	label string
	value interface{}
}

// FinancialReport renders the accounting and payroll analytics into a
// spreadsheet and returns it as a buffer ready to be streamed to the caller.
func (svc *FinanceService) FinancialReport(ctx context.Context) (*bytes.Buffer, string, error) {
	accounting, err := svc.AccountingAnalytics(ctx)
	if err != nil {
		return nil, "", err
	}
	payroll, err := svc.PayrollAnalytics(ctx)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	sheet := "Financial Summary"
	f.SetSheetName(f.GetSheetName(0), sheet)

	rows := []reportRow{
		{"Accounting", nil},
		{"Total revenue", accounting.TotalRevenue},
		{"Total expenses", accounting.TotalExpenses},
		{"Net profit", accounting.NetProfit},
		{"Profit margin (%)", accounting.ProfitMargin},
		{"Receivables outstanding", accounting.TotalReceivables},
		{"Payables outstanding", accounting.TotalPayables},
		{"Cash balance", accounting.CashBalance},
		{"Overdue invoices", accounting.OverdueInvoices},
		{"Overdue bills", accounting.OverdueBills},
		{"", nil},
		{"Payroll (current month)", nil},
		{"Total net payroll", payroll.TotalPayroll},
		{"Total gross", payroll.TotalGross},
		{"Total deductions", payroll.TotalDeductions},
		{"Total tax", payroll.TotalTax},
		{"Approved bonuses", payroll.TotalBonuses},
		{"Processed runs", payroll.ProcessedPayroll},
		{"Pending runs", payroll.PendingPayroll},
		{"Average salary", payroll.AvgSalary},
	}
	for i, row := range rows {
		labelCell, _ := excelize.CoordinatesToCellName(1, i+1)
		_ = f.SetCellValue(sheet, labelCell, row.label)
		if row.value != nil {
			valueCell, _ := excelize.CoordinatesToCellName(2, i+1)
			_ = f.SetCellValue(sheet, valueCell, row.value)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}
	fileName := fmt.Sprintf("financial_report_%s.xlsx", time.Now().Format("20060102_150405"))
	return buf, fileName, nil
}
