package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Jetixia-Updates/oddos-finance/common"
	"github.com/Jetixia-Updates/oddos-finance/db/models"
	"github.com/uptrace/bun"
)

type CreatePayrollParams struct {
	EmployeeID     int64     `json:"employee_id" validate:"required"`
	PayPeriodStart time.Time `json:"pay_period_start" validate:"required"`
	PayPeriodEnd   time.Time `json:"pay_period_end" validate:"required"`
	BasicSalary    float64   `json:"basic_salary" validate:"gte=0"`
	Allowances     float64   `json:"allowances" validate:"gte=0"`
	Deductions     float64   `json:"deductions" validate:"gte=0"`
	Tax            float64   `json:"tax" validate:"gte=0"`
}

type PayrollPatch struct {
	EmployeeID     *int64     `json:"employee_id"`
	PayPeriodStart *time.Time `json:"pay_period_start"`
	PayPeriodEnd   *time.Time `json:"pay_period_end"`
	BasicSalary    *float64   `json:"basic_salary" validate:"omitempty,gte=0"`
	Allowances     *float64   `json:"allowances" validate:"omitempty,gte=0"`
	Deductions     *float64   `json:"deductions" validate:"omitempty,gte=0"`
	Tax            *float64   `json:"tax" validate:"omitempty,gte=0"`
	Status         *string    `json:"status" validate:"omitempty,oneof=draft approved paid"`
}

func (svc *FinanceService) PayrollRecords(ctx context.Context) ([]models.PayrollRecord, error) {
	records := []models.PayrollRecord{}
	err := svc.DB.NewSelect().Model(&records).Order("pay_period_start DESC").Scan(ctx)
	return records, err
}

func (svc *FinanceService) CreatePayrollRecord(ctx context.Context, params CreatePayrollParams) (*models.PayrollRecord, error) {
	record := models.PayrollRecord{
		Number:         svc.Numbers.Next(common.NumberPrefixPayroll),
		EmployeeID:     params.EmployeeID,
		PayPeriodStart: params.PayPeriodStart,
		PayPeriodEnd:   params.PayPeriodEnd,
		BasicSalary:    params.BasicSalary,
		Allowances:     params.Allowances,
		Deductions:     params.Deductions,
		Tax:            params.Tax,
		Status:         common.PayrollStatusDraft,
	}
	derivePay(&record)
	if _, err := svc.DB.NewInsert().Model(&record).Exec(ctx); err != nil {
		return nil, err
	}
	return &record, nil
}

// UpdatePayrollRecord loads the stored record, merges the patch and only
// then re-derives gross and net pay. Deriving from the patch body alone
// would zero out any salary field the caller omitted.
func (svc *FinanceService) UpdatePayrollRecord(ctx context.Context, id int64, patch PayrollPatch) (*models.PayrollRecord, error) {
	var record models.PayrollRecord
	err := svc.DB.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		if err := tx.NewSelect().Model(&record).Where("id = ?", id).Scan(ctx); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNotFound
			}
			return err
		}
		applyPayrollPatch(&record, patch)
		derivePay(&record)
		// a single statement writes gross and net together
		_, err := tx.NewUpdate().Model(&record).WherePK().Exec(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (svc *FinanceService) DeletePayrollRecord(ctx context.Context, id int64) error {
	res, err := svc.DB.NewDelete().Model((*models.PayrollRecord)(nil)).Where("id = ?", id).Exec(ctx)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func applyPayrollPatch(record *models.PayrollRecord, patch PayrollPatch) {
	if patch.EmployeeID != nil {
		record.EmployeeID = *patch.EmployeeID
	}
	if patch.PayPeriodStart != nil {
		record.PayPeriodStart = *patch.PayPeriodStart
	}
	if patch.PayPeriodEnd != nil {
		record.PayPeriodEnd = *patch.PayPeriodEnd
	}
	if patch.BasicSalary != nil {
		record.BasicSalary = *patch.BasicSalary
	}
	if patch.Allowances != nil {
		record.Allowances = *patch.Allowances
	}
	if patch.Deductions != nil {
		record.Deductions = *patch.Deductions
	}
	if patch.Tax != nil {
		record.Tax = *patch.Tax
	}
	if patch.Status != nil {
		record.Status = *patch.Status
	}
}

// derivePay recomputes the derived pay fields from the record itself.
// grossPay = basicSalary + allowances; netPay = grossPay - deductions - tax.
func derivePay(record *models.PayrollRecord) {
	record.GrossPay = record.BasicSalary + record.Allowances
	record.NetPay = record.GrossPay - record.Deductions - record.Tax
}
