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

type CreateBillParams struct {
	VendorID    int64     `json:"vendor_id" validate:"required"`
	VendorName  string    `json:"vendor_name"`
	BillDate    time.Time `json:"bill_date" validate:"required"`
	DueDate     time.Time `json:"due_date" validate:"required"`
	TotalAmount float64   `json:"total_amount" validate:"gte=0"`
	Notes       string    `json:"notes"`
}

type BillPatch struct {
	VendorID    *int64     `json:"vendor_id"`
	VendorName  *string    `json:"vendor_name"`
	BillDate    *time.Time `json:"bill_date"`
	DueDate     *time.Time `json:"due_date"`
	TotalAmount *float64   `json:"total_amount" validate:"omitempty,gte=0"`
	PaidAmount  *float64   `json:"paid_amount" validate:"omitempty,gte=0"`
	Status      *string    `json:"status" validate:"omitempty,oneof=draft sent partial paid overdue cancelled"`
	Notes       *string    `json:"notes"`
}

func (svc *FinanceService) Bills(ctx context.Context) ([]models.Bill, error) {
	bills := []models.Bill{}
	err := svc.DB.NewSelect().Model(&bills).Order("bill_date DESC").Scan(ctx)
	return bills, err
}

func (svc *FinanceService) CreateBill(ctx context.Context, params CreateBillParams) (*models.Bill, error) {
	bill := models.Bill{
		Number:      svc.Numbers.Next(common.NumberPrefixBill),
		VendorID:    params.VendorID,
		VendorName:  params.VendorName,
		BillDate:    params.BillDate,
		DueDate:     params.DueDate,
		TotalAmount: params.TotalAmount,
		PaidAmount:  0,
		Status:      common.DocumentStatusDraft,
		Notes:       params.Notes,
	}
	if _, err := svc.DB.NewInsert().Model(&bill).Exec(ctx); err != nil {
		return nil, err
	}
	return &bill, nil
}

func (svc *FinanceService) UpdateBill(ctx context.Context, id int64, patch BillPatch) (*models.Bill, error) {
	var bill models.Bill
	err := svc.DB.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		if err := tx.NewSelect().Model(&bill).Where("id = ?", id).Scan(ctx); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNotFound
			}
			return err
		}
		if patch.VendorID != nil {
			bill.VendorID = *patch.VendorID
		}
		if patch.VendorName != nil {
			bill.VendorName = *patch.VendorName
		}
		if patch.BillDate != nil {
			bill.BillDate = *patch.BillDate
		}
		if patch.DueDate != nil {
			bill.DueDate = *patch.DueDate
		}
		if patch.TotalAmount != nil {
			bill.TotalAmount = *patch.TotalAmount
		}
		if patch.PaidAmount != nil {
			bill.PaidAmount = *patch.PaidAmount
		}
		if patch.Status != nil {
			bill.Status = *patch.Status
		}
		if patch.Notes != nil {
			bill.Notes = *patch.Notes
		}
		_, err := tx.NewUpdate().Model(&bill).WherePK().Exec(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &bill, nil
}

func (svc *FinanceService) DeleteBill(ctx context.Context, id int64) error {
	res, err := svc.DB.NewDelete().Model((*models.Bill)(nil)).Where("id = ?", id).Exec(ctx)
	if err != nil {
		return err
	}
	return requireAffected(res)
}
