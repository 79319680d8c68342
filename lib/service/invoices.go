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

type CreateInvoiceParams struct {
	CustomerID   int64     `json:"customer_id" validate:"required"`
	CustomerName string    `json:"customer_name"`
	InvoiceDate  time.Time `json:"invoice_date" validate:"required"`
	DueDate      time.Time `json:"due_date" validate:"required"`
	TotalAmount  float64   `json:"total_amount" validate:"gte=0"`
	Notes        string    `json:"notes"`
}

type InvoicePatch struct {
	CustomerID   *int64     `json:"customer_id"`
	CustomerName *string    `json:"customer_name"`
	InvoiceDate  *time.Time `json:"invoice_date"`
	DueDate      *time.Time `json:"due_date"`
	TotalAmount  *float64   `json:"total_amount" validate:"omitempty,gte=0"`
	PaidAmount   *float64   `json:"paid_amount" validate:"omitempty,gte=0"`
	Status       *string    `json:"status" validate:"omitempty,oneof=draft sent partial paid overdue cancelled"`
	Notes        *string    `json:"notes"`
}

func (svc *FinanceService) Invoices(ctx context.Context) ([]models.Invoice, error) {
	invoices := []models.Invoice{}
	err := svc.DB.NewSelect().Model(&invoices).Order("invoice_date DESC").Scan(ctx)
	return invoices, err
}

func (svc *FinanceService) CreateInvoice(ctx context.Context, params CreateInvoiceParams) (*models.Invoice, error) {
	invoice := models.Invoice{
		Number:       svc.Numbers.Next(common.NumberPrefixInvoice),
		CustomerID:   params.CustomerID,
		CustomerName: params.CustomerName,
		InvoiceDate:  params.InvoiceDate,
		DueDate:      params.DueDate,
		TotalAmount:  params.TotalAmount,
		PaidAmount:   0,
		Status:       common.DocumentStatusDraft,
		Notes:        params.Notes,
	}
	if _, err := svc.DB.NewInsert().Model(&invoice).Exec(ctx); err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (svc *FinanceService) UpdateInvoice(ctx context.Context, id int64, patch InvoicePatch) (*models.Invoice, error) {
	var invoice models.Invoice
	err := svc.DB.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		if err := tx.NewSelect().Model(&invoice).Where("id = ?", id).Scan(ctx); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNotFound
			}
			return err
		}
		if patch.CustomerID != nil {
			invoice.CustomerID = *patch.CustomerID
		}
		if patch.CustomerName != nil {
			invoice.CustomerName = *patch.CustomerName
		}
		if patch.InvoiceDate != nil {
			invoice.InvoiceDate = *patch.InvoiceDate
		}
		if patch.DueDate != nil {
			invoice.DueDate = *patch.DueDate
		}
		if patch.TotalAmount != nil {
			invoice.TotalAmount = *patch.TotalAmount
		}
		if patch.PaidAmount != nil {
			invoice.PaidAmount = *patch.PaidAmount
		}
		if patch.Status != nil {
			invoice.Status = *patch.Status
		}
		if patch.Notes != nil {
			invoice.Notes = *patch.Notes
		}
		_, err := tx.NewUpdate().Model(&invoice).WherePK().Exec(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (svc *FinanceService) DeleteInvoice(ctx context.Context, id int64) error {
	res, err := svc.DB.NewDelete().Model((*models.Invoice)(nil)).Where("id = ?", id).Exec(ctx)
	if err != nil {
		return err
	}
	return requireAffected(res)
}
