package models

import (
	"context"
	"time"

	"github.com/uptrace/bun"
)

// Invoice : receivable issued to a customer. Status is caller-set and is not
// derived from PaidAmount, so the two can diverge.
type Invoice struct {
	ID           int64     `json:"id" bun:",pk,autoincrement"`
	Number       string    `json:"number" bun:",unique,notnull"`
	CustomerID   int64     `json:"customer_id" bun:",notnull"`
	CustomerName string    `json:"customer_name" bun:",nullzero"`
	InvoiceDate  time.Time `json:"invoice_date" bun:",notnull"`
	DueDate      time.Time `json:"due_date" bun:",notnull"`
	TotalAmount  float64   `json:"total_amount"`
	PaidAmount   float64   `json:"paid_amount"`
	Status       string    `json:"status" bun:",notnull,default:'draft'"`
	Notes        string    `json:"notes,omitempty" bun:",nullzero"`
	CreatedAt    time.Time `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt    time.Time `json:"updated_at" bun:",nullzero"`
}

// Outstanding returns the unpaid portion of the invoice.
func (i *Invoice) Outstanding() float64 {
	return i.TotalAmount - i.PaidAmount
}

// Overdue reports whether the invoice is unpaid past its due date.
func (i *Invoice) Overdue(now time.Time) bool {
	return i.Status != "paid" && i.DueDate.Before(now)
}

func (i *Invoice) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	switch query.(type) {
	case *bun.UpdateQuery:
		i.UpdatedAt = time.Now()
	}
	return nil
}

var _ bun.BeforeAppendModelHook = (*Invoice)(nil)
