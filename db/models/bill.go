package models

import (
	"context"
	"time"

	"github.com/uptrace/bun"
)

// Bill : payable received from a vendor, the mirror of Invoice.
type Bill struct {
	ID          int64     `json:"id" bun:",pk,autoincrement"`
	Number      string    `json:"number" bun:",unique,notnull"`
	VendorID    int64     `json:"vendor_id" bun:",notnull"`
	VendorName  string    `json:"vendor_name" bun:",nullzero"`
	BillDate    time.Time `json:"bill_date" bun:",notnull"`
	DueDate     time.Time `json:"due_date" bun:",notnull"`
	TotalAmount float64   `json:"total_amount"`
	PaidAmount  float64   `json:"paid_amount"`
	Status      string    `json:"status" bun:",notnull,default:'draft'"`
	Notes       string    `json:"notes,omitempty" bun:",nullzero"`
	CreatedAt   time.Time `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt   time.Time `json:"updated_at" bun:",nullzero"`
}

// Outstanding returns the unpaid portion of the bill.
func (b *Bill) Outstanding() float64 {
	return b.TotalAmount - b.PaidAmount
}

// Overdue reports whether the bill is unpaid past its due date.
func (b *Bill) Overdue(now time.Time) bool {
	return b.Status != "paid" && b.DueDate.Before(now)
}

func (b *Bill) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	switch query.(type) {
	case *bun.UpdateQuery:
		b.UpdatedAt = time.Now()
	}
	return nil
}

var _ bun.BeforeAppendModelHook = (*Bill)(nil)
