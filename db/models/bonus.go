package models

import (
	"context"
	"time"

	"github.com/uptrace/bun"
)

// Bonus : one-off payment to an employee, outside the regular pay run.
type Bonus struct {
	ID         int64     `json:"id" bun:",pk,autoincrement"`
	Number     string    `json:"number" bun:",unique,notnull"`
	EmployeeID int64     `json:"employee_id" bun:",notnull"`
	Amount     float64   `json:"amount"`
	Reason     string    `json:"reason,omitempty" bun:",nullzero"`
	BonusDate  time.Time `json:"bonus_date" bun:",notnull"`
	Status     string    `json:"status" bun:",notnull,default:'pending'"`
	CreatedAt  time.Time `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt  time.Time `json:"updated_at" bun:",nullzero"`
}

func (b *Bonus) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	switch query.(type) {
	case *bun.UpdateQuery:
		b.UpdatedAt = time.Now()
	}
	return nil
}

var _ bun.BeforeAppendModelHook = (*Bonus)(nil)
