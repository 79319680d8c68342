package models

import (
	"context"
	"time"

	"github.com/uptrace/bun"
)

// PayrollRecord : one pay run for one employee. GrossPay and NetPay are
// derived on every write and are never accepted from the caller.
type PayrollRecord struct {
	ID             int64     `json:"id" bun:",pk,autoincrement"`
	Number         string    `json:"number" bun:",unique,notnull"`
	EmployeeID     int64     `json:"employee_id" bun:",notnull"`
	PayPeriodStart time.Time `json:"pay_period_start" bun:",notnull"`
	PayPeriodEnd   time.Time `json:"pay_period_end" bun:",notnull"`
	BasicSalary    float64   `json:"basic_salary"`
	Allowances     float64   `json:"allowances"`
	Deductions     float64   `json:"deductions"`
	Tax            float64   `json:"tax"`
	GrossPay       float64   `json:"gross_pay"`
	NetPay         float64   `json:"net_pay"`
	Status         string    `json:"status" bun:",notnull,default:'draft'"`
	CreatedAt      time.Time `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt      time.Time `json:"updated_at" bun:",nullzero"`
}

func (p *PayrollRecord) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	switch query.(type) {
	case *bun.UpdateQuery:
		p.UpdatedAt = time.Now()
	}
	return nil
}

var _ bun.BeforeAppendModelHook = (*PayrollRecord)(nil)
