package models

import (
	"context"
	"time"

	"github.com/uptrace/bun"
)

// TaxRule : reference data for an income bracket and its rate.
type TaxRule struct {
	ID        int64     `json:"id" bun:",pk,autoincrement"`
	Name      string    `json:"name" bun:",notnull"`
	MinIncome float64   `json:"min_income"`
	MaxIncome float64   `json:"max_income"`
	Rate      float64   `json:"rate"`
	Status    string    `json:"status" bun:",notnull,default:'active'"`
	CreatedAt time.Time `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `json:"updated_at" bun:",nullzero"`
}

func (t *TaxRule) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	switch query.(type) {
	case *bun.UpdateQuery:
		t.UpdatedAt = time.Now()
	}
	return nil
}

var _ bun.BeforeAppendModelHook = (*TaxRule)(nil)
