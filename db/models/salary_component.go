package models

import (
	"context"
	"time"

	"github.com/uptrace/bun"
)

// SalaryComponent : reference data describing a recurring allowance or
// deduction. Nothing is derived from it; payroll derivation reads the
// amounts the caller supplies on the record itself.
type SalaryComponent struct {
	ID        int64     `json:"id" bun:",pk,autoincrement"`
	Name      string    `json:"name" bun:",notnull"`
	Type      string    `json:"type" bun:",notnull"`
	Value     float64   `json:"value"`
	ValueType string    `json:"value_type" bun:",notnull,default:'fixed'"`
	Status    string    `json:"status" bun:",notnull,default:'active'"`
	CreatedAt time.Time `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `json:"updated_at" bun:",nullzero"`
}

func (s *SalaryComponent) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	switch query.(type) {
	case *bun.UpdateQuery:
		s.UpdatedAt = time.Now()
	}
	return nil
}

var _ bun.BeforeAppendModelHook = (*SalaryComponent)(nil)
