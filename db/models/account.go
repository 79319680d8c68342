package models

import (
	"context"
	"time"

	"github.com/uptrace/bun"
)

// Account : chart-of-accounts record.
// Balance is set directly by the caller; posting a journal entry is the only
// code path that adjusts it from lines.
type Account struct {
	ID        int64     `json:"id" bun:",pk,autoincrement"`
	Number    string    `json:"number" bun:",unique,notnull"`
	Name      string    `json:"name" bun:",notnull"`
	Type      string    `json:"type" bun:",notnull"`
	Balance   float64   `json:"balance"`
	CreatedAt time.Time `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `json:"updated_at" bun:",nullzero"`
}

func (a *Account) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	switch query.(type) {
	case *bun.UpdateQuery:
		a.UpdatedAt = time.Now()
	}
	return nil
}

var _ bun.BeforeAppendModelHook = (*Account)(nil)
