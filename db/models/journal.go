package models

import (
	"context"
	"time"

	"github.com/uptrace/bun"
)

// JournalEntry : dated ledger record. Entries start as drafts and are
// finalized against account balances by posting; a posted entry is immutable.
type JournalEntry struct {
	ID        int64         `json:"id" bun:",pk,autoincrement"`
	Number    string        `json:"number" bun:",unique,notnull"`
	EntryDate time.Time     `json:"entry_date" bun:",notnull"`
	Memo      string        `json:"memo" bun:",nullzero"`
	Status    string        `json:"status" bun:",notnull,default:'draft'"`
	Lines     []JournalLine `json:"lines" bun:"rel:has-many,join:id=journal_entry_id"`
	CreatedAt time.Time     `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time     `json:"updated_at" bun:",nullzero"`
}

// JournalLine : a single debit or credit against one account.
type JournalLine struct {
	ID             int64    `json:"id" bun:",pk,autoincrement"`
	JournalEntryID int64    `json:"journal_entry_id" bun:",notnull"`
	AccountID      int64    `json:"account_id" bun:",notnull"`
	Account        *Account `json:"-" bun:"rel:belongs-to,join:account_id=id"`
	Debit          float64  `json:"debit"`
	Credit         float64  `json:"credit"`
}

func (j *JournalEntry) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	switch query.(type) {
	case *bun.UpdateQuery:
		j.UpdatedAt = time.Now()
	}
	return nil
}

var _ bun.BeforeAppendModelHook = (*JournalEntry)(nil)
