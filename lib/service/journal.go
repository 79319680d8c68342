package service

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"time"

	"github.com/Jetixia-Updates/oddos-finance/common"
	"github.com/Jetixia-Updates/oddos-finance/db/models"
	"github.com/uptrace/bun"
)

var (
	// ErrUnbalancedEntry rejects posting when debits and credits differ.
	ErrUnbalancedEntry = errors.New("journal entry debits and credits do not balance")
	// ErrAlreadyPosted rejects writes against an entry that left draft state.
	ErrAlreadyPosted = errors.New("journal entry is already posted")
)

type JournalLineParams struct {
	AccountID int64   `json:"account_id" validate:"required"`
	Debit     float64 `json:"debit" validate:"gte=0"`
	Credit    float64 `json:"credit" validate:"gte=0"`
}

type CreateJournalEntryParams struct {
	EntryDate time.Time           `json:"entry_date" validate:"required"`
	Memo      string              `json:"memo"`
	Lines     []JournalLineParams `json:"lines" validate:"dive"`
}

type JournalEntryPatch struct {
	EntryDate *time.Time          `json:"entry_date"`
	Memo      *string             `json:"memo"`
	Lines     []JournalLineParams `json:"lines" validate:"omitempty,dive"`
}

func (svc *FinanceService) JournalEntries(ctx context.Context) ([]models.JournalEntry, error) {
	entries := []models.JournalEntry{}
	err := svc.DB.NewSelect().Model(&entries).Relation("Lines").Order("entry_date DESC").Scan(ctx)
	return entries, err
}

func (svc *FinanceService) CreateJournalEntry(ctx context.Context, params CreateJournalEntryParams) (*models.JournalEntry, error) {
	entry := models.JournalEntry{
		Number:    svc.Numbers.Next(common.NumberPrefixJournal),
		EntryDate: params.EntryDate,
		Memo:      params.Memo,
		Status:    common.JournalStatusDraft,
	}
	err := svc.DB.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(&entry).Exec(ctx); err != nil {
			return err
		}
		return insertLines(ctx, tx, &entry, params.Lines)
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (svc *FinanceService) UpdateJournalEntry(ctx context.Context, id int64, patch JournalEntryPatch) (*models.JournalEntry, error) {
	var entry models.JournalEntry
	err := svc.DB.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		if err := tx.NewSelect().Model(&entry).Relation("Lines").Where("journal_entry.id = ?", id).Scan(ctx); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNotFound
			}
			return err
		}
		if entry.Status == common.JournalStatusPosted {
			return ErrAlreadyPosted
		}
		if patch.EntryDate != nil {
			entry.EntryDate = *patch.EntryDate
		}
		if patch.Memo != nil {
			entry.Memo = *patch.Memo
		}
		if _, err := tx.NewUpdate().Model(&entry).WherePK().Exec(ctx); err != nil {
			return err
		}
		if patch.Lines != nil {
			if _, err := tx.NewDelete().Model((*models.JournalLine)(nil)).Where("journal_entry_id = ?", entry.ID).Exec(ctx); err != nil {
				return err
			}
			return insertLines(ctx, tx, &entry, patch.Lines)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (svc *FinanceService) DeleteJournalEntry(ctx context.Context, id int64) error {
	return svc.DB.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().Model((*models.JournalLine)(nil)).Where("journal_entry_id = ?", id).Exec(ctx); err != nil {
			return err
		}
		res, err := tx.NewDelete().Model((*models.JournalEntry)(nil)).Where("id = ?", id).Exec(ctx)
		if err != nil {
			return err
		}
		return requireAffected(res)
	})
}

// PostJournalEntry finalizes a draft entry: it verifies the entry balances
// and applies every line to its account in one transaction, so an entry can
// never be half-posted.
func (svc *FinanceService) PostJournalEntry(ctx context.Context, id int64) (*models.JournalEntry, error) {
	var entry models.JournalEntry
	err := svc.DB.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		if err := tx.NewSelect().Model(&entry).Relation("Lines").Where("journal_entry.id = ?", id).Scan(ctx); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNotFound
			}
			return err
		}
		if entry.Status == common.JournalStatusPosted {
			return ErrAlreadyPosted
		}
		if !entryBalanced(entry.Lines) {
			return ErrUnbalancedEntry
		}
		for _, line := range entry.Lines {
			var account models.Account
			if err := tx.NewSelect().Model(&account).Where("id = ?", line.AccountID).Scan(ctx); err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					return ErrNotFound
				}
				return err
			}
			account.Balance += balanceDelta(account.Type, line.Debit, line.Credit)
			if _, err := tx.NewUpdate().Model(&account).WherePK().Exec(ctx); err != nil {
				return err
			}
		}
		entry.Status = common.JournalStatusPosted
		_, err := tx.NewUpdate().Model(&entry).WherePK().Exec(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func insertLines(ctx context.Context, tx bun.Tx, entry *models.JournalEntry, params []JournalLineParams) error {
	if len(params) == 0 {
		entry.Lines = []models.JournalLine{}
		return nil
	}
	lines := make([]models.JournalLine, len(params))
	for i, p := range params {
		lines[i] = models.JournalLine{
			JournalEntryID: entry.ID,
			AccountID:      p.AccountID,
			Debit:          p.Debit,
			Credit:         p.Credit,
		}
	}
	if _, err := tx.NewInsert().Model(&lines).Exec(ctx); err != nil {
		return err
	}
	entry.Lines = lines
	return nil
}

// entryBalanced reports whether the entry's debit lines sum to its credit
// lines, within a float tolerance.
func entryBalanced(lines []models.JournalLine) bool {
	var debits, credits float64
	for _, line := range lines {
		debits += line.Debit
		credits += line.Credit
	}
	return math.Abs(debits-credits) < 1e-9
}

// balanceDelta returns the signed balance change a line causes on an account.
// Asset-side accounts grow with debits, liability-side accounts with credits.
func balanceDelta(accountType string, debit, credit float64) float64 {
	switch accountType {
	case common.AccountTypeCash, common.AccountTypeBank, common.AccountTypeAsset, common.AccountTypeExpense:
		return debit - credit
	default:
		return credit - debit
	}
}
