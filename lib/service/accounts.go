package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Jetixia-Updates/oddos-finance/common"
	"github.com/Jetixia-Updates/oddos-finance/db/models"
	"github.com/uptrace/bun"
)

type CreateAccountParams struct {
	Name    string  `json:"name" validate:"required"`
	Type    string  `json:"type" validate:"required,oneof=cash bank asset liability equity revenue expense"`
	Balance float64 `json:"balance"`
}

// AccountPatch carries only the fields the caller supplied. Nil means
// "leave the stored value alone".
type AccountPatch struct {
	Name    *string  `json:"name"`
	Type    *string  `json:"type" validate:"omitempty,oneof=cash bank asset liability equity revenue expense"`
	Balance *float64 `json:"balance"`
}

func (svc *FinanceService) Accounts(ctx context.Context) ([]models.Account, error) {
	accounts := []models.Account{}
	err := svc.DB.NewSelect().Model(&accounts).Order("id ASC").Scan(ctx)
	return accounts, err
}

func (svc *FinanceService) CreateAccount(ctx context.Context, params CreateAccountParams) (*models.Account, error) {
	account := models.Account{
		Number:  svc.Numbers.Next(common.NumberPrefixAccount),
		Name:    params.Name,
		Type:    params.Type,
		Balance: params.Balance,
	}
	if _, err := svc.DB.NewInsert().Model(&account).Exec(ctx); err != nil {
		return nil, err
	}
	return &account, nil
}

func (svc *FinanceService) UpdateAccount(ctx context.Context, id int64, patch AccountPatch) (*models.Account, error) {
	var account models.Account
	err := svc.DB.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		if err := tx.NewSelect().Model(&account).Where("id = ?", id).Scan(ctx); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNotFound
			}
			return err
		}
		if patch.Name != nil {
			account.Name = *patch.Name
		}
		if patch.Type != nil {
			account.Type = *patch.Type
		}
		if patch.Balance != nil {
			account.Balance = *patch.Balance
		}
		_, err := tx.NewUpdate().Model(&account).WherePK().Exec(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (svc *FinanceService) DeleteAccount(ctx context.Context, id int64) error {
	res, err := svc.DB.NewDelete().Model((*models.Account)(nil)).Where("id = ?", id).Exec(ctx)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

// requireAffected turns a zero-row write into ErrNotFound so that deletes
// and updates against unknown ids do not succeed silently.
func requireAffected(res sql.Result) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
