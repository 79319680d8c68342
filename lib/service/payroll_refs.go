package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Jetixia-Updates/oddos-finance/common"
	"github.com/Jetixia-Updates/oddos-finance/db/models"
	"github.com/uptrace/bun"
)

// Salary components, tax rules and bonuses are reference stores: plain
// records with no derivation. Bonus is the only one that gets a generated
// number and a default status.

type CreateSalaryComponentParams struct {
	Name      string  `json:"name" validate:"required"`
	Type      string  `json:"type" validate:"required,oneof=allowance deduction"`
	Value     float64 `json:"value" validate:"gte=0"`
	ValueType string  `json:"value_type" validate:"omitempty,oneof=fixed percentage"`
}

type SalaryComponentPatch struct {
	Name      *string  `json:"name"`
	Type      *string  `json:"type" validate:"omitempty,oneof=allowance deduction"`
	Value     *float64 `json:"value" validate:"omitempty,gte=0"`
	ValueType *string  `json:"value_type" validate:"omitempty,oneof=fixed percentage"`
	Status    *string  `json:"status" validate:"omitempty,oneof=active inactive"`
}

type CreateTaxRuleParams struct {
	Name      string  `json:"name" validate:"required"`
	MinIncome float64 `json:"min_income" validate:"gte=0"`
	MaxIncome float64 `json:"max_income" validate:"gte=0"`
	Rate      float64 `json:"rate" validate:"gte=0"`
}

type TaxRulePatch struct {
	Name      *string  `json:"name"`
	MinIncome *float64 `json:"min_income" validate:"omitempty,gte=0"`
	MaxIncome *float64 `json:"max_income" validate:"omitempty,gte=0"`
	Rate      *float64 `json:"rate" validate:"omitempty,gte=0"`
	Status    *string  `json:"status" validate:"omitempty,oneof=active inactive"`
}

type CreateBonusParams struct {
	EmployeeID int64     `json:"employee_id" validate:"required"`
	Amount     float64   `json:"amount" validate:"gte=0"`
	Reason     string    `json:"reason"`
	BonusDate  time.Time `json:"bonus_date" validate:"required"`
}

type BonusPatch struct {
	EmployeeID *int64     `json:"employee_id"`
	Amount     *float64   `json:"amount" validate:"omitempty,gte=0"`
	Reason     *string    `json:"reason"`
	BonusDate  *time.Time `json:"bonus_date"`
	Status     *string    `json:"status" validate:"omitempty,oneof=pending approved paid"`
}

func (svc *FinanceService) SalaryComponents(ctx context.Context) ([]models.SalaryComponent, error) {
	components := []models.SalaryComponent{}
	err := svc.DB.NewSelect().Model(&components).Order("id ASC").Scan(ctx)
	return components, err
}

func (svc *FinanceService) CreateSalaryComponent(ctx context.Context, params CreateSalaryComponentParams) (*models.SalaryComponent, error) {
	component := models.SalaryComponent{
		Name:      params.Name,
		Type:      params.Type,
		Value:     params.Value,
		ValueType: params.ValueType,
		Status:    common.ComponentStatusActive,
	}
	if component.ValueType == "" {
		component.ValueType = "fixed"
	}
	if _, err := svc.DB.NewInsert().Model(&component).Exec(ctx); err != nil {
		return nil, err
	}
	return &component, nil
}

func (svc *FinanceService) UpdateSalaryComponent(ctx context.Context, id int64, patch SalaryComponentPatch) (*models.SalaryComponent, error) {
	var component models.SalaryComponent
	err := svc.DB.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		if err := tx.NewSelect().Model(&component).Where("id = ?", id).Scan(ctx); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNotFound
			}
			return err
		}
		if patch.Name != nil {
			component.Name = *patch.Name
		}
		if patch.Type != nil {
			component.Type = *patch.Type
		}
		if patch.Value != nil {
			component.Value = *patch.Value
		}
		if patch.ValueType != nil {
			component.ValueType = *patch.ValueType
		}
		if patch.Status != nil {
			component.Status = *patch.Status
		}
		_, err := tx.NewUpdate().Model(&component).WherePK().Exec(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &component, nil
}

func (svc *FinanceService) DeleteSalaryComponent(ctx context.Context, id int64) error {
	res, err := svc.DB.NewDelete().Model((*models.SalaryComponent)(nil)).Where("id = ?", id).Exec(ctx)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (svc *FinanceService) TaxRules(ctx context.Context) ([]models.TaxRule, error) {
	rules := []models.TaxRule{}
	err := svc.DB.NewSelect().Model(&rules).Order("min_income ASC").Scan(ctx)
	return rules, err
}

func (svc *FinanceService) CreateTaxRule(ctx context.Context, params CreateTaxRuleParams) (*models.TaxRule, error) {
	rule := models.TaxRule{
		Name:      params.Name,
		MinIncome: params.MinIncome,
		MaxIncome: params.MaxIncome,
		Rate:      params.Rate,
		Status:    common.ComponentStatusActive,
	}
	if _, err := svc.DB.NewInsert().Model(&rule).Exec(ctx); err != nil {
		return nil, err
	}
	return &rule, nil
}

func (svc *FinanceService) UpdateTaxRule(ctx context.Context, id int64, patch TaxRulePatch) (*models.TaxRule, error) {
	var rule models.TaxRule
	err := svc.DB.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		if err := tx.NewSelect().Model(&rule).Where("id = ?", id).Scan(ctx); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNotFound
			}
			return err
		}
		if patch.Name != nil {
			rule.Name = *patch.Name
		}
		if patch.MinIncome != nil {
			rule.MinIncome = *patch.MinIncome
		}
		if patch.MaxIncome != nil {
			rule.MaxIncome = *patch.MaxIncome
		}
		if patch.Rate != nil {
			rule.Rate = *patch.Rate
		}
		if patch.Status != nil {
			rule.Status = *patch.Status
		}
		_, err := tx.NewUpdate().Model(&rule).WherePK().Exec(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &rule, nil
}

func (svc *FinanceService) DeleteTaxRule(ctx context.Context, id int64) error {
	res, err := svc.DB.NewDelete().Model((*models.TaxRule)(nil)).Where("id = ?", id).Exec(ctx)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (svc *FinanceService) Bonuses(ctx context.Context) ([]models.Bonus, error) {
	bonuses := []models.Bonus{}
	err := svc.DB.NewSelect().Model(&bonuses).Order("bonus_date DESC").Scan(ctx)
	return bonuses, err
}

func (svc *FinanceService) CreateBonus(ctx context.Context, params CreateBonusParams) (*models.Bonus, error) {
	bonus := models.Bonus{
		Number:     svc.Numbers.Next(common.NumberPrefixBonus),
		EmployeeID: params.EmployeeID,
		Amount:     params.Amount,
		Reason:     params.Reason,
		BonusDate:  params.BonusDate,
		Status:     common.BonusStatusPending,
	}
	if _, err := svc.DB.NewInsert().Model(&bonus).Exec(ctx); err != nil {
		return nil, err
	}
	return &bonus, nil
}

func (svc *FinanceService) UpdateBonus(ctx context.Context, id int64, patch BonusPatch) (*models.Bonus, error) {
	var bonus models.Bonus
	err := svc.DB.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		if err := tx.NewSelect().Model(&bonus).Where("id = ?", id).Scan(ctx); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNotFound
			}
			return err
		}
		if patch.EmployeeID != nil {
			bonus.EmployeeID = *patch.EmployeeID
		}
		if patch.Amount != nil {
			bonus.Amount = *patch.Amount
		}
		if patch.Reason != nil {
			bonus.Reason = *patch.Reason
		}
		if patch.BonusDate != nil {
			bonus.BonusDate = *patch.BonusDate
		}
		if patch.Status != nil {
			bonus.Status = *patch.Status
		}
		_, err := tx.NewUpdate().Model(&bonus).WherePK().Exec(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &bonus, nil
}

func (svc *FinanceService) DeleteBonus(ctx context.Context, id int64) error {
	res, err := svc.DB.NewDelete().Model((*models.Bonus)(nil)).Where("id = ?", id).Exec(ctx)
	if err != nil {
		return err
	}
	return requireAffected(res)
}
