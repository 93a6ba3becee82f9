package models

import (
	"errors"

	"github.com/shopspring/decimal"
	"github.com/snapspend/backend/internal/types"
	"gorm.io/gorm"
)

// BudgetSettings holds the default monthly budget. There is exactly one
// row, created on first access.
type BudgetSettings struct {
	DefaultModel
	Amount decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"2500"` // The default monthly budget
}

func (BudgetSettings) Self() string {
	return "Budget Settings"
}

// BeforeSave rejects negative budget amounts.
func (b *BudgetSettings) BeforeSave(_ *gorm.DB) error {
	if b.Amount.IsNegative() {
		return ErrBudgetAmountNegative
	}

	return nil
}

// BudgetOverride is a budget amount for one specific month, taking
// precedence over the default. The month being the primary key guarantees
// at most one override per period.
type BudgetOverride struct {
	Timestamps
	Month  types.Month     `json:"month" gorm:"primaryKey" example:"2024-06"`       // The month the override applies to
	Amount decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"1000"` // The budget for this month
}

func (BudgetOverride) Self() string {
	return "Budget Override"
}

// BeforeSave rejects overrides without a month and with negative amounts.
func (o *BudgetOverride) BeforeSave(_ *gorm.DB) error {
	if o.Month.IsZero() {
		return ErrOverrideMonthRequired
	}

	if o.Amount.IsNegative() {
		return ErrBudgetAmountNegative
	}

	return nil
}

// Settings returns the budget settings, creating the single row with a
// zero default budget when it does not exist yet.
func Settings(db *gorm.DB) (BudgetSettings, error) {
	var settings BudgetSettings

	err := db.First(&settings).Error
	if err == nil {
		return settings, nil
	}

	if !errors.Is(err, ErrResourceNotFound) && !errors.Is(err, gorm.ErrRecordNotFound) {
		return BudgetSettings{}, err
	}

	err = db.Create(&settings).Error
	return settings, err
}

// Overrides returns all budget overrides.
func Overrides(db *gorm.DB) ([]BudgetOverride, error) {
	var overrides []BudgetOverride
	err := db.Find(&overrides).Error
	return overrides, err
}
