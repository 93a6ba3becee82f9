package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/snapspend/backend/internal/types"
	"gorm.io/gorm"
)

// DefaultLabel is used for expenses that are logged without a label.
const DefaultLabel = "groceries"

// Expense represents one logged purchase.
//
// An expense never exists without its photo: ImageRef is required and the
// record is created together with the stored image. Expenses are immutable
// except for deletion.
type Expense struct {
	DefaultModel
	Amount       decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"14.37"`               // The amount of the expense, always positive
	Label        string          `json:"label" example:"groceries"`                                      // Short description, defaults to "groceries"
	ImageRef     string          `json:"imageRef" example:"2f1f9d9f-9185-4c14-a7df-14a9b2f9c957.jpg"`    // Reference to the full-resolution photo
	ThumbnailRef string          `json:"thumbnailRef,omitempty" example:"2f1f9d9f_thumb.jpg"`            // Reference to the reduced-size derivative, optional
	Date         types.Date      `json:"date" gorm:"index" example:"2024-06-03"`                         // Calendar date the expense is attributed to
}

func (e Expense) Self() string {
	return "Expense"
}

// Thumbnail returns the reference to the reduced-size image,
// falling back to the full-resolution photo when there is none.
func (e Expense) Thumbnail() string {
	if e.ThumbnailRef == "" {
		return e.ImageRef
	}

	return e.ThumbnailRef
}

// BeforeSave
//   - rejects non-positive amounts
//   - ensures the image reference is set
//   - defaults the label and the expense date
func (e *Expense) BeforeSave(_ *gorm.DB) error {
	if !e.Amount.IsPositive() {
		return ErrExpenseAmountNotPositive
	}

	e.Label = strings.TrimSpace(e.Label)
	if e.Label == "" {
		e.Label = DefaultLabel
	}

	e.ImageRef = strings.TrimSpace(e.ImageRef)
	if e.ImageRef == "" {
		return ErrExpenseImageRequired
	}

	if e.Date.IsZero() {
		e.Date = types.DateOf(time.Now().In(time.UTC))
	}

	return nil
}

// Expenses returns all expenses, most recently logged first.
func Expenses(db *gorm.DB) ([]Expense, error) {
	var expenses []Expense
	err := db.Order("created_at DESC").Find(&expenses).Error
	return expenses, err
}
