package models_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/snapspend/backend/internal/models"
	"github.com/snapspend/backend/internal/types"
)

func (suite *TestSuiteStandard) TestExpenseCreate() {
	expense := models.Expense{
		Amount:   decimal.NewFromFloat(14.37),
		Label:    "coffee",
		ImageRef: "receipt.jpg",
		Date:     types.NewDate(2024, 6, 3),
	}

	err := models.DB.Create(&expense).Error
	suite.Require().Nil(err)

	suite.Assert().NotEmpty(expense.ID, "ID is not set")
	suite.Assert().True(expense.Amount.Equal(decimal.NewFromFloat(14.37)))
	suite.Assert().Equal("coffee", expense.Label)
}

func (suite *TestSuiteStandard) TestExpenseDefaultLabel() {
	expense := models.Expense{
		Amount:   decimal.NewFromFloat(5),
		Label:    "  ",
		ImageRef: "receipt.jpg",
	}

	err := models.DB.Create(&expense).Error
	suite.Require().Nil(err)
	suite.Assert().Equal(models.DefaultLabel, expense.Label)
}

func (suite *TestSuiteStandard) TestExpenseDefaultDate() {
	expense := models.Expense{
		Amount:   decimal.NewFromFloat(5),
		ImageRef: "receipt.jpg",
	}

	err := models.DB.Create(&expense).Error
	suite.Require().Nil(err)
	suite.Assert().False(expense.Date.IsZero(), "expense date must default to the creation date")
}

func (suite *TestSuiteStandard) TestExpenseAmountMustBePositive() {
	tests := []struct {
		name   string
		amount decimal.Decimal
	}{
		{"zero", decimal.Zero},
		{"negative", decimal.NewFromFloat(-10)},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(_ *testing.T) {
			expense := models.Expense{
				Amount:   tt.amount,
				ImageRef: "receipt.jpg",
			}

			err := models.DB.Create(&expense).Error
			suite.Assert().ErrorIs(err, models.ErrExpenseAmountNotPositive)
		})
	}
}

func (suite *TestSuiteStandard) TestExpenseImageRequired() {
	expense := models.Expense{
		Amount: decimal.NewFromFloat(10),
	}

	err := models.DB.Create(&expense).Error
	suite.Assert().ErrorIs(err, models.ErrExpenseImageRequired)
}

func (suite *TestSuiteStandard) TestExpenseThumbnailFallback() {
	expense := models.Expense{
		ImageRef: "full.jpg",
	}
	suite.Assert().Equal("full.jpg", expense.Thumbnail())

	expense.ThumbnailRef = "thumb.jpg"
	suite.Assert().Equal("thumb.jpg", expense.Thumbnail())
}

func (suite *TestSuiteStandard) TestExpenses() {
	for _, label := range []string{"first", "second"} {
		err := models.DB.Create(&models.Expense{
			Amount:   decimal.NewFromFloat(1),
			Label:    label,
			ImageRef: "receipt.jpg",
		}).Error
		suite.Require().Nil(err)
	}

	expenses, err := models.Expenses(models.DB)
	suite.Require().Nil(err)
	suite.Assert().Len(expenses, 2)
}

func (suite *TestSuiteStandard) TestExpensesDBClosed() {
	suite.CloseDB()

	_, err := models.Expenses(models.DB)
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}
