package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/snapspend/backend/internal/models"
	"github.com/snapspend/backend/internal/types"
)

type ExpenseLinks struct {
	Self      string `json:"self" example:"https://example.com/api/v1/expenses/d1b4ge84-...."`                // The expense itself
	Image     string `json:"image" example:"https://example.com/api/v1/expenses/d1b4ge84-..../image"`         // The full-resolution photo
	Thumbnail string `json:"thumbnail" example:"https://example.com/api/v1/expenses/d1b4ge84-..../thumbnail"` // The reduced-size photo
}

type Expense struct {
	models.DefaultModel
	Amount decimal.Decimal `json:"amount" example:"14.37"`    // The amount of the expense
	Label  string          `json:"label" example:"groceries"` // Short description of the expense
	Date   types.Date      `json:"date" example:"2024-06-03"` // Calendar date the expense is attributed to
	Links  ExpenseLinks    `json:"links"`
}

func newExpense(c *gin.Context, model models.Expense) Expense {
	url := c.GetString(string(models.DBContextURL))

	return Expense{
		DefaultModel: model.DefaultModel,
		Amount:       model.Amount,
		Label:        model.Label,
		Date:         model.Date,
		Links: ExpenseLinks{
			Self:      fmt.Sprintf("%s/v1/expenses/%s", url, model.ID),
			Image:     fmt.Sprintf("%s/v1/expenses/%s/image", url, model.ID),
			Thumbnail: fmt.Sprintf("%s/v1/expenses/%s/thumbnail", url, model.ID),
		},
	}
}

type ExpenseResponse struct {
	Data  *Expense `json:"data"`                                                          // The expense
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ExpenseListResponse struct {
	Data       []Expense   `json:"data"`                                                          // List of expenses
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type ExpenseQueryFilter struct {
	From   types.Date `form:"from" filterField:"false"`   // Only expenses on or after this date
	To     types.Date `form:"to" filterField:"false"`     // Only expenses on or before this date
	Label  string     `form:"label" filterField:"false"`  // Filter by label, glob patterns are supported
	Offset uint       `form:"offset" filterField:"false"` // The offset of the first Expense returned. Defaults to 0.
	Limit  int        `form:"limit" filterField:"false"`  // Maximum number of Expenses to return. Defaults to 50.
}
