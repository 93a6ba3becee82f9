package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/snapspend/backend/internal/budget"
	"github.com/snapspend/backend/internal/httperror"
	"github.com/snapspend/backend/internal/httputil"
	"github.com/snapspend/backend/internal/models"
	"github.com/snapspend/backend/internal/types"
	"gorm.io/gorm/clause"
)

// BudgetEditable represents the user configurable part of the budget
// configuration.
type BudgetEditable struct {
	Amount decimal.Decimal `json:"amount" example:"2500"` // The monthly budget amount
}

type BudgetConfiguration struct {
	Amount    decimal.Decimal         `json:"amount" example:"2500"` // The default monthly budget
	Overrides []models.BudgetOverride `json:"overrides"`             // All per-month overrides
}

type BudgetResponse struct {
	Data  *BudgetConfiguration `json:"data"`                                               // The budget configuration
	Error *string              `json:"error" example:"the budget amount must not be negative"` // The error, if any occurred
}

func (co *Controller) registerBudgetRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsBudget)
		r.GET("", co.GetBudget)
		r.PATCH("", co.UpdateBudget)
	}

	// Override for one month
	{
		r.OPTIONS("/:month", co.OptionsBudgetMonth)
		r.PUT("/:month", co.SetBudgetOverride)
		r.DELETE("/:month", co.DeleteBudgetOverride)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budget
// @Success		204
// @Router			/v1/budget [options]
func (co *Controller) OptionsBudget(c *gin.Context) {
	httputil.OptionsGetPatch(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budget
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Param			month	path	string	true	"The month in YYYY-MM format"
// @Router			/v1/budget/{month} [options]
func (co *Controller) OptionsBudgetMonth(c *gin.Context) {
	var uri URIMonth
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	httputil.OptionsPutDelete(c)
}

// @Summary		Get budget configuration
// @Description	Returns the default monthly budget and all per-month overrides
// @Tags			Budget
// @Produce		json
// @Success		200	{object}	BudgetResponse
// @Failure		500	{object}	httperror.Error
// @Router			/v1/budget [get]
func (co *Controller) GetBudget(c *gin.Context) {
	settings, err := models.Settings(models.DB)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	overrides, err := models.Overrides(models.DB)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusOK, BudgetResponse{Data: &BudgetConfiguration{
		Amount:    settings.Amount,
		Overrides: overrides,
	}})
}

// @Summary		Update default budget
// @Description	Sets the default monthly budget amount
// @Tags			Budget
// @Accept			json
// @Produce		json
// @Success		200		{object}	BudgetResponse
// @Failure		400		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/v1/budget [patch]
func (co *Controller) UpdateBudget(c *gin.Context) {
	var editable BudgetEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	settings, err := models.Settings(models.DB)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	settings.Amount = editable.Amount
	err = models.DB.Save(&settings).Error
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	co.GetBudget(c)
}

// @Summary		Set budget override
// @Description	Sets the budget for one specific month, replacing the default for that month. Setting the override for a month that already has one replaces it.
// @Tags			Budget
// @Accept			json
// @Produce		json
// @Success		200		{object}	BudgetResponse
// @Failure		400		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			month	path		string			true	"The month in YYYY-MM format"
// @Param			budget	body		BudgetEditable	true	"Budget for the month"
// @Router			/v1/budget/{month} [put]
func (co *Controller) SetBudgetOverride(c *gin.Context) {
	var uri URIMonth
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	var editable BudgetEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	override := models.BudgetOverride{
		Month:  uri.Month,
		Amount: editable.Amount,
	}

	// At most one override per month: replace on conflict
	err = models.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "month"}},
		UpdateAll: true,
	}).Create(&override).Error
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	co.GetBudget(c)
}

// @Summary		Delete budget override
// @Description	Removes the override for one month, the default applies again
// @Tags			Budget
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Param			month	path	string	true	"The month in YYYY-MM format"
// @Router			/v1/budget/{month} [delete]
func (co *Controller) DeleteBudgetOverride(c *gin.Context) {
	var uri URIMonth
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	var override models.BudgetOverride
	err = models.DB.First(&override, "month = ?", uri.Month).Error
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	err = models.DB.Unscoped().Delete(&override).Error
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// loadConfig assembles the aggregation input from the persisted budget
// configuration.
func loadConfig() (budget.Config, error) {
	settings, err := models.Settings(models.DB)
	if err != nil {
		return budget.Config{}, err
	}

	overrides, err := models.Overrides(models.DB)
	if err != nil {
		return budget.Config{}, err
	}

	cfg := budget.Config{
		Default:   settings.Amount,
		Overrides: make(map[types.Month]decimal.Decimal, len(overrides)),
	}
	for _, override := range overrides {
		cfg.Overrides[override.Month] = override.Amount
	}

	return cfg, nil
}
