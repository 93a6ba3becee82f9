package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/snapspend/backend/internal/budget"
	"github.com/snapspend/backend/internal/httperror"
	"github.com/snapspend/backend/internal/httputil"
	"github.com/snapspend/backend/internal/models"
	"github.com/snapspend/backend/internal/types"
)

type MonthResponse struct {
	Data  *budget.Snapshot `json:"data"`                                                 // The snapshot for the requested month
	Error *string          `json:"error" example:"parsing time \"09-2024\" as \"2006-01\""` // The error, if any occurred
}

type MonthListResponse struct {
	Data  []budget.MonthSpend `json:"data"`  // One entry per month, most recent first
	Error *string             `json:"error"` // The error, if any occurred
}

// MonthHistoryQuery is the query string for the month history endpoint.
type MonthHistoryQuery struct {
	Count int `form:"count"` // Number of months to return, counted backwards from the current one. Defaults to 12.
}

func (co *Controller) registerMonthRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", co.OptionsMonthList)
		r.GET("", co.GetMonthHistory)
	}

	{
		r.OPTIONS("/:month", co.OptionsMonthDetail)
		r.GET("/:month", co.GetMonth)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Months
// @Success		204
// @Router			/v1/months [options]
func (co *Controller) OptionsMonthList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Months
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Param			month	path	string	true	"The month in YYYY-MM format"
// @Router			/v1/months/{month} [options]
func (co *Controller) OptionsMonthDetail(c *gin.Context) {
	var uri URIMonth
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Get month
// @Description	Returns budget, spend, remaining amount and percentage for one month
// @Tags			Months
// @Produce		json
// @Success		200	{object}	MonthResponse
// @Failure		400	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			month	path	string	true	"The month in YYYY-MM format"
// @Router			/v1/months/{month} [get]
func (co *Controller) GetMonth(c *gin.Context) {
	var uri URIMonth
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	cfg, err := loadConfig()
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	expenses, err := models.Expenses(models.DB)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	snapshot := budget.MonthSnapshot(expenses, cfg, uri.Month)
	c.JSON(http.StatusOK, MonthResponse{Data: &snapshot})
}

// @Summary		Get month history
// @Description	Returns the spend for the last months, most recent first. Months without expenses are included with a spend of 0.
// @Tags			Months
// @Produce		json
// @Success		200	{object}	MonthListResponse
// @Failure		400	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			count	query	int	false	"Number of months, defaults to 12"
// @Router			/v1/months [get]
func (co *Controller) GetMonthHistory(c *gin.Context) {
	var query MonthHistoryQuery
	if err := c.Bind(&query); err != nil {
		return
	}

	if query.Count == 0 {
		query.Count = 12
	}

	cfg, err := loadConfig()
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	expenses, err := models.Expenses(models.DB)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	history := budget.History(expenses, cfg, types.DateOf(time.Now()), query.Count)
	c.JSON(http.StatusOK, MonthListResponse{Data: history})
}
