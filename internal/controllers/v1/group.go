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

type DayGroupResponse struct {
	Data  []budget.DayGroup `json:"data"`  // Expenses grouped by day, most recent day first
	Error *string           `json:"error"` // The error, if any occurred
}

type MonthGroupResponse struct {
	Data  []budget.MonthGroup `json:"data"`  // Expenses grouped by month, then by day
	Error *string             `json:"error"` // The error, if any occurred
}

// GroupQuery allows pinning the reference date for the "today" flag,
// mainly for clients that cache responses across midnight.
type GroupQuery struct {
	Today types.Date `form:"today"` // Reference date, defaults to the current date
}

func (co *Controller) registerGroupRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/days", httputil.OptionsGet)
	r.GET("/days", co.GetDayGroups)

	r.OPTIONS("/months", httputil.OptionsGet)
	r.GET("/months", co.GetMonthGroups)
}

// @Summary		Expenses by day
// @Description	Returns all expenses grouped by calendar day, most recent day first
// @Tags			Groups
// @Produce		json
// @Success		200	{object}	DayGroupResponse
// @Failure		400	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			today	query	string	false	"Reference date for the IsToday flag in YYYY-MM-DD format"
// @Router			/v1/groups/days [get]
func (co *Controller) GetDayGroups(c *gin.Context) {
	var query GroupQuery
	if err := c.Bind(&query); err != nil {
		return
	}

	today := query.Today
	if today.IsZero() {
		today = types.DateOf(time.Now())
	}

	expenses, err := models.Expenses(models.DB)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusOK, DayGroupResponse{Data: budget.GroupByDay(expenses, today)})
}

// @Summary		Expenses by month
// @Description	Returns all expenses grouped by month with a per-month total, days nested inside each month
// @Tags			Groups
// @Produce		json
// @Success		200	{object}	MonthGroupResponse
// @Failure		500	{object}	httperror.Error
// @Router			/v1/groups/months [get]
func (co *Controller) GetMonthGroups(c *gin.Context) {
	expenses, err := models.Expenses(models.DB)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusOK, MonthGroupResponse{Data: budget.GroupByMonth(expenses)})
}
