package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/snapspend/backend/internal/httputil"
	"github.com/snapspend/backend/internal/models"
)

type Response struct {
	Links Links `json:"links"`
}

type Links struct {
	Expenses string `json:"expenses" example:"https://example.com/api/v1/expenses"` // URL of expense endpoints
	Budget   string `json:"budget" example:"https://example.com/api/v1/budget"`     // URL of budget configuration endpoints
	Months   string `json:"months" example:"https://example.com/api/v1/months"`     // URL of month snapshot endpoints
	Groups   string `json:"groups" example:"https://example.com/api/v1/groups"`     // URL of grouping endpoints
	Capture  string `json:"capture" example:"https://example.com/api/v1/capture"`   // URL of capture session endpoints
}

// @Summary		v1 API
// @Description	Entrypoint for the v1 API, listing all endpoints
// @Tags			v1
// @Success		200	{object}	Response
// @Router			/v1 [get]
func (co *Controller) Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Expenses: url + "/v1/expenses",
			Budget:   url + "/v1/budget",
			Months:   url + "/v1/months",
			Groups:   url + "/v1/groups",
			Capture:  url + "/v1/capture",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			v1
// @Success		204
// @Router			/v1 [options]
func (co *Controller) Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
