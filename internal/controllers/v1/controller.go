// Package v1 implements the v1 API of the SnapSpend backend.
package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/snapspend/backend/internal/capture"
	"github.com/snapspend/backend/internal/images"
)

// Controller holds the collaborators of the v1 API that are not reachable
// through package globals: the image store and the capture session.
type Controller struct {
	store   *images.Store
	session *capture.Session
}

// NewController returns a Controller using the given collaborators.
func NewController(store *images.Store, session *capture.Session) *Controller {
	return &Controller{
		store:   store,
		session: session,
	}
}

// RegisterRoutes registers all v1 routes with the RouterGroup that is
// passed.
func (co *Controller) RegisterRoutes(group *gin.RouterGroup) {
	group.GET("", co.Get)
	group.OPTIONS("", co.Options)

	co.registerExpenseRoutes(group.Group("/expenses"))
	co.registerBudgetRoutes(group.Group("/budget"))
	co.registerMonthRoutes(group.Group("/months"))
	co.registerGroupRoutes(group.Group("/groups"))
	co.registerCaptureRoutes(group.Group("/capture"))
}
