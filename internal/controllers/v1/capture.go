package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/snapspend/backend/internal/capture"
	"github.com/snapspend/backend/internal/httperror"
	"github.com/snapspend/backend/internal/httputil"
	"github.com/snapspend/backend/internal/models"
	"github.com/snapspend/backend/internal/types"
)

// CaptureStatus is the observable state of the capture session.
type CaptureStatus struct {
	State      capture.State   `json:"state" example:"streaming"`           // The session state
	Failure    capture.Failure `json:"failure" example:"permission-denied"` // Why the session is in the error state, empty otherwise
	HasCapture bool            `json:"hasCapture" example:"true"`           // Whether a captured photo is held
}

type CaptureResponse struct {
	Data  *CaptureStatus `json:"data"`                                         // The session status
	Error *string        `json:"error" example:"camera permission denied"` // The error, if any occurred
}

// CaptureStartEditable selects the camera to acquire.
type CaptureStartEditable struct {
	Facing capture.FacingMode `json:"facing" example:"environment"` // Which camera to prefer. One of "user", "environment" or empty for any.
}

// CapturePhotoEditable carries the expense data attached to the captured
// photo.
type CapturePhotoEditable struct {
	Amount string `json:"amount" example:"14.20"`     // The amount as a decimal string
	Label  string `json:"label" example:"groceries"`  // Short description, defaults to "groceries"
	Date   string `json:"date" example:"2024-09-14"`  // Date in YYYY-MM-DD format, defaults to today
}

func (co *Controller) registerCaptureRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGet)
	r.GET("", co.GetCapture)

	r.OPTIONS("/start", httputil.OptionsPost)
	r.POST("/start", co.StartCapture)

	r.OPTIONS("/stop", httputil.OptionsPost)
	r.POST("/stop", co.StopCapture)

	r.OPTIONS("/photo", httputil.OptionsPost)
	r.POST("/photo", co.CapturePhoto)

	r.OPTIONS("/reset", httputil.OptionsPost)
	r.POST("/reset", co.ResetCapture)
}

func (co *Controller) captureStatus() *CaptureStatus {
	return &CaptureStatus{
		State:      co.session.State(),
		Failure:    co.session.Failure(),
		HasCapture: len(co.session.LastCapture()) != 0,
	}
}

// @Summary		Get capture state
// @Description	Returns the current state of the capture session
// @Tags			Capture
// @Produce		json
// @Success		200	{object}	CaptureResponse
// @Router			/v1/capture [get]
func (co *Controller) GetCapture(c *gin.Context) {
	c.JSON(http.StatusOK, CaptureResponse{Data: co.captureStatus()})
}

// @Summary		Start capture
// @Description	Acquires a camera stream and waits until playback is confirmed. A session that is already streaming is restarted with the requested camera.
// @Tags			Capture
// @Accept			json
// @Produce		json
// @Success		200		{object}	CaptureResponse
// @Failure		400		{object}	CaptureResponse
// @Failure		409		{object}	CaptureResponse
// @Param			start	body		CaptureStartEditable	false	"Camera selection"
// @Router			/v1/capture/start [post]
func (co *Controller) StartCapture(c *gin.Context) {
	var editable CaptureStartEditable
	if c.Request.ContentLength > 0 {
		if err := httputil.BindData(c, &editable); err != nil {
			c.JSON(httperror.Status(err), httperror.New(err))
			return
		}
	}

	err := co.session.Start(c.Request.Context(), editable.Facing)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, capture.ErrAcquisitionInFlight) {
			status = http.StatusConflict
		}

		message := err.Error()
		c.JSON(status, CaptureResponse{Data: co.captureStatus(), Error: &message})
		return
	}

	c.JSON(http.StatusOK, CaptureResponse{Data: co.captureStatus()})
}

// @Summary		Stop capture
// @Description	Releases the camera stream and clears any captured photo and error
// @Tags			Capture
// @Produce		json
// @Success		200	{object}	CaptureResponse
// @Router			/v1/capture/stop [post]
func (co *Controller) StopCapture(c *gin.Context) {
	co.session.Stop()
	c.JSON(http.StatusOK, CaptureResponse{Data: co.captureStatus()})
}

// @Summary		Capture photo and create expense
// @Description	Takes a photo from the running stream and creates an expense with it
// @Tags			Capture
// @Accept			json
// @Produce		json
// @Success		201		{object}	ExpenseResponse
// @Failure		400		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			photo	body		CapturePhotoEditable	true	"Expense data"
// @Router			/v1/capture/photo [post]
func (co *Controller) CapturePhoto(c *gin.Context) {
	var editable CapturePhotoEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	expense, status, err := expenseFromPhotoData(editable)
	if err != nil {
		c.JSON(status, httperror.New(err))
		return
	}

	photo, err := co.session.Capture()
	if err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(err))
		return
	}

	created, err := co.createWithImage(expense, photo)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	data := newExpense(c, created)
	c.JSON(http.StatusCreated, ExpenseResponse{Data: &data})
}

// @Summary		Reset capture
// @Description	Discards the captured photo while keeping the stream running, so another photo can be taken
// @Tags			Capture
// @Produce		json
// @Success		200	{object}	CaptureResponse
// @Failure		400	{object}	CaptureResponse
// @Router			/v1/capture/reset [post]
func (co *Controller) ResetCapture(c *gin.Context) {
	err := co.session.Reset()
	if err != nil {
		message := err.Error()
		c.JSON(http.StatusBadRequest, CaptureResponse{Data: co.captureStatus(), Error: &message})
		return
	}

	c.JSON(http.StatusOK, CaptureResponse{Data: co.captureStatus()})
}

// expenseFromPhotoData validates the JSON expense data of a photo
// capture the same way the multipart form fields are validated.
func expenseFromPhotoData(editable CapturePhotoEditable) (models.Expense, int, error) {
	if editable.Amount == "" {
		return models.Expense{}, http.StatusBadRequest, errAmountNotSet
	}

	amount, err := decimal.NewFromString(editable.Amount)
	if err != nil {
		return models.Expense{}, http.StatusBadRequest, errAmountNotDecimal
	}

	if !amount.IsPositive() {
		return models.Expense{}, http.StatusBadRequest, models.ErrExpenseAmountNotPositive
	}

	expense := models.Expense{
		Amount: amount,
		Label:  editable.Label,
	}

	if editable.Date != "" {
		date, err := types.ParseDate(editable.Date)
		if err != nil {
			return models.Expense{}, http.StatusBadRequest, errDateInvalid
		}
		expense.Date = date
	}

	return expense, http.StatusOK, nil
}
