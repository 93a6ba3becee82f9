package v1

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
	"github.com/snapspend/backend/internal/httperror"
	"github.com/snapspend/backend/internal/httputil"
	"github.com/snapspend/backend/internal/models"
	"github.com/snapspend/backend/internal/types"
)

var (
	errNoImagePost      = errors.New("you must send an image file in the \"image\" form field")
	errAmountNotSet     = errors.New("the \"amount\" form field must be set to a positive decimal number")
	errAmountNotDecimal = errors.New("the \"amount\" form field is not a valid decimal number")
	errDateInvalid      = errors.New("the \"date\" form field must be a date in YYYY-MM-DD format")
	errNoImageStored    = errors.New("there is no stored image for this expense")
)

func (co *Controller) registerExpenseRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsExpenseList)
		r.GET("", co.GetExpenses)
		r.POST("", co.CreateExpense)
	}

	// Expense with ID
	{
		r.OPTIONS("/:id", co.OptionsExpenseDetail)
		r.GET("/:id", co.GetExpense)
		r.DELETE("/:id", co.DeleteExpense)
		r.GET("/:id/image", co.GetExpenseImage)
		r.GET("/:id/thumbnail", co.GetExpenseThumbnail)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Router			/v1/expenses [options]
func (co *Controller) OptionsExpenseList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/expenses/{id} [options]
func (co *Controller) OptionsExpenseDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	err = models.DB.First(&models.Expense{}, uri.ID.UUID).Error
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	httputil.OptionsGetDelete(c)
}

// @Summary		Create expense
// @Description	Creates a new expense from a photo, an amount and an optional label and date. The request must be multipart/form-data with the photo in the "image" field.
// @Tags			Expenses
// @Accept			multipart/form-data
// @Produce		json
// @Success		201		{object}	ExpenseResponse
// @Failure		400		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			image	formData	file	true	"The photo of the purchase"
// @Param			amount	formData	number	true	"The amount"
// @Param			label	formData	string	false	"Short description"
// @Param			date	formData	string	false	"Date in YYYY-MM-DD format, defaults to today"
// @Router			/v1/expenses [post]
func (co *Controller) CreateExpense(c *gin.Context) {
	expense, status, err := co.parseExpenseForm(c)
	if err != nil {
		c.JSON(status, httperror.New(err))
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(errNoImagePost))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(errNoImagePost))
		return
	}
	defer file.Close()

	imageData, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, httperror.New(models.ErrGeneral))
		return
	}

	created, err := co.createWithImage(expense, imageData)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	data := newExpense(c, created)
	c.JSON(http.StatusCreated, ExpenseResponse{Data: &data})
}

// parseExpenseForm reads amount, label and date from the multipart form.
func (co *Controller) parseExpenseForm(c *gin.Context) (models.Expense, int, error) {
	amountField := c.PostForm("amount")
	if amountField == "" {
		return models.Expense{}, http.StatusBadRequest, errAmountNotSet
	}

	amount, err := decimal.NewFromString(amountField)
	if err != nil {
		return models.Expense{}, http.StatusBadRequest, errAmountNotDecimal
	}

	if !amount.IsPositive() {
		return models.Expense{}, http.StatusBadRequest, models.ErrExpenseAmountNotPositive
	}

	expense := models.Expense{
		Amount: amount,
		Label:  c.PostForm("label"),
	}

	if dateField := c.PostForm("date"); dateField != "" {
		date, err := types.ParseDate(dateField)
		if err != nil {
			return models.Expense{}, http.StatusBadRequest, errDateInvalid
		}
		expense.Date = date
	}

	return expense, http.StatusOK, nil
}

// createWithImage stores the image artifacts and creates the expense
// record. An expense never exists without its image: when the record
// can not be created, the just-written artifacts are removed again.
func (co *Controller) createWithImage(expense models.Expense, image []byte) (models.Expense, error) {
	ref, thumbRef, err := co.store.Save(image)
	if err != nil {
		return models.Expense{}, models.ErrGeneral
	}

	expense.ImageRef = ref
	expense.ThumbnailRef = thumbRef

	err = models.DB.Create(&expense).Error
	if err != nil {
		co.store.Delete(ref, thumbRef)
		return models.Expense{}, err
	}

	return expense, nil
}

// @Summary		List expenses
// @Description	Returns a list of expenses
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseListResponse
// @Failure		400	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			from	query	string	false	"Only expenses on or after this date (YYYY-MM-DD)"
// @Param			to		query	string	false	"Only expenses on or before this date (YYYY-MM-DD)"
// @Param			label	query	string	false	"Filter by label. Glob patterns are supported, e.g. grocer*"
// @Param			offset	query	uint	false	"The offset of the first Expense returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of Expenses to return. Defaults to 50."
// @Router			/v1/expenses [get]
func (co *Controller) GetExpenses(c *gin.Context) {
	var filter ExpenseQueryFilter
	if err := c.Bind(&filter); err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(err))
		return
	}

	q := models.DB.Order("date DESC, created_at DESC")

	if !filter.From.IsZero() {
		q = q.Where("date >= ?", filter.From)
	}

	if !filter.To.IsZero() {
		q = q.Where("date <= ?", filter.To)
	}

	var expenses []models.Expense
	err := q.Find(&expenses).Error
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	// Glob matching is done here, not in SQL
	if filter.Label != "" {
		matched := make([]models.Expense, 0, len(expenses))
		for _, expense := range expenses {
			if glob.Glob(filter.Label, expense.Label) {
				matched = append(matched, expense)
			}
		}
		expenses = matched
	}

	total := int64(len(expenses))

	// Pagination over the filtered set
	offset := int(filter.Offset)
	if offset > len(expenses) {
		offset = len(expenses)
	}
	expenses = expenses[offset:]

	limit := 50
	if filter.Limit != 0 {
		limit = filter.Limit
	}
	if limit >= 0 && limit < len(expenses) {
		expenses = expenses[:limit]
	}

	data := make([]Expense, 0, len(expenses))
	for _, expense := range expenses {
		data = append(data, newExpense(c, expense))
	}

	c.JSON(http.StatusOK, ExpenseListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Offset: filter.Offset,
			Limit:  limit,
			Total:  total,
		},
	})
}

// @Summary		Get expense
// @Description	Returns a specific expense
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseResponse
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/expenses/{id} [get]
func (co *Controller) GetExpense(c *gin.Context) {
	expense, err := getExpenseResource(c)
	if err != nil {
		return
	}

	data := newExpense(c, expense)
	c.JSON(http.StatusOK, ExpenseResponse{Data: &data})
}

// @Summary		Delete expense
// @Description	Deletes an expense and its image artifacts. Artifact removal is best-effort and does not block the deletion of the record.
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/expenses/{id} [delete]
func (co *Controller) DeleteExpense(c *gin.Context) {
	expense, err := getExpenseResource(c)
	if err != nil {
		return
	}

	// The record goes first. Artifacts are removed best-effort
	// afterwards: an orphaned file is acceptable, a record pointing to
	// a removed file is not.
	err = models.DB.Unscoped().Delete(&expense).Error
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	co.store.Delete(expense.ImageRef, expense.ThumbnailRef)

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Get expense photo
// @Description	Returns the full-resolution photo of an expense
// @Tags			Expenses
// @Produce		image/jpeg
// @Success		200
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/expenses/{id}/image [get]
func (co *Controller) GetExpenseImage(c *gin.Context) {
	expense, err := getExpenseResource(c)
	if err != nil {
		return
	}

	co.serveImage(c, expense.ImageRef)
}

// @Summary		Get expense thumbnail
// @Description	Returns the reduced-size photo of an expense, falling back to the full-resolution photo when there is none
// @Tags			Expenses
// @Produce		image/jpeg
// @Success		200
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/expenses/{id}/thumbnail [get]
func (co *Controller) GetExpenseThumbnail(c *gin.Context) {
	expense, err := getExpenseResource(c)
	if err != nil {
		return
	}

	co.serveImage(c, expense.Thumbnail())
}

func (co *Controller) serveImage(c *gin.Context, ref string) {
	if !co.store.Exists(ref) {
		c.JSON(http.StatusNotFound, httperror.New(errNoImageStored))
		return
	}

	c.File(co.store.Path(ref))
}

// getExpenseResource binds the ID from the URI and loads the expense.
// On failure, the error response has already been written.
func getExpenseResource(c *gin.Context) (models.Expense, error) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return models.Expense{}, err
	}

	var expense models.Expense
	err = models.DB.First(&expense, "id = ?", uri.ID.UUID).Error
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return models.Expense{}, err
	}

	return expense, nil
}
