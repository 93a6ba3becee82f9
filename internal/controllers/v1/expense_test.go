package v1_test

import (
	"fmt"
	"image/jpeg"
	"net/http"
	"testing"
	"time"

	v1 "github.com/snapspend/backend/internal/controllers/v1"
	"github.com/snapspend/backend/internal/types"
	"github.com/snapspend/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestOptionsExpenses() {
	recorder := suite.request(http.MethodOptions, "http://example.com/v1/expenses", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET, POST", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestOptionsExpense() {
	expense := suite.createTestExpense(map[string]string{"amount": "12.34"})

	recorder := suite.request(http.MethodOptions, expense.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET, DELETE", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestCreateExpense() {
	expense := suite.createTestExpense(map[string]string{
		"amount": "14.20",
		"label":  "coffee",
		"date":   "2024-06-03",
	})

	assert.Equal(suite.T(), "coffee", expense.Label)
	assert.Equal(suite.T(), "14.2", expense.Amount.String())
	assert.Equal(suite.T(), types.NewDate(2024, 6, 3), expense.Date)
	assert.NotEmpty(suite.T(), expense.Links.Image)
	assert.NotEmpty(suite.T(), expense.Links.Thumbnail)
}

func (suite *TestSuiteStandard) TestCreateExpenseDefaults() {
	expense := suite.createTestExpense(map[string]string{"amount": "5"})

	assert.Equal(suite.T(), "groceries", expense.Label)
	assert.Equal(suite.T(), types.DateOf(time.Now()), expense.Date)
}

func (suite *TestSuiteStandard) TestCreateExpenseInvalid() {
	tests := []struct {
		name   string
		image  []byte
		fields map[string]string
	}{
		{"missing amount", testJPEG(suite.T(), 10, 10), map[string]string{}},
		{"amount not a number", testJPEG(suite.T(), 10, 10), map[string]string{"amount": "one hundred"}},
		{"amount zero", testJPEG(suite.T(), 10, 10), map[string]string{"amount": "0"}},
		{"amount negative", testJPEG(suite.T(), 10, 10), map[string]string{"amount": "-3.50"}},
		{"invalid date", testJPEG(suite.T(), 10, 10), map[string]string{"amount": "5", "date": "03.06.2024"}},
		{"missing image", nil, map[string]string{"amount": "5"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			body, headers := expenseForm(t, tt.image, tt.fields)
			recorder := test.Request(suite.controller, t, http.MethodPost, "http://example.com/v1/expenses", body, headers)
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestCreateExpenseUndecodableImage() {
	// The image is stored as sent, only the thumbnail needs to decode it.
	// An undecodable image must therefore still create the expense.
	body, headers := expenseForm(suite.T(), []byte("not a JPEG"), map[string]string{"amount": "5"})
	recorder := suite.request(http.MethodPost, "http://example.com/v1/expenses", body, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	// With no thumbnail, its link serves the full image
	thumb := suite.request(http.MethodGet, response.Data.Links.Thumbnail, nil)
	test.AssertHTTPStatus(suite.T(), &thumb, http.StatusOK)
}

func (suite *TestSuiteStandard) TestGetExpenses() {
	suite.createTestExpense(map[string]string{"amount": "1", "label": "bakery", "date": "2024-06-01"})
	suite.createTestExpense(map[string]string{"amount": "2", "label": "butcher", "date": "2024-06-02"})
	suite.createTestExpense(map[string]string{"amount": "3", "label": "bakery", "date": "2024-07-01"})

	recorder := suite.request(http.MethodGet, "http://example.com/v1/expenses", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ExpenseListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	if assert.Len(suite.T(), response.Data, 3) {
		// Most recent date first
		assert.Equal(suite.T(), types.NewDate(2024, 7, 1), response.Data[0].Date)
	}
	assert.Equal(suite.T(), int64(3), response.Pagination.Total)
}

func (suite *TestSuiteStandard) TestGetExpensesFilters() {
	suite.createTestExpense(map[string]string{"amount": "1", "label": "bakery", "date": "2024-06-01"})
	suite.createTestExpense(map[string]string{"amount": "2", "label": "butcher", "date": "2024-06-02"})
	suite.createTestExpense(map[string]string{"amount": "3", "label": "bakery", "date": "2024-07-01"})

	tests := []struct {
		query string
		count int
	}{
		{"label=bakery", 2},
		{"label=b*", 3},
		{"label=ba*", 2},
		{"label=pharmacy", 0},
		{"from=2024-06-02", 2},
		{"to=2024-06-02", 2},
		{"from=2024-06-02&to=2024-06-30", 1},
		{"limit=2", 2},
		{"offset=2", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.query, func(t *testing.T) {
			recorder := test.Request(suite.controller, t, http.MethodGet, fmt.Sprintf("http://example.com/v1/expenses?%s", tt.query), nil)
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response v1.ExpenseListResponse
			test.DecodeResponse(t, &recorder, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestGetExpense() {
	expense := suite.createTestExpense(map[string]string{"amount": "12.34"})

	recorder := suite.request(http.MethodGet, expense.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), expense.ID, response.Data.ID)
}

func (suite *TestSuiteStandard) TestGetExpenseInvalidID() {
	recorder := suite.request(http.MethodGet, "http://example.com/v1/expenses/definitely-not-a-uuid", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetExpenseNonexistent() {
	recorder := suite.request(http.MethodGet, "http://example.com/v1/expenses/cb3054f1-91da-4a28-be08-e6a8b3f17ebd", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestDeleteExpense() {
	expense := suite.createTestExpense(map[string]string{"amount": "12.34"})

	recorder := suite.request(http.MethodDelete, expense.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = suite.request(http.MethodGet, expense.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)

	// The image artifacts are gone with the record
	recorder = suite.request(http.MethodGet, expense.Links.Image, nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestGetExpenseImage() {
	expense := suite.createTestExpense(map[string]string{"amount": "12.34"})

	recorder := suite.request(http.MethodGet, expense.Links.Image, nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	img, err := jpeg.Decode(recorder.Body)
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), 200, img.Bounds().Dx())
}

func (suite *TestSuiteStandard) TestGetExpenseThumbnail() {
	expense := suite.createTestExpense(map[string]string{"amount": "12.34"})

	recorder := suite.request(http.MethodGet, expense.Links.Thumbnail, nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	_, err := jpeg.Decode(recorder.Body)
	assert.Nil(suite.T(), err)
}
