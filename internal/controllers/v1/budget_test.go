package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/snapspend/backend/internal/controllers/v1"
	"github.com/snapspend/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestOptionsBudget() {
	recorder := suite.request(http.MethodOptions, "http://example.com/v1/budget", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET, PATCH", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestOptionsBudgetMonth() {
	recorder := suite.request(http.MethodOptions, "http://example.com/v1/budget/2024-06", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, PUT, DELETE", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestGetBudgetInitial() {
	// The configuration exists from the first request on
	recorder := suite.request(http.MethodGet, "http://example.com/v1/budget", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.True(suite.T(), response.Data.Amount.IsZero())
	assert.Empty(suite.T(), response.Data.Overrides)
}

func (suite *TestSuiteStandard) TestUpdateBudget() {
	recorder := suite.request(http.MethodPatch, "http://example.com/v1/budget", v1.BudgetEditable{Amount: decimalFrom("2500")})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), "2500", response.Data.Amount.String())

	// The new default persists
	recorder = suite.request(http.MethodGet, "http://example.com/v1/budget", nil)
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), "2500", response.Data.Amount.String())
}

func (suite *TestSuiteStandard) TestUpdateBudgetInvalid() {
	tests := []struct {
		name string
		body any
	}{
		{"negative amount", v1.BudgetEditable{Amount: decimalFrom("-100")}},
		{"broken json", `{ broken }`},
		{"wrong type", `{"amount": "a lot"}`},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(suite.controller, t, http.MethodPatch, "http://example.com/v1/budget", tt.body)
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestSetBudgetOverride() {
	recorder := suite.request(http.MethodPut, "http://example.com/v1/budget/2024-06", v1.BudgetEditable{Amount: decimalFrom("1000")})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	if assert.Len(suite.T(), response.Data.Overrides, 1) {
		assert.Equal(suite.T(), "1000", response.Data.Overrides[0].Amount.String())
		assert.Equal(suite.T(), "2024-06", response.Data.Overrides[0].Month.String())
	}
}

func (suite *TestSuiteStandard) TestSetBudgetOverrideReplaces() {
	recorder := suite.request(http.MethodPut, "http://example.com/v1/budget/2024-06", v1.BudgetEditable{Amount: decimalFrom("1000")})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	// Setting the override again replaces it, there is at most one per month
	recorder = suite.request(http.MethodPut, "http://example.com/v1/budget/2024-06", v1.BudgetEditable{Amount: decimalFrom("1250")})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	if assert.Len(suite.T(), response.Data.Overrides, 1) {
		assert.Equal(suite.T(), "1250", response.Data.Overrides[0].Amount.String())
	}
}

func (suite *TestSuiteStandard) TestSetBudgetOverrideInvalidMonth() {
	recorder := suite.request(http.MethodPut, "http://example.com/v1/budget/June", v1.BudgetEditable{Amount: decimalFrom("1000")})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestDeleteBudgetOverride() {
	recorder := suite.request(http.MethodPut, "http://example.com/v1/budget/2024-06", v1.BudgetEditable{Amount: decimalFrom("1000")})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	recorder = suite.request(http.MethodDelete, "http://example.com/v1/budget/2024-06", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	var response v1.BudgetResponse
	recorder = suite.request(http.MethodGet, "http://example.com/v1/budget", nil)
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Empty(suite.T(), response.Data.Overrides)
}

func (suite *TestSuiteStandard) TestDeleteBudgetOverrideNonexistent() {
	recorder := suite.request(http.MethodDelete, "http://example.com/v1/budget/2031-01", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
