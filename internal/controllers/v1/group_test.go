package v1_test

import (
	"net/http"

	v1 "github.com/snapspend/backend/internal/controllers/v1"
	"github.com/snapspend/backend/internal/types"
	"github.com/snapspend/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestOptionsGroups() {
	for _, path := range []string{"days", "months"} {
		recorder := suite.request(http.MethodOptions, "http://example.com/v1/groups/"+path, nil)
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
		assert.Equal(suite.T(), "OPTIONS, GET", recorder.Header().Get("allow"))
	}
}

func (suite *TestSuiteStandard) TestGetDayGroups() {
	suite.createTestExpense(map[string]string{"amount": "20", "date": "2024-06-03"})
	suite.createTestExpense(map[string]string{"amount": "30", "date": "2024-06-03"})
	suite.createTestExpense(map[string]string{"amount": "5", "date": "2024-06-01"})

	recorder := suite.request(http.MethodGet, "http://example.com/v1/groups/days?today=2024-06-03", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.DayGroupResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	if assert.Len(suite.T(), response.Data, 2) {
		// Most recent day first
		assert.Equal(suite.T(), types.NewDate(2024, 6, 3), response.Data[0].Date)
		assert.True(suite.T(), response.Data[0].IsToday)
		assert.Len(suite.T(), response.Data[0].Records, 2)

		assert.False(suite.T(), response.Data[1].IsToday)
		assert.Len(suite.T(), response.Data[1].Records, 1)
	}
}

func (suite *TestSuiteStandard) TestGetDayGroupsEmpty() {
	recorder := suite.request(http.MethodGet, "http://example.com/v1/groups/days", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.DayGroupResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Empty(suite.T(), response.Data)
}

func (suite *TestSuiteStandard) TestGetMonthGroups() {
	suite.createTestExpense(map[string]string{"amount": "20", "date": "2024-06-03"})
	suite.createTestExpense(map[string]string{"amount": "30", "date": "2024-06-03"})
	suite.createTestExpense(map[string]string{"amount": "5", "date": "2024-05-20"})

	recorder := suite.request(http.MethodGet, "http://example.com/v1/groups/months", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.MonthGroupResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	if assert.Len(suite.T(), response.Data, 2) {
		assert.Equal(suite.T(), "2024-06", response.Data[0].Month.String())

		if assert.Len(suite.T(), response.Data[0].Days, 1) {
			assert.Equal(suite.T(), 3, response.Data[0].Days[0].Day)
			assert.Equal(suite.T(), "50", response.Data[0].Days[0].Total.String())
		}

		assert.Equal(suite.T(), "2024-05", response.Data[1].Month.String())
	}
}
