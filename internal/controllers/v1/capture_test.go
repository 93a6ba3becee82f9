package v1_test

import (
	"net/http"

	"github.com/snapspend/backend/internal/capture"
	v1 "github.com/snapspend/backend/internal/controllers/v1"
	"github.com/snapspend/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestGetCapture() {
	recorder := suite.request(http.MethodGet, "http://example.com/v1/capture", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CaptureResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Equal(suite.T(), capture.StateIdle, response.Data.State)
	assert.False(suite.T(), response.Data.HasCapture)
}

func (suite *TestSuiteStandard) TestStartCapture() {
	recorder := suite.request(http.MethodPost, "http://example.com/v1/capture/start", v1.CaptureStartEditable{Facing: capture.FacingEnvironment})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CaptureResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), capture.StateStreaming, response.Data.State)
}

func (suite *TestSuiteStandard) TestStartCaptureNoBody() {
	// The camera selection is optional
	recorder := suite.request(http.MethodPost, "http://example.com/v1/capture/start", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
}

func (suite *TestSuiteStandard) TestStartCaptureDenied() {
	suite.device.err = capture.ErrPermissionDenied

	recorder := suite.request(http.MethodPost, "http://example.com/v1/capture/start", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.CaptureResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Equal(suite.T(), capture.StateError, response.Data.State)
	assert.Equal(suite.T(), capture.FailurePermission, response.Data.Failure)
	assert.NotNil(suite.T(), response.Error)

	// Starting again after fixing the device recovers the session
	suite.device.err = nil
	recorder = suite.request(http.MethodPost, "http://example.com/v1/capture/start", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
}

func (suite *TestSuiteStandard) TestStopCapture() {
	recorder := suite.request(http.MethodPost, "http://example.com/v1/capture/start", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	recorder = suite.request(http.MethodPost, "http://example.com/v1/capture/stop", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CaptureResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), capture.StateIdle, response.Data.State)

	// Stop is idempotent
	recorder = suite.request(http.MethodPost, "http://example.com/v1/capture/stop", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
}

func (suite *TestSuiteStandard) TestCapturePhoto() {
	recorder := suite.request(http.MethodPost, "http://example.com/v1/capture/start", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	recorder = suite.request(http.MethodPost, "http://example.com/v1/capture/photo", v1.CapturePhotoEditable{
		Amount: "14.20",
		Label:  "coffee",
		Date:   "2024-06-03",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), "coffee", response.Data.Label)

	// The photo is served like any uploaded image
	image := suite.request(http.MethodGet, response.Data.Links.Image, nil)
	test.AssertHTTPStatus(suite.T(), &image, http.StatusOK)
}

func (suite *TestSuiteStandard) TestCapturePhotoNotStreaming() {
	recorder := suite.request(http.MethodPost, "http://example.com/v1/capture/photo", v1.CapturePhotoEditable{Amount: "5"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCapturePhotoInvalidAmount() {
	recorder := suite.request(http.MethodPost, "http://example.com/v1/capture/start", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	recorder = suite.request(http.MethodPost, "http://example.com/v1/capture/photo", v1.CapturePhotoEditable{Amount: "-5"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestResetCapture() {
	recorder := suite.request(http.MethodPost, "http://example.com/v1/capture/start", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	recorder = suite.request(http.MethodPost, "http://example.com/v1/capture/reset", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CaptureResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), capture.StateStreaming, response.Data.State)
	assert.False(suite.T(), response.Data.HasCapture)
}

func (suite *TestSuiteStandard) TestResetCaptureIdle() {
	recorder := suite.request(http.MethodPost, "http://example.com/v1/capture/reset", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}
