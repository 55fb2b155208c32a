package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

// ResponseTestSuite defines the test suite for error responses
type ResponseTestSuite struct {
	suite.Suite
	traceID string
}

func (s *ResponseTestSuite) SetupTest() {
	s.traceID = "550e8400-e29b-41d4-a716-446655440000"
}

func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

func (s *ResponseTestSuite) TestNewErrorResponse_BasicUsage() {
	response := NewErrorResponse(ClientNotFound, s.traceID)

	s.Equal("CLIENT_001", response.Error.Code)
	s.Equal("Client not found. Check the client ID", response.Error.Message)
	s.Equal(s.traceID, response.Error.TraceID)
	s.Empty(response.Error.Details)
}

func (s *ResponseTestSuite) TestNewErrorResponse_WithOptions() {
	response := NewErrorResponse(
		SheetUnavailable,
		s.traceID,
		WithMessage("accounts sheet is down"),
		WithDetails("sheet: accounts", "status: 503"),
	)

	s.Equal("SHEET_001", response.Error.Code)
	s.Equal("accounts sheet is down", response.Error.Message)
	s.Equal([]string{"sheet: accounts", "status: 503"}, response.Error.Details)
}

func (s *ResponseTestSuite) TestNewValidationError_SortedDetails() {
	response := NewValidationError(map[string]string{
		"page":  "must be at least 1",
		"limit": "must be at most 100",
	}, s.traceID)

	s.Equal("VALIDATION_001", response.Error.Code)
	s.Equal([]string{"limit: must be at most 100", "page: must be at least 1"}, response.Error.Details)
}

func (s *ResponseTestSuite) TestWrapSystemError_HidesInternalError() {
	internal := errors.New("dial tcp: connection refused")
	response, err := WrapSystemError(internal, s.traceID)

	s.Equal(internal, err)
	s.Equal("SYSTEM_001", response.Error.Code)
	s.NotContains(response.Error.Message, "connection refused")
}

func (s *ResponseTestSuite) TestGetHTTPStatus() {
	testCases := []struct {
		code     ErrorCode
		expected int
	}{
		{ValidationGeneral, http.StatusBadRequest},
		{ClientInvalidID, http.StatusBadRequest},
		{ClientNotFound, http.StatusNotFound},
		{SheetUnknown, http.StatusNotFound},
		{ViewSuperseded, http.StatusConflict},
		{SystemRateLimitExceeded, http.StatusTooManyRequests},
		{SheetUnavailable, http.StatusBadGateway},
		{SheetEmpty, http.StatusBadGateway},
		{SystemServiceUnavailable, http.StatusServiceUnavailable},
		{SystemInternalError, http.StatusInternalServerError},
		{"UNKNOWN_001", http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.expected, GetHTTPStatus(tc.code))
		})
	}
}

func (s *ResponseTestSuite) TestClientAndServerErrorClassification() {
	s.True(NewErrorResponse(ClientNotFound, s.traceID).IsClientError())
	s.False(NewErrorResponse(ClientNotFound, s.traceID).IsServerError())
	s.True(NewErrorResponse(SheetUnavailable, s.traceID).IsServerError())
}

func (s *ResponseTestSuite) TestToJSON() {
	response := NewErrorResponse(ViewSuperseded, s.traceID)
	data, err := response.ToJSON()
	s.Require().NoError(err)

	var decoded map[string]map[string]interface{}
	s.Require().NoError(json.Unmarshal(data, &decoded))
	s.Equal("VIEW_001", decoded["error"]["code"])
	s.Equal(s.traceID, decoded["error"]["trace_id"])
}

func (s *ResponseTestSuite) TestString() {
	response := NewErrorResponse(ClientNotFound, "trace-1")
	s.Equal("[CLIENT_001] Client not found. Check the client ID (trace: trace-1)", response.String())
}
