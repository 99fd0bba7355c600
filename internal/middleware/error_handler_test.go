package middleware

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"transaction-explorer/internal/errors"
	"transaction-explorer/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
)

// ErrorHandlerTestSuite defines the test suite for the HTTP error handler
type ErrorHandlerTestSuite struct {
	suite.Suite
	echo     *echo.Echo
	registry *prometheus.Registry
	handler  echo.HTTPErrorHandler
}

func (s *ErrorHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.registry = prometheus.NewRegistry()
	s.handler = NewHTTPErrorHandler(s.registry)
	s.echo.HTTPErrorHandler = s.handler
}

func TestErrorHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ErrorHandlerTestSuite))
}

func (s *ErrorHandlerTestSuite) newContext(method string) (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(httptest.NewRequest(method, "/transaction", nil), rec)
	c.Set(TraceIDContextKey, "test-trace-id")
	return c, rec
}

func (s *ErrorHandlerTestSuite) decode(rec *httptest.ResponseRecorder) errors.ErrorResponse {
	var body errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func (s *ErrorHandlerTestSuite) TestEchoHTTPErrors() {
	tests := []struct {
		status   int
		wantCode errors.ErrorCode
	}{
		{http.StatusNotFound, errors.SystemResourceNotFound},
		{http.StatusMethodNotAllowed, errors.ValidationGeneral},
		{http.StatusRequestEntityTooLarge, errors.ValidationGeneral},
		{http.StatusTooManyRequests, errors.SystemRateLimitExceeded},
		{http.StatusServiceUnavailable, errors.SystemServiceUnavailable},
		{http.StatusTeapot, errors.SystemUnexpectedError},
	}

	for _, tt := range tests {
		s.Run(fmt.Sprintf("status %d", tt.status), func() {
			c, rec := s.newContext(http.MethodGet)
			s.handler(echo.NewHTTPError(tt.status, "framework says no"), c)

			s.Equal(tt.status, rec.Code)
			body := s.decode(rec)
			s.Equal(string(tt.wantCode), body.Error.Code)
			s.Equal("framework says no", body.Error.Message)
			s.Equal("test-trace-id", body.Error.TraceID)
		})
	}
}

func (s *ErrorHandlerTestSuite) TestGenericErrorBecomesSystemError() {
	c, rec := s.newContext(http.MethodGet)
	s.handler(stderrors.New("pq: relation does not exist"), c)

	s.Equal(http.StatusInternalServerError, rec.Code)
	body := s.decode(rec)
	s.Equal(string(errors.SystemInternalError), body.Error.Code)
	s.NotContains(rec.Body.String(), "relation does not exist")
}

func (s *ErrorHandlerTestSuite) TestValidationErrors() {
	type query struct {
		Month string `query:"month" validate:"required,calendar_month"`
	}
	err := validation.GetValidator().GetValidate().Struct(query{Month: "13"})
	s.Require().Error(err)

	c, rec := s.newContext(http.MethodGet)
	s.handler(err, c)

	s.Equal(http.StatusBadRequest, rec.Code)
	body := s.decode(rec)
	s.Equal(string(errors.ValidationGeneral), body.Error.Code)
	s.Equal([]string{"month: must be an integer between 1 and 12"}, body.Error.Details)
}

func (s *ErrorHandlerTestSuite) TestNoTraceIDUsesUnknown() {
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	s.handler(stderrors.New("boom"), c)
	s.Contains(rec.Body.String(), "unknown")
}

func (s *ErrorHandlerTestSuite) TestHeadRequestHasNoBody() {
	c, rec := s.newContext(http.MethodHead)
	s.handler(echo.NewHTTPError(http.StatusNotFound, "missing"), c)

	s.Equal(http.StatusNotFound, rec.Code)
	s.Empty(rec.Body.String())
}

func (s *ErrorHandlerTestSuite) TestCommittedResponseUntouched() {
	c, rec := s.newContext(http.MethodGet)
	_ = c.JSON(http.StatusOK, map[string]string{"status": "ok"})

	s.handler(stderrors.New("late failure"), c)

	s.Equal(http.StatusOK, rec.Code)
	s.NotContains(rec.Body.String(), "SYSTEM_001")
}

func (s *ErrorHandlerTestSuite) TestCountsErrors() {
	c, _ := s.newContext(http.MethodGet)
	s.handler(stderrors.New("boom"), c)
	c, _ = s.newContext(http.MethodGet)
	s.handler(echo.NewHTTPError(http.StatusNotFound, "missing"), c)

	families, err := s.registry.Gather()
	s.Require().NoError(err)
	s.Require().Len(families, 1)
	s.Equal("api_errors_total", families[0].GetName())
	s.Len(families[0].GetMetric(), 2)
}
