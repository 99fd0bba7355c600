package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"transaction-explorer/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type PanicRecoveryTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func (s *PanicRecoveryTestSuite) SetupTest() {
	s.echo = echo.New()
}

func TestPanicRecoveryTestSuite(t *testing.T) {
	suite.Run(t, new(PanicRecoveryTestSuite))
}

func (s *PanicRecoveryTestSuite) TestPanicRecovery_RespondsWithSystemError() {
	req := httptest.NewRequest(http.MethodGet, "/transaction", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set(TraceIDContextKey, "panic-trace")

	handler := PanicRecovery()(func(c echo.Context) error {
		panic("nil map write")
	})

	s.NotPanics(func() { _ = handler(c) })
	s.Equal(http.StatusInternalServerError, rec.Code)

	var body errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal(string(errors.SystemInternalError), body.Error.Code)
	s.Equal("panic-trace", body.Error.TraceID)
}

func (s *PanicRecoveryTestSuite) TestPanicRecovery_UnknownTraceID() {
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	handler := PanicRecovery()(func(c echo.Context) error {
		panic(42)
	})

	_ = handler(c)
	s.Contains(rec.Body.String(), "unknown")
}

func (s *PanicRecoveryTestSuite) TestPanicRecovery_PassesThroughWithoutPanic() {
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	handler := PanicRecovery()(func(c echo.Context) error {
		return c.String(http.StatusOK, "fine")
	})

	s.NoError(handler(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("fine", rec.Body.String())
}

func (s *PanicRecoveryTestSuite) TestPanicRecovery_CommittedResponseLeftAlone() {
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	handler := PanicRecovery()(func(c echo.Context) error {
		_ = c.String(http.StatusOK, "partial")
		panic("after write")
	})

	_ = handler(c)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("partial", rec.Body.String())
}
