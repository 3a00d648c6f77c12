package handler_test

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"market/internal/delivery/http/middleware"
	"market/internal/delivery/http/validator"
)

// newRequestContext builds an echo context carrying a JSON body, with the
// request validator installed the same way the server wires it.
func newRequestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

// authenticate marks the context as carrying a logged-in principal.
func authenticate(c echo.Context, principalID uuid.UUID) {
	c.Set(middleware.ContextUserID, principalID)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
