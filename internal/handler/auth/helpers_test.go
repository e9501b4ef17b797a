// File: internal/handler/auth/helpers_test.go
package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"portfolio-blog/internal/view"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type testValidator struct{ v *validator.Validate }

func (tv testValidator) Validate(i any) error { return tv.v.Struct(i) }

// newEcho 建立帶真實 validator 與模板的 echo 實例
func newEcho(t *testing.T) *echo.Echo {
	t.Helper()
	e := echo.New()
	e.Validator = testValidator{v: validator.New()}
	renderer, err := view.New()
	require.NoError(t, err)
	e.Renderer = renderer
	return e
}

func newFormContext(t *testing.T, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := newEcho(t)
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func newGetContext(t *testing.T, target string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := newEcho(t)
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func uniqueViolation() error {
	return &pgconn.PgError{Code: "23505"}
}
