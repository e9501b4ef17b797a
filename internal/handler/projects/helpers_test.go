// File: internal/handler/projects/helpers_test.go
package projects

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"portfolio-blog/internal/middleware"
	"portfolio-blog/internal/model"
	"portfolio-blog/internal/view"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type testValidator struct{ v *validator.Validate }

func (tv testValidator) Validate(i any) error { return tv.v.Struct(i) }

func newEcho(t *testing.T) *echo.Echo {
	t.Helper()
	e := echo.New()
	e.Validator = testValidator{v: validator.New()}
	renderer, err := view.New()
	require.NoError(t, err)
	e.Renderer = renderer
	return e
}

// newContext 建立指定方法與身分的測試 context，並綁好路徑參數 id
func newContext(t *testing.T, method, target, body string, user *model.User) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := newEcho(t)
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if idx := strings.LastIndex(target, "/"); idx >= 0 {
		c.SetParamNames("id")
		c.SetParamValues(target[idx+1:])
	}
	if user != nil {
		c.Set(middleware.ContextUserKey, user)
	}
	return c, rec
}

func admin() *model.User { return &model.User{ID: 1, Email: "admin@x.com", Name: "Admin"} }
func member() *model.User {
	return &model.User{ID: 2, Email: "bob@x.com", Name: "Bob"}
}

/* ---------- 假實作 ---------- */

type fakeProjectRow struct {
	scanErr error
	p       model.Project
}

func (r fakeProjectRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	p := r.p
	switch len(dest) {
	case 8:
		*dest[0].(*int) = p.ID
		*dest[1].(**int) = p.AuthorID
		*dest[2].(*string) = p.AuthorName
		*dest[3].(*string) = p.Title
		*dest[4].(*string) = p.Subtitle
		*dest[5].(*string) = p.Date
		*dest[6].(*string) = p.Body
		*dest[7].(*string) = p.ImgURL
	case 1:
		*dest[0].(*int) = p.ID
	default:
		panic("fakeProjectRow.Scan: unexpected number of dest")
	}
	return nil
}

type fakeProjectRows struct {
	data []model.Project
	idx  int
}

func (r *fakeProjectRows) Close()                                       {}
func (r *fakeProjectRows) Err() error                                   { return nil }
func (r *fakeProjectRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeProjectRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeProjectRows) Next() bool                                   { return r.idx < len(r.data) }
func (r *fakeProjectRows) Scan(dest ...any) error {
	p := r.data[r.idx]
	r.idx++
	*dest[0].(*int) = p.ID
	*dest[1].(**int) = p.AuthorID
	*dest[2].(*string) = p.AuthorName
	*dest[3].(*string) = p.Title
	*dest[4].(*string) = p.Subtitle
	*dest[5].(*string) = p.Date
	*dest[6].(*string) = p.Body
	*dest[7].(*string) = p.ImgURL
	return nil
}
func (r *fakeProjectRows) Values() ([]any, error) { return nil, nil }
func (r *fakeProjectRows) RawValues() [][]byte    { return nil }
func (r *fakeProjectRows) Conn() *pgx.Conn        { return nil }

type fakeCommentRows struct {
	data []model.Comment
	idx  int
}

func (r *fakeCommentRows) Close()                                       {}
func (r *fakeCommentRows) Err() error                                   { return nil }
func (r *fakeCommentRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeCommentRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeCommentRows) Next() bool                                   { return r.idx < len(r.data) }
func (r *fakeCommentRows) Scan(dest ...any) error {
	c := r.data[r.idx]
	r.idx++
	*dest[0].(*int) = c.ID
	*dest[1].(*int) = c.ProjectID
	*dest[2].(**int) = c.AuthorID
	*dest[3].(*string) = c.AuthorName
	*dest[4].(*string) = c.AuthorEmail
	*dest[5].(*string) = c.Text
	return nil
}
func (r *fakeCommentRows) Values() ([]any, error) { return nil, nil }
func (r *fakeCommentRows) RawValues() [][]byte    { return nil }
func (r *fakeCommentRows) Conn() *pgx.Conn        { return nil }

func sampleProject() model.Project {
	authorID := 1
	return model.Project{
		ID:         3,
		AuthorID:   &authorID,
		AuthorName: "Admin",
		Title:      "T1",
		Subtitle:   "S1",
		Date:       "August 29, 2026",
		Body:       "<p>body</p>",
		ImgURL:     "https://example.com/a.png",
	}
}

func requireHTTPError(t *testing.T, err error, code int) {
	t.Helper()
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	require.Equal(t, code, httpErr.Code)
}
