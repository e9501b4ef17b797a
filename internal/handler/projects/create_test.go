// File: internal/handler/projects/create_test.go
package projects

import (
	"context"
	"net/http"
	"testing"

	"portfolio-blog/internal/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestNewProjectFormHandler(t *testing.T) {
	// 匿名與一般使用者都是 403
	ctx, _ := newContext(t, http.MethodGet, "/new-project", "", nil)
	requireHTTPError(t, NewProjectFormHandler()(ctx), http.StatusForbidden)

	ctx, _ = newContext(t, http.MethodGet, "/new-project", "", member())
	requireHTTPError(t, NewProjectFormHandler()(ctx), http.StatusForbidden)

	// 管理員看到空表單
	ctx, rec := newContext(t, http.MethodGet, "/new-project", "", admin())
	require.NoError(t, NewProjectFormHandler()(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "New Project")
}

func TestCreateProjectHandler(t *testing.T) {
	form := "title=T1&subtitle=S1&img_url=https://example.com/a.png&body=<p>b</p>"

	// 非管理員：403 且不得觸碰資料（FakeDB 任何呼叫都會 panic）
	ctx, _ := newContext(t, http.MethodPost, "/new-project", form, nil)
	requireHTTPError(t, CreateProjectHandler(&database.FakeDB{})(ctx), http.StatusForbidden)

	ctx, _ = newContext(t, http.MethodPost, "/new-project", form, member())
	requireHTTPError(t, CreateProjectHandler(&database.FakeDB{})(ctx), http.StatusForbidden)

	// 欄位驗證失敗：重新渲染表單
	ctx, rec := newContext(t, http.MethodPost, "/new-project", "title=&subtitle=&img_url=notaurl&body=", admin())
	require.NoError(t, CreateProjectHandler(&database.FakeDB{})(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// 成功：寫入後導向首頁
	db := &database.FakeDB{
		QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
			return fakeProjectRow{p: sampleProject()}
		},
	}
	ctx, rec = newContext(t, http.MethodPost, "/new-project", form, admin())
	require.NoError(t, CreateProjectHandler(db)(ctx))
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/", rec.Header().Get("Location"))

	// 重複標題：表單錯誤而非 500
	db = &database.FakeDB{
		QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
			return fakeProjectRow{scanErr: &pgconn.PgError{Code: "23505"}}
		},
	}
	ctx, rec = newContext(t, http.MethodPost, "/new-project", form, admin())
	require.NoError(t, CreateProjectHandler(db)(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "A project with that title already exists.")
}
