// File: internal/view/view.go
package view

import (
	"embed"
	"html/template"
	"io"

	"portfolio-blog/internal/flash"
	"portfolio-blog/internal/middleware"
	"portfolio-blog/internal/model"
	"portfolio-blog/internal/service"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Renderer 實作 echo.Renderer，模板於啟動時解析一次
type Renderer struct {
	templates *template.Template
}

func New() (*Renderer, error) {
	t, err := template.New("").Funcs(template.FuncMap{
		// 文章內文為管理員透過富文本編輯器撰寫的 HTML，信任渲染
		"safeHTML": func(s string) template.HTML { return template.HTML(s) },
		"gravatar": service.GravatarURL,
	}).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{templates: t}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

// Page 所有頁面共用的視圖資料
type Page struct {
	User  *model.User
	Flash string
}

// IsAdmin 模板用：目前身分是否為管理員
func (p Page) IsAdmin() bool {
	return service.RequireAdmin(p.User) == nil
}

// NewPage 取出目前身分與待顯示的 flash 訊息
func NewPage(c echo.Context) Page {
	return Page{
		User:  middleware.CurrentUser(c),
		Flash: flash.Pop(c),
	}
}

type IndexPage struct {
	Page
	Projects []model.Project
}

// AuthPage 註冊與登入表單共用
type AuthPage struct {
	Page
	Email string
	Name  string
	Error string
}

type ProjectPage struct {
	Page
	Project     *model.Project
	Comments    []model.Comment
	CommentText string
	Error       string
}

// ProjectFormPage 新增與編輯文章表單共用
type ProjectFormPage struct {
	Page
	IsEdit    bool
	ProjectID int
	Title     string
	Subtitle  string
	ImgURL    string
	Body      string
	Error     string
}

type ErrorPage struct {
	Page
	Status  int
	Message string
}
