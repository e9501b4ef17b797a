package model

// Comment 文章留言
// AuthorName / AuthorEmail 由 users 表 join 而來，供畫面顯示與頭像使用
type Comment struct {
	ID          int    `db:"id" json:"id"`
	ProjectID   int    `db:"project_id" json:"project_id"`
	AuthorID    *int   `db:"author_id" json:"author_id"`
	AuthorName  string `db:"author_name" json:"author_name"`
	AuthorEmail string `db:"author_email" json:"author_email"`
	Text        string `db:"text" json:"text"`
}
