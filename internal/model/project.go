package model

// Project 作品集文章
// Date 存人類可讀的發佈日期字串（例如 "August 29, 2026"）
// AuthorID 在作者帳號被移除後為 nil
type Project struct {
	ID         int    `db:"id" json:"id"`
	AuthorID   *int   `db:"author_id" json:"author_id"`
	AuthorName string `db:"author_name" json:"author_name"`
	Title      string `db:"title" json:"title"`
	Subtitle   string `db:"subtitle" json:"subtitle"`
	Date       string `db:"date" json:"date"`
	Body       string `db:"body" json:"body"`
	ImgURL     string `db:"img_url" json:"img_url"`
}
