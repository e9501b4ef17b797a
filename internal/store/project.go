package store

import (
	"context"
	"fmt"

	"portfolio-blog/internal/database"
	"portfolio-blog/internal/model"
)

func ListProjects(ctx context.Context, db database.DB) ([]model.Project, error) {
	rows, err := db.Query(ctx,
		`SELECT p.id, p.author_id, COALESCE(u.name, ''), p.title, p.subtitle, p.date, p.body, p.img_url
		 FROM projects p
		 LEFT JOIN users u ON u.id = p.author_id
		 ORDER BY p.id`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListProjects: %w", err)
	}
	defer rows.Close()

	var projects []model.Project
	for rows.Next() {
		var p model.Project
		if err := rows.Scan(
			&p.ID,
			&p.AuthorID,
			&p.AuthorName,
			&p.Title,
			&p.Subtitle,
			&p.Date,
			&p.Body,
			&p.ImgURL,
		); err != nil {
			return nil, fmt.Errorf("ListProjects: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListProjects: %w", err)
	}
	return projects, nil
}

func GetProjectByID(ctx context.Context, db database.DB, projectID int) (*model.Project, error) {
	row := db.QueryRow(ctx,
		`SELECT p.id, p.author_id, COALESCE(u.name, ''), p.title, p.subtitle, p.date, p.body, p.img_url
		 FROM projects p
		 LEFT JOIN users u ON u.id = p.author_id
		 WHERE p.id = $1`,
		projectID,
	)
	p := &model.Project{}
	if err := row.Scan(
		&p.ID,
		&p.AuthorID,
		&p.AuthorName,
		&p.Title,
		&p.Subtitle,
		&p.Date,
		&p.Body,
		&p.ImgURL,
	); err != nil {
		return nil, fmt.Errorf("GetProjectByID: %w", err)
	}
	return p, nil
}

func CreateProject(ctx context.Context, db database.DB, p *model.Project) (*model.Project, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO projects (author_id, title, subtitle, date, body, img_url)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		p.AuthorID,
		p.Title,
		p.Subtitle,
		p.Date,
		p.Body,
		p.ImgURL,
	)
	if err := row.Scan(&p.ID); err != nil {
		return nil, fmt.Errorf("CreateProject: %w", err)
	}
	return p, nil
}

// UpdateProject 只覆寫標題、副標、圖片與內文，作者與日期維持原值
func UpdateProject(ctx context.Context, db database.DB, p *model.Project) error {
	_, err := db.Exec(ctx,
		`UPDATE projects SET title = $1, subtitle = $2, img_url = $3, body = $4
		 WHERE id = $5`,
		p.Title,
		p.Subtitle,
		p.ImgURL,
		p.Body,
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("UpdateProject: %w", err)
	}
	return nil
}

// DeleteProject 移除文章，留言由 FK ON DELETE CASCADE 一併清除
func DeleteProject(ctx context.Context, db database.DB, projectID int) error {
	_, err := db.Exec(ctx,
		`DELETE FROM projects WHERE id = $1`,
		projectID,
	)
	if err != nil {
		return fmt.Errorf("DeleteProject: %w", err)
	}
	return nil
}
