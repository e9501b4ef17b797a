package store

import (
	"context"
	"fmt"

	"portfolio-blog/internal/database"
	"portfolio-blog/internal/model"
)

func ListCommentsByProject(ctx context.Context, db database.DB, projectID int) ([]model.Comment, error) {
	rows, err := db.Query(ctx,
		`SELECT c.id, c.project_id, c.author_id, COALESCE(u.name, ''), COALESCE(u.email, ''), c.text
		 FROM comments c
		 LEFT JOIN users u ON u.id = c.author_id
		 WHERE c.project_id = $1
		 ORDER BY c.id`,
		projectID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListCommentsByProject: %w", err)
	}
	defer rows.Close()

	var comments []model.Comment
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(
			&c.ID,
			&c.ProjectID,
			&c.AuthorID,
			&c.AuthorName,
			&c.AuthorEmail,
			&c.Text,
		); err != nil {
			return nil, fmt.Errorf("ListCommentsByProject: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListCommentsByProject: %w", err)
	}
	return comments, nil
}

func CreateComment(ctx context.Context, db database.DB, c *model.Comment) (*model.Comment, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO comments (project_id, author_id, text)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		c.ProjectID,
		c.AuthorID,
		c.Text,
	)
	if err := row.Scan(&c.ID); err != nil {
		return nil, fmt.Errorf("CreateComment: %w", err)
	}
	return c, nil
}
