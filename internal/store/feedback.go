package store

import (
	"context"
	"fmt"

	"grocer/internal/database"
	"grocer/internal/model"
)

func CreateFeedback(ctx context.Context, db database.Querier, userID int, comment string) (*model.Feedback, error) {
	f := &model.Feedback{UserID: userID, Comment: comment}
	row := db.QueryRowContext(ctx,
		`INSERT INTO feedback (user_id, comment)
		 VALUES (?, ?)
		 RETURNING id`,
		userID,
		comment,
	)
	if err := row.Scan(&f.ID); err != nil {
		return nil, fmt.Errorf("CreateFeedback: %w", err)
	}
	return f, nil
}

// ListFeedback 依新到舊列出意見回饋與作者名稱
func ListFeedback(ctx context.Context, db database.Querier) ([]model.Feedback, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT f.id, f.user_id, u.username, f.comment, f.created_at
		 FROM feedback f JOIN users u ON u.id = f.user_id
		 ORDER BY f.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("ListFeedback: %w", err)
	}
	defer rows.Close()

	list := []model.Feedback{}
	for rows.Next() {
		var f model.Feedback
		if err := rows.Scan(&f.ID, &f.UserID, &f.Username, &f.Comment, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("ListFeedback: %w", err)
		}
		list = append(list, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListFeedback: %w", err)
	}
	return list, nil
}
