package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"grocer/internal/database"
	"grocer/internal/model"
)

var ErrNotFound = errors.New("not found")

const userColumns = `id, username, email, password, is_admin`

func scanUser(row *sql.Row) (*model.User, error) {
	u := &model.User{}
	if err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.IsAdmin,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func GetUserByID(ctx context.Context, db database.Querier, userID int) (*model.User, error) {
	u, err := scanUser(db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`,
		userID,
	))
	if err != nil {
		return nil, fmt.Errorf("GetUserByID: %w", err)
	}
	return u, nil
}

func GetUserByEmail(ctx context.Context, db database.Querier, email string) (*model.User, error) {
	u, err := scanUser(db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ?`,
		email,
	))
	if err != nil {
		return nil, fmt.Errorf("GetUserByEmail: %w", err)
	}
	return u, nil
}

// GetAdminByEmail 只回傳 is_admin 為真的使用者
func GetAdminByEmail(ctx context.Context, db database.Querier, email string) (*model.User, error) {
	u, err := scanUser(db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ? AND is_admin = ?`,
		email,
		true,
	))
	if err != nil {
		return nil, fmt.Errorf("GetAdminByEmail: %w", err)
	}
	return u, nil
}

// CreateUser 新增使用者；重複的 username/email 會回傳 UNIQUE 錯誤，可用 database.IsUniqueViolation 判斷
func CreateUser(ctx context.Context, db database.Querier, u *model.User) (*model.User, error) {
	row := db.QueryRowContext(ctx,
		`INSERT INTO users (username, email, password, is_admin)
		 VALUES (?, ?, ?, ?)
		 RETURNING id`,
		u.Username,
		u.Email,
		u.PasswordHash,
		u.IsAdmin,
	)
	if err := row.Scan(&u.ID); err != nil {
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	return u, nil
}
