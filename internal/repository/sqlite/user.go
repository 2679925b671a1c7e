package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/cliniquenova/timeclock-backend-go/internal/domain/user"
	"github.com/cliniquenova/timeclock-backend-go/internal/pkg/database"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

const userColumns = `id, username, password_hash, last_name, first_name, role, active, created_at, updated_at`

func scanUser(row interface{ Scan(dest ...any) error }) (user.User, error) {
	var u user.User
	var createdAt, updatedAt string
	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.PasswordHash,
		&u.LastName,
		&u.FirstName,
		&u.Role,
		&u.Active,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return user.User{}, err
	}
	u.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	u.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return u, nil
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	now := time.Now().UTC()
	if newUser.CreatedAt.IsZero() {
		newUser.CreatedAt = now
	}
	if newUser.UpdatedAt.IsZero() {
		newUser.UpdatedAt = now
	}

	if newUser.ID == 0 {
		// Auto-assigned ids start at 2; id 1 belongs to the bootstrap admin
		// and is only ever inserted explicitly.
		err := q.QueryRowContext(ctx, `SELECT COALESCE(MAX(id), 1) + 1 FROM users`).Scan(&newUser.ID)
		if err != nil {
			return user.User{}, fmt.Errorf("failed to allocate user id: %w", err)
		}
	}

	_, err := q.ExecContext(ctx, `
		INSERT INTO users (id, username, password_hash, last_name, first_name, role, active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, newUser.ID, newUser.Username, newUser.PasswordHash, newUser.LastName, newUser.FirstName,
		string(newUser.Role), newUser.Active, newUser.CreatedAt.Format(time.RFC3339), newUser.UpdatedAt.Format(time.RFC3339))
	if err != nil {
		return user.User{}, err
	}
	return newUser, nil
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id int) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	row := q.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return user.User{}, user.ErrUserNotFound
	}
	return u, err
}

// GetByUsername implements user.UserRepository.
func (r *userRepositoryImpl) GetByUsername(ctx context.Context, username string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	row := q.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE username = ?`, username)
	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return user.User{}, user.ErrUserNotFound
	}
	return u, err
}

// ExistsByUsername implements user.UserRepository.
func (r *userRepositoryImpl) ExistsByUsername(ctx context.Context, username string, excludeID int) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE username = ? AND id != ?)`,
		username, excludeID,
	).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// Update implements user.UserRepository.
func (r *userRepositoryImpl) Update(ctx context.Context, u user.User) error {
	q := GetQuerier(ctx, r.db)

	res, err := q.ExecContext(ctx, `
		UPDATE users
		SET username = ?, password_hash = ?, last_name = ?, first_name = ?, role = ?, active = ?, updated_at = ?
		WHERE id = ?
	`, u.Username, u.PasswordHash, u.LastName, u.FirstName, string(u.Role), u.Active,
		time.Now().UTC().Format(time.RFC3339), u.ID)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// Delete implements user.UserRepository. Deleting a missing id is a no-op.
func (r *userRepositoryImpl) Delete(ctx context.Context, id int) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	return err
}

// List implements user.UserRepository.
func (r *userRepositoryImpl) List(ctx context.Context) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// Restore implements user.UserRepository.
func (r *userRepositoryImpl) Restore(ctx context.Context, users []user.User) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.ExecContext(ctx, `DELETE FROM users`); err != nil {
		return err
	}
	for _, u := range users {
		if _, err := r.Create(ctx, u); err != nil {
			return err
		}
	}
	return nil
}
