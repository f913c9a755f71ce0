package repositories

import (
	"context"

	"globetrotter/internal/domain"
	"globetrotter/internal/domain/models"
)

const userColumns = `id, email, username, hashed_password, first_name, last_name, phone, city, country,
	additional_info, is_active, created_at, updated_at`

type UserRepository struct {
	DB Querier
}

func (r UserRepository) Create(ctx context.Context, u *models.User) error {
	id, err := insert(ctx, r.DB, "User", `
		INSERT INTO users (email, username, hashed_password, first_name, last_name, phone, city, country,
		                   additional_info, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, u.Email, u.Username, u.PasswordHash, u.FirstName, u.LastName, u.Phone, u.City, u.Country,
		u.AdditionalInfo, u.IsActive, u.CreatedAt, u.UpdatedAt)
	if err != nil {
		return err
	}
	u.ID = id
	return nil
}

func (r UserRepository) GetByID(ctx context.Context, id int64) (models.User, error) {
	return getOne[models.User](ctx, r.DB, "User", id, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
}

func (r UserRepository) GetByIDForUpdate(ctx context.Context, id int64) (models.User, error) {
	return getOne[models.User](ctx, r.DB, "User", id, `SELECT `+userColumns+` FROM users WHERE id = ? FOR UPDATE`, id)
}

// GetByLogin matches either email or username.
func (r UserRepository) GetByLogin(ctx context.Context, login string) (models.User, error) {
	return getOne[models.User](ctx, r.DB, "User", 0,
		`SELECT `+userColumns+` FROM users WHERE email = ? OR username = ? LIMIT 1`, login, login)
}

func (r UserRepository) List(ctx context.Context, page domain.Page) ([]models.User, error) {
	return selectMany[models.User](ctx, r.DB, "User",
		`SELECT `+userColumns+` FROM users ORDER BY id ASC LIMIT ? OFFSET ?`, page.Limit, page.Skip)
}

func (r UserRepository) Update(ctx context.Context, u models.User) error {
	return execOne(ctx, r.DB, "User", u.ID, `
		UPDATE users SET
		  email = ?, username = ?, first_name = ?, last_name = ?, phone = ?, city = ?, country = ?,
		  additional_info = ?, is_active = ?, updated_at = ?
		WHERE id = ?
	`, u.Email, u.Username, u.FirstName, u.LastName, u.Phone, u.City, u.Country, u.AdditionalInfo, u.IsActive, u.UpdatedAt, u.ID)
}

func (r UserRepository) Delete(ctx context.Context, id int64) error {
	return execOne(ctx, r.DB, "User", id, `DELETE FROM users WHERE id = ?`, id)
}
