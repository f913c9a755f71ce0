package repositories

import (
	"context"
	"strings"

	"globetrotter/internal/domain"
	"globetrotter/internal/domain/models"
)

const tripColumns = `id, user_id, name, description, start_date, end_date, status, cover_image, is_public,
	created_at, updated_at`

type TripRepository struct {
	DB Querier
}

func (r TripRepository) Create(ctx context.Context, t *models.Trip) error {
	id, err := insert(ctx, r.DB, "Trip", `
		INSERT INTO trips (user_id, name, description, start_date, end_date, status, cover_image, is_public,
		                   created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, t.UserID, t.Name, t.Description, t.StartDate, t.EndDate, t.Status, t.CoverImage, t.IsPublic,
		t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return err
	}
	t.ID = id
	return nil
}

func (r TripRepository) GetByID(ctx context.Context, id int64) (models.Trip, error) {
	return getOne[models.Trip](ctx, r.DB, "Trip", id, `SELECT `+tripColumns+` FROM trips WHERE id = ?`, id)
}

func (r TripRepository) GetByIDForUpdate(ctx context.Context, id int64) (models.Trip, error) {
	return getOne[models.Trip](ctx, r.DB, "Trip", id, `SELECT `+tripColumns+` FROM trips WHERE id = ? FOR UPDATE`, id)
}

// ListByUser returns one owner's trips in insertion order.
func (r TripRepository) ListByUser(ctx context.Context, f models.TripFilter, page domain.Page) ([]models.Trip, error) {
	where := []string{"user_id = ?"}
	args := []any{f.UserID}
	if s := strings.TrimSpace(f.Status); s != "" {
		where = append(where, "status = ?")
		args = append(args, s)
	}
	args = append(args, page.Limit, page.Skip)

	return selectMany[models.Trip](ctx, r.DB, "Trip",
		`SELECT `+tripColumns+` FROM trips WHERE `+strings.Join(where, " AND ")+` ORDER BY id ASC LIMIT ? OFFSET ?`,
		args...)
}

func (r TripRepository) ListIDsByUser(ctx context.Context, userID int64) ([]int64, error) {
	return selectMany[int64](ctx, r.DB, "Trip", `SELECT id FROM trips WHERE user_id = ? ORDER BY id ASC`, userID)
}

func (r TripRepository) Update(ctx context.Context, t models.Trip) error {
	return execOne(ctx, r.DB, "Trip", t.ID, `
		UPDATE trips SET
		  name = ?, description = ?, start_date = ?, end_date = ?, status = ?, cover_image = ?, is_public = ?,
		  updated_at = ?
		WHERE id = ?
	`, t.Name, t.Description, t.StartDate, t.EndDate, t.Status, t.CoverImage, t.IsPublic, t.UpdatedAt, t.ID)
}

func (r TripRepository) Delete(ctx context.Context, id int64) error {
	return execOne(ctx, r.DB, "Trip", id, `DELETE FROM trips WHERE id = ?`, id)
}
