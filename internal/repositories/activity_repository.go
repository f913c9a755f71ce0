package repositories

import (
	"context"

	"globetrotter/internal/domain"
	"globetrotter/internal/domain/models"
)

const activityColumns = `id, stop_id, name, category, description, duration, cost, rating, scheduled_time, notes,
	image_url, created_at, updated_at`

type ActivityRepository struct {
	DB Querier
}

func (r ActivityRepository) Create(ctx context.Context, a *models.Activity) error {
	id, err := insert(ctx, r.DB, "Activity", `
		INSERT INTO activities (stop_id, name, category, description, duration, cost, rating, scheduled_time, notes,
		                        image_url, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, a.StopID, a.Name, a.Category, a.Description, a.Duration, a.Cost, a.Rating, a.ScheduledTime, a.Notes,
		a.ImageURL, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		return err
	}
	a.ID = id
	return nil
}

func (r ActivityRepository) GetByID(ctx context.Context, id int64) (models.Activity, error) {
	return getOne[models.Activity](ctx, r.DB, "Activity", id, `SELECT `+activityColumns+` FROM activities WHERE id = ?`, id)
}

func (r ActivityRepository) GetByIDForUpdate(ctx context.Context, id int64) (models.Activity, error) {
	return getOne[models.Activity](ctx, r.DB, "Activity", id,
		`SELECT `+activityColumns+` FROM activities WHERE id = ? FOR UPDATE`, id)
}

func (r ActivityRepository) ListByStop(ctx context.Context, stopID int64, page domain.Page) ([]models.Activity, error) {
	return selectMany[models.Activity](ctx, r.DB, "Activity",
		`SELECT `+activityColumns+` FROM activities WHERE stop_id = ? ORDER BY id ASC LIMIT ? OFFSET ?`,
		stopID, page.Limit, page.Skip)
}

// ListByStops loads the activities of several stops at once, scheduled ones first.
func (r ActivityRepository) ListByStops(ctx context.Context, stopIDs []int64) ([]models.Activity, error) {
	if len(stopIDs) == 0 {
		return []models.Activity{}, nil
	}
	query, args, err := inQuery(r.DB, `SELECT `+activityColumns+` FROM activities WHERE stop_id IN (?)
		ORDER BY stop_id ASC, scheduled_time IS NULL, scheduled_time ASC, id ASC`, stopIDs)
	if err != nil {
		return nil, err
	}
	return selectMany[models.Activity](ctx, r.DB, "Activity", query, args...)
}

func (r ActivityRepository) Update(ctx context.Context, a models.Activity) error {
	return execOne(ctx, r.DB, "Activity", a.ID, `
		UPDATE activities SET
		  name = ?, category = ?, description = ?, duration = ?, cost = ?, rating = ?, scheduled_time = ?,
		  notes = ?, image_url = ?, updated_at = ?
		WHERE id = ?
	`, a.Name, a.Category, a.Description, a.Duration, a.Cost, a.Rating, a.ScheduledTime,
		a.Notes, a.ImageURL, a.UpdatedAt, a.ID)
}

func (r ActivityRepository) Delete(ctx context.Context, id int64) error {
	return execOne(ctx, r.DB, "Activity", id, `DELETE FROM activities WHERE id = ?`, id)
}

func (r ActivityRepository) DeleteByStop(ctx context.Context, stopID int64) (int64, error) {
	return execCount(ctx, r.DB, "Activity", `DELETE FROM activities WHERE stop_id = ?`, stopID)
}

func (r ActivityRepository) DeleteByTrip(ctx context.Context, tripID int64) (int64, error) {
	return execCount(ctx, r.DB, "Activity", `
		DELETE a FROM activities a
		JOIN stops s ON s.id = a.stop_id
		WHERE s.trip_id = ?
	`, tripID)
}
