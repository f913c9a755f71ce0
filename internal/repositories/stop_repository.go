package repositories

import (
	"context"

	"globetrotter/internal/domain"
	"globetrotter/internal/domain/models"
)

const stopColumns = `id, trip_id, city_id, order_index, start_date, end_date, notes, created_at, updated_at`

type StopRepository struct {
	DB Querier
}

func (r StopRepository) Create(ctx context.Context, s *models.Stop) error {
	id, err := insert(ctx, r.DB, "Stop", `
		INSERT INTO stops (trip_id, city_id, order_index, start_date, end_date, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, s.TripID, s.CityID, s.OrderIndex, s.StartDate, s.EndDate, s.Notes, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		return err
	}
	s.ID = id
	return nil
}

func (r StopRepository) GetByID(ctx context.Context, id int64) (models.Stop, error) {
	return getOne[models.Stop](ctx, r.DB, "Stop", id, `SELECT `+stopColumns+` FROM stops WHERE id = ?`, id)
}

func (r StopRepository) GetByIDForUpdate(ctx context.Context, id int64) (models.Stop, error) {
	return getOne[models.Stop](ctx, r.DB, "Stop", id, `SELECT `+stopColumns+` FROM stops WHERE id = ? FOR UPDATE`, id)
}

// ListByTrip returns a page of stops in trip order.
func (r StopRepository) ListByTrip(ctx context.Context, tripID int64, page domain.Page) ([]models.Stop, error) {
	return selectMany[models.Stop](ctx, r.DB, "Stop",
		`SELECT `+stopColumns+` FROM stops WHERE trip_id = ? ORDER BY order_index ASC, id ASC LIMIT ? OFFSET ?`,
		tripID, page.Limit, page.Skip)
}

// ListAllByTrip returns every stop of a trip in order, unpaged.
func (r StopRepository) ListAllByTrip(ctx context.Context, tripID int64) ([]models.Stop, error) {
	return selectMany[models.Stop](ctx, r.DB, "Stop",
		`SELECT `+stopColumns+` FROM stops WHERE trip_id = ? ORDER BY order_index ASC, id ASC`, tripID)
}

func (r StopRepository) CountByCity(ctx context.Context, cityID int64) (int, error) {
	var n int
	if err := r.DB.QueryRowxContext(ctx, `SELECT COUNT(*) FROM stops WHERE city_id = ?`, cityID).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r StopRepository) Update(ctx context.Context, s models.Stop) error {
	return execOne(ctx, r.DB, "Stop", s.ID, `
		UPDATE stops SET
		  city_id = ?, order_index = ?, start_date = ?, end_date = ?, notes = ?, updated_at = ?
		WHERE id = ?
	`, s.CityID, s.OrderIndex, s.StartDate, s.EndDate, s.Notes, s.UpdatedAt, s.ID)
}

func (r StopRepository) Delete(ctx context.Context, id int64) error {
	return execOne(ctx, r.DB, "Stop", id, `DELETE FROM stops WHERE id = ?`, id)
}

func (r StopRepository) DeleteByTrip(ctx context.Context, tripID int64) (int64, error) {
	return execCount(ctx, r.DB, "Stop", `DELETE FROM stops WHERE trip_id = ?`, tripID)
}
