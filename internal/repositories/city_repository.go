package repositories

import (
	"context"
	"strings"

	"globetrotter/internal/domain"
	"globetrotter/internal/domain/models"
	"globetrotter/internal/utils"
)

const cityColumns = `id, name, country, region, cost_index, popularity, description, image_url, latitude, longitude,
	created_at, updated_at`

type CityRepository struct {
	DB Querier
}

func (r CityRepository) Create(ctx context.Context, c *models.City) error {
	id, err := insert(ctx, r.DB, "City", `
		INSERT INTO cities (name, country, region, cost_index, popularity, description, image_url, latitude, longitude,
		                    created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, c.Name, c.Country, c.Region, c.CostIndex, c.Popularity, c.Description, c.ImageURL, c.Latitude, c.Longitude,
		c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return err
	}
	c.ID = id
	return nil
}

func (r CityRepository) GetByID(ctx context.Context, id int64) (models.City, error) {
	return getOne[models.City](ctx, r.DB, "City", id, `SELECT `+cityColumns+` FROM cities WHERE id = ?`, id)
}

func (r CityRepository) GetByIDForUpdate(ctx context.Context, id int64) (models.City, error) {
	return getOne[models.City](ctx, r.DB, "City", id, `SELECT `+cityColumns+` FROM cities WHERE id = ? FOR UPDATE`, id)
}

// List applies an exact region match and a case-insensitive substring search over name OR country.
func (r CityRepository) List(ctx context.Context, f models.CityFilter, page domain.Page) ([]models.City, error) {
	where := []string{"1=1"}
	args := []any{}
	if region := strings.TrimSpace(f.Region); region != "" {
		where = append(where, "region = ?")
		args = append(args, region)
	}
	if search := strings.TrimSpace(f.Search); search != "" {
		pattern := "%" + strings.ToLower(utils.EscapeLike(search)) + "%"
		where = append(where, "(LOWER(name) LIKE ? OR LOWER(country) LIKE ?)")
		args = append(args, pattern, pattern)
	}
	args = append(args, page.Limit, page.Skip)

	return selectMany[models.City](ctx, r.DB, "City",
		`SELECT `+cityColumns+` FROM cities WHERE `+strings.Join(where, " AND ")+` ORDER BY id ASC LIMIT ? OFFSET ?`,
		args...)
}

func (r CityRepository) ListByIDs(ctx context.Context, ids []int64) ([]models.City, error) {
	if len(ids) == 0 {
		return []models.City{}, nil
	}
	query, args, err := inQuery(r.DB, `SELECT `+cityColumns+` FROM cities WHERE id IN (?) ORDER BY id ASC`, ids)
	if err != nil {
		return nil, err
	}
	return selectMany[models.City](ctx, r.DB, "City", query, args...)
}

func (r CityRepository) Update(ctx context.Context, c models.City) error {
	return execOne(ctx, r.DB, "City", c.ID, `
		UPDATE cities SET
		  name = ?, country = ?, region = ?, cost_index = ?, popularity = ?, description = ?, image_url = ?,
		  latitude = ?, longitude = ?, updated_at = ?
		WHERE id = ?
	`, c.Name, c.Country, c.Region, c.CostIndex, c.Popularity, c.Description, c.ImageURL,
		c.Latitude, c.Longitude, c.UpdatedAt, c.ID)
}

func (r CityRepository) Delete(ctx context.Context, id int64) error {
	return execOne(ctx, r.DB, "City", id, `DELETE FROM cities WHERE id = ?`, id)
}
