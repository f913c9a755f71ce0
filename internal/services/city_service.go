package services

import (
	"context"
	"fmt"

	"globetrotter/internal/domain"
	"globetrotter/internal/domain/models"
	"globetrotter/internal/repositories"
	"globetrotter/internal/utils"

	"github.com/jmoiron/sqlx"
)

type CityService struct {
	Base
}

func (s CityService) Create(ctx context.Context, in models.CityCreate) (models.City, error) {
	city := in.ToCity()
	now := s.now()
	city.CreatedAt, city.UpdatedAt = now, now

	err := s.inTx(ctx, func(tx *sqlx.Tx) error {
		return repositories.CityRepository{DB: tx}.Create(ctx, &city)
	})
	if err != nil {
		return models.City{}, err
	}

	utils.LogEvent(s.RequestID, "city", "create", fmt.Sprintf("id=%d", city.ID))
	return city, nil
}

func (s CityService) List(ctx context.Context, f models.CityFilter, page domain.Page) ([]models.City, error) {
	page, err := page.Normalize()
	if err != nil {
		return nil, err
	}
	return repositories.CityRepository{DB: s.db()}.List(ctx, f, page)
}

func (s CityService) Get(ctx context.Context, id int64) (models.City, error) {
	return repositories.CityRepository{DB: s.db()}.GetByID(ctx, id)
}

func (s CityService) Update(ctx context.Context, id int64, in models.CityUpdate) (models.City, error) {
	var city models.City
	err := s.inTx(ctx, func(tx *sqlx.Tx) error {
		repo := repositories.CityRepository{DB: tx}
		current, err := repo.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		in.ApplyTo(&current)
		current.UpdatedAt = utils.NextUpdatedAt(s.now(), current.UpdatedAt)
		if err := repo.Update(ctx, current); err != nil {
			return err
		}
		city = current
		return nil
	})
	if err != nil {
		return models.City{}, err
	}

	utils.LogEvent(s.RequestID, "city", "update", fmt.Sprintf("id=%d", id))
	return city, nil
}

// Delete refuses to remove a city that any stop still points at.
func (s CityService) Delete(ctx context.Context, id int64) error {
	err := s.inTx(ctx, func(tx *sqlx.Tx) error {
		repo := repositories.CityRepository{DB: tx}
		if _, err := repo.GetByIDForUpdate(ctx, id); err != nil {
			return err
		}
		n, err := repositories.StopRepository{DB: tx}.CountByCity(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return domain.ConflictError{Resource: "City", Msg: fmt.Sprintf("referenced by %d stop(s)", n)}
		}
		return repo.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	utils.LogEvent(s.RequestID, "city", "delete", fmt.Sprintf("id=%d", id))
	return nil
}
