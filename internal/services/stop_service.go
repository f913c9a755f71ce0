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

type StopService struct {
	Base
}

func (s StopService) Create(ctx context.Context, in models.StopCreate) (models.Stop, error) {
	stop := in.ToStop()
	if err := validateRange(stop.StartDate, stop.EndDate); err != nil {
		return models.Stop{}, err
	}

	err := s.inTx(ctx, func(tx *sqlx.Tx) error {
		trip, err := repositories.TripRepository{DB: tx}.GetByID(ctx, stop.TripID)
		if err != nil {
			return err
		}
		if err := s.authorizeTrip(trip, true); err != nil {
			return err
		}
		if _, err := (repositories.CityRepository{DB: tx}).GetByID(ctx, stop.CityID); err != nil {
			return err
		}
		now := s.now()
		stop.CreatedAt, stop.UpdatedAt = now, now
		return repositories.StopRepository{DB: tx}.Create(ctx, &stop)
	})
	if err != nil {
		return models.Stop{}, err
	}

	utils.LogEvent(s.RequestID, "stop", "create", fmt.Sprintf("id=%d trip_id=%d", stop.ID, stop.TripID))
	return stop, nil
}

func (s StopService) List(ctx context.Context, tripID int64, page domain.Page) ([]models.Stop, error) {
	if err := requireID("trip_id", tripID); err != nil {
		return nil, err
	}
	page, err := page.Normalize()
	if err != nil {
		return nil, err
	}
	return repositories.StopRepository{DB: s.db()}.ListByTrip(ctx, tripID, page)
}

func (s StopService) Get(ctx context.Context, id int64) (models.Stop, error) {
	return repositories.StopRepository{DB: s.db()}.GetByID(ctx, id)
}

func (s StopService) Update(ctx context.Context, id int64, in models.StopUpdate) (models.Stop, error) {
	var stop models.Stop
	err := s.inTx(ctx, func(tx *sqlx.Tx) error {
		repo := repositories.StopRepository{DB: tx}
		current, err := repo.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if err := s.ownTrip(ctx, tx, current.TripID); err != nil {
			return err
		}
		if in.CityID != nil && *in.CityID != current.CityID {
			if _, err := (repositories.CityRepository{DB: tx}).GetByID(ctx, *in.CityID); err != nil {
				return err
			}
		}
		in.ApplyTo(&current)
		if err := validateRange(current.StartDate, current.EndDate); err != nil {
			return err
		}
		current.UpdatedAt = utils.NextUpdatedAt(s.now(), current.UpdatedAt)
		if err := repo.Update(ctx, current); err != nil {
			return err
		}
		stop = current
		return nil
	})
	if err != nil {
		return models.Stop{}, err
	}

	utils.LogEvent(s.RequestID, "stop", "update", fmt.Sprintf("id=%d", id))
	return stop, nil
}

// Delete removes the stop and its activities.
func (s StopService) Delete(ctx context.Context, id int64) error {
	var removed int64
	err := s.inTx(ctx, func(tx *sqlx.Tx) error {
		repo := repositories.StopRepository{DB: tx}
		stop, err := repo.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if err := s.ownTrip(ctx, tx, stop.TripID); err != nil {
			return err
		}
		if removed, err = (repositories.ActivityRepository{DB: tx}).DeleteByStop(ctx, id); err != nil {
			return err
		}
		return repo.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	utils.LogEvent(s.RequestID, "stop", "delete", fmt.Sprintf("id=%d activities=%d", id, removed))
	return nil
}
