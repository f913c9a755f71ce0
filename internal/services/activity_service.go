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

type ActivityService struct {
	Base
}

func (s ActivityService) Create(ctx context.Context, in models.ActivityCreate) (models.Activity, error) {
	activity := in.ToActivity()
	err := s.inTx(ctx, func(tx *sqlx.Tx) error {
		stop, err := repositories.StopRepository{DB: tx}.GetByID(ctx, activity.StopID)
		if err != nil {
			return err
		}
		if err := s.ownTrip(ctx, tx, stop.TripID); err != nil {
			return err
		}
		now := s.now()
		activity.CreatedAt, activity.UpdatedAt = now, now
		return repositories.ActivityRepository{DB: tx}.Create(ctx, &activity)
	})
	if err != nil {
		return models.Activity{}, err
	}

	utils.LogEvent(s.RequestID, "activity", "create", fmt.Sprintf("id=%d stop_id=%d", activity.ID, activity.StopID))
	return activity, nil
}

func (s ActivityService) List(ctx context.Context, stopID int64, page domain.Page) ([]models.Activity, error) {
	if err := requireID("stop_id", stopID); err != nil {
		return nil, err
	}
	page, err := page.Normalize()
	if err != nil {
		return nil, err
	}
	return repositories.ActivityRepository{DB: s.db()}.ListByStop(ctx, stopID, page)
}

func (s ActivityService) Get(ctx context.Context, id int64) (models.Activity, error) {
	return repositories.ActivityRepository{DB: s.db()}.GetByID(ctx, id)
}

func (s ActivityService) Update(ctx context.Context, id int64, in models.ActivityUpdate) (models.Activity, error) {
	var activity models.Activity
	err := s.inTx(ctx, func(tx *sqlx.Tx) error {
		repo := repositories.ActivityRepository{DB: tx}
		current, err := repo.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if err := s.ownStop(ctx, tx, current.StopID); err != nil {
			return err
		}
		in.ApplyTo(&current)
		current.UpdatedAt = utils.NextUpdatedAt(s.now(), current.UpdatedAt)
		if err := repo.Update(ctx, current); err != nil {
			return err
		}
		activity = current
		return nil
	})
	if err != nil {
		return models.Activity{}, err
	}

	utils.LogEvent(s.RequestID, "activity", "update", fmt.Sprintf("id=%d", id))
	return activity, nil
}

func (s ActivityService) Delete(ctx context.Context, id int64) error {
	err := s.inTx(ctx, func(tx *sqlx.Tx) error {
		repo := repositories.ActivityRepository{DB: tx}
		activity, err := repo.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if err := s.ownStop(ctx, tx, activity.StopID); err != nil {
			return err
		}
		return repo.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	utils.LogEvent(s.RequestID, "activity", "delete", fmt.Sprintf("id=%d", id))
	return nil
}
