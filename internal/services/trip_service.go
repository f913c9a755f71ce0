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

// TripService owns trips and the cascade that removes everything planned under them.
type TripService struct {
	Base
}

func (s TripService) Create(ctx context.Context, userID int64, in models.TripCreate) (models.Trip, error) {
	if err := requireID("user_id", userID); err != nil {
		return models.Trip{}, err
	}
	trip := in.ToTrip(userID)
	if err := validateRange(trip.StartDate, trip.EndDate); err != nil {
		return models.Trip{}, err
	}

	err := s.inTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := (repositories.UserRepository{DB: tx}).GetByID(ctx, userID); err != nil {
			return err
		}
		now := s.now()
		trip.CreatedAt, trip.UpdatedAt = now, now
		return repositories.TripRepository{DB: tx}.Create(ctx, &trip)
	})
	if err != nil {
		return models.Trip{}, err
	}

	utils.LogEvent(s.RequestID, "trip", "create", fmt.Sprintf("id=%d user_id=%d", trip.ID, userID))
	return trip, nil
}

func (s TripService) List(ctx context.Context, f models.TripFilter, page domain.Page) ([]models.Trip, error) {
	if err := requireID("user_id", f.UserID); err != nil {
		return nil, err
	}
	page, err := page.Normalize()
	if err != nil {
		return nil, err
	}
	return repositories.TripRepository{DB: s.db()}.ListByUser(ctx, f, page)
}

func (s TripService) Get(ctx context.Context, id int64) (models.Trip, error) {
	trip, err := repositories.TripRepository{DB: s.db()}.GetByID(ctx, id)
	if err != nil {
		return models.Trip{}, err
	}
	if err := s.authorizeTrip(trip, false); err != nil {
		return models.Trip{}, err
	}
	return trip, nil
}

func (s TripService) Update(ctx context.Context, id int64, in models.TripUpdate) (models.Trip, error) {
	var trip models.Trip
	err := s.inTx(ctx, func(tx *sqlx.Tx) error {
		repo := repositories.TripRepository{DB: tx}
		current, err := repo.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if err := s.authorizeTrip(current, true); err != nil {
			return err
		}
		in.ApplyTo(&current)
		if err := validateRange(current.StartDate, current.EndDate); err != nil {
			return err
		}
		current.UpdatedAt = utils.NextUpdatedAt(s.now(), current.UpdatedAt)
		if err := repo.Update(ctx, current); err != nil {
			return err
		}
		trip = current
		return nil
	})
	if err != nil {
		return models.Trip{}, err
	}

	utils.LogEvent(s.RequestID, "trip", "update", fmt.Sprintf("id=%d", id))
	return trip, nil
}

// UpdateStatus moves a trip to another lifecycle status.
func (s TripService) UpdateStatus(ctx context.Context, id int64, in models.TripStatusUpdate) (models.Trip, error) {
	status := in.Status
	return s.Update(ctx, id, models.TripUpdate{Status: &status})
}

func (s TripService) Delete(ctx context.Context, id int64) error {
	var res cascadeResult
	err := s.inTx(ctx, func(tx *sqlx.Tx) error {
		trip, err := repositories.TripRepository{DB: tx}.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if err := s.authorizeTrip(trip, true); err != nil {
			return err
		}
		res, err = deleteTripCascade(ctx, tx, id)
		return err
	})
	if err != nil {
		return err
	}

	utils.LogEvent(s.RequestID, "trip", "delete", fmt.Sprintf("id=%d %s", id, res))
	return nil
}

type cascadeResult struct {
	Trips      int
	Stops      int64
	Activities int64
	Budgets    int64
	Expenses   int64
}

func (r cascadeResult) String() string {
	return fmt.Sprintf("trips=%d stops=%d activities=%d budgets=%d expenses=%d",
		r.Trips, r.Stops, r.Activities, r.Budgets, r.Expenses)
}

func (r *cascadeResult) add(o cascadeResult) {
	r.Trips += o.Trips
	r.Stops += o.Stops
	r.Activities += o.Activities
	r.Budgets += o.Budgets
	r.Expenses += o.Expenses
}

// deleteTripCascade removes a trip bottom-up: activities, stops, expenses, budget, trip.
// The schema cascades too; doing it explicitly keeps the behavior independent of FK settings.
func deleteTripCascade(ctx context.Context, tx *sqlx.Tx, tripID int64) (cascadeResult, error) {
	var res cascadeResult
	var err error

	if res.Activities, err = (repositories.ActivityRepository{DB: tx}).DeleteByTrip(ctx, tripID); err != nil {
		return res, err
	}
	if res.Stops, err = (repositories.StopRepository{DB: tx}).DeleteByTrip(ctx, tripID); err != nil {
		return res, err
	}
	if res.Expenses, err = (repositories.ExpenseRepository{DB: tx}).DeleteByTrip(ctx, tripID); err != nil {
		return res, err
	}
	if res.Budgets, err = (repositories.BudgetRepository{DB: tx}).DeleteByTrip(ctx, tripID); err != nil {
		return res, err
	}
	if err := (repositories.TripRepository{DB: tx}).Delete(ctx, tripID); err != nil {
		return res, err
	}
	res.Trips = 1
	return res, nil
}
