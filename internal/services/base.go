package services

import (
	"context"
	"fmt"
	"time"

	intconfig "globetrotter/internal/config"
	intdb "globetrotter/internal/db"
	"globetrotter/internal/domain"
	"globetrotter/internal/domain/models"
	"globetrotter/internal/repositories"
	"globetrotter/internal/utils"

	"github.com/jmoiron/sqlx"
)

// Base carries what every entity service needs for one request.
// CallerID is the authenticated user; zero skips ownership checks.
type Base struct {
	DB        *sqlx.DB
	RequestID string
	Now       func() time.Time
	CallerID  int64
}

func (b Base) db() *sqlx.DB {
	if b.DB != nil {
		return b.DB
	}
	return intconfig.DB
}

func (b Base) now() time.Time {
	if b.Now != nil {
		return b.Now().UTC().Truncate(time.Microsecond)
	}
	return utils.NowUTC()
}

// inTx is the request's unit of work: commit on success, rollback otherwise.
func (b Base) inTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	return intdb.WithTx(ctx, b.db(), fn)
}

func requireID(field string, id int64) error {
	if id <= 0 {
		return domain.ValidationError{Field: field, Msg: "must be a positive integer"}
	}
	return nil
}

func validateRange(start, end time.Time) error {
	if end.Before(start) {
		return domain.ValidationError{Field: "end_date", Msg: "must not be before start_date"}
	}
	return nil
}

// authorizeTrip lets the owner do anything and anyone read a public trip.
func (b Base) authorizeTrip(trip models.Trip, write bool) error {
	if b.CallerID == 0 || trip.UserID == b.CallerID {
		return nil
	}
	if !write && trip.IsPublic {
		return nil
	}
	return domain.ForbiddenError{Msg: fmt.Sprintf("trip %d belongs to another user", trip.ID)}
}

// ownTrip loads the trip only when there is a caller to check.
func (b Base) ownTrip(ctx context.Context, q repositories.Querier, tripID int64) error {
	if b.CallerID == 0 {
		return nil
	}
	trip, err := repositories.TripRepository{DB: q}.GetByID(ctx, tripID)
	if err != nil {
		return err
	}
	return b.authorizeTrip(trip, true)
}

// ownStop resolves the stop's trip and checks it like ownTrip.
func (b Base) ownStop(ctx context.Context, q repositories.Querier, stopID int64) error {
	if b.CallerID == 0 {
		return nil
	}
	stop, err := repositories.StopRepository{DB: q}.GetByID(ctx, stopID)
	if err != nil {
		return err
	}
	return b.ownTrip(ctx, q, stop.TripID)
}
