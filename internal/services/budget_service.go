package services

import (
	"context"
	"fmt"
	"strings"

	"globetrotter/internal/domain"
	"globetrotter/internal/domain/models"
	"globetrotter/internal/repositories"
	"globetrotter/internal/utils"

	"github.com/jmoiron/sqlx"
)

// BudgetService keeps at most one budget per trip.
type BudgetService struct {
	Base
}

func (s BudgetService) Create(ctx context.Context, in models.BudgetCreate) (models.Budget, error) {
	budget := in.ToBudget()
	budget.Currency = strings.ToUpper(budget.Currency)

	err := s.inTx(ctx, func(tx *sqlx.Tx) error {
		trip, err := repositories.TripRepository{DB: tx}.GetByIDForUpdate(ctx, budget.TripID)
		if err != nil {
			return err
		}
		if err := s.authorizeTrip(trip, true); err != nil {
			return err
		}
		repo := repositories.BudgetRepository{DB: tx}
		existing, err := repo.GetByTrip(ctx, budget.TripID)
		switch {
		case err == nil:
			return domain.ConflictError{Resource: "Budget", Msg: fmt.Sprintf("trip already has budget %d", existing.ID)}
		case !domain.IsNotFound(err):
			return err
		}
		now := s.now()
		budget.CreatedAt, budget.UpdatedAt = now, now
		return repo.Create(ctx, &budget)
	})
	if err != nil {
		return models.Budget{}, err
	}

	utils.LogEvent(s.RequestID, "budget", "create", fmt.Sprintf("id=%d trip_id=%d", budget.ID, budget.TripID))
	return budget, nil
}

func (s BudgetService) List(ctx context.Context, tripID int64, page domain.Page) ([]models.Budget, error) {
	if err := requireID("trip_id", tripID); err != nil {
		return nil, err
	}
	page, err := page.Normalize()
	if err != nil {
		return nil, err
	}
	return repositories.BudgetRepository{DB: s.db()}.ListByTrip(ctx, tripID, page)
}

func (s BudgetService) Get(ctx context.Context, id int64) (models.Budget, error) {
	return repositories.BudgetRepository{DB: s.db()}.GetByID(ctx, id)
}

func (s BudgetService) Update(ctx context.Context, id int64, in models.BudgetUpdate) (models.Budget, error) {
	var budget models.Budget
	err := s.inTx(ctx, func(tx *sqlx.Tx) error {
		repo := repositories.BudgetRepository{DB: tx}
		current, err := repo.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if err := s.ownTrip(ctx, tx, current.TripID); err != nil {
			return err
		}
		in.ApplyTo(&current)
		current.Currency = strings.ToUpper(current.Currency)
		current.UpdatedAt = utils.NextUpdatedAt(s.now(), current.UpdatedAt)
		if err := repo.Update(ctx, current); err != nil {
			return err
		}
		budget = current
		return nil
	})
	if err != nil {
		return models.Budget{}, err
	}

	utils.LogEvent(s.RequestID, "budget", "update", fmt.Sprintf("id=%d", id))
	return budget, nil
}

// Delete removes the budget and its expenses.
func (s BudgetService) Delete(ctx context.Context, id int64) error {
	var removed int64
	err := s.inTx(ctx, func(tx *sqlx.Tx) error {
		repo := repositories.BudgetRepository{DB: tx}
		budget, err := repo.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if err := s.ownTrip(ctx, tx, budget.TripID); err != nil {
			return err
		}
		if removed, err = (repositories.ExpenseRepository{DB: tx}).DeleteByBudget(ctx, id); err != nil {
			return err
		}
		return repo.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	utils.LogEvent(s.RequestID, "budget", "delete", fmt.Sprintf("id=%d expenses=%d", id, removed))
	return nil
}

// Summary compares the budget's plan with its recorded expenses.
func (s BudgetService) Summary(ctx context.Context, id int64) (models.BudgetSummary, error) {
	db := s.db()
	budget, err := repositories.BudgetRepository{DB: db}.GetByID(ctx, id)
	if err != nil {
		return models.BudgetSummary{}, err
	}
	expenses, err := repositories.ExpenseRepository{DB: db}.ListAllByBudget(ctx, id)
	if err != nil {
		return models.BudgetSummary{}, err
	}
	return models.SummarizeBudget(budget, expenses), nil
}
