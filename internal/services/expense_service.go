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

// ExpenseService records what was actually spent against a trip budget.
type ExpenseService struct {
	Base
}

// ownBudget checks the caller against the trip the budget belongs to.
func (s ExpenseService) ownBudget(ctx context.Context, q repositories.Querier, budgetID int64) error {
	budget, err := repositories.BudgetRepository{DB: q}.GetByID(ctx, budgetID)
	if err != nil {
		return err
	}
	return s.ownTrip(ctx, q, budget.TripID)
}

func (s ExpenseService) Create(ctx context.Context, in models.ExpenseCreate) (models.Expense, error) {
	expense := in.ToExpense()
	err := s.inTx(ctx, func(tx *sqlx.Tx) error {
		if err := s.ownBudget(ctx, tx, expense.BudgetID); err != nil {
			return err
		}
		now := s.now()
		expense.CreatedAt, expense.UpdatedAt = now, now
		return repositories.ExpenseRepository{DB: tx}.Create(ctx, &expense)
	})
	if err != nil {
		return models.Expense{}, err
	}

	utils.LogEvent(s.RequestID, "expense", "create", fmt.Sprintf("id=%d budget_id=%d", expense.ID, expense.BudgetID))
	return expense, nil
}

func (s ExpenseService) List(ctx context.Context, f models.ExpenseFilter, page domain.Page) ([]models.Expense, error) {
	if err := requireID("budget_id", f.BudgetID); err != nil {
		return nil, err
	}
	if f.Category != "" && !validExpenseCategory(f.Category) {
		return nil, domain.ValidationError{Field: "category", Msg: "must be one of transport accommodation food activities other"}
	}
	page, err := page.Normalize()
	if err != nil {
		return nil, err
	}
	return repositories.ExpenseRepository{DB: s.db()}.ListByBudget(ctx, f, page)
}

func (s ExpenseService) Get(ctx context.Context, id int64) (models.Expense, error) {
	return repositories.ExpenseRepository{DB: s.db()}.GetByID(ctx, id)
}

func (s ExpenseService) Update(ctx context.Context, id int64, in models.ExpenseUpdate) (models.Expense, error) {
	var expense models.Expense
	err := s.inTx(ctx, func(tx *sqlx.Tx) error {
		repo := repositories.ExpenseRepository{DB: tx}
		current, err := repo.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if err := s.ownBudget(ctx, tx, current.BudgetID); err != nil {
			return err
		}
		in.ApplyTo(&current)
		current.UpdatedAt = utils.NextUpdatedAt(s.now(), current.UpdatedAt)
		if err := repo.Update(ctx, current); err != nil {
			return err
		}
		expense = current
		return nil
	})
	if err != nil {
		return models.Expense{}, err
	}

	utils.LogEvent(s.RequestID, "expense", "update", fmt.Sprintf("id=%d", id))
	return expense, nil
}

func (s ExpenseService) Delete(ctx context.Context, id int64) error {
	err := s.inTx(ctx, func(tx *sqlx.Tx) error {
		repo := repositories.ExpenseRepository{DB: tx}
		expense, err := repo.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if err := s.ownBudget(ctx, tx, expense.BudgetID); err != nil {
			return err
		}
		return repo.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	utils.LogEvent(s.RequestID, "expense", "delete", fmt.Sprintf("id=%d", id))
	return nil
}

func validExpenseCategory(c string) bool {
	switch c {
	case models.ExpenseTransport, models.ExpenseAccommodation, models.ExpenseFood,
		models.ExpenseActivities, models.ExpenseOther:
		return true
	}
	return false
}
