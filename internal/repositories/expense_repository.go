package repositories

import (
	"context"
	"strings"

	"globetrotter/internal/domain"
	"globetrotter/internal/domain/models"
)

const expenseColumns = `id, budget_id, category, amount, description, expense_date, created_at, updated_at`

type ExpenseRepository struct {
	DB Querier
}

func (r ExpenseRepository) Create(ctx context.Context, e *models.Expense) error {
	id, err := insert(ctx, r.DB, "Expense", `
		INSERT INTO expenses (budget_id, category, amount, description, expense_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, e.BudgetID, e.Category, e.Amount, e.Description, e.ExpenseDate, e.CreatedAt, e.UpdatedAt)
	if err != nil {
		return err
	}
	e.ID = id
	return nil
}

func (r ExpenseRepository) GetByID(ctx context.Context, id int64) (models.Expense, error) {
	return getOne[models.Expense](ctx, r.DB, "Expense", id, `SELECT `+expenseColumns+` FROM expenses WHERE id = ?`, id)
}

func (r ExpenseRepository) GetByIDForUpdate(ctx context.Context, id int64) (models.Expense, error) {
	return getOne[models.Expense](ctx, r.DB, "Expense", id, `SELECT `+expenseColumns+` FROM expenses WHERE id = ? FOR UPDATE`, id)
}

// ListByBudget pages a budget's expenses, newest first, optionally for one category.
func (r ExpenseRepository) ListByBudget(ctx context.Context, f models.ExpenseFilter, page domain.Page) ([]models.Expense, error) {
	where := []string{"budget_id = ?"}
	args := []any{f.BudgetID}
	if category := strings.TrimSpace(f.Category); category != "" {
		where = append(where, "category = ?")
		args = append(args, category)
	}
	args = append(args, page.Limit, page.Skip)

	return selectMany[models.Expense](ctx, r.DB, "Expense",
		`SELECT `+expenseColumns+` FROM expenses WHERE `+strings.Join(where, " AND ")+
			` ORDER BY expense_date DESC, id DESC LIMIT ? OFFSET ?`,
		args...)
}

// ListAllByBudget loads every expense of a budget for summaries.
func (r ExpenseRepository) ListAllByBudget(ctx context.Context, budgetID int64) ([]models.Expense, error) {
	return selectMany[models.Expense](ctx, r.DB, "Expense",
		`SELECT `+expenseColumns+` FROM expenses WHERE budget_id = ? ORDER BY expense_date ASC, id ASC`, budgetID)
}

func (r ExpenseRepository) Update(ctx context.Context, e models.Expense) error {
	return execOne(ctx, r.DB, "Expense", e.ID, `
		UPDATE expenses SET
		  category = ?, amount = ?, description = ?, expense_date = ?, updated_at = ?
		WHERE id = ?
	`, e.Category, e.Amount, e.Description, e.ExpenseDate, e.UpdatedAt, e.ID)
}

func (r ExpenseRepository) Delete(ctx context.Context, id int64) error {
	return execOne(ctx, r.DB, "Expense", id, `DELETE FROM expenses WHERE id = ?`, id)
}

func (r ExpenseRepository) DeleteByBudget(ctx context.Context, budgetID int64) (int64, error) {
	return execCount(ctx, r.DB, "Expense", `DELETE FROM expenses WHERE budget_id = ?`, budgetID)
}

func (r ExpenseRepository) DeleteByTrip(ctx context.Context, tripID int64) (int64, error) {
	return execCount(ctx, r.DB, "Expense", `
		DELETE e FROM expenses e
		JOIN budgets b ON b.id = e.budget_id
		WHERE b.trip_id = ?
	`, tripID)
}
