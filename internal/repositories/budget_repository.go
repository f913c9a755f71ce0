package repositories

import (
	"context"

	"globetrotter/internal/domain"
	"globetrotter/internal/domain/models"
)

const budgetColumns = `id, trip_id, total_budget, transport_cost, accommodation_cost, food_cost, activities_cost,
	other_cost, currency, notes, created_at, updated_at`

type BudgetRepository struct {
	DB Querier
}

func (r BudgetRepository) Create(ctx context.Context, b *models.Budget) error {
	id, err := insert(ctx, r.DB, "Budget", `
		INSERT INTO budgets (trip_id, total_budget, transport_cost, accommodation_cost, food_cost, activities_cost,
		                     other_cost, currency, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, b.TripID, b.TotalBudget, b.TransportCost, b.AccommodationCost, b.FoodCost, b.ActivitiesCost,
		b.OtherCost, b.Currency, b.Notes, b.CreatedAt, b.UpdatedAt)
	if err != nil {
		return err
	}
	b.ID = id
	return nil
}

func (r BudgetRepository) GetByID(ctx context.Context, id int64) (models.Budget, error) {
	return getOne[models.Budget](ctx, r.DB, "Budget", id, `SELECT `+budgetColumns+` FROM budgets WHERE id = ?`, id)
}

func (r BudgetRepository) GetByIDForUpdate(ctx context.Context, id int64) (models.Budget, error) {
	return getOne[models.Budget](ctx, r.DB, "Budget", id, `SELECT `+budgetColumns+` FROM budgets WHERE id = ? FOR UPDATE`, id)
}

// GetByTrip returns the budget of a trip; NotFound when the trip has none.
func (r BudgetRepository) GetByTrip(ctx context.Context, tripID int64) (models.Budget, error) {
	return getOne[models.Budget](ctx, r.DB, "Budget", 0, `SELECT `+budgetColumns+` FROM budgets WHERE trip_id = ?`, tripID)
}

func (r BudgetRepository) ListByTrip(ctx context.Context, tripID int64, page domain.Page) ([]models.Budget, error) {
	return selectMany[models.Budget](ctx, r.DB, "Budget",
		`SELECT `+budgetColumns+` FROM budgets WHERE trip_id = ? ORDER BY id ASC LIMIT ? OFFSET ?`,
		tripID, page.Limit, page.Skip)
}

func (r BudgetRepository) Update(ctx context.Context, b models.Budget) error {
	return execOne(ctx, r.DB, "Budget", b.ID, `
		UPDATE budgets SET
		  total_budget = ?, transport_cost = ?, accommodation_cost = ?, food_cost = ?, activities_cost = ?,
		  other_cost = ?, currency = ?, notes = ?, updated_at = ?
		WHERE id = ?
	`, b.TotalBudget, b.TransportCost, b.AccommodationCost, b.FoodCost, b.ActivitiesCost,
		b.OtherCost, b.Currency, b.Notes, b.UpdatedAt, b.ID)
}

func (r BudgetRepository) Delete(ctx context.Context, id int64) error {
	return execOne(ctx, r.DB, "Budget", id, `DELETE FROM budgets WHERE id = ?`, id)
}

func (r BudgetRepository) DeleteByTrip(ctx context.Context, tripID int64) (int64, error) {
	return execCount(ctx, r.DB, "Budget", `DELETE FROM budgets WHERE trip_id = ?`, tripID)
}
