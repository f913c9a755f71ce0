package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"globetrotter/internal/domain"
	"globetrotter/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func budgetRow(id, tripID int64) *sqlmock.Rows {
	return sqlmock.NewRows(budgetCols).AddRow(id, tripID, 500.0, 200.0, 0.0, 100.0, 0.0, 0.0, "EUR", nil, t0, t0)
}

func TestExpenseCreateUnknownBudgetPersistsNothing(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM budgets WHERE id = \\?").WithArgs(int64(8)).WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	amount := 12.5
	_, err := ExpenseService{Base: fixedBase(db, t0)}.Create(context.Background(), models.ExpenseCreate{
		BudgetID: 8, Category: models.ExpenseFood, Amount: &amount, ExpenseDate: t0,
	})
	if !domain.IsNotFound(err) || err.Error() != "Budget 8 not found" {
		t.Fatalf("expected Budget 8 not found, got %v", err)
	}
	mustMeet(t, mock)
}

func TestExpenseCreate(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM budgets WHERE id = \\?").WithArgs(int64(8)).WillReturnRows(budgetRow(8, 3))
	mock.ExpectExec("INSERT INTO expenses").
		WithArgs(int64(8), "food", 12.5, sqlmock.AnyArg(), t0, t0, t0).
		WillReturnResult(sqlmock.NewResult(40, 1))
	mock.ExpectCommit()

	amount := 12.5
	e, err := ExpenseService{Base: fixedBase(db, t0)}.Create(context.Background(), models.ExpenseCreate{
		BudgetID: 8, Category: models.ExpenseFood, Amount: &amount, ExpenseDate: t0,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if e.ID != 40 || e.Amount != 12.5 || !e.CreatedAt.Equal(t0) {
		t.Fatalf("unexpected expense %+v", e)
	}
	mustMeet(t, mock)
}

func TestExpenseListFiltersCategory(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery("SELECT .* FROM expenses WHERE budget_id = \\? AND category = \\? ORDER BY expense_date DESC, id DESC LIMIT \\? OFFSET \\?").
		WithArgs(int64(8), "food", 100, 0).
		WillReturnRows(sqlmock.NewRows(expenseCols).AddRow(int64(40), int64(8), "food", 12.5, nil, t0, t0, t0))

	out, err := ExpenseService{Base: fixedBase(db, t0)}.List(context.Background(),
		models.ExpenseFilter{BudgetID: 8, Category: "food"}, domain.Page{})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(out) != 1 || out[0].Category != "food" {
		t.Fatalf("unexpected expenses %+v", out)
	}
	mustMeet(t, mock)
}

func TestExpenseListRejectsUnknownCategory(t *testing.T) {
	db, mock := newMock(t)
	_, err := ExpenseService{Base: fixedBase(db, t0)}.List(context.Background(),
		models.ExpenseFilter{BudgetID: 8, Category: "souvenirs"}, domain.Page{})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	mustMeet(t, mock)
}

func TestExpenseUpdateAdvancesUpdatedAt(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM expenses WHERE id = \\? FOR UPDATE").WithArgs(int64(40)).
		WillReturnRows(sqlmock.NewRows(expenseCols).AddRow(int64(40), int64(8), "food", 12.5, nil, t0, t0, t0))
	mock.ExpectQuery("SELECT .* FROM budgets WHERE id = \\?").WithArgs(int64(8)).WillReturnRows(budgetRow(8, 3))
	mock.ExpectExec("UPDATE expenses SET").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	amount := 20.0
	e, err := ExpenseService{Base: fixedBase(db, t0)}.Update(context.Background(), 40, models.ExpenseUpdate{Amount: &amount})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if e.Amount != 20 || e.Category != "food" || !e.UpdatedAt.After(t0) {
		t.Fatalf("unexpected expense %+v", e)
	}
	mustMeet(t, mock)
}

func TestBudgetSummaryUsesExpenses(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery("SELECT .* FROM budgets WHERE id = \\?").WithArgs(int64(8)).WillReturnRows(budgetRow(8, 3))
	mock.ExpectQuery("SELECT .* FROM expenses WHERE budget_id = \\? ORDER BY expense_date ASC").WithArgs(int64(8)).
		WillReturnRows(sqlmock.NewRows(expenseCols).
			AddRow(int64(40), int64(8), "transport", 250.0, nil, t0, t0, t0).
			AddRow(int64(41), int64(8), "food", 20.0, nil, t0.Add(time.Hour), t0, t0))

	s, err := BudgetService{Base: fixedBase(db, t0)}.Summary(context.Background(), 8)
	if err != nil {
		t.Fatalf("Summary returned error: %v", err)
	}
	if s.Spent != 270 || s.Unspent != 230 || s.OverBudget {
		t.Fatalf("unexpected summary %+v", s)
	}
	if tr := s.Categories[models.ExpenseTransport]; tr.Planned != 200 || tr.Remaining != -50 {
		t.Fatalf("unexpected transport category %+v", tr)
	}
	mustMeet(t, mock)
}
