package services

import (
	"context"
	"testing"
	"time"

	"globetrotter/internal/domain"
	"globetrotter/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func callerBase(base Base, callerID int64) Base {
	base.CallerID = callerID
	return base
}

func TestAuthorizeTrip(t *testing.T) {
	private := models.Trip{ID: 3, UserID: 1}
	public := models.Trip{ID: 4, UserID: 1, IsPublic: true}

	cases := []struct {
		caller    int64
		trip      models.Trip
		write     bool
		forbidden bool
	}{
		{0, private, true, false},
		{1, private, true, false},
		{2, private, false, true},
		{2, private, true, true},
		{2, public, false, false},
		{2, public, true, true},
	}
	for _, tc := range cases {
		err := Base{CallerID: tc.caller}.authorizeTrip(tc.trip, tc.write)
		if domain.IsForbidden(err) != tc.forbidden {
			t.Fatalf("caller %d trip %d write=%v: got %v", tc.caller, tc.trip.ID, tc.write, err)
		}
	}
}

func TestTripDeleteByOtherUserTouchesNothing(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM trips WHERE id = \\? FOR UPDATE").WithArgs(int64(3)).WillReturnRows(tripRow(3, 1, t0))
	mock.ExpectRollback()

	err := TripService{Base: callerBase(fixedBase(db, t0), 2)}.Delete(context.Background(), 3)
	if !domain.IsForbidden(err) {
		t.Fatalf("expected forbidden, got %v", err)
	}
	mustMeet(t, mock)
}

func TestTripGetPrivateByOtherUserIsForbidden(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery("SELECT .* FROM trips WHERE id = \\?").WithArgs(int64(3)).WillReturnRows(tripRow(3, 1, t0))

	_, err := TripService{Base: callerBase(fixedBase(db, t0), 2)}.Get(context.Background(), 3)
	if !domain.IsForbidden(err) {
		t.Fatalf("expected forbidden, got %v", err)
	}
	mustMeet(t, mock)
}

func TestTripUpdateStatusByOwner(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM trips WHERE id = \\? FOR UPDATE").WithArgs(int64(3)).WillReturnRows(tripRow(3, 1, t0))
	mock.ExpectExec("UPDATE trips SET").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	trip, err := TripService{Base: callerBase(fixedBase(db, t0), 1)}.UpdateStatus(context.Background(), 3,
		models.TripStatusUpdate{Status: models.TripStatusCompleted})
	if err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}
	if trip.Status != models.TripStatusCompleted || trip.Name != "Lisbon" {
		t.Fatalf("unexpected trip %+v", trip)
	}
	mustMeet(t, mock)
}

func TestStopCreateOnOtherUsersTripIsForbidden(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM trips WHERE id = \\?").WithArgs(int64(3)).WillReturnRows(tripRow(3, 1, t0))
	mock.ExpectRollback()

	order := 0
	_, err := StopService{Base: callerBase(fixedBase(db, t0), 2)}.Create(context.Background(), models.StopCreate{
		TripID:     3,
		CityID:     2,
		OrderIndex: &order,
		StartDate:  time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, 4, 3, 0, 0, 0, 0, time.UTC),
	})
	if !domain.IsForbidden(err) {
		t.Fatalf("expected forbidden, got %v", err)
	}
	mustMeet(t, mock)
}

func TestActivityDeleteChecksTripOwner(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM activities WHERE id = \\? FOR UPDATE").WithArgs(int64(21)).
		WillReturnRows(activityRow(21, 10, t0))
	mock.ExpectQuery("SELECT .* FROM stops WHERE id = \\?").WithArgs(int64(10)).WillReturnRows(stopRow(10, 3))
	mock.ExpectQuery("SELECT .* FROM trips WHERE id = \\?").WithArgs(int64(3)).WillReturnRows(tripRow(3, 1, t0))
	mock.ExpectRollback()

	err := ActivityService{Base: callerBase(fixedBase(db, t0), 2)}.Delete(context.Background(), 21)
	if !domain.IsForbidden(err) {
		t.Fatalf("expected forbidden, got %v", err)
	}
	mustMeet(t, mock)
}

func TestBudgetUpdateByOwnerPasses(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM budgets WHERE id = \\? FOR UPDATE").WithArgs(int64(8)).WillReturnRows(budgetRow(8, 3))
	mock.ExpectQuery("SELECT .* FROM trips WHERE id = \\?").WithArgs(int64(3)).WillReturnRows(tripRow(3, 1, t0))
	mock.ExpectExec("UPDATE budgets SET").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	total := 900.0
	b, err := BudgetService{Base: callerBase(fixedBase(db, t0), 1)}.Update(context.Background(), 8, models.BudgetUpdate{TotalBudget: &total})
	if err != nil || b.TotalBudget != 900 {
		t.Fatalf("owner update failed: %+v %v", b, err)
	}
	mustMeet(t, mock)
}

func TestExpenseCreateOnOtherUsersBudgetIsForbidden(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM budgets WHERE id = \\?").WithArgs(int64(8)).WillReturnRows(budgetRow(8, 3))
	mock.ExpectQuery("SELECT .* FROM trips WHERE id = \\?").WithArgs(int64(3)).WillReturnRows(tripRow(3, 1, t0))
	mock.ExpectRollback()

	amount := 5.0
	_, err := ExpenseService{Base: callerBase(fixedBase(db, t0), 2)}.Create(context.Background(), models.ExpenseCreate{
		BudgetID: 8, Category: models.ExpenseOther, Amount: &amount, ExpenseDate: t0,
	})
	if !domain.IsForbidden(err) {
		t.Fatalf("expected forbidden, got %v", err)
	}
	mustMeet(t, mock)
}
