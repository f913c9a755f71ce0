package services

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"globetrotter/internal/domain"
	"globetrotter/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func sampleItinerary() models.Itinerary {
	day := func(d int) time.Time { return time.Date(2025, 4, d, 0, 0, 0, 0, time.UTC) }
	cat, cost := "Culture", "$$"
	at := time.Date(2025, 4, 2, 10, 0, 0, 0, time.UTC)

	trip := models.Trip{ID: 3, UserID: 1, Name: "Iberia: Lisbon/Porto", StartDate: day(1), EndDate: day(8), Status: "upcoming"}
	stops := []models.Stop{
		{ID: 10, TripID: 3, CityID: 2, OrderIndex: 0, StartDate: day(1), EndDate: day(4)},
		{ID: 11, TripID: 3, CityID: 5, OrderIndex: 1, StartDate: day(4), EndDate: day(8)},
	}
	cities := []models.City{{ID: 2, Name: "Lisbon", Country: "Portugal"}}
	activities := []models.Activity{
		{ID: 100, StopID: 10, Name: "Tram 28", Category: &cat, Cost: &cost, ScheduledTime: &at},
		{ID: 101, StopID: 10, Name: "Belem"},
	}
	budget := &models.Budget{ID: 8, TripID: 3, TotalBudget: 1000, TransportCost: 300, FoodCost: 250, Currency: "EUR"}
	expenses := []models.Expense{
		{ID: 1, BudgetID: 8, Category: models.ExpenseTransport, Amount: 120},
		{ID: 2, BudgetID: 8, Category: models.ExpenseFood, Amount: 35.5},
	}
	return assembleItinerary(trip, stops, cities, activities, budget, expenses)
}

func TestAssembleItinerary(t *testing.T) {
	it := sampleItinerary()

	if len(it.Stops) != 2 {
		t.Fatalf("expected 2 stops, got %d", len(it.Stops))
	}
	first, second := it.Stops[0], it.Stops[1]
	if first.City == nil || first.City.Name != "Lisbon" || len(first.Activities) != 2 {
		t.Fatalf("first stop not assembled: %+v", first)
	}
	if second.City != nil {
		t.Fatalf("unknown city should stay nil, got %+v", second.City)
	}
	if second.Activities == nil || len(second.Activities) != 0 {
		t.Fatalf("stop without activities should carry an empty list")
	}
	if it.Summary == nil || it.Summary.Allocated != 550 || it.Summary.Remaining != 450 || it.Summary.OverBudget {
		t.Fatalf("unexpected summary %+v", it.Summary)
	}
	if it.Summary.Spent != 155.5 || it.Summary.Categories[models.ExpenseTransport].Remaining != 180 {
		t.Fatalf("expenses not reflected in summary %+v", it.Summary)
	}
}

func TestItineraryRenderPDF(t *testing.T) {
	svc := ItineraryService{Loader: func(context.Context, int64) (models.Itinerary, error) {
		return sampleItinerary(), nil
	}}

	pdf, filename, err := svc.RenderPDF(context.Background(), 3)
	if err != nil {
		t.Fatalf("RenderPDF returned error: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("output is not a PDF")
	}
	if filename != "ITINERARY_3_Iberia__Lisbon_Porto.pdf" {
		t.Fatalf("unexpected filename %q", filename)
	}
}

func TestItineraryRenderPDFWithoutStops(t *testing.T) {
	svc := ItineraryService{Loader: func(_ context.Context, id int64) (models.Itinerary, error) {
		return models.Itinerary{Trip: models.Trip{ID: id, Name: "  "}}, nil
	}}

	pdf, filename, err := svc.RenderPDF(context.Background(), 4)
	if err != nil || len(pdf) == 0 {
		t.Fatalf("RenderPDF failed: %v", err)
	}
	if !strings.HasSuffix(filename, "_NA.pdf") {
		t.Fatalf("blank trip name should fall back to NA, got %q", filename)
	}
}

func TestItineraryMissingTrip(t *testing.T) {
	svc := ItineraryService{Loader: func(_ context.Context, id int64) (models.Itinerary, error) {
		return models.Itinerary{}, domain.NotFoundError{Resource: "Trip", ID: id}
	}}
	if _, _, err := svc.RenderPDF(context.Background(), 77); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestItineraryBuildWithoutStopsOrBudget(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM trips WHERE id = \\?").WithArgs(int64(3)).WillReturnRows(tripRow(3, 1, t0))
	mock.ExpectQuery("SELECT .* FROM stops WHERE trip_id = \\? ORDER BY order_index").WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(stopCols))
	mock.ExpectQuery("SELECT .* FROM budgets WHERE trip_id = \\?").WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(budgetCols))
	mock.ExpectCommit()

	it, err := ItineraryService{Base: fixedBase(db, t0)}.Build(context.Background(), 3)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if it.Trip.ID != 3 || it.Stops == nil || len(it.Stops) != 0 {
		t.Fatalf("unexpected itinerary %+v", it)
	}
	if it.Budget != nil || it.Summary != nil {
		t.Fatalf("trip without budget should have no summary")
	}
	mustMeet(t, mock)
}

func TestItineraryBuildLoadsBudgetExpenses(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM trips WHERE id = \\?").WithArgs(int64(3)).WillReturnRows(tripRow(3, 1, t0))
	mock.ExpectQuery("SELECT .* FROM stops WHERE trip_id = \\? ORDER BY order_index").WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(stopCols))
	mock.ExpectQuery("SELECT .* FROM budgets WHERE trip_id = \\?").WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(budgetCols).AddRow(int64(8), int64(3), 400.0, 100.0, 0.0, 50.0, 0.0, 0.0, "EUR", nil, t0, t0))
	mock.ExpectQuery("SELECT .* FROM expenses WHERE budget_id = \\?").WithArgs(int64(8)).
		WillReturnRows(sqlmock.NewRows(expenseCols).
			AddRow(int64(1), int64(8), "food", 80.0, nil, t0, t0, t0).
			AddRow(int64(2), int64(8), "transport", 30.0, nil, t0, t0, t0))
	mock.ExpectCommit()

	it, err := ItineraryService{Base: fixedBase(db, t0)}.Build(context.Background(), 3)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if it.Summary == nil || it.Summary.Spent != 110 || it.Summary.Unspent != 290 {
		t.Fatalf("unexpected summary %+v", it.Summary)
	}
	if food := it.Summary.Categories["food"]; food.Remaining != -30 {
		t.Fatalf("food overspend not reported: %+v", food)
	}
	mustMeet(t, mock)
}

func TestItineraryOfPrivateTripIsForbidden(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM trips WHERE id = \\?").WithArgs(int64(3)).WillReturnRows(tripRow(3, 1, t0))
	mock.ExpectRollback()

	base := fixedBase(db, t0)
	base.CallerID = 2
	_, err := ItineraryService{Base: base}.Build(context.Background(), 3)
	if !domain.IsForbidden(err) {
		t.Fatalf("expected forbidden, got %v", err)
	}
	mustMeet(t, mock)
}
