package models

import (
	"testing"
	"time"
)

func strPtr(s string) *string { return &s }

func TestTripCreateDefaults(t *testing.T) {
	in := TripCreate{Name: "Lisbon", StartDate: time.Now(), EndDate: time.Now().Add(48 * time.Hour)}
	trip := in.ToTrip(3)
	if trip.Status != TripStatusUpcoming {
		t.Fatalf("default status = %q", trip.Status)
	}
	if trip.IsPublic {
		t.Fatalf("trip should default to private")
	}
	if trip.UserID != 3 {
		t.Fatalf("user id not carried, got %d", trip.UserID)
	}
}

func TestTripUpdateOnlyTouchesPresentFields(t *testing.T) {
	start := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	trip := Trip{
		ID:          1,
		Name:        "Old",
		Description: strPtr("keep me"),
		StartDate:   start,
		EndDate:     start.Add(72 * time.Hour),
		Status:      TripStatusUpcoming,
	}

	newStatus := TripStatusCompleted
	TripUpdate{Name: strPtr("New"), Status: &newStatus}.ApplyTo(&trip)

	if trip.Name != "New" || trip.Status != TripStatusCompleted {
		t.Fatalf("present fields not applied: %+v", trip)
	}
	if trip.Description == nil || *trip.Description != "keep me" {
		t.Fatalf("description changed unexpectedly")
	}
	if !trip.StartDate.Equal(start) {
		t.Fatalf("start date changed unexpectedly")
	}
}

func TestStopCreateKeepsZeroOrderIndex(t *testing.T) {
	zero := 0
	stop := StopCreate{TripID: 1, CityID: 2, OrderIndex: &zero}.ToStop()
	if stop.OrderIndex != 0 || stop.TripID != 1 || stop.CityID != 2 {
		t.Fatalf("unexpected stop %+v", stop)
	}
}

func TestBudgetCreateDefaultsAndSummary(t *testing.T) {
	total := 1000.0
	food := 250.5
	b := BudgetCreate{TripID: 9, TotalBudget: &total, FoodCost: &food}.ToBudget()
	if b.Currency != DefaultCurrency {
		t.Fatalf("default currency = %q", b.Currency)
	}
	if b.TransportCost != 0 {
		t.Fatalf("unset cost should default to zero")
	}

	s := SummarizeBudget(b, nil)
	if s.Allocated != 250.5 || s.Remaining != 749.5 || s.OverBudget {
		t.Fatalf("unexpected summary %+v", s)
	}
	if s.Spent != 0 || s.Unspent != 1000 {
		t.Fatalf("no expenses should leave the whole budget unspent, got %+v", s)
	}
}

func TestSummarizeBudgetWithExpenses(t *testing.T) {
	b := Budget{TotalBudget: 500, FoodCost: 100, TransportCost: 200, Currency: "EUR"}
	expenses := []Expense{
		{Category: ExpenseFood, Amount: 40},
		{Category: ExpenseFood, Amount: 75},
		{Category: ExpenseTransport, Amount: 120},
	}

	s := SummarizeBudget(b, expenses)
	if s.Spent != 235 || s.Unspent != 265 {
		t.Fatalf("unexpected spent totals %+v", s)
	}
	food := s.Categories[ExpenseFood]
	if food.Planned != 100 || food.Spent != 115 || food.Remaining != -15 {
		t.Fatalf("unexpected food category %+v", food)
	}
	if other := s.Categories[ExpenseOther]; other.Spent != 0 || other.Planned != 0 {
		t.Fatalf("unexpected other category %+v", other)
	}
	if s.OverBudget {
		t.Fatalf("spent below total should not be over budget")
	}

	s = SummarizeBudget(b, append(expenses, Expense{Category: ExpenseOther, Amount: 300}))
	if !s.OverBudget {
		t.Fatalf("spent above total should be over budget, got %+v", s)
	}
}

func TestExpenseUpdateMerge(t *testing.T) {
	e := Expense{Category: ExpenseFood, Amount: 12}
	amount := 30.0
	ExpenseUpdate{Amount: &amount}.ApplyTo(&e)
	if e.Amount != 30 || e.Category != ExpenseFood {
		t.Fatalf("unexpected merge result %+v", e)
	}
}

func TestBudgetUpdateMerge(t *testing.T) {
	b := Budget{TotalBudget: 100, FoodCost: 20, Currency: "USD"}
	eur := "EUR"
	BudgetUpdate{Currency: &eur}.ApplyTo(&b)
	if b.Currency != "EUR" || b.TotalBudget != 100 || b.FoodCost != 20 {
		t.Fatalf("unexpected merge result %+v", b)
	}
}

func TestCityAndActivityMerge(t *testing.T) {
	c := City{Name: "Paris", Country: "France", Region: strPtr("Europe")}
	CityUpdate{Popularity: strPtr("Very High")}.ApplyTo(&c)
	if c.Name != "Paris" || *c.Region != "Europe" || *c.Popularity != "Very High" {
		t.Fatalf("unexpected city %+v", c)
	}

	a := Activity{Name: "Louvre", Category: strPtr("Culture")}
	rating := 4.5
	ActivityUpdate{Rating: &rating}.ApplyTo(&a)
	if a.Name != "Louvre" || *a.Category != "Culture" || *a.Rating != 4.5 {
		t.Fatalf("unexpected activity %+v", a)
	}
}

func TestUserUpdateMerge(t *testing.T) {
	u := User{Email: "a@b.co", Username: "ann", FirstName: strPtr("Ann")}
	UserUpdate{Country: strPtr("PT")}.ApplyTo(&u)
	if *u.FirstName != "Ann" || *u.Country != "PT" || u.Email != "a@b.co" {
		t.Fatalf("unexpected user %+v", u)
	}
}

func TestUserUpdateIdentityFields(t *testing.T) {
	u := User{Email: "a@b.co", Username: "ann", IsActive: true}
	off := false
	UserUpdate{Email: strPtr("ann@new.co"), Username: strPtr("annie"), IsActive: &off}.ApplyTo(&u)
	if u.Email != "ann@new.co" || u.Username != "annie" || u.IsActive {
		t.Fatalf("identity fields not merged: %+v", u)
	}
}
