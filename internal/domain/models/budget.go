package models

import "time"

const DefaultCurrency = "USD"

type Budget struct {
	ID                int64     `json:"id" db:"id"`
	TripID            int64     `json:"trip_id" db:"trip_id"`
	TotalBudget       float64   `json:"total_budget" db:"total_budget"`
	TransportCost     float64   `json:"transport_cost" db:"transport_cost"`
	AccommodationCost float64   `json:"accommodation_cost" db:"accommodation_cost"`
	FoodCost          float64   `json:"food_cost" db:"food_cost"`
	ActivitiesCost    float64   `json:"activities_cost" db:"activities_cost"`
	OtherCost         float64   `json:"other_cost" db:"other_cost"`
	Currency          string    `json:"currency" db:"currency"`
	Notes             *string   `json:"notes" db:"notes"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time `json:"updated_at" db:"updated_at"`
}

// Allocated is the sum of the per-category costs.
func (b Budget) Allocated() float64 {
	return b.TransportCost + b.AccommodationCost + b.FoodCost + b.ActivitiesCost + b.OtherCost
}

type BudgetCreate struct {
	TripID            int64    `json:"trip_id" binding:"required,gt=0"`
	TotalBudget       *float64 `json:"total_budget" binding:"omitempty,gte=0"`
	TransportCost     *float64 `json:"transport_cost" binding:"omitempty,gte=0"`
	AccommodationCost *float64 `json:"accommodation_cost" binding:"omitempty,gte=0"`
	FoodCost          *float64 `json:"food_cost" binding:"omitempty,gte=0"`
	ActivitiesCost    *float64 `json:"activities_cost" binding:"omitempty,gte=0"`
	OtherCost         *float64 `json:"other_cost" binding:"omitempty,gte=0"`
	Currency          *string  `json:"currency" binding:"omitempty,len=3,alpha"`
	Notes             *string  `json:"notes"`
}

// ToBudget applies the create defaults: zero costs, USD.
func (in BudgetCreate) ToBudget() Budget {
	b := Budget{
		TripID:            in.TripID,
		TotalBudget:       floatOr(in.TotalBudget),
		TransportCost:     floatOr(in.TransportCost),
		AccommodationCost: floatOr(in.AccommodationCost),
		FoodCost:          floatOr(in.FoodCost),
		ActivitiesCost:    floatOr(in.ActivitiesCost),
		OtherCost:         floatOr(in.OtherCost),
		Currency:          DefaultCurrency,
		Notes:             in.Notes,
	}
	if in.Currency != nil {
		b.Currency = *in.Currency
	}
	return b
}

type BudgetUpdate struct {
	TotalBudget       *float64 `json:"total_budget" binding:"omitempty,gte=0"`
	TransportCost     *float64 `json:"transport_cost" binding:"omitempty,gte=0"`
	AccommodationCost *float64 `json:"accommodation_cost" binding:"omitempty,gte=0"`
	FoodCost          *float64 `json:"food_cost" binding:"omitempty,gte=0"`
	ActivitiesCost    *float64 `json:"activities_cost" binding:"omitempty,gte=0"`
	OtherCost         *float64 `json:"other_cost" binding:"omitempty,gte=0"`
	Currency          *string  `json:"currency" binding:"omitempty,len=3,alpha"`
	Notes             *string  `json:"notes"`
}

func (u BudgetUpdate) ApplyTo(dst *Budget) {
	if u.TotalBudget != nil {
		dst.TotalBudget = *u.TotalBudget
	}
	if u.TransportCost != nil {
		dst.TransportCost = *u.TransportCost
	}
	if u.AccommodationCost != nil {
		dst.AccommodationCost = *u.AccommodationCost
	}
	if u.FoodCost != nil {
		dst.FoodCost = *u.FoodCost
	}
	if u.ActivitiesCost != nil {
		dst.ActivitiesCost = *u.ActivitiesCost
	}
	if u.OtherCost != nil {
		dst.OtherCost = *u.OtherCost
	}
	if u.Currency != nil {
		dst.Currency = *u.Currency
	}
	if u.Notes != nil {
		dst.Notes = u.Notes
	}
}

func floatOr(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
