package models

// Itinerary is the read-only aggregate of a trip, its ordered stops and its budget.
type Itinerary struct {
	Trip    Trip            `json:"trip"`
	Stops   []ItineraryStop `json:"stops"`
	Budget  *Budget         `json:"budget"`
	Summary *BudgetSummary  `json:"budget_summary,omitempty"`
}

type ItineraryStop struct {
	Stop
	City       *City      `json:"city"`
	Activities []Activity `json:"activities"`
}

// CategorySummary compares one budget category's planned cost with what was spent.
type CategorySummary struct {
	Planned   float64 `json:"planned"`
	Spent     float64 `json:"spent"`
	Remaining float64 `json:"remaining"`
}

type BudgetSummary struct {
	Currency   string                     `json:"currency"`
	Total      float64                    `json:"total"`
	Allocated  float64                    `json:"allocated"`
	Remaining  float64                    `json:"remaining"`
	OverBudget bool                       `json:"over_budget"`
	Spent      float64                    `json:"spent"`
	Unspent    float64                    `json:"unspent"`
	Categories map[string]CategorySummary `json:"categories"`
}

// SummarizeBudget sets the plan (total vs. allocated categories) against recorded expenses.
func SummarizeBudget(b Budget, expenses []Expense) BudgetSummary {
	planned := map[string]float64{
		ExpenseTransport:     b.TransportCost,
		ExpenseAccommodation: b.AccommodationCost,
		ExpenseFood:          b.FoodCost,
		ExpenseActivities:    b.ActivitiesCost,
		ExpenseOther:         b.OtherCost,
	}
	spent := map[string]float64{}
	var totalSpent float64
	for _, e := range expenses {
		spent[e.Category] += e.Amount
		totalSpent += e.Amount
	}

	categories := make(map[string]CategorySummary, len(planned))
	for cat, p := range planned {
		categories[cat] = CategorySummary{Planned: p, Spent: spent[cat], Remaining: p - spent[cat]}
	}

	allocated := b.Allocated()
	return BudgetSummary{
		Currency:   b.Currency,
		Total:      b.TotalBudget,
		Allocated:  allocated,
		Remaining:  b.TotalBudget - allocated,
		OverBudget: allocated > b.TotalBudget || totalSpent > b.TotalBudget,
		Spent:      totalSpent,
		Unspent:    b.TotalBudget - totalSpent,
		Categories: categories,
	}
}
