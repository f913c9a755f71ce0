package models

import "time"

const (
	ExpenseTransport     = "transport"
	ExpenseAccommodation = "accommodation"
	ExpenseFood          = "food"
	ExpenseActivities    = "activities"
	ExpenseOther         = "other"
)

// Expense is money actually spent against one category of a budget.
type Expense struct {
	ID          int64     `json:"id" db:"id"`
	BudgetID    int64     `json:"budget_id" db:"budget_id"`
	Category    string    `json:"category" db:"category"`
	Amount      float64   `json:"amount" db:"amount"`
	Description *string   `json:"description" db:"description"`
	ExpenseDate time.Time `json:"expense_date" db:"expense_date"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

type ExpenseCreate struct {
	BudgetID    int64     `json:"budget_id" binding:"required,gt=0"`
	Category    string    `json:"category" binding:"required,oneof=transport accommodation food activities other"`
	Amount      *float64  `json:"amount" binding:"required,gte=0"`
	Description *string   `json:"description"`
	ExpenseDate time.Time `json:"expense_date" binding:"required"`
}

func (in ExpenseCreate) ToExpense() Expense {
	return Expense{
		BudgetID:    in.BudgetID,
		Category:    in.Category,
		Amount:      floatOr(in.Amount),
		Description: in.Description,
		ExpenseDate: in.ExpenseDate,
	}
}

type ExpenseUpdate struct {
	Category    *string    `json:"category" binding:"omitempty,oneof=transport accommodation food activities other"`
	Amount      *float64   `json:"amount" binding:"omitempty,gte=0"`
	Description *string    `json:"description"`
	ExpenseDate *time.Time `json:"expense_date"`
}

func (u ExpenseUpdate) ApplyTo(dst *Expense) {
	if u.Category != nil {
		dst.Category = *u.Category
	}
	if u.Amount != nil {
		dst.Amount = *u.Amount
	}
	if u.Description != nil {
		dst.Description = u.Description
	}
	if u.ExpenseDate != nil {
		dst.ExpenseDate = *u.ExpenseDate
	}
}

// ExpenseFilter narrows a budget's expense listing.
type ExpenseFilter struct {
	BudgetID int64  `form:"budget_id"`
	Category string `form:"category"`
}
