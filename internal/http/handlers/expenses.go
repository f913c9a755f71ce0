package handlers

import (
	"net/http"
	"strings"

	"globetrotter/internal/domain/models"
	"globetrotter/internal/services"

	"github.com/gin-gonic/gin"
)

func expenseService(c *gin.Context) services.ExpenseService {
	return services.ExpenseService{Base: base(c)}
}

// GET /expenses?budget_id=&category=
func GetExpenses(c *gin.Context) {
	budgetID, ok := queryID(c, "budget_id")
	if !ok {
		return
	}
	page, ok := bindPage(c)
	if !ok {
		return
	}
	filter := models.ExpenseFilter{BudgetID: budgetID, Category: strings.TrimSpace(c.Query("category"))}
	items, err := expenseService(c).List(c.Request.Context(), filter, page)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GET /expenses/:id
func GetExpenseByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	item, err := expenseService(c).Get(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// POST /expenses
func CreateExpense(c *gin.Context) {
	var req models.ExpenseCreate
	if !bindJSON(c, &req) {
		return
	}
	item, err := expenseService(c).Create(c.Request.Context(), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// PUT /expenses/:id
func UpdateExpense(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req models.ExpenseUpdate
	if !bindJSON(c, &req) {
		return
	}
	item, err := expenseService(c).Update(c.Request.Context(), id, req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// DELETE /expenses/:id
func DeleteExpense(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := expenseService(c).Delete(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
