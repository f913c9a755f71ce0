package handlers

import (
	"net/http"

	"globetrotter/internal/domain/models"
	"globetrotter/internal/services"

	"github.com/gin-gonic/gin"
)

func budgetService(c *gin.Context) services.BudgetService {
	return services.BudgetService{Base: base(c)}
}

// GET /budgets?trip_id=
func GetBudgets(c *gin.Context) {
	tripID, ok := queryID(c, "trip_id")
	if !ok {
		return
	}
	page, ok := bindPage(c)
	if !ok {
		return
	}
	budgets, err := budgetService(c).List(c.Request.Context(), tripID, page)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, budgets)
}

// GET /budgets/:id
func GetBudgetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	item, err := budgetService(c).Get(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// GET /budgets/:id/summary
func GetBudgetSummary(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	summary, err := budgetService(c).Summary(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// POST /budgets
func CreateBudget(c *gin.Context) {
	var req models.BudgetCreate
	if !bindJSON(c, &req) {
		return
	}
	item, err := budgetService(c).Create(c.Request.Context(), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// PUT /budgets/:id
func UpdateBudget(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req models.BudgetUpdate
	if !bindJSON(c, &req) {
		return
	}
	item, err := budgetService(c).Update(c.Request.Context(), id, req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// DELETE /budgets/:id
func DeleteBudget(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := budgetService(c).Delete(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
