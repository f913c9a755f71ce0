package handlers

import (
	"net/http"

	"globetrotter/internal/domain/models"
	"globetrotter/internal/services"

	"github.com/gin-gonic/gin"
)

func activityService(c *gin.Context) services.ActivityService {
	return services.ActivityService{Base: base(c)}
}

// GET /activities?stop_id=
func GetActivities(c *gin.Context) {
	stopID, ok := queryID(c, "stop_id")
	if !ok {
		return
	}
	page, ok := bindPage(c)
	if !ok {
		return
	}
	items, err := activityService(c).List(c.Request.Context(), stopID, page)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GET /activities/:id
func GetActivityByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	item, err := activityService(c).Get(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// POST /activities
func CreateActivity(c *gin.Context) {
	var req models.ActivityCreate
	if !bindJSON(c, &req) {
		return
	}
	item, err := activityService(c).Create(c.Request.Context(), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// PUT /activities/:id
func UpdateActivity(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req models.ActivityUpdate
	if !bindJSON(c, &req) {
		return
	}
	item, err := activityService(c).Update(c.Request.Context(), id, req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// DELETE /activities/:id
func DeleteActivity(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := activityService(c).Delete(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
