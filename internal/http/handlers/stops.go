package handlers

import (
	"net/http"

	"globetrotter/internal/domain/models"
	"globetrotter/internal/services"

	"github.com/gin-gonic/gin"
)

func stopService(c *gin.Context) services.StopService {
	return services.StopService{Base: base(c)}
}

// GET /stops?trip_id=
func GetStops(c *gin.Context) {
	tripID, ok := queryID(c, "trip_id")
	if !ok {
		return
	}
	page, ok := bindPage(c)
	if !ok {
		return
	}
	stops, err := stopService(c).List(c.Request.Context(), tripID, page)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, stops)
}

// GET /stops/:id
func GetStopByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	item, err := stopService(c).Get(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// POST /stops
func CreateStop(c *gin.Context) {
	var req models.StopCreate
	if !bindJSON(c, &req) {
		return
	}
	item, err := stopService(c).Create(c.Request.Context(), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// PUT /stops/:id
func UpdateStop(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req models.StopUpdate
	if !bindJSON(c, &req) {
		return
	}
	item, err := stopService(c).Update(c.Request.Context(), id, req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// DELETE /stops/:id
func DeleteStop(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := stopService(c).Delete(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
