package handlers

import (
	"net/http"

	"globetrotter/internal/domain"
	"globetrotter/internal/domain/models"
	"globetrotter/internal/services"

	"github.com/gin-gonic/gin"
)

func cityService(c *gin.Context) services.CityService {
	return services.CityService{Base: base(c)}
}

// GET /cities?region=&search=
func GetCities(c *gin.Context) {
	page, ok := bindPage(c)
	if !ok {
		return
	}
	var filter models.CityFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		RespondDomainError(c, domain.ValidationError{Msg: "invalid city filter", Err: err})
		return
	}
	cities, err := cityService(c).List(c.Request.Context(), filter, page)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, cities)
}

// GET /cities/:id
func GetCityByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	city, err := cityService(c).Get(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, city)
}

// POST /cities
func CreateCity(c *gin.Context) {
	var req models.CityCreate
	if !bindJSON(c, &req) {
		return
	}
	city, err := cityService(c).Create(c.Request.Context(), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, city)
}

// PUT /cities/:id
func UpdateCity(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req models.CityUpdate
	if !bindJSON(c, &req) {
		return
	}
	city, err := cityService(c).Update(c.Request.Context(), id, req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, city)
}

// DELETE /cities/:id
func DeleteCity(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := cityService(c).Delete(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
