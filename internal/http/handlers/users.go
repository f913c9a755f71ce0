package handlers

import (
	"net/http"

	"globetrotter/internal/domain/models"
	"globetrotter/internal/services"

	"github.com/gin-gonic/gin"
)

func userService(c *gin.Context) services.UserService {
	return services.UserService{Base: base(c), HashCost: currentDeps().HashCost}
}

// GET /users
func GetUsers(c *gin.Context) {
	page, ok := bindPage(c)
	if !ok {
		return
	}
	users, err := userService(c).List(c.Request.Context(), page)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GET /users/:id
func GetUserByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	user, err := userService(c).Get(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// POST /users
func CreateUser(c *gin.Context) {
	var req models.UserCreate
	if !bindJSON(c, &req) {
		return
	}
	user, err := userService(c).Create(c.Request.Context(), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// PUT /users/:id
func UpdateUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req models.UserUpdate
	if !bindJSON(c, &req) {
		return
	}
	user, err := userService(c).Update(c.Request.Context(), id, req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// DELETE /users/:id
func DeleteUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := userService(c).Delete(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
