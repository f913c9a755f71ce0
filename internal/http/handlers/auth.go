package handlers

import (
	"net/http"

	"globetrotter/internal/domain"
	"globetrotter/internal/domain/models"
	"globetrotter/internal/http/middleware"
	"globetrotter/internal/services"

	"github.com/gin-gonic/gin"
)

// POST /auth/register
func Register(c *gin.Context) {
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

// POST /auth/login
func Login(c *gin.Context) {
	var req models.LoginRequest
	if !bindJSON(c, &req) {
		return
	}
	svc := services.AuthService{Base: base(c), Tokens: currentDeps().Tokens}
	token, err := svc.Login(c.Request.Context(), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, token)
}

// GET /auth/me
func Me(c *gin.Context) {
	id, ok := middleware.GetUserID(c)
	if !ok {
		RespondDomainError(c, domain.UnauthorizedError{Msg: "not authenticated"})
		return
	}
	user, err := userService(c).Get(c.Request.Context(), id)
	if err != nil {
		if domain.IsNotFound(err) {
			err = domain.UnauthorizedError{Msg: "could not validate credentials", Err: err}
		}
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
