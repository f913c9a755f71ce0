package handlers

import (
	"net/http"
	"strings"

	"globetrotter/internal/domain"
	"globetrotter/internal/domain/models"
	"globetrotter/internal/http/middleware"
	"globetrotter/internal/services"

	"github.com/gin-gonic/gin"
)

func tripService(c *gin.Context) services.TripService {
	return services.TripService{Base: base(c)}
}

// tripOwner reads ?user_id= and falls back to the authenticated caller.
// An authenticated caller may only name themselves.
func tripOwner(c *gin.Context) (int64, bool) {
	caller, authenticated := middleware.GetUserID(c)
	if strings.TrimSpace(c.Query("user_id")) != "" {
		id, ok := queryID(c, "user_id")
		if !ok {
			return 0, false
		}
		if authenticated && id != caller {
			RespondDomainError(c, domain.ForbiddenError{Msg: "user_id must match the authenticated user"})
			return 0, false
		}
		return id, true
	}
	if authenticated {
		return caller, true
	}
	RespondDomainError(c, domain.ValidationError{Field: "user_id", Msg: "field required"})
	return 0, false
}

// GET /trips?user_id=&status=
func GetTrips(c *gin.Context) {
	userID, ok := tripOwner(c)
	if !ok {
		return
	}
	page, ok := bindPage(c)
	if !ok {
		return
	}
	filter := models.TripFilter{UserID: userID, Status: strings.TrimSpace(c.Query("status"))}
	switch filter.Status {
	case "", models.TripStatusUpcoming, models.TripStatusCompleted, models.TripStatusArchived:
	default:
		RespondDomainError(c, domain.ValidationError{Field: "status", Msg: "must be one of: upcoming completed archived"})
		return
	}

	trips, err := tripService(c).List(c.Request.Context(), filter, page)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, trips)
}

// GET /trips/:id
func GetTripByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	trip, err := tripService(c).Get(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

// POST /trips?user_id=
func CreateTrip(c *gin.Context) {
	userID, ok := tripOwner(c)
	if !ok {
		return
	}
	var req models.TripCreate
	if !bindJSON(c, &req) {
		return
	}
	trip, err := tripService(c).Create(c.Request.Context(), userID, req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, trip)
}

// PUT /trips/:id
func UpdateTrip(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req models.TripUpdate
	if !bindJSON(c, &req) {
		return
	}
	trip, err := tripService(c).Update(c.Request.Context(), id, req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

// PATCH /trips/:id/status
func UpdateTripStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req models.TripStatusUpdate
	if !bindJSON(c, &req) {
		return
	}
	trip, err := tripService(c).UpdateStatus(c.Request.Context(), id, req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

// DELETE /trips/:id
func DeleteTrip(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := tripService(c).Delete(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /trips/:id/itinerary
func GetTripItinerary(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	it, err := services.ItineraryService{Base: base(c)}.Build(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, it)
}

// GET /trips/:id/itinerary.pdf
func GetTripItineraryPDF(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	pdfBytes, filename, err := services.ItineraryService{Base: base(c)}.RenderPDF(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
