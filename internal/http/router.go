package api

import (
	"net/http"

	intconfig "globetrotter/internal/config"
	h "globetrotter/internal/http/handlers"
	"globetrotter/internal/http/middleware"
	"globetrotter/internal/services"
	"globetrotter/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires middleware, system endpoints and the versioned API.
func NewRouter(env intconfig.Env, db *sqlx.DB) *gin.Engine {
	tokens := services.TokenManager{
		Secret:    []byte(env.SecretKey),
		TTL:       env.AccessTokenExpire,
		Algorithm: env.Algorithm,
	}
	h.Configure(h.Deps{
		DB:          db,
		Tokens:      tokens,
		HashCost:    env.BcryptCost,
		ProjectName: env.ProjectName,
		Version:     env.Version,
	})

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := middleware.NewMetrics(reg)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), metrics.Handler(), middleware.CORS(env.CORSOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		utils.Logger().Warn().Err(err).Msg("failed to set trusted proxies")
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":      "route not found",
			"code":       "not_found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": middleware.GetRequestID(c),
		})
	})

	r.GET("/health", h.Health)
	r.GET("/db-check", h.DBCheck)
	r.GET("/routes", h.Routes)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))

	api := r.Group(env.APIPrefix, middleware.AuthOptional(tokens))
	{
		// Auth
		auth := api.Group("/auth")
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.GET("/me", middleware.AuthRequired(tokens), h.Me)

		// Users
		users := api.Group("/users")
		collection(users, h.GetUsers, h.CreateUser)
		users.GET("/:id", h.GetUserByID)
		users.PUT("/:id", h.UpdateUser)
		users.DELETE("/:id", h.DeleteUser)

		// Cities
		cities := api.Group("/cities")
		collection(cities, h.GetCities, h.CreateCity)
		cities.GET("/:id", h.GetCityByID)
		cities.PUT("/:id", h.UpdateCity)
		cities.DELETE("/:id", h.DeleteCity)

		// Trips
		trips := api.Group("/trips")
		collection(trips, h.GetTrips, h.CreateTrip)
		trips.GET("/:id", h.GetTripByID)
		trips.PUT("/:id", h.UpdateTrip)
		trips.DELETE("/:id", h.DeleteTrip)
		trips.PATCH("/:id/status", h.UpdateTripStatus)
		trips.GET("/:id/itinerary", h.GetTripItinerary)
		trips.GET("/:id/itinerary.pdf", h.GetTripItineraryPDF)

		// Stops
		stops := api.Group("/stops")
		collection(stops, h.GetStops, h.CreateStop)
		stops.GET("/:id", h.GetStopByID)
		stops.PUT("/:id", h.UpdateStop)
		stops.DELETE("/:id", h.DeleteStop)

		// Activities
		activities := api.Group("/activities")
		collection(activities, h.GetActivities, h.CreateActivity)
		activities.GET("/:id", h.GetActivityByID)
		activities.PUT("/:id", h.UpdateActivity)
		activities.DELETE("/:id", h.DeleteActivity)

		// Budgets
		budgets := api.Group("/budgets")
		collection(budgets, h.GetBudgets, h.CreateBudget)
		budgets.GET("/:id", h.GetBudgetByID)
		budgets.PUT("/:id", h.UpdateBudget)
		budgets.DELETE("/:id", h.DeleteBudget)
		budgets.GET("/:id/summary", h.GetBudgetSummary)

		// Expenses
		expenses := api.Group("/expenses")
		collection(expenses, h.GetExpenses, h.CreateExpense)
		expenses.GET("/:id", h.GetExpenseByID)
		expenses.PUT("/:id", h.UpdateExpense)
		expenses.DELETE("/:id", h.DeleteExpense)
	}

	h.SetRouter(r)
	return r
}

// collection mounts list/create with and without the trailing slash so neither form redirects.
func collection(g *gin.RouterGroup, list, create gin.HandlerFunc) {
	for _, p := range []string{"", "/"} {
		g.GET(p, list)
		g.POST(p, create)
	}
}
