package handlers

import (
	"net/http"
	"sync"

	"globetrotter/internal/http/middleware"
	"globetrotter/internal/utils"

	"github.com/gin-gonic/gin"
)

var (
	routerMu sync.RWMutex
	router   *gin.Engine
)

// SetRouter stores the active gin engine for later inspection (e.g., /routes).
func SetRouter(r *gin.Engine) {
	routerMu.Lock()
	defer routerMu.Unlock()
	router = r
}

func Health(c *gin.Context) {
	d := currentDeps()
	c.JSON(http.StatusOK, gin.H{"status": "ok", "project": d.ProjectName, "version": d.Version})
}

func DBCheck(c *gin.Context) {
	db := currentDeps().DB
	if db == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "error": "database not connected"})
		return
	}
	var count int
	if err := db.GetContext(c.Request.Context(), &count, "SELECT COUNT(*) FROM users"); err != nil {
		utils.LogError(middleware.GetRequestID(c), "system", "db_check", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "error": "database query failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "users_in_db": count})
}

func Routes(c *gin.Context) {
	routerMu.RLock()
	r := router
	routerMu.RUnlock()
	if r == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "router not ready"})
		return
	}

	routes := r.Routes()
	out := make([]gin.H, 0, len(routes))
	for _, rt := range routes {
		out = append(out, gin.H{
			"method":  rt.Method,
			"path":    rt.Path,
			"handler": rt.Handler,
		})
	}
	c.JSON(http.StatusOK, gin.H{"routes": out})
}
