// Package routes registers the HTTP endpoints and maps domain outcomes to
// status codes. Every response is wrapped in the
// {success, data?, count?, message?, error?} envelope.
package routes

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"charity-events-api/models"
)

// deps bundles the repositories handlers work against.
type deps struct {
	events        models.EventRepository
	registrations models.RegistrationRepository
	categories    models.CategoryRepository
	log           *zap.Logger
}

// RegisterRoutes wires all endpoints onto the engine. Repositories are
// injected by main.
func RegisterRoutes(
	server *gin.Engine,
	e models.EventRepository,
	r models.RegistrationRepository,
	c models.CategoryRepository,
	log *zap.Logger,
) {
	d := &deps{events: e, registrations: r, categories: c, log: log}

	// Health lives at the root for load-balancer probes and under /api for
	// clients that only know the base path.
	server.GET("/health", d.health)

	api := server.Group("/api")
	api.GET("/health", d.health)
	api.GET("/events", d.listEvents)
	api.GET("/events/:id", d.getEvent)
	api.POST("/events", d.createEvent)
	api.PUT("/events/:id", d.updateEvent)
	api.DELETE("/events/:id", d.deleteEvent)
	api.POST("/registrations", d.createRegistration)
	api.GET("/categories", d.listCategories)

	server.NoRoute(d.notFound)
}

// GET /health
func (d *deps) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "Charity Events API",
	})
}

var availableEndpoints = []string{
	"GET /health",
	"GET /api/events",
	"GET /api/events/:id",
	"POST /api/events",
	"PUT /api/events/:id",
	"DELETE /api/events/:id",
	"POST /api/registrations",
	"GET /api/categories",
}

// notFound answers every unmatched route with the endpoint directory.
func (d *deps) notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"success":            false,
		"error":              "Endpoint not found",
		"message":            fmt.Sprintf("The route %s %s does not exist", c.Request.Method, c.Request.URL.Path),
		"availableEndpoints": availableEndpoints,
	})
}

// fail writes an error envelope.
func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "error": message})
}

// serverError logs the underlying store error and returns a generic 500;
// internal detail never reaches the caller.
func (d *deps) serverError(c *gin.Context, message string, err error) {
	d.log.Error(message,
		zap.Error(err),
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
	)
	fail(c, http.StatusInternalServerError, message)
}

// eventID parses the :id path parameter, rejecting non-numeric and
// non-positive values before any store access.
func eventID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		fail(c, http.StatusBadRequest, "Invalid event ID")
		return 0, false
	}
	return id, true
}
