package routes

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"charity-events-api/models"
)

// GET /api/events
func (d *deps) listEvents(c *gin.Context) {
	events, err := d.events.List(c.Request.Context())
	if err != nil {
		d.serverError(c, "Failed to fetch events", err)
		return
	}
	if events == nil {
		events = []models.EventSummary{}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    events,
		"count":   len(events),
	})
}

// GET /api/events/:id
func (d *deps) getEvent(c *gin.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	event, err := d.events.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			fail(c, http.StatusNotFound, "Event not found")
			return
		}
		d.serverError(c, "Failed to fetch event details", err)
		return
	}

	registrations, err := d.registrations.ListByEvent(c.Request.Context(), id)
	if err != nil {
		d.serverError(c, "Failed to fetch registration records", err)
		return
	}
	if registrations == nil {
		registrations = []models.Registration{}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"event":         event,
			"registrations": registrations,
		},
	})
}

// POST /api/events
func (d *deps) createEvent(c *gin.Context) {
	var input models.EventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	params, err := input.Validate()
	if err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	id, err := d.events.Create(c.Request.Context(), *params)
	if err != nil {
		d.serverError(c, "Failed to create event", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Event created successfully",
		"data":    gin.H{"eventId": id},
	})
}

// PUT /api/events/:id
func (d *deps) updateEvent(c *gin.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	var input models.EventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	params, err := input.Validate()
	if err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := d.events.Update(c.Request.Context(), id, *params); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			fail(c, http.StatusNotFound, "Event not found")
			return
		}
		d.serverError(c, "Failed to update event", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Event updated successfully",
	})
}

// DELETE /api/events/:id
func (d *deps) deleteEvent(c *gin.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	err := d.events.Delete(c.Request.Context(), id)
	if err != nil {
		var blocked *models.RegistrationsExistError
		switch {
		case errors.As(err, &blocked):
			fail(c, http.StatusConflict, blocked.Error())
		case errors.Is(err, models.ErrNotFound):
			fail(c, http.StatusNotFound, "Event not found")
		default:
			d.serverError(c, "Failed to delete event", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Event deleted successfully",
	})
}
