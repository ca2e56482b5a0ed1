package routes

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"charity-events-api/models"
)

// POST /api/registrations
func (d *deps) createRegistration(c *gin.Context) {
	var input models.RegistrationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	params, err := input.Validate()
	if err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	id, err := d.registrations.Create(c.Request.Context(), *params)
	if err != nil {
		if errors.Is(err, models.ErrDuplicateRegistration) {
			fail(c, http.StatusConflict, "This email is already registered for the event")
			return
		}
		d.serverError(c, "Failed to register for event", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Registration completed successfully",
		"data":    gin.H{"registrationId": id},
	})
}

// GET /api/categories
func (d *deps) listCategories(c *gin.Context) {
	categories, err := d.categories.List(c.Request.Context())
	if err != nil {
		d.serverError(c, "Failed to fetch categories", err)
		return
	}
	if categories == nil {
		categories = []models.Category{}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    categories,
	})
}
