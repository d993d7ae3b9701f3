package handlers

import (
	"net/http"

	"medibook/models"
	"medibook/services/doctor"

	"github.com/gin-gonic/gin"
)

// DoctorHandler serves the caller's own doctor profile.
type DoctorHandler struct {
	Service doctor.DoctorService
}

func NewDoctorHandler(svc doctor.DoctorService) *DoctorHandler {
	return &DoctorHandler{Service: svc}
}

func (h *DoctorHandler) GetProfileHandler(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	doc, err := h.Service.GetProfile(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err, "Failed to fetch doctor profile")
		return
	}
	c.JSON(http.StatusOK, gin.H{"doctor": doc})
}

// UpsertProfileHandler answers 201 when the profile was created and 200 on update.
func (h *DoctorHandler) UpsertProfileHandler(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var input models.DoctorProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	doc, created, err := h.Service.UpsertProfile(c.Request.Context(), actor, input)
	if err != nil {
		respondError(c, err, "Failed to save doctor profile")
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{"doctor": doc})
}
