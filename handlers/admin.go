// File: medibook/handlers/admin.go
package handlers

import (
	"net/http"

	"medibook/models"
	"medibook/services/doctor"
	"medibook/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// AdminHandler encapsulates elevated admin-level operations on doctors.
type AdminHandler struct {
	DoctorService doctor.DoctorService
	AuthCache     *redis.Client
}

// NewAdminHandler creates a new AdminHandler. authCache may be nil.
func NewAdminHandler(ds doctor.DoctorService, authCache *redis.Client) *AdminHandler {
	return &AdminHandler{
		DoctorService: ds,
		AuthCache:     authCache,
	}
}

// ListDoctorsHandler returns every doctor profile joined with its account.
func (ah *AdminHandler) ListDoctorsHandler(c *gin.Context) {
	doctors, err := ah.DoctorService.ListDoctors(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch doctors")
		return
	}
	c.JSON(http.StatusOK, gin.H{"doctors": doctors, "total": len(doctors)})
}

// SetApprovalHandler grants or revokes approval of a doctor.
func (ah *AdminHandler) SetApprovalHandler(c *gin.Context) {
	var req models.ApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	doc, err := ah.DoctorService.SetApproval(c.Request.Context(), c.Param("doctorId"), *req.Approved)
	if err != nil {
		respondError(c, err, "Failed to update approval")
		return
	}
	c.JSON(http.StatusOK, gin.H{"doctor": doc})
}

// SetAccountStatusHandler activates or deactivates a doctor's account.
func (ah *AdminHandler) SetAccountStatusHandler(c *gin.Context) {
	var req models.AccountStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	listing, err := ah.DoctorService.SetAccountActive(c.Request.Context(), c.Param("doctorId"), *req.Active)
	if err != nil {
		respondError(c, err, "Failed to update account status")
		return
	}

	if err := utils.InvalidateAuthCache(c.Request.Context(), ah.AuthCache, listing.UserID); err != nil {
		getLogger(c).Warn("Failed to invalidate auth cache", zap.String("userID", listing.UserID), zap.Error(err))
	}
	c.JSON(http.StatusOK, gin.H{"doctor": listing})
}
