package handlers

import (
	"errors"
	"net/http"

	doctorRepo "medibook/database/repository/doctor"
	"medibook/models"
	"medibook/services/doctor"
	"medibook/services/slots"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// actorFromContext reads the identity stored by JWTAuthMiddleware.
func actorFromContext(c *gin.Context) (models.Actor, bool) {
	id := c.GetString("userID")
	role := c.GetString("role")
	if id == "" || role == "" {
		return models.Actor{}, false
	}
	return models.Actor{ID: id, Role: role}, true
}

// respondError maps service errors onto HTTP statuses. Unexpected errors are
// logged with their detail and answered with a generic 500.
func respondError(c *gin.Context, err error, msg string) {
	var (
		verr        *slots.ValidationError
		notFound    *slots.NotFoundError
		authErr     *slots.AuthorizationError
		unavailable *slots.UnavailableError
		profileErr  *doctor.ProfileError
	)

	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error(), "rule": verr.Rule})
	case errors.As(err, &profileErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": profileErr.Error()})
	case errors.As(err, &unavailable):
		c.JSON(http.StatusBadRequest, gin.H{"error": unavailable.Error()})
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
	case errors.Is(err, doctor.ErrProfileNotFound), errors.Is(err, doctor.ErrDoctorNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &authErr), errors.Is(err, doctor.ErrNotDoctorAccount):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, slots.ErrLockNotAcquired), errors.Is(err, doctorRepo.ErrVersionConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "Schedule is being modified, please retry"})
	default:
		getLogger(c).Error(msg, zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
	}
}
