package routes

import (
	"time"

	"medibook/handlers"
	"medibook/middleware"
	"medibook/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterDoctorRoutes registers the doctor's own schedule and profile endpoints.
func RegisterDoctorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/doctor")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo, hb.AuthCache))
		api.Use(middleware.RequireRole(models.RoleDoctor))

		api.POST("/slots", hb.Slots.AddSlotsHandler)
		api.GET("/slots", hb.Slots.GetSlotsHandler)
		api.PUT("/slots/:slotId", hb.Slots.UpdateSlotHandler)
		api.DELETE("/slots/:slotId", hb.Slots.DeleteSlotHandler)

		api.GET("/profile", hb.Doctors.GetProfileHandler)
		api.PUT("/profile", hb.Doctors.UpsertProfileHandler)
	}
}

// RegisterAvailabilityRoutes registers the public availability endpoint. It shares
// the /api/doctor prefix but none of the doctor-only middleware.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	public := r.Group("/api/doctor")
	{
		public.GET("/:doctorId/slots/available", hb.Slots.AvailableSlotsHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthMiddleware(hb.UserRepo, hb.AuthCache))
		adminGroup.Use(middleware.RequireRole(models.RoleAdmin))
		adminGroup.GET("/doctors", hb.Admin.ListDoctorsHandler)
		adminGroup.PATCH("/doctors/:doctorId/approval", hb.Admin.SetApprovalHandler)
		adminGroup.PATCH("/doctors/:doctorId/status", hb.Admin.SetAccountStatusHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAvailabilityRoutes(r, hb)
	RegisterDoctorRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
