package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"quickwash/handlers"
	"quickwash/middleware"
)

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.RegisterUserHandler)
		api.POST("/login", hb.AuthenticateUserHandler)
	}
}

// RegisterStationRoutes registers station management, bay management and
// the nearby/availability search endpoints.
func RegisterStationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/stations")
	{
		api.POST("", hb.CreateStationHandler)
		api.GET("/nearby", hb.NearbyStationsHandler)
		api.GET("/nearby/availability", hb.NearbyAvailabilityHandler)
		api.GET("/:id", hb.GetStationHandler)

		// Bay management per station.
		api.GET("/:id/bays", hb.ListBaysHandler)
		api.POST("/:id/bays", hb.CreateBayHandler)
		api.PATCH("/:id/bays/:bayID", hb.UpdateBayHandler)
		api.DELETE("/:id/bays/:bayID", hb.DeleteBayHandler)

		// Station admin view of its reservations.
		api.GET("/:id/reservations", hb.StationReservationsHandler)
	}
}

// RegisterReservationRoutes registers the authenticated reservation flow.
func RegisterReservationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reservations")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.POST("", hb.CreateReservationHandler)
		api.GET("", hb.MyReservationsHandler)
		api.PATCH("/:id/checkout", hb.CheckoutHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "QuickWash API is live"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb)
	RegisterStationRoutes(r, hb)
	RegisterReservationRoutes(r, hb)
	RegisterHealthRoute(r)
}
