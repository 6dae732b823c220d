package handlers

import (
	"github.com/gin-gonic/gin"

	userRepo "quickwash/database/repository/user"
)

// HandlerBundle groups all route handlers plus the repositories the
// middleware needs, assembled once in main and handed to route
// registration.
type HandlerBundle struct {
	UserRepo userRepo.UserRepository

	// Station endpoints.
	CreateStationHandler      gin.HandlerFunc
	GetStationHandler         gin.HandlerFunc
	NearbyStationsHandler     gin.HandlerFunc
	NearbyAvailabilityHandler gin.HandlerFunc

	// Bay endpoints.
	ListBaysHandler  gin.HandlerFunc
	CreateBayHandler gin.HandlerFunc
	UpdateBayHandler gin.HandlerFunc
	DeleteBayHandler gin.HandlerFunc

	// Reservation endpoints.
	CreateReservationHandler   gin.HandlerFunc
	CheckoutHandler            gin.HandlerFunc
	MyReservationsHandler      gin.HandlerFunc
	StationReservationsHandler gin.HandlerFunc

	// User endpoints.
	RegisterUserHandler     gin.HandlerFunc
	AuthenticateUserHandler gin.HandlerFunc
}
