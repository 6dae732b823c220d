package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"quickwash/models"
	"quickwash/services/reservation"
	"quickwash/utils"
)

// ReservationHandler exposes reservation endpoints.
type ReservationHandler struct {
	Service reservation.ReservationService
}

// NewReservationHandler creates a ReservationHandler.
func NewReservationHandler(svc reservation.ReservationService) *ReservationHandler {
	return &ReservationHandler{Service: svc}
}

// CreateReservationHandler handles POST /api/reservations. The caller's
// identity comes from the auth middleware, never from the payload.
func (h *ReservationHandler) CreateReservationHandler(c *gin.Context) {
	userID := c.GetString("userID")
	var input struct {
		BayID           string `json:"bayId" binding:"required"`
		DurationMinutes int    `json:"durationMinutes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	created, err := h.Service.Create(userID, input.BayID, input.DurationMinutes)
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "failed to create reservation", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

// CheckoutHandler handles PATCH /api/reservations/:id/checkout.
func (h *ReservationHandler) CheckoutHandler(c *gin.Context) {
	userID := c.GetString("userID")
	updated, err := h.Service.Checkout(userID, c.Param("id"))
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "failed to checkout", err.Error())
		return
	}
	c.JSON(http.StatusOK, updated)
}

// MyReservationsHandler handles GET /api/reservations.
func (h *ReservationHandler) MyReservationsHandler(c *gin.Context) {
	userID := c.GetString("userID")
	reservations, err := h.Service.History(userID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list reservations", err.Error())
		return
	}
	if reservations == nil {
		reservations = []models.Reservation{}
	}
	c.JSON(http.StatusOK, reservations)
}

// StationReservationsHandler handles GET /api/stations/:id/reservations.
func (h *ReservationHandler) StationReservationsHandler(c *gin.Context) {
	activeOnly, _ := strconv.ParseBool(c.DefaultQuery("activeOnly", "false"))
	reservations, err := h.Service.StationReservations(c.Param("id"), activeOnly)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list reservations", err.Error())
		return
	}
	if reservations == nil {
		reservations = []models.Reservation{}
	}
	c.JSON(http.StatusOK, reservations)
}
