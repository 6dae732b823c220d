package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"quickwash/config"
	"quickwash/models"
	"quickwash/services/station"
	"quickwash/utils"
)

// StationHandler exposes station management and availability search.
type StationHandler struct {
	Service station.StationService
}

// NewStationHandler creates a StationHandler.
func NewStationHandler(svc station.StationService) *StationHandler {
	return &StationHandler{Service: svc}
}

// CreateStationHandler handles POST /api/stations.
func (h *StationHandler) CreateStationHandler(c *gin.Context) {
	var input struct {
		Name           string  `json:"name" binding:"required"`
		Address        string  `json:"address"`
		OperatingHours string  `json:"operatingHours"`
		Latitude       float64 `json:"latitude" binding:"required"`
		Longitude      float64 `json:"longitude" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	created, err := h.Service.CreateStation(station.CreateStationInput{
		Name:           input.Name,
		Address:        input.Address,
		OperatingHours: input.OperatingHours,
		Latitude:       input.Latitude,
		Longitude:      input.Longitude,
	})
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "failed to create station", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetStationHandler handles GET /api/stations/:id.
func (h *StationHandler) GetStationHandler(c *gin.Context) {
	st, err := h.Service.GetStation(c.Param("id"))
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "station not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, st)
}

// NearbyStationsHandler handles GET /api/stations/nearby.
func (h *StationHandler) NearbyStationsHandler(c *gin.Context) {
	lat, lon, ok := parseLatLon(c)
	if !ok {
		return
	}
	radiusKm := parseFloatQuery(c, "radiusKm", config.AppConfig.DefaultRadiusKm)

	stations, err := h.Service.Nearby(lat, lon, radiusKm)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "nearby search failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, stations)
}

// NearbyAvailabilityHandler handles GET /api/stations/nearby/availability:
// stations within range whose bays have a free gap of at least the
// requested duration within the search horizon.
func (h *StationHandler) NearbyAvailabilityHandler(c *gin.Context) {
	lat, lon, ok := parseLatLon(c)
	if !ok {
		return
	}
	radiusKm := parseFloatQuery(c, "radiusKm", config.AppConfig.DefaultRadiusKm)
	minDuration := parseIntQuery(c, "minDurationMinutes", config.AppConfig.DefaultMinDurationMin)
	horizon := time.Duration(config.AppConfig.SearchHorizonHours) * time.Hour

	result, err := h.Service.NearbyAvailability(lat, lon, radiusKm, minDuration, horizon)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "availability search failed", err.Error())
		return
	}
	if result == nil {
		result = []models.StationAvailability{}
	}
	c.JSON(http.StatusOK, result)
}

func parseLatLon(c *gin.Context) (float64, float64, bool) {
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lon, errLon := strconv.ParseFloat(c.Query("lon"), 64)
	if errLat != nil || errLon != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "lat and lon query parameters are required")
		return 0, 0, false
	}
	return lat, lon, true
}

func parseFloatQuery(c *gin.Context, key string, fallback float64) float64 {
	if raw := c.Query(key); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			return v
		}
	}
	return fallback
}

func parseIntQuery(c *gin.Context, key string, fallback int) int {
	if raw := c.Query(key); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			return v
		}
	}
	return fallback
}
