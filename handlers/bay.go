package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quickwash/models"
	"quickwash/services/bay"
	"quickwash/utils"
)

// BayHandler exposes bay management endpoints.
type BayHandler struct {
	Service bay.BayService
}

// NewBayHandler creates a BayHandler.
func NewBayHandler(svc bay.BayService) *BayHandler {
	return &BayHandler{Service: svc}
}

// ListBaysHandler handles GET /api/stations/:id/bays.
func (h *BayHandler) ListBaysHandler(c *gin.Context) {
	bays, err := h.Service.ListBays(c.Param("id"))
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "failed to list bays", err.Error())
		return
	}
	if bays == nil {
		bays = []models.Bay{}
	}
	c.JSON(http.StatusOK, bays)
}

// CreateBayHandler handles POST /api/stations/:id/bays.
func (h *BayHandler) CreateBayHandler(c *gin.Context) {
	var input struct {
		Name                   string  `json:"name" binding:"required"`
		Price                  float64 `json:"price"`
		DefaultDurationMinutes int     `json:"defaultDurationMinutes"`
		IsAvailable            *bool   `json:"isAvailable"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	created, err := h.Service.CreateBay(c.Param("id"), bay.CreateBayInput{
		Name:                   input.Name,
		Price:                  input.Price,
		DefaultDurationMinutes: input.DefaultDurationMinutes,
		IsAvailable:            input.IsAvailable,
	})
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "failed to create bay", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateBayHandler handles PATCH /api/stations/:id/bays/:bayID.
func (h *BayHandler) UpdateBayHandler(c *gin.Context) {
	var upd models.BayUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	updated, err := h.Service.UpdateBay(c.Param("id"), c.Param("bayID"), upd)
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "failed to update bay", err.Error())
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteBayHandler handles DELETE /api/stations/:id/bays/:bayID.
func (h *BayHandler) DeleteBayHandler(c *gin.Context) {
	if err := h.Service.DeleteBay(c.Param("id"), c.Param("bayID")); err != nil {
		utils.JSONError(c, utils.StatusForError(err), "failed to delete bay", err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}
