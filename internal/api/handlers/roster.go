package handlers

import (
	"net/http"

	"break-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RosterHandler handles HTTP requests for staff roster operations
type RosterHandler struct {
	rosterService service.RosterServiceInterface
}

// NewRosterHandler creates a new roster handler
func NewRosterHandler(rosterService service.RosterServiceInterface) *RosterHandler {
	return &RosterHandler{
		rosterService: rosterService,
	}
}

// CreateEntry handles POST /roster
// @Summary Schedule a staff member
// @Description Add a staff member to the roster for a date, shift and location
// @Tags roster
// @Accept json
// @Produce json
// @Param entry body service.CreateRosterEntryRequest true "Roster entry"
// @Success 201 {object} service.RosterEntryResponse "Entry created"
// @Failure 409 {object} ErrorResponse "Entry already exists"
// @Router /roster [post]
func (h *RosterHandler) CreateEntry(c *gin.Context) {
	var req service.CreateRosterEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.rosterService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListEntries handles GET /roster
// @Summary List the roster for a date and shift
// @Description Get the staff scheduled to work a date and shift
// @Tags roster
// @Accept json
// @Produce json
// @Param date query string true "Calendar day (YYYY-MM-DD)"
// @Param shift_type query string true "Shift type" Enums(day, afternoon, night)
// @Success 200 {object} service.RosterListResponse "Roster"
// @Failure 400 {object} ErrorResponse "Invalid date or shift"
// @Router /roster [get]
func (h *RosterHandler) ListEntries(c *gin.Context) {
	resp, err := h.rosterService.List(c.Query("date"), c.Query("shift_type"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteEntry handles DELETE /roster/:id
// @Summary Remove a roster entry
// @Description Remove a staff member from the roster
// @Tags roster
// @Accept json
// @Produce json
// @Param id path string true "Roster entry id"
// @Success 204 "Entry removed"
// @Failure 404 {object} ErrorResponse "Entry not found"
// @Router /roster/{id} [delete]
func (h *RosterHandler) DeleteEntry(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid roster entry ID"})
		return
	}

	if err := h.rosterService.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
