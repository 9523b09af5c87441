package handlers

import (
	"net/http"
	"strings"

	apperrors "break-planner-backend/internal/errors"
	"break-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// BreaksHandler handles HTTP requests for the break scheduling engine
type BreaksHandler struct {
	breaksService service.BreakScheduleServiceInterface
}

// NewBreaksHandler creates a new breaks handler
func NewBreaksHandler(breaksService service.BreakScheduleServiceInterface) *BreaksHandler {
	return &BreaksHandler{
		breaksService: breaksService,
	}
}

// respondError maps engine errors onto HTTP statuses. Eligibility rejections
// and validation failures are client errors with the specific cause in the
// body; commit failures keep the step name so the user knows how far the save
// got.
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsValidation(err) || strings.Contains(err.Error(), "validation failed"):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case apperrors.IsCommit(err):
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		switch err {
		case apperrors.ErrLocationRequired,
			apperrors.ErrInvalidShiftType,
			apperrors.ErrInvalidDateFormat,
			apperrors.ErrInvalidStartTime,
			apperrors.ErrAlreadyAssignedToSlot:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case apperrors.ErrConfirmationRequired:
			c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "confirmation_required": true})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error", "details": err.Error()})
		}
	}
}

// GetCatalog handles GET /breaks/catalog
// @Summary Get the break slot catalog for a scope
// @Description Assemble the template, persisted and draft slots for a (date, shift, location) scope together with per-staff eligibility
// @Tags breaks
// @Accept json
// @Produce json
// @Param date query string true "Calendar day (YYYY-MM-DD)"
// @Param shift_type query string true "Shift type" Enums(day, afternoon, night)
// @Param location query string false "Location; omit for all locations"
// @Success 200 {object} service.CatalogResponse "Catalog assembled"
// @Failure 400 {object} ErrorResponse "Invalid scope"
// @Router /breaks/catalog [get]
func (h *BreaksHandler) GetCatalog(c *gin.Context) {
	req := &service.ScopeRequest{
		Date:      c.Query("date"),
		ShiftType: c.Query("shift_type"),
		Location:  c.Query("location"),
	}

	resp, err := h.breaksService.GetCatalog(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// EligibleStaff handles GET /breaks/staff
// @Summary List staff eligible for a slot
// @Description Return the rostered staff pool for a slot with an allow/deny decision and reason per staff member
// @Tags breaks
// @Accept json
// @Produce json
// @Param date query string true "Calendar day (YYYY-MM-DD)"
// @Param shift_type query string true "Shift type" Enums(day, afternoon, night)
// @Param location query string false "Location"
// @Param slot_id query string true "Slot id"
// @Success 200 {object} service.EligibleStaffResponse "Eligible pool"
// @Failure 404 {object} ErrorResponse "Slot not found"
// @Router /breaks/staff [get]
func (h *BreaksHandler) EligibleStaff(c *gin.Context) {
	req := &service.EligibleStaffRequest{
		ScopeRequest: service.ScopeRequest{
			Date:      c.Query("date"),
			ShiftType: c.Query("shift_type"),
			Location:  c.Query("location"),
		},
		SlotID: c.Query("slot_id"),
	}

	resp, err := h.breaksService.EligibleStaff(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AddAssignment handles POST /breaks/assignments
// @Summary Stage a break assignment
// @Description Add an eligibility-gated assignment to the scope's draft ledger
// @Tags breaks
// @Accept json
// @Produce json
// @Param assignment body service.AddAssignmentRequest true "Assignment to stage"
// @Success 201 {object} service.AssignmentResponse "Assignment staged"
// @Failure 400 {object} ErrorResponse "Validation or eligibility failure"
// @Router /breaks/assignments [post]
func (h *BreaksHandler) AddAssignment(c *gin.Context) {
	var req service.AddAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.breaksService.AddAssignment(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// RemoveAssignment handles DELETE /breaks/assignments/:id
// @Summary Remove a staged assignment
// @Description Remove an assignment from the draft ledger; actors may only remove their own unless admin
// @Tags breaks
// @Accept json
// @Produce json
// @Param id path string true "Assignment id"
// @Param request body service.RemoveAssignmentRequest true "Scope and actor"
// @Success 204 "Assignment removed"
// @Failure 403 {object} ErrorResponse "Not authorized"
// @Failure 404 {object} ErrorResponse "Assignment not found"
// @Router /breaks/assignments/{id} [delete]
func (h *BreaksHandler) RemoveAssignment(c *gin.Context) {
	var req service.RemoveAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.breaksService.RemoveAssignment(c.Param("id"), &req); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddCustomSlot handles POST /breaks/slots
// @Summary Stage a custom break slot
// @Description Add a draft custom slot to the scope; committed to the store on save
// @Tags breaks
// @Accept json
// @Produce json
// @Param slot body service.AddCustomSlotRequest true "Slot to stage"
// @Success 201 {object} service.SlotResponse "Slot staged"
// @Failure 409 {object} ErrorResponse "Another slot already starts at this time"
// @Router /breaks/slots [post]
func (h *BreaksHandler) AddCustomSlot(c *gin.Context) {
	var req service.AddCustomSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.breaksService.AddCustomSlot(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// UpdateCustomSlot handles PUT /breaks/slots/:id
// @Summary Stage edits on a custom slot
// @Description Edit a draft slot in place or stage field changes on a persisted custom slot for the next save
// @Tags breaks
// @Accept json
// @Produce json
// @Param id path string true "Slot id"
// @Param slot body service.UpdateCustomSlotRequest true "New slot fields"
// @Success 204 "Edits staged"
// @Failure 404 {object} ErrorResponse "Slot not found"
// @Router /breaks/slots/{id} [put]
func (h *BreaksHandler) UpdateCustomSlot(c *gin.Context) {
	var req service.UpdateCustomSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.breaksService.UpdateCustomSlot(c.Param("id"), &req); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RemoveCustomSlot handles DELETE /breaks/slots/:id
// @Summary Remove a custom slot
// @Description Draft slots are removed locally; deleting a persisted slot requires confirm=true and takes effect immediately
// @Tags breaks
// @Accept json
// @Produce json
// @Param id path string true "Slot id"
// @Param request body service.RemoveCustomSlotRequest true "Scope and confirmation"
// @Success 204 "Slot removed"
// @Failure 409 {object} ErrorResponse "Confirmation required"
// @Router /breaks/slots/{id} [delete]
func (h *BreaksHandler) RemoveCustomSlot(c *gin.Context) {
	var req service.RemoveCustomSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.breaksService.RemoveCustomSlot(c.Param("id"), &req); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SetSlotOverride handles PUT /breaks/overrides/:slotId
// @Summary Override a template slot's capacity
// @Description Record an admin capacity override for a template slot within a scope
// @Tags breaks
// @Accept json
// @Produce json
// @Param slotId path string true "Template slot id (std-{shift}-{index})"
// @Param override body service.SlotOverrideRequest true "Scope and capacity"
// @Success 204 "Override recorded"
// @Failure 400 {object} ErrorResponse "Invalid scope or capacity"
// @Router /breaks/overrides/{slotId} [put]
func (h *BreaksHandler) SetSlotOverride(c *gin.Context) {
	var req service.SlotOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.breaksService.SetSlotOverride(c.Param("slotId"), &req); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Commit handles POST /breaks/commit
// @Summary Save the scope's draft
// @Description Reconcile the draft ledger with the authoritative store: replace the scope's assignments and upsert slot definitions
// @Tags breaks
// @Accept json
// @Produce json
// @Param scope body service.ScopeRequest true "Scope to save"
// @Success 200 {object} service.CommitResponse "Draft saved"
// @Failure 400 {object} ErrorResponse "No concrete location selected"
// @Failure 500 {object} ErrorResponse "A reconciliation step failed"
// @Router /breaks/commit [post]
func (h *BreaksHandler) Commit(c *gin.Context) {
	var req service.ScopeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.breaksService.Commit(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Discard handles POST /breaks/discard
// @Summary Abandon the scope's draft
// @Description Drop the scope's in-memory ledger and its staging snapshot
// @Tags breaks
// @Accept json
// @Produce json
// @Param scope body service.ScopeRequest true "Scope to discard"
// @Success 204 "Draft discarded"
// @Router /breaks/discard [post]
func (h *BreaksHandler) Discard(c *gin.Context) {
	var req service.ScopeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.breaksService.Discard(&req); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
