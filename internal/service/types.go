package service

import (
	"strings"

	"break-planner-backend/internal/database/models"

	"github.com/google/uuid"
)

// draftIDPrefix marks ids that exist only in a draft ledger. They are replaced
// by canonical store ids during reconciliation and must never survive a commit.
const draftIDPrefix = "tmp-"

// NewDraftID returns a fresh temporary id for a draft entity
func NewDraftID() string {
	return draftIDPrefix + uuid.NewString()
}

// IsDraftID reports whether an id is a temporary draft id
func IsDraftID(id string) bool {
	return strings.HasPrefix(id, draftIDPrefix)
}

// SlotDefinition is a bookable break window within a scope. Template slots are
// derived from the per-shift tables, persisted custom slots come from store
// rows and draft custom slots live only in the ledger until committed.
type SlotDefinition struct {
	ID              string               `json:"id"`
	StartTime       string               `json:"start_time"`
	DurationMinutes int                  `json:"duration_minutes"`
	Capacity        int                  `json:"capacity"`
	BreakLabel      string               `json:"break_label"`
	Origin          models.SlotOrigin    `json:"origin"`
	Category        models.BreakCategory `json:"category"`
}

// Assignment binds one staff member to one slot within a scope. The ID is a
// temporary draft id until a commit writes the assignment as a fresh row.
type Assignment struct {
	ID        string           `json:"id"`
	SlotID    string           `json:"slot_id"`
	UserID    uuid.UUID        `json:"user_id"`
	UserName  string           `json:"user_name"`
	Date      string           `json:"date"`
	ShiftType models.ShiftType `json:"shift_type"`
	Location  string           `json:"location"`
}

// StaffEligibility is derived, never stored: the break totals that gate new
// assignments for one staff member within one scope.
type StaffEligibility struct {
	UserID               uuid.UUID `json:"user_id"`
	UserName             string    `json:"user_name"`
	TotalAssignedMinutes int       `json:"total_assigned_minutes"`
	HasFifteenMinBreak   bool      `json:"has_fifteen_min_break"`
	HasFortyFiveMinBreak bool      `json:"has_forty_five_min_break"`
}

// Decision is the outcome of an eligibility check. A negative decision is a
// normal result with a human-readable reason, not an error.
type Decision struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`
}

// IndexSlots builds a lookup of slot definitions by id
func IndexSlots(slots []SlotDefinition) map[string]SlotDefinition {
	index := make(map[string]SlotDefinition, len(slots))
	for _, slot := range slots {
		index[slot.ID] = slot
	}
	return index
}

// slotFromModel converts a persisted custom slot row into a catalog definition
func slotFromModel(m models.BreakSlot) SlotDefinition {
	return SlotDefinition{
		ID:              m.ID.String(),
		StartTime:       m.StartTime,
		DurationMinutes: m.DurationMinutes,
		Capacity:        m.Capacity,
		BreakLabel:      m.Label,
		Origin:          models.SlotOriginPersistedCustom,
		Category:        models.CategoryForDuration(m.DurationMinutes),
	}
}
