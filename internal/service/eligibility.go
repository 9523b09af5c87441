package service

import (
	"fmt"

	"break-planner-backend/internal/database/models"

	"github.com/google/uuid"
)

// maxBreakMinutes is the per-staff break budget within one scope
const maxBreakMinutes = 60

// CanAssign decides whether a staff member with the given totals may take the
// slot. Rules run in order and the first failing rule wins; the reason always
// names the specific limit so it can be surfaced to the user as-is.
//
// Slot capacity is deliberately not checked here: the legacy assignment path
// never enforced it and that behavior is kept until a correction is asked for.
func CanAssign(elig StaffEligibility, slot SlotDefinition, shift models.ShiftType) Decision {
	if shift == models.ShiftTypeDay {
		switch slot.Category {
		case models.BreakCategoryFifteenMin:
			if elig.HasFifteenMinBreak {
				return Decision{Allowed: false, Reason: "already has a 15 min break"}
			}
			return Decision{Allowed: true}
		case models.BreakCategoryFortyFiveMin:
			if elig.HasFortyFiveMinBreak {
				return Decision{Allowed: false, Reason: "already has a 45 min break"}
			}
			return Decision{Allowed: true}
		}
	}

	if elig.TotalAssignedMinutes+slot.DurationMinutes > maxBreakMinutes {
		return Decision{
			Allowed: false,
			Reason: fmt.Sprintf("already has maximum break time (%d/%d min)",
				elig.TotalAssignedMinutes, maxBreakMinutes),
		}
	}
	return Decision{Allowed: true}
}

// ComputeEligibility derives a staff member's break totals from the scope's
// current assignment set. It is recomputed after every ledger mutation so no
// eligibility query ever sees stale totals. Assignments whose slot cannot be
// resolved against the catalog contribute nothing.
func ComputeEligibility(userID uuid.UUID, userName string, assignments []Assignment, catalog map[string]SlotDefinition) StaffEligibility {
	elig := StaffEligibility{
		UserID:   userID,
		UserName: userName,
	}

	for _, a := range assignments {
		if a.UserID != userID {
			continue
		}
		slot, ok := catalog[a.SlotID]
		if !ok {
			continue
		}
		elig.TotalAssignedMinutes += slot.DurationMinutes
		switch slot.Category {
		case models.BreakCategoryFifteenMin:
			elig.HasFifteenMinBreak = true
		case models.BreakCategoryFortyFiveMin:
			elig.HasFortyFiveMinBreak = true
		}
	}
	return elig
}
