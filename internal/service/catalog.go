package service

import (
	"fmt"

	"break-planner-backend/internal/database/models"
)

// slotTemplate is one entry of the fixed per-shift break tables
type slotTemplate struct {
	startTime       string
	durationMinutes int
	capacity        int
	label           string
}

// shiftTemplates is the static table of break slots every shift starts from.
// These are never persisted as rows; their ids are derived per shift and index.
var shiftTemplates = map[models.ShiftType][]slotTemplate{
	models.ShiftTypeDay: {
		{startTime: "10:00", durationMinutes: 15, capacity: 3, label: "Break 1 (15 min)"},
		{startTime: "12:30", durationMinutes: 45, capacity: 4, label: "Lunch (45 min)"},
		{startTime: "15:30", durationMinutes: 15, capacity: 3, label: "Break 2 (15 min)"},
	},
	models.ShiftTypeAfternoon: {
		{startTime: "16:30", durationMinutes: 15, capacity: 3, label: "Break 1 (15 min)"},
		{startTime: "19:00", durationMinutes: 30, capacity: 4, label: "Meal Break (30 min)"},
		{startTime: "21:30", durationMinutes: 15, capacity: 3, label: "Break 2 (15 min)"},
	},
	models.ShiftTypeNight: {
		{startTime: "22:30", durationMinutes: 30, capacity: 3, label: "Night Break (30 min)"},
		{startTime: "01:00", durationMinutes: 60, capacity: 4, label: "Night Break (60 min)"},
		{startTime: "04:30", durationMinutes: 30, capacity: 3, label: "Night Break (30 min)"},
	},
}

// saturdayNightTemplate is the calendar-driven special case: Saturday night
// shifts get one extra early slot prepended. It carries its own stable id so
// overrides against the regular night slots keep meaning the same thing on
// every weekday.
var saturdayNightTemplate = slotTemplate{
	startTime:       "20:00",
	durationMinutes: 60,
	capacity:        2,
	label:           "Night Break (60 min)",
}

// SaturdayNightSlotID is the derived id of the injected Saturday slot
const SaturdayNightSlotID = "std-night-sat"

// TemplateSlotID derives the stable id of a template slot from its shift and
// position in the static table
func TemplateSlotID(shift models.ShiftType, index int) string {
	return fmt.Sprintf("std-%s-%d", shift, index)
}

func templateSlot(id string, t slotTemplate) SlotDefinition {
	return SlotDefinition{
		ID:              id,
		StartTime:       t.startTime,
		DurationMinutes: t.durationMinutes,
		Capacity:        t.capacity,
		BreakLabel:      t.label,
		Origin:          models.SlotOriginTemplate,
		Category:        models.CategoryForDuration(t.durationMinutes),
	}
}

// BuildCatalog assembles the full set of break slots for a scope: the fixed
// per-shift templates (with the Saturday-night special case), admin capacity
// overrides against template ids, then persisted and draft custom slots, all
// ordered by the shift-aware time key. The merge is pure; all I/O belongs to
// the caller. Malformed inputs are kept and sort last rather than rejected.
func BuildCatalog(scope SchedulingScope, overrides map[string]int, persistedCustom []models.BreakSlot, draftCustom []SlotDefinition) []SlotDefinition {
	templates := shiftTemplates[scope.ShiftType]
	catalog := make([]SlotDefinition, 0, len(templates)+len(persistedCustom)+len(draftCustom)+1)

	if scope.IsSaturday() && scope.ShiftType == models.ShiftTypeNight {
		catalog = append(catalog, templateSlot(SaturdayNightSlotID, saturdayNightTemplate))
	}
	for i, t := range templates {
		catalog = append(catalog, templateSlot(TemplateSlotID(scope.ShiftType, i), t))
	}

	for i := range catalog {
		if capacity, ok := overrides[catalog[i].ID]; ok && capacity > 0 {
			catalog[i].Capacity = capacity
		}
	}

	for _, m := range persistedCustom {
		catalog = append(catalog, slotFromModel(m))
	}
	catalog = append(catalog, draftCustom...)

	SortSlots(catalog, scope.ShiftType)
	return catalog
}
