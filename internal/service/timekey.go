package service

import (
	"sort"

	"break-planner-backend/internal/database/models"
)

// unparseableOrderingKey sorts malformed start times after every real slot.
// Night-shift keys top out at 36*60, so any constant above that works; a large
// one keeps the intent obvious.
const unparseableOrderingKey = 1 << 20

// parseClock parses a strict HH:MM wall-clock time
func parseClock(value string) (hours, minutes int, ok bool) {
	if len(value) != 5 || value[2] != ':' {
		return 0, 0, false
	}
	for _, i := range []int{0, 1, 3, 4} {
		if value[i] < '0' || value[i] > '9' {
			return 0, 0, false
		}
	}
	hours = int(value[0]-'0')*10 + int(value[1]-'0')
	minutes = int(value[3]-'0')*10 + int(value[4]-'0')
	if hours > 23 || minutes > 59 {
		return 0, 0, false
	}
	return hours, minutes, true
}

// OrderingKey converts a wall-clock start time into a shift-aware sort key in
// minutes. For night shifts, times before 12:00 occur after midnight relative
// to the shift start and are pushed a full day later, so 21:00 sorts before
// 00:00 which sorts before 02:00. Malformed times sort last, deterministically.
func OrderingKey(startTime string, shift models.ShiftType) int {
	hours, minutes, ok := parseClock(startTime)
	if !ok {
		return unparseableOrderingKey
	}

	key := hours*60 + minutes
	if shift == models.ShiftTypeNight && hours < 12 {
		key += 24 * 60
	}
	return key
}

// SortSlots orders slots ascending by their shift-aware ordering key. The sort
// is stable: ties keep insertion order.
func SortSlots(slots []SlotDefinition, shift models.ShiftType) {
	sort.SliceStable(slots, func(i, j int) bool {
		return OrderingKey(slots[i].StartTime, shift) < OrderingKey(slots[j].StartTime, shift)
	})
}
