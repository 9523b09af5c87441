package service

import (
	"fmt"
	"time"

	"break-planner-backend/internal/database/models"
	apperrors "break-planner-backend/internal/errors"
)

// LocationAll is the sentinel location meaning "all locations". Catalog reads
// accept it; assignment mutation and commit require a concrete location.
const LocationAll = "all"

// SchedulingScope identifies one schedulable break window: a calendar day, a
// shift and a location. Every catalog, ledger and reconciliation operation is
// keyed by a scope; entities are never compared across scopes.
type SchedulingScope struct {
	Date      time.Time
	ShiftType models.ShiftType
	Location  string
}

// ParseScope builds a scope from wire values. The date is a calendar day in
// YYYY-MM-DD form; an empty location defaults to "all".
func ParseScope(date, shift, location string) (SchedulingScope, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return SchedulingScope{}, apperrors.ErrInvalidDateFormat
	}

	shiftType := models.ShiftType(shift)
	if !shiftType.IsValid() {
		return SchedulingScope{}, apperrors.ErrInvalidShiftType
	}

	if location == "" {
		location = LocationAll
	}

	return SchedulingScope{
		Date:      day,
		ShiftType: shiftType,
		Location:  location,
	}, nil
}

// HasConcreteLocation reports whether the scope names a real location rather
// than the "all" sentinel
func (s SchedulingScope) HasConcreteLocation() bool {
	return s.Location != "" && s.Location != LocationAll
}

// LocationFilter returns the location to filter store reads by; empty means
// no filter (the "all" view)
func (s SchedulingScope) LocationFilter() string {
	if s.HasConcreteLocation() {
		return s.Location
	}
	return ""
}

// DateString returns the scope's calendar day in YYYY-MM-DD form
func (s SchedulingScope) DateString() string {
	return s.Date.Format("2006-01-02")
}

// Key returns the deterministic staging key for this scope
func (s SchedulingScope) Key() string {
	return fmt.Sprintf("breaks:%s:%s:%s", s.DateString(), s.ShiftType, s.Location)
}

// IsSaturday reports whether the scope's day falls on a Saturday. The day of
// week is read from the scope's date only, never from the wall clock.
func (s SchedulingScope) IsSaturday() bool {
	return s.Date.Weekday() == time.Saturday
}

func (s SchedulingScope) String() string {
	return fmt.Sprintf("%s %s shift at %s", s.DateString(), s.ShiftType, s.Location)
}
