package models

import (
	"time"
)

// BreakSlot represents an admin-defined custom break slot persisted for a
// concrete (date, shift, location) scope. Template slots are never stored as
// rows; they are derived in the catalog builder.
type BreakSlot struct {
	BaseModel
	Date            time.Time `json:"date" gorm:"type:date;not null;index:idx_break_slots_scope" validate:"required"`
	ShiftType       ShiftType `json:"shift_type" gorm:"type:varchar(20);not null;index:idx_break_slots_scope" validate:"required"`
	Location        string    `json:"location" gorm:"size:80;not null;index:idx_break_slots_scope" validate:"required"`
	StartTime       string    `json:"start_time" gorm:"size:5;not null" validate:"required"`
	DurationMinutes int       `json:"duration_minutes" gorm:"not null" validate:"required,min=5,max=120"`
	Capacity        int       `json:"capacity" gorm:"not null;default:1" validate:"min=1,max=50"`
	Label           string    `json:"label" gorm:"size:80"`
}

// TableName returns the table name for BreakSlot
func (BreakSlot) TableName() string {
	return "break_slots"
}
