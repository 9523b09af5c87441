package models

import (
	"time"

	"github.com/google/uuid"
)

// BreakAssignment binds one staff member to one break slot within a scope.
// SlotID is a string because assignments may reference either a persisted
// custom slot (UUID) or a derived template slot id such as "std-day-1".
type BreakAssignment struct {
	BaseModel
	SlotID    string    `json:"slot_id" gorm:"size:60;not null;index" validate:"required"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index" validate:"required"`
	UserName  string    `json:"user_name" gorm:"size:100;not null" validate:"required"`
	Date      time.Time `json:"date" gorm:"type:date;not null;index:idx_break_assignments_scope" validate:"required"`
	ShiftType ShiftType `json:"shift_type" gorm:"type:varchar(20);not null;index:idx_break_assignments_scope" validate:"required"`
	Location  string    `json:"location" gorm:"size:80;not null" validate:"required"`
}

// TableName returns the table name for BreakAssignment
func (BreakAssignment) TableName() string {
	return "break_assignments"
}
