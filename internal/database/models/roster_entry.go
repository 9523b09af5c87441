package models

import (
	"time"

	"github.com/google/uuid"
)

// RosterEntry records that a staff member is scheduled to work a given date
// and shift at a location. The break engine reads the roster to seed the pool
// of staff that can be assigned to slots.
type RosterEntry struct {
	BaseModel
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index" validate:"required"`
	UserName  string    `json:"user_name" gorm:"size:100;not null" validate:"required"`
	Date      time.Time `json:"date" gorm:"type:date;not null;index:idx_roster_entries_shift" validate:"required"`
	ShiftType ShiftType `json:"shift_type" gorm:"type:varchar(20);not null;index:idx_roster_entries_shift" validate:"required"`
	Location  string    `json:"location" gorm:"size:80;not null" validate:"required"`
}

// TableName returns the table name for RosterEntry
func (RosterEntry) TableName() string {
	return "roster_entries"
}
