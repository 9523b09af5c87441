package models

import (
	"time"
)

// SlotOverride records an admin capacity override against a template slot's
// derived id for one scope. Overrides never become slot rows of their own.
// One override per (scope, slot id); upserts replace the previous value.
type SlotOverride struct {
	BaseModel
	Date      time.Time `json:"date" gorm:"type:date;not null;uniqueIndex:uq_slot_overrides_scope_slot" validate:"required"`
	ShiftType ShiftType `json:"shift_type" gorm:"type:varchar(20);not null;uniqueIndex:uq_slot_overrides_scope_slot" validate:"required"`
	Location  string    `json:"location" gorm:"size:80;not null;uniqueIndex:uq_slot_overrides_scope_slot" validate:"required"`
	SlotID    string    `json:"slot_id" gorm:"size:60;not null;uniqueIndex:uq_slot_overrides_scope_slot" validate:"required"`
	Capacity  int       `json:"capacity" gorm:"not null" validate:"required,min=1,max=50"`
}

// TableName returns the table name for SlotOverride
func (SlotOverride) TableName() string {
	return "slot_overrides"
}
