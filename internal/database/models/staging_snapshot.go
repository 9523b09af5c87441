package models

import (
	"encoding/json"
)

// StagingSnapshot holds the serialized draft assignment set for one scope key
// so unsaved edits survive the user navigating away and back. Exactly one row
// per scope key; cleared on successful commit.
type StagingSnapshot struct {
	BaseModel
	ScopeKey string          `json:"scope_key" gorm:"size:120;not null;uniqueIndex" validate:"required"`
	Payload  json.RawMessage `json:"payload" gorm:"type:jsonb;not null"`
}

// TableName returns the table name for StagingSnapshot
func (StagingSnapshot) TableName() string {
	return "staging_snapshots"
}
