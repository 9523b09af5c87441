package repository

import (
	"encoding/json"

	"break-planner-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StagingSnapshotRepository handles database operations for draft staging snapshots
type StagingSnapshotRepository struct {
	db *gorm.DB
}

// NewStagingSnapshotRepository creates a new staging snapshot repository
func NewStagingSnapshotRepository(db *gorm.DB) *StagingSnapshotRepository {
	return &StagingSnapshotRepository{db: db}
}

// Upsert stores the draft payload for a scope key, replacing any previous snapshot
func (r *StagingSnapshotRepository) Upsert(scopeKey string, payload json.RawMessage) error {
	snapshot := models.StagingSnapshot{
		ScopeKey: scopeKey,
		Payload:  payload,
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "scope_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&snapshot).Error
}

// Get retrieves the snapshot payload for a scope key; gorm.ErrRecordNotFound
// when no draft was staged
func (r *StagingSnapshotRepository) Get(scopeKey string) (json.RawMessage, error) {
	var snapshot models.StagingSnapshot
	err := r.db.First(&snapshot, "scope_key = ?", scopeKey).Error
	if err != nil {
		return nil, err
	}
	return snapshot.Payload, nil
}

// Delete clears the snapshot for a scope key
func (r *StagingSnapshotRepository) Delete(scopeKey string) error {
	return r.db.Delete(&models.StagingSnapshot{}, "scope_key = ?", scopeKey).Error
}
