package repository

import (
	"time"

	"break-planner-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SlotOverrideRepository handles database operations for template capacity overrides
type SlotOverrideRepository struct {
	db *gorm.DB
}

// NewSlotOverrideRepository creates a new slot override repository
func NewSlotOverrideRepository(db *gorm.DB) *SlotOverrideRepository {
	return &SlotOverrideRepository{db: db}
}

// GetByScope returns the capacity overrides for a scope keyed by derived slot id
func (r *SlotOverrideRepository) GetByScope(date time.Time, shift models.ShiftType, location string) (map[string]int, error) {
	var overrides []models.SlotOverride
	query := r.db.Where("date = ? AND shift_type = ?", date.Format("2006-01-02"), shift)
	if location != "" {
		query = query.Where("location = ?", location)
	}
	if err := query.Find(&overrides).Error; err != nil {
		return nil, err
	}

	byID := make(map[string]int, len(overrides))
	for _, o := range overrides {
		byID[o.SlotID] = o.Capacity
	}
	return byID, nil
}

// Upsert records a capacity override for a template slot within a scope,
// replacing any previous override for the same slot
func (r *SlotOverrideRepository) Upsert(override *models.SlotOverride) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "date"}, {Name: "shift_type"}, {Name: "location"}, {Name: "slot_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"capacity", "updated_at"}),
	}).Create(override).Error
}
