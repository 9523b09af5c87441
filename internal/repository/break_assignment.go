package repository

import (
	"time"

	"break-planner-backend/internal/database/models"

	"gorm.io/gorm"
)

// BreakAssignmentRepository handles database operations for break assignments
type BreakAssignmentRepository struct {
	db *gorm.DB
}

// NewBreakAssignmentRepository creates a new break assignment repository
func NewBreakAssignmentRepository(db *gorm.DB) *BreakAssignmentRepository {
	return &BreakAssignmentRepository{db: db}
}

// GetByScope retrieves persisted assignments for a date and shift, optionally
// narrowed to one location.
func (r *BreakAssignmentRepository) GetByScope(date time.Time, shift models.ShiftType, location string) ([]models.BreakAssignment, error) {
	var assignments []models.BreakAssignment
	query := r.db.Where("date = ? AND shift_type = ?", date.Format("2006-01-02"), shift)
	if location != "" {
		query = query.Where("location = ?", location)
	}
	err := query.Order("created_at ASC").Find(&assignments).Error
	return assignments, err
}

// DeleteByScope removes every assignment for the exact (date, shift) scope.
// The save operation owns assignments at scope granularity, so reconciliation
// always deletes and reinserts rather than diffing per row.
func (r *BreakAssignmentRepository) DeleteByScope(date time.Time, shift models.ShiftType) error {
	return r.db.Where("date = ? AND shift_type = ?", date.Format("2006-01-02"), shift).
		Delete(&models.BreakAssignment{}).Error
}

// CreateBatch inserts assignment rows
func (r *BreakAssignmentRepository) CreateBatch(assignments []models.BreakAssignment) error {
	if len(assignments) == 0 {
		return nil
	}
	return r.db.Create(&assignments).Error
}
