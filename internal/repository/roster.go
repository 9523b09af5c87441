package repository

import (
	"time"

	"break-planner-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RosterRepository handles database operations for staff roster entries
type RosterRepository struct {
	db *gorm.DB
}

// NewRosterRepository creates a new roster repository
func NewRosterRepository(db *gorm.DB) *RosterRepository {
	return &RosterRepository{db: db}
}

// Create creates a new roster entry
func (r *RosterRepository) Create(entry *models.RosterEntry) error {
	return r.db.Create(entry).Error
}

// GetByID retrieves a roster entry by ID
func (r *RosterRepository) GetByID(id uuid.UUID) (*models.RosterEntry, error) {
	var entry models.RosterEntry
	err := r.db.First(&entry, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// GetByDateShift retrieves the staff scheduled to work a date and shift
func (r *RosterRepository) GetByDateShift(date time.Time, shift models.ShiftType) ([]models.RosterEntry, error) {
	var entries []models.RosterEntry
	err := r.db.Where("date = ? AND shift_type = ?", date.Format("2006-01-02"), shift).
		Order("user_name ASC").Find(&entries).Error
	return entries, err
}

// Exists reports whether a staff member already has a roster entry for the
// given date and shift
func (r *RosterRepository) Exists(userID uuid.UUID, date time.Time, shift models.ShiftType) (bool, error) {
	var count int64
	err := r.db.Model(&models.RosterEntry{}).
		Where("user_id = ? AND date = ? AND shift_type = ?", userID, date.Format("2006-01-02"), shift).
		Count(&count).Error
	return count > 0, err
}

// Update updates a roster entry
func (r *RosterRepository) Update(entry *models.RosterEntry) error {
	return r.db.Save(entry).Error
}

// Delete deletes a roster entry
func (r *RosterRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.RosterEntry{}, "id = ?", id).Error
}
