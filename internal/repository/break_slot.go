package repository

import (
	"time"

	"break-planner-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BreakSlotRepository handles database operations for custom break slots
type BreakSlotRepository struct {
	db *gorm.DB
}

// NewBreakSlotRepository creates a new break slot repository
func NewBreakSlotRepository(db *gorm.DB) *BreakSlotRepository {
	return &BreakSlotRepository{db: db}
}

// GetByScope retrieves all custom slots for a (date, shift, location) scope.
// An empty location matches every location, which the catalog needs when the
// caller is browsing "all locations".
func (r *BreakSlotRepository) GetByScope(date time.Time, shift models.ShiftType, location string) ([]models.BreakSlot, error) {
	var slots []models.BreakSlot
	query := r.db.Where("date = ? AND shift_type = ?", date.Format("2006-01-02"), shift)
	if location != "" {
		query = query.Where("location = ?", location)
	}
	err := query.Order("start_time ASC").Find(&slots).Error
	return slots, err
}

// GetByID retrieves a custom slot by ID
func (r *BreakSlotRepository) GetByID(id uuid.UUID) (*models.BreakSlot, error) {
	var slot models.BreakSlot
	err := r.db.First(&slot, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &slot, nil
}

// CreateBatch inserts new custom slots; GORM fills in canonical UUIDs
func (r *BreakSlotRepository) CreateBatch(slots []models.BreakSlot) ([]models.BreakSlot, error) {
	if len(slots) == 0 {
		return slots, nil
	}
	if err := r.db.Create(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

// UpdateBatch saves field changes on existing custom slots
func (r *BreakSlotRepository) UpdateBatch(slots []models.BreakSlot) error {
	for i := range slots {
		if err := r.db.Save(&slots[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

// Delete removes a custom slot
func (r *BreakSlotRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.BreakSlot{}, "id = ?", id).Error
}
