package repository

import (
	"encoding/json"
	"errors"
	"time"

	"break-planner-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SchedulingStore aggregates the break-planning repositories behind the read
// and write primitives the scheduling engine depends on. The engine only sees
// this surface, which keeps the reconciliation steps mockable in tests.
type SchedulingStore struct {
	slots       *BreakSlotRepository
	assignments *BreakAssignmentRepository
	overrides   *SlotOverrideRepository
	roster      *RosterRepository
	staging     *StagingSnapshotRepository
}

// NewSchedulingStore creates a scheduling store over one database handle
func NewSchedulingStore(db *gorm.DB) *SchedulingStore {
	return &SchedulingStore{
		slots:       NewBreakSlotRepository(db),
		assignments: NewBreakAssignmentRepository(db),
		overrides:   NewSlotOverrideRepository(db),
		roster:      NewRosterRepository(db),
		staging:     NewStagingSnapshotRepository(db),
	}
}

// FetchRoster returns the staff scheduled to work the given date and shift
func (s *SchedulingStore) FetchRoster(date time.Time, shift models.ShiftType) ([]models.RosterEntry, error) {
	return s.roster.GetByDateShift(date, shift)
}

// FetchSlotOverrides returns template capacity overrides for a scope keyed by slot id
func (s *SchedulingStore) FetchSlotOverrides(date time.Time, shift models.ShiftType, location string) (map[string]int, error) {
	return s.overrides.GetByScope(date, shift, location)
}

// FetchCustomSlots returns the persisted custom slots for a scope
func (s *SchedulingStore) FetchCustomSlots(date time.Time, shift models.ShiftType, location string) ([]models.BreakSlot, error) {
	return s.slots.GetByScope(date, shift, location)
}

// FetchAssignments returns the persisted assignments for a scope
func (s *SchedulingStore) FetchAssignments(date time.Time, shift models.ShiftType, location string) ([]models.BreakAssignment, error) {
	return s.assignments.GetByScope(date, shift, location)
}

// DeleteAssignments removes every persisted assignment for the date and shift
func (s *SchedulingStore) DeleteAssignments(date time.Time, shift models.ShiftType) error {
	return s.assignments.DeleteByScope(date, shift)
}

// InsertAssignments inserts assignment rows
func (s *SchedulingStore) InsertAssignments(assignments []models.BreakAssignment) error {
	return s.assignments.CreateBatch(assignments)
}

// InsertCustomSlots inserts new custom slots and returns them with canonical ids
func (s *SchedulingStore) InsertCustomSlots(slots []models.BreakSlot) ([]models.BreakSlot, error) {
	return s.slots.CreateBatch(slots)
}

// UpdateCustomSlots saves changes to existing custom slots
func (s *SchedulingStore) UpdateCustomSlots(slots []models.BreakSlot) error {
	return s.slots.UpdateBatch(slots)
}

// DeleteCustomSlot removes one persisted custom slot
func (s *SchedulingStore) DeleteCustomSlot(id uuid.UUID) error {
	return s.slots.Delete(id)
}

// UpsertSlotOverride records a template capacity override
func (s *SchedulingStore) UpsertSlotOverride(override *models.SlotOverride) error {
	return s.overrides.Upsert(override)
}

// PersistStagingSnapshot stores the draft payload for a scope key
func (s *SchedulingStore) PersistStagingSnapshot(scopeKey string, payload json.RawMessage) error {
	return s.staging.Upsert(scopeKey, payload)
}

// LoadStagingSnapshot returns the staged payload for a scope key, or nil when
// no snapshot exists
func (s *SchedulingStore) LoadStagingSnapshot(scopeKey string) (json.RawMessage, error) {
	payload, err := s.staging.Get(scopeKey)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return payload, nil
}

// ClearStagingSnapshot deletes the snapshot for a scope key
func (s *SchedulingStore) ClearStagingSnapshot(scopeKey string) error {
	return s.staging.Delete(scopeKey)
}
