package testutils

import (
	"encoding/json"
	"time"

	"break-planner-backend/internal/database/models"

	"github.com/google/uuid"
)

// RosterEntryFactory provides methods to create test RosterEntry data
type RosterEntryFactory struct{}

// NewRosterEntryFactory creates a new RosterEntryFactory
func NewRosterEntryFactory() *RosterEntryFactory {
	return &RosterEntryFactory{}
}

// Create creates a test RosterEntry with default values
func (f *RosterEntryFactory) Create() *models.RosterEntry {
	return &models.RosterEntry{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		UserID:    uuid.New(),
		UserName:  "Test Worker",
		Date:      time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		ShiftType: models.ShiftTypeDay,
		Location:  "main-floor",
	}
}

// WithScope sets the scope fields for the roster entry
func (f *RosterEntryFactory) WithScope(date time.Time, shift models.ShiftType, location string) *models.RosterEntry {
	entry := f.Create()
	entry.Date = date
	entry.ShiftType = shift
	entry.Location = location
	return entry
}

// WithUser sets a custom user for the roster entry
func (f *RosterEntryFactory) WithUser(userID uuid.UUID, userName string) *models.RosterEntry {
	entry := f.Create()
	entry.UserID = userID
	entry.UserName = userName
	return entry
}

// BreakSlotFactory provides methods to create test BreakSlot data
type BreakSlotFactory struct{}

// NewBreakSlotFactory creates a new BreakSlotFactory
func NewBreakSlotFactory() *BreakSlotFactory {
	return &BreakSlotFactory{}
}

// Create creates a test BreakSlot with default values
func (f *BreakSlotFactory) Create() *models.BreakSlot {
	return &models.BreakSlot{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Date:            time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		ShiftType:       models.ShiftTypeDay,
		Location:        "main-floor",
		StartTime:       "11:15",
		DurationMinutes: 15,
		Capacity:        2,
		Label:           "Extra Break (15 min)",
	}
}

// WithScope sets the scope fields for the slot
func (f *BreakSlotFactory) WithScope(date time.Time, shift models.ShiftType, location string) *models.BreakSlot {
	slot := f.Create()
	slot.Date = date
	slot.ShiftType = shift
	slot.Location = location
	return slot
}

// WithStartTime sets a custom start time for the slot
func (f *BreakSlotFactory) WithStartTime(startTime string) *models.BreakSlot {
	slot := f.Create()
	slot.StartTime = startTime
	return slot
}

// WithDuration sets a custom duration for the slot
func (f *BreakSlotFactory) WithDuration(minutes int) *models.BreakSlot {
	slot := f.Create()
	slot.DurationMinutes = minutes
	return slot
}

// BreakAssignmentFactory provides methods to create test BreakAssignment data
type BreakAssignmentFactory struct{}

// NewBreakAssignmentFactory creates a new BreakAssignmentFactory
func NewBreakAssignmentFactory() *BreakAssignmentFactory {
	return &BreakAssignmentFactory{}
}

// Create creates a test BreakAssignment with default values
func (f *BreakAssignmentFactory) Create() *models.BreakAssignment {
	return &models.BreakAssignment{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		SlotID:    "std-day-0",
		UserID:    uuid.New(),
		UserName:  "Test Worker",
		Date:      time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		ShiftType: models.ShiftTypeDay,
		Location:  "main-floor",
	}
}

// WithSlot sets the slot id for the assignment
func (f *BreakAssignmentFactory) WithSlot(slotID string) *models.BreakAssignment {
	assignment := f.Create()
	assignment.SlotID = slotID
	return assignment
}

// WithUser sets a custom user for the assignment
func (f *BreakAssignmentFactory) WithUser(userID uuid.UUID, userName string) *models.BreakAssignment {
	assignment := f.Create()
	assignment.UserID = userID
	assignment.UserName = userName
	return assignment
}

// WithScope sets the scope fields for the assignment
func (f *BreakAssignmentFactory) WithScope(date time.Time, shift models.ShiftType, location string) *models.BreakAssignment {
	assignment := f.Create()
	assignment.Date = date
	assignment.ShiftType = shift
	assignment.Location = location
	return assignment
}

// SlotOverrideFactory provides methods to create test SlotOverride data
type SlotOverrideFactory struct{}

// NewSlotOverrideFactory creates a new SlotOverrideFactory
func NewSlotOverrideFactory() *SlotOverrideFactory {
	return &SlotOverrideFactory{}
}

// Create creates a test SlotOverride with default values
func (f *SlotOverrideFactory) Create() *models.SlotOverride {
	return &models.SlotOverride{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Date:      time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		ShiftType: models.ShiftTypeDay,
		Location:  "main-floor",
		SlotID:    "std-day-0",
		Capacity:  5,
	}
}

// WithSlot sets the slot id for the override
func (f *SlotOverrideFactory) WithSlot(slotID string) *models.SlotOverride {
	override := f.Create()
	override.SlotID = slotID
	return override
}

// WithCapacity sets a custom capacity for the override
func (f *SlotOverrideFactory) WithCapacity(capacity int) *models.SlotOverride {
	override := f.Create()
	override.Capacity = capacity
	return override
}

// StagingSnapshotFactory provides methods to create test StagingSnapshot data
type StagingSnapshotFactory struct{}

// NewStagingSnapshotFactory creates a new StagingSnapshotFactory
func NewStagingSnapshotFactory() *StagingSnapshotFactory {
	return &StagingSnapshotFactory{}
}

// Create creates a test StagingSnapshot with default values
func (f *StagingSnapshotFactory) Create() *models.StagingSnapshot {
	return &models.StagingSnapshot{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ScopeKey: "breaks:2025-03-10:day:main-floor",
		Payload:  json.RawMessage(`{"assignments":[]}`),
	}
}

// WithScopeKey sets a custom scope key for the snapshot
func (f *StagingSnapshotFactory) WithScopeKey(scopeKey string) *models.StagingSnapshot {
	snapshot := f.Create()
	snapshot.ScopeKey = scopeKey
	return snapshot
}

// WithPayload sets a custom payload for the snapshot
func (f *StagingSnapshotFactory) WithPayload(payload json.RawMessage) *models.StagingSnapshot {
	snapshot := f.Create()
	snapshot.Payload = payload
	return snapshot
}

// FactorySet provides access to all factories
type FactorySet struct {
	RosterEntry     *RosterEntryFactory
	BreakSlot       *BreakSlotFactory
	BreakAssignment *BreakAssignmentFactory
	SlotOverride    *SlotOverrideFactory
	StagingSnapshot *StagingSnapshotFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		RosterEntry:     NewRosterEntryFactory(),
		BreakSlot:       NewBreakSlotFactory(),
		BreakAssignment: NewBreakAssignmentFactory(),
		SlotOverride:    NewSlotOverrideFactory(),
		StagingSnapshot: NewStagingSnapshotFactory(),
	}
}

// CreateScopedSchedule creates a roster entry, a custom slot and an assignment
// that all share the same (date, shift, location) scope.
func (fs *FactorySet) CreateScopedSchedule(date time.Time, shift models.ShiftType, location string) (*models.RosterEntry, *models.BreakSlot, *models.BreakAssignment) {
	entry := fs.RosterEntry.WithScope(date, shift, location)

	slot := fs.BreakSlot.WithScope(date, shift, location)

	assignment := fs.BreakAssignment.WithScope(date, shift, location)
	assignment.UserID = entry.UserID
	assignment.UserName = entry.UserName
	assignment.SlotID = slot.ID.String()

	return entry, slot, assignment
}
