package service

import (
	"encoding/json"
	"time"

	"break-planner-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// SchedulingStore is the authoritative-store capability surface the break
// engine depends on. The engine owns no wire protocol or file format; every
// read and write goes through these primitives.
type SchedulingStore interface {
	FetchRoster(date time.Time, shift models.ShiftType) ([]models.RosterEntry, error)
	FetchSlotOverrides(date time.Time, shift models.ShiftType, location string) (map[string]int, error)
	FetchCustomSlots(date time.Time, shift models.ShiftType, location string) ([]models.BreakSlot, error)
	FetchAssignments(date time.Time, shift models.ShiftType, location string) ([]models.BreakAssignment, error)
	DeleteAssignments(date time.Time, shift models.ShiftType) error
	InsertAssignments(assignments []models.BreakAssignment) error
	InsertCustomSlots(slots []models.BreakSlot) ([]models.BreakSlot, error)
	UpdateCustomSlots(slots []models.BreakSlot) error
	DeleteCustomSlot(id uuid.UUID) error
	UpsertSlotOverride(override *models.SlotOverride) error
	PersistStagingSnapshot(scopeKey string, payload json.RawMessage) error
	LoadStagingSnapshot(scopeKey string) (json.RawMessage, error)
	ClearStagingSnapshot(scopeKey string) error
}

// Notifier surfaces user-facing success/error/warning messages
type Notifier interface {
	Success(message string)
	Warning(message string)
	Error(message string)
}

// BreakScheduleServiceInterface defines the interface for the break schedule service
type BreakScheduleServiceInterface interface {
	GetCatalog(req *ScopeRequest) (*CatalogResponse, error)
	EligibleStaff(req *EligibleStaffRequest) (*EligibleStaffResponse, error)
	AddAssignment(req *AddAssignmentRequest) (*AssignmentResponse, error)
	RemoveAssignment(assignmentID string, req *RemoveAssignmentRequest) error
	AddCustomSlot(req *AddCustomSlotRequest) (*SlotResponse, error)
	UpdateCustomSlot(slotID string, req *UpdateCustomSlotRequest) error
	RemoveCustomSlot(slotID string, req *RemoveCustomSlotRequest) error
	SetSlotOverride(slotID string, req *SlotOverrideRequest) error
	Commit(req *ScopeRequest) (*CommitResponse, error)
	Discard(req *ScopeRequest) error
}

// RosterServiceInterface defines the interface for the roster service
type RosterServiceInterface interface {
	Create(req *CreateRosterEntryRequest) (*RosterEntryResponse, error)
	List(date, shift string) (*RosterListResponse, error)
	Delete(id uuid.UUID) error
}
