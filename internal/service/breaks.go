package service

import (
	"fmt"

	"break-planner-backend/internal/database/models"
	apperrors "break-planner-backend/internal/errors"
	"break-planner-backend/internal/logger"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// BreakScheduleService is the break-slot scheduling engine: it builds slot
// catalogs, gates assignments through eligibility, manages the per-scope draft
// ledgers and reconciles them with the authoritative store on save.
type BreakScheduleService struct {
	store     SchedulingStore
	ledgers   *LedgerManager
	committer *Committer
	notifier  Notifier
	validator *validator.Validate
}

// NewBreakScheduleService creates a new break schedule service
func NewBreakScheduleService(store SchedulingStore, notifier Notifier, validator *validator.Validate) *BreakScheduleService {
	return &BreakScheduleService{
		store:     store,
		ledgers:   NewLedgerManager(),
		committer: NewCommitter(store, notifier),
		notifier:  notifier,
		validator: validator,
	}
}

// ScopeRequest identifies the scheduling scope a request operates on
type ScopeRequest struct {
	Date      string `json:"date" form:"date" validate:"required"`
	ShiftType string `json:"shift_type" form:"shift_type" validate:"required"`
	Location  string `json:"location" form:"location"`
}

// AssignmentView is one assignment as rendered inside a slot
type AssignmentView struct {
	ID       string    `json:"id"`
	UserID   uuid.UUID `json:"user_id"`
	UserName string    `json:"user_name"`
}

// SlotView is one catalog slot with its current assignments
type SlotView struct {
	ID              string               `json:"id"`
	StartTime       string               `json:"start_time"`
	DurationMinutes int                  `json:"duration_minutes"`
	Capacity        int                  `json:"capacity"`
	BreakLabel      string               `json:"break_label"`
	Origin          models.SlotOrigin    `json:"origin"`
	Category        models.BreakCategory `json:"category"`
	Assignments     []AssignmentView     `json:"assignments"`
}

// CatalogResponse is the full break picture for one scope
type CatalogResponse struct {
	Date              string             `json:"date"`
	ShiftType         models.ShiftType   `json:"shift_type"`
	Location          string             `json:"location"`
	ScopeKey          string             `json:"scope_key"`
	HasUnsavedChanges bool               `json:"has_unsaved_changes"`
	Slots             []SlotView         `json:"slots"`
	Staff             []StaffEligibility `json:"staff"`
}

// EligibleStaffRequest asks which staff may take one slot
type EligibleStaffRequest struct {
	ScopeRequest
	SlotID string `json:"slot_id" form:"slot_id" validate:"required"`
}

// EligibleStaffView pairs a staff member with the eligibility decision for a slot
type EligibleStaffView struct {
	UserID   uuid.UUID `json:"user_id"`
	UserName string    `json:"user_name"`
	Decision Decision  `json:"decision"`
}

// EligibleStaffResponse lists the eligible pool for one slot
type EligibleStaffResponse struct {
	SlotID string              `json:"slot_id"`
	Staff  []EligibleStaffView `json:"staff"`
}

// AddAssignmentRequest stages one staff member onto one slot
type AddAssignmentRequest struct {
	Date      string    `json:"date" validate:"required"`
	ShiftType string    `json:"shift_type" validate:"required"`
	Location  string    `json:"location" validate:"required"`
	SlotID    string    `json:"slot_id" validate:"required"`
	UserID    uuid.UUID `json:"user_id" validate:"required"`
	UserName  string    `json:"user_name" validate:"required"`
}

// AssignmentResponse returns the staged assignment and the staff member's
// recomputed eligibility
type AssignmentResponse struct {
	Assignment  AssignmentView   `json:"assignment"`
	SlotID      string           `json:"slot_id"`
	Eligibility StaffEligibility `json:"eligibility"`
}

// RemoveAssignmentRequest removes a staged assignment on behalf of an actor
type RemoveAssignmentRequest struct {
	Date         string    `json:"date" validate:"required"`
	ShiftType    string    `json:"shift_type" validate:"required"`
	Location     string    `json:"location" validate:"required"`
	ActorID      uuid.UUID `json:"actor_id" validate:"required"`
	ActorIsAdmin bool      `json:"actor_is_admin"`
}

// AddCustomSlotRequest stages a new admin-defined slot
type AddCustomSlotRequest struct {
	Date            string `json:"date" validate:"required"`
	ShiftType       string `json:"shift_type" validate:"required"`
	Location        string `json:"location" validate:"required"`
	StartTime       string `json:"start_time" validate:"required"`
	DurationMinutes int    `json:"duration_minutes" validate:"required,min=5,max=120"`
	Capacity        int    `json:"capacity" validate:"min=0,max=50"`
	Label           string `json:"label" validate:"max=80"`
}

// SlotResponse returns one slot definition
type SlotResponse struct {
	Slot SlotView `json:"slot"`
}

// UpdateCustomSlotRequest stages field edits on a custom slot
type UpdateCustomSlotRequest struct {
	Date            string `json:"date" validate:"required"`
	ShiftType       string `json:"shift_type" validate:"required"`
	Location        string `json:"location" validate:"required"`
	StartTime       string `json:"start_time" validate:"required"`
	DurationMinutes int    `json:"duration_minutes" validate:"required,min=5,max=120"`
	Capacity        int    `json:"capacity" validate:"required,min=1,max=50"`
	Label           string `json:"label" validate:"max=80"`
}

// RemoveCustomSlotRequest removes a custom slot; deleting a persisted slot is
// immediate and requires confirmation
type RemoveCustomSlotRequest struct {
	Date      string `json:"date" validate:"required"`
	ShiftType string `json:"shift_type" validate:"required"`
	Location  string `json:"location" validate:"required"`
	Confirm   bool   `json:"confirm"`
}

// SlotOverrideRequest records a capacity override for a template slot
type SlotOverrideRequest struct {
	Date      string `json:"date" validate:"required"`
	ShiftType string `json:"shift_type" validate:"required"`
	Location  string `json:"location" validate:"required"`
	Capacity  int    `json:"capacity" validate:"required,min=1,max=50"`
}

// CommitResponse reports a successful save
type CommitResponse struct {
	Message            string `json:"message"`
	AssignmentsSaved   int    `json:"assignments_saved"`
	AssignmentsDropped int    `json:"assignments_dropped"`
	SlotsCreated       int    `json:"slots_created"`
	SlotsUpdated       int    `json:"slots_updated"`
}

// GetCatalog assembles the slot catalog and per-staff eligibility for a scope
func (s *BreakScheduleService) GetCatalog(req *ScopeRequest) (*CatalogResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	scope, err := ParseScope(req.Date, req.ShiftType, req.Location)
	if err != nil {
		return nil, err
	}

	ledger, err := s.ledgerFor(scope)
	if err != nil {
		return nil, err
	}
	catalog, _, err := s.catalogFor(scope, ledger)
	if err != nil {
		return nil, err
	}

	staff, err := s.staffEligibility(scope, ledger, catalog)
	if err != nil {
		return nil, err
	}

	return &CatalogResponse{
		Date:              scope.DateString(),
		ShiftType:         scope.ShiftType,
		Location:          scope.Location,
		ScopeKey:          scope.Key(),
		HasUnsavedChanges: hasUnsavedChanges(ledger),
		Slots:             slotViews(catalog, ledger),
		Staff:             staff,
	}, nil
}

// EligibleStaff returns the pool of staff that may take a slot, with the
// decision (and reason) for each. Staff already on the slot are excluded
// entirely; re-assignment to the same slot is not offered.
func (s *BreakScheduleService) EligibleStaff(req *EligibleStaffRequest) (*EligibleStaffResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	scope, err := ParseScope(req.Date, req.ShiftType, req.Location)
	if err != nil {
		return nil, err
	}

	ledger, err := s.ledgerFor(scope)
	if err != nil {
		return nil, err
	}
	catalog, _, err := s.catalogFor(scope, ledger)
	if err != nil {
		return nil, err
	}
	index := IndexSlots(catalog)
	slot, ok := index[req.SlotID]
	if !ok {
		return nil, apperrors.ErrSlotNotFound
	}

	roster, err := s.store.FetchRoster(scope.Date, scope.ShiftType)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch roster: %w", err)
	}

	pool := make([]EligibleStaffView, 0, len(roster))
	for _, entry := range roster {
		if scope.HasConcreteLocation() && entry.Location != scope.Location {
			continue
		}
		if ledger.IsAssignedToSlot(entry.UserID, slot.ID) {
			continue
		}
		elig := ledger.EligibilityFor(entry.UserID, entry.UserName, index)
		pool = append(pool, EligibleStaffView{
			UserID:   entry.UserID,
			UserName: entry.UserName,
			Decision: CanAssign(elig, slot, scope.ShiftType),
		})
	}

	return &EligibleStaffResponse{SlotID: slot.ID, Staff: pool}, nil
}

// AddAssignment stages an eligibility-gated assignment in the scope's ledger
func (s *BreakScheduleService) AddAssignment(req *AddAssignmentRequest) (*AssignmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	scope, err := ParseScope(req.Date, req.ShiftType, req.Location)
	if err != nil {
		return nil, err
	}

	ledger, err := s.ledgerFor(scope)
	if err != nil {
		return nil, err
	}
	catalog, _, err := s.catalogFor(scope, ledger)
	if err != nil {
		return nil, err
	}
	index := IndexSlots(catalog)
	slot, ok := index[req.SlotID]
	if !ok {
		return nil, apperrors.ErrSlotNotFound
	}

	assignment, err := ledger.Add(req.UserID, req.UserName, slot, index)
	if err != nil {
		return nil, err
	}
	s.persistSnapshot(ledger)

	return &AssignmentResponse{
		Assignment: AssignmentView{
			ID:       assignment.ID,
			UserID:   assignment.UserID,
			UserName: assignment.UserName,
		},
		SlotID:      slot.ID,
		Eligibility: ledger.EligibilityFor(req.UserID, req.UserName, index),
	}, nil
}

// RemoveAssignment deletes a staged assignment; actors may only remove their
// own unless acting as admin
func (s *BreakScheduleService) RemoveAssignment(assignmentID string, req *RemoveAssignmentRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	scope, err := ParseScope(req.Date, req.ShiftType, req.Location)
	if err != nil {
		return err
	}

	ledger, err := s.ledgerFor(scope)
	if err != nil {
		return err
	}
	if err := ledger.Remove(assignmentID, req.ActorID, req.ActorIsAdmin); err != nil {
		return err
	}
	s.persistSnapshot(ledger)
	return nil
}

// AddCustomSlot stages a new draft custom slot for the scope
func (s *BreakScheduleService) AddCustomSlot(req *AddCustomSlotRequest) (*SlotResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	scope, err := ParseScope(req.Date, req.ShiftType, req.Location)
	if err != nil {
		return nil, err
	}

	ledger, err := s.ledgerFor(scope)
	if err != nil {
		return nil, err
	}
	catalog, _, err := s.catalogFor(scope, ledger)
	if err != nil {
		return nil, err
	}

	slot, err := ledger.AddCustomSlot(req.StartTime, req.DurationMinutes, req.Capacity, req.Label, catalog)
	if err != nil {
		return nil, err
	}

	return &SlotResponse{Slot: SlotView{
		ID:              slot.ID,
		StartTime:       slot.StartTime,
		DurationMinutes: slot.DurationMinutes,
		Capacity:        slot.Capacity,
		BreakLabel:      slot.BreakLabel,
		Origin:          slot.Origin,
		Category:        slot.Category,
		Assignments:     []AssignmentView{},
	}}, nil
}

// UpdateCustomSlot stages field edits on a draft or persisted custom slot
func (s *BreakScheduleService) UpdateCustomSlot(slotID string, req *UpdateCustomSlotRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	scope, err := ParseScope(req.Date, req.ShiftType, req.Location)
	if err != nil {
		return err
	}

	ledger, err := s.ledgerFor(scope)
	if err != nil {
		return err
	}

	if !IsDraftID(slotID) {
		persisted, err := s.store.FetchCustomSlots(scope.Date, scope.ShiftType, scope.LocationFilter())
		if err != nil {
			return fmt.Errorf("failed to fetch custom slots: %w", err)
		}
		found := false
		for _, row := range persisted {
			if row.ID.String() == slotID {
				found = true
				break
			}
		}
		if !found {
			return apperrors.ErrSlotNotFound
		}
	}

	ledger.UpdateCustomSlot(SlotDefinition{
		ID:              slotID,
		StartTime:       req.StartTime,
		DurationMinutes: req.DurationMinutes,
		Capacity:        req.Capacity,
		BreakLabel:      req.Label,
	})
	return nil
}

// RemoveCustomSlot removes a custom slot. Draft slots are removed locally;
// deleting a persisted slot is not deferred to the next save, it happens
// immediately once confirmed.
func (s *BreakScheduleService) RemoveCustomSlot(slotID string, req *RemoveCustomSlotRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	scope, err := ParseScope(req.Date, req.ShiftType, req.Location)
	if err != nil {
		return err
	}

	ledger, err := s.ledgerFor(scope)
	if err != nil {
		return err
	}

	if IsDraftID(slotID) {
		if !ledger.RemoveDraftSlot(slotID) {
			return apperrors.ErrSlotNotFound
		}
		s.persistSnapshot(ledger)
		return nil
	}

	id, err := uuid.Parse(slotID)
	if err != nil {
		return apperrors.ErrSlotNotFound
	}
	if !req.Confirm {
		return apperrors.ErrConfirmationRequired
	}
	if err := s.store.DeleteCustomSlot(id); err != nil {
		s.notifier.Error(fmt.Sprintf("Deleting the custom slot failed: %v", err))
		return fmt.Errorf("failed to delete custom slot: %w", err)
	}

	delete(ledger.EditedSlots, slotID)
	if dropped := ledger.DropAssignmentsForSlot(slotID); dropped > 0 {
		s.notifier.Warning(fmt.Sprintf("Removed %d staged assignment(s) for the deleted slot", dropped))
	}
	s.persistSnapshot(ledger)
	s.notifier.Success("Custom slot deleted")
	return nil
}

// SetSlotOverride records a capacity override for a template slot within a scope
func (s *BreakScheduleService) SetSlotOverride(slotID string, req *SlotOverrideRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	scope, err := ParseScope(req.Date, req.ShiftType, req.Location)
	if err != nil {
		return err
	}
	if !scope.HasConcreteLocation() {
		return apperrors.ErrLocationRequired
	}

	return s.store.UpsertSlotOverride(&models.SlotOverride{
		Date:      scope.Date,
		ShiftType: scope.ShiftType,
		Location:  scope.Location,
		SlotID:    slotID,
		Capacity:  req.Capacity,
	})
}

// Commit reconciles the scope's draft ledger with the authoritative store
func (s *BreakScheduleService) Commit(req *ScopeRequest) (*CommitResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	scope, err := ParseScope(req.Date, req.ShiftType, req.Location)
	if err != nil {
		return nil, err
	}

	ledger, err := s.ledgerFor(scope)
	if err != nil {
		return nil, err
	}
	catalog, persisted, err := s.catalogFor(scope, ledger)
	if err != nil {
		return nil, err
	}

	result, err := s.committer.Commit(scope, ledger, catalog, persisted)
	if err != nil {
		// Ledger is kept so the user can retry after a partial failure.
		return nil, err
	}

	// Drop the in-memory ledger; the next read reseeds from the store so only
	// canonical ids remain visible.
	s.ledgers.Discard(scope.Key())

	return &CommitResponse{
		Message:            fmt.Sprintf("Breaks saved for %s", scope),
		AssignmentsSaved:   result.AssignmentsSaved,
		AssignmentsDropped: result.AssignmentsDropped,
		SlotsCreated:       result.SlotsCreated,
		SlotsUpdated:       result.SlotsUpdated,
	}, nil
}

// Discard abandons the scope's draft: the in-memory ledger and its staging
// snapshot are both dropped
func (s *BreakScheduleService) Discard(req *ScopeRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	scope, err := ParseScope(req.Date, req.ShiftType, req.Location)
	if err != nil {
		return err
	}

	s.ledgers.Discard(scope.Key())
	if err := s.store.ClearStagingSnapshot(scope.Key()); err != nil {
		return fmt.Errorf("failed to clear staging snapshot: %w", err)
	}
	return nil
}

// ledgerFor returns the active ledger for a scope, seeding a new one from the
// staging snapshot when present or from the authoritative store otherwise. A
// snapshot that fails to parse is discarded and treated as absent.
func (s *BreakScheduleService) ledgerFor(scope SchedulingScope) (*DraftLedger, error) {
	if ledger, ok := s.ledgers.Get(scope.Key()); ok {
		return ledger, nil
	}

	log := logger.WithScope(scope.DateString(), string(scope.ShiftType), scope.Location)
	ledger := NewDraftLedger(scope)

	restored := false
	payload, err := s.store.LoadStagingSnapshot(scope.Key())
	if err != nil {
		return nil, fmt.Errorf("failed to load staging snapshot: %w", err)
	}
	if payload != nil {
		if err := ledger.RestoreAssignments(payload); err != nil {
			log.Warnf("discarding corrupt staging snapshot: %v", err)
			_ = s.store.ClearStagingSnapshot(scope.Key())
		} else {
			restored = true
		}
	}

	if !restored {
		rows, err := s.store.FetchAssignments(scope.Date, scope.ShiftType, scope.LocationFilter())
		if err != nil {
			return nil, fmt.Errorf("failed to fetch assignments: %w", err)
		}
		ledger.SeedFromStore(rows)
	}

	s.ledgers.Put(ledger)
	return ledger, nil
}

// catalogFor builds the current catalog for a scope, overlaying the ledger's
// pending slot edits for display, and returns the untouched persisted rows for
// the committer's change detection
func (s *BreakScheduleService) catalogFor(scope SchedulingScope, ledger *DraftLedger) ([]SlotDefinition, []models.BreakSlot, error) {
	overrides, err := s.store.FetchSlotOverrides(scope.Date, scope.ShiftType, scope.LocationFilter())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch slot overrides: %w", err)
	}
	persisted, err := s.store.FetchCustomSlots(scope.Date, scope.ShiftType, scope.LocationFilter())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch custom slots: %w", err)
	}

	catalog := BuildCatalog(scope, overrides, persisted, ledger.DraftSlots)

	if len(ledger.EditedSlots) > 0 {
		for i := range catalog {
			if edit, ok := ledger.EditedSlots[catalog[i].ID]; ok {
				edit.ID = catalog[i].ID
				edit.Origin = catalog[i].Origin
				catalog[i] = edit
			}
		}
		SortSlots(catalog, scope.ShiftType)
	}

	return catalog, persisted, nil
}

// staffEligibility derives the eligibility summary for every rostered staff
// member at the scope
func (s *BreakScheduleService) staffEligibility(scope SchedulingScope, ledger *DraftLedger, catalog []SlotDefinition) ([]StaffEligibility, error) {
	roster, err := s.store.FetchRoster(scope.Date, scope.ShiftType)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch roster: %w", err)
	}

	index := IndexSlots(catalog)
	staff := make([]StaffEligibility, 0, len(roster))
	for _, entry := range roster {
		if scope.HasConcreteLocation() && entry.Location != scope.Location {
			continue
		}
		staff = append(staff, ledger.EligibilityFor(entry.UserID, entry.UserName, index))
	}
	return staff, nil
}

// persistSnapshot mirrors the ledger's assignment set to the staging store.
// Snapshot failures are logged, not surfaced: the in-memory draft stays valid.
func (s *BreakScheduleService) persistSnapshot(ledger *DraftLedger) {
	payload, err := ledger.SnapshotPayload()
	if err != nil {
		logger.New().Warnf("failed to serialize staging snapshot for %s: %v", ledger.Scope.Key(), err)
		return
	}
	if err := s.store.PersistStagingSnapshot(ledger.Scope.Key(), payload); err != nil {
		logger.New().Warnf("failed to persist staging snapshot for %s: %v", ledger.Scope.Key(), err)
	}
}

// slotViews groups the ledger's assignments under their catalog slots.
// Assignments whose slot no longer resolves simply render nowhere; commit
// drops them with a warning.
func slotViews(catalog []SlotDefinition, ledger *DraftLedger) []SlotView {
	views := make([]SlotView, 0, len(catalog))
	for _, slot := range catalog {
		view := SlotView{
			ID:              slot.ID,
			StartTime:       slot.StartTime,
			DurationMinutes: slot.DurationMinutes,
			Capacity:        slot.Capacity,
			BreakLabel:      slot.BreakLabel,
			Origin:          slot.Origin,
			Category:        slot.Category,
			Assignments:     []AssignmentView{},
		}
		for _, a := range ledger.Assignments {
			if a.SlotID == slot.ID {
				view.Assignments = append(view.Assignments, AssignmentView{
					ID:       a.ID,
					UserID:   a.UserID,
					UserName: a.UserName,
				})
			}
		}
		views = append(views, view)
	}
	return views
}

func hasUnsavedChanges(ledger *DraftLedger) bool {
	if len(ledger.DraftSlots) > 0 || len(ledger.EditedSlots) > 0 {
		return true
	}
	for _, a := range ledger.Assignments {
		if IsDraftID(a.ID) {
			return true
		}
	}
	return false
}
