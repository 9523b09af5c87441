package service

import (
	"encoding/json"
	"sync"

	"break-planner-backend/internal/database/models"
	apperrors "break-planner-backend/internal/errors"

	"github.com/google/uuid"
)

// DraftLedger is the in-memory working set of assignments and draft custom
// slots for one scope. It is mutated only through the scheduling service and
// mirrored to a staging snapshot after every assignment mutation, so unsaved
// edits survive the scope being revisited before a save.
type DraftLedger struct {
	Scope       SchedulingScope
	Assignments []Assignment
	DraftSlots  []SlotDefinition

	// EditedSlots holds pending field edits to persisted custom slots keyed by
	// slot id; reconciliation turns them into updates when something changed.
	EditedSlots map[string]SlotDefinition
}

// NewDraftLedger creates an empty ledger for a scope
func NewDraftLedger(scope SchedulingScope) *DraftLedger {
	return &DraftLedger{
		Scope:       scope,
		EditedSlots: make(map[string]SlotDefinition),
	}
}

// EligibilityFor recomputes a staff member's break totals from the ledger's
// current assignment set
func (l *DraftLedger) EligibilityFor(userID uuid.UUID, userName string, catalog map[string]SlotDefinition) StaffEligibility {
	return ComputeEligibility(userID, userName, l.Assignments, catalog)
}

// IsAssignedToSlot reports whether the staff member already holds the slot
func (l *DraftLedger) IsAssignedToSlot(userID uuid.UUID, slotID string) bool {
	for _, a := range l.Assignments {
		if a.UserID == userID && a.SlotID == slotID {
			return true
		}
	}
	return false
}

// Add appends an eligibility-gated assignment. Re-assigning a staff member to
// a slot they already hold is rejected rather than made idempotent.
func (l *DraftLedger) Add(userID uuid.UUID, userName string, slot SlotDefinition, catalog map[string]SlotDefinition) (*Assignment, error) {
	if !l.Scope.HasConcreteLocation() {
		return nil, apperrors.ErrLocationRequired
	}
	if l.IsAssignedToSlot(userID, slot.ID) {
		return nil, apperrors.ErrAlreadyAssignedToSlot
	}

	elig := l.EligibilityFor(userID, userName, catalog)
	decision := CanAssign(elig, slot, l.Scope.ShiftType)
	if !decision.Allowed {
		return nil, apperrors.NewValidationError("eligibility", decision.Reason)
	}

	assignment := Assignment{
		ID:        NewDraftID(),
		SlotID:    slot.ID,
		UserID:    userID,
		UserName:  userName,
		Date:      l.Scope.DateString(),
		ShiftType: l.Scope.ShiftType,
		Location:  l.Scope.Location,
	}
	l.Assignments = append(l.Assignments, assignment)
	return &assignment, nil
}

// Remove deletes an assignment from the ledger. An actor may remove only their
// own assignment unless acting with admin privilege. Removing is exactly
// inverse to adding: the affected staff member's eligibility falls back to
// what it was before the add.
func (l *DraftLedger) Remove(assignmentID string, actorID uuid.UUID, actorIsAdmin bool) error {
	for i, a := range l.Assignments {
		if a.ID != assignmentID {
			continue
		}
		if a.UserID != actorID && !actorIsAdmin {
			return apperrors.ErrCannotRemoveOthersAssignment
		}
		l.Assignments = append(l.Assignments[:i], l.Assignments[i+1:]...)
		return nil
	}
	return apperrors.ErrAssignmentNotFound
}

// AddCustomSlot stages a new draft custom slot. Rejected when the scope has no
// concrete location or another slot in the catalog already starts at the same
// time.
func (l *DraftLedger) AddCustomSlot(startTime string, durationMinutes, capacity int, label string, catalog []SlotDefinition) (*SlotDefinition, error) {
	if !l.Scope.HasConcreteLocation() {
		return nil, apperrors.ErrLocationRequired
	}
	if _, _, ok := parseClock(startTime); !ok {
		return nil, apperrors.ErrInvalidStartTime
	}
	for _, slot := range catalog {
		if slot.StartTime == startTime {
			return nil, apperrors.ErrSlotStartTimeTaken
		}
	}
	if capacity < 1 {
		capacity = 1
	}

	slot := SlotDefinition{
		ID:              NewDraftID(),
		StartTime:       startTime,
		DurationMinutes: durationMinutes,
		Capacity:        capacity,
		BreakLabel:      label,
		Origin:          models.SlotOriginDraftCustom,
		Category:        models.CategoryForDuration(durationMinutes),
	}
	l.DraftSlots = append(l.DraftSlots, slot)
	return &slot, nil
}

// RemoveDraftSlot deletes a draft custom slot locally along with any
// assignments staged against it. Returns false when the id is not a draft
// slot in this ledger.
func (l *DraftLedger) RemoveDraftSlot(slotID string) bool {
	for i, slot := range l.DraftSlots {
		if slot.ID == slotID {
			l.DraftSlots = append(l.DraftSlots[:i], l.DraftSlots[i+1:]...)
			l.DropAssignmentsForSlot(slotID)
			return true
		}
	}
	return false
}

// UpdateCustomSlot stages field edits: draft slots are edited in place,
// persisted custom slots accumulate pending edits applied at commit time.
func (l *DraftLedger) UpdateCustomSlot(slot SlotDefinition) {
	if IsDraftID(slot.ID) {
		for i := range l.DraftSlots {
			if l.DraftSlots[i].ID == slot.ID {
				slot.Origin = models.SlotOriginDraftCustom
				slot.Category = models.CategoryForDuration(slot.DurationMinutes)
				l.DraftSlots[i] = slot
				return
			}
		}
		return
	}
	slot.Origin = models.SlotOriginPersistedCustom
	slot.Category = models.CategoryForDuration(slot.DurationMinutes)
	l.EditedSlots[slot.ID] = slot
}

// DropAssignmentsForSlot removes every assignment referencing the slot
func (l *DraftLedger) DropAssignmentsForSlot(slotID string) int {
	kept := l.Assignments[:0]
	dropped := 0
	for _, a := range l.Assignments {
		if a.SlotID == slotID {
			dropped++
			continue
		}
		kept = append(kept, a)
	}
	l.Assignments = kept
	return dropped
}

// SnapshotPayload serializes the ledger's assignment set for staging
func (l *DraftLedger) SnapshotPayload() (json.RawMessage, error) {
	return json.Marshal(l.Assignments)
}

// RestoreAssignments replaces the assignment set from a staging payload
func (l *DraftLedger) RestoreAssignments(payload json.RawMessage) error {
	var assignments []Assignment
	if err := json.Unmarshal(payload, &assignments); err != nil {
		return err
	}
	l.Assignments = assignments
	return nil
}

// SeedFromStore loads the authoritative assignment rows into the ledger,
// keeping their persisted ids
func (l *DraftLedger) SeedFromStore(rows []models.BreakAssignment) {
	l.Assignments = make([]Assignment, 0, len(rows))
	for _, row := range rows {
		l.Assignments = append(l.Assignments, Assignment{
			ID:        row.ID.String(),
			SlotID:    row.SlotID,
			UserID:    row.UserID,
			UserName:  row.UserName,
			Date:      row.Date.Format("2006-01-02"),
			ShiftType: row.ShiftType,
			Location:  row.Location,
		})
	}
}

// LedgerManager owns the active draft ledgers keyed by scope key. Mutation
// entry points run one at a time per manager; the engine assumes a single
// actor per scope and provides no cross-client locking.
type LedgerManager struct {
	mu      sync.Mutex
	ledgers map[string]*DraftLedger
}

// NewLedgerManager creates an empty ledger manager
func NewLedgerManager() *LedgerManager {
	return &LedgerManager{
		ledgers: make(map[string]*DraftLedger),
	}
}

// Get returns the active ledger for a scope key
func (m *LedgerManager) Get(key string) (*DraftLedger, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ledger, ok := m.ledgers[key]
	return ledger, ok
}

// Put registers a ledger under its scope key
func (m *LedgerManager) Put(ledger *DraftLedger) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ledgers[ledger.Scope.Key()] = ledger
}

// Discard drops the ledger for a scope key, abandoning its draft custom slots
func (m *LedgerManager) Discard(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.ledgers, key)
}
