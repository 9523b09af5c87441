package service

import (
	"fmt"

	"break-planner-backend/internal/database/models"
	apperrors "break-planner-backend/internal/errors"
	"break-planner-backend/internal/logger"

	"github.com/google/uuid"
)

// CommitResult reports what a successful reconciliation wrote
type CommitResult struct {
	AssignmentsSaved   int            `json:"assignments_saved"`
	AssignmentsDropped int            `json:"assignments_dropped"`
	SlotsCreated       int            `json:"slots_created"`
	SlotsUpdated       int            `json:"slots_updated"`
	SlotIDMap          map[string]string `json:"slot_id_map,omitempty"`
}

// Committer reconciles a draft ledger against the authoritative store on save.
type Committer struct {
	store    SchedulingStore
	notifier Notifier
}

// NewCommitter creates a new reconciliation committer
func NewCommitter(store SchedulingStore, notifier Notifier) *Committer {
	return &Committer{store: store, notifier: notifier}
}

// Commit replaces the scope's persisted assignments with the ledger's set and
// upserts custom slot definitions, in a fixed step order:
//
//  1. delete every persisted assignment for the (date, shift) scope
//  2. insert new custom slots (draft ids become canonical ids)
//  3. update existing custom slots whose fields changed
//  4. insert the resolved assignments as fresh rows
//
// Assignments whose slot cannot be resolved against the catalog, or that are
// missing required fields, are dropped with a warning rather than aborting the
// whole save. A failing step aborts the remaining steps and leaves the store
// in whatever partial state the step produced; the ledger is untouched so the
// user can retry.
func (c *Committer) Commit(scope SchedulingScope, ledger *DraftLedger, catalog []SlotDefinition, persistedCustom []models.BreakSlot) (*CommitResult, error) {
	if !scope.HasConcreteLocation() {
		return nil, apperrors.NewValidationError("location", "a concrete location must be selected before saving")
	}

	log := logger.WithScope(scope.DateString(), string(scope.ShiftType), scope.Location)
	index := IndexSlots(catalog)

	resolved := make([]Assignment, 0, len(ledger.Assignments))
	dropped := 0
	for _, a := range ledger.Assignments {
		if _, ok := index[a.SlotID]; !ok {
			log.Warnf("dropping assignment %s: slot %s is not in the catalog", a.ID, a.SlotID)
			dropped++
			continue
		}
		if a.UserID == uuid.Nil || a.UserName == "" || a.SlotID == "" {
			log.Warnf("dropping assignment %s: required fields incomplete", a.ID)
			dropped++
			continue
		}
		resolved = append(resolved, a)
	}

	newRows := make([]models.BreakSlot, 0, len(ledger.DraftSlots))
	draftIDs := make([]string, 0, len(ledger.DraftSlots))
	for _, slot := range ledger.DraftSlots {
		newRows = append(newRows, models.BreakSlot{
			Date:            scope.Date,
			ShiftType:       scope.ShiftType,
			Location:        scope.Location,
			StartTime:       slot.StartTime,
			DurationMinutes: slot.DurationMinutes,
			Capacity:        slot.Capacity,
			Label:           slot.BreakLabel,
		})
		draftIDs = append(draftIDs, slot.ID)
	}

	changedRows := changedCustomSlots(ledger, persistedCustom)

	// Step order matters: assignments within a scope are owned by the save
	// operation, so the persisted set is wholesale replaced rather than
	// diffed per row.
	if err := c.store.DeleteAssignments(scope.Date, scope.ShiftType); err != nil {
		return nil, c.fail(log, "delete assignments", err)
	}

	created, err := c.store.InsertCustomSlots(newRows)
	if err != nil {
		return nil, c.fail(log, "insert custom slots", err)
	}
	idMap := make(map[string]string, len(created))
	for i, row := range created {
		if i < len(draftIDs) {
			idMap[draftIDs[i]] = row.ID.String()
		}
	}

	if len(changedRows) > 0 {
		if err := c.store.UpdateCustomSlots(changedRows); err != nil {
			return nil, c.fail(log, "update custom slots", err)
		}
	}

	rows := make([]models.BreakAssignment, 0, len(resolved))
	for _, a := range resolved {
		slotID := a.SlotID
		if canonical, ok := idMap[slotID]; ok {
			slotID = canonical
		}
		rows = append(rows, models.BreakAssignment{
			SlotID:    slotID,
			UserID:    a.UserID,
			UserName:  a.UserName,
			Date:      scope.Date,
			ShiftType: scope.ShiftType,
			Location:  scope.Location,
		})
	}
	if err := c.store.InsertAssignments(rows); err != nil {
		return nil, c.fail(log, "insert assignments", err)
	}

	if err := c.store.ClearStagingSnapshot(scope.Key()); err != nil {
		// The commit itself succeeded; a stale snapshot is recoverable noise.
		log.Warnf("failed to clear staging snapshot: %v", err)
	}

	c.notifier.Success(fmt.Sprintf("Breaks saved for %s", scope))
	log.Infof("commit succeeded: %d assignments saved, %d dropped, %d slots created, %d updated",
		len(rows), dropped, len(created), len(changedRows))

	return &CommitResult{
		AssignmentsSaved:   len(rows),
		AssignmentsDropped: dropped,
		SlotsCreated:       len(created),
		SlotsUpdated:       len(changedRows),
		SlotIDMap:          idMap,
	}, nil
}

func (c *Committer) fail(log *logger.Logger, step string, err error) error {
	log.Errorf("commit step %q failed: %v", step, err)
	c.notifier.Error(fmt.Sprintf("Saving breaks failed while trying to %s; your unsaved changes are kept, please retry", step))
	return apperrors.NewCommitError(step, err)
}

// changedCustomSlots compares the ledger's pending edits against the persisted
// rows and returns only those whose capacity or fields actually changed
func changedCustomSlots(ledger *DraftLedger, persisted []models.BreakSlot) []models.BreakSlot {
	byID := make(map[string]models.BreakSlot, len(persisted))
	for _, row := range persisted {
		byID[row.ID.String()] = row
	}

	var changed []models.BreakSlot
	for id, edit := range ledger.EditedSlots {
		row, ok := byID[id]
		if !ok {
			continue
		}
		if row.StartTime == edit.StartTime &&
			row.DurationMinutes == edit.DurationMinutes &&
			row.Capacity == edit.Capacity &&
			row.Label == edit.BreakLabel {
			continue
		}
		row.StartTime = edit.StartTime
		row.DurationMinutes = edit.DurationMinutes
		row.Capacity = edit.Capacity
		row.Label = edit.BreakLabel
		changed = append(changed, row)
	}
	return changed
}
