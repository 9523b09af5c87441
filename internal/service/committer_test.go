package service_test

import (
	"errors"
	"testing"

	"break-planner-backend/internal/database/models"
	apperrors "break-planner-backend/internal/errors"
	"break-planner-backend/internal/mocks"
	"break-planner-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// CommitterTestSuite defines the test suite for the reconciliation committer
type CommitterTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	store     *mocks.MockSchedulingStore
	notifier  *mocks.MockNotifier
	committer *service.Committer
	scope     service.SchedulingScope
}

// SetupTest sets up the test suite
func (suite *CommitterTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.store = mocks.NewMockSchedulingStore(suite.ctrl)
	suite.notifier = mocks.NewMockNotifier(suite.ctrl)
	suite.committer = service.NewCommitter(suite.store, suite.notifier)

	scope, err := service.ParseScope("2025-03-10", "day", "main-floor")
	suite.Require().NoError(err)
	suite.scope = scope
}

// TearDownTest cleans up after each test
func (suite *CommitterTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CommitterTestSuite) catalog() []service.SlotDefinition {
	return service.BuildCatalog(suite.scope, nil, nil, nil)
}

func (suite *CommitterTestSuite) seededLedger(userID uuid.UUID) *service.DraftLedger {
	ledger := service.NewDraftLedger(suite.scope)
	catalog := suite.catalog()
	index := service.IndexSlots(catalog)
	_, err := ledger.Add(userID, "Worker", index["std-day-0"], index)
	suite.Require().NoError(err)
	return ledger
}

func (suite *CommitterTestSuite) TestCommitRequiresConcreteLocation() {
	scope, err := service.ParseScope("2025-03-10", "day", "")
	suite.Require().NoError(err)
	ledger := service.NewDraftLedger(scope)

	// No store or notifier expectations: an "all" scope must produce zero writes.
	result, err := suite.committer.Commit(scope, ledger, suite.catalog(), nil)

	suite.Nil(result)
	suite.True(apperrors.IsValidation(err))
}

func (suite *CommitterTestSuite) TestCommitReplacesAssignments() {
	userID := uuid.New()
	ledger := suite.seededLedger(userID)

	suite.store.EXPECT().DeleteAssignments(suite.scope.Date, models.ShiftTypeDay).Return(nil)
	suite.store.EXPECT().InsertCustomSlots(gomock.Len(0)).Return(nil, nil)
	suite.store.EXPECT().InsertAssignments(gomock.Any()).DoAndReturn(func(rows []models.BreakAssignment) error {
		suite.Require().Len(rows, 1)
		suite.Equal("std-day-0", rows[0].SlotID)
		suite.Equal(userID, rows[0].UserID)
		suite.Equal("main-floor", rows[0].Location)
		return nil
	})
	suite.store.EXPECT().ClearStagingSnapshot(suite.scope.Key()).Return(nil)
	suite.notifier.EXPECT().Success(gomock.Any())

	result, err := suite.committer.Commit(suite.scope, ledger, suite.catalog(), nil)

	suite.Require().NoError(err)
	suite.Equal(1, result.AssignmentsSaved)
	suite.Zero(result.AssignmentsDropped)
	suite.Zero(result.SlotsCreated)
}

func (suite *CommitterTestSuite) TestCommitRemapsDraftSlotIDs() {
	userID := uuid.New()
	ledger := service.NewDraftLedger(suite.scope)

	catalog := suite.catalog()
	draft, err := ledger.AddCustomSlot("11:15", 15, 2, "Extra Break (15 min)", catalog)
	suite.Require().NoError(err)

	catalog = service.BuildCatalog(suite.scope, nil, nil, ledger.DraftSlots)
	index := service.IndexSlots(catalog)
	_, err = ledger.Add(userID, "Worker", *draft, index)
	suite.Require().NoError(err)

	canonicalID := uuid.New()
	suite.store.EXPECT().DeleteAssignments(suite.scope.Date, models.ShiftTypeDay).Return(nil)
	suite.store.EXPECT().InsertCustomSlots(gomock.Len(1)).DoAndReturn(func(rows []models.BreakSlot) ([]models.BreakSlot, error) {
		suite.Equal("11:15", rows[0].StartTime)
		rows[0].ID = canonicalID
		return rows, nil
	})
	suite.store.EXPECT().InsertAssignments(gomock.Any()).DoAndReturn(func(rows []models.BreakAssignment) error {
		suite.Require().Len(rows, 1)
		// The assignment must reference the canonical id, never the draft id.
		suite.Equal(canonicalID.String(), rows[0].SlotID)
		return nil
	})
	suite.store.EXPECT().ClearStagingSnapshot(suite.scope.Key()).Return(nil)
	suite.notifier.EXPECT().Success(gomock.Any())

	result, err := suite.committer.Commit(suite.scope, ledger, catalog, nil)

	suite.Require().NoError(err)
	suite.Equal(1, result.SlotsCreated)
	suite.Equal(canonicalID.String(), result.SlotIDMap[draft.ID])
}

func (suite *CommitterTestSuite) TestCommitDropsUnresolvableAssignments() {
	userID := uuid.New()
	ledger := suite.seededLedger(userID)
	ledger.Assignments = append(ledger.Assignments, service.Assignment{
		ID:     service.NewDraftID(),
		SlotID: "vanished-slot",
		UserID: uuid.New(),
	})

	suite.store.EXPECT().DeleteAssignments(gomock.Any(), gomock.Any()).Return(nil)
	suite.store.EXPECT().InsertCustomSlots(gomock.Any()).Return(nil, nil)
	suite.store.EXPECT().InsertAssignments(gomock.Len(1)).Return(nil)
	suite.store.EXPECT().ClearStagingSnapshot(gomock.Any()).Return(nil)
	suite.notifier.EXPECT().Success(gomock.Any())

	result, err := suite.committer.Commit(suite.scope, ledger, suite.catalog(), nil)

	suite.Require().NoError(err)
	suite.Equal(1, result.AssignmentsSaved)
	suite.Equal(1, result.AssignmentsDropped)
}

func (suite *CommitterTestSuite) TestCommitAbortsOnFailedStep() {
	userID := uuid.New()
	ledger := suite.seededLedger(userID)
	boom := errors.New("connection reset")

	suite.store.EXPECT().DeleteAssignments(gomock.Any(), gomock.Any()).Return(nil)
	suite.store.EXPECT().InsertCustomSlots(gomock.Any()).Return(nil, boom)
	// No InsertAssignments, no snapshot clearing: later steps never run.
	suite.notifier.EXPECT().Error(gomock.Any()).Do(func(message string) {
		suite.Contains(message, "your unsaved changes are kept")
	})

	result, err := suite.committer.Commit(suite.scope, ledger, suite.catalog(), nil)

	suite.Nil(result)
	suite.Require().True(apperrors.IsCommit(err))
	suite.ErrorIs(err, boom)
	// The ledger is untouched so the user can retry.
	suite.Len(ledger.Assignments, 1)
}

func (suite *CommitterTestSuite) TestCommitUpdatesChangedCustomSlots() {
	rowID := uuid.New()
	persisted := []models.BreakSlot{
		{
			BaseModel:       models.BaseModel{ID: rowID},
			Date:            suite.scope.Date,
			ShiftType:       models.ShiftTypeDay,
			Location:        "main-floor",
			StartTime:       "11:15",
			DurationMinutes: 15,
			Capacity:        2,
			Label:           "Extra Break (15 min)",
		},
	}

	ledger := service.NewDraftLedger(suite.scope)
	ledger.UpdateCustomSlot(service.SlotDefinition{
		ID:              rowID.String(),
		StartTime:       "11:15",
		DurationMinutes: 15,
		Capacity:        5,
		BreakLabel:      "Extra Break (15 min)",
	})
	// A second edit that changes nothing must not produce an update row.
	unchangedID := uuid.New()
	persisted = append(persisted, models.BreakSlot{
		BaseModel:       models.BaseModel{ID: unchangedID},
		StartTime:       "13:45",
		DurationMinutes: 15,
		Capacity:        1,
	})
	ledger.UpdateCustomSlot(service.SlotDefinition{
		ID:              unchangedID.String(),
		StartTime:       "13:45",
		DurationMinutes: 15,
		Capacity:        1,
	})

	catalog := service.BuildCatalog(suite.scope, nil, persisted, nil)

	suite.store.EXPECT().DeleteAssignments(gomock.Any(), gomock.Any()).Return(nil)
	suite.store.EXPECT().InsertCustomSlots(gomock.Any()).Return(nil, nil)
	suite.store.EXPECT().UpdateCustomSlots(gomock.Len(1)).DoAndReturn(func(rows []models.BreakSlot) error {
		suite.Equal(rowID, rows[0].ID)
		suite.Equal(5, rows[0].Capacity)
		return nil
	})
	suite.store.EXPECT().InsertAssignments(gomock.Any()).Return(nil)
	suite.store.EXPECT().ClearStagingSnapshot(gomock.Any()).Return(nil)
	suite.notifier.EXPECT().Success(gomock.Any())

	result, err := suite.committer.Commit(suite.scope, ledger, catalog, persisted)

	suite.Require().NoError(err)
	suite.Equal(1, result.SlotsUpdated)
}

func (suite *CommitterTestSuite) TestCommitSucceedsWhenSnapshotClearFails() {
	userID := uuid.New()
	ledger := suite.seededLedger(userID)

	suite.store.EXPECT().DeleteAssignments(gomock.Any(), gomock.Any()).Return(nil)
	suite.store.EXPECT().InsertCustomSlots(gomock.Any()).Return(nil, nil)
	suite.store.EXPECT().InsertAssignments(gomock.Any()).Return(nil)
	suite.store.EXPECT().ClearStagingSnapshot(gomock.Any()).Return(errors.New("jsonb row locked"))
	suite.notifier.EXPECT().Success(gomock.Any())

	result, err := suite.committer.Commit(suite.scope, ledger, suite.catalog(), nil)

	suite.Require().NoError(err)
	suite.Equal(1, result.AssignmentsSaved)
}

// TestCommitterTestSuite runs the test suite
func TestCommitterTestSuite(t *testing.T) {
	suite.Run(t, new(CommitterTestSuite))
}
