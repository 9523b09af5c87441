package repository

import (
	"testing"
	"time"

	"break-planner-backend/internal/database/models"
	"break-planner-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// SlotOverrideRepositoryTestSuite tests the SlotOverrideRepository
type SlotOverrideRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *SlotOverrideRepository
	date          time.Time
}

// SetupSuite runs before all tests in the suite
func (suite *SlotOverrideRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewSlotOverrideRepository(suite.baseTestSuite.DB)
	suite.date = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
}

// TearDownSuite runs after all tests in the suite
func (suite *SlotOverrideRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *SlotOverrideRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *SlotOverrideRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *SlotOverrideRepositoryTestSuite) override(slotID string, capacity int) *models.SlotOverride {
	return &models.SlotOverride{
		Date:      suite.date,
		ShiftType: models.ShiftTypeDay,
		Location:  "main-floor",
		SlotID:    slotID,
		Capacity:  capacity,
	}
}

// TestUpsertAndGetByScope tests recording overrides and reading them back
func (suite *SlotOverrideRepositoryTestSuite) TestUpsertAndGetByScope() {
	suite.Require().NoError(suite.repo.Upsert(suite.override("std-day-0", 5)))
	suite.Require().NoError(suite.repo.Upsert(suite.override("std-day-1", 9)))

	overrides, err := suite.repo.GetByScope(suite.date, models.ShiftTypeDay, "main-floor")

	suite.NoError(err)
	suite.Len(overrides, 2)
	suite.Equal(5, overrides["std-day-0"])
	suite.Equal(9, overrides["std-day-1"])
}

// TestUpsertReplacesPreviousOverride tests that a repeated override wins
func (suite *SlotOverrideRepositoryTestSuite) TestUpsertReplacesPreviousOverride() {
	suite.Require().NoError(suite.repo.Upsert(suite.override("std-day-0", 5)))
	suite.Require().NoError(suite.repo.Upsert(suite.override("std-day-0", 2)))

	overrides, err := suite.repo.GetByScope(suite.date, models.ShiftTypeDay, "main-floor")

	suite.NoError(err)
	suite.Len(overrides, 1)
	suite.Equal(2, overrides["std-day-0"])
}

// TestGetByScopeIsScopeLocal tests that overrides never leak across scopes
func (suite *SlotOverrideRepositoryTestSuite) TestGetByScopeIsScopeLocal() {
	suite.Require().NoError(suite.repo.Upsert(suite.override("std-day-0", 5)))

	other, err := suite.repo.GetByScope(suite.date.AddDate(0, 0, 1), models.ShiftTypeDay, "main-floor")
	suite.NoError(err)
	suite.Empty(other)

	otherLocation, err := suite.repo.GetByScope(suite.date, models.ShiftTypeDay, "west-wing")
	suite.NoError(err)
	suite.Empty(otherLocation)
}

// TestSlotOverrideRepositoryTestSuite runs the test suite
func TestSlotOverrideRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SlotOverrideRepositoryTestSuite))
}
