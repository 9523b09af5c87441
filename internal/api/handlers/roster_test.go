package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "break-planner-backend/internal/errors"
	"break-planner-backend/internal/mocks"
	"break-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// RosterHandlerTestSuite tests the RosterHandler
type RosterHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	ctrl        *gomock.Controller
	mockService *mocks.MockRosterServiceInterface
	handler     *RosterHandler
}

// SetupSuite sets up the test suite
func (suite *RosterHandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

// SetupTest sets up each individual test
func (suite *RosterHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockRosterServiceInterface(suite.ctrl)
	suite.handler = NewRosterHandler(suite.mockService)

	suite.router = gin.New()

	// Setup routes
	v1 := suite.router.Group("/api/v1")
	{
		roster := v1.Group("/roster")
		{
			roster.POST("", suite.handler.CreateEntry)
			roster.GET("", suite.handler.ListEntries)
			roster.DELETE("/:id", suite.handler.DeleteEntry)
		}
	}
}

// TearDownTest cleans up after each test
func (suite *RosterHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateEntry tests scheduling a staff member
func (suite *RosterHandlerTestSuite) TestCreateEntry() {
	entryID := uuid.New()
	userID := uuid.New()

	request := service.CreateRosterEntryRequest{
		UserID:    userID,
		UserName:  "Worker",
		Date:      "2025-03-10",
		ShiftType: "day",
		Location:  "main-floor",
	}

	suite.mockService.EXPECT().
		Create(gomock.Any()).
		Return(&service.RosterEntryResponse{
			ID:        entryID,
			UserID:    userID,
			UserName:  "Worker",
			Date:      "2025-03-10",
			ShiftType: "day",
			Location:  "main-floor",
		}, nil)

	body, _ := json.Marshal(request)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/roster", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var response service.RosterEntryResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(suite.T(), entryID, response.ID)
	assert.Equal(suite.T(), "Worker", response.UserName)
}

// TestCreateEntryAlreadyExists tests the duplicate roster entry mapping
func (suite *RosterHandlerTestSuite) TestCreateEntryAlreadyExists() {
	suite.mockService.EXPECT().
		Create(gomock.Any()).
		Return(nil, apperrors.ErrRosterEntryExists)

	body, _ := json.Marshal(service.CreateRosterEntryRequest{
		UserID:    uuid.New(),
		UserName:  "Worker",
		Date:      "2025-03-10",
		ShiftType: "day",
		Location:  "main-floor",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/roster", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

// TestListEntries tests listing the roster for a date and shift
func (suite *RosterHandlerTestSuite) TestListEntries() {
	suite.mockService.EXPECT().
		List("2025-03-10", "day").
		Return(&service.RosterListResponse{
			Date:      "2025-03-10",
			ShiftType: "day",
			Entries: []service.RosterEntryResponse{
				{ID: uuid.New(), UserName: "Worker", Location: "main-floor"},
			},
			Total: 1,
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/roster?date=2025-03-10&shift_type=day", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response service.RosterListResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(suite.T(), 1, response.Total)
}

// TestDeleteEntry tests removing a roster entry
func (suite *RosterHandlerTestSuite) TestDeleteEntry() {
	entryID := uuid.New()

	suite.mockService.EXPECT().
		Delete(entryID).
		Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/roster/"+entryID.String(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

// TestDeleteEntryInvalidID tests deleting with a malformed id
func (suite *RosterHandlerTestSuite) TestDeleteEntryInvalidID() {
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/roster/not-a-uuid", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestDeleteEntryNotFound tests the not-found mapping
func (suite *RosterHandlerTestSuite) TestDeleteEntryNotFound() {
	entryID := uuid.New()

	suite.mockService.EXPECT().
		Delete(entryID).
		Return(apperrors.ErrRosterEntryNotFound)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/roster/"+entryID.String(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestRosterHandlerTestSuite runs the test suite
func TestRosterHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RosterHandlerTestSuite))
}
