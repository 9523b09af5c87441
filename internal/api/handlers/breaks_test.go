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

// BreaksHandlerTestSuite tests the BreaksHandler
type BreaksHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	ctrl        *gomock.Controller
	mockService *mocks.MockBreakScheduleServiceInterface
	handler     *BreaksHandler
}

// SetupSuite sets up the test suite
func (suite *BreaksHandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

// SetupTest sets up each individual test
func (suite *BreaksHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockBreakScheduleServiceInterface(suite.ctrl)
	suite.handler = NewBreaksHandler(suite.mockService)

	suite.router = gin.New()

	// Setup routes
	v1 := suite.router.Group("/api/v1")
	{
		breaks := v1.Group("/breaks")
		{
			breaks.GET("/catalog", suite.handler.GetCatalog)
			breaks.GET("/staff", suite.handler.EligibleStaff)
			breaks.POST("/assignments", suite.handler.AddAssignment)
			breaks.DELETE("/assignments/:id", suite.handler.RemoveAssignment)
			breaks.POST("/slots", suite.handler.AddCustomSlot)
			breaks.PUT("/slots/:id", suite.handler.UpdateCustomSlot)
			breaks.DELETE("/slots/:id", suite.handler.RemoveCustomSlot)
			breaks.PUT("/overrides/:slotId", suite.handler.SetSlotOverride)
			breaks.POST("/commit", suite.handler.Commit)
			breaks.POST("/discard", suite.handler.Discard)
		}
	}
}

// TearDownTest cleans up after each test
func (suite *BreaksHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *BreaksHandlerTestSuite) performJSON(method, url string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// TestGetCatalog tests fetching the catalog for a scope
func (suite *BreaksHandlerTestSuite) TestGetCatalog() {
	expectedResponse := &service.CatalogResponse{
		Date:      "2025-03-10",
		ShiftType: "day",
		Location:  "main-floor",
		ScopeKey:  "breaks:2025-03-10:day:main-floor",
		Slots: []service.SlotView{
			{ID: "std-day-0", StartTime: "10:00", DurationMinutes: 15, Capacity: 3},
		},
	}

	suite.mockService.EXPECT().
		GetCatalog(&service.ScopeRequest{Date: "2025-03-10", ShiftType: "day", Location: "main-floor"}).
		Return(expectedResponse, nil)

	w := suite.performJSON(http.MethodGet, "/api/v1/breaks/catalog?date=2025-03-10&shift_type=day&location=main-floor", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response service.CatalogResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(suite.T(), "breaks:2025-03-10:day:main-floor", response.ScopeKey)
	assert.Len(suite.T(), response.Slots, 1)
}

// TestGetCatalogInvalidScope tests the scope error mapping
func (suite *BreaksHandlerTestSuite) TestGetCatalogInvalidScope() {
	suite.mockService.EXPECT().
		GetCatalog(gomock.Any()).
		Return(nil, apperrors.ErrInvalidShiftType)

	w := suite.performJSON(http.MethodGet, "/api/v1/breaks/catalog?date=2025-03-10&shift_type=evening", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestEligibleStaff tests the eligible staff listing
func (suite *BreaksHandlerTestSuite) TestEligibleStaff() {
	userID := uuid.New()
	suite.mockService.EXPECT().
		EligibleStaff(gomock.Any()).
		Return(&service.EligibleStaffResponse{
			SlotID: "std-day-0",
			Staff: []service.EligibleStaffView{
				{UserID: userID, UserName: "Worker", Decision: service.Decision{Allowed: true}},
			},
		}, nil)

	w := suite.performJSON(http.MethodGet, "/api/v1/breaks/staff?date=2025-03-10&shift_type=day&location=main-floor&slot_id=std-day-0", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response service.EligibleStaffResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(suite.T(), response.Staff, 1)
	assert.True(suite.T(), response.Staff[0].Decision.Allowed)
}

// TestEligibleStaffSlotNotFound tests the not-found mapping
func (suite *BreaksHandlerTestSuite) TestEligibleStaffSlotNotFound() {
	suite.mockService.EXPECT().
		EligibleStaff(gomock.Any()).
		Return(nil, apperrors.ErrSlotNotFound)

	w := suite.performJSON(http.MethodGet, "/api/v1/breaks/staff?date=2025-03-10&shift_type=day&slot_id=nope", nil)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestAddAssignment tests staging an assignment
func (suite *BreaksHandlerTestSuite) TestAddAssignment() {
	userID := uuid.New()
	request := service.AddAssignmentRequest{
		Date:      "2025-03-10",
		ShiftType: "day",
		Location:  "main-floor",
		SlotID:    "std-day-0",
		UserID:    userID,
		UserName:  "Worker",
	}

	suite.mockService.EXPECT().
		AddAssignment(gomock.Any()).
		Return(&service.AssignmentResponse{
			Assignment: service.AssignmentView{ID: "tmp-abc", UserID: userID, UserName: "Worker"},
			SlotID:     "std-day-0",
		}, nil)

	w := suite.performJSON(http.MethodPost, "/api/v1/breaks/assignments", request)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var response service.AssignmentResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(suite.T(), "tmp-abc", response.Assignment.ID)
}

// TestAddAssignmentEligibilityRejection tests that eligibility rejections
// surface as client errors with the rule's reason
func (suite *BreaksHandlerTestSuite) TestAddAssignmentEligibilityRejection() {
	suite.mockService.EXPECT().
		AddAssignment(gomock.Any()).
		Return(nil, apperrors.NewValidationError("eligibility", "already has a 15 min break"))

	w := suite.performJSON(http.MethodPost, "/api/v1/breaks/assignments", service.AddAssignmentRequest{
		Date:      "2025-03-10",
		ShiftType: "day",
		Location:  "main-floor",
		SlotID:    "std-day-0",
		UserID:    uuid.New(),
		UserName:  "Worker",
	})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &response))
	assert.Contains(suite.T(), response["error"], "already has a 15 min break")
}

// TestAddAssignmentInvalidBody tests malformed JSON handling
func (suite *BreaksHandlerTestSuite) TestAddAssignmentInvalidBody() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/breaks/assignments", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestRemoveAssignment tests removing a staged assignment
func (suite *BreaksHandlerTestSuite) TestRemoveAssignment() {
	suite.mockService.EXPECT().
		RemoveAssignment("tmp-abc", gomock.Any()).
		Return(nil)

	w := suite.performJSON(http.MethodDelete, "/api/v1/breaks/assignments/tmp-abc", service.RemoveAssignmentRequest{
		Date:      "2025-03-10",
		ShiftType: "day",
		Location:  "main-floor",
		ActorID:   uuid.New(),
	})

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

// TestRemoveAssignmentForbidden tests the authorization mapping
func (suite *BreaksHandlerTestSuite) TestRemoveAssignmentForbidden() {
	suite.mockService.EXPECT().
		RemoveAssignment(gomock.Any(), gomock.Any()).
		Return(apperrors.ErrCannotRemoveOthersAssignment)

	w := suite.performJSON(http.MethodDelete, "/api/v1/breaks/assignments/tmp-abc", service.RemoveAssignmentRequest{
		Date:      "2025-03-10",
		ShiftType: "day",
		Location:  "main-floor",
		ActorID:   uuid.New(),
	})

	assert.Equal(suite.T(), http.StatusForbidden, w.Code)
}

// TestAddCustomSlot tests staging a custom slot
func (suite *BreaksHandlerTestSuite) TestAddCustomSlot() {
	suite.mockService.EXPECT().
		AddCustomSlot(gomock.Any()).
		Return(&service.SlotResponse{Slot: service.SlotView{ID: "tmp-slot", StartTime: "11:15"}}, nil)

	w := suite.performJSON(http.MethodPost, "/api/v1/breaks/slots", service.AddCustomSlotRequest{
		Date:            "2025-03-10",
		ShiftType:       "day",
		Location:        "main-floor",
		StartTime:       "11:15",
		DurationMinutes: 15,
		Capacity:        2,
	})

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
}

// TestAddCustomSlotDuplicateStart tests the duplicate start time mapping
func (suite *BreaksHandlerTestSuite) TestAddCustomSlotDuplicateStart() {
	suite.mockService.EXPECT().
		AddCustomSlot(gomock.Any()).
		Return(nil, apperrors.ErrSlotStartTimeTaken)

	w := suite.performJSON(http.MethodPost, "/api/v1/breaks/slots", service.AddCustomSlotRequest{
		Date:            "2025-03-10",
		ShiftType:       "day",
		Location:        "main-floor",
		StartTime:       "10:00",
		DurationMinutes: 15,
	})

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

// TestRemoveCustomSlotConfirmationRequired tests the two-step delete handshake
func (suite *BreaksHandlerTestSuite) TestRemoveCustomSlotConfirmationRequired() {
	suite.mockService.EXPECT().
		RemoveCustomSlot(gomock.Any(), gomock.Any()).
		Return(apperrors.ErrConfirmationRequired)

	w := suite.performJSON(http.MethodDelete, "/api/v1/breaks/slots/"+uuid.NewString(), service.RemoveCustomSlotRequest{
		Date:      "2025-03-10",
		ShiftType: "day",
		Location:  "main-floor",
	})

	assert.Equal(suite.T(), http.StatusConflict, w.Code)

	var response map[string]interface{}
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(suite.T(), true, response["confirmation_required"])
}

// TestSetSlotOverride tests recording a capacity override
func (suite *BreaksHandlerTestSuite) TestSetSlotOverride() {
	suite.mockService.EXPECT().
		SetSlotOverride("std-day-1", gomock.Any()).
		Return(nil)

	w := suite.performJSON(http.MethodPut, "/api/v1/breaks/overrides/std-day-1", service.SlotOverrideRequest{
		Date:      "2025-03-10",
		ShiftType: "day",
		Location:  "main-floor",
		Capacity:  9,
	})

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

// TestCommit tests saving a draft
func (suite *BreaksHandlerTestSuite) TestCommit() {
	suite.mockService.EXPECT().
		Commit(gomock.Any()).
		Return(&service.CommitResponse{
			Message:          "Breaks saved for 2025-03-10 day shift at main-floor",
			AssignmentsSaved: 2,
			SlotsCreated:     1,
		}, nil)

	w := suite.performJSON(http.MethodPost, "/api/v1/breaks/commit", service.ScopeRequest{
		Date:      "2025-03-10",
		ShiftType: "day",
		Location:  "main-floor",
	})

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response service.CommitResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(suite.T(), 2, response.AssignmentsSaved)
}

// TestCommitStepFailure tests that a failed reconciliation step maps to 500
func (suite *BreaksHandlerTestSuite) TestCommitStepFailure() {
	suite.mockService.EXPECT().
		Commit(gomock.Any()).
		Return(nil, apperrors.NewCommitError("insert assignments", assert.AnError))

	w := suite.performJSON(http.MethodPost, "/api/v1/breaks/commit", service.ScopeRequest{
		Date:      "2025-03-10",
		ShiftType: "day",
		Location:  "main-floor",
	})

	assert.Equal(suite.T(), http.StatusInternalServerError, w.Code)

	var response map[string]interface{}
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &response))
	assert.Contains(suite.T(), response["error"], "insert assignments")
}

// TestDiscard tests abandoning a draft
func (suite *BreaksHandlerTestSuite) TestDiscard() {
	suite.mockService.EXPECT().
		Discard(gomock.Any()).
		Return(nil)

	w := suite.performJSON(http.MethodPost, "/api/v1/breaks/discard", service.ScopeRequest{
		Date:      "2025-03-10",
		ShiftType: "day",
		Location:  "main-floor",
	})

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

// TestBreaksHandlerTestSuite runs the test suite
func TestBreaksHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(BreaksHandlerTestSuite))
}
