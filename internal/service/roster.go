package service

import (
	"errors"
	"fmt"

	"break-planner-backend/internal/database/models"
	apperrors "break-planner-backend/internal/errors"
	"break-planner-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RosterService handles business logic for staff roster entries
type RosterService struct {
	repo      *repository.RosterRepository
	validator *validator.Validate
}

// NewRosterService creates a new roster service
func NewRosterService(repo *repository.RosterRepository, validator *validator.Validate) *RosterService {
	return &RosterService{
		repo:      repo,
		validator: validator,
	}
}

// CreateRosterEntryRequest represents the request to schedule a staff member
type CreateRosterEntryRequest struct {
	UserID    uuid.UUID `json:"user_id" validate:"required"`
	UserName  string    `json:"user_name" validate:"required,min=1,max=100"`
	Date      string    `json:"date" validate:"required"`
	ShiftType string    `json:"shift_type" validate:"required"`
	Location  string    `json:"location" validate:"required,min=1,max=80"`
}

// RosterEntryResponse represents the response for roster operations
type RosterEntryResponse struct {
	ID        uuid.UUID        `json:"id"`
	UserID    uuid.UUID        `json:"user_id"`
	UserName  string           `json:"user_name"`
	Date      string           `json:"date"`
	ShiftType models.ShiftType `json:"shift_type"`
	Location  string           `json:"location"`
}

// RosterListResponse represents the staff scheduled for a date and shift
type RosterListResponse struct {
	Date      string                `json:"date"`
	ShiftType models.ShiftType      `json:"shift_type"`
	Entries   []RosterEntryResponse `json:"entries"`
	Total     int                   `json:"total"`
}

// Create schedules a staff member to work a date and shift
func (s *RosterService) Create(req *CreateRosterEntryRequest) (*RosterEntryResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	scope, err := ParseScope(req.Date, req.ShiftType, req.Location)
	if err != nil {
		return nil, err
	}
	if !scope.HasConcreteLocation() {
		return nil, apperrors.ErrLocationRequired
	}

	exists, err := s.repo.Exists(req.UserID, scope.Date, scope.ShiftType)
	if err != nil {
		return nil, fmt.Errorf("failed to check roster entry: %w", err)
	}
	if exists {
		return nil, apperrors.ErrRosterEntryExists
	}

	entry := &models.RosterEntry{
		UserID:    req.UserID,
		UserName:  req.UserName,
		Date:      scope.Date,
		ShiftType: scope.ShiftType,
		Location:  scope.Location,
	}
	if err := s.repo.Create(entry); err != nil {
		return nil, fmt.Errorf("failed to create roster entry: %w", err)
	}

	return s.toResponse(entry), nil
}

// List retrieves the staff scheduled to work a date and shift
func (s *RosterService) List(date, shift string) (*RosterListResponse, error) {
	scope, err := ParseScope(date, shift, "")
	if err != nil {
		return nil, err
	}

	entries, err := s.repo.GetByDateShift(scope.Date, scope.ShiftType)
	if err != nil {
		return nil, fmt.Errorf("failed to list roster entries: %w", err)
	}

	responses := make([]RosterEntryResponse, len(entries))
	for i := range entries {
		responses[i] = *s.toResponse(&entries[i])
	}

	return &RosterListResponse{
		Date:      scope.DateString(),
		ShiftType: scope.ShiftType,
		Entries:   responses,
		Total:     len(responses),
	}, nil
}

// Delete removes a roster entry
func (s *RosterService) Delete(id uuid.UUID) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRosterEntryNotFound
		}
		return fmt.Errorf("failed to get roster entry: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete roster entry: %w", err)
	}
	return nil
}

// toResponse converts a roster entry model to response
func (s *RosterService) toResponse(entry *models.RosterEntry) *RosterEntryResponse {
	return &RosterEntryResponse{
		ID:        entry.ID,
		UserID:    entry.UserID,
		UserName:  entry.UserName,
		Date:      entry.Date.Format("2006-01-02"),
		ShiftType: entry.ShiftType,
		Location:  entry.Location,
	}
}
