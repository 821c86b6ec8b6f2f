package service

import (
	"context"
	"time"

	"github.com/TechnicalShree/doorflow/internal/domain"
	"github.com/TechnicalShree/doorflow/internal/dto"
	"github.com/TechnicalShree/doorflow/internal/repository"
)

// defaultCheckinOperator is recorded when the request names nobody.
const defaultCheckinOperator = "Front Desk"

// attendeeService implements AttendeeService
type attendeeService struct {
	repo repository.SnapshotRepository
}

// NewAttendeeService creates a new AttendeeService
func NewAttendeeService(repo repository.SnapshotRepository) AttendeeService {
	return &attendeeService{repo: repo}
}

// Register adds an attendee to the event. Duplicate emails are reported
// through the outcome with no mutation.
func (s *attendeeService) Register(ctx context.Context, eventID string, req *dto.RegisterAttendeeRequest) (*domain.RegistrationOutcome, error) {
	var outcome *domain.RegistrationOutcome

	_, err := s.repo.Update(ctx, func(current *domain.Snapshot) (*domain.Snapshot, error) {
		next, result, err := current.RegisterAttendee(eventID, req.Draft(), time.Now().UTC())
		if err != nil {
			return nil, err
		}
		outcome = result
		return next, nil
	})
	if err != nil {
		return nil, err
	}
	return outcome, nil
}

// Checkin records a check-in by ticket code.
func (s *attendeeService) Checkin(ctx context.Context, eventID string, req *dto.CheckinRequest) (*domain.CheckinOutcome, error) {
	operator := req.CheckedInBy
	if operator == "" {
		operator = defaultCheckinOperator
	}

	var outcome *domain.CheckinOutcome

	_, err := s.repo.Update(ctx, func(current *domain.Snapshot) (*domain.Snapshot, error) {
		next, result, err := current.CheckinAttendee(eventID, req.Code, operator, req.Source, time.Now().UTC())
		if err != nil {
			return nil, err
		}
		outcome = result
		return next, nil
	})
	if err != nil {
		return nil, err
	}
	return outcome, nil
}

// Roster returns the event and its attendees filtered by the query.
func (s *attendeeService) Roster(ctx context.Context, eventID, query string) (*domain.Event, []*domain.Attendee, error) {
	snapshot, err := s.repo.Snapshot(ctx)
	if err != nil {
		return nil, nil, err
	}

	_, event := snapshot.FindEvent(eventID)
	if event == nil {
		return nil, nil, domain.ErrEventNotFound
	}
	return event, event.FilterAttendees(query), nil
}
