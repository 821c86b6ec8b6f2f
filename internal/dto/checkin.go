package dto

import (
	"time"

	"github.com/TechnicalShree/doorflow/internal/domain"
)

// CheckinRequest is the input for POST /api/events/:id/checkin.
type CheckinRequest struct {
	Code        string `json:"code"`
	CheckedInBy string `json:"checkedInBy"`
	Source      string `json:"source"`
}

// CheckinResponse reports a check-in. A repeated check-in is an idempotent
// no-op flagged through AlreadyCheckedIn.
type CheckinResponse struct {
	AlreadyCheckedIn bool              `json:"alreadyCheckedIn"`
	TicketCode       string            `json:"ticketCode"`
	Attendee         *AttendeeResponse `json:"attendee"`
	CheckedInAt      string            `json:"checkedInAt"`
	Message          string            `json:"message"`
}

// ToCheckinResponse converts a check-in outcome to its response DTO.
func ToCheckinResponse(outcome *domain.CheckinOutcome) *CheckinResponse {
	resp := &CheckinResponse{
		AlreadyCheckedIn: outcome.AlreadyCheckedIn,
		TicketCode:       outcome.Attendee.TicketCode,
		Attendee:         ToAttendeeResponse(outcome.Attendee),
	}
	if outcome.Record != nil {
		resp.CheckedInAt = outcome.Record.CheckedInAt.Format(time.RFC3339)
	}
	if outcome.AlreadyCheckedIn {
		resp.Message = outcome.Attendee.FullName + " is already checked in."
	} else {
		resp.Message = outcome.Attendee.FullName + " checked in successfully."
	}
	return resp
}
