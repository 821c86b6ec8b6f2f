package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/TechnicalShree/doorflow/internal/dto"
	"github.com/TechnicalShree/doorflow/internal/service"
	"github.com/TechnicalShree/doorflow/pkg/response"
)

// AttendeeHandler handles registration, check-in, and roster endpoints
type AttendeeHandler struct {
	attendeeService service.AttendeeService
}

// NewAttendeeHandler creates a new AttendeeHandler
func NewAttendeeHandler(attendeeService service.AttendeeService) *AttendeeHandler {
	return &AttendeeHandler{
		attendeeService: attendeeService,
	}
}

// Register handles POST /api/events/:id/attendees. A duplicate email is not an
// error; the response carries the existing ticket code.
func (h *AttendeeHandler) Register(c *gin.Context) {
	var req dto.RegisterAttendeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Request body must be valid JSON.")
		return
	}

	outcome, err := h.attendeeService.Register(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	resp := &dto.RegistrationResponse{
		Duplicate:  outcome.AlreadyRegistered,
		TicketCode: outcome.Attendee.TicketCode,
		Attendee:   dto.ToAttendeeResponse(outcome.Attendee),
	}
	if outcome.AlreadyRegistered {
		resp.Message = outcome.Attendee.FullName + " is already registered."
		response.OK(c, resp)
		return
	}
	resp.Message = "Registration complete. Ticket code is ready."
	response.Created(c, resp)
}

// Checkin handles POST /api/events/:id/checkin. Repeat check-ins are
// idempotent no-ops.
func (h *AttendeeHandler) Checkin(c *gin.Context) {
	var req dto.CheckinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Request body must be valid JSON.")
		return
	}

	outcome, err := h.attendeeService.Checkin(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	response.OK(c, dto.ToCheckinResponse(outcome))
}

// Roster handles GET /api/events/:id/roster with an optional search filter.
func (h *AttendeeHandler) Roster(c *gin.Context) {
	query := c.Query("search")

	event, attendees, err := h.attendeeService.Roster(c.Request.Context(), c.Param("id"), query)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	entries := make([]*dto.RosterEntry, len(attendees))
	for i, a := range attendees {
		entries[i] = dto.ToRosterEntry(a, event.CheckinFor(a.ID))
	}
	response.OK(c, &dto.RosterResponse{
		Event:     dto.ToEventResponse(event),
		Query:     query,
		Attendees: entries,
	})
}
