package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/TechnicalShree/doorflow/internal/catalyst"
	"github.com/TechnicalShree/doorflow/internal/dto"
	"github.com/TechnicalShree/doorflow/internal/service"
	"github.com/TechnicalShree/doorflow/pkg/response"
)

// EventHandler handles the event proxy and selection endpoints
type EventHandler struct {
	eventService service.EventService
}

// NewEventHandler creates a new EventHandler
func NewEventHandler(eventService service.EventService) *EventHandler {
	return &EventHandler{
		eventService: eventService,
	}
}

// List handles GET /api/event - proxies the remote event collection. With a
// slug query param it resolves a single record instead.
func (h *EventHandler) List(c *gin.Context) {
	var query dto.EventListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters.")
		return
	}

	if query.Slug != "" {
		event, err := h.eventService.GetRemoteEventBySlug(c.Request.Context(), query.Slug)
		if err != nil {
			respondRemoteError(c, "Catalyst GET /event request failed.", err)
			return
		}
		if event == nil {
			response.NotFound(c, "Event not found.")
			return
		}
		response.OK(c, event)
		return
	}

	events, err := h.eventService.ListRemoteEvents(c.Request.Context(), &query)
	if err != nil {
		respondRemoteError(c, "Catalyst GET /event request failed.", err)
		return
	}
	if events == nil {
		events = []*catalyst.RemoteEvent{}
	}
	response.OK(c, events)
}

// Create handles POST /api/event - validates the draft, pushes it to the
// remote store, and commits locally only after the remote acknowledged.
func (h *EventHandler) Create(c *gin.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Request body must be valid JSON.")
		return
	}

	event, upstream, err := h.eventService.CreateEvent(c.Request.Context(), &req)
	if err != nil {
		if isRemoteError(err) {
			respondRemoteError(c, "Catalyst POST /event request failed.", err)
			return
		}
		respondDomainError(c, err)
		return
	}

	response.Created(c, &dto.CreateEventResponse{
		OK:       true,
		Event:    dto.ToEventResponse(event),
		Upstream: upstream,
	})
}

// Select handles POST /api/events/:id/select
func (h *EventHandler) Select(c *gin.Context) {
	snapshot, err := h.eventService.SelectEvent(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	response.OK(c, dto.ToTenantListResponse(snapshot))
}

func isRemoteError(err error) bool {
	var remote *catalyst.RemoteError
	return errors.As(err, &remote)
}
