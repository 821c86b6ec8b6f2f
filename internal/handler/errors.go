package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/TechnicalShree/doorflow/internal/catalyst"
	"github.com/TechnicalShree/doorflow/internal/domain"
	"github.com/TechnicalShree/doorflow/pkg/response"
)

const unreachableMessage = "Unable to reach Catalyst /event API."

// respondRemoteError maps a remote store failure onto the proxy contract:
// upstream HTTP failures pass their status and body through, transport
// failures become a 502 with the error detail.
func respondRemoteError(c *gin.Context, message string, err error) {
	var remote *catalyst.RemoteError
	if errors.As(err, &remote) {
		if remote.Kind == catalyst.KindUnavailable {
			response.BadGateway(c, unreachableMessage, remote.Message)
			return
		}
		response.Fail(c, remote.Status, &response.ErrorBody{
			Message:  message,
			Status:   remote.Status,
			Upstream: remote.Upstream,
		})
		return
	}
	response.InternalError(c, err.Error())
}

// respondDomainError maps store errors onto HTTP statuses.
func respondDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrTenantNotFound):
		response.NotFound(c, "Tenant not found.")
	case errors.Is(err, domain.ErrEventNotFound):
		response.NotFound(c, "Event not found.")
	case errors.Is(err, domain.ErrTicketNotFound):
		response.NotFound(c, "No attendee holds that ticket code.")
	case errors.Is(err, domain.ErrDuplicateSlug):
		response.Conflict(c, "An event with this slug already exists.")
	case errors.Is(err, domain.ErrCodeSpaceExhausted):
		response.Conflict(c, "Ticket code space is exhausted for this event.")
	case errors.Is(err, domain.ErrMissingField),
		errors.Is(err, domain.ErrInvalidSlug),
		errors.Is(err, domain.ErrMissingStartTime),
		errors.Is(err, domain.ErrMissingCode):
		response.BadRequest(c, err.Error())
	default:
		response.InternalError(c, err.Error())
	}
}
