package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/TechnicalShree/doorflow/internal/dto"
	"github.com/TechnicalShree/doorflow/internal/service"
	"github.com/TechnicalShree/doorflow/pkg/response"
)

// TenantHandler handles the tenant dashboard endpoints
type TenantHandler struct {
	eventService service.EventService
}

// NewTenantHandler creates a new TenantHandler
func NewTenantHandler(eventService service.EventService) *TenantHandler {
	return &TenantHandler{
		eventService: eventService,
	}
}

// List handles GET /api/tenants - the full dashboard state.
func (h *TenantHandler) List(c *gin.Context) {
	snapshot, err := h.eventService.Overview(c.Request.Context())
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.OK(c, dto.ToTenantListResponse(snapshot))
}

// Select handles POST /api/tenants/:id/select
func (h *TenantHandler) Select(c *gin.Context) {
	snapshot, err := h.eventService.SelectTenant(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	response.OK(c, dto.ToTenantListResponse(snapshot))
}
