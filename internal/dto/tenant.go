package dto

import "github.com/TechnicalShree/doorflow/internal/domain"

// TenantResponse is the API shape of a tenant with its events.
type TenantResponse struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	ShortCode string           `json:"shortCode"`
	City      string           `json:"city"`
	Events    []*EventResponse `json:"events"`
}

// TenantListResponse is the full dashboard state: every tenant plus the
// current selection.
type TenantListResponse struct {
	Tenants         []*TenantResponse `json:"tenants"`
	ActiveTenantID  string            `json:"activeTenantId"`
	SelectedEventID string            `json:"selectedEventId"`
}

// ToTenantResponse converts a domain tenant to its response DTO.
func ToTenantResponse(t *domain.Tenant) *TenantResponse {
	events := make([]*EventResponse, len(t.Events))
	for i, e := range t.Events {
		events[i] = ToEventResponse(e)
	}
	return &TenantResponse{
		ID:        t.ID,
		Name:      t.Name,
		ShortCode: t.ShortCode,
		City:      t.City,
		Events:    events,
	}
}

// ToTenantListResponse converts a snapshot to the dashboard DTO. The selected
// event id is the effective selection after the first-event fallback.
func ToTenantListResponse(s *domain.Snapshot) *TenantListResponse {
	tenants := make([]*TenantResponse, len(s.Tenants))
	for i, t := range s.Tenants {
		tenants[i] = ToTenantResponse(t)
	}
	resp := &TenantListResponse{
		Tenants:        tenants,
		ActiveTenantID: s.ActiveTenantID,
	}
	if selected := s.SelectedEvent(); selected != nil {
		resp.SelectedEventID = selected.ID
	}
	return resp
}
