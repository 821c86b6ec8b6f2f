package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/TechnicalShree/doorflow/internal/dto"
)

func setupTenantRouter(h *TenantHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/tenants", h.List)
	router.POST("/api/tenants/:id/select", h.Select)
	return router
}

func TestTenantHandler_List(t *testing.T) {
	router := setupTenantRouter(NewTenantHandler(NewMockEventService()))

	req, _ := http.NewRequest(http.MethodGet, "/api/tenants", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.Code)
	}

	var body dto.TenantListResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if len(body.Tenants) != 2 {
		t.Errorf("expected 2 tenants, got %d", len(body.Tenants))
	}
	if body.ActiveTenantID != "org-nova" {
		t.Errorf("unexpected active tenant %q", body.ActiveTenantID)
	}
	if body.SelectedEventID != "evt-nova-1" {
		t.Errorf("unexpected selection %q", body.SelectedEventID)
	}
}

func TestTenantHandler_Select(t *testing.T) {
	router := setupTenantRouter(NewTenantHandler(NewMockEventService()))

	req, _ := http.NewRequest(http.MethodPost, "/api/tenants/org-campus/select", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.Code)
	}

	var body dto.TenantListResponse
	json.Unmarshal(resp.Body.Bytes(), &body)
	if body.ActiveTenantID != "org-campus" {
		t.Errorf("unexpected active tenant %q", body.ActiveTenantID)
	}
	if body.SelectedEventID != "evt-campus-1" {
		t.Errorf("selection should reset to the tenant's first event, got %q", body.SelectedEventID)
	}
}

func TestTenantHandler_SelectUnknown(t *testing.T) {
	router := setupTenantRouter(NewTenantHandler(NewMockEventService()))

	req, _ := http.NewRequest(http.MethodPost, "/api/tenants/org-ghost/select", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, resp.Code)
	}

	var body map[string]any
	json.Unmarshal(resp.Body.Bytes(), &body)
	if body["message"] != "Tenant not found." {
		t.Errorf("unexpected message %q", body["message"])
	}
}
