package catalyst

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(ts *httptest.Server) *HTTPClient {
	return NewHTTPClient(&Config{BaseURL: ts.URL})
}

func TestListEvents(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/event" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("limit"); got != "10" {
			t.Errorf("expected limit=10, got %q", got)
		}
		if got := r.URL.Query().Get("search"); got != "demo" {
			t.Errorf("expected search=demo, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[{"Events":{"ROWID":"101","name":"Demo Day","slug":"demo-day","capacity":"120"}}]}`))
	}))
	defer ts.Close()

	events, err := newTestClient(ts).ListEvents(context.Background(), &ListFilter{Limit: 10, Search: "demo"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 1 || events[0].Name != "Demo Day" {
		t.Fatalf("unexpected events: %+v", events)
	}
	if n, ok := events[0].Capacity.Int(); !ok || n != 120 {
		t.Errorf("unexpected capacity: %v %v", n, ok)
	}
}

func TestListEventsUpstreamFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"boom"}`))
	}))
	defer ts.Close()

	_, err := newTestClient(ts).ListEvents(context.Background(), nil)

	var remote *RemoteError
	if !errors.As(err, &remote) {
		t.Fatalf("expected RemoteError, got %v", err)
	}
	if remote.Kind != KindUpstreamError {
		t.Errorf("expected upstream_error, got %q", remote.Kind)
	}
	if remote.Status != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", remote.Status)
	}
}

func TestListEventsUnreachable(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	ts.Close()

	_, err := newTestClient(ts).ListEvents(context.Background(), nil)

	var remote *RemoteError
	if !errors.As(err, &remote) {
		t.Fatalf("expected RemoteError, got %v", err)
	}
	if remote.Kind != KindUnavailable {
		t.Errorf("expected unavailable, got %q", remote.Kind)
	}
}

func TestGetEventBySlug(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("slug"); got != "demo-day" {
			t.Errorf("expected slug query, got %q", got)
		}
		w.Write([]byte(`[{"ROWID":"101","name":"Demo Day","slug":"demo-day"},{"ROWID":"102","name":"Other","slug":"other"}]`))
	}))
	defer ts.Close()

	event, err := newTestClient(ts).GetEventBySlug(context.Background(), "demo-day")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if event == nil || event.RowID != "101" {
		t.Fatalf("unexpected event: %+v", event)
	}
}

func TestGetEventBySlugNoMatch(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	event, err := newTestClient(ts).GetEventBySlug(context.Background(), "ghost")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if event != nil {
		t.Errorf("expected nil for a missing slug, got %+v", event)
	}
}

func TestCreateEvent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/event" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var payload CreateEventPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		if payload.Slug != "demo-day" || payload.Capacity != 120 {
			t.Errorf("unexpected payload: %+v", payload)
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"ROWID":"101"}`))
	}))
	defer ts.Close()

	upstream, err := newTestClient(ts).CreateEvent(context.Background(), &CreateEventPayload{
		Slug:     "demo-day",
		Name:     "Demo Day",
		StartsAt: "2026-04-01T09:00",
		Capacity: 120,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	body, ok := upstream.(map[string]any)
	if !ok || body["ROWID"] != "101" {
		t.Errorf("unexpected upstream body: %+v", upstream)
	}
}

func TestCreateEventRejected(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"slug taken"}`))
	}))
	defer ts.Close()

	_, err := newTestClient(ts).CreateEvent(context.Background(), &CreateEventPayload{Slug: "demo-day"})

	var remote *RemoteError
	if !errors.As(err, &remote) {
		t.Fatalf("expected RemoteError, got %v", err)
	}
	if remote.Kind != KindInvalidPayload {
		t.Errorf("expected invalid_payload, got %q", remote.Kind)
	}
	if remote.Status != http.StatusUnprocessableEntity {
		t.Errorf("expected status 422, got %d", remote.Status)
	}
	if remote.Upstream == nil {
		t.Error("expected upstream body to be carried")
	}
}

func TestCreateEventNonJSONBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream text"))
	}))
	defer ts.Close()

	_, err := newTestClient(ts).CreateEvent(context.Background(), &CreateEventPayload{Slug: "x"})

	var remote *RemoteError
	if !errors.As(err, &remote) {
		t.Fatalf("expected RemoteError, got %v", err)
	}
	wrapped, ok := remote.Upstream.(map[string]string)
	if !ok || wrapped["raw"] != "upstream text" {
		t.Errorf("expected raw wrapper, got %+v", remote.Upstream)
	}
}
