// Package catalyst talks to the remote Catalyst event store. The remote side
// is the source of truth for event records; this client performs single-shot
// requests with no retry.
package catalyst

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client is the remote event store interface consumed by the sync and event
// services.
type Client interface {
	// ListEvents fetches the remote event collection.
	ListEvents(ctx context.Context, filter *ListFilter) ([]*RemoteEvent, error)
	// GetEventBySlug resolves a single event through the slug query param.
	// Returns nil when the remote holds no matching record.
	GetEventBySlug(ctx context.Context, slug string) (*RemoteEvent, error)
	// CreateEvent submits a create request; the returned value is the raw
	// upstream body for the success envelope.
	CreateEvent(ctx context.Context, payload *CreateEventPayload) (any, error)
}

// ListFilter holds the optional query params for listing remote events.
type ListFilter struct {
	Limit  int
	Offset int
	Search string
	Slug   string
}

// RemoteEvent is one remote event record. Capacity may arrive as a JSON number
// or a numeric string depending on the upstream shape.
type RemoteEvent struct {
	RowID           string     `json:"ROWID"`
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Slug            string     `json:"slug"`
	StartsAt        string     `json:"starts_at"`
	Venue           string     `json:"venue"`
	Capacity        FlexNumber `json:"capacity"`
	BannerObjectURL string     `json:"banner_object_url"`
	CreatedByUserID string     `json:"created_by_user_id"`
	CreatedAt       string     `json:"created_at"`
	CreatedTime     string     `json:"CREATEDTIME"`
	CreatorID       string     `json:"CREATORID"`
}

// Identifier returns the stable id for the record, preferring the explicit id
// over the Catalyst row id.
func (r *RemoteEvent) Identifier() string {
	if r.ID != "" {
		return r.ID
	}
	return r.RowID
}

// CreateEventPayload is the snake_case body for POST /event.
type CreateEventPayload struct {
	ID              string `json:"id,omitempty"`
	Slug            string `json:"slug"`
	Name            string `json:"name"`
	StartsAt        string `json:"starts_at"`
	Venue           string `json:"venue,omitempty"`
	Capacity        int    `json:"capacity"`
	CreatedByUserID string `json:"created_by_user_id,omitempty"`
	CreatedAt       string `json:"created_at,omitempty"`
}

// FlexNumber accepts a JSON number, a numeric string, or null.
type FlexNumber string

func (f *FlexNumber) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*f = ""
		return nil
	}
	s := strings.Trim(string(b), `"`)
	*f = FlexNumber(s)
	return nil
}

// Int parses the value, returning ok=false for empty or non-numeric input.
func (f FlexNumber) Int() (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(string(f)))
	if err != nil {
		return 0, false
	}
	return n, true
}

// Config holds the remote endpoint settings.
type Config struct {
	BaseURL    string
	CreatePath string // "/event" by default, "/event/create" on older deployments
	Timeout    time.Duration
}

// HTTPClient implements Client over net/http.
type HTTPClient struct {
	baseURL    string
	createPath string
	httpClient *http.Client
}

// NewHTTPClient creates a Catalyst client.
func NewHTTPClient(cfg *Config) *HTTPClient {
	createPath := cfg.CreatePath
	if createPath == "" {
		createPath = "/event"
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &HTTPClient{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		createPath: createPath,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// ListEvents fetches GET {base}/event and decodes whichever envelope shape the
// remote responds with.
func (c *HTTPClient) ListEvents(ctx context.Context, filter *ListFilter) ([]*RemoteEvent, error) {
	endpoint := c.baseURL + "/event"
	if filter != nil {
		params := url.Values{}
		if filter.Limit > 0 {
			params.Set("limit", strconv.Itoa(filter.Limit))
		}
		if filter.Offset > 0 {
			params.Set("offset", strconv.Itoa(filter.Offset))
		}
		if s := strings.TrimSpace(filter.Search); s != "" {
			params.Set("search", s)
		}
		if filter.Slug != "" {
			params.Set("slug", filter.Slug)
		}
		if encoded := params.Encode(); encoded != "" {
			endpoint += "?" + encoded
		}
	}

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	events, err := decodeEventList(body)
	if err != nil {
		return nil, &RemoteError{
			Kind:    KindUpstreamError,
			Message: "unrecognized event collection shape",
			Upstream: func() any {
				var raw any
				if json.Unmarshal(body, &raw) == nil {
					return raw
				}
				return map[string]string{"raw": string(body)}
			}(),
		}
	}
	return events, nil
}

// GetEventBySlug resolves a single record via the slug query param.
func (c *HTTPClient) GetEventBySlug(ctx context.Context, slug string) (*RemoteEvent, error) {
	events, err := c.ListEvents(ctx, &ListFilter{Slug: slug})
	if err != nil {
		return nil, err
	}
	for _, e := range events {
		if e.Slug == slug {
			return e, nil
		}
	}
	return nil, nil
}

// CreateEvent submits POST {base}{createPath}.
func (c *HTTPClient) CreateEvent(ctx context.Context, payload *CreateEventPayload) (any, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, &RemoteError{Kind: KindInvalidPayload, Message: err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+c.createPath, bytes.NewReader(body))
	if err != nil {
		return nil, &RemoteError{Kind: KindUnavailable, Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &RemoteError{Kind: KindUnavailable, Message: fmt.Sprintf("unable to reach event store: %v", err)}
	}
	defer resp.Body.Close()

	upstream := parseUpstreamBody(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, remoteStatusError(resp.StatusCode, upstream)
	}
	return upstream, nil
}

func (c *HTTPClient) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &RemoteError{Kind: KindUnavailable, Message: err.Error()}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &RemoteError{Kind: KindUnavailable, Message: fmt.Sprintf("unable to reach event store: %v", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RemoteError{Kind: KindUnavailable, Message: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, remoteStatusError(resp.StatusCode, parseUpstreamBytes(body))
	}
	return body, nil
}

// parseUpstreamBody decodes a response body as JSON, falling back to wrapping
// the raw text so error envelopes always surface something readable.
func parseUpstreamBody(r io.Reader) any {
	body, err := io.ReadAll(r)
	if err != nil {
		return nil
	}
	return parseUpstreamBytes(body)
}

func parseUpstreamBytes(body []byte) any {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	var parsed any
	if err := json.Unmarshal(body, &parsed); err != nil {
		return map[string]string{"raw": string(body)}
	}
	return parsed
}
