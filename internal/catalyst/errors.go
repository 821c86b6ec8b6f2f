package catalyst

import "fmt"

// RemoteErrorKind classifies a remote failure.
type RemoteErrorKind string

const (
	// KindInvalidPayload is a 4xx-equivalent rejection of the request.
	KindInvalidPayload RemoteErrorKind = "invalid_payload"
	// KindUpstreamError is a 5xx-equivalent remote failure.
	KindUpstreamError RemoteErrorKind = "upstream_error"
	// KindUnavailable is a transport failure reaching the remote store.
	KindUnavailable RemoteErrorKind = "unavailable"
)

// RemoteError is a remote store failure. Status carries the upstream HTTP
// status when one was received; Upstream carries the parsed response body.
type RemoteError struct {
	Kind     RemoteErrorKind
	Status   int
	Message  string
	Upstream any
}

func (e *RemoteError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("catalyst: %s (status %d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("catalyst: %s: %s", e.Kind, e.Message)
}

func remoteStatusError(status int, upstream any) *RemoteError {
	kind := KindUpstreamError
	message := "event store request failed"
	if status >= 400 && status < 500 {
		kind = KindInvalidPayload
		message = "event store rejected the request"
	}
	return &RemoteError{
		Kind:     kind,
		Status:   status,
		Message:  message,
		Upstream: upstream,
	}
}
