package domain

import "errors"

// Store errors. Validation and conflict failures abort the transition without
// touching the snapshot; handlers map them onto HTTP statuses.
var (
	ErrTenantNotFound     = errors.New("tenant not found")
	ErrEventNotFound      = errors.New("event not found")
	ErrMissingField       = errors.New("missing required field")
	ErrInvalidSlug        = errors.New("slug resolves to an empty value")
	ErrMissingStartTime   = errors.New("start time is required")
	ErrDuplicateSlug      = errors.New("slug already used in this tenant")
	ErrMissingCode        = errors.New("ticket code is required")
	ErrTicketNotFound     = errors.New("ticket was not found for this event")
	ErrCodeSpaceExhausted = errors.New("unable to generate a unique ticket code")
)
