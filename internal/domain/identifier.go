package domain

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"
)

const (
	base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

	// maxSlugLength bounds normalized slugs.
	maxSlugLength = 48

	// maxCodeAttempts caps ticket-code regeneration so the operation stays
	// total even against a pathological existing-code set.
	maxCodeAttempts = 64
)

var nonAlnumRun = regexp.MustCompile(`[^a-z0-9]+`)

// NewID returns an identifier of the form "<prefix>-<7 base36 chars>".
// Collisions are possible but treated as negligible.
func NewID(prefix string) string {
	return prefix + "-" + randomBase36(7)
}

// NormalizeSlug trims, lowercases, collapses runs of non-alphanumerics into a
// single hyphen, strips leading/trailing hyphens, and truncates to 48 chars.
// An empty result is returned as-is; callers reject empty slugs explicitly.
func NormalizeSlug(raw string) string {
	slug := strings.ToLower(strings.TrimSpace(raw))
	slug = nonAlnumRun.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	if len(slug) > maxSlugLength {
		slug = slug[:maxSlugLength]
	}
	return slug
}

// NewTicketCode generates an uppercase "<4-char slug prefix>-<4 base36 chars>"
// code absent from existingCodes, regenerating on collision. Returns
// ErrCodeSpaceExhausted once the attempt cap is hit.
func NewTicketCode(slug string, existingCodes map[string]struct{}) (string, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code := buildTicketCode(slug)
		if _, taken := existingCodes[code]; !taken {
			return code, nil
		}
	}
	return "", fmt.Errorf("%w after %d attempts", ErrCodeSpaceExhausted, maxCodeAttempts)
}

func buildTicketCode(slug string) string {
	var base strings.Builder
	for _, r := range strings.ToUpper(slug) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			base.WriteRune(r)
			if base.Len() == 4 {
				break
			}
		}
	}
	prefix := base.String()
	for len(prefix) < 4 {
		prefix += "X"
	}
	return prefix + "-" + strings.ToUpper(randomBase36(4))
}

func randomBase36(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = base36Alphabet[rand.Intn(len(base36Alphabet))]
	}
	return string(b)
}
