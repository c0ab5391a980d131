package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"community-moderation-api/internal/domain"
)

// SafetyChecker is the external AI content-safety collaborator. Check
// returns whether the text is acceptable and, when it is not, a short
// category string describing why.
type SafetyChecker interface {
	Check(ctx context.Context, text string) (bool, string, error)
}

// Revalidator pushes stale-page notifications after content mutations.
// Implementations must be fire-and-forget; a revalidation failure never
// fails the mutation that triggered it.
type Revalidator interface {
	ContentChanged(ctx context.Context, contentType domain.ContentType, contextID uuid.UUID)
}

// NormalizeKeyword canonicalizes a blacklist keyword: lowercase, trimmed.
// Matching and storage both go through this so the comparison space is
// consistent.
func NormalizeKeyword(keyword string) string {
	return strings.ToLower(strings.TrimSpace(keyword))
}

// matchBlacklist reports the first active keyword that appears as a
// substring of the body, case-insensitively. Keywords are stored
// normalized; the body is normalized here.
func matchBlacklist(body string, keywords []domain.BlacklistKeyword) (string, bool) {
	normalized := strings.ToLower(body)
	for _, k := range keywords {
		if !k.IsActive {
			continue
		}
		if k.Keyword == "" {
			continue
		}
		if strings.Contains(normalized, k.Keyword) {
			return k.Keyword, true
		}
	}
	return "", false
}

// contentPreview returns the first n characters of body for audit metadata
func contentPreview(body string, n int) string {
	runes := []rune(body)
	if len(runes) <= n {
		return body
	}
	return string(runes[:n])
}
