// Package ident derives deterministic, human-traceable identifier strings
// for UI nodes and tracks the identifiers already issued in the current
// run.
package ident

import (
	"crypto/sha256"
	"encoding/base64"
	"strings"
	"unicode"

	lru "github.com/hashicorp/golang-lru/v2"
)

const (
	// maxSegmentRunes bounds a single sanitized segment. Longer inputs are
	// truncated and given a content-hash tail so distinct texts stay
	// distinct.
	maxSegmentRunes = 32

	// truncatedRunes is how much of the original text survives truncation.
	// With the joining hyphen and the 8-character hash tail the truncated
	// form stays within maxSegmentRunes.
	truncatedRunes = 23

	// hashTailBytes of the SHA-256 digest are kept; base64url encodes
	// them to 8 characters.
	hashTailBytes = 6

	// sanitizeCacheSize bounds the memo cache. Traversals sanitize the
	// same labels over and over, so hits dominate.
	sanitizeCacheSize = 1024
)

// Sanitizer normalizes human-supplied text into identifier-safe segments.
// Results are memoized in a bounded LRU cache. The zero value is not
// usable; call NewSanitizer.
type Sanitizer struct {
	cache *lru.Cache[string, string]
}

// NewSanitizer returns a sanitizer with a warm, empty cache.
func NewSanitizer() *Sanitizer {
	// lru.New only fails for non-positive sizes.
	cache, _ := lru.New[string, string](sanitizeCacheSize)
	return &Sanitizer{cache: cache}
}

// Sanitize converts text into a lowercase, hyphen-separated segment that
// stays recognizable: "Add Fuel" becomes "add-fuel". Whitespace runs
// collapse to one hyphen, unsafe characters are stripped, and segments
// longer than 32 runes are truncated with a deterministic content-hash
// tail. Empty input yields an empty segment.
func (s *Sanitizer) Sanitize(text string) string {
	if text == "" {
		return ""
	}
	if cached, ok := s.cache.Get(text); ok {
		return cached
	}
	out := sanitize(text)
	s.cache.Add(text, out)
	return out
}

func sanitize(text string) string {
	lowered := strings.ToLower(strings.TrimSpace(text))

	var b strings.Builder
	b.Grow(len(lowered))
	lastHyphen := false
	for _, r := range lowered {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastHyphen = false
		case unicode.IsSpace(r) || r == '-' || r == '_':
			if !lastHyphen && b.Len() > 0 {
				b.WriteRune('-')
				lastHyphen = true
			}
		default:
			// Punctuation and symbols are dropped outright; they carry no
			// recognizability and are unsafe in identifier strings.
		}
	}

	segment := strings.Trim(b.String(), "-")
	runes := []rune(segment)
	if len(runes) <= maxSegmentRunes {
		return segment
	}

	head := strings.Trim(string(runes[:truncatedRunes]), "-")
	return head + "-" + hashTail(text)
}

// hashTail returns a short deterministic digest of the full original text.
// Two long labels that share a truncated prefix still produce distinct
// segments.
func hashTail(text string) string {
	sum := sha256.Sum256([]byte(text))
	return base64.RawURLEncoding.EncodeToString(sum[:hashTailBytes])
}
