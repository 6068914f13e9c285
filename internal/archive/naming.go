package archive

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
)

var (
	slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

	// Only filenames this package generates may be served or deleted.
	hashedName = regexp.MustCompile(`(?i)^key-[a-f0-9]{12}(?:-\d+)?\.html$`)
	examName   = regexp.MustCompile(`^exam-[a-z0-9-]+\.html$`)
)

// Slugify lowercases a value and collapses non-alphanumeric runs into
// hyphens, capped at 80 characters.
func Slugify(value string) string {
	slug := slugStrip.ReplaceAllString(strings.ToLower(value), "-")
	slug = strings.Trim(slug, "-")
	if len(slug) > 80 {
		slug = slug[:80]
	}
	return slug
}

// FilenameFor derives the archive filename for one exam slot. When subject,
// date and time are all known the name identifies the slot, so every
// candidate of the same exam maps to a single archived copy; otherwise it
// falls back to a content hash of the source URL.
func FilenameFor(subject, date, timeOfDay, sourceURL string) string {
	s, d, t := Slugify(subject), Slugify(date), Slugify(timeOfDay)
	if s != "" && d != "" && t != "" {
		return fmt.Sprintf("exam-%s-%s-%s.html", s, d, t)
	}
	sum := sha256.Sum256([]byte(sourceURL))
	return fmt.Sprintf("key-%s.html", hex.EncodeToString(sum[:])[:12])
}

// Allowed reports whether a requested filename matches the generated-name
// allow-list. Anything else is rejected before touching storage.
func Allowed(name string) bool {
	return hashedName.MatchString(name) || examName.MatchString(name)
}
