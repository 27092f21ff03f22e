// Package sanitize turns user-supplied names into safe blob path segments.
package sanitize

import (
	"regexp"
	"strings"
)

var (
	segmentDisallowed = regexp.MustCompile(`[^a-z0-9._-]+`)
	nameControl       = regexp.MustCompile(`[\\\n\r]`)
	nameWhitespace    = regexp.MustCompile(`[\s\v\pZ\x{FEFF}]+`)
	nameDisallowed    = regexp.MustCompile(`[^a-zA-Z0-9._\-]`)
)

// PathSegment lowercases s, collapses every run of characters outside
// [a-z0-9._-] into a single dash and trims dashes from both ends. An empty
// result becomes "unknown".
func PathSegment(s string) string {
	cleaned := segmentDisallowed.ReplaceAllString(strings.ToLower(s), "-")
	cleaned = strings.Trim(cleaned, "-")
	if cleaned == "" {
		return "unknown"
	}
	return cleaned
}

// BlobName makes an uploaded file name safe to use as the last segment of a
// blob path. Backslashes and line breaks become "_", whitespace runs become "-"
// and any other character outside [A-Za-z0-9._-] becomes "-". An empty result
// becomes "file".
func BlobName(name string) string {
	cleaned := nameControl.ReplaceAllString(name, "_")
	cleaned = nameWhitespace.ReplaceAllString(cleaned, "-")
	cleaned = nameDisallowed.ReplaceAllString(cleaned, "-")
	if cleaned == "" {
		return "file"
	}
	return cleaned
}
