package snaglib

import (
	"mime"
	"net/url"
	"strings"
)

// ResolveFileName determines the output file name for a download.
// Precedence is fixed and deterministic given (URL, Content-Disposition):
//
//  1. a Content-Disposition header with disposition type "attachment"
//     and an explicit, non-empty filename parameter;
//  2. the last non-empty URL path segment, URL-decoded;
//  3. the URL host;
//  4. otherwise ErrNoFilename.
//
// An attachment disposition with an empty or missing filename falls
// through to rule 2 rather than failing. Every candidate is sanitized;
// a candidate that sanitizes to nothing falls through to the next rule.
func ResolveFileName(u *url.URL, contentDisposition string) (string, error) {
	if contentDisposition != "" {
		if disposition, params, err := mime.ParseMediaType(contentDisposition); err == nil &&
			disposition == "attachment" {
			if fn := SanitizeFilename(params["filename"]); fn != "" {
				return fn, nil
			}
		}
	}

	if fn := SanitizeFilename(lastPathSegment(u)); fn != "" {
		return fn, nil
	}

	if fn := SanitizeFilename(u.Hostname()); fn != "" {
		return fn, nil
	}

	return "", ErrNoFilename
}

// lastPathSegment returns the last non-empty segment of the URL path,
// or "" if the path has none.
func lastPathSegment(u *url.URL) string {
	segments := strings.Split(u.Path, "/")
	for i := len(segments) - 1; i >= 0; i-- {
		if segments[i] != "" {
			return segments[i]
		}
	}
	return ""
}

// SanitizeFilename removes or replaces characters invalid on
// Windows/Unix filesystems. It preserves the file extension and handles
// URL-encoded characters. An empty or all-invalid input yields "".
func SanitizeFilename(name string) string {
	if name == "" {
		return ""
	}

	// URL-decode first (handles %3F for ?, etc.)
	if decoded, err := url.PathUnescape(name); err == nil {
		name = decoded
	}

	// Invalid chars on Windows: < > : " / \ | ? *
	invalidChars := []string{"<", ">", ":", "\"", "/", "\\", "|", "?", "*"}
	for _, char := range invalidChars {
		name = strings.ReplaceAll(name, char, "_")
	}

	// Remove control characters (0x00-0x1F)
	var result strings.Builder
	for _, r := range name {
		if r >= 32 {
			result.WriteRune(r)
		}
	}
	name = result.String()

	// Handle Windows reserved names (case-insensitive)
	baseName, ext := name, ""
	if idx := strings.LastIndex(name, "."); idx > 0 {
		baseName, ext = name[:idx], name[idx:]
	}

	reserved := []string{
		"CON", "PRN", "AUX", "NUL",
		"COM1", "COM2", "COM3", "COM4", "COM5", "COM6", "COM7", "COM8", "COM9",
		"LPT1", "LPT2", "LPT3", "LPT4", "LPT5", "LPT6", "LPT7", "LPT8", "LPT9",
	}
	for _, r := range reserved {
		if strings.EqualFold(baseName, r) {
			baseName = "_" + baseName
			break
		}
	}
	name = baseName + ext

	// Trim leading/trailing spaces and dots (Windows restriction)
	return strings.Trim(name, " .")
}
