package resume

import "strings"

// IsLinkedInResume reports whether text looks like a LinkedIn-exported resume.
// The check is an exact case-insensitive substring match on the profile URL
// marker; a resume whose profile line was garbled upstream fails the gate.
func IsLinkedInResume(text string) bool {
	return strings.Contains(strings.ToLower(text), "linkedin.com/in/")
}
