package resume

import "strings"

// StripFences trims whitespace and removes a single leading markdown code
// fence (with optional json tag) and, when present, the matching trailing
// fence. Prefix/suffix only: stray fencing mid-document is left alone, and a
// leading fence without a trailing one strips nothing from the tail.
func StripFences(raw string) string {
	t := strings.TrimSpace(raw)
	switch {
	case strings.HasPrefix(t, "```json"):
		t = strings.TrimLeft(strings.TrimPrefix(t, "```json"), " \t\r\n")
		t = trimClosingFence(t)
	case strings.HasPrefix(t, "```"):
		t = strings.TrimLeft(strings.TrimPrefix(t, "```"), " \t\r\n")
		t = trimClosingFence(t)
	}
	return t
}

func trimClosingFence(t string) string {
	if strings.HasSuffix(t, "```") {
		t = strings.TrimRight(strings.TrimSuffix(t, "```"), " \t\r\n")
	}
	return t
}
