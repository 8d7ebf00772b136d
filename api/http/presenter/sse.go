package presenter

import (
	"bufio"
	"encoding/json"
	"fmt"

	"github.com/danielgpm/linkedin-cv/pkg/resume"
)

// Event is one server-sent progress frame. Exactly one terminal frame is
// written per request: either Error set, or Message "Done!" with Data.
type Event struct {
	Message string     `json:"message,omitempty"`
	Error   string     `json:"error,omitempty"`
	Data    *resume.CV `json:"data,omitempty"`
}

// WriteEvent encodes ev as a "data: <json>" frame, blank-line terminated, and
// flushes immediately. A failed flush means the client went away; the caller's
// pipeline keeps running regardless.
func WriteEvent(w *bufio.Writer, ev Event) {
	payload, err := json.Marshal(ev)
	if err != nil {
		return
	}
	fmt.Fprintf(w, "data: %s\n\n", payload)
	_ = w.Flush()
}
