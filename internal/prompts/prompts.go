// Package prompts builds the instruction pairs sent to the generation
// service. One builder exists per content domain; each is a pure function
// from a typed brief to a fixed system instruction (declaring the required
// JSON output contract) and a user instruction interpolating every brief
// field. Builders never validate their input and never touch I/O.
package prompts

import (
	"fmt"
	"strings"
)

// Prompt is a (system, user) instruction pair for one generation request.
type Prompt struct {
	System string
	User   string
}

// line appends a labeled field to the user instruction.
func line(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "%s: %s\n", label, value)
}

// optional appends a labeled field only when the value is present.
// Absent fields are omitted entirely, never rendered as empty placeholders.
func optional(b *strings.Builder, label string, value *string) {
	if value == nil || *value == "" {
		return
	}
	line(b, label, *value)
}
