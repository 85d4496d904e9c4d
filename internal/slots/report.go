package slots

import (
	"fmt"
	"strings"

	"github.com/atomicstack/ace-config/internal/format/table"
	"github.com/atomicstack/ace-config/internal/routine"
)

// Report formats cfg for display in a message box. The first line is the title.
func Report(id ID, cfg routine.Configuration) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Slot %d Configuration:\n", int(id))
	for _, line := range table.KeyValues([][2]string{
		{"Team Color:", string(cfg.TeamColor)},
		{"Starting Position:", string(cfg.StartPosition)},
	}) {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteString("Actions:")
	if len(cfg.Actions) == 0 {
		b.WriteString("\n  (none)")
	}
	for _, a := range cfg.Actions {
		b.WriteString("\n  - ")
		b.WriteString(string(a))
	}
	return b.String()
}

// Label renders a slot entry for the slot picker, e.g. "3 (Occupied)".
func Label(id ID, state State) string {
	return fmt.Sprintf("%d (%s)", int(id), state)
}
