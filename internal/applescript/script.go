package applescript

import "strings"

// RemindersApp is the automation target all generated scripts address.
const RemindersApp = "Reminders"

// TellBlock wraps body statements in a single enclosing tell block for
// the given application. Statements are emitted one per line in the
// order given; none are computed at invocation time from unescaped
// concatenation.
func TellBlock(app string, body []string) string {
	var b strings.Builder

	b.WriteString(`tell application ` + Quote(app) + "\n")

	for _, line := range body {
		b.WriteString("\t")
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("end tell\n")

	return b.String()
}
