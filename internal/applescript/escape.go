// Package applescript synthesizes and executes AppleScript programs.
//
// Scripts are delivered to osascript on stdin rather than as a
// command-line argument, so shell metacharacters in the surrounding
// environment have no effect on the script text. Inside the script,
// Escape is the sole defense against a value terminating a string
// literal early.
package applescript

import "strings"

// escaper rewrites every character capable of terminating an
// AppleScript string literal or switching the interpreter out of
// string context. Backslash must come first so later escapes are not
// themselves re-escaped.
var escaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	`'`, `\'`,
	"\r", `\r`,
	"\n", `\n`,
	"\t", `\t`,
)

// Escape converts arbitrary text into an injection-safe AppleScript
// string body. The result never contains an unescaped quote,
// backslash, or line break.
func Escape(s string) string {
	return escaper.Replace(s)
}

// Quote returns s escaped and wrapped in double quotes, ready to embed
// in a statement.
func Quote(s string) string {
	return `"` + Escape(s) + `"`
}
