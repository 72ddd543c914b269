package errs

import "strings"

// sanitize flattens multi-line values before they are embedded in error
// messages so a single log line always carries the whole error.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.ReplaceAll(s, "\n", " ")
}
