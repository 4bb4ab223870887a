package symptom

import (
	"regexp"
	"strconv"
	"strings"
)

// triagePattern matches the pinned response format. The recommendation runs
// to the end of the text so multi-sentence advice survives.
var triagePattern = regexp.MustCompile(`(?is)severity:\s*(\d+)\s*/\s*5\W*recommendation:\s*(.+)`)

// parseTriage reads the model's triage response. A severity outside [1,5] or
// a response that does not follow the format yields severity 0 with the raw
// text kept as the recommendation. Parsing never fails.
func parseTriage(raw string) (severity int, recommendation string) {
	raw = strings.TrimSpace(raw)
	m := triagePattern.FindStringSubmatch(raw)
	if m == nil {
		return 0, raw
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 1 || n > 5 {
		return 0, raw
	}
	return n, strings.TrimSpace(m[2])
}

// severityLabel renders severity for display. Zero means the triage response
// could not be read.
func severityLabel(severity int) string {
	if severity < 1 || severity > 5 {
		return "unknown"
	}
	return strconv.Itoa(severity) + "/5"
}
