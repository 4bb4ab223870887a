package insights

import (
	"time"
)

// Point is one severity observation on the timeline.
type Point struct {
	T        time.Time `json:"t"`
	Severity int       `json:"severity"`
}

// Report is the severity-over-time view of a patient's history. When no
// history exists the report is an explicit placeholder rather than an error.
type Report struct {
	Points  []Point `json:"points"`
	Empty   bool    `json:"empty"`
	Message string  `json:"message,omitempty"`
}
