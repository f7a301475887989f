package model

import (
	"strings"
	"time"
)

// StyleTask represents one input model file inside a batch run
type StyleTask struct {
	ID         string
	InputPath  string
	OutputPath string // path of the styled copy, set once known
	Status     TaskStatus
	Progress   float64 // 0.0 to 1.0
	Percent    int     // 0 to 100
	LastError  string  // last error message if any
	StartedAt  time.Time
	FinishedAt time.Time
}

// GetDisplayTitle returns the input filename without directories, suitable
// for list rows.
func (st *StyleTask) GetDisplayTitle() string {
	if st.InputPath == "" {
		return ""
	}

	// Support both / and \ separators
	parts := strings.FieldsFunc(st.InputPath, func(r rune) bool {
		return r == '/' || r == '\\'
	})
	if len(parts) == 0 {
		return st.InputPath
	}
	return parts[len(parts)-1]
}
