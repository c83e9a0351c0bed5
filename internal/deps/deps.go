// Package deps verifies the external binaries condense shells out to.
package deps

import (
	"fmt"
	"os/exec"
	"strings"
)

// Requirement defines an external dependency condense relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of a dependency.
type Status struct {
	Requirement
	Available bool
	Detail    string
}

// Requirements lists the binaries a condensing run needs. The probe
// binary is optional: it only feeds the run summary.
func Requirements(ffmpegBinary, probeBinary string) []Requirement {
	return []Requirement{
		{
			Name:        "FFmpeg",
			Command:     ffmpegBinary,
			Description: "Extracts and concatenates the dialogue audio",
		},
		{
			Name:        "FFprobe",
			Command:     probeBinary,
			Description: "Reports source duration for run statistics",
			Optional:    true,
		},
	}
}

// Check evaluates requirements against PATH and reports availability.
func Check(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		status := Status{Requirement: req}
		status.Command = strings.TrimSpace(req.Command)
		if status.Command == "" {
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		if _, err := exec.LookPath(status.Command); err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", status.Command)
			results = append(results, status)
			continue
		}
		status.Available = true
		results = append(results, status)
	}
	return results
}

// FirstMissing returns the first unavailable non-optional status, if any.
func FirstMissing(statuses []Status) (Status, bool) {
	for _, status := range statuses {
		if !status.Optional && !status.Available {
			return status, true
		}
	}
	return Status{}, false
}
