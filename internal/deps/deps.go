// Package deps verifies the external binaries the pipeline shells out to.
package deps

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"scribe/internal/config"
)

// Requirement defines an external binary the worker relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
}

// Status reports the availability of one requirement.
type Status struct {
	Requirement
	Available bool
	Detail    string
}

// Required lists the binaries a worker needs, resolved from configuration.
func Required(tools config.Tools) []Requirement {
	return []Requirement{
		{Name: "ffmpeg", Command: tools.FFmpeg, Description: "audio normalization and chunking"},
		{Name: "ffprobe", Command: tools.FFprobe, Description: "media duration probing"},
	}
}

// Check evaluates the requirements against PATH.
func Check(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		status := Status{Requirement: req}
		cmd := strings.TrimSpace(req.Command)
		switch {
		case cmd == "":
			status.Detail = "command not configured"
		default:
			if _, err := exec.LookPath(cmd); err != nil {
				status.Detail = fmt.Sprintf("binary %q not found", cmd)
			} else {
				status.Available = true
			}
		}
		results = append(results, status)
	}
	return results
}

// Verify returns an error naming every missing required binary.
func Verify(tools config.Tools) error {
	var missing []string
	for _, status := range Check(Required(tools)) {
		if !status.Available {
			missing = append(missing, fmt.Sprintf("%s (%s)", status.Name, status.Detail))
		}
	}
	if len(missing) > 0 {
		return errors.New("missing required tools: " + strings.Join(missing, ", "))
	}
	return nil
}
