package cli

import (
	"fmt"
	"strconv"
)

// parseTaskID converts a positional task-ID argument into a numeric ID.
func parseTaskID(arg string) (uint64, error) {
	id, err := strconv.ParseUint(arg, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid task ID %q: want a positive number", arg)
	}
	return id, nil
}
