package core

import "github.com/google/uuid"

// RunID is a per-process correlation id threaded through startup and
// generation-boundary log lines.
type RunID string

// NewRunID returns a freshly generated RunID.
func NewRunID() RunID {
	return RunID(uuid.New().String())
}
