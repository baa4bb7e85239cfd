package common

import (
	"github.com/google/uuid"
)

// NewWorkspaceID generates a unique name for a per-request scratch directory
// Format: <uuid>
func NewWorkspaceID() string {
	return uuid.New().String()
}

// IsWorkspaceID reports whether name looks like a scratch directory name.
// Used by cleanup to avoid touching foreign directories under the data root.
func IsWorkspaceID(name string) bool {
	if len(name) != 36 {
		return false
	}
	_, err := uuid.Parse(name)
	return err == nil
}
