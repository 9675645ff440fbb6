package platform

import "github.com/google/uuid"

// NewID returns a random UUID string, used as the surrogate key for
// reconciliation task records.
func NewID() string {
	return uuid.New().String()
}
