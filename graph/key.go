package graph

import "github.com/google/uuid"

// NewKey generates a fresh random vertex key, for callers that need
// synthetic vertex identity rather than a natural key drawn from their
// own domain.
func NewKey() []byte {
	id := uuid.New()
	return id[:]
}
