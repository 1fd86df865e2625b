package core

import (
	"github.com/google/uuid"
)

// Handle identifies a placed object instance
// The zero value is "no object"
type Handle struct {
	id uuid.UUID
}

// NilHandle is the absent-object sentinel
var NilHandle = Handle{}

// NewHandle allocates a fresh unique handle
func NewHandle() Handle {
	return Handle{id: uuid.New()}
}

// IsNil reports whether h refers to no object
func (h Handle) IsNil() bool {
	return h.id == uuid.Nil
}

// String returns the canonical textual form of the handle
func (h Handle) String() string {
	return h.id.String()
}
