package entity

import (
	"time"

	"github.com/google/uuid"
)

// BaseSimple carries the identity every stored record has. Seq preserves
// insertion order in the key-ordered store.
type BaseSimple struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Seq       uint64    `json:"seq"`
}
