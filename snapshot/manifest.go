package snapshot

import (
	"time"

	"github.com/google/uuid"
)

// Manifest identifies and summarizes a snapshot. It decodes without
// touching the payload section, so tooling can inspect files cheaply.
type Manifest struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`

	// Entity counts of the stored model, summed over boundaries for
	// solids.
	Vertices int `json:"vertices"`
	Edges    int `json:"edges"`
	Faces    int `json:"faces"`
}

// NewManifest creates a manifest with a fresh random ID and the current
// time.
func NewManifest(name string) Manifest {
	return Manifest{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
}
