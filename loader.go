package dring

import "context"

// Loader reads file contents into memory.
type Loader interface {
	// Load reads the whole file at path.
	Load(ctx context.Context, path string) (*File, error)
}
