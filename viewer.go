package dring

import "context"

// Viewer displays a comparison to the user.
type Viewer interface {
	// View displays the comparison and blocks until the user exits.
	View(ctx context.Context, cmp *Comparison) error
}
