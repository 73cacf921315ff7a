package cleantext

import "context"

// OutputWriter persists the final output document.
type OutputWriter interface {
	// Write stores the text at the writer's configured destination and
	// returns a human-readable description of where it went.
	// Returns EOUTPUT when the destination is unwritable.
	Write(ctx context.Context, text string) (destination string, err error)
}
