package dispatcher

import "context"

// Dispatcher sends one prompt to the hosted model and waits for its answer.
// Every call is an independent round trip; nothing is cached or retried.
//
// An empty reply with a nil error means the model answered with no text
// (for example a candidate stopped by a safety filter).
type Dispatcher interface {
	GetResponse(ctx context.Context, prompt string) (string, error)

	// Converse is GetResponse with earlier turns prepended as context.
	Converse(ctx context.Context, history []Turn, prompt string) (string, error)

	Model() string
}
