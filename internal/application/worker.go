package application

import "context"

// Worker runs tracker passes in the background until the context is canceled.
type Worker interface {
	Start(ctx context.Context)
}
