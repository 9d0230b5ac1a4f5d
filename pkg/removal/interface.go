package removal

import (
	"context"

	"picbridge/pkg/pictech"
)

// RemovalService runs the full background-removal flow: submit, poll until
// a terminal state, download the output and persist it.
type RemovalService interface {
	RemoveBackground(ctx context.Context, task pictech.RemoveBackgroundTask) (Result, error)
}
