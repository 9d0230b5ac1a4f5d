package filefetcher

import "context"

// Fetcher downloads a completed task's output over plain, unsigned HTTP.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}
