package removal

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"time"

	"picbridge/pkg/artifacts"
	"picbridge/pkg/filefetcher"
	"picbridge/pkg/pictech"
)

const artifactCategory = "removebg"

const (
	defaultMaxPollAttempts = 15
	defaultPollInterval    = 1500 * time.Millisecond
)

// Status is the terminal state of a background-removal task. Timing out
// after exhausting all poll attempts is distinct from a failure the vendor
// reported itself.
type Status int

const (
	StatusSucceeded Status = iota
	StatusFailed
	StatusTimedOut
)

// Result is the terminal outcome of one background-removal flow. Vendor
// failures and poll exhaustion are values here, not errors; errors are
// reserved for invalid input, transport and storage failures.
type Result struct {
	Status          Status
	URL             string
	VendorCode      int
	VendorErrorCode string
	Message         string
}

type RemovalServiceConfig struct {
	MaxPollAttempts int
	PollInterval    time.Duration
}

type sleepFunc func(ctx context.Context, d time.Duration) error

type RemovalServiceImplementation struct {
	config          RemovalServiceConfig
	client          pictech.Client
	fetcher         filefetcher.Fetcher
	artifactService artifacts.ArtifactService
	sleep           sleepFunc
}

var _ RemovalService = (*RemovalServiceImplementation)(nil)

func NewRemovalService(
	config RemovalServiceConfig,
	client pictech.Client,
	fetcher filefetcher.Fetcher,
	artifactService artifacts.ArtifactService,
) RemovalService {
	if config.MaxPollAttempts <= 0 {
		config.MaxPollAttempts = defaultMaxPollAttempts
	}

	if config.PollInterval <= 0 {
		config.PollInterval = defaultPollInterval
	}

	return &RemovalServiceImplementation{config, client, fetcher, artifactService, sleepWithContext}
}

func (s *RemovalServiceImplementation) RemoveBackground(ctx context.Context, task pictech.RemoveBackgroundTask) (Result, error) {
	submit, err := s.client.SubmitRemoveBackgroundTask(ctx, task)
	if err != nil {
		return Result{}, err
	}

	if submit.Code != pictech.CodeTaskSucceeded {
		return Result{
			Status:     StatusFailed,
			VendorCode: submit.Code,
			Message:    submit.Message,
		}, nil
	}

	for attempt := 0; attempt < s.config.MaxPollAttempts; attempt++ {
		if err := s.sleep(ctx, s.config.PollInterval); err != nil {
			return Result{}, err
		}

		query, err := s.client.QueryRemoveBackgroundResult(ctx, submit.RequestID)
		if err != nil {
			return Result{}, err
		}

		switch query.Code {
		case pictech.CodeTaskProcessing:
			continue

		case pictech.CodeTaskSucceeded:
			if query.Data.OutputURL == "" {
				return Result{
					Status:     StatusFailed,
					VendorCode: query.Code,
					Message:    "vendor reported success without an output url",
				}, nil
			}

			return s.storeOutput(ctx, query.Data.OutputURL)

		default:
			return Result{
				Status:          StatusFailed,
				VendorCode:      query.Code,
				VendorErrorCode: query.ErrorCode,
				Message:         query.Message,
			}, nil
		}
	}

	return Result{
		Status:  StatusTimedOut,
		Message: fmt.Sprintf("task still processing after %d attempts", s.config.MaxPollAttempts),
	}, nil
}

func (s *RemovalServiceImplementation) storeOutput(ctx context.Context, outputURL string) (Result, error) {
	data, err := s.fetcher.Fetch(ctx, outputURL)
	if err != nil {
		return Result{}, err
	}

	relativeURL, err := s.artifactService.StoreBytes(ctx, artifactCategory, filenameHintOf(outputURL), data)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Status:     StatusSucceeded,
		URL:        relativeURL,
		VendorCode: pictech.CodeTaskSucceeded,
	}, nil
}

// filenameHintOf keeps the output's extension when the vendor URL carries one.
func filenameHintOf(outputURL string) string {
	parsed, err := url.Parse(outputURL)
	if err != nil {
		return ""
	}

	return path.Base(parsed.Path)
}

func sleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
