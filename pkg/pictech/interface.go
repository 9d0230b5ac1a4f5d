package pictech

import (
	"context"
	"encoding/json"
)

// Client talks to the PicTech HTTP API. Translation endpoints return the
// vendor's JSON body untouched, so the frontend contract stays bit-exact.
type Client interface {
	SubmitTranslationWithURL(ctx context.Context, imageURL, sourceLanguage, targetLanguage string) (json.RawMessage, error)
	SubmitTranslationWithBase64(ctx context.Context, imageBase64, sourceLanguage, targetLanguage string) (json.RawMessage, error)
	QueryTranslationResult(ctx context.Context, requestID string) (json.RawMessage, error)

	InpaintImageSync(ctx context.Context, imageBase64, maskBase64 string) ([]byte, error)

	SubmitRemoveBackgroundTask(ctx context.Context, task RemoveBackgroundTask) (RemoveBackgroundSubmitResponse, error)
	QueryRemoveBackgroundResult(ctx context.Context, requestID string) (RemoveBackgroundQueryResponse, error)
}
