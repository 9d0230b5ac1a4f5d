package translation

import (
	"context"
	"encoding/json"
)

// TranslationService wraps the vendor translation and inpainting operations
// for the HTTP layer. Submit and query results are vendor JSON passed
// through untouched; persistence operations return category-rooted relative
// URLs.
type TranslationService interface {
	SubmitFromURL(ctx context.Context, imageURL, sourceLanguage, targetLanguage string) (json.RawMessage, error)
	SubmitFromBase64(ctx context.Context, imageBase64, sourceLanguage, targetLanguage string) (json.RawMessage, error)
	SubmitFromFile(ctx context.Context, fileContents []byte, sourceLanguage, targetLanguage string) (json.RawMessage, error)
	QueryResult(ctx context.Context, requestID string) (json.RawMessage, error)

	SaveExportedImage(ctx context.Context, imageBase64, filename string) (string, error)
	Inpaint(ctx context.Context, imageBase64, maskBase64 string) (string, error)
	SaveInpaintResult(ctx context.Context, imageData string) (string, error)
}
