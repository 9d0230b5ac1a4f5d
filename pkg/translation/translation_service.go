package translation

import (
	"context"
	"encoding/base64"
	"encoding/json"

	"picbridge/pkg/artifacts"
	"picbridge/pkg/pictech"
)

const (
	// exported images land directly under the upload root
	exportedCategory     = ""
	inpaintCategory      = "iopaint"
	inpaintFrontCategory = "iopaint_front"
)

type TranslationServiceImplementation struct {
	client          pictech.Client
	artifactService artifacts.ArtifactService
}

var _ TranslationService = (*TranslationServiceImplementation)(nil)

func NewTranslationService(client pictech.Client, artifactService artifacts.ArtifactService) TranslationService {
	return &TranslationServiceImplementation{client, artifactService}
}

func (s *TranslationServiceImplementation) SubmitFromURL(ctx context.Context, imageURL, sourceLanguage, targetLanguage string) (json.RawMessage, error) {
	return s.client.SubmitTranslationWithURL(ctx, imageURL, sourceLanguage, targetLanguage)
}

func (s *TranslationServiceImplementation) SubmitFromBase64(ctx context.Context, imageBase64, sourceLanguage, targetLanguage string) (json.RawMessage, error) {
	return s.client.SubmitTranslationWithBase64(ctx, imageBase64, sourceLanguage, targetLanguage)
}

func (s *TranslationServiceImplementation) SubmitFromFile(ctx context.Context, fileContents []byte, sourceLanguage, targetLanguage string) (json.RawMessage, error) {
	encoded := base64.StdEncoding.EncodeToString(fileContents)
	return s.client.SubmitTranslationWithBase64(ctx, encoded, sourceLanguage, targetLanguage)
}

func (s *TranslationServiceImplementation) QueryResult(ctx context.Context, requestID string) (json.RawMessage, error) {
	return s.client.QueryTranslationResult(ctx, requestID)
}

func (s *TranslationServiceImplementation) SaveExportedImage(ctx context.Context, imageBase64, filename string) (string, error) {
	return s.artifactService.StoreBase64(ctx, exportedCategory, filename, pictech.TrimBase64Prefix(imageBase64))
}

// Inpaint proxies a synchronous inpainting call, keeps an archival copy of
// the result and hands the repaired image back as a data URL the frontend
// can render directly. Inpaint results are always PNG.
func (s *TranslationServiceImplementation) Inpaint(ctx context.Context, imageBase64, maskBase64 string) (string, error) {
	imageBytes, err := s.client.InpaintImageSync(ctx, imageBase64, maskBase64)
	if err != nil {
		return "", err
	}

	if _, err := s.artifactService.StoreBytes(ctx, inpaintCategory, "", imageBytes); err != nil {
		return "", err
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(imageBytes), nil
}

func (s *TranslationServiceImplementation) SaveInpaintResult(ctx context.Context, imageData string) (string, error) {
	return s.artifactService.StoreBase64(ctx, inpaintFrontCategory, "", pictech.TrimBase64Prefix(imageData))
}
