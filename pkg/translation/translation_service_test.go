package translation_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"

	artifactrepositories "picbridge/pkg/artifacts/repositories"
	"picbridge/pkg/pictech"
	mock_pictech "picbridge/pkg/pictech/mocks"
	"picbridge/pkg/translation"
)

type fakeArtifactService struct {
	storedData    []byte
	storedEncoded string
	category      string
	hint          string
	url           string
	err           error
	storeCalls    int
}

func (f *fakeArtifactService) StoreBytes(ctx context.Context, category, filenameHint string, data []byte) (string, error) {
	f.storeCalls++
	f.category = category
	f.hint = filenameHint
	f.storedData = data
	return f.url, f.err
}

func (f *fakeArtifactService) StoreBase64(ctx context.Context, category, filenameHint, encoded string) (string, error) {
	f.storeCalls++
	f.category = category
	f.hint = filenameHint
	f.storedEncoded = encoded
	return f.url, f.err
}

func (f *fakeArtifactService) GetArtifactInfo(ctx context.Context, artifactID string) (artifactrepositories.ArtifactModel, error) {
	return artifactrepositories.ArtifactModel{}, errors.New("not expected in translation flow")
}

func TestTranslationService_SubmitFromFileEncodesContentsBeforeSubmission(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	mockClient := mock_pictech.NewMockClient(mockCtrl)
	fileContents := []byte{0x89, 0x50, 0x4e, 0x47}
	encoded := base64.StdEncoding.EncodeToString(fileContents)

	mockClient.EXPECT().SubmitTranslationWithBase64(gomock.Any(), encoded, "en", "zh").
		Return(json.RawMessage(`{"RequestId":"req-1"}`), nil)

	service := translation.NewTranslationService(mockClient, &fakeArtifactService{})
	result, err := service.SubmitFromFile(context.Background(), fileContents, "en", "zh")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if string(result) != `{"RequestId":"req-1"}` {
		t.Errorf("vendor response not passed through, got %s", result)
	}
}

func TestTranslationService_QueryResultPassesVendorBodyThrough(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	mockClient := mock_pictech.NewMockClient(mockCtrl)

	mockClient.EXPECT().QueryTranslationResult(gomock.Any(), "req-1").
		Return(json.RawMessage(`{"Status":2}`), nil)

	service := translation.NewTranslationService(mockClient, &fakeArtifactService{})
	result, err := service.QueryResult(context.Background(), "req-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if string(result) != `{"Status":2}` {
		t.Errorf("vendor response not passed through, got %s", result)
	}
}

func TestTranslationService_SaveExportedImageStoresUnderRootCategory(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	mockClient := mock_pictech.NewMockClient(mockCtrl)
	artifactService := &fakeArtifactService{url: "2024-01-01/abc.jpg"}

	service := translation.NewTranslationService(mockClient, artifactService)
	url, err := service.SaveExportedImage(context.Background(), "data:image/jpeg;base64,aGVsbG8=", "exported.jpg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if url != "2024-01-01/abc.jpg" {
		t.Errorf("unexpected url: %q", url)
	}

	if artifactService.category != "" || artifactService.hint != "exported.jpg" || artifactService.storedEncoded != "aGVsbG8=" {
		t.Errorf("unexpected store call: category %q, hint %q, encoded %q",
			artifactService.category, artifactService.hint, artifactService.storedEncoded)
	}
}

func TestTranslationService_InpaintArchivesCopyAndReturnsDataURL(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	mockClient := mock_pictech.NewMockClient(mockCtrl)
	imageBytes := []byte{0x89, 0x50, 0x4e, 0x47}
	artifactService := &fakeArtifactService{url: "iopaint/2024-01-01/abc.png"}

	mockClient.EXPECT().InpaintImageSync(gomock.Any(), "AAAA", "BBBB").Return(imageBytes, nil)

	service := translation.NewTranslationService(mockClient, artifactService)
	result, err := service.Inpaint(context.Background(), "AAAA", "BBBB")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := "data:image/png;base64," + base64.StdEncoding.EncodeToString(imageBytes)
	if result != expected {
		t.Errorf("Expected %q, got %q", expected, result)
	}

	if artifactService.category != "iopaint" || len(artifactService.storedData) == 0 {
		t.Errorf("archival copy not stored: category %q, %d bytes",
			artifactService.category, len(artifactService.storedData))
	}
}

func TestTranslationService_InpaintDoesNotStoreOnVendorFailure(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	mockClient := mock_pictech.NewMockClient(mockCtrl)
	artifactService := &fakeArtifactService{}

	mockClient.EXPECT().InpaintImageSync(gomock.Any(), "AAAA", "BBBB").
		Return(nil, pictech.ErrVendorReportedFailure)

	service := translation.NewTranslationService(mockClient, artifactService)
	_, err := service.Inpaint(context.Background(), "AAAA", "BBBB")

	if !errors.Is(err, pictech.ErrVendorReportedFailure) {
		t.Errorf("Expected ErrVendorReportedFailure, got: %v", err)
	}

	if artifactService.storeCalls != 0 {
		t.Errorf("nothing should be stored on vendor failure, got %d store calls", artifactService.storeCalls)
	}
}

func TestTranslationService_SaveInpaintResultStripsDataURLPrefix(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	mockClient := mock_pictech.NewMockClient(mockCtrl)
	artifactService := &fakeArtifactService{url: "iopaint_front/2024-01-01/abc.png"}

	service := translation.NewTranslationService(mockClient, artifactService)
	url, err := service.SaveInpaintResult(context.Background(), "data:image/png;base64,aGVsbG8=")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if url != "iopaint_front/2024-01-01/abc.png" {
		t.Errorf("unexpected url: %q", url)
	}

	if artifactService.category != "iopaint_front" || artifactService.storedEncoded != "aGVsbG8=" {
		t.Errorf("unexpected store call: category %q, encoded %q",
			artifactService.category, artifactService.storedEncoded)
	}
}
