package main

import (
	"context"
	"encoding/json"
	"errors"
	"io/ioutil"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"picbridge/pkg/artifacts"
	"picbridge/pkg/pictech"
	"picbridge/pkg/removal"
	"picbridge/pkg/translation"
)

const maxUploadMemory = 32 << 20

type responseEnvelope struct {
	Code    int         `json:"Code"`
	Message string      `json:"Message"`
	Data    interface{} `json:"Data"`
}

func writeJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}

func writeEnvelope(w http.ResponseWriter, statusCode int, message string, data interface{}) {
	writeJSON(w, statusCode, responseEnvelope{statusCode, message, data})
}

func writeVendorJSON(w http.ResponseWriter, body json.RawMessage) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

// statusOfError maps the error taxonomy to client-caused vs server-caused
// statuses without leaking internal stack detail.
func statusOfError(err error) int {
	switch {
	case errors.Is(err, artifacts.ErrInvalidBase64Data),
		errors.Is(err, pictech.ErrImageSourceRequired),
		errors.Is(err, pictech.ErrConflictingImageSources):
		return http.StatusBadRequest
	case errors.Is(err, pictech.ErrVendorReportedFailure):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func handleTranslateFromURL(ctx context.Context, translationService translation.TranslationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(ctx, time.Minute)
		defer cancel()

		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		var request struct {
			ImageURL       string `json:"imageUrl"`
			SourceLanguage string `json:"sourceLanguage"`
			TargetLanguage string `json:"targetLanguage"`
		}

		if err := json.NewDecoder(r.Body).Decode(&request); err != nil || request.ImageURL == "" {
			writeEnvelope(w, http.StatusBadRequest, "imageUrl is required", nil)
			return
		}

		result, err := translationService.SubmitFromURL(ctx, request.ImageURL, request.SourceLanguage, request.TargetLanguage)
		if err != nil {
			log.Printf("translation submit by url failed: %s", err)
			writeEnvelope(w, statusOfError(err), err.Error(), nil)
			return
		}

		writeVendorJSON(w, result)
	}
}

func handleTranslateFromBase64(ctx context.Context, translationService translation.TranslationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(ctx, time.Minute)
		defer cancel()

		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		var request struct {
			ImageBase64    string `json:"imageBase64"`
			SourceLanguage string `json:"sourceLanguage"`
			TargetLanguage string `json:"targetLanguage"`
		}

		if err := json.NewDecoder(r.Body).Decode(&request); err != nil || request.ImageBase64 == "" {
			writeEnvelope(w, http.StatusBadRequest, "imageBase64 is required", nil)
			return
		}

		result, err := translationService.SubmitFromBase64(ctx, request.ImageBase64, request.SourceLanguage, request.TargetLanguage)
		if err != nil {
			log.Printf("translation submit by base64 failed: %s", err)
			writeEnvelope(w, statusOfError(err), err.Error(), nil)
			return
		}

		writeVendorJSON(w, result)
	}
}

func handleTranslateUpload(ctx context.Context, translationService translation.TranslationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(ctx, time.Minute)
		defer cancel()

		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
			writeEnvelope(w, http.StatusBadRequest, "malformed multipart form", nil)
			return
		}

		file, _, err := r.FormFile("file")
		if err != nil {
			writeEnvelope(w, http.StatusBadRequest, "file is required", nil)
			return
		}
		defer file.Close()

		sourceLanguage := r.FormValue("sourceLanguage")
		targetLanguage := r.FormValue("targetLanguage")
		if sourceLanguage == "" || targetLanguage == "" {
			writeEnvelope(w, http.StatusBadRequest, "sourceLanguage and targetLanguage are required", nil)
			return
		}

		contents, err := ioutil.ReadAll(file)
		if err != nil {
			writeEnvelope(w, http.StatusInternalServerError, "cannot read uploaded file", nil)
			return
		}

		result, err := translationService.SubmitFromFile(ctx, contents, sourceLanguage, targetLanguage)
		if err != nil {
			log.Printf("translation submit by upload failed: %s", err)
			writeEnvelope(w, statusOfError(err), err.Error(), nil)
			return
		}

		writeVendorJSON(w, result)
	}
}

func handleTranslateResult(ctx context.Context, translationService translation.TranslationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(ctx, time.Minute)
		defer cancel()

		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		requestID := strings.TrimPrefix(r.URL.Path, "/api/translate/result/")
		if requestID == "" || strings.Contains(requestID, "/") {
			writeEnvelope(w, http.StatusBadRequest, "request id is required", nil)
			return
		}

		result, err := translationService.QueryResult(ctx, requestID)
		if err != nil {
			log.Printf("translation result query failed: %s", err)
			writeEnvelope(w, statusOfError(err), err.Error(), nil)
			return
		}

		writeVendorJSON(w, result)
	}
}

func handleUploadExportedImage(ctx context.Context, translationService translation.TranslationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(ctx, time.Minute)
		defer cancel()

		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		var request struct {
			RequestID   string `json:"requestId"`
			Filename    string `json:"filename"`
			ImageBase64 string `json:"imageBase64"`
		}

		if err := json.NewDecoder(r.Body).Decode(&request); err != nil || request.ImageBase64 == "" {
			writeEnvelope(w, http.StatusBadRequest, "imageBase64 is required", nil)
			return
		}

		if request.Filename == "" {
			request.Filename = "exported.png"
		}

		relativeURL, err := translationService.SaveExportedImage(ctx, request.ImageBase64, request.Filename)
		if err != nil {
			log.Printf("exported image save failed: %s", err)
			writeEnvelope(w, statusOfError(err), err.Error(), nil)
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{
			"message":  "file uploaded",
			"filePath": "/" + relativeURL,
		})
	}
}

func handleSaveState() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		// editor state lives on the frontend, this only acknowledges
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"Code":      200,
			"Message":   "state saved",
			"RequestId": uuid.New().String(),
		})
	}
}

func handleInpaint(ctx context.Context, translationService translation.TranslationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
		defer cancel()

		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		var request struct {
			Image string `json:"image"`
			Mask  string `json:"mask"`
		}

		if err := json.NewDecoder(r.Body).Decode(&request); err != nil || request.Image == "" || request.Mask == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "image and mask are required"})
			return
		}

		newImageBase64, err := translationService.Inpaint(ctx, request.Image, request.Mask)
		if err != nil {
			log.Printf("inpainting failed: %s", err)
			writeJSON(w, statusOfError(err), map[string]string{"error": err.Error()})
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"newImageBase64": newImageBase64})
	}
}

func handleUploadInpaintImage(ctx context.Context, translationService translation.TranslationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(ctx, time.Minute)
		defer cancel()

		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		var request struct {
			ImageData string `json:"imageData"`
		}

		if err := json.NewDecoder(r.Body).Decode(&request); err != nil || request.ImageData == "" {
			writeEnvelope(w, http.StatusBadRequest, "imageData is required", nil)
			return
		}

		relativeURL, err := translationService.SaveInpaintResult(ctx, request.ImageData)
		if err != nil {
			log.Printf("inpaint result save failed: %s", err)
			writeEnvelope(w, statusOfError(err), err.Error(), nil)
			return
		}

		writeEnvelope(w, http.StatusOK, "upload successful", map[string]string{"Url": "/" + relativeURL})
	}
}

func handleRemoveBackground(ctx context.Context, removalService removal.RemovalService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
		defer cancel()

		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		var request struct {
			ImageBase64 string `json:"imageBase64"`
			ImageURL    string `json:"imageUrl"`
			BgColor     string `json:"bgColor"`
		}

		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			writeEnvelope(w, http.StatusBadRequest, "malformed request body", nil)
			return
		}

		task := pictech.RemoveBackgroundTask{
			ImageBase64: request.ImageBase64,
			ImageURL:    request.ImageURL,
			BgColor:     request.BgColor,
		}

		result, err := removalService.RemoveBackground(ctx, task)
		if err != nil {
			log.Printf("background removal failed: %s", err)
			writeEnvelope(w, statusOfError(err), err.Error(), nil)
			return
		}

		switch result.Status {
		case removal.StatusSucceeded:
			writeEnvelope(w, http.StatusOK, "background removed", map[string]string{"Url": "/" + result.URL})

		case removal.StatusTimedOut:
			log.Printf("background removal timed out: %s", result.Message)
			writeEnvelope(w, http.StatusGatewayTimeout, result.Message, nil)

		default:
			log.Printf("background removal rejected by vendor: code=%d errorCode=%s message=%s",
				result.VendorCode, result.VendorErrorCode, result.Message)
			writeEnvelope(w, http.StatusBadGateway, result.Message, map[string]interface{}{
				"VendorCode": result.VendorCode,
				"ErrorCode":  result.VendorErrorCode,
			})
		}
	}
}
