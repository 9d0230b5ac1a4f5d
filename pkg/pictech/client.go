package pictech

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"
	"strconv"
	"strings"
	"time"

	"picbridge/pkg/signer"
)

const (
	translationSubmitEndpoint      = "/submit_task"
	translationQueryEndpoint       = "/query_result"
	inpaintSyncEndpoint            = "/inpaint_image_sync"
	removeBackgroundSubmitEndpoint = "/submit_remove_background_task"
	removeBackgroundQueryEndpoint  = "/query_remove_background_result"
)

const (
	jsonCallTimeout   = 30 * time.Second
	binaryCallTimeout = 60 * time.Second
)

type Config struct {
	BaseURL   string
	AccountID string
	SecretKey string
}

type httpRequestFunc func(req *http.Request) (*http.Response, error)

// ClientImplementation carries immutable credentials and a single reusable
// transport shared by all calls.
type ClientImplementation struct {
	config      Config
	makeRequest httpRequestFunc
}

var _ Client = (*ClientImplementation)(nil)

func NewClient(config Config) Client {
	transport := &http.Client{}
	return &ClientImplementation{config, transport.Do}
}

func (c *ClientImplementation) SubmitTranslationWithURL(ctx context.Context, imageURL, sourceLanguage, targetLanguage string) (json.RawMessage, error) {
	payload := map[string]string{
		"ImageUrl":       imageURL,
		"SourceLanguage": sourceLanguage,
		"TargetLanguage": targetLanguage,
	}

	return c.postJSON(ctx, translationSubmitEndpoint, payload)
}

func (c *ClientImplementation) SubmitTranslationWithBase64(ctx context.Context, imageBase64, sourceLanguage, targetLanguage string) (json.RawMessage, error) {
	payload := map[string]string{
		"ImageBase64":    TrimBase64Prefix(imageBase64),
		"SourceLanguage": sourceLanguage,
		"TargetLanguage": targetLanguage,
	}

	return c.postJSON(ctx, translationSubmitEndpoint, payload)
}

func (c *ClientImplementation) QueryTranslationResult(ctx context.Context, requestID string) (json.RawMessage, error) {
	payload := map[string]string{"RequestId": requestID}
	return c.postJSON(ctx, translationQueryEndpoint, payload)
}

func (c *ClientImplementation) InpaintImageSync(ctx context.Context, imageBase64, maskBase64 string) ([]byte, error) {
	payload := map[string]string{
		"image": TrimBase64Prefix(imageBase64),
		"mask":  TrimBase64Prefix(maskBase64),
	}

	imageBytes, err := c.postBinary(ctx, inpaintSyncEndpoint, payload)
	if err != nil {
		return nil, err
	}

	if len(imageBytes) == 0 {
		return nil, ErrEmptyImageData
	}

	return imageBytes, nil
}

func (c *ClientImplementation) SubmitRemoveBackgroundTask(ctx context.Context, task RemoveBackgroundTask) (RemoveBackgroundSubmitResponse, error) {
	if task.ImageBase64 == "" && task.ImageURL == "" {
		return RemoveBackgroundSubmitResponse{}, ErrImageSourceRequired
	}

	if task.ImageBase64 != "" && task.ImageURL != "" {
		return RemoveBackgroundSubmitResponse{}, ErrConflictingImageSources
	}

	payload := map[string]string{"BgColor": task.BgColor}
	if task.ImageBase64 != "" {
		payload["ImageBase64"] = TrimBase64Prefix(task.ImageBase64)
	} else {
		payload["ImageUrl"] = task.ImageURL
	}

	body, err := c.postJSON(ctx, removeBackgroundSubmitEndpoint, payload)
	if err != nil {
		return RemoveBackgroundSubmitResponse{}, err
	}

	var response RemoveBackgroundSubmitResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return RemoveBackgroundSubmitResponse{}, fmt.Errorf("%w: malformed submit response: %v", ErrVendorCallFailed, err)
	}

	return response, nil
}

func (c *ClientImplementation) QueryRemoveBackgroundResult(ctx context.Context, requestID string) (RemoveBackgroundQueryResponse, error) {
	payload := map[string]string{"RequestId": requestID}

	body, err := c.postJSON(ctx, removeBackgroundQueryEndpoint, payload)
	if err != nil {
		return RemoveBackgroundQueryResponse{}, err
	}

	var response RemoveBackgroundQueryResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return RemoveBackgroundQueryResponse{}, fmt.Errorf("%w: malformed query response: %v", ErrVendorCallFailed, err)
	}

	return response, nil
}

func (c *ClientImplementation) postJSON(ctx context.Context, endpoint string, payload map[string]string) (json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, jsonCallTimeout)
	defer cancel()

	req, err := c.buildRequest(ctx, endpoint, payload)
	if err != nil {
		return nil, err
	}

	body, _, err := c.execute(req)
	if err != nil {
		return nil, err
	}

	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: response is not valid JSON", ErrVendorCallFailed)
	}

	return json.RawMessage(body), nil
}

func (c *ClientImplementation) postBinary(ctx context.Context, endpoint string, payload map[string]string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, binaryCallTimeout)
	defer cancel()

	req, err := c.buildRequest(ctx, endpoint, payload)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "*/*")

	body, contentType, err := c.execute(req)
	if err != nil {
		return nil, err
	}

	// a JSON body on a binary endpoint is the vendor's error envelope
	if strings.Contains(contentType, "application/json") {
		var envelope struct {
			Message string `json:"Message"`
		}

		message := "unknown vendor error"
		if err := json.Unmarshal(body, &envelope); err == nil && envelope.Message != "" {
			message = envelope.Message
		}

		return nil, fmt.Errorf("%w: %s", ErrVendorReportedFailure, message)
	}

	return body, nil
}

func (c *ClientImplementation) buildRequest(ctx context.Context, endpoint string, payload map[string]string) (*http.Request, error) {
	body, err := json.Marshal(c.signedPayload(payload))
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

// signedPayload copies the payload, injects the common AccountId and
// Timestamp fields and attaches the signature. The signature is computed
// before the Signature field itself is added.
func (c *ClientImplementation) signedPayload(payload map[string]string) map[string]string {
	signed := make(map[string]string, len(payload)+3)
	for key, value := range payload {
		signed[key] = value
	}

	signed["AccountId"] = c.config.AccountID
	signed["Timestamp"] = strconv.FormatInt(time.Now().Unix(), 10)
	signed["Signature"] = signer.Sign(signed, c.config.SecretKey)

	return signed
}

func (c *ClientImplementation) execute(req *http.Request) (body []byte, contentType string, err error) {
	response, err := c.makeRequest(req)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrVendorCallFailed, err)
	}
	defer response.Body.Close()

	body, err = ioutil.ReadAll(response.Body)
	if err != nil {
		return nil, "", fmt.Errorf("%w: reading response: %v", ErrVendorCallFailed, err)
	}

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return nil, "", fmt.Errorf("%w: status %d: %s", ErrVendorCallFailed, response.StatusCode, body)
	}

	return body, response.Header.Get("Content-Type"), nil
}

// TrimBase64Prefix strips a "data:...;base64," style prefix, identified by
// the first comma. Input without a comma passes through unchanged.
func TrimBase64Prefix(encoded string) string {
	if idx := strings.Index(encoded, ","); idx != -1 {
		return encoded[idx+1:]
	}

	return encoded
}

var (
	ErrVendorCallFailed        = errors.New("pictech api call failed")
	ErrVendorReportedFailure   = errors.New("pictech api returned error")
	ErrEmptyImageData          = errors.New("pictech api did not return valid image data")
	ErrImageSourceRequired     = errors.New("either image base64 or image url is required")
	ErrConflictingImageSources = errors.New("image base64 and image url are mutually exclusive")
)
