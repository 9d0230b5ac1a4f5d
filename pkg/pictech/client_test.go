package pictech

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"
	"testing"

	"github.com/franela/goblin"

	"picbridge/pkg/signer"
)

func testClient(statusCode int, response []byte, contentType string, callError error, requestAssert func(req *http.Request, payload map[string]string)) *ClientImplementation {
	config := Config{
		BaseURL:   "http://pictech.example.com",
		AccountID: "test-account",
		SecretKey: "test-secret",
	}

	makeRequest := func(req *http.Request) (*http.Response, error) {
		body, _ := ioutil.ReadAll(req.Body)

		var payload map[string]string
		json.Unmarshal(body, &payload)
		requestAssert(req, payload)

		if callError != nil {
			return nil, callError
		}

		return &http.Response{
			StatusCode: statusCode,
			Body:       ioutil.NopCloser(bytes.NewReader(response)),
			Header: http.Header{
				"Content-Type": []string{contentType},
			},
		}, nil
	}

	return &ClientImplementation{config, makeRequest}
}

func noAssertions(req *http.Request, payload map[string]string) {}

func TestClient(t *testing.T) {
	g := goblin.Goblin(t)

	g.Describe("Client", func() {
		g.Describe("signed JSON calls", func() {
			g.It("Should inject common fields and a recomputable signature", func() {
				var sent map[string]string
				client := testClient(200, []byte(`{"RequestId":"req-1"}`), "application/json", nil, func(req *http.Request, payload map[string]string) {
					sent = payload
				})

				_, err := client.SubmitTranslationWithURL(context.Background(), "http://images.example.com/a.png", "en", "zh")
				g.Assert(err).IsNil()

				g.Assert(sent["ImageUrl"]).Equal("http://images.example.com/a.png")
				g.Assert(sent["SourceLanguage"]).Equal("en")
				g.Assert(sent["TargetLanguage"]).Equal("zh")
				g.Assert(sent["AccountId"]).Equal("test-account")
				g.Assert(sent["Timestamp"] != "").IsTrue()

				unsigned := map[string]string{}
				for key, value := range sent {
					if key != "Signature" {
						unsigned[key] = value
					}
				}
				g.Assert(sent["Signature"]).Equal(signer.Sign(unsigned, "test-secret"))
			})

			g.It("Should target the submit endpoint with content type JSON", func() {
				client := testClient(200, []byte(`{}`), "application/json", nil, func(req *http.Request, payload map[string]string) {
					g.Assert(req.URL.String()).Equal("http://pictech.example.com/submit_task")
					g.Assert(req.Method).Equal(http.MethodPost)
					g.Assert(req.Header.Get("Content-Type")).Equal("application/json")
				})

				_, err := client.SubmitTranslationWithURL(context.Background(), "http://images.example.com/a.png", "en", "zh")
				g.Assert(err).IsNil()
			})

			g.It("Should return the vendor body untouched", func() {
				vendorBody := `{"RequestId":"req-9","Status":3,"Extra":{"a":1}}`
				client := testClient(200, []byte(vendorBody), "application/json", nil, noAssertions)

				body, err := client.QueryTranslationResult(context.Background(), "req-9")
				g.Assert(err).IsNil()
				g.Assert(string(body)).Equal(vendorBody)
			})

			g.It("Should fail with vendor call error on non-2xx status", func() {
				client := testClient(500, []byte(`{"Message":"boom"}`), "application/json", nil, noAssertions)

				_, err := client.QueryTranslationResult(context.Background(), "req-1")
				g.Assert(errors.Is(err, ErrVendorCallFailed)).IsTrue()
			})

			g.It("Should fail with vendor call error on network failure", func() {
				client := testClient(0, nil, "", errors.New("connection refused"), noAssertions)

				_, err := client.QueryTranslationResult(context.Background(), "req-1")
				g.Assert(errors.Is(err, ErrVendorCallFailed)).IsTrue()
			})
		})

		g.Describe("base64 prefix stripping", func() {
			g.It("Should transmit only the part after the first comma", func() {
				client := testClient(200, []byte(`{}`), "application/json", nil, func(req *http.Request, payload map[string]string) {
					g.Assert(payload["ImageBase64"]).Equal("AAAA")
				})

				_, err := client.SubmitTranslationWithBase64(context.Background(), "data:image/png;base64,AAAA", "en", "zh")
				g.Assert(err).IsNil()
			})

			g.It("Should pass input without a comma through unchanged", func() {
				client := testClient(200, []byte(`{}`), "application/json", nil, func(req *http.Request, payload map[string]string) {
					g.Assert(payload["ImageBase64"]).Equal("AAAA")
				})

				_, err := client.SubmitTranslationWithBase64(context.Background(), "AAAA", "en", "zh")
				g.Assert(err).IsNil()
			})
		})

		g.Describe("InpaintImageSync", func() {
			g.It("Should return raw bytes and strip prefixes from both inputs", func() {
				imageBytes := []byte{0x89, 0x50, 0x4e, 0x47}
				client := testClient(200, imageBytes, "image/png", nil, func(req *http.Request, payload map[string]string) {
					g.Assert(payload["image"]).Equal("AAAA")
					g.Assert(payload["mask"]).Equal("BBBB")
					g.Assert(req.Header.Get("Accept")).Equal("*/*")
				})

				result, err := client.InpaintImageSync(context.Background(), "data:image/png;base64,AAAA", "data:image/png;base64,BBBB")
				g.Assert(err).IsNil()
				g.Assert(result).Equal(imageBytes)
			})

			g.It("Should treat a JSON response as the vendor error envelope", func() {
				client := testClient(200, []byte(`{"Message":"mask size mismatch"}`), "application/json; charset=utf-8", nil, noAssertions)

				_, err := client.InpaintImageSync(context.Background(), "AAAA", "BBBB")
				g.Assert(errors.Is(err, ErrVendorReportedFailure)).IsTrue()
				g.Assert(err.Error()).Equal("pictech api returned error: mask size mismatch")
			})

			g.It("Should fail when the vendor returns an empty body", func() {
				client := testClient(200, []byte{}, "image/png", nil, noAssertions)

				_, err := client.InpaintImageSync(context.Background(), "AAAA", "BBBB")
				g.Assert(errors.Is(err, ErrEmptyImageData)).IsTrue()
			})
		})

		g.Describe("SubmitRemoveBackgroundTask", func() {
			g.It("Should fail before any request when no image source is given", func() {
				client := testClient(200, []byte(`{}`), "application/json", nil, func(req *http.Request, payload map[string]string) {
					g.Fail(fmt.Sprintf("no request expected, got %s", req.URL))
				})

				_, err := client.SubmitRemoveBackgroundTask(context.Background(), RemoveBackgroundTask{BgColor: "#ffffff"})
				g.Assert(errors.Is(err, ErrImageSourceRequired)).IsTrue()
			})

			g.It("Should fail before any request when both image sources are given", func() {
				client := testClient(200, []byte(`{}`), "application/json", nil, func(req *http.Request, payload map[string]string) {
					g.Fail(fmt.Sprintf("no request expected, got %s", req.URL))
				})

				task := RemoveBackgroundTask{ImageBase64: "AAAA", ImageURL: "http://images.example.com/a.png"}
				_, err := client.SubmitRemoveBackgroundTask(context.Background(), task)
				g.Assert(errors.Is(err, ErrConflictingImageSources)).IsTrue()
			})

			g.It("Should decode the typed submit response", func() {
				client := testClient(200, []byte(`{"Code":200,"RequestId":"task-1","Message":"ok"}`), "application/json", nil, func(req *http.Request, payload map[string]string) {
					g.Assert(req.URL.Path).Equal("/submit_remove_background_task")
					g.Assert(payload["ImageUrl"]).Equal("http://images.example.com/a.png")
					g.Assert(payload["BgColor"]).Equal("#ffffff")
				})

				response, err := client.SubmitRemoveBackgroundTask(context.Background(), RemoveBackgroundTask{
					ImageURL: "http://images.example.com/a.png",
					BgColor:  "#ffffff",
				})
				g.Assert(err).IsNil()
				g.Assert(response.Code).Equal(200)
				g.Assert(response.RequestID).Equal("task-1")
			})
		})

		g.Describe("QueryRemoveBackgroundResult", func() {
			g.It("Should decode the typed query response", func() {
				body := `{"Code":200,"Data":{"OutputUrl":"http://cdn.example.com/out.png"},"Message":"done","ErrorCode":""}`
				client := testClient(200, []byte(body), "application/json", nil, func(req *http.Request, payload map[string]string) {
					g.Assert(req.URL.Path).Equal("/query_remove_background_result")
					g.Assert(payload["RequestId"]).Equal("task-1")
				})

				response, err := client.QueryRemoveBackgroundResult(context.Background(), "task-1")
				g.Assert(err).IsNil()
				g.Assert(response.Code).Equal(200)
				g.Assert(response.Data.OutputURL).Equal("http://cdn.example.com/out.png")
			})
		})
	})
}
