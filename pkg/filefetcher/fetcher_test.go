package filefetcher

import (
	"bytes"
	"context"
	"fmt"
	"io/ioutil"
	"net/http"
	"testing"

	testutils "picbridge/test/utils"
)

func fetchGetterFuncFactory(data []byte, responseStatusCode int, err error) httpGetFunc {
	return func(_ context.Context, url string) (*http.Response, error) {
		if err != nil {
			return nil, err
		}

		resp := http.Response{
			Body:       ioutil.NopCloser(bytes.NewReader(data)),
			StatusCode: responseStatusCode,
		}

		return &resp, nil
	}
}

func TestHTTPFetcher_ShouldReturnWholeResponseBody(t *testing.T) {
	testData := []byte{0x1, 0x2, 0x3, 0x4, 0x5, 0x6}
	fetcher := HTTPFetcher{fetchGetterFuncFactory(testData, 200, nil)}

	result, err := fetcher.Fetch(context.Background(), "http://cdn.example.com/out.png")
	if err != nil {
		t.Fatalf("unexpected fetch error: %v", err)
	}

	if !bytes.Equal(result, testData) {
		t.Errorf("Expected %v, got %v", testData, result)
	}
}

func TestHTTPFetcher_ShouldReturn404ErrorOnNotFoundStatus(t *testing.T) {
	fetcher := HTTPFetcher{fetchGetterFuncFactory(nil, 404, nil)}

	_, err := fetcher.Fetch(context.Background(), "http://cdn.example.com/missing.png")
	if err != ErrResponseStatus404 {
		t.Errorf("Expected ErrResponseStatus404, got: %v", err)
	}
}

func TestHTTPFetcher_ShouldReturnNotOKErrorOnAnyOtherStatus(t *testing.T) {
	fetcher := HTTPFetcher{fetchGetterFuncFactory(nil, 500, nil)}

	_, err := fetcher.Fetch(context.Background(), "http://cdn.example.com/out.png")
	if err != ErrResponseStatusNotOK {
		t.Errorf("Expected ErrResponseStatusNotOK, got: %v", err)
	}
}

func TestHTTPFetcher_ShouldFetchFromRealServer(t *testing.T) {
	testData := []byte("png-bytes")

	server := testutils.NewTestHttpServer()
	server.ServeBytes("/out.png", "image/png", 200, testData)
	port := server.Start(t)

	fetcher := NewHTTPFetcher()
	result, err := fetcher.Fetch(context.Background(), fmt.Sprintf("http://localhost:%d/out.png", port))
	if err != nil {
		t.Fatalf("unexpected fetch error: %v", err)
	}

	if !bytes.Equal(result, testData) {
		t.Errorf("Expected %v, got %v", testData, result)
	}
}
