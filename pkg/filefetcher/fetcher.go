package filefetcher

import (
	"context"
	"errors"
	"io/ioutil"
	"net/http"
)

type httpGetFunc func(ctx context.Context, url string) (resp *http.Response, err error)

type HTTPFetcher struct {
	getter httpGetFunc
}

var _ Fetcher = (*HTTPFetcher)(nil)

func NewHTTPFetcher() Fetcher {
	getFunc := func(ctx context.Context, url string) (resp *http.Response, err error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}

		return http.DefaultClient.Do(req)
	}

	return &HTTPFetcher{getFunc}
}

func (fetcher *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	response, err := fetcher.getter(ctx, url)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	if response.StatusCode == http.StatusNotFound {
		return nil, ErrResponseStatus404
	}

	if response.StatusCode != http.StatusOK {
		return nil, ErrResponseStatusNotOK
	}

	return ioutil.ReadAll(response.Body)
}

var (
	ErrResponseStatusNotOK = errors.New("response returned non-200 status code")
	ErrResponseStatus404   = errors.New("response returned 404 status code")
)
