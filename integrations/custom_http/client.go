package custom_http

import (
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

type Client interface {
	Do(req *http.Request) ([]byte, error)
	MakeRequest(method string, path string, data *strings.Reader) (*http.Request, error)
	GetRequest(path string) (*http.Request, error)
}

type DefaultClient struct {
	Client  *http.Client
	BaseURL string
	Headers map[string]string
}

func (dc *DefaultClient) Do(req *http.Request) ([]byte, error) {
	resp, err := dc.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		return nil, errors.Errorf("unexpected status %s from %s: %s", resp.Status, req.URL.String(), string(body))
	}
	return body, nil
}

func (dc *DefaultClient) MakeRequest(method string, path string, data *strings.Reader) (*http.Request, error) {
	req, err := http.NewRequest(method, dc.BaseURL+path, data)
	if err != nil {
		return nil, err
	}
	dc.setHeaders(req)
	return req, nil
}

func (dc *DefaultClient) GetRequest(path string) (*http.Request, error) {
	return dc.MakeRequest("GET", path, strings.NewReader(""))
}

func (dc *DefaultClient) setHeaders(req *http.Request) {
	for k, v := range dc.Headers {
		req.Header.Set(k, v)
	}
}
