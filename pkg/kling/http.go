package kling

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

// userAgent identifies this client to the API.
const userAgent = "kling-go/1.0"

// httpClient handles HTTP communication with the Kling API.
type httpClient struct {
	client  *http.Client
	baseURL string
	signer  *signer
}

// newHTTPClient creates a new HTTP client.
func newHTTPClient(cfg *clientConfig) *httpClient {
	return &httpClient{
		client:  cfg.httpClient,
		baseURL: cfg.baseURL,
		signer:  newSigner(cfg),
	}
}

// request makes a single authenticated request and returns the response body.
//
// For GET requests data is sent as query parameters, otherwise it is
// marshaled as the JSON body. The body is returned whatever the HTTP status
// is, as long as it is valid JSON.
func (h *httpClient) request(ctx context.Context, method, path string, data any) (json.RawMessage, error) {
	token, err := h.signer.sign()
	if err != nil {
		return nil, err
	}

	u := h.baseURL + path

	var bodyReader io.Reader
	if method == http.MethodGet {
		query, err := encodeQuery(data)
		if err != nil {
			return nil, err
		}
		if len(query) > 0 {
			u += "?" + query.Encode()
		}
	} else if data != nil {
		bodyData, err := json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(bodyData)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	h.setHeaders(req, token)

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	return h.handleResponse(resp)
}

// setHeaders sets common headers for API requests.
func (h *httpClient) setHeaders(req *http.Request, token string) {
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)
}

// handleResponse reads the body and checks that it is JSON.
// The HTTP status code is recorded on errors only.
func (h *httpClient) handleResponse(resp *http.Response) (json.RawMessage, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	body = bytes.TrimSpace(body)
	if !json.Valid(body) {
		return nil, &Error{
			HTTPStatus: resp.StatusCode,
			Body:       string(body),
		}
	}

	return json.RawMessage(body), nil
}

// encodeQuery converts request data into URL query parameters.
func encodeQuery(data any) (url.Values, error) {
	switch v := data.(type) {
	case nil:
		return nil, nil
	case url.Values:
		return v, nil
	case map[string]string:
		q := make(url.Values, len(v))
		for key, val := range v {
			q.Set(key, val)
		}
		return q, nil
	case *ListTasksRequest:
		if v == nil {
			return nil, nil
		}
		q := make(url.Values)
		if v.PageNum > 0 {
			q.Set("pageNum", strconv.Itoa(v.PageNum))
		}
		if v.PageSize > 0 {
			q.Set("pageSize", strconv.Itoa(v.PageSize))
		}
		return q, nil
	default:
		return nil, fmt.Errorf("unsupported query type %T", data)
	}
}
