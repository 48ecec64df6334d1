package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

// codec must stay stdlib-compatible because Borrowing carries a custom
// marshaller pair for its asymmetric wire shape.
var codec = jsoniter.ConfigCompatibleWithStandardLibrary

// Resource is a typed client for one REST resource. Every call is a single
// one-shot request against the resource's base path: no retries, no caching.
type Resource[T any] struct {
	baseURL string
	httpc   *http.Client
}

// NewResource creates a resource client rooted at baseURL.
func NewResource[T any](baseURL string, httpc *http.Client) *Resource[T] {
	return &Resource[T]{
		baseURL: baseURL,
		httpc:   httpc,
	}
}

// List fetches all records of the resource.
func (r *Resource[T]) List(ctx context.Context) ([]T, error) {
	var items []T
	err := r.do(ctx, http.MethodGet, r.baseURL, nil, &items)
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Create posts a draft record and returns the created record, including its
// server-assigned id.
func (r *Resource[T]) Create(ctx context.Context, draft T) (T, error) {
	var created T
	err := r.do(ctx, http.MethodPost, r.baseURL, draft, &created)
	if err != nil {
		var zero T
		return zero, err
	}
	return created, nil
}

// Update replaces the record at id with the given record (full-resource PUT
// semantics) and returns the server's version of it.
func (r *Resource[T]) Update(ctx context.Context, id int64, record T) (T, error) {
	var updated T
	err := r.do(ctx, http.MethodPut, fmt.Sprintf("%s/%d", r.baseURL, id), record, &updated)
	if err != nil {
		var zero T
		return zero, err
	}
	return updated, nil
}

// Delete removes the record at id. Deleting an id that no longer exists fails
// with ErrRecordNotFound.
func (r *Resource[T]) Delete(ctx context.Context, id int64) error {
	return r.do(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", r.baseURL, id), nil, nil)
}

func (r *Resource[T]) do(ctx context.Context, method, url string, body any, dst any) error {
	var reqBody io.Reader
	if body != nil {
		payload, err := codec.Marshal(body)
		if err != nil {
			return &TransportError{Method: method, URL: url, Message: err.Error(), err: err}
		}
		reqBody = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return &TransportError{Method: method, URL: url, Message: err.Error(), err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	resp, err := r.httpc.Do(req)
	if err != nil {
		return &TransportError{Method: method, URL: url, Message: err.Error(), err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return r.statusError(method, url, resp)
	}
	if dst == nil {
		return nil
	}
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Method: method, URL: url, StatusCode: resp.StatusCode, Message: err.Error(), err: err}
	}
	if err := codec.Unmarshal(respBody, dst); err != nil {
		return &TransportError{Method: method, URL: url, StatusCode: resp.StatusCode, Message: err.Error(), err: err}
	}
	return nil
}

func (r *Resource[T]) statusError(method, url string, resp *http.Response) error {
	te := &TransportError{
		Method:     method,
		URL:        url,
		StatusCode: resp.StatusCode,
	}
	// The API wraps error messages in an {"error": ...} envelope.
	var envelope struct {
		Error string `json:"error"`
	}
	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err == nil && codec.Unmarshal(respBody, &envelope) == nil && envelope.Error != "" {
		te.Message = envelope.Error
	} else {
		te.Message = http.StatusText(resp.StatusCode)
	}
	if resp.StatusCode == http.StatusNotFound {
		te.err = ErrRecordNotFound
	}
	return te
}
