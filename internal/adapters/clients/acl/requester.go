package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/jsamuelsen11/recipebox/internal/platform/httpclient"
)

// RequestOption adjusts an outbound request before it is sent.
type RequestOption func(*http.Request)

// WithBasicAuth authenticates the request with HTTP basic credentials.
// Empty credentials leave the request unauthenticated.
func WithBasicAuth(username, password string) RequestOption {
	return func(req *http.Request) {
		if username != "" || password != "" {
			req.SetBasicAuth(username, password)
		}
	}
}

// Requester builds, sends and decodes provider calls over an
// [httpclient.Client]. Responses whose status differs from the expected
// one become a [*ProviderError].
type Requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewRequester returns a Requester. A nil logger discards output.
func NewRequester(client *httpclient.Client, logger *slog.Logger) *Requester {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Requester{client: client, logger: logger}
}

// BaseURL returns the provider root the requester targets.
func (r *Requester) BaseURL() string {
	return r.client.BaseURL()
}

// Do sends method to path below the base URL. A url.Values reqBody is
// form-encoded and any other non-nil value is sent as JSON. When the
// response status is wantStatus and respBody is non-nil, the body is
// decoded into it.
func (r *Requester) Do(
	ctx context.Context,
	method, path string,
	wantStatus int,
	reqBody, respBody any,
	opts ...RequestOption,
) error {
	if method != http.MethodGet && method != http.MethodPost {
		return fmt.Errorf("unsupported HTTP method: %s", method)
	}

	req, err := r.newRequest(ctx, method, path, reqBody)
	if err != nil {
		return err
	}
	for _, opt := range opts {
		opt(req)
	}

	// Retries that end on a retryable status hand back the final response
	// together with the error; the response carries the better message.
	resp, err := r.client.Do(ctx, req)
	if resp == nil {
		r.logFailure(req, slog.String("error", err.Error()))
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer r.closeBody(ctx, resp)

	if resp.StatusCode != wantStatus {
		r.logFailure(req, slog.Int("status", resp.StatusCode), slog.Int("want_status", wantStatus))
		return TranslateHTTPError(resp)
	}
	if err != nil {
		r.logFailure(req, slog.String("error", err.Error()))
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	if respBody == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(respBody); err != nil {
		return fmt.Errorf("decoding response from %s %s: %w", method, path, err)
	}
	return nil
}

func (r *Requester) newRequest(ctx context.Context, method, path string, reqBody any) (*http.Request, error) {
	var (
		body        io.Reader = http.NoBody
		contentType string
	)
	switch b := reqBody.(type) {
	case nil:
	case url.Values:
		body, contentType = strings.NewReader(b.Encode()), "application/x-www-form-urlencoded"
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			return nil, fmt.Errorf("encoding %s body for %s: %w", method, path, err)
		}
		body, contentType = bytes.NewReader(raw), "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, method, r.client.BaseURL()+path, body)
	if err != nil {
		return nil, fmt.Errorf("creating %s request for %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return req, nil
}

func (r *Requester) logFailure(req *http.Request, attrs ...slog.Attr) {
	args := []any{
		slog.String("method", req.Method),
		slog.String("url", req.URL.Redacted()),
	}
	for _, a := range attrs {
		args = append(args, a)
	}
	r.logger.ErrorContext(req.Context(), "identity provider call failed", args...)
}

func (r *Requester) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "failed to close response body", slog.String("error", err.Error()))
	}
}
