// Package acl implements the Anti-Corruption Layer between the identity
// provider and the domain. The provider's introspection representation is
// translated in the acl/identity subpackage; provider error handling and the
// request lifecycle live here.
package acl

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/jsamuelsen11/recipebox/internal/domain"
)

const maxErrorBodySize = 1 << 20

// ProviderError is a non-success answer from the identity provider. An
// inactive or unknown token is reported with a 200 and active=false, so any
// error status means the caller cannot be verified right now: ProviderError
// always unwraps to [domain.ErrUnavailable].
type ProviderError struct {
	Status int
	// Reason describes the failure class, for example "throttled".
	Reason string
	// OAuthCode is the RFC 6749 "error" member, when the provider sent one.
	OAuthCode string
	Detail    string
}

func (e *ProviderError) Error() string {
	msg := fmt.Sprintf("identity provider %s (HTTP %d)", e.Reason, e.Status)
	if e.OAuthCode != "" {
		msg += ": " + e.OAuthCode
	}
	if e.Detail != "" && e.Detail != e.OAuthCode {
		msg += ": " + e.Detail
	}
	return msg
}

func (e *ProviderError) Unwrap() error { return domain.ErrUnavailable }

// providerBody covers RFC 9457 problem documents and RFC 6749 section 5.2
// error responses.
type providerBody struct {
	Detail           string `json:"detail"`
	Title            string `json:"title"`
	OAuthCode        string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

func (b providerBody) detail() string {
	for _, s := range []string{b.Detail, b.ErrorDescription, b.Title} {
		if s != "" {
			return s
		}
	}
	return ""
}

// TranslateHTTPError turns a provider response with an unexpected status
// into a *ProviderError. The body is read only when it is JSON.
func TranslateHTTPError(resp *http.Response) error {
	body := readProviderBody(resp)
	return &ProviderError{
		Status:    resp.StatusCode,
		Reason:    failureReason(resp.StatusCode),
		OAuthCode: body.OAuthCode,
		Detail:    body.detail(),
	}
}

func failureReason(status int) string {
	switch {
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return "rejected client credentials"
	case status == http.StatusTooManyRequests:
		return "throttled"
	case status == http.StatusNotFound:
		return "has no introspection endpoint at the configured path"
	case status >= http.StatusInternalServerError:
		return "failed"
	case status >= http.StatusBadRequest:
		return "rejected the introspection request"
	default:
		return "answered with an unexpected status"
	}
}

func readProviderBody(resp *http.Response) providerBody {
	var body providerBody
	if resp.Body == nil {
		return body
	}
	mediaType, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil || (mediaType != "application/json" && mediaType != "application/problem+json") {
		return body
	}
	_ = json.NewDecoder(io.LimitReader(resp.Body, maxErrorBodySize)).Decode(&body)
	return body
}
