package logging

import (
	"log/slog"
	"net/http"
	"regexp"
	"slices"
	"strings"

	"github.com/m-mizutani/masq"
)

// Redacted replaces every value the logger must not emit.
const Redacted = "[REDACTED]"

// credentialHeaders carry caller credentials. Their lowercase names are also
// redacted as attribute keys.
var credentialHeaders = []string{
	"Authorization",
	"Cookie",
	"Proxy-Authorization",
	"Set-Cookie",
	"X-Api-Key",
}

// secretFields are attribute keys whose values are always redacted. They
// cover the credential-bearing keys of config.Config.
var secretFields = []string{
	"password",
	"secret",
	"token",
	"dsn",
	"client_secret",
	"jwt_secret",
}

var (
	bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)

	// jwtPattern requires ten characters per segment so version strings
	// such as 1.2.3 do not match.
	jwtPattern = regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)

	apiKeyInlinePattern = regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`)

	// dsnCredentialsPattern matches URLs with userinfo, such as
	// postgres://recipebox:pass@db:5432/recipebox.
	dsnCredentialsPattern = regexp.MustCompile(`[a-zA-Z][a-zA-Z0-9+.\-]*://[^/\s:@]+:[^/\s@]+@`)
)

// IsCredentialHeader reports whether the named HTTP header carries
// credentials. The match ignores case.
func IsCredentialHeader(name string) bool {
	return slices.Contains(credentialHeaders, http.CanonicalHeaderKey(name))
}

// newRedactAttr builds the masq ReplaceAttr shared by every handler New
// returns.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(credentialHeaders)+len(secretFields)+6)
	for _, h := range credentialHeaders {
		opts = append(opts, masq.WithFieldName(strings.ToLower(h)))
	}
	for _, f := range secretFields {
		opts = append(opts, masq.WithFieldName(f))
	}
	opts = append(opts,
		masq.WithFieldPrefix("secret_"),
		masq.WithFieldPrefix("api_key"),
		masq.WithRegex(bearerPattern),
		masq.WithRegex(jwtPattern),
		masq.WithRegex(apiKeyInlinePattern),
		masq.WithRegex(dsnCredentialsPattern),
	)
	return masq.New(opts...)
}
