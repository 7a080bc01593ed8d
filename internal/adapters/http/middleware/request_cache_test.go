package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsamuelsen11/recipebox/internal/adapters/http/middleware"
	appctx "github.com/jsamuelsen11/recipebox/internal/app/context"
	"github.com/jsamuelsen11/recipebox/internal/domain"
)

func TestRequestCache_FreshPerRequest(t *testing.T) {
	t.Parallel()

	var seen []*appctx.RequestContext
	handler := middleware.RequestCache()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = append(seen, appctx.FromContext(r.Context()))
	}))

	for range 2 {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/graphql", http.NoBody))
	}

	if len(seen) != 2 || seen[0] == nil || seen[1] == nil {
		t.Fatalf("request caches = %v, want two", seen)
	}
	if seen[0] == seen[1] {
		t.Error("both requests shared one cache")
	}
}

func TestRequestCache_FetchesSeeCaller(t *testing.T) {
	t.Parallel()

	var subject string
	handler := middleware.RequestCache()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		rc := appctx.FromContext(r.Context())
		_, _ = appctx.GetOrFetch(rc, appctx.Key{Kind: "recipe", ID: 1}, func(ctx context.Context) (struct{}, error) {
			if id, ok := domain.IdentityFrom(ctx); ok {
				subject = id.Subject
			}
			return struct{}{}, nil
		})
	}))

	req := httptest.NewRequest(http.MethodPost, "/graphql", http.NoBody)
	req = req.WithContext(domain.WithIdentity(req.Context(), &domain.Identity{Subject: "chef-1"}))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if subject != "chef-1" {
		t.Errorf("fetch saw subject %q, want chef-1", subject)
	}
}
