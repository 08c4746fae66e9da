package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/existflow/qrstudio/internal/config"
)

func fakeUpstream(t *testing.T, status int, response string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestShortenNotConfigured(t *testing.T) {
	s := newTestServer(t, nil) // no KuttAPIKey

	rec := doJSON(t, s, http.MethodPost, "/shorten", `{"targetUrl": "https://x.com"}`)
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503 (body %s)", rec.Code, rec.Body.String())
	}
}

func TestShortenValidatesBody(t *testing.T) {
	s := newTestServer(t, nil)

	tests := []struct {
		name string
		body string
	}{
		{"empty object", `{}`},
		{"not a url", `{"targetUrl": "not a url"}`},
		{"wrong type", `{"targetUrl": 5}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, s, http.MethodPost, "/shorten", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestShortenSuccess(t *testing.T) {
	upstream := fakeUpstream(t, http.StatusOK, `{"link": "https://mifi.me/abc"}`)
	s := newTestServer(t, func(cfg *config.Config) {
		cfg.KuttAPIKey = "key"
		cfg.KuttBaseURL = upstream.URL
	})

	rec := doJSON(t, s, http.MethodPost, "/shorten", `{"targetUrl": "https://x.com"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if got := decode(t, rec)["shortUrl"]; got != "https://mifi.me/abc" {
		t.Errorf("shortUrl = %v", got)
	}
}

func TestShortenUpstreamWithoutLink(t *testing.T) {
	upstream := fakeUpstream(t, http.StatusOK, `{}`)
	s := newTestServer(t, func(cfg *config.Config) {
		cfg.KuttAPIKey = "key"
		cfg.KuttBaseURL = upstream.URL
	})

	rec := doJSON(t, s, http.MethodPost, "/shorten", `{"targetUrl": "https://x.com"}`)
	if rec.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502 (body %s)", rec.Code, rec.Body.String())
	}
}

func TestShortenUpstreamFailure(t *testing.T) {
	upstream := fakeUpstream(t, http.StatusInternalServerError, `boom`)
	s := newTestServer(t, func(cfg *config.Config) {
		cfg.KuttAPIKey = "key"
		cfg.KuttBaseURL = upstream.URL
	})

	rec := doJSON(t, s, http.MethodPost, "/shorten", `{"targetUrl": "https://x.com"}`)
	if rec.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", rec.Code)
	}
}
