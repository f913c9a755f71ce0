package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"globetrotter/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

type fakeValidator map[string]int64

func (f fakeValidator) Validate(token string) (int64, error) {
	if id, ok := f[token]; ok {
		return id, nil
	}
	return 0, domain.UnauthorizedError{Msg: "could not validate credentials"}
}

type brokenValidator struct{}

func (brokenValidator) Validate(string) (int64, error) {
	return 0, domain.InternalError{Msg: "token algorithm not supported", Err: errors.New("alg RS999")}
}

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw...)
	r.GET("/whoami", func(c *gin.Context) {
		id, ok := GetUserID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id, "authenticated": ok, "request_id": GetRequestID(c)})
	})
	return r
}

func do(r http.Handler, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequestIDGeneratedAndEchoed(t *testing.T) {
	r := newEngine(RequestID())

	w := do(r, nil)
	rid := w.Header().Get("X-Request-ID")
	if _, err := uuid.Parse(rid); err != nil {
		t.Fatalf("expected generated uuid, got %q", rid)
	}

	w = do(r, map[string]string{"X-Request-ID": "abc-123"})
	if got := w.Header().Get("X-Request-ID"); got != "abc-123" {
		t.Fatalf("incoming request id not kept, got %q", got)
	}
	if !strings.Contains(w.Body.String(), `"request_id":"abc-123"`) {
		t.Fatalf("request id not stored in context: %s", w.Body.String())
	}
}

func TestAuthOptional(t *testing.T) {
	r := newEngine(RequestID(), AuthOptional(fakeValidator{"good": 7}))

	if w := do(r, nil); w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"authenticated":false`) {
		t.Fatalf("anonymous request should pass, got %d %s", w.Code, w.Body.String())
	}
	if w := do(r, map[string]string{"Authorization": "Bearer good"}); !strings.Contains(w.Body.String(), `"user_id":7`) {
		t.Fatalf("valid token should set caller, got %s", w.Body.String())
	}
	w := do(r, map[string]string{"Authorization": "Bearer bad"})
	if w.Code != http.StatusUnauthorized || w.Header().Get("WWW-Authenticate") != "Bearer" {
		t.Fatalf("invalid token should be 401, got %d", w.Code)
	}
	if w := do(r, map[string]string{"Authorization": "Basic Zm9vOmJhcg=="}); w.Code != http.StatusUnauthorized {
		t.Fatalf("non-bearer scheme should be 401, got %d", w.Code)
	}
}

func TestAuthRequired(t *testing.T) {
	r := newEngine(AuthRequired(fakeValidator{"good": 7}))

	if w := do(r, nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous request should be 401, got %d", w.Code)
	}
	if w := do(r, map[string]string{"Authorization": "bearer good"}); w.Code != http.StatusOK {
		t.Fatalf("valid token should pass, got %d", w.Code)
	}
}

func TestAuthServerFaultIsNotUnauthorized(t *testing.T) {
	r := newEngine(RequestID(), AuthOptional(brokenValidator{}))

	w := do(r, map[string]string{"Authorization": "Bearer anything"})
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("validator fault should be 500, got %d %s", w.Code, w.Body.String())
	}
	if w.Header().Get("WWW-Authenticate") != "" {
		t.Fatalf("server fault must not challenge the client")
	}
	if strings.Contains(w.Body.String(), "RS999") || !strings.Contains(w.Body.String(), `"code":"internal_error"`) {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}

func TestMetricsCountsByRoute(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	r := newEngine(m.Handler())

	do(r, nil)
	do(r, nil)

	if got := testutil.ToFloat64(m.requests.WithLabelValues(http.MethodGet, "/whoami", "200")); got != 2 {
		t.Fatalf("expected 2 requests counted, got %v", got)
	}
	if n := testutil.CollectAndCount(m.duration); n != 1 {
		t.Fatalf("expected one histogram series, got %d", n)
	}
}

func TestCORSAllowsConfiguredOrigin(t *testing.T) {
	r := newEngine(CORS([]string{"https://app.example.com"}))

	w := do(r, map[string]string{"Origin": "https://app.example.com"})
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example.com" {
		t.Fatalf("expected origin echoed, got %q", got)
	}
	w = do(r, map[string]string{"Origin": "https://evil.example.com"})
	if w.Code != http.StatusForbidden {
		t.Fatalf("unknown origin should be refused, got %d", w.Code)
	}
}
