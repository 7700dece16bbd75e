package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"esim_portal_backend/internal/esim"
	apphttp "esim_portal_backend/internal/http"
	"esim_portal_backend/internal/phonecheck"
	"esim_portal_backend/platform/httpkit"
	"esim_portal_backend/platform/logger"
	"esim_portal_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

type testRouterConfig struct {
	burst int
}

func (testRouterConfig) GetHTTPAddr() string      { return ":0" }
func (testRouterConfig) GetCORSAllowAll() bool    { return false }
func (testRouterConfig) GetCORSOrigins() []string { return []string{"https://esim.example"} }
func (testRouterConfig) GetCORSAllowCreds() bool  { return false }
func (testRouterConfig) GetRateLimitRPS() float64 { return 0.001 }
func (c testRouterConfig) GetRateLimitBurst() int { return c.burst }

func newTestRouter(burst int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	val := validator.New()
	log := logger.Discard()

	return New(&apphttp.App{
		Config: testRouterConfig{burst: burst},
		Logger: log,
		Modules: []apphttp.Module{
			phonecheck.NewModule(val, log),
			esim.NewModule(val, log),
		},
	})
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter(5).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatal("expected request ID header")
	}
}

func TestModuleRoutesMounted(t *testing.T) {
	engine := newTestRouter(5)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/phone/validate", strings.NewReader(`{"phoneNumber":"09771234567"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("validate: expected 200, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/esim-registration/providers", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("providers: expected 200, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/v1/esim-registration/check-device",
		strings.NewReader(`{"deviceType":"ios","deviceModel":"iPhone 13","osVersion":"16.1"}`))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("check-device: expected 200, got %d", rec.Code)
	}
}

func TestPublicRoutesAreRateLimited(t *testing.T) {
	engine := newTestRouter(1)

	codes := make([]int, 0, 2)
	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/phone/carrier?phone=09771234567", nil))
		codes = append(codes, rec.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusTooManyRequests {
		t.Fatalf("expected [200 429], got %v", codes)
	}

	// The provider catalogue is not behind the limiter.
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/esim-registration/providers", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("providers: expected 200, got %d", rec.Code)
	}
}

func TestCORSAllowsConfiguredOrigin(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "https://esim.example")
	rec := httptest.NewRecorder()
	newTestRouter(5).ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://esim.example" {
		t.Fatalf("expected allowed origin header, got %q", got)
	}
}

func TestUnknownRouteReturnsJSON404(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter(5).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	var body httpkit.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Error != "route not found" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestRateLimitedResponseUsesErrorShape(t *testing.T) {
	engine := newTestRouter(1)

	var rec *httptest.ResponseRecorder
	for i := 0; i < 2; i++ {
		rec = httptest.NewRecorder()
		engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/phone/format?phone=097712345", nil))
	}

	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
	var body httpkit.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Error != "rate limit exceeded" {
		t.Fatalf("unexpected body: %+v", body)
	}
}
