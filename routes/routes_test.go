package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	SetupRoutes(router)
	return router
}

func TestUnsupportedMethodAnswers405(t *testing.T) {
	router := newTestRouter()

	for _, path := range []string{"/profile", "/skills", "/projects", "/hobbies", "/contacts"} {
		req := httptest.NewRequest(http.MethodPatch, path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusMethodNotAllowed {
			t.Errorf("PATCH %s: expected 405, got %d", path, w.Code)
			continue
		}

		var envelope map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
			t.Errorf("PATCH %s: response is not valid JSON: %v", path, err)
			continue
		}
		if envelope["status"] != "error" || envelope["message"] != "Method not allowed" {
			t.Errorf("PATCH %s: unexpected envelope %v", path, envelope)
		}
	}
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("unexpected health payload: %v", body)
	}
}

func TestDashboardRequiresToken(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/dashboard", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without a token, got %d", w.Code)
	}
}
