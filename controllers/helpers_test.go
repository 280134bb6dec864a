package controllers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"portfolio-api/config"
	"portfolio-api/testutil"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// scriptDB swaps the shared handle for a scripted one for the duration of
// the test.
func scriptDB(t *testing.T, steps []*testutil.QueryStep) *testutil.ScriptedDB {
	t.Helper()
	db, state, cleanup := testutil.NewScriptedGormDB(t, steps)
	prev := config.DB
	config.DB = db
	t.Cleanup(func() {
		config.DB = prev
		cleanup()
	})
	return state
}

// perform routes one request through the handler and decodes the envelope.
func perform(t *testing.T, handler gin.HandlerFunc, method, target, body string) (int, map[string]interface{}) {
	t.Helper()
	router := gin.New()
	router.Handle(method, "/resource", handler)

	req := httptest.NewRequest(method, "/resource"+target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var envelope map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("response is not valid JSON: %v (%s)", err, w.Body.String())
	}
	return w.Code, envelope
}

func wantEnvelope(t *testing.T, code int, envelope map[string]interface{}, wantCode int, wantStatus, wantMessage string) {
	t.Helper()
	if code != wantCode {
		t.Errorf("expected status code %d, got %d (%v)", wantCode, code, envelope)
	}
	if envelope["status"] != wantStatus {
		t.Errorf("expected envelope status %q, got %v", wantStatus, envelope["status"])
	}
	if wantMessage != "" && envelope["message"] != wantMessage {
		t.Errorf("expected message %q, got %v", wantMessage, envelope["message"])
	}
}
