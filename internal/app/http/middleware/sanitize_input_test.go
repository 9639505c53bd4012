package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func postJSON(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func echoRouter() *gin.Engine {
	r := gin.New()
	r.POST("/echo", SanitizeInputMiddleware(), func(c *gin.Context) {
		raw, _ := io.ReadAll(c.Request.Body)
		c.Data(http.StatusOK, "application/json", raw)
	})
	return r
}

func TestSanitizeStripsMarkup(t *testing.T) {
	w := postJSON(t, echoRouter(), `{"name":"<script>alert(1)</script>Flex Gym","tel":"123"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding echoed body: %v", err)
	}
	if name, _ := body["name"].(string); strings.Contains(name, "<script>") {
		t.Errorf("script tag survived sanitization: %q", name)
	}
	if body["tel"] != "123" {
		t.Errorf("tel = %v, want untouched value", body["tel"])
	}
}

func TestSanitizeRejectsMalformedJSON(t *testing.T) {
	w := postJSON(t, echoRouter(), `{"name": `)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestSanitizeSkipsGetRequests(t *testing.T) {
	r := gin.New()
	r.GET("/ping", SanitizeInputMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}
