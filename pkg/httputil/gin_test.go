package httputil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	// テスト時はGinをテストモードに設定
	gin.SetMode(gin.TestMode)
}

func TestWriteData(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	WriteData(c, http.StatusCreated, map[string]int{"countryId": 9})

	if w.Code != http.StatusCreated {
		t.Errorf("Status code = %d, want %d", w.Code, http.StatusCreated)
	}

	var parsed struct {
		Success bool           `json:"success"`
		Data    map[string]int `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &parsed); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if !parsed.Success {
		t.Error("success = false, want true")
	}
	if parsed.Data["countryId"] != 9 {
		t.Errorf("data.countryId = %d, want 9", parsed.Data["countryId"])
	}
}

func TestWriteMessage(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	WriteMessage(c, http.StatusOK, nil, "deleted")

	var parsed Success
	if err := json.Unmarshal(w.Body.Bytes(), &parsed); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if parsed.Message != "deleted" {
		t.Errorf("message = %q, want %q", parsed.Message, "deleted")
	}
}

func TestWriteError(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	WriteError(c, BadRequest("invalid parameter"))

	if w.Code != http.StatusBadRequest {
		t.Errorf("Status code = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if got := w.Header().Get("Content-Type"); got != ContentType {
		t.Errorf("Content-Type = %q, want %q", got, ContentType)
	}

	var parsed Failure
	if err := json.Unmarshal(w.Body.Bytes(), &parsed); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if parsed.Message != "invalid parameter" {
		t.Errorf("message = %q, want %q", parsed.Message, "invalid parameter")
	}
}

func TestAbortWithError(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	AbortWithError(c, Unauthorized("missing bearer token"))

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Status code = %d, want %d", w.Code, http.StatusUnauthorized)
	}
	if !c.IsAborted() {
		t.Error("context should be aborted")
	}
}
