package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/noteful-labs/noteful-service/pkg/app"

	"github.com/gin-gonic/gin"
)

const testSecret = "test-secret"

func setupAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", UserAuthTokenWithConfig(testSecret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"uid": app.GetUID(c)})
	})
	return r
}

func doAuthRequest(t *testing.T, header string) *httptest.ResponseRecorder {
	t.Helper()
	r := setupAuthRouter()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	msg, _ := body["message"].(string)
	return msg
}

func TestUserAuthToken_MissingHeader(t *testing.T) {
	w := doAuthRequest(t, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
	if msg := decodeMessage(t, w); msg != "No 'Authorization' header found" {
		t.Errorf("unexpected message: %q", msg)
	}
}

func TestUserAuthToken_NotBearer(t *testing.T) {
	w := doAuthRequest(t, "Basic dXNlcjpwYXNz")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
	if msg := decodeMessage(t, w); msg != "No 'Bearer' token found" {
		t.Errorf("unexpected message: %q", msg)
	}
}

func TestUserAuthToken_InvalidJWT(t *testing.T) {
	w := doAuthRequest(t, "Bearer not.a.jwt")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
	if msg := decodeMessage(t, w); msg != "Invalid JWT" {
		t.Errorf("unexpected message: %q", msg)
	}
}

func TestUserAuthToken_WrongKey(t *testing.T) {
	tm := app.NewTokenManager(app.TokenConfig{SecretKey: "other-secret"})
	token, err := tm.Generate(app.UserEntity{UID: 1, Username: "bobuser"})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	w := doAuthRequest(t, "Bearer "+token)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestUserAuthToken_Valid(t *testing.T) {
	tm := app.NewTokenManager(app.TokenConfig{SecretKey: testSecret})
	token, err := tm.Generate(app.UserEntity{UID: 42, Username: "bobuser"})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	w := doAuthRequest(t, "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if uid, _ := body["uid"].(float64); int64(uid) != 42 {
		t.Errorf("expected uid 42, got %v", body["uid"])
	}
}
