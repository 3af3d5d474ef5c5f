package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/xiaogao007/Stickplanet/internal/db"
	"github.com/xiaogao007/Stickplanet/internal/identity"
	"github.com/xiaogao007/Stickplanet/internal/storage"
)

func newTestApp(t *testing.T) (*fiber.App, *Handler) {
	t.Helper()

	dir := t.TempDir()
	database, err := db.OpenSQLite(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	provider := identity.NewLocalProvider("test-secret")
	files := storage.NewLocalStore(filepath.Join(dir, "uploads"), "/uploads")
	handler := NewHandler(database, "test-secret", time.UTC, provider, files, false)

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	handler.RegisterRoutes(app)
	return app, handler
}

func doJSON(t *testing.T, app *fiber.App, method string, path string, token string, payload any) (*http.Response, map[string]any) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(raw)
	}

	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	}
	if token != "" {
		request.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}

	decoded := map[string]any{}
	raw, err := io.ReadAll(response.Body)
	response.Body.Close()
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	if len(raw) > 0 && raw[0] == '{' {
		if err := json.Unmarshal(raw, &decoded); err != nil {
			t.Fatalf("decode response body %q: %v", raw, err)
		}
	}
	return response, decoded
}

func doJSONList(t *testing.T, app *fiber.App, path string, token string) (*http.Response, []map[string]any) {
	t.Helper()

	request := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		request.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("GET %s failed: %v", path, err)
	}

	raw, err := io.ReadAll(response.Body)
	response.Body.Close()
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}

	decoded := []map[string]any{}
	if len(raw) > 0 && raw[0] == '[' {
		if err := json.Unmarshal(raw, &decoded); err != nil {
			t.Fatalf("decode response list %q: %v", raw, err)
		}
	}
	return response, decoded
}

func loginTestUser(t *testing.T, app *fiber.App, code string) string {
	t.Helper()

	response, body := doJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]any{
		"code":     code,
		"nickname": "测试用户",
	})
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected login status 200, got %d", response.StatusCode)
	}
	token, ok := body["token"].(string)
	if !ok || token == "" {
		t.Fatalf("expected a session token, got %v", body["token"])
	}
	return token
}
