package api

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func uploadTestFile(t *testing.T, app *fiber.App, token string, fieldName string, fileName string, content []byte) *http.Response {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(fieldName, fileName)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	request := httptest.NewRequest(http.MethodPost, "/api/uploads", body)
	request.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		request.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("upload request failed: %v", err)
	}
	return response
}

func TestUploadImage(t *testing.T) {
	app, _ := newTestApp(t)
	token := loginTestUser(t, app, "uploader")

	response := uploadTestFile(t, app, token, "file", "run.jpg", []byte("jpeg-bytes"))
	defer response.Body.Close()
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected upload status 201, got %d", response.StatusCode)
	}

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read upload response: %v", err)
	}
	decoded := map[string]any{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("decode upload response %q: %v", raw, err)
	}

	ref, _ := decoded["ref"].(string)
	url, _ := decoded["url"].(string)
	if !strings.HasPrefix(ref, "checkin_images/") {
		t.Fatalf("expected ref under checkin_images/, got %q", ref)
	}
	if !strings.HasPrefix(url, "/uploads/checkin_images/") {
		t.Fatalf("expected URL under /uploads/, got %q", url)
	}
}

func TestUploadRequiresAuthAndFile(t *testing.T) {
	app, _ := newTestApp(t)
	token := loginTestUser(t, app, "uploader")

	response := uploadTestFile(t, app, "", "file", "run.jpg", []byte("jpeg-bytes"))
	response.Body.Close()
	if response.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 without a token, got %d", response.StatusCode)
	}

	response = uploadTestFile(t, app, token, "attachment", "run.jpg", []byte("jpeg-bytes"))
	response.Body.Close()
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for the wrong form field, got %d", response.StatusCode)
	}
}
