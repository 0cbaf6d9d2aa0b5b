package httpapi_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/givehub/givehub/internal/auth"
	"github.com/givehub/givehub/internal/httpapi"
)

type testServer struct {
	app    *fiber.App
	store  *memStore
	items  *memItems
	tokens *auth.TokenService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	store := newMemStore()
	items := newMemItems()
	tokens := auth.NewTokenService([]byte("test-signing-key"), time.Hour)
	hasher := auth.NewPasswordHasher(bcrypt.MinCost)
	service := auth.NewService(store, hasher, tokens, nil)

	server := httpapi.New(service, store, items, tokens, nil)
	return &testServer{
		app:    server.App(),
		store:  store,
		items:  items,
		tokens: tokens,
	}
}

// request performs one in-process request. body is raw JSON; token, when set,
// goes out as a bearer header.
func (ts *testServer) request(t *testing.T, method, path, body, token string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	resp, err := ts.app.Test(req, -1)
	assert.NoError(t, err)
	return resp
}

func readBody(t *testing.T, resp *http.Response) []byte {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	return body
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var decoded map[string]any
	assert.NoError(t, json.Unmarshal(readBody(t, resp), &decoded))
	return decoded
}

// errorMessage digs the message out of the error envelope.
func errorMessage(t *testing.T, body map[string]any) string {
	t.Helper()
	detail, ok := body["error"].(map[string]any)
	if !assert.True(t, ok, "body has no error envelope: %v", body) {
		return ""
	}
	message, _ := detail["message"].(string)
	return message
}

func signupBody(email, password, name string) string {
	payload := map[string]any{
		"account": map[string]any{"email": email, "password": password},
		"profile": map[string]any{"name": name},
	}
	encoded, _ := json.Marshal(payload)
	return string(encoded)
}

func loginBody(email, password string) string {
	encoded, _ := json.Marshal(map[string]any{"email": email, "password": password})
	return string(encoded)
}
