package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	catalog "auction-marketplace/internal/catalogService"
	"auction-marketplace/internal/repository"
	"auction-marketplace/internal/server"
	"auction-marketplace/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// SetupTestRouter initializes the router with an in-memory catalog for integration testing.
func SetupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	repo := repository.NewMemoryRepo()
	service := catalog.NewCatalogService(repo, catalog.WithBcryptCost(bcrypt.MinCost))
	return server.SetupRouter(service, session.NewStore())
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response.
// A non-empty token is sent as a bearer token.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url, token string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		var err error
		reqBody, err = json.Marshal(v)
		require.NoError(t, err, "failed to marshal body")
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	router.ServeHTTP(w, req)

	var resp map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "failed to unmarshal response")
	}
	return resp, w
}

// RegisterAndLogin creates a user and returns a session token for it
func RegisterAndLogin(t *testing.T, router *gin.Engine, username, password string) string {
	t.Helper()

	creds := map[string]string{"username": username, "password": password}
	_, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/users", "", creds)
	require.Equal(t, http.StatusCreated, w.Code)

	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/sessions", "", creds)
	require.Equal(t, http.StatusCreated, w.Code)

	token, _ := dataObject(t, resp)["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func dataObject(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()
	data, ok := resp["data"].(map[string]any)
	require.True(t, ok, "expected object data, got %v", resp["data"])
	return data
}

func dataList(t *testing.T, resp map[string]any) []any {
	t.Helper()
	data, ok := resp["data"].([]any)
	require.True(t, ok, "expected list data, got %v", resp["data"])
	return data
}
