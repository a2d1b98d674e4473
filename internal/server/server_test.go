package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/programandoparacristo/plataforma/internal/config"
	"github.com/programandoparacristo/plataforma/pkg/kvstore"
)

const testSecretCode = "código-de-teste"

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		AppEnv:           "test",
		Port:             "0",
		JWTSecret:        "test-secret",
		JWTTTL:           time.Hour,
		SignupSecretCode: testSecretCode,
	}
	return NewServer(cfg, kvstore.NewMemoryStore()).Engine()
}

func doRequest(t *testing.T, engine *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	return payload
}

func signupAndLogin(t *testing.T, engine *gin.Engine, email, role string) string {
	t.Helper()

	signup := map[string]any{
		"name":     "Usuário de teste",
		"email":    email,
		"password": "senha-segura",
	}
	if role != "" {
		signup["role"] = role
		signup["secretCode"] = testSecretCode
	}
	rec := doRequest(t, engine, http.MethodPost, "/auth/signup", "", signup)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doRequest(t, engine, http.MethodPost, "/auth/login", "", map[string]any{
		"email":    email,
		"password": "senha-segura",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	return decode(t, rec)["accessToken"].(string)
}

func TestHealth(t *testing.T) {
	engine := newTestEngine(t)
	rec := doRequest(t, engine, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthFlow(t *testing.T) {
	engine := newTestEngine(t)

	rec := doRequest(t, engine, http.MethodGet, "/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token := signupAndLogin(t, engine, "maria@exemplo.com", "")

	rec = doRequest(t, engine, http.MethodGet, "/auth/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	user := decode(t, rec)["user"].(map[string]any)
	assert.Equal(t, "maria@exemplo.com", user["email"])
	assert.Equal(t, "student", user["role"])
}

func TestArticlePublishFlow(t *testing.T) {
	engine := newTestEngine(t)
	token := signupAndLogin(t, engine, "prof@exemplo.com", "teacher")

	rec := doRequest(t, engine, http.MethodPost, "/articles", token, map[string]any{
		"title":   "Go na prática",
		"slug":    "go-na-pratica",
		"content": "<p>Conteúdo do artigo</p>",
		"status":  "published",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	// Public listing, no token.
	rec = doRequest(t, engine, http.MethodGet, "/articles", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	articles := decode(t, rec)["articles"].([]any)
	require.Len(t, articles, 1)

	rec = doRequest(t, engine, http.MethodGet, "/articles/go-na-pratica", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// Publishing awarded points to the author.
	rec = doRequest(t, engine, http.MethodGet, "/dashboard/stats", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	stats := decode(t, rec)["stats"].(map[string]any)
	assert.Equal(t, float64(100), stats["points"])
}

func TestChallengeCatalogRequiresAuth(t *testing.T) {
	engine := newTestEngine(t)

	rec := doRequest(t, engine, http.MethodGet, "/challenges", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token := signupAndLogin(t, engine, "maria@exemplo.com", "")
	rec = doRequest(t, engine, http.MethodGet, "/challenges", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminRoutesForbiddenForStudents(t *testing.T) {
	engine := newTestEngine(t)
	student := signupAndLogin(t, engine, "maria@exemplo.com", "")

	rec := doRequest(t, engine, http.MethodGet, "/admin/stats", student, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	admin := signupAndLogin(t, engine, "admin@exemplo.com", "admin")
	rec = doRequest(t, engine, http.MethodGet, "/admin/stats", admin, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	stats := decode(t, rec)["stats"].(map[string]any)
	assert.Equal(t, float64(2), stats["totalUsers"])
}

func TestNewsletterSubscribeConflict(t *testing.T) {
	engine := newTestEngine(t)

	rec := doRequest(t, engine, http.MethodPost, "/newsletter/subscribe", "", map[string]any{
		"email": "maria@exemplo.com",
	})
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doRequest(t, engine, http.MethodPost, "/newsletter/subscribe", "", map[string]any{
		"email": "maria@exemplo.com",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestLikeCheckSoftFailsWithoutToken(t *testing.T) {
	engine := newTestEngine(t)

	rec := doRequest(t, engine, http.MethodGet, "/likes/check?contentType=article&contentId=a1", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, decode(t, rec)["liked"])
}
