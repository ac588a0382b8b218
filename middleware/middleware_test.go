package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"foodapp-api/auth"
	"foodapp-api/middleware"
	"foodapp-api/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(tokens *auth.TokenManager, logger *slog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger(logger), middleware.Recovery(logger))
	r.GET("/whoami", middleware.AuthRequired(tokens), func(c *gin.Context) {
		id := middleware.MustIdentity(c)
		c.JSON(http.StatusOK, gin.H{"id": id.UserID, "role": id.Role, "country": id.Country})
	})
	r.GET("/admin", middleware.AuthRequired(tokens), middleware.RoleRequired(models.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	r.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})
	return r
}

func do(r http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthRequired(t *testing.T) {
	tokens := auth.NewTokenManager("secret", time.Hour)
	r := newRouter(tokens, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

	member := &models.User{ID: 6, Email: "travis@slooze.xyz", Role: models.RoleMember, Country: models.CountryAmerica}
	token, err := tokens.Generate(member)
	require.NoError(t, err)

	t.Run("valid token", func(t *testing.T) {
		w := do(r, "/whoami", token)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":6,"role":"MEMBER","country":"AMERICA"}`, w.Body.String())
	})

	t.Run("missing header", func(t *testing.T) {
		w := do(r, "/whoami", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"Missing token"}`, w.Body.String())
	})

	t.Run("wrong scheme", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Basic abc")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		w := do(r, "/whoami", "abc.def.ghi")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"Invalid token"}`, w.Body.String())
	})

	t.Run("role required", func(t *testing.T) {
		w := do(r, "/admin", token)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.JSONEq(t, `{"error":"Forbidden"}`, w.Body.String())

		admin := &models.User{ID: 1, Email: "nick@slooze.xyz", Role: models.RoleAdmin, Country: models.CountryIndia}
		adminToken, err := tokens.Generate(admin)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, do(r, "/admin", adminToken).Code)
	})
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	r := newRouter(auth.NewTokenManager("secret", time.Hour), logger)

	t.Run("generates request id", func(t *testing.T) {
		buf.Reset()
		w := do(r, "/whoami", "")
		id := w.Header().Get(middleware.RequestIDHeader)
		assert.NotEmpty(t, id)
		assert.Contains(t, buf.String(), id)
		assert.Contains(t, buf.String(), `"status":401`)
	})

	t.Run("keeps caller request id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set(middleware.RequestIDHeader, "req-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, "req-123", w.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("recovers panics", func(t *testing.T) {
		buf.Reset()
		w := do(r, "/panic", "")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"Internal error"}`, w.Body.String())
		assert.Contains(t, buf.String(), "Panic recovered")
	})
}
