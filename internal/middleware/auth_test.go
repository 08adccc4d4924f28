package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"forum_api/internal/middleware"
	"forum_api/internal/pkg"
	redisrepo "forum_api/internal/repository/redis"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAuthRouter(t *testing.T) (*gin.Engine, *pkg.TokenService, *redisrepo.SessionRepository, *miniredis.Miniredis) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	require.NoError(t, redisrepo.Init(mr.Addr(), "", 0))

	tokens := pkg.NewTokenService(
		[]byte("test-access-secret"),
		[]byte("test-refresh-secret"),
		30*time.Minute,
		24*time.Hour,
	)
	sessions := redisrepo.NewSessionRepository(time.Minute)

	r := gin.New()
	r.GET("/whoami", middleware.AuthMiddleware(tokens, sessions, zap.NewNop()), func(c *gin.Context) {
		id, ok := middleware.UserID(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"user_id": id})
	})
	return r, tokens, sessions, mr
}

func get(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthAcceptsActiveSession(t *testing.T) {
	r, tokens, sessions, _ := newAuthRouter(t)
	ctx := context.Background()

	token, err := tokens.Issue(42, time.Minute)
	require.NoError(t, err)
	require.NoError(t, sessions.Save(ctx, 42, token))

	w := get(r, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":42`)
}

func TestAuthExtendsSession(t *testing.T) {
	r, tokens, sessions, mr := newAuthRouter(t)
	ctx := context.Background()

	token, err := tokens.Issue(42, time.Minute)
	require.NoError(t, err)
	require.NoError(t, sessions.Save(ctx, 42, token))

	// shrink the remaining ttl, then let a request refresh it
	mr.SetTTL("session:user:42", 5*time.Second)

	w := get(r, "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, sessions.TTL, mr.TTL("session:user:42"))
}

func TestAuthRejectsBadHeaders(t *testing.T) {
	r, tokens, sessions, _ := newAuthRouter(t)
	ctx := context.Background()

	token, err := tokens.Issue(42, time.Minute)
	require.NoError(t, err)
	require.NoError(t, sessions.Save(ctx, 42, token))

	for _, header := range []string{
		"",
		"Bearer",
		"Basic " + token,
		"Bearer garbage",
	} {
		w := get(r, header)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
}

func TestAuthRejectsExpiredToken(t *testing.T) {
	r, tokens, sessions, _ := newAuthRouter(t)
	ctx := context.Background()

	token, err := tokens.Issue(42, 0)
	require.NoError(t, err)
	require.NoError(t, sessions.Save(ctx, 42, token))

	w := get(r, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRejectsTamperedToken(t *testing.T) {
	r, tokens, sessions, _ := newAuthRouter(t)
	ctx := context.Background()

	token, err := tokens.Issue(42, time.Minute)
	require.NoError(t, err)
	require.NoError(t, sessions.Save(ctx, 42, token))

	raw := []byte(token)
	raw[len(raw)-2] ^= 0x01

	w := get(r, "Bearer "+string(raw))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRejectsRevokedSession(t *testing.T) {
	r, tokens, sessions, _ := newAuthRouter(t)
	ctx := context.Background()

	token, err := tokens.Issue(42, time.Minute)
	require.NoError(t, err)

	// valid token but no allowlisted session
	w := get(r, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// a newer login supersedes the old token; the distinct ttl guarantees the
	// tokens differ even when minted within the same second
	require.NoError(t, sessions.Save(ctx, 42, token))
	newer, err := tokens.Issue(42, 2*time.Minute)
	require.NoError(t, err)
	require.NoError(t, sessions.Save(ctx, 42, newer))

	w = get(r, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	w = get(r, "Bearer "+newer)
	assert.Equal(t, http.StatusOK, w.Code)
}
