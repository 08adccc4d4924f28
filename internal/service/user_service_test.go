package service_test

import (
	"context"
	"testing"
	"time"

	"forum_api/internal/pkg"
	"forum_api/internal/repository/mysql"
	redisrepo "forum_api/internal/repository/redis"
	"forum_api/internal/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService(t *testing.T) (*service.UserService, *miniredis.Miniredis) {
	t.Helper()
	db := setupDB(t)
	mr := setupRedis(t)
	svc := service.NewUserService(
		mysql.NewUserRepository(db),
		redisrepo.NewSessionRepository(time.Minute),
		&redisrepo.ResetCodeRepository{},
		testTokenService(),
	)
	return svc, mr
}

func TestRegister(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "alice", "Alice@Example.COM", "password1")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "alice", user.Name)
	assert.Equal(t, "alice@example.com", user.Email, "email must be case folded")
	assert.False(t, user.IsModerator)
	assert.NotEqual(t, "password1", user.PasswordHash)
	assert.True(t, pkg.VerifyPassword("password1", user.PasswordHash))
}

func TestRegisterInvalidInput(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	// name equals email
	_, err := svc.Register(ctx, "ab1", "ab1", "x")
	assert.ErrorIs(t, err, pkg.ErrInvalidInput)

	// non-alphanumeric name
	_, err = svc.Register(ctx, "ab!", "a@b.com", "x")
	assert.ErrorIs(t, err, pkg.ErrInvalidInput)

	_, err = svc.Register(ctx, "a b", "ab@example.com", "x")
	assert.ErrorIs(t, err, pkg.ErrInvalidInput)

	_, err = svc.Register(ctx, "", "empty@example.com", "x")
	assert.ErrorIs(t, err, pkg.ErrInvalidInput)
}

func TestRegisterDuplicate(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "bob", "bob@example.com", "password1")
	require.NoError(t, err)

	// exact duplicate
	_, err = svc.Register(ctx, "bob", "bob@example.com", "password1")
	assert.ErrorIs(t, err, pkg.ErrDuplicateIdentity)

	// same name, any case
	_, err = svc.Register(ctx, "BOB", "other@example.com", "password1")
	assert.ErrorIs(t, err, pkg.ErrDuplicateIdentity)

	// same email, any case
	_, err = svc.Register(ctx, "bobby", "BOB@Example.com", "password1")
	assert.ErrorIs(t, err, pkg.ErrDuplicateIdentity)

	// a fresh identity still works
	_, err = svc.Register(ctx, "carol", "carol@example.com", "password1")
	assert.NoError(t, err)
}

func TestAuthenticate(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "dave", "dave@example.com", "password1")
	require.NoError(t, err)

	user, err := svc.Authenticate(ctx, "dave", "password1")
	require.NoError(t, err)
	assert.Equal(t, "dave", user.Name)

	_, err = svc.Authenticate(ctx, "dave", "wrong-password")
	assert.ErrorIs(t, err, pkg.ErrBadCredentials)

	_, err = svc.Authenticate(ctx, "nobody", "password1")
	assert.ErrorIs(t, err, pkg.ErrNotFound)
}

func TestLoginLogout(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "erin", "erin@example.com", "password1")
	require.NoError(t, err)

	pair, err := svc.Login(ctx, "erin", "password1")
	require.NoError(t, err)

	uid, err := testTokenService().Verify(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, uid)

	// the access token is the active session
	sessions := redisrepo.NewSessionRepository(time.Minute)
	current, err := sessions.Get(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, pair.AccessToken, current)

	require.NoError(t, svc.Logout(ctx, user.ID))
	_, err = sessions.Get(ctx, user.ID)
	assert.ErrorIs(t, err, redisrepo.ErrSessionNotFound)
}

func TestRefreshRotatesSession(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "frank", "frank@example.com", "password1")
	require.NoError(t, err)
	pair, err := svc.Login(ctx, "frank", "password1")
	require.NoError(t, err)

	next, err := svc.Refresh(ctx, pair.RefreshToken)
	require.NoError(t, err)

	sessions := redisrepo.NewSessionRepository(time.Minute)
	current, err := sessions.Get(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, next.AccessToken, current)
}

func TestResetPassword(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "grace", "grace@example.com", "password1")
	require.NoError(t, err)

	codes := &redisrepo.ResetCodeRepository{}
	require.NoError(t, codes.Save(ctx, "grace@example.com", "ABC234"))

	// wrong code consumes nothing useful but fails
	err = svc.ResetPassword(ctx, "grace@example.com", "WRONG2", "password2")
	assert.ErrorIs(t, err, pkg.ErrInvalidInput)

	// the code was one-shot: even the right one is gone now
	err = svc.ResetPassword(ctx, "grace@example.com", "ABC234", "password2")
	assert.ErrorIs(t, err, pkg.ErrInvalidInput)

	require.NoError(t, codes.Save(ctx, "grace@example.com", "XYZ789"))
	require.NoError(t, svc.ResetPassword(ctx, "Grace@Example.com", "XYZ789", "password2"))

	_, err = svc.Authenticate(ctx, "grace", "password1")
	assert.ErrorIs(t, err, pkg.ErrBadCredentials)
	_, err = svc.Authenticate(ctx, "grace", "password2")
	assert.NoError(t, err)
}

func TestRedisFaultIsNotACredentialError(t *testing.T) {
	svc, mr := newUserService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "ivan", "ivan@example.com", "password1")
	require.NoError(t, err)

	mr.SetError("simulated backend failure")

	// a correct password with broken session storage is a fault, not a 401
	_, err = svc.Login(ctx, "ivan", "password1")
	assert.ErrorIs(t, err, redisrepo.ErrRedisUnavailable)

	// same for reset: an unreachable code store must not read as a bad code
	err = svc.ResetPassword(ctx, "ivan@example.com", "ABC234", "password2")
	assert.ErrorIs(t, err, redisrepo.ErrRedisUnavailable)
	assert.NotErrorIs(t, err, pkg.ErrInvalidInput)
}

func TestChangePassword(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "heidi", "heidi@example.com", "password1")
	require.NoError(t, err)
	_, err = svc.Login(ctx, "heidi", "password1")
	require.NoError(t, err)

	err = svc.ChangePassword(ctx, user.ID, "wrong", "password2")
	assert.ErrorIs(t, err, pkg.ErrBadCredentials)

	require.NoError(t, svc.ChangePassword(ctx, user.ID, "password1", "password2"))

	// session revoked, new password active
	sessions := redisrepo.NewSessionRepository(time.Minute)
	_, err = sessions.Get(ctx, user.ID)
	assert.ErrorIs(t, err, redisrepo.ErrSessionNotFound)
	_, err = svc.Authenticate(ctx, "heidi", "password2")
	assert.NoError(t, err)
}
