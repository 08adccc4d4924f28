package service_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"forum_api/internal/model"
	"forum_api/internal/pkg"
	redisrepo "forum_api/internal/repository/redis"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupDB opens a per-test in-memory sqlite database. TranslateError gives us
// the same gorm.ErrDuplicatedKey mapping the MySQL driver produces, so the
// duplicate/conflict paths behave as in production. A single connection keeps
// the in-memory database alive and serializes concurrent writers.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Post{},
		&model.Comment{},
		&model.Tag{},
		&model.PostTag{},
		&model.PostVote{},
		&model.CommentVote{},
		&model.EventOutbox{},
	))
	return db
}

func setupRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	require.NoError(t, redisrepo.Init(mr.Addr(), "", 0))
	return mr
}

func testTokenService() *pkg.TokenService {
	return pkg.NewTokenService(
		[]byte("test-access-secret"),
		[]byte("test-refresh-secret"),
		30*time.Minute,
		24*time.Hour,
	)
}
