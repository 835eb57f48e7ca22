package data

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"cinetalk/internal/biz"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestData opens a private in-memory SQLite database with the schema applied.
func newTestData(t *testing.T) *Data {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Keep one connection so the shared in-memory database lives for the test.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, Migrate(db))
	return NewDataWithClients(db, nil, log.DefaultLogger)
}

func seedUser(t *testing.T, d *Data, username string) *biz.User {
	t.Helper()

	u := &biz.User{
		Username:       username,
		PasswordHash:   "x",
		Email:          username + "@example.com",
		ProfilePicture: biz.DefaultProfilePicture,
		JoinDate:       time.Date(2024, 11, 20, 0, 0, 0, 0, time.UTC),
		Token:          biz.DefaultTokenBalance,
	}
	require.NoError(t, NewUserRepo(d, log.DefaultLogger).CreateUser(t.Context(), u))
	return u
}
