package service_test

import (
	"testing"

	"go_admin_pro/internal/model"
	"go_admin_pro/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB はテストごとに独立したインメモリ SQLite を作成します。
// トランザクションを本物で動かすため、接続は1本に固定する。
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, repository.Migrate(db))
	return db
}

// newTenantContext はテスト用に新しいテナントのスコープを作ります。
func newTenantContext() model.TenantContext {
	return model.NewTenantContext(uuid.New(), uuid.New())
}
