package db

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"monopoly_backend/internal/platform/config"
)

// TestBuildDSN checks the DSN produced for each dialect.
func TestBuildDSN(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{
			name: "sqlite",
			cfg:  Config{Dialect: config.BackendSQLite, SQLitePath: "monopoly.db"},
			want: "file:monopoly.db?_busy_timeout=5000",
		},
		{
			name: "postgres",
			cfg: Config{
				Dialect:  config.BackendPostgres,
				Host:     "localhost",
				Port:     "5432",
				User:     "testuser",
				Password: "testpass",
				Name:     "testdb",
				SSLMode:  "disable",
			},
			want: "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, BuildDSN(tt.cfg))
		})
	}
}

// TestConnectWithRetry_SuccessOnFirstTry returns the DB without retrying.
func TestConnectWithRetry_SuccessOnFirstTry(t *testing.T) {
	t.Parallel()

	mockDB := &gorm.DB{}
	attempts := 0
	opener := func(dsn string) (*gorm.DB, error) {
		attempts++
		return mockDB, nil
	}

	db, err := ConnectWithRetry("test-dsn", 5*time.Second, opener)

	require.NoError(t, err)
	assert.Same(t, mockDB, db)
	assert.Equal(t, 1, attempts)
}

// TestConnectWithRetry_RetriesOnFailure retries until the opener succeeds.
func TestConnectWithRetry_RetriesOnFailure(t *testing.T) {
	// Not parallel because this test takes time due to retry sleeps

	mockDB := &gorm.DB{}
	attempts := 0
	opener := func(dsn string) (*gorm.DB, error) {
		attempts++
		if attempts < 3 {
			return nil, errors.New("connection refused")
		}
		return mockDB, nil
	}

	// Allows two retries at the 3 second interval.
	db, err := ConnectWithRetry("test-dsn", 10*time.Second, opener)

	require.NoError(t, err)
	assert.Same(t, mockDB, db)
	assert.Equal(t, 3, attempts)
}

// TestConnectWithRetry_TimeoutAfterRetries gives up once the window is exhausted.
func TestConnectWithRetry_TimeoutAfterRetries(t *testing.T) {
	t.Parallel()

	connErr := errors.New("connection refused")
	attempts := 0
	opener := func(dsn string) (*gorm.DB, error) {
		attempts++
		return nil, connErr
	}

	_, err := ConnectWithRetry("test-dsn", 100*time.Millisecond, opener)

	assert.ErrorIs(t, err, connErr)
	assert.Equal(t, 1, attempts)
}

// TestLoadConfig copies the relational settings out of the process configuration.
func TestLoadConfig(t *testing.T) {
	t.Parallel()

	cfg := LoadConfig(config.Config{
		StateBackend: config.BackendPostgres,
		DB: config.DBConfig{
			Host:           "envhost",
			Port:           "5433",
			User:           "envuser",
			Password:       "envpass",
			Name:           "envdb",
			SSLMode:        "require",
			ConnectTimeout: 7 * time.Second,
		},
	})

	assert.Equal(t, Config{
		Dialect:        config.BackendPostgres,
		Host:           "envhost",
		Port:           "5433",
		User:           "envuser",
		Password:       "envpass",
		Name:           "envdb",
		SSLMode:        "require",
		ConnectTimeout: 7 * time.Second,
	}, cfg)
}

// TestOpenDB_SQLite opens a file database and runs the migration hook.
func TestOpenDB_SQLite(t *testing.T) {
	t.Parallel()

	type probe struct {
		ID   uint
		Name string
	}
	cfg := Config{
		Dialect:        config.BackendSQLite,
		SQLitePath:     filepath.Join(t.TempDir(), "test.db"),
		ConnectTimeout: time.Second,
	}

	db, err := OpenDB(cfg, func(db *gorm.DB) error { return db.AutoMigrate(&probe{}) })
	require.NoError(t, err)

	require.NoError(t, db.Create(&probe{Name: "ok"}).Error)
	var count int64
	require.NoError(t, db.Model(&probe{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
	require.NoError(t, sqlDB.Close())
}

// TestOpenDB_MigrationError surfaces the migration failure.
func TestOpenDB_MigrationError(t *testing.T) {
	t.Parallel()

	migErr := errors.New("migration failed")
	cfg := Config{
		Dialect:        config.BackendSQLite,
		SQLitePath:     filepath.Join(t.TempDir(), "test.db"),
		ConnectTimeout: time.Second,
	}

	_, err := OpenDB(cfg, func(*gorm.DB) error { return migErr })

	assert.ErrorIs(t, err, migErr)
}
