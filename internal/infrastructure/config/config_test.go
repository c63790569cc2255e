package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("loads default values when env vars not set", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "fieldstock", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "fieldstock", cfg.Database.DBName)
		assert.Equal(t, "disable", cfg.Database.SSLMode)
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
		assert.Equal(t, 5, cfg.Database.MaxIdleConns)
		assert.Equal(t, 5, cfg.Ledger.MaxRetries)
		assert.Equal(t, 10*time.Millisecond, cfg.Ledger.RetryInitialInterval)
		assert.Equal(t, int64(10), cfg.Ledger.DefaultMinStock)
		assert.True(t, cfg.Idempotency.Enabled)
		assert.Equal(t, "memory", cfg.Idempotency.Backend)
		assert.Equal(t, 24*time.Hour, cfg.Idempotency.TTL)
		assert.NotEmpty(t, cfg.JWT.Secret)
		assert.Equal(t, "fieldstock", cfg.Telemetry.ServiceName)
	})

	t.Run("loads values from environment variables with FIELDSTOCK prefix", func(t *testing.T) {
		t.Setenv("FIELDSTOCK_APP_NAME", "test-app")
		t.Setenv("FIELDSTOCK_APP_PORT", "9000")
		t.Setenv("FIELDSTOCK_DATABASE_HOST", "testdb.local")
		t.Setenv("FIELDSTOCK_DATABASE_PORT", "5433")
		t.Setenv("FIELDSTOCK_DATABASE_MAX_OPEN_CONNS", "50")
		t.Setenv("FIELDSTOCK_DATABASE_MAX_IDLE_CONNS", "10")
		t.Setenv("FIELDSTOCK_LEDGER_MAX_RETRIES", "8")
		t.Setenv("FIELDSTOCK_LEDGER_RETRY_INITIAL_INTERVAL", "25ms")
		t.Setenv("FIELDSTOCK_LEDGER_DEFAULT_MIN_STOCK", "0")
		t.Setenv("FIELDSTOCK_IDEMPOTENCY_ENABLED", "false")
		t.Setenv("FIELDSTOCK_IDEMPOTENCY_BACKEND", "redis")
		t.Setenv("FIELDSTOCK_REDIS_HOST", "cache.local")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "test-app", cfg.App.Name)
		assert.Equal(t, "9000", cfg.App.Port)
		assert.Equal(t, "testdb.local", cfg.Database.Host)
		assert.Equal(t, 5433, cfg.Database.Port)
		assert.Equal(t, 50, cfg.Database.MaxOpenConns)
		assert.Equal(t, 10, cfg.Database.MaxIdleConns)
		assert.Equal(t, 8, cfg.Ledger.MaxRetries)
		assert.Equal(t, 25*time.Millisecond, cfg.Ledger.RetryInitialInterval)
		assert.Equal(t, int64(0), cfg.Ledger.DefaultMinStock)
		assert.False(t, cfg.Idempotency.Enabled)
		assert.Equal(t, "redis", cfg.Idempotency.Backend)
		assert.Equal(t, "cache.local:6379", cfg.Redis.Addr())
	})

	t.Run("zero max retries disables ledger retry", func(t *testing.T) {
		t.Setenv("FIELDSTOCK_LEDGER_MAX_RETRIES", "0")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Zero(t, cfg.Ledger.MaxRetries)
	})

	t.Run("validates MaxIdleConns cannot exceed MaxOpenConns", func(t *testing.T) {
		t.Setenv("FIELDSTOCK_DATABASE_MAX_OPEN_CONNS", "10")
		t.Setenv("FIELDSTOCK_DATABASE_MAX_IDLE_CONNS", "20")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot exceed")
	})

	t.Run("rejects unknown idempotency backend", func(t *testing.T) {
		t.Setenv("FIELDSTOCK_IDEMPOTENCY_BACKEND", "memcached")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "idempotency.backend")
	})

	t.Run("rejects sampling ratio out of range", func(t *testing.T) {
		t.Setenv("FIELDSTOCK_TELEMETRY_SAMPLING_RATIO", "1.5")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sampling_ratio")
	})
}

func TestLoad_ProductionValidation(t *testing.T) {
	setValidProductionBase := func(t *testing.T) {
		t.Setenv("FIELDSTOCK_APP_ENV", "production")
		t.Setenv("FIELDSTOCK_JWT_SECRET", "this-is-a-very-secure-jwt-secret-key-32chars")
		t.Setenv("FIELDSTOCK_DATABASE_PASSWORD", "secure-password")
		t.Setenv("FIELDSTOCK_DATABASE_SSLMODE", "require")
	}

	t.Run("requires a long jwt.secret in production", func(t *testing.T) {
		setValidProductionBase(t)
		t.Setenv("FIELDSTOCK_JWT_SECRET", "short-secret")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "jwt.secret must be at least 32 characters")
	})

	t.Run("does not invent a jwt.secret in production", func(t *testing.T) {
		setValidProductionBase(t)
		t.Setenv("FIELDSTOCK_JWT_SECRET", "")

		_, err := Load()
		require.Error(t, err)
	})

	t.Run("requires database.password in production", func(t *testing.T) {
		setValidProductionBase(t)
		t.Setenv("FIELDSTOCK_DATABASE_PASSWORD", "")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.password is required in production")
	})

	t.Run("requires SSL enabled in production", func(t *testing.T) {
		setValidProductionBase(t)
		t.Setenv("FIELDSTOCK_DATABASE_SSLMODE", "disable")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.sslmode cannot be 'disable' in production")
	})

	t.Run("rejects open swagger in production", func(t *testing.T) {
		setValidProductionBase(t)
		t.Setenv("FIELDSTOCK_SWAGGER_ENABLED", "true")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "swagger must be disabled")
	})

	t.Run("allows swagger restricted by ip in production", func(t *testing.T) {
		setValidProductionBase(t)
		t.Setenv("FIELDSTOCK_SWAGGER_ENABLED", "true")
		t.Setenv("FIELDSTOCK_SWAGGER_ALLOWED_IPS", "10.0.0.0/8 127.0.0.1")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, []string{"10.0.0.0/8", "127.0.0.1"}, cfg.Swagger.AllowedIPs)
	})

	t.Run("passes validation with valid production config", func(t *testing.T) {
		setValidProductionBase(t)

		cfg, err := Load()
		require.NoError(t, err)
		assert.True(t, cfg.IsProduction())
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	t.Run("generates valid DSN", func(t *testing.T) {
		cfg := DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "testuser",
			Password: "testpass",
			DBName:   "testdb",
			SSLMode:  "disable",
		}

		dsn := cfg.DSN()
		assert.Contains(t, dsn, "localhost:5432")
		assert.Contains(t, dsn, "testuser")
		assert.Contains(t, dsn, "/testdb")
		assert.Contains(t, dsn, "sslmode=disable")
	})

	t.Run("escapes special characters in password", func(t *testing.T) {
		cfg := DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "user",
			Password: "pass@word#123",
			DBName:   "db",
			SSLMode:  "disable",
		}

		assert.Contains(t, cfg.DSN(), "pass%40word%23123")
	})
}
