package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, DriverPostgres, cfg.DB.Driver)
	assert.True(t, cfg.DB.AutoMigrate)
	assert.Equal(t, 100, cfg.Pagination.DefaultLimit)
	assert.Equal(t, 500, cfg.Pagination.MaxLimit)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, []string{"http://localhost", "http://localhost:3000", "http://localhost:5173"}, cfg.HTTP.CORSOrigins)
	assert.Empty(t, cfg.JWT.Secret)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("DB_SQLITE_PATH", ":memory:")
	t.Setenv("DB_AUTO_MIGRATE", "false")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("HTTP_CORS_ORIGINS", " https://a.example , ,https://b.example")
	t.Setenv("PAGE_DEFAULT_LIMIT", "25")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.DB.Driver)
	assert.Equal(t, ":memory:", cfg.DB.SQLitePath)
	assert.False(t, cfg.DB.AutoMigrate)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.CORSOrigins)
	assert.Equal(t, 25, cfg.Pagination.DefaultLimit)
}

func TestLoad_InvalidIntFallsBackToDefault(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HTTP_PORT", "not-a-port")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.HTTP.Port)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			DB:         DBConfig{Driver: DriverPostgres},
			Pagination: PaginationConfig{DefaultLimit: 100, MaxLimit: 500},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "ok", mutate: func(*Config) {}},
		{name: "driver desconocido", mutate: func(c *Config) { c.DB.Driver = "mysql" }, wantErr: "DB_DRIVER"},
		{name: "limite cero", mutate: func(c *Config) { c.Pagination.MaxLimit = 0 }, wantErr: "positivos"},
		{name: "default mayor que max", mutate: func(c *Config) { c.Pagination.DefaultLimit = 600 }, wantErr: "supera"},
		{name: "jwt sin expiracion", mutate: func(c *Config) {
			c.JWT.Secret = "s"
			c.JWT.Expiration = 0
		}, wantErr: "JWT_EXPIRATION_MINUTES"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := base()
			tc.mutate(c)
			err := c.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:word", DBName: "catalogo", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aword@db:5432/catalogo?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://override"
	assert.Equal(t, "postgres://override", c.ConnectionString())
}
