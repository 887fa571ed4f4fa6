package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/slighter12/go-lib/database/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey(t *testing.T) {
	existing := map[string]any{
		"database": map[string]any{
			"slowQueryThreshold": "200ms",
		},
		"qrcode": map[string]any{
			"errorCorrectionLevel": "medium",
		},
		"testRoutes": map[string]any{
			"enabled": false,
		},
		"http": map[string]any{
			"maxRequestBodySize": "100KB",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "DATABASE_SLOWQUERYTHRESHOLD", want: "database.slowQueryThreshold"},
		{envKey: "QRCODE_ERRORCORRECTIONLEVEL", want: "qrcode.errorCorrectionLevel"},
		{envKey: "TESTROUTES_ENABLED", want: "testRoutes.enabled"},
		{envKey: "HTTP__MAXREQUESTBODYSIZE", want: "http.maxRequestBodySize"},
		{envKey: "FIREBASE_PROJECTID", want: "firebase.projectid"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestBuildReplicasFromEnv(t *testing.T) {
	t.Setenv("POSTGRES_REPLICAS_0_HOST", "replica-a")
	t.Setenv("POSTGRES_REPLICAS_0_PORT", "5433")
	t.Setenv("POSTGRES_REPLICAS_0_USERNAME", "reader")
	t.Setenv("POSTGRES_REPLICAS_1_HOST", "replica-b")
	// replica 1 has no port, so the scan stops there

	replicas := buildReplicasFromEnv()
	require.Len(t, replicas, 1)
	assert.Equal(t, "replica-a", replicas[0].Host)
	assert.Equal(t, "5433", replicas[0].Port)
	assert.Equal(t, "reader", replicas[0].UserName)
}

const testYAML = `
env:
  env: develop
  serviceName: matchdeportivo
http:
  port: 8080
  timeouts:
    readTimeout: 10s
database:
  slowQueryThreshold: 200ms
testRoutes:
  enabled: false
postgres:
  database: matchdeportivo
`

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "unittest.yaml"), []byte(testYAML), 0o600))
	t.Chdir(dir)

	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DATABASE_SLOWQUERYTHRESHOLD", "1s")
	t.Setenv("TESTROUTES_ENABLED", "true")

	cfg, err := LoadWithEnv[Config]("unittest")
	require.NoError(t, err)

	assert.Equal(t, "matchdeportivo", cfg.Env.ServiceName)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 10*time.Second, cfg.HTTP.Timeouts.ReadTimeout)
	assert.Equal(t, time.Second, cfg.Database.SlowQueryThreshold)
	require.NotNil(t, cfg.TestRoutes)
	assert.True(t, cfg.TestRoutes.Enabled)
	require.NotNil(t, cfg.Postgres)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	assert.ErrorContains(t, err, "absent.yaml not found")
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		cfg.Postgres = &postgres.DBConn{}
		cfg.HTTP.Port = 8080

		return cfg
	}

	assert.NoError(t, valid().Validate())

	cfg := valid()
	cfg.Postgres = nil
	cfg.Auth = &AuthConfig{BcryptCost: 40}
	cfg.QRCode = &QRCodeConfig{Size: 4096}
	cfg.PubSub = &PubSubConfig{Provider: "kafka"}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "postgres config is required")
	assert.Contains(t, err.Error(), "auth.bcryptCost")
	assert.Contains(t, err.Error(), "qrcode.size")
	assert.Contains(t, err.Error(), `unknown pubsub.provider "kafka"`)
}
