package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "Vazio usa o padrão", raw: "", want: DefaultAPIBaseURL},
		{name: "Remove barra final", raw: "https://magnus.example/api/v1/", want: "https://magnus.example/api/v1"},
		{name: "Remove espaços", raw: "  http://localhost:8000/api/v1 ", want: "http://localhost:8000/api/v1"},
		{name: "Sem alteração", raw: "http://localhost:8000", want: "http://localhost:8000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeBaseURL(tt.raw))
		})
	}
}

func TestDecode(t *testing.T) {
	v := viper.New()
	v.Set("host", "0.0.0.0")
	v.Set("port", "9090")
	v.Set("cors_origins", "http://localhost:3000,https://console.magnus.example")
	v.Set("api_base_url", "https://magnus.example/api/v1/")
	v.Set("api_timeout", "10s")
	v.Set("auth_secret", "segredo")
	v.Set("dashboard_wait_timeout", "5s")
	v.Set("viewer_idle_timeout", "1h")
	v.Set("redirect_base_url", "http://localhost:3000")
	v.Set("redirect_delay", "2200ms")
	v.Set("snapshot_refresh_cron", "*/10 * * * *")
	v.Set("snapshot_refresh_enabled", true)
	v.Set("rate_limit_rps", 2.5)
	v.Set("rate_limit_burst", 4)

	cfg, err := decode(v)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:3000", "https://console.magnus.example"}, cfg.Server.CorsOrigins)
	assert.Equal(t, "https://magnus.example/api/v1", cfg.Magnus.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Magnus.Timeout)
	assert.True(t, cfg.AuthEnabled())
	assert.Equal(t, 5*time.Second, cfg.Dashboard.WaitTimeout)
	assert.Equal(t, time.Hour, cfg.Dashboard.ViewerIdleTimeout)
	assert.Equal(t, 2200*time.Millisecond, cfg.Ingest.RedirectDelay)
	assert.Equal(t, "*/10 * * * *", cfg.SnapshotRefresh.CronSchedule)
	assert.True(t, cfg.SnapshotRefresh.Enabled)
	assert.Equal(t, 2.5, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 4, cfg.RateLimit.Burst)
}

func TestDecode_EmptyBaseURLFallsBack(t *testing.T) {
	cfg, err := decode(viper.New())
	require.NoError(t, err)
	assert.Equal(t, DefaultAPIBaseURL, cfg.Magnus.BaseURL)
	assert.False(t, cfg.AuthEnabled())
}
