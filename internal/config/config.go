package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// DefaultAPIBaseURL é usada quando nem API_BASE_URL nem NEXT_PUBLIC_API_BASE_URL estão definidas
const DefaultAPIBaseURL = "http://127.0.0.1:8000/api/v1"

type Config struct {
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Magnus          Magnus          `mapstructure:",squash"`
	Auth            Auth            `mapstructure:",squash"`
	Dashboard       Dashboard       `mapstructure:",squash"`
	Ingest          Ingest          `mapstructure:",squash"`
	SnapshotRefresh SnapshotRefresh `mapstructure:",squash"`
	RateLimit       RateLimit       `mapstructure:",squash"`
}

type App struct {
	LogLevel    string `mapstructure:"log_level"`
	Environment string `mapstructure:"app_env"`
}

type Server struct {
	Host        string   `mapstructure:"host"`
	Port        string   `mapstructure:"port"`
	CorsOrigins []string `mapstructure:"cors_origins"`
}

// Magnus agrupa o acesso à API externa que gera os snapshots e recebe as ingestões
type Magnus struct {
	BaseURL string        `mapstructure:"api_base_url"`
	Timeout time.Duration `mapstructure:"api_timeout"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type Dashboard struct {
	WaitTimeout       time.Duration `mapstructure:"dashboard_wait_timeout"`
	ViewerIdleTimeout time.Duration `mapstructure:"viewer_idle_timeout"`
}

type Ingest struct {
	RedirectBaseURL string        `mapstructure:"redirect_base_url"`
	RedirectDelay   time.Duration `mapstructure:"redirect_delay"`
}

type SnapshotRefresh struct {
	CronSchedule string `mapstructure:"snapshot_refresh_cron"`
	Enabled      bool   `mapstructure:"snapshot_refresh_enabled"`
}

type RateLimit struct {
	RequestsPerSecond float64 `mapstructure:"rate_limit_rps"`
	Burst             int     `mapstructure:"rate_limit_burst"`
}

// AuthEnabled indica se as rotas exigem token JWT
func (c *Config) AuthEnabled() bool {
	return c.Auth.Secret != ""
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8080)
	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("CORS_ORIGINS", "http://localhost:3000,http://127.0.0.1:3000")

	viper.SetDefault("API_BASE_URL", DefaultAPIBaseURL)
	viper.SetDefault("API_TIMEOUT", "30s")

	viper.SetDefault("AUTH_SECRET", "") // vazio desabilita a autenticação

	viper.SetDefault("DASHBOARD_WAIT_TIMEOUT", "20s")
	viper.SetDefault("VIEWER_IDLE_TIMEOUT", "30m")

	viper.SetDefault("REDIRECT_BASE_URL", "")
	viper.SetDefault("REDIRECT_DELAY", "2200ms")

	viper.SetDefault("SNAPSHOT_REFRESH_CRON", "*/5 * * * *") // A cada 5 minutos
	viper.SetDefault("SNAPSHOT_REFRESH_ENABLED", false)

	viper.SetDefault("RATE_LIMIT_RPS", 5)
	viper.SetDefault("RATE_LIMIT_BURST", 10)
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// A variável do front-end continua valendo para quem já tem o .env do dashboard
	if err := viper.BindEnv("API_BASE_URL", "API_BASE_URL", "NEXT_PUBLIC_API_BASE_URL"); err != nil {
		return nil, err
	}

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	return decode(viper.GetViper())
}

func decode(v *viper.Viper) (*Config, error) {
	config := &Config{}

	err := v.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Magnus.BaseURL = NormalizeBaseURL(config.Magnus.BaseURL)

	return config, nil
}

// NormalizeBaseURL remove uma barra final da URL base, como o dashboard sempre fez
func NormalizeBaseURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultAPIBaseURL
	}
	return strings.TrimSuffix(raw, "/")
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
