package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	Auth           Auth           `mapstructure:",squash"`
	Paddle         Paddle         `mapstructure:",squash"`
	PaddleSync     PaddleSync     `mapstructure:",squash"`
	ReportSnapshot ReportSnapshot `mapstructure:",squash"`
	Cache          Cache          `mapstructure:",squash"`
	Reports        Reports        `mapstructure:",squash"`
	SecretKey      string         `mapstructure:"secret_key"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
}

type Server struct {
	Host         string        `mapstructure:"host"`
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"server_read_timeout"`
	WriteTimeout time.Duration `mapstructure:"server_write_timeout"`
	AllowOrigins []string      `mapstructure:"cors_allow_origins"`
}

type Database struct {
	DSN          string `mapstructure:"-"`
	Driver       string `mapstructure:"database_driver"`
	Password     string `mapstructure:"database_password"`
	URL          string `mapstructure:"database_url"`
	User         string `mapstructure:"database_user"`
	SSLMode      string `mapstructure:"database_sslmode"`
	MaxOpenConns int    `mapstructure:"database_max_open_conns"`
	MaxIdleConns int    `mapstructure:"database_max_idle_conns"`
}

type Auth struct {
	TokenTTL time.Duration `mapstructure:"auth_token_ttl"`
}

type Paddle struct {
	APIKey      string `mapstructure:"paddle_api_key"`
	Environment string `mapstructure:"paddle_environment"` // sandbox ou production
	BaseURL     string `mapstructure:"paddle_base_url"`
}

// Sandbox indica se o cliente deve apontar para o ambiente de testes do Paddle
func (p Paddle) Sandbox() bool {
	return p.Environment != "production"
}

type PaddleSync struct {
	CronSchedule string `mapstructure:"paddle_sync_cron"`
	LookbackDays int    `mapstructure:"paddle_sync_lookback_days"`
	Enabled      bool   `mapstructure:"paddle_sync_enabled"`
}

type ReportSnapshot struct {
	CronSchedule  string `mapstructure:"report_snapshot_cron"`
	Enabled       bool   `mapstructure:"report_snapshot_enabled"`
	MonthLookBack int    `mapstructure:"report_snapshot_month_lookback"`
}

type Cache struct {
	RedisURL   string `mapstructure:"redis_url"`
	TTLSeconds int    `mapstructure:"report_cache_ttl_seconds"`
}

// Enabled indica se o cache de relatórios deve ser ligado
func (c Cache) Enabled() bool {
	return c.RedisURL != "" && c.TTLSeconds > 0
}

// TTL retorna o tempo de vida das entradas do cache
func (c Cache) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

type Reports struct {
	MaxPeriods     int `mapstructure:"reports_max_periods"`
	DefaultPeriods int `mapstructure:"reports_default_periods"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("SERVER_READ_TIMEOUT", "15s")
	viper.SetDefault("SERVER_WRITE_TIMEOUT", "60s")
	viper.SetDefault("CORS_ALLOW_ORIGINS", "*")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/subscriptions")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_SSLMODE", "disable")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")

	viper.SetDefault("PADDLE_API_KEY", "")
	viper.SetDefault("PADDLE_ENVIRONMENT", "sandbox")
	viper.SetDefault("PADDLE_BASE_URL", "")

	// Sincronização de assinaturas, transações e catálogo com o Paddle
	viper.SetDefault("PADDLE_SYNC_CRON", "0 */6 * * *") // A cada 6 horas
	viper.SetDefault("PADDLE_SYNC_LOOKBACK_DAYS", 3)
	viper.SetDefault("PADDLE_SYNC_ENABLED", false)

	// Snapshots mensais dos relatórios
	viper.SetDefault("REPORT_SNAPSHOT_CRON", "0 5 1 * *") // No primeiro dia de cada mês às 5h da manhã
	viper.SetDefault("REPORT_SNAPSHOT_ENABLED", false)
	viper.SetDefault("REPORT_SNAPSHOT_MONTH_LOOKBACK", 1)

	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("REPORT_CACHE_TTL_SECONDS", 0)

	viper.SetDefault("REPORTS_MAX_PERIODS", 36)
	viper.SetDefault("REPORTS_DEFAULT_PERIODS", 12)

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("APP_ENV", "development")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	config.Database.DSN = BuildDSN(config.Database)

	return config, nil
}

// Validate verifica combinações de configuração que impediriam a API de subir
func (c *Config) Validate() error {
	if c.Reports.MaxPeriods <= 0 {
		return fmt.Errorf("REPORTS_MAX_PERIODS deve ser maior que zero")
	}

	if c.Reports.DefaultPeriods <= 0 || c.Reports.DefaultPeriods > c.Reports.MaxPeriods {
		return fmt.Errorf("REPORTS_DEFAULT_PERIODS deve estar entre 1 e %d", c.Reports.MaxPeriods)
	}

	if c.PaddleSync.Enabled && c.Paddle.APIKey == "" {
		return fmt.Errorf("PADDLE_API_KEY é obrigatório quando PADDLE_SYNC_ENABLED está ligado")
	}

	if c.ReportSnapshot.MonthLookBack < 1 {
		c.ReportSnapshot.MonthLookBack = 1
	}

	return nil
}

// BuildDSN monta a string de conexão do banco a partir da configuração
func BuildDSN(db Database) string {
	dsn := fmt.Sprintf(
		"%s://%s:%s@%s",
		db.Driver,
		db.User,
		db.Password,
		db.URL,
	)

	if db.SSLMode != "" {
		dsn = fmt.Sprintf("%s?sslmode=%s", dsn, db.SSLMode)
	}

	return dsn
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
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
