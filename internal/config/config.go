package config

import (
	"flag"
	"regexp"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Профили окружения.
const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)

type Config struct {
	// Server-side settings
	DatabaseDSN     string        `env:"DATABASE_URI"`
	AuthSecret      string        `env:"AUTH_SECRET"`
	Env             string        `env:"APP_ENV"`
	TokenTTL        time.Duration `env:"TOKEN_TTL"`
	BcryptCost      int           `env:"BCRYPT_COST"`
	AdminUsername   string        `env:"ADMIN_USERNAME"`
	AdminPassword   string        `env:"ADMIN_PASSWORD"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// Shared settings
	BaseURL     string `env:"BASE_URL"`
	EnableHTTPS bool   `env:"ENABLE_HTTPS"`

	// Client-side settings
	ServerURL string `env:"-"`
	Version   bool   `env:"-"` // show client version and exit (flag only)
}

// profile — значения по умолчанию, зависящие от окружения.
type profile struct {
	tokenTTL   time.Duration
	bcryptCost int
}

var profiles = map[string]profile{
	EnvDevelopment: {tokenTTL: 24 * time.Hour, bcryptCost: 10},
	EnvTest:        {tokenTTL: time.Hour, bcryptCost: 10},
	EnvProduction:  {tokenTTL: 8 * time.Hour, bcryptCost: 12},
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// значения из env становятся значениями флагов по умолчанию
	// Server flags
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к БД (postgres DSN или путь к файлу SQLite)")
	flag.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "секрет для подписи JWT")
	flag.StringVar(&cfg.Env, "env", cfg.Env, "окружение: development, test или production")
	flag.DurationVar(&cfg.TokenTTL, "token-ttl", cfg.TokenTTL, "время жизни токена")
	flag.IntVar(&cfg.BcryptCost, "bcrypt-cost", cfg.BcryptCost, "стоимость bcrypt")
	flag.StringVar(&cfg.AdminUsername, "admin-user", cfg.AdminUsername, "логин администратора, создаваемого в пустой базе")
	flag.StringVar(&cfg.AdminPassword, "admin-password", cfg.AdminPassword, "пароль администратора; пустой — сгенерировать")
	flag.DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", cfg.ShutdownTimeout, "время на завершение активных запросов")
	// Shared/client flags
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "address of the jewelry store server (host:port)")
	flag.BoolVar(&cfg.EnableHTTPS, "https", cfg.EnableHTTPS, "enable HTTPS (client: prefer https scheme for BaseURL)")
	// Client flags
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show client version and exit")

	flag.Parse()

	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if _, ok := profiles[c.Env]; !ok {
		c.Env = EnvDevelopment
	}
	p := profiles[c.Env]
	if c.TokenTTL <= 0 {
		c.TokenTTL = p.tokenTTL
	}
	if c.BcryptCost <= 0 {
		c.BcryptCost = p.bcryptCost
	}
	if c.DatabaseDSN == "" {
		c.DatabaseDSN = "jewelry.db"
	}
	if c.AuthSecret == "" {
		c.AuthSecret = "dev-secret-key"
	}
	if c.AdminUsername == "" {
		c.AdminUsername = "admin"
	}
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = 10 * time.Second
	}

	// validate BaseURL: must be in "address:port" (no scheme, no path). Otherwise use default.
	hostPortRe := regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)
	if !hostPortRe.MatchString(c.BaseURL) {
		c.BaseURL = "localhost:8081"
	}

	if c.EnableHTTPS {
		c.ServerURL = "https://" + c.BaseURL
	} else {
		c.ServerURL = "http://" + c.BaseURL
	}
}

func (c *Config) IsProduction() bool { return c.Env == EnvProduction }
