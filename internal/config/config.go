package config

import (
	"flag"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Env      string         `yaml:"env" env:"ENV" env-default:"local"`
	Log      LogConfig      `yaml:"log"`
	HTTP     HTTPConfig     `yaml:"http"`
	DB       DBConfig       `yaml:"db"`
	Redis    RedisConfig    `yaml:"redis"`
	Sync     SyncConfig     `yaml:"sync"`
	Football FootballConfig `yaml:"football"`
	F1       F1Config       `yaml:"f1"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
}

type HTTPConfig struct {
	Host    string        `yaml:"host" env:"HTTP_HOST"`
	Port    int           `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
	Timeout time.Duration `yaml:"timeout" env:"HTTP_TIMEOUT" env-default:"15s"`
}

type DBConfig struct {
	DSN      string `yaml:"dsn" env:"DB_DSN"`
	Host     string `yaml:"host" env:"DB_HOST"`
	Port     int    `yaml:"port" env:"DB_PORT"`
	User     string `yaml:"user" env:"DB_USER"`
	Password string `yaml:"password" env:"DB_PASSWORD"`
	Name     string `yaml:"name" env:"DB_NAME"`
	SSLMode  string `yaml:"sslmode" env:"DB_SSLMODE" env-default:"require"`
}

func (c DBConfig) DatabaseURL() string {
	if c.DSN != "" {
		return c.DSN
	}

	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "require"
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.User, c.Password),
		Host:   fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:   c.Name,
	}

	q := u.Query()
	q.Set("sslmode", sslMode)
	u.RawQuery = q.Encode()

	return u.String()
}

type RedisConfig struct {
	Addr     string        `yaml:"addr" env:"REDIS_ADDR"`
	Password string        `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int           `yaml:"db" env:"REDIS_DB"`
	TTL      time.Duration `yaml:"ttl" env:"REDIS_TTL" env-default:"30m"`
}

type SyncConfig struct {
	// Schedule is a cron expression; the default refreshes fixtures
	// hourly.
	Schedule string   `yaml:"schedule" env:"SYNC_SCHEDULE" env-default:"0 * * * *"`
	Teams    []string `yaml:"teams" env:"SYNC_TEAMS" env-separator:","`
}

type FootballConfig struct {
	BaseURL  string        `yaml:"base_url" env:"FOOTBALL_BASE_URL"`
	Language string        `yaml:"language" env:"FOOTBALL_LANGUAGE" env-default:"en"`
	Timeout  time.Duration `yaml:"timeout" env:"FOOTBALL_TIMEOUT" env-default:"10s"`
	// Retries applies to the sync daemon only; library calls stay
	// single-attempt.
	Retries    int           `yaml:"retries" env:"FOOTBALL_RETRIES" env-default:"3"`
	RetryDelay time.Duration `yaml:"retry_delay" env:"FOOTBALL_RETRY_DELAY" env-default:"5s"`
}

type F1Config struct {
	SiteBaseURL string        `yaml:"site_base_url" env:"F1_SITE_BASE_URL"`
	WebBaseURL  string        `yaml:"web_base_url" env:"F1_WEB_BASE_URL"`
	Timeout     time.Duration `yaml:"timeout" env:"F1_TIMEOUT" env-default:"10s"`
}

func MustLoad() *Config {
	path := fetchConfigPath()
	if path == "" {
		panic("config path is empty")
	}
	return MustLoadByPath(path)
}

func MustLoadByPath(configPath string) *Config {
	// Local overrides live in .env; absence is fine.
	_ = godotenv.Load()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exists: " + configPath)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic("cannot read the config: " + err.Error())
	}

	return &cfg
}

func fetchConfigPath() string {
	var res string

	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}
	if res == "" {
		res = "config/local.yaml"
	}

	return res
}
