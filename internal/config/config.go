// Package config предоставляет структуры и функцию для парсинга и загрузки
// конфигурации консоли.
package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config общая структура для хранения настроек.
type Config struct {
	Env             string `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer      `yaml:"http_server"`
	Backend         `yaml:"backend"`
	RedisConnection `yaml:"redis_connection"`
	JWTToken        `yaml:"jwttoken"`
	Session         `yaml:"session"`
}

// HTTPServer структура для настройки сервера консоли.
type HTTPServer struct {
	Address     string        `yaml:"address" env-default:"localhost:8080"`
	Timeout     time.Duration `yaml:"timeout" env-default:"10s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// Backend структура для настройки клиента бэкенда маркетплейса.
type Backend struct {
	BaseURL        string        `yaml:"base_url" env:"BACKEND_BASE_URL"`
	ServiceToken   string        `yaml:"service_token" env:"BACKEND_SERVICE_TOKEN"`
	RequestTimeout time.Duration `yaml:"request_timeout" env-default:"10s"`
}

// RedisConnection структура для настройки подключения к redis.
type RedisConnection struct {
	Address     string        `yaml:"address" env-default:"localhost:6379"`
	Password    string        `yaml:"password" env:"REDIS_PASSWORD"`
	User        string        `yaml:"user"`
	DB          int           `yaml:"db"`
	MaxRetries  int           `yaml:"max_retries" env-default:"3"`
	DialTimeout time.Duration `yaml:"dial_timeout" env-default:"5s"`
	Timeout     time.Duration `yaml:"timeout" env-default:"3s"`
}

// JWTToken структура для проверки токенов консоли.
type JWTToken struct {
	JWTSecretKey string        `yaml:"jwt_secret_key" env:"JWT_SECRET_KEY"`
	TokenTTL     time.Duration `yaml:"token_ttl" env-default:"24h"`
}

// Session структура для настройки хранилища сессий консоли.
type Session struct {
	TTL           time.Duration `yaml:"ttl" env-default:"30m"`
	SweepInterval time.Duration `yaml:"sweep_interval" env-default:"5m"`
}

// MustLoad загружает конфиг по пути из CONFIG_PATH и завершает процесс,
// если файл отсутствует или не парсится.
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("file: %s - does not exist", configPath)
	}
	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return &cfg
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"Env: %s\n"+
			"HTTPServer:\n"+
			"  Address: %s\n"+
			"  Timeout: %s\n"+
			"  IdleTimeout: %s\n"+
			"Backend:\n"+
			"  BaseURL: %s\n"+
			"  RequestTimeout: %s\n"+
			"RedisConnection:\n"+
			"  Address: %s\n"+
			"  DB: %d\n"+
			"Session:\n"+
			"  TTL: %s\n"+
			"  SweepInterval: %s\n",
		c.Env,
		c.HTTPServer.Address,
		c.HTTPServer.Timeout,
		c.IdleTimeout,
		c.BaseURL,
		c.RequestTimeout,
		c.RedisConnection.Address,
		c.DB,
		c.TTL,
		c.SweepInterval,
	)
}
