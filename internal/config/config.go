package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Server   ServerConfig   `envPrefix:"SERVER_"`
	Backend  BackendConfig  `envPrefix:"BACKEND_"`
	Database DatabaseConfig `envPrefix:"DATABASE_"`
	ChatAPI  ChatAPIConfig  `envPrefix:"CHAT_API_"`
	Stub     StubConfig     `envPrefix:"STUB_"`
	User     UserConfig     `envPrefix:"USER_"`
}

type ServerConfig struct {
	Addr string `env:"ADDR" envDefault:":8080"`
}

// BackendConfig selects the data access backend: "memory" (the latency
// stub), "mongo", or "rest".
type BackendConfig struct {
	Mode string `env:"MODE" envDefault:"memory"`
}

type DatabaseConfig struct {
	URI      string `env:"URI" envDefault:"mongodb://localhost:27017"`
	Database string `env:"DATABASE" envDefault:"chatcore"`
}

type ChatAPIConfig struct {
	BaseURL string `env:"BASE_URL"`
}

// StubConfig tunes the in-memory backend. LatencyScale multiplies the
// fixed per-call delays; 0 disables them (tests).
type StubConfig struct {
	LatencyScale float64 `env:"LATENCY_SCALE" envDefault:"1"`
}

// UserConfig identifies the local user all sends are attributed to.
type UserConfig struct {
	ID   string `env:"ID" envDefault:"user-1"`
	Name string `env:"NAME" envDefault:"You"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("load config: %v", err))
	}
	return cfg
}
