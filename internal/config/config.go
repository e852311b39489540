package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server      ServerConfig
	Logger      LoggerConfig
	Redis       RedisConfig
	Leaderboard LeaderboardConfig
	Chat        ChatConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type LoggerConfig struct {
	Env   string `yaml:"env"`
	Level string `yaml:"level"`
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// LeaderboardConfig selects the score store backend. "file" keeps the whole
// collection in a single JSON document; "sqlite" uses an embedded database.
type LeaderboardConfig struct {
	Backend string `yaml:"backend"`
	Path    string `yaml:"path"`
}

// ChatConfig holds the Together completion endpoint settings. The API key is
// only ever read from the TOGETHER_API_KEY environment variable.
type ChatConfig struct {
	APIKey   string
	BaseURL  string        `yaml:"base_url"`
	Model    string        `yaml:"model"`
	Timeout  time.Duration `yaml:"timeout"`
	CacheTTL time.Duration `yaml:"cache_ttl"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		viper.AddConfigPath("../../configs")
		viper.AddConfigPath("../../")
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("./configs")
	}

	viper.AutomaticEnv()

	viper.SetDefault("server.port", 8090)
	viper.SetDefault("server.read_timeout", 20)
	viper.SetDefault("server.write_timeout", 20)
	viper.SetDefault("logger.env", "development")
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("leaderboard.backend", "file")
	viper.SetDefault("leaderboard.path", "leaderboard.json")
	viper.SetDefault("chat.base_url", "https://api.together.xyz/v1")
	viper.SetDefault("chat.model", "mistralai/Mixtral-8x7B-Instruct-v0.1")
	viper.SetDefault("chat.timeout", 20)
	viper.SetDefault("chat.cache_ttl", 3600)

	if err := viper.ReadInConfig(); err != nil {
		// A config file is optional; defaults plus env vars are enough to run.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config := &Config{
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: viper.GetDuration("server.write_timeout") * time.Second,
		},
		Logger: LoggerConfig{
			Env:   viper.GetString("logger.env"),
			Level: viper.GetString("logger.level"),
		},
		Redis: RedisConfig{
			Address:  viper.GetString("redis.address"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		},
		Leaderboard: LeaderboardConfig{
			Backend: viper.GetString("leaderboard.backend"),
			Path:    viper.GetString("leaderboard.path"),
		},
		Chat: ChatConfig{
			BaseURL:  viper.GetString("chat.base_url"),
			Model:    viper.GetString("chat.model"),
			Timeout:  viper.GetDuration("chat.timeout") * time.Second,
			CacheTTL: viper.GetDuration("chat.cache_ttl") * time.Second,
		},
	}

	// Environment overrides
	if port := os.Getenv("SERVER_PORT"); port != "" {
		config.Server.Port = viper.GetInt("SERVER_PORT")
	}
	if env := os.Getenv("ENV"); env != "" {
		config.Logger.Env = env
	}
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		config.Redis.Address = redisAddress
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		config.Redis.Password = redisPassword
	}
	if path := os.Getenv("LEADERBOARD_PATH"); path != "" {
		config.Leaderboard.Path = path
	}
	if backend := os.Getenv("LEADERBOARD_BACKEND"); backend != "" {
		config.Leaderboard.Backend = backend
	}
	config.Chat.APIKey = os.Getenv("TOGETHER_API_KEY")

	return config, nil
}
