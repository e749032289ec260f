package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	CacheBackendFile  = "file"
	CacheBackendRedis = "redis"
	CacheBackendSQL   = "sql"
	CacheBackendNone  = "none"
)

type Config struct {
	Cache        CacheConfig        `mapstructure:"cache"`
	Redis        RedisConfig        `mapstructure:"redis"`
	Database     DatabaseConfig     `mapstructure:"database"`
	Dictionaries DictionariesConfig `mapstructure:"dictionaries"`
	OpenAI       OpenAIConfig       `mapstructure:"openai"`
	Server       ServerConfig       `mapstructure:"server"`
}

type CacheConfig struct {
	Backend     string        `mapstructure:"backend" validate:"oneof=file redis sql none"`
	Directory   string        `mapstructure:"directory" validate:"required_if=Backend file,cachedir"`
	NegativeTTL time.Duration `mapstructure:"negative_ttl" validate:"gt=0"`
}

type RedisConfig struct {
	URL string `mapstructure:"url"`
}

type DatabaseConfig struct {
	Driver string `mapstructure:"driver" validate:"oneof=mysql sqlite3"`
	// Path is the SQLite database file
	Path            string            `mapstructure:"path"`
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port"`
	Database        string            `mapstructure:"database"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds"`
}

type DictionariesConfig struct {
	// NativeURLFormat takes the Wiktionary subdomain, e.g. "https://%s.wiktionary.org"
	NativeURLFormat string        `mapstructure:"native_url_format" validate:"required,contains=%s"`
	EnglishURL      string        `mapstructure:"english_url" validate:"required,url"`
	UserAgent       string        `mapstructure:"user_agent" validate:"required"`
	Timeout         time.Duration `mapstructure:"timeout" validate:"gt=0"`
}

type OpenAIConfig struct {
	APIKey           string `mapstructure:"api_key"`
	Model            string `mapstructure:"model"`
	BaseURL          string `mapstructure:"base_url" validate:"omitempty,url"`
	MaxRetryAttempts uint   `mapstructure:"max_retry_attempts"`
}

type ServerConfig struct {
	Port int `mapstructure:"port" validate:"min=1,max=65535"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/glossary")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

// Load reads config.yml from the explicit path or the default search paths.
func Load(configFile string) (*Config, error) {
	loader, err := NewConfigLoader(configFile)
	if err != nil {
		return nil, err
	}
	return loader.Load()
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("cache.backend", CacheBackendFile)
	v.SetDefault("cache.directory", filepath.Join("cache", "definitions"))
	v.SetDefault("cache.negative_ttl", 7*24*time.Hour)
	v.SetDefault("database.driver", "sqlite3")
	v.SetDefault("database.path", "glossary.db")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "glossary")
	v.SetDefault("database.username", "glossary")
	v.SetDefault("dictionaries.native_url_format", "https://%s.wiktionary.org")
	v.SetDefault("dictionaries.english_url", "https://en.wiktionary.org")
	v.SetDefault("dictionaries.user_agent", "WordleGlobal/1.0")
	v.SetDefault("dictionaries.timeout", 5*time.Second)
	v.SetDefault("openai.model", "gpt-4o-mini")
	v.SetDefault("openai.base_url", "https://api.openai.com/v1")
	v.SetDefault("openai.max_retry_attempts", 0)
	v.SetDefault("server.port", 8080)

	// Bind OpenAI config to environment variables only (not from config file)
	if err := v.BindEnv("openai.api_key", "OPENAI_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind OPENAI_API_KEY environment variable: %w", err)
	}
	if err := v.BindEnv("openai.model", "OPENAI_MODEL"); err != nil {
		return nil, fmt.Errorf("failed to bind OPENAI_MODEL environment variable: %w", err)
	}

	if err := v.BindEnv("redis.url", "GLOSSARY_REDIS_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind GLOSSARY_REDIS_URL environment variable: %w", err)
	}

	// Bind database password to environment variable
	if err := v.BindEnv("database.password", "DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_PASSWORD environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
