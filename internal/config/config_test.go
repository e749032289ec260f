package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig() *Config {
	return &Config{
		Cache: CacheConfig{
			Backend:     CacheBackendFile,
			Directory:   filepath.Join("cache", "definitions"),
			NegativeTTL: 7 * 24 * time.Hour,
		},
		Database: DatabaseConfig{
			Driver:   "sqlite3",
			Path:     "glossary.db",
			Host:     "localhost",
			Port:     3306,
			Database: "glossary",
			Username: "glossary",
		},
		Dictionaries: DictionariesConfig{
			NativeURLFormat: "https://%s.wiktionary.org",
			EnglishURL:      "https://en.wiktionary.org",
			UserAgent:       "WordleGlobal/1.0",
			Timeout:         5 * time.Second,
		},
		OpenAI: OpenAIConfig{
			Model:   "gpt-4o-mini",
			BaseURL: "https://api.openai.com/v1",
		},
		Server: ServerConfig{
			Port: 8080,
		},
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name              string
		configContent     string
		useExplicitPath   bool
		env               map[string]string
		wantErr           bool
		want              func() *Config
		wantErrorContains []string
	}{
		{
			name:          "no config file uses defaults",
			configContent: "",
			want:          defaultConfig,
		},
		{
			name: "valid config file with custom values",
			configContent: `cache:
  backend: sql
  negative_ttl: 48h
database:
  driver: mysql
  host: db.example.com
dictionaries:
  timeout: 2s
server:
  port: 9090
`,
			want: func() *Config {
				cfg := defaultConfig()
				cfg.Cache.Backend = CacheBackendSQL
				cfg.Cache.NegativeTTL = 48 * time.Hour
				cfg.Database.Driver = "mysql"
				cfg.Database.Host = "db.example.com"
				cfg.Dictionaries.Timeout = 2 * time.Second
				cfg.Server.Port = 9090
				return cfg
			},
		},
		{
			name: "explicit config file path",
			configContent: `cache:
  directory: explicit/cache
`,
			useExplicitPath: true,
			want: func() *Config {
				cfg := defaultConfig()
				cfg.Cache.Directory = "explicit/cache"
				return cfg
			},
		},
		{
			name:          "environment variables",
			configContent: "cache:\n  backend: redis\n",
			env: map[string]string{
				"OPENAI_API_KEY":     "sk-env",
				"OPENAI_MODEL":       "gpt-4.1-mini",
				"GLOSSARY_REDIS_URL": "redis://localhost:6379/0",
				"DB_PASSWORD":        "secret",
			},
			want: func() *Config {
				cfg := defaultConfig()
				cfg.Cache.Backend = CacheBackendRedis
				cfg.Redis.URL = "redis://localhost:6379/0"
				cfg.OpenAI.APIKey = "sk-env"
				cfg.OpenAI.Model = "gpt-4.1-mini"
				cfg.Database.Password = "secret"
				return cfg
			},
		},
		{
			name: "invalid YAML format",
			configContent: `cache:
  backend: file
  invalid yaml format here [[[
`,
			wantErr: true,
			wantErrorContains: []string{
				"configuration file found but could not be read",
				"Please check the file format and permissions",
			},
		},
		{
			name:              "unknown cache backend",
			configContent:     "cache:\n  backend: memcached\n",
			wantErr:           true,
			wantErrorContains: []string{"invalid configuration", "backend must be one of [file redis sql none]"},
		},
		{
			name:              "redis backend without url",
			configContent:     "cache:\n  backend: redis\n",
			wantErr:           true,
			wantErrorContains: []string{"redis.url is required when cache.backend is redis"},
		},
		{
			name:              "invalid server port",
			configContent:     "server:\n  port: 70000\n",
			wantErr:           true,
			wantErrorContains: []string{"invalid configuration", "port must be"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{"OPENAI_API_KEY", "OPENAI_MODEL", "GLOSSARY_REDIS_URL", "DB_PASSWORD"} {
				t.Setenv(key, "")
				require.NoError(t, os.Unsetenv(key))
			}
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			tempDir := t.TempDir()
			t.Chdir(tempDir)

			var configPath string
			if tt.configContent != "" {
				configPath = filepath.Join(tempDir, "config.yml")
				require.NoError(t, os.WriteFile(configPath, []byte(tt.configContent), 0644))
			}
			if !tt.useExplicitPath {
				configPath = ""
			}

			got, err := Load(configPath)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
				for _, wantMsg := range tt.wantErrorContains {
					assert.Contains(t, err.Error(), wantMsg)
				}
				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.want(), got)
		})
	}
}

func TestLoad_CacheDirectoryMustNotBeAFile(t *testing.T) {
	tempDir := t.TempDir()
	t.Chdir(tempDir)

	filePath := filepath.Join(tempDir, "not-a-dir")
	require.NoError(t, os.WriteFile(filePath, []byte("x"), 0644))
	configPath := filepath.Join(tempDir, "config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte("cache:\n  directory: "+filePath+"\n"), 0644))

	got, err := Load(configPath)
	require.Error(t, err)
	assert.Nil(t, got)
	assert.Contains(t, err.Error(), "cache.directory must be a directory or a path that can be created")
}
