package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultAreaID is the hh.ru id of Moscow, used when a region name is not found
const DefaultAreaID = 1

// Config holds application configuration
type Config struct {
	API     APIConfig     `yaml:"api"`
	Search  SearchConfig  `yaml:"search"`
	Storage StorageConfig `yaml:"storage"`
	Logging LoggingConfig `yaml:"logging"`
}

type APIConfig struct {
	BaseURL           string        `yaml:"base_url"`
	UserAgent         string        `yaml:"user_agent"`
	Timeout           time.Duration `yaml:"timeout"`
	RequestsPerSecond float64       `yaml:"requests_per_second"`
	ProxyURL          string        `yaml:"proxy_url"`
}

type SearchConfig struct {
	PerPage        int  `yaml:"per_page"`
	MaxPages       int  `yaml:"max_pages"`
	OnlyWithSalary bool `yaml:"only_with_salary"`
	DefaultAreaID  int  `yaml:"default_area_id"`
}

type StorageConfig struct {
	DataDir   string `yaml:"data_dir"`
	AreasFile string `yaml:"areas_file"`
	FileName  string `yaml:"file_name"`
}

type LoggingConfig struct {
	Dir        string `yaml:"dir"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
}

// Default returns the configuration used when no config file exists
func Default() Config {
	return Config{
		API: APIConfig{
			BaseURL:           "https://api.hh.ru",
			UserAgent:         "HH-User-Agent",
			Timeout:           30 * time.Second,
			RequestsPerSecond: 5,
		},
		Search: SearchConfig{
			PerPage:        100,
			MaxPages:       20,
			OnlyWithSalary: true,
			DefaultAreaID:  DefaultAreaID,
		},
		Storage: StorageConfig{
			DataDir:   "data",
			AreasFile: "data/areas.json",
			FileName:  "vacancies",
		},
		Logging: LoggingConfig{
			Dir:        "logs",
			MaxSizeMB:  32,
			MaxBackups: 2,
		},
	}
}

// Load reads the yaml config at path on top of the defaults, then applies
// .env and environment overrides. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist):
			// defaults
		default:
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	// .env is optional; real environment variables win over it
	_ = godotenv.Load()
	applyEnv(&cfg)

	if err := Validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.API.BaseURL = getEnvOrDefault("HH_API_URL", cfg.API.BaseURL)
	cfg.API.UserAgent = getEnvOrDefault("HH_USER_AGENT", cfg.API.UserAgent)
	cfg.API.ProxyURL = getEnvOrDefault("HH_PROXY_URL", cfg.API.ProxyURL)
	cfg.Storage.DataDir = getEnvOrDefault("VACANCIES_DATA_DIR", cfg.Storage.DataDir)
	cfg.Storage.AreasFile = getEnvOrDefault("VACANCIES_AREAS_FILE", cfg.Storage.AreasFile)
	cfg.Logging.Dir = getEnvOrDefault("VACANCIES_LOG_DIR", cfg.Logging.Dir)
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// Validate reports every invalid setting at once
func Validate(cfg Config) error {
	var errs []string

	if cfg.API.BaseURL == "" {
		errs = append(errs, "api.base_url is required")
	}
	if cfg.API.Timeout < 0 {
		errs = append(errs, "api.timeout must be >= 0")
	}
	if cfg.API.RequestsPerSecond < 0 {
		errs = append(errs, "api.requests_per_second must be >= 0")
	}
	if cfg.Search.PerPage <= 0 || cfg.Search.PerPage > 100 {
		errs = append(errs, "search.per_page must be 1..100")
	}
	if cfg.Search.MaxPages <= 0 {
		errs = append(errs, "search.max_pages must be > 0")
	}
	if cfg.Search.DefaultAreaID <= 0 {
		errs = append(errs, "search.default_area_id must be > 0")
	}
	if cfg.Storage.DataDir == "" {
		errs = append(errs, "storage.data_dir is required")
	}
	if cfg.Storage.FileName == "" {
		errs = append(errs, "storage.file_name is required")
	}
	if cfg.Logging.MaxSizeMB < 0 || cfg.Logging.MaxBackups < 0 {
		errs = append(errs, "logging.max_size_mb and logging.max_backups must be >= 0")
	}

	if len(errs) > 0 {
		return errors.New("config validation failed:\n- " + strings.Join(errs, "\n- "))
	}
	return nil
}
