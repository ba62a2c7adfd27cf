package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const stateDir = ".doccomment"

// Config holds all configuration for the documentation generator.
type Config struct {
	Project ProjectConfig `yaml:"project"`
	Source  SourceConfig  `yaml:"source"`
	Output  OutputConfig  `yaml:"output"`
	Build   BuildConfig   `yaml:"build"`
	Cache   CacheConfig   `yaml:"cache"`
	Serve   ServeConfig   `yaml:"serve"`
	Logging LoggingConfig `yaml:"logging"`
}

// ProjectConfig overrides the name and version found in package.json.
type ProjectConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

// SourceConfig selects the files documentation is extracted from.
type SourceConfig struct {
	Dir       string   `yaml:"dir"`
	Includes  []string `yaml:"includes"`
	Excludes  []string `yaml:"excludes"`
	Recursive bool     `yaml:"recursive"`
}

// OutputConfig holds output configuration.
type OutputConfig struct {
	Format            string `yaml:"format"` // "md", "html", "json"
	Out               string `yaml:"out"`
	Intermediary      string `yaml:"intermediary"`
	WriteIntermediary bool   `yaml:"write_intermediary"`
	Footer            string `yaml:"footer"`
}

// BuildConfig holds parsing configuration.
type BuildConfig struct {
	Workers int `yaml:"workers"`
}

// CacheConfig holds record and unit cache configuration.
type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Records int           `yaml:"records"`
	TTL     time.Duration `yaml:"ttl"`
}

// ServeConfig holds preview server configuration.
type ServeConfig struct {
	Addr string `yaml:"addr"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "text" or "json"
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Source: SourceConfig{
			Dir:       "src",
			Includes:  []string{"**/*.js"},
			Excludes:  []string{"**/node_modules/**", "**/.git/**", "**/*.min.js"},
			Recursive: false,
		},
		Output: OutputConfig{
			Format:       "md",
			Out:          "API.md",
			Intermediary: "doccomments.json",
		},
		Build: BuildConfig{
			Workers: 4,
		},
		Cache: CacheConfig{
			Enabled: true,
			Records: 1024,
			TTL:     10 * time.Minute,
		},
		Serve: ServeConfig{
			Addr: "127.0.0.1:8080",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for doccomment.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "doccomment.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, stateDir, "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// ApplyEnv overrides the project identity from DOCCOMMENT_NAME and
// DOCCOMMENT_VERSION when they are set.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("DOCCOMMENT_NAME"); v != "" {
		c.Project.Name = v
	}
	if v := os.Getenv("DOCCOMMENT_VERSION"); v != "" {
		c.Project.Version = v
	}
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// CacheDBPath returns the path to the unit cache database.
func CacheDBPath(dir string) string {
	return filepath.Join(dir, stateDir, "cache.db")
}

// EnsureStateDir ensures the .doccomment directory exists.
func EnsureStateDir(dir string) error {
	return os.MkdirAll(filepath.Join(dir, stateDir), 0755)
}
