package internal

import (
	"fmt"
	"log/slog"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/starford/nexus/internal/analysis"
	"github.com/starford/nexus/internal/scanner"
)

// Auth modes.
const (
	AuthModeDisabled = "disabled"
	AuthModeToken    = "token"
)

// Config represents the application configuration.
type Config struct {
	App      ApplicationConfig `yaml:"app"`
	Analysis AnalysisConfig    `yaml:"analysis"`
	Auth     AuthConfig        `yaml:"auth"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return err
	}
	if err := c.Analysis.Validate(); err != nil {
		return err
	}
	return c.Auth.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
	HTTP     HTTPConfig `yaml:"http"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	return c.HTTP.Validate()
}

// HTTPConfig holds HTTP server configuration.
type HTTPConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// Address returns HTTP server address.
func (c *HTTPConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Validate validates the HTTP configuration.
func (c *HTTPConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
	)
}

// AnalysisConfig controls the Markdown analysis pipeline.
type AnalysisConfig struct {
	MaxDocuments int      `yaml:"max_documents"`
	Extensions   []string `yaml:"extensions"`
	RootConfig   string   `yaml:"root_config"`
	CacheFile    string   `yaml:"cache_file"`
	WriteCache   bool     `yaml:"write_cache"`
}

// Validate validates the analysis configuration.
func (c *AnalysisConfig) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.MaxDocuments, validation.Required, validation.Min(1)),
		validation.Field(&c.Extensions, validation.Required),
		validation.Field(&c.CacheFile, validation.When(c.WriteCache, validation.Required)),
	); err != nil {
		return err
	}
	for _, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("analysis: extension %q must start with a dot", ext)
		}
	}
	return nil
}

// Options converts the configuration into analysis service options.
func (c *AnalysisConfig) Options() analysis.Options {
	return analysis.Options{
		Scan: scanner.Options{
			MaxDocuments: c.MaxDocuments,
			Extensions:   c.Extensions,
		},
		RootConfig: c.RootConfig,
		CacheFile:  c.CacheFile,
		WriteCache: c.WriteCache,
	}
}

// AuthConfig holds authentication configuration for the HTTP shell.
//
// Mode controls how authentication is enforced:
//   - "disabled" (default): no authentication required, suitable for local use.
//   - "token": Bearer token authentication; Token must be non-empty.
type AuthConfig struct {
	Mode  string `yaml:"mode"`
	Token string `yaml:"token"`
}

// Validate validates the auth configuration.
func (c *AuthConfig) Validate() error {
	if c.Mode == "" {
		c.Mode = AuthModeDisabled
	}
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Mode, validation.Required, validation.In(AuthModeDisabled, AuthModeToken)),
	); err != nil {
		return err
	}
	if c.Mode == AuthModeToken && c.Token == "" {
		return fmt.Errorf("auth: mode is %q but token is empty", AuthModeToken)
	}
	return nil
}

// AuthEnabled returns true when authentication is active.
func (c *AuthConfig) AuthEnabled() bool {
	return c.Mode == AuthModeToken
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelInfo,
			HTTP: HTTPConfig{
				Host: "127.0.0.1",
				Port: 8080,
			},
		},
		Analysis: AnalysisConfig{
			MaxDocuments: scanner.DefaultMaxDocuments,
			Extensions:   append([]string(nil), scanner.DefaultExtensions...),
			RootConfig:   scanner.DefaultRootConfig,
			CacheFile:    analysis.DefaultCacheFile,
			WriteCache:   true,
		},
		Auth: AuthConfig{
			Mode: AuthModeDisabled,
		},
	}
}
