// Package config loads studio.yaml: the studio wiring plus the preview and
// logging settings of the command line tool. Every key can be overridden by
// an environment variable with the TRENDD_ prefix, dots replaced by
// underscores (TRENDD_STUDIO_DATASET, TRENDD_LOG_LEVEL).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/spf13/viper"
	"github.com/untillpro/goutils/logger"

	"github.com/Fredasante/sanity-backend-bend-the-trendd/preview"
	"github.com/Fredasante/sanity-backend-bend-the-trendd/schema"
)

const (
	fileName = "studio"
	fileType = "yaml"
	fileExt  = "studio.yaml"

	// EnvPrefix prefixes environment overrides.
	EnvPrefix = "TRENDD"

	KeyStudioName    = "studio.name"
	KeyStudioTitle   = "studio.title"
	KeyProjectID     = "studio.project_id"
	KeyDataset       = "studio.dataset"
	KeyPlugins       = "studio.plugins"
	KeyAutoUpdates   = "studio.auto_updates"
	KeyCurrency      = "preview.currency"
	KeyTimezone      = "preview.timezone"
	KeyLanguage      = "language"
	KeyLogLevel      = "log_level"
	defaultLogLevel  = "info"
	defaultLanguage  = "en"
	defaultTimezone  = "UTC"
	defaultDirectory = "."
)

// DefaultYAML is written by WriteDefault.
const DefaultYAML = `# Bend-the-trendd studio configuration

studio:
  name: default
  title: Bend-the-trendd
  project_id: f9rxg371
  dataset: production
  plugins: [structureTool, visionTool]
  auto_updates: true

preview:
  currency: "GH₵"
  timezone: UTC

# en or fr
language: en

# error, warning, info or verbose
log_level: info
`

var logLevels = map[string]logger.TLogLevel{
	"error":   logger.LogLevelError,
	"warning": logger.LogLevelWarning,
	"info":    logger.LogLevelInfo,
	"verbose": logger.LogLevelVerbose,
}

// Config is the resolved configuration.
type Config struct {
	Studio   schema.Studio
	Currency string
	Location *time.Location
	Language string
	LogLevel string
	// File is the configuration file that was read, empty when none was
	// found.
	File string
}

// Options selects where configuration is read from.
type Options struct {
	// File is an explicit configuration file. It must exist.
	File string
	// Dirs are searched for studio.yaml when File is empty. The current
	// directory is used when Dirs is empty.
	Dirs []string
}

// Load resolves the configuration. A missing studio.yaml is not an error.
func Load(opts Options) (*Config, error) {
	v := newViper()
	if opts.File != "" {
		v.SetConfigFile(opts.File)
	} else {
		v.SetConfigName(fileName)
		v.SetConfigType(fileType)
		dirs := opts.Dirs
		if len(dirs) == 0 {
			dirs = []string{defaultDirectory}
		}
		for _, d := range dirs {
			v.AddConfigPath(d)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if opts.File != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}
	return fromViper(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	def := schema.DefaultStudio()
	v.SetDefault(KeyStudioName, def.Name)
	v.SetDefault(KeyStudioTitle, def.Title)
	v.SetDefault(KeyProjectID, def.ProjectID)
	v.SetDefault(KeyDataset, def.Dataset)
	v.SetDefault(KeyPlugins, def.Plugins)
	v.SetDefault(KeyAutoUpdates, def.AutoUpdates)
	v.SetDefault(KeyCurrency, preview.DefaultCurrency)
	v.SetDefault(KeyTimezone, defaultTimezone)
	v.SetDefault(KeyLanguage, defaultLanguage)
	v.SetDefault(KeyLogLevel, defaultLogLevel)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func fromViper(v *viper.Viper) (*Config, error) {
	loc, err := time.LoadLocation(v.GetString(KeyTimezone))
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", KeyTimezone, err)
	}
	level := strings.ToLower(v.GetString(KeyLogLevel))
	if _, ok := logLevels[level]; !ok {
		return nil, fmt.Errorf("config: %s: unknown level %q", KeyLogLevel, level)
	}
	studio := schema.DefaultStudio()
	studio.Name = v.GetString(KeyStudioName)
	studio.Title = v.GetString(KeyStudioTitle)
	studio.ProjectID = v.GetString(KeyProjectID)
	studio.Dataset = v.GetString(KeyDataset)
	studio.Plugins = v.GetStringSlice(KeyPlugins)
	studio.AutoUpdates = v.GetBool(KeyAutoUpdates)
	if studio.ProjectID == "" || studio.Dataset == "" {
		return nil, fmt.Errorf("config: %s and %s must not be empty", KeyProjectID, KeyDataset)
	}

	return &Config{
		Studio:   studio,
		Currency: v.GetString(KeyCurrency),
		Location: loc,
		Language: v.GetString(KeyLanguage),
		LogLevel: level,
		File:     v.ConfigFileUsed(),
	}, nil
}

// LoggerLevel maps LogLevel onto the logger's levels.
func (c *Config) LoggerLevel() logger.TLogLevel { return logLevels[c.LogLevel] }

// Projector returns a preview projector honoring the configured currency
// and time zone.
func (c *Config) Projector() *preview.Projector {
	return preview.New(preview.WithCurrency(c.Currency), preview.WithLocation(c.Location))
}

// WriteDefault creates dir/studio.yaml with DefaultYAML unless it exists.
// It reports whether a file was written.
func WriteDefault(dir string) (string, bool, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", false, fmt.Errorf("config: create dir: %w", err)
	}
	path := filepath.Join(dir, fileExt)
	_, err := os.Stat(path)
	if err == nil {
		return path, false, nil
	}
	if !os.IsNotExist(err) {
		return "", false, fmt.Errorf("config: stat: %w", err)
	}
	if err := os.WriteFile(path, []byte(DefaultYAML), 0o644); err != nil {
		return "", false, fmt.Errorf("config: write: %w", err)
	}
	return path, true, nil
}
