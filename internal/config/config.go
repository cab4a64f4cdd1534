// Package config loads and validates the service configuration from a YAML
// file with environment overrides.
package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gookit/validate"
	"github.com/spf13/viper"

	"resume-builder/internal/logger"
)

type ServerConfig struct {
	Host string `mapstructure:"host" validate:"required"`
	Port int    `mapstructure:"port" validate:"required|uint|min:1"`
}

type PersistenceConfig struct {
	// Driver selects the adapter: "file" or "postgres".
	Driver   string `mapstructure:"driver" validate:"required|in:file,postgres"`
	FilePath string `mapstructure:"filePath"`
	Compress bool   `mapstructure:"compress"`
	// PostgresURL is required only for the postgres driver.
	PostgresURL string `mapstructure:"postgresUrl"`
	// Key namespaces the collection slot inside the backend.
	Key string `mapstructure:"key" validate:"required"`
}

type AutosaveConfig struct {
	Delay time.Duration `mapstructure:"delay"`
}

type ExportConfig struct {
	ChromePath string        `mapstructure:"chromePath"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Persistence PersistenceConfig `mapstructure:"persistence"`
	Autosave    AutosaveConfig    `mapstructure:"autosave"`
	Export      ExportConfig      `mapstructure:"export"`
	Logger      logger.Config     `mapstructure:"logger"`
}

// Load reads the YAML file at path, applies RESUME_* environment overrides
// and validates the result.
func Load(path string) (*Config, error) {
	filename := filepath.Base(path)
	viper.AddConfigPath(filepath.Dir(path))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")

	viper.BindEnv("server.port", "RESUME_PORT")
	viper.BindEnv("persistence.driver", "RESUME_PERSISTENCE_DRIVER")
	viper.BindEnv("persistence.filePath", "RESUME_PERSISTENCE_FILE")
	viper.BindEnv("persistence.postgresUrl", "RESUME_DATABASE_URL")
	viper.BindEnv("logger.level", "RESUME_LOG_LEVEL")
	viper.BindEnv("export.chromePath", "CHROME_PATH")

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// a missing file is fine, defaults and env cover everything
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var conf Config
	if err := viper.Unmarshal(&conf); err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	if err := Validate(&conf); err != nil {
		return nil, err
	}
	return &conf, nil
}

func setDefaults() {
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 3000)
	viper.SetDefault("persistence.driver", "file")
	viper.SetDefault("persistence.filePath", "resume-data/resumes.json")
	viper.SetDefault("persistence.compress", false)
	viper.SetDefault("persistence.key", "resumeData")
	viper.SetDefault("autosave.delay", "2s")
	viper.SetDefault("export.timeout", "60s")
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.format", "json")
}

// Validate runs the rule tags plus the cross-field checks the tags cannot
// express.
func Validate(conf *Config) error {
	v := validate.Struct(conf)
	if !v.Validate() {
		return fmt.Errorf("invalid config: %s", v.Errors.One())
	}
	switch conf.Persistence.Driver {
	case "file":
		if conf.Persistence.FilePath == "" {
			return fmt.Errorf("invalid config: persistence.filePath is required for the file driver")
		}
	case "postgres":
		if conf.Persistence.PostgresURL == "" {
			return fmt.Errorf("invalid config: persistence.postgresUrl is required for the postgres driver")
		}
	}
	return nil
}
