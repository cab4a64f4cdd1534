package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/internal/logger"
)

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{Host: "0.0.0.0", Port: 3000},
		Persistence: PersistenceConfig{
			Driver:   "file",
			FilePath: "resume-data/resumes.json",
			Key:      "resumeData",
		},
		Autosave: AutosaveConfig{Delay: 2 * time.Second},
		Export:   ExportConfig{Timeout: time.Minute},
		Logger:   logger.Config{Level: "info", Format: "json"},
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	assert.NoError(t, Validate(validConfig()))
}

func TestValidate_RejectsUnknownDriver(t *testing.T) {
	conf := validConfig()
	conf.Persistence.Driver = "redis"

	err := Validate(conf)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestValidate_FileDriverNeedsPath(t *testing.T) {
	conf := validConfig()
	conf.Persistence.FilePath = ""

	err := Validate(conf)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "persistence.filePath")
}

func TestValidate_PostgresDriverNeedsURL(t *testing.T) {
	conf := validConfig()
	conf.Persistence.Driver = "postgres"
	conf.Persistence.FilePath = ""

	err := Validate(conf)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "persistence.postgresUrl")

	conf.Persistence.PostgresURL = "postgres://localhost:5432/resumes"
	assert.NoError(t, Validate(conf))
}

func TestValidate_RejectsMissingKey(t *testing.T) {
	conf := validConfig()
	conf.Persistence.Key = ""

	assert.Error(t, Validate(conf))
}

func TestValidate_RejectsBadPort(t *testing.T) {
	conf := validConfig()
	conf.Server.Port = 0

	assert.Error(t, Validate(conf))
}

func TestLoad_FileWithDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 8080
persistence:
  driver: file
  filePath: /tmp/resumes.json
`), 0o644))

	conf, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 8080, conf.Server.Port)
	assert.Equal(t, "file", conf.Persistence.Driver)
	assert.Equal(t, "/tmp/resumes.json", conf.Persistence.FilePath)
	// defaults fill the rest
	assert.Equal(t, "resumeData", conf.Persistence.Key)
	assert.Equal(t, 2*time.Second, conf.Autosave.Delay)
	assert.Equal(t, time.Minute, conf.Export.Timeout)
	assert.Equal(t, "info", conf.Logger.Level)
}
