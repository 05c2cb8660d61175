package domain

import (
	"fmt"
	"strings"
)

// ProjectConfig holds project-level configuration loaded from .slicegen.yaml
// and SLICEGEN_* environment variables.
type ProjectConfig struct {
	Namespace string         `yaml:"namespace" json:"namespace"            env:"SLICEGEN_NAMESPACE"`
	Defaults  EntityDefaults `yaml:"defaults"  json:"defaults"`
	Output    OutputConfig   `yaml:"output"    json:"output"`
	Log       LogConfig      `yaml:"log"       json:"log"`
}

// EntityDefaults fill the fields an entity file leaves unset.
type EntityDefaults struct {
	ModuleName     string         `yaml:"module_name"      json:"module_name"      env:"SLICEGEN_MODULE_NAME"`
	IdType         IdType         `yaml:"id_type"          json:"id_type"          env:"SLICEGEN_ID_TYPE"`
	HasActivityLog bool           `yaml:"has_activity_log" json:"has_activity_log" env:"SLICEGEN_HAS_ACTIVITY_LOG"`
	HasCanUpdated  bool           `yaml:"has_can_updated"  json:"has_can_updated"  env:"SLICEGEN_HAS_CAN_UPDATED"`
	HasSoftDelete  bool           `yaml:"has_soft_delete"  json:"has_soft_delete"  env:"SLICEGEN_HAS_SOFT_DELETE"`
	Endpoints      []EndpointType `yaml:"endpoints"        json:"endpoints"        env:"SLICEGEN_ENDPOINTS" env-separator:","`
}

// OutputConfig controls where generated files land.
type OutputConfig struct {
	Dir string `yaml:"dir" json:"dir" env:"SLICEGEN_OUTPUT_DIR"`
}

// LogConfig holds logging settings. An empty File logs to stderr only.
type LogConfig struct {
	Level      string `yaml:"level"       json:"level"       env:"SLICEGEN_LOG_LEVEL"`
	Format     string `yaml:"format"      json:"format"      env:"SLICEGEN_LOG_FORMAT"`
	File       string `yaml:"file,omitempty" json:"file,omitempty" env:"SLICEGEN_LOG_FILE"`
	MaxSizeMB  int    `yaml:"max_size_mb" json:"max_size_mb" env:"SLICEGEN_LOG_MAX_SIZE_MB"`
	MaxBackups int    `yaml:"max_backups" json:"max_backups" env:"SLICEGEN_LOG_MAX_BACKUPS"`
}

var (
	validLogLevels  = []string{"debug", "info", "warn", "error"}
	validLogFormats = []string{"text", "json"}
)

// DefaultEndpoints is the selection used when neither the entity file nor
// the project config names one.
var DefaultEndpoints = []EndpointType{
	EndpointCreate,
	EndpointUpdate,
	EndpointDelete,
	EndpointGetByID,
	EndpointGetList,
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() ProjectConfig {
	return ProjectConfig{
		Namespace: DefaultNamespace,
		Defaults: EntityDefaults{
			ModuleName:     "Portal",
			IdType:         IdLong,
			HasActivityLog: true,
			HasCanUpdated:  true,
			HasSoftDelete:  true,
			Endpoints:      append([]EndpointType(nil), DefaultEndpoints...),
		},
		Output: OutputConfig{Dir: "generated"},
		Log: LogConfig{
			Level:      "warn",
			Format:     "text",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c ProjectConfig) Validate() error {
	if c.Defaults.IdType != "" && !c.Defaults.IdType.Valid() {
		return fmt.Errorf("unknown defaults.id_type %q (valid: long, string, Guid)", c.Defaults.IdType)
	}
	for _, e := range c.Defaults.Endpoints {
		if !e.Valid() {
			return fmt.Errorf("unknown endpoint %q in defaults.endpoints", e)
		}
	}

	if c.Log.Level != "" && !containsFold(validLogLevels, c.Log.Level) {
		return fmt.Errorf("unknown log.level %q (valid: %s)", c.Log.Level, strings.Join(validLogLevels, ", "))
	}
	if c.Log.Format != "" && !containsFold(validLogFormats, c.Log.Format) {
		return fmt.Errorf("unknown log.format %q (valid: %s)", c.Log.Format, strings.Join(validLogFormats, ", "))
	}
	if c.Log.MaxSizeMB < 0 {
		return fmt.Errorf("log.max_size_mb must be >= 0 (got %d)", c.Log.MaxSizeMB)
	}
	if c.Log.MaxBackups < 0 {
		return fmt.Errorf("log.max_backups must be >= 0 (got %d)", c.Log.MaxBackups)
	}
	return nil
}

func containsFold(list []string, v string) bool {
	for _, s := range list {
		if strings.EqualFold(s, v) {
			return true
		}
	}
	return false
}
