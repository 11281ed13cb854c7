package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Logging   LoggingConfig   `yaml:"logging" envconfig:"LOGGING"`
	Export    ExportConfig    `yaml:"export" envconfig:"EXPORT"`
	Telemetry TelemetryConfig `yaml:"telemetry" envconfig:"TELEMETRY"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level     string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn warning error"`
	Output    string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=stderr stdout file both"`
	FilePath  string `yaml:"file_path" envconfig:"FILE_PATH"`
	AddSource bool   `yaml:"add_source" envconfig:"ADD_SOURCE"`
}

// ExportConfig controls how converted rows are written
type ExportConfig struct {
	Format         string `yaml:"format" envconfig:"FORMAT" validate:"oneof=auto csv xlsx"`
	LineTerminator string `yaml:"line_terminator" envconfig:"LINE_TERMINATOR" validate:"oneof=crlf lf"`
	BOMPrefix      bool   `yaml:"bom_prefix" envconfig:"BOM_PREFIX"`
	SheetName      string `yaml:"sheet_name" envconfig:"SHEET_NAME" validate:"max=31,excludesall=:\\/?*[]"`
}

// TelemetryConfig contains tracing and metrics configuration
type TelemetryConfig struct {
	Tracing         bool    `yaml:"tracing" envconfig:"TRACING"`
	TraceExporter   string  `yaml:"trace_exporter" envconfig:"TRACE_EXPORTER" validate:"oneof=stdout none"`
	SampleRatio     float64 `yaml:"sample_ratio" envconfig:"SAMPLE_RATIO" validate:"gte=0,lte=1"`
	MetricsTextfile string  `yaml:"metrics_textfile" envconfig:"METRICS_TEXTFILE"`
}

// UseCRLF reports whether delimited output ends rows with "\r\n".
func (e ExportConfig) UseCRLF() bool {
	return e.LineTerminator != LineTerminatorLF
}

// MetricsEnabled reports whether a metrics textfile should be written.
func (t TelemetryConfig) MetricsEnabled() bool {
	return t.MetricsTextfile != ""
}

// Load builds the configuration from defaults, the optional YAML file at
// configFile and WATCHLIST_* environment variables.
func Load(configFile string) (*Config, error) {
	var cfg Config

	if configFile != "" {
		path, err := ExpandPath(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve config file path: %w", err)
		}
		fileConfig, err := loadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
		cfg = *fileConfig
	}

	// Fields without a matching variable keep their file value
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// ResolveConfigFile returns the flag value, or WATCHLIST_CONFIG when the flag
// was not given.
func ResolveConfigFile(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv(ConfigFileEnv)
}

// loadFromFile loads configuration from YAML file
func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	if c.Logging.Output == "" {
		c.Logging.Output = DefaultLogOutput
	}
	if c.Logging.FilePath == "" {
		c.Logging.FilePath = DefaultLogFilePath
	}
	c.Logging.Level = strings.ToLower(c.Logging.Level)
	c.Logging.Output = strings.ToLower(c.Logging.Output)

	if c.Export.Format == "" {
		c.Export.Format = DefaultExportFormat
	}
	if c.Export.LineTerminator == "" {
		c.Export.LineTerminator = DefaultLineTerminator
	}
	if c.Export.SheetName == "" {
		c.Export.SheetName = DefaultSheetName
	}
	c.Export.Format = strings.ToLower(c.Export.Format)
	c.Export.LineTerminator = strings.ToLower(c.Export.LineTerminator)

	if c.Telemetry.TraceExporter == "" {
		c.Telemetry.TraceExporter = DefaultTraceExporter
	}
	// Zero means unset; disable tracing instead of sampling nothing.
	if c.Telemetry.SampleRatio == 0 {
		c.Telemetry.SampleRatio = DefaultSampleRatio
	}
}

// validate validates the configuration
func (c *Config) validate() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		return err
	}
	return nil
}

// Default returns default configuration
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}
