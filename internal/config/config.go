package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/KaramelBytes/carsales-cli/internal/analysis"
)

// ErrInvalid marks a configuration value that cannot be used.
var ErrInvalid = errors.New("invalid config")

// Global configuration structure.
type Global struct {
	InputPath string `mapstructure:"input_path" yaml:"input_path"`
	OutputDir string `mapstructure:"output_dir" yaml:"output_dir"`
	SheetName string `mapstructure:"sheet_name" yaml:"sheet_name"`
	TopN      int    `mapstructure:"top_n" yaml:"top_n"`
	Workers   int    `mapstructure:"workers" yaml:"workers"`

	NumericColumns    []string `mapstructure:"numeric_columns" yaml:"numeric_columns"`
	ManufacturerField string   `mapstructure:"manufacturer_field" yaml:"manufacturer_field"`
	VehicleTypeField  string   `mapstructure:"vehicle_type_field" yaml:"vehicle_type_field"`
	SalesField        string   `mapstructure:"sales_field" yaml:"sales_field"`
	PriceField        string   `mapstructure:"price_field" yaml:"price_field"`
	HorsepowerField   string   `mapstructure:"horsepower_field" yaml:"horsepower_field"`

	// Logging
	LogLevel  string `mapstructure:"log_level" yaml:"log_level"`
	LogFormat string `mapstructure:"log_format" yaml:"log_format"`
}

// DefaultPath returns ~/.carsales/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".carsales", "config.yaml"), nil
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.carsales/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	path := cfgFile
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (applied by the caller) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("CARSALES")
	v.AutomaticEnv()

	def := analysis.DefaultOptions()
	v.SetDefault("input_path", filepath.Join("projects", "car_sales_analysis", "Car_sales_row_data.csv"))
	v.SetDefault("output_dir", filepath.Join("projects", "car_sales_analysis", "report"))
	v.SetDefault("sheet_name", "")
	v.SetDefault("top_n", def.TopN)
	v.SetDefault("workers", def.Workers)
	v.SetDefault("numeric_columns", def.NumericColumns)
	v.SetDefault("manufacturer_field", def.Fields.Manufacturer)
	v.SetDefault("vehicle_type_field", def.Fields.VehicleType)
	v.SetDefault("sales_field", def.Fields.Sales)
	v.SetDefault("price_field", def.Fields.Price)
	v.SetDefault("horsepower_field", def.Fields.Horsepower)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		v.AddConfigPath(filepath.Join(home, ".carsales"))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// optional read
		_ = v.ReadInConfig()
	}

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}

// Validate reports the first unusable setting.
func (c *Global) Validate() error {
	if strings.TrimSpace(c.InputPath) == "" {
		return fmt.Errorf("%w: input_path is empty", ErrInvalid)
	}
	if strings.TrimSpace(c.OutputDir) == "" {
		return fmt.Errorf("%w: output_dir is empty", ErrInvalid)
	}
	if c.TopN < 1 {
		return fmt.Errorf("%w: top_n must be >= 1, got %d", ErrInvalid, c.TopN)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be >= 1, got %d", ErrInvalid, c.Workers)
	}
	if len(c.NumericColumns) == 0 {
		return fmt.Errorf("%w: numeric_columns is empty", ErrInvalid)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: log_level %q (use debug|info|warn|error)", ErrInvalid, c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log_format %q (use text|json)", ErrInvalid, c.LogFormat)
	}
	return nil
}

// AnalysisOptions maps the configuration onto analyzer options.
func (c *Global) AnalysisOptions() analysis.Options {
	cols := make([]string, len(c.NumericColumns))
	copy(cols, c.NumericColumns)
	return analysis.Options{
		NumericColumns: cols,
		Fields: analysis.Fields{
			Manufacturer: c.ManufacturerField,
			VehicleType:  c.VehicleTypeField,
			Sales:        c.SalesField,
			Price:        c.PriceField,
			Horsepower:   c.HorsepowerField,
		},
		TopN:    c.TopN,
		Workers: c.Workers,
	}
}
