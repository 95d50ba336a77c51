package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"channel-metrics/internal/logging"
	"channel-metrics/internal/metrics"
)

// Config materialises application configuration.
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Logging   logging.Config  `mapstructure:"logging"`
	Generator GeneratorConfig `mapstructure:"generator"`
	Dashboard DashboardConfig `mapstructure:"dashboard"`
	Export    ExportConfig    `mapstructure:"export"`
}

// AppConfig general metadata.
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
}

// GeneratorConfig shapes the synthetic monthly series.
type GeneratorConfig struct {
	Seed                 int64   `mapstructure:"seed"`
	StartMonth           string  `mapstructure:"start_month"`
	EndMonth             string  `mapstructure:"end_month"`
	NoiseStdDev          float64 `mapstructure:"noise_stddev"`
	SeasonalAmplitude    float64 `mapstructure:"seasonal_amplitude"`
	SeasonalPeriodMonths int     `mapstructure:"seasonal_period_months"`
	ViralEveryMonths     int     `mapstructure:"viral_every_months"`
	ViralMultiplier      float64 `mapstructure:"viral_multiplier"`
}

// DashboardConfig sets default rendering choices for the dashboard command.
type DashboardConfig struct {
	Granularity string `mapstructure:"granularity"`
	Chart       string `mapstructure:"chart"`
}

// ExportConfig sets CLI export behaviour.
type ExportConfig struct {
	MaxDataPoints int `mapstructure:"max_data_points"`
}

// Load builds configuration from file, environment, and defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("CHANNELMETRICS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, decodeHook()); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "channelmetrics")
	v.SetDefault("app.environment", "development")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetDefault("generator.seed", int64(42))
	v.SetDefault("generator.start_month", "2019-08")
	v.SetDefault("generator.end_month", "2024-09")
	v.SetDefault("generator.noise_stddev", 0.1)
	v.SetDefault("generator.seasonal_amplitude", 0.2)
	v.SetDefault("generator.seasonal_period_months", 12)
	v.SetDefault("generator.viral_every_months", 6)
	v.SetDefault("generator.viral_multiplier", 5.0)

	v.SetDefault("dashboard.granularity", "monthly")
	v.SetDefault("dashboard.chart", "line")

	v.SetDefault("export.max_data_points", 10000)
}

func decodeHook() viper.DecoderConfigOption {
	return func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "mapstructure"
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)
	}
}

// Validate performs basic sanity checks on the configuration values.
func (c *Config) Validate() error {
	start, err := metrics.ParseMonth(c.Generator.StartMonth)
	if err != nil {
		return fmt.Errorf("generator.start_month: %w", err)
	}
	end, err := metrics.ParseMonth(c.Generator.EndMonth)
	if err != nil {
		return fmt.Errorf("generator.end_month: %w", err)
	}
	if start.After(end) {
		return fmt.Errorf("generator.start_month must not be after generator.end_month")
	}
	if c.Generator.NoiseStdDev < 0 {
		return fmt.Errorf("generator.noise_stddev cannot be negative")
	}
	if c.Generator.SeasonalPeriodMonths <= 0 {
		return fmt.Errorf("generator.seasonal_period_months must be greater than zero")
	}
	if c.Generator.ViralEveryMonths <= 0 {
		return fmt.Errorf("generator.viral_every_months must be greater than zero")
	}
	if c.Generator.ViralMultiplier < 1 {
		return fmt.Errorf("generator.viral_multiplier must be at least 1")
	}
	if _, err := metrics.ParseGranularity(c.Dashboard.Granularity); err != nil {
		return fmt.Errorf("dashboard.granularity: %w", err)
	}
	if c.Export.MaxDataPoints <= 0 {
		return fmt.Errorf("export.max_data_points must be greater than zero")
	}
	return nil
}

// Window returns the configured generation window as parsed month bounds.
// Validate must have accepted the config first.
func (c *Config) Window() (time.Time, time.Time) {
	start, _ := metrics.ParseMonth(c.Generator.StartMonth)
	end, _ := metrics.ParseMonth(c.Generator.EndMonth)
	return start, end
}

// GeneratorParams converts the config section into generator parameters.
func (c *Config) GeneratorParams() metrics.GeneratorConfig {
	start, end := c.Window()
	return metrics.GeneratorConfig{
		Seed:                 c.Generator.Seed,
		StartMonth:           start,
		EndMonth:             end,
		NoiseStdDev:          c.Generator.NoiseStdDev,
		SeasonalAmplitude:    c.Generator.SeasonalAmplitude,
		SeasonalPeriodMonths: c.Generator.SeasonalPeriodMonths,
		ViralEveryMonths:     c.Generator.ViralEveryMonths,
		ViralMultiplier:      c.Generator.ViralMultiplier,
	}
}

// ResolveMaxPoints returns either the CLI override or config default.
func (c *Config) ResolveMaxPoints(override int) int {
	if override > 0 {
		return override
	}
	return c.Export.MaxDataPoints
}
