// Package config resolves gridclock settings from defaults, a TOML file,
// GRIDCLOCK_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to environment overrides, e.g. GRIDCLOCK_TICK.
const EnvPrefix = "GRIDCLOCK"

// Viper keys.
const (
	KeyTick                 = "tick"
	KeyLogFile              = "log.file"
	KeyLogLevel             = "log.level"
	KeyLayoutColumns        = "layout.columns"
	KeyLayoutRows           = "layout.rows"
	KeyLayoutColumnGap      = "layout.column_gap"
	KeyLayoutRowGap         = "layout.row_gap"
	KeyLayoutGutter         = "layout.gutter"
	KeyTelemetryEndpoint    = "telemetry.endpoint"
	KeyTelemetryServiceName = "telemetry.service_name"
	KeyTelemetryInsecure    = "telemetry.insecure"
)

// Config is the resolved configuration.
type Config struct {
	Tick      time.Duration
	LogFile   string
	LogLevel  string
	Layout    Layout
	Telemetry Telemetry
}

// Layout holds grid track sizes in terminal cells.
type Layout struct {
	Columns   []int
	Rows      []int
	ColumnGap int
	RowGap    int
	Gutter    int
}

// Telemetry configures OTLP trace export. An empty Endpoint disables export.
type Telemetry struct {
	Endpoint    string
	ServiceName string
	Insecure    bool
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyTick, time.Second)
	v.SetDefault(KeyLogFile, "gridclock.log")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLayoutColumns, []int{10, 10})
	v.SetDefault(KeyLayoutRows, []int{4, 4, 5, 5})
	v.SetDefault(KeyLayoutColumnGap, 2)
	v.SetDefault(KeyLayoutRowGap, 1)
	v.SetDefault(KeyLayoutGutter, 1)
	v.SetDefault(KeyTelemetryServiceName, "gridclock")
	v.SetDefault(KeyTelemetryInsecure, true)
}

// BindFlags binds the command-line flags that override config keys.
// Flags missing from fs are skipped.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for flag, key := range map[string]string{
		"tick":          KeyTick,
		"log-file":      KeyLogFile,
		"log-level":     KeyLogLevel,
		"otlp-endpoint": KeyTelemetryEndpoint,
	} {
		f := fs.Lookup(flag)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", flag, err)
		}
	}
	return nil
}

// Load reads the config file and environment into v and returns the
// validated Config. cfgFile overrides the search for .gridclock.toml in
// $HOME and the working directory. A missing default file is not an error.
func Load(v *viper.Viper, cfgFile string) (Config, error) {
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("toml")
		v.SetConfigName(".gridclock")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// Standard OpenTelemetry variables apply when no GRIDCLOCK_ override is set.
	if err := v.BindEnv(KeyTelemetryEndpoint, EnvPrefix+"_TELEMETRY_ENDPOINT", "OTEL_EXPORTER_OTLP_ENDPOINT"); err != nil {
		return Config{}, fmt.Errorf("bind env: %w", err)
	}
	if err := v.BindEnv(KeyTelemetryServiceName, EnvPrefix+"_TELEMETRY_SERVICE_NAME", "OTEL_SERVICE_NAME"); err != nil {
		return Config{}, fmt.Errorf("bind env: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Config{
		Tick:     v.GetDuration(KeyTick),
		LogFile:  v.GetString(KeyLogFile),
		LogLevel: v.GetString(KeyLogLevel),
		Layout: Layout{
			Columns:   v.GetIntSlice(KeyLayoutColumns),
			Rows:      v.GetIntSlice(KeyLayoutRows),
			ColumnGap: v.GetInt(KeyLayoutColumnGap),
			RowGap:    v.GetInt(KeyLayoutRowGap),
			Gutter:    v.GetInt(KeyLayoutGutter),
		},
		Telemetry: Telemetry{
			Endpoint:    v.GetString(KeyTelemetryEndpoint),
			ServiceName: v.GetString(KeyTelemetryServiceName),
			Insecure:    v.GetBool(KeyTelemetryInsecure),
		},
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Tick <= 0 {
		return fmt.Errorf("invalid %s %v: must be positive", KeyTick, c.Tick)
	}
	if c.LogFile == "" {
		return fmt.Errorf("invalid %s: must not be empty", KeyLogFile)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid %s %q: %w", KeyLogLevel, c.LogLevel, err)
	}
	if err := validateTracks(KeyLayoutColumns, c.Layout.Columns); err != nil {
		return err
	}
	if err := validateTracks(KeyLayoutRows, c.Layout.Rows); err != nil {
		return err
	}
	// The button row is the third track; two buttons need two columns.
	if len(c.Layout.Columns) < 2 || len(c.Layout.Rows) < 4 {
		return fmt.Errorf("invalid layout: need at least 2 columns and 4 rows, got %d and %d",
			len(c.Layout.Columns), len(c.Layout.Rows))
	}
	for key, n := range map[string]int{
		KeyLayoutColumnGap: c.Layout.ColumnGap,
		KeyLayoutRowGap:    c.Layout.RowGap,
		KeyLayoutGutter:    c.Layout.Gutter,
	} {
		if n < 0 {
			return fmt.Errorf("invalid %s %d: must not be negative", key, n)
		}
	}
	return nil
}

func validateTracks(key string, tracks []int) error {
	if len(tracks) == 0 {
		return fmt.Errorf("invalid %s: must not be empty", key)
	}
	for i, t := range tracks {
		if t <= 0 {
			return fmt.Errorf("invalid %s[%d] %d: must be positive", key, i, t)
		}
	}
	return nil
}

// fileConfig mirrors the TOML file layout.
type fileConfig struct {
	Tick string `toml:"tick"`
	Log  struct {
		File  string `toml:"file"`
		Level string `toml:"level"`
	} `toml:"log"`
	Layout struct {
		Columns   []int `toml:"columns"`
		Rows      []int `toml:"rows"`
		ColumnGap int   `toml:"column_gap"`
		RowGap    int   `toml:"row_gap"`
		Gutter    int   `toml:"gutter"`
	} `toml:"layout"`
	Telemetry struct {
		Endpoint    string `toml:"endpoint"`
		ServiceName string `toml:"service_name"`
		Insecure    bool   `toml:"insecure"`
	} `toml:"telemetry"`
}

// MarshalTOML encodes c in the config file format.
func (c Config) MarshalTOML() ([]byte, error) {
	var f fileConfig
	f.Tick = c.Tick.String()
	f.Log.File = c.LogFile
	f.Log.Level = c.LogLevel
	f.Layout.Columns = c.Layout.Columns
	f.Layout.Rows = c.Layout.Rows
	f.Layout.ColumnGap = c.Layout.ColumnGap
	f.Layout.RowGap = c.Layout.RowGap
	f.Layout.Gutter = c.Layout.Gutter
	f.Telemetry.Endpoint = c.Telemetry.Endpoint
	f.Telemetry.ServiceName = c.Telemetry.ServiceName
	f.Telemetry.Insecure = c.Telemetry.Insecure
	return toml.Marshal(f)
}
