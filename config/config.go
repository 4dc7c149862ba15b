// Package config loads settings from defaults, an optional YAML file,
// SFTIMELINE_* environment variables and bound command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/andareed/siftly-timeline/filter"
	"github.com/andareed/siftly-timeline/timeline"
	"github.com/andareed/siftly-timeline/timerange"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

const (
	EnvPrefix = "SFTIMELINE"
	FileName  = ".sftimeline"

	KeyMaxRows       = "ingest.max_rows"
	KeyDisplayCap    = "display.cap"
	KeyTimeReference = "time.reference"
	KeyTimeZone      = "time.zone"
	KeyLogFile       = "log.file"
)

// Config is the resolved application configuration.
type Config struct {
	Ingest  IngestConfig  `mapstructure:"ingest"`
	Display DisplayConfig `mapstructure:"display"`
	Time    TimeConfig    `mapstructure:"time"`
	Log     LogConfig     `mapstructure:"log"`
}

type IngestConfig struct {
	MaxRows int `mapstructure:"max_rows"`
}

type DisplayConfig struct {
	Cap int `mapstructure:"cap"`
}

type TimeConfig struct {
	Reference string `mapstructure:"reference"` // wallclock or data
	Zone      string `mapstructure:"zone"`      // IANA name, Local or UTC
}

type LogConfig struct {
	File string `mapstructure:"file"`
}

// SetDefaults registers every default on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyMaxRows, timeline.DefaultMaxRows)
	v.SetDefault(KeyDisplayCap, filter.DefaultDisplayCap)
	v.SetDefault(KeyTimeReference, string(timerange.ReferenceWallclock))
	v.SetDefault(KeyTimeZone, "Local")
	v.SetDefault(KeyLogFile, "")
}

// Init prepares v to read cfgFile, or $HOME/.sftimeline.yaml and
// ./.sftimeline.yaml when cfgFile is empty, plus the environment.
func Init(v *viper.Viper, cfgFile string) {
	SetDefaults(v)
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(FileName)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Read loads the config file if there is one. A missing default file is
// not an error; a missing explicit file is.
func Read(v *viper.Viper) (used string, err error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return "", nil
		}
		return "", fmt.Errorf("read config: %w", err)
	}
	return v.ConfigFileUsed(), nil
}

// Load unmarshals and validates v.
func Load(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	if c.Ingest.MaxRows <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidConfig, KeyMaxRows, c.Ingest.MaxRows)
	}
	if c.Display.Cap <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidConfig, KeyDisplayCap, c.Display.Cap)
	}
	if _, err := timerange.ParseReference(c.Time.Reference); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, KeyTimeReference, err)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves Time.Zone. Empty and "Local" mean the system zone.
func (c Config) Location() (*time.Location, error) {
	switch zone := strings.TrimSpace(c.Time.Zone); {
	case zone == "" || strings.EqualFold(zone, "local"):
		return time.Local, nil
	case strings.EqualFold(zone, "utc"):
		return time.UTC, nil
	default:
		loc, err := time.LoadLocation(zone)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, KeyTimeZone, err)
		}
		return loc, nil
	}
}

// Reference returns the validated time reference.
func (c Config) Reference() timerange.Reference {
	ref, err := timerange.ParseReference(c.Time.Reference)
	if err != nil {
		return timerange.ReferenceWallclock
	}
	return ref
}
