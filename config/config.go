// Package config reads chart settings from YAML.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rodrigo-brito/ninjachart/curve"
	"github.com/rodrigo-brito/ninjachart/indicator"
	"github.com/rodrigo-brito/ninjachart/model"
	"github.com/rodrigo-brito/ninjachart/plot"
	"github.com/rodrigo-brito/ninjachart/scale"
)

// TimezoneEnv overrides the configured timezone when set.
const TimezoneEnv = "NINJACHART_TIMEZONE"

type Config struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	PanelHeight float64 `yaml:"panel_height"`
	Padding     Padding `yaml:"padding"`
	Timezone    string  `yaml:"timezone"`

	X Axis `yaml:"x"`
	Y Axis `yaml:"y"`

	Interpolation string            `yaml:"interpolation"`
	Tension       float64           `yaml:"tension"`
	Stacked       bool              `yaml:"stacked"`
	Indicators    []IndicatorConfig `yaml:"indicators"`
}

type Padding struct {
	Top    float64 `yaml:"top"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
	Left   float64 `yaml:"left"`
}

type Axis struct {
	Field        string  `yaml:"field"`
	Scale        string  `yaml:"scale"`
	Base         float64 `yaml:"base"`
	Ticks        int     `yaml:"ticks"`
	ZeroBaseline bool    `yaml:"zero_baseline"`
}

// IndicatorConfig is an indicator entry. Parameters left at zero take the
// config defaults: period 20, RSI and ATR period 14, Bollinger deviations 2
// and MACD 12/26/9. The indicator package itself has no defaults; negative
// values are passed through and rejected by Spec.Validate.
type IndicatorConfig struct {
	Type       string  `yaml:"type"`
	Field      string  `yaml:"field"`
	Period     int     `yaml:"period"`
	Deviations float64 `yaml:"deviations"`
	Fast       int     `yaml:"fast"`
	Slow       int     `yaml:"slow"`
	Signal     int     `yaml:"signal"`
}

// Default returns the documented defaults: an 800x400 chart with a time x axis
// and a linear y axis over the close price.
func Default() *Config {
	return &Config{
		Width:       plot.DefaultWidth,
		Height:      plot.DefaultHeight,
		PanelHeight: plot.DefaultPanelHeight,
		Padding:     Padding{Top: 10, Right: 10, Bottom: 30, Left: 50},
		Timezone:    "UTC",
		X: Axis{
			Field: model.FieldTime,
			Scale: scale.Time.String(),
			Ticks: plot.DefaultXTicks,
		},
		Y: Axis{
			Field: model.FieldClose,
			Scale: scale.Linear.String(),
			Base:  scale.DefaultLogBase,
			Ticks: plot.DefaultYTicks,
		},
		Interpolation: curve.Linear.String(),
		Tension:       curve.DefaultTension,
	}
}

// Load reads a YAML file over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults; keys left out keep their default value.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if v := os.Getenv(TimezoneEnv); v != "" {
		cfg.Timezone = v
	}
	return cfg, nil
}

// Location resolves the configured timezone.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.UTC, nil
	}
	location, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone: %w", err)
	}
	return location, nil
}

// Specs returns the indicator specs in configuration order.
func (c Config) Specs() ([]indicator.Spec, error) {
	specs := make([]indicator.Spec, 0, len(c.Indicators))
	for i, ic := range c.Indicators {
		spec, err := ic.Spec()
		if err != nil {
			return nil, fmt.Errorf("indicators[%d]: %w", i, err)
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

// Options converts the configuration into chart options.
func (c Config) Options() ([]plot.Option, error) {
	xKind, err := scale.ParseKind(c.X.Scale)
	if err != nil {
		return nil, fmt.Errorf("x: %w", err)
	}
	yKind, err := scale.ParseKind(c.Y.Scale)
	if err != nil {
		return nil, fmt.Errorf("y: %w", err)
	}
	mode, err := curve.ParseMode(c.Interpolation)
	if err != nil {
		return nil, err
	}
	location, err := c.Location()
	if err != nil {
		return nil, err
	}
	specs, err := c.Specs()
	if err != nil {
		return nil, err
	}

	return []plot.Option{
		plot.WithSize(c.Width, c.Height),
		plot.WithPanelHeight(c.PanelHeight),
		plot.WithPadding(plot.Padding(c.Padding)),
		plot.WithXScale(xKind),
		plot.WithYScale(yKind, c.Y.Base),
		plot.WithTicks(c.X.Ticks, c.Y.Ticks),
		plot.WithInterpolation(mode),
		plot.WithTension(c.Tension),
		plot.WithStacking(c.Stacked),
		plot.WithZeroBaseline(c.Y.ZeroBaseline),
		plot.WithLocation(location),
		plot.WithIndicators(specs...),
	}, nil
}

// Chart builds a chart from the configuration.
func (c Config) Chart() (*plot.Chart, error) {
	options, err := c.Options()
	if err != nil {
		return nil, err
	}
	return plot.NewChart(options...)
}

// Spec converts the entry into an indicator spec, filling zero parameters with
// the config defaults.
func (ic IndicatorConfig) Spec() (indicator.Spec, error) {
	kind, err := indicator.ParseKind(ic.Type)
	if err != nil {
		return indicator.Spec{}, err
	}

	spec := indicator.Spec{
		Kind:       kind,
		Field:      ic.Field,
		Period:     ic.Period,
		Deviations: ic.Deviations,
		Fast:       ic.Fast,
		Slow:       ic.Slow,
		Signal:     ic.Signal,
	}
	if spec.Period == 0 {
		switch kind {
		case indicator.RSI, indicator.ATR:
			spec.Period = 14
		default:
			spec.Period = 20
		}
	}
	if kind == indicator.Bollinger && spec.Deviations == 0 {
		spec.Deviations = 2
	}
	if kind == indicator.MACD {
		spec.Period = 0
		if spec.Fast == 0 {
			spec.Fast = 12
		}
		if spec.Slow == 0 {
			spec.Slow = 26
		}
		if spec.Signal == 0 {
			spec.Signal = 9
		}
	}
	return spec, spec.Validate()
}
