// Package ninjachart computes the numeric geometry of financial charts: scales,
// tick plans, interpolated curves, technical indicators and stacked series.
// Drawing is left to a Renderer; see the plot package.
package ninjachart

import (
	"github.com/rodrigo-brito/ninjachart/config"
	"github.com/rodrigo-brito/ninjachart/model"
	"github.com/rodrigo-brito/ninjachart/plot"
)

// New builds a chart from a configuration. A nil configuration uses the defaults.
func New(cfg *config.Config) (*plot.Chart, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	return cfg.Chart()
}

// Render is a shortcut to build a chart and render the series with it.
func Render(cfg *config.Config, series ...model.Series) (*plot.Frame, error) {
	chart, err := New(cfg)
	if err != nil {
		return nil, err
	}
	return chart.Render(series...)
}
