package ninjachart

import (
	"github.com/rodrigo-brito/ninjachart/model"
	"github.com/rodrigo-brito/ninjachart/plot"
)

type (
	Chart     = plot.Chart
	Frame     = plot.Frame
	Renderer  = plot.Renderer
	Dataframe = model.Dataframe
	Candle    = model.Candle
	Series    = model.Series
	DataPoint = model.DataPoint
)

var (
	ErrInvalidDomain    = model.ErrInvalidDomain
	ErrInvalidParameter = model.ErrInvalidParameter
	ErrInsufficientData = model.ErrInsufficientData
)
