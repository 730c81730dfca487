package model

import (
	"math"
	"sort"
	"time"
)

// Dataframe stores OHLCV columns of a single instrument, aligned by index with Time.
type Dataframe struct {
	Pair string

	Close  Column[float64]
	Open   Column[float64]
	High   Column[float64]
	Low    Column[float64]
	Volume Column[float64]

	Time       []time.Time
	LastUpdate time.Time

	// extra CSV columns
	Metadata map[string]Column[float64]
}

// NewDataframe builds a dataframe from candles in the given order.
func NewDataframe(pair string, candles []Candle) *Dataframe {
	df := &Dataframe{
		Pair:     pair,
		Metadata: make(map[string]Column[float64]),
	}
	for _, candle := range candles {
		df.Append(candle)
	}
	return df
}

// Append adds a candle at the end of every column.
func (df *Dataframe) Append(candle Candle) {
	df.Close = append(df.Close, candle.Close)
	df.Open = append(df.Open, candle.Open)
	df.High = append(df.High, candle.High)
	df.Low = append(df.Low, candle.Low)
	df.Volume = append(df.Volume, candle.Volume)
	df.Time = append(df.Time, candle.Time)
	df.LastUpdate = candle.Time

	if df.Metadata == nil {
		df.Metadata = make(map[string]Column[float64])
	}
	for k, v := range candle.Metadata {
		df.Metadata[k] = append(df.Metadata[k], v)
	}
}

// Len returns the number of rows
func (df Dataframe) Len() int {
	return len(df.Time)
}

// Sample returns the newest N rows as a new Dataframe
func (df Dataframe) Sample(positions int) Dataframe {
	size := len(df.Time)
	start := size - positions
	if start <= 0 {
		return df
	}

	sample := Dataframe{
		Pair:       df.Pair,
		Close:      df.Close.LastValues(positions),
		Open:       df.Open.LastValues(positions),
		High:       df.High.LastValues(positions),
		Low:        df.Low.LastValues(positions),
		Volume:     df.Volume.LastValues(positions),
		Time:       df.Time[start:],
		LastUpdate: df.LastUpdate,
		Metadata:   make(map[string]Column[float64]),
	}

	for key := range df.Metadata {
		sample.Metadata[key] = df.Metadata[key].LastValues(positions)
	}

	return sample
}

// Series converts the dataframe into a Series keyed by time (epoch ms) whose
// points carry every OHLCV and metadata field. yField selects the designated y field.
func (df Dataframe) Series(key, yField string) Series {
	if key == "" {
		key = df.Pair
	}
	if yField == "" {
		yField = FieldClose
	}

	metaKeys := make([]string, 0, len(df.Metadata))
	for k := range df.Metadata {
		metaKeys = append(metaKeys, k)
	}
	sort.Strings(metaKeys)

	points := make([]DataPoint, len(df.Time))
	for i, t := range df.Time {
		point := DataPoint{
			FieldTime:   Millis(t),
			FieldOpen:   valueAt(df.Open, i),
			FieldHigh:   valueAt(df.High, i),
			FieldLow:    valueAt(df.Low, i),
			FieldClose:  valueAt(df.Close, i),
			FieldVolume: valueAt(df.Volume, i),
		}
		for _, k := range metaKeys {
			point[k] = valueAt(df.Metadata[k], i)
		}
		points[i] = point
	}

	return Series{
		Key:    key,
		XField: FieldTime,
		YField: yField,
		Points: points,
	}
}

func valueAt(c Column[float64], i int) float64 {
	if i >= len(c) {
		return math.NaN()
	}
	return c[i]
}

// Candle is a single OHLCV bar
type Candle struct {
	Pair      string
	Time      time.Time
	UpdatedAt time.Time
	Open      float64
	Close     float64
	Low       float64
	High      float64
	Volume    float64
	Complete  bool

	// extra CSV columns
	Metadata map[string]float64
}

// Empty reports whether the candle carries no data
func (c Candle) Empty() bool {
	return c.Pair == "" && c.Close == 0 && c.Open == 0 && c.Volume == 0
}

// HeikinAshi keeps the previous smoothed candle between conversions.
type HeikinAshi struct {
	PreviousHACandle Candle
}

func NewHeikinAshi() *HeikinAshi {
	return &HeikinAshi{}
}

// ToHeikinAshi converts a regular candle to its Heikin-Ashi form, keeping time and volume.
func (c Candle) ToHeikinAshi(ha *HeikinAshi) Candle {
	haCandle := ha.CalculateHeikinAshi(c)

	return Candle{
		Pair:      c.Pair,
		Open:      haCandle.Open,
		High:      haCandle.High,
		Low:       haCandle.Low,
		Close:     haCandle.Close,
		Volume:    c.Volume,
		Complete:  c.Complete,
		Time:      c.Time,
		UpdatedAt: c.UpdatedAt,
		Metadata:  c.Metadata,
	}
}

func (ha *HeikinAshi) CalculateHeikinAshi(c Candle) Candle {
	var hkCandle Candle

	openValue := ha.PreviousHACandle.Open
	closeValue := ha.PreviousHACandle.Close

	// first candle seeds from itself
	if ha.PreviousHACandle.Empty() {
		openValue = c.Open
		closeValue = c.Close
	}

	hkCandle.Open = (openValue + closeValue) / 2
	hkCandle.Close = (c.Open + c.High + c.Low + c.Close) / 4
	hkCandle.High = math.Max(c.High, math.Max(hkCandle.Open, hkCandle.Close))
	hkCandle.Low = math.Min(c.Low, math.Min(hkCandle.Open, hkCandle.Close))
	ha.PreviousHACandle = hkCandle

	return hkCandle
}
