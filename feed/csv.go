// Package feed loads OHLCV candles from CSV files into dataframes.
package feed

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/samber/lo"
	"github.com/xhit/go-str2duration/v2"

	"github.com/rodrigo-brito/ninjachart/model"
	"github.com/rodrigo-brito/ninjachart/tools/log"
)

// Source describes a CSV file of a single pair. Timeframe is the candle size
// of the file, e.g. "1h".
type Source struct {
	Pair       string
	File       string
	Timeframe  string
	HeikinAshi bool
}

// CSVFeed keeps the candles of every source, keyed by pair and timeframe.
type CSVFeed struct {
	Sources map[string]Source

	candles map[string][]model.Candle
}

// NewCSVFeed reads every source and resamples it to the target timeframe. An
// empty target keeps the source timeframe.
func NewCSVFeed(targetTimeframe string, sources ...Source) (*CSVFeed, error) {
	feed := &CSVFeed{
		Sources: make(map[string]Source),
		candles: make(map[string][]model.Candle),
	}

	for _, source := range sources {
		feed.Sources[source.Pair] = source

		file, err := os.Open(source.File)
		if err != nil {
			return nil, err
		}
		candles, err := ReadCandles(file, source.Pair, source.HeikinAshi)
		file.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", source.File, err)
		}
		log.WithField("pair", source.Pair).Debugf("loaded %d candles from %s", len(candles), source.File)

		feed.candles[key(source.Pair, source.Timeframe)] = candles
		if targetTimeframe == "" || targetTimeframe == source.Timeframe {
			continue
		}
		if err := feed.resample(source.Pair, source.Timeframe, targetTimeframe); err != nil {
			return nil, err
		}
	}

	return feed, nil
}

func key(pair, timeframe string) string {
	return fmt.Sprintf("%s--%s", pair, timeframe)
}

// ReadCandles parses CSV rows of unix seconds and prices. The header row is
// optional; without one, columns are time, open, close, low, high, volume.
// Unknown header columns are kept as candle metadata.
func ReadCandles(r io.Reader, pair string, heikinAshi bool) ([]model.Candle, error) {
	lines, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%s: %w", pair, model.ErrInsufficientData)
	}

	headerMap, additionalHeaders, hasCustomHeaders := parseHeaders(lines[0])
	if hasCustomHeaders {
		lines = lines[1:]
	}

	ha := model.NewHeikinAshi()
	candles := make([]model.Candle, 0, len(lines))
	for row, line := range lines {
		candle, err := parseCandle(line, headerMap, pair)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row+1, err)
		}

		if hasCustomHeaders && len(additionalHeaders) > 0 {
			candle.Metadata = make(map[string]float64, len(additionalHeaders))
			for _, header := range additionalHeaders {
				candle.Metadata[header], err = strconv.ParseFloat(line[headerMap[header]], 64)
				if err != nil {
					return nil, fmt.Errorf("row %d: %s: %w", row+1, header, err)
				}
			}
		}

		if heikinAshi {
			candle = candle.ToHeikinAshi(ha)
		}
		candles = append(candles, candle)
	}
	return candles, nil
}

func parseHeaders(headers []string) (index map[string]int, additional []string, ok bool) {
	headerMap := map[string]int{
		"time": 0, "open": 1, "close": 2, "low": 3, "high": 4, "volume": 5,
	}

	// a numeric first cell means there is no header row
	if _, err := strconv.Atoi(headers[0]); err == nil {
		return headerMap, additional, false
	}

	for index, h := range headers {
		if _, ok := headerMap[h]; !ok {
			additional = append(additional, h)
		}
		headerMap[h] = index
	}

	return headerMap, additional, true
}

func parseCandle(line []string, headerMap map[string]int, pair string) (model.Candle, error) {
	field := func(name string) (float64, error) {
		i := headerMap[name]
		if i >= len(line) {
			return 0, fmt.Errorf("missing column %s", name)
		}
		return strconv.ParseFloat(line[i], 64)
	}

	timestamp, err := field("time")
	if err != nil {
		return model.Candle{}, err
	}
	candle := model.Candle{
		Time:      time.Unix(int64(timestamp), 0).UTC(),
		UpdatedAt: time.Unix(int64(timestamp), 0).UTC(),
		Pair:      pair,
		Complete:  true,
	}

	for name, target := range map[string]*float64{
		"open":   &candle.Open,
		"close":  &candle.Close,
		"low":    &candle.Low,
		"high":   &candle.High,
		"volume": &candle.Volume,
	} {
		if *target, err = field(name); err != nil {
			return model.Candle{}, fmt.Errorf("%s: %w", name, err)
		}
	}
	return candle, nil
}

// Limit keeps only the candles within duration of the newest candle of each
// pair and timeframe.
func (c *CSVFeed) Limit(duration time.Duration) *CSVFeed {
	for k, candles := range c.candles {
		if len(candles) == 0 {
			continue
		}
		start := candles[len(candles)-1].Time.Add(-duration)
		c.candles[k] = lo.Filter(candles, func(candle model.Candle, _ int) bool {
			return candle.Time.After(start)
		})
	}
	return c
}

// LimitString is Limit with a duration such as "30d" or "1w".
func (c *CSVFeed) LimitString(duration string) (*CSVFeed, error) {
	d, err := str2duration.ParseDuration(duration)
	if err != nil {
		return nil, &model.ParameterError{Name: "last", Value: duration, Reason: err.Error()}
	}
	return c.Limit(d), nil
}

// Candles returns the candles of a pair in the given timeframe.
func (c CSVFeed) Candles(pair, timeframe string) []model.Candle {
	return c.candles[key(pair, timeframe)]
}

// CandlesByPeriod returns the candles within [start, end].
func (c CSVFeed) CandlesByPeriod(pair, timeframe string, start, end time.Time) []model.Candle {
	return lo.Filter(c.Candles(pair, timeframe), func(candle model.Candle, _ int) bool {
		return !candle.Time.Before(start) && !candle.Time.After(end)
	})
}

// Dataframe returns the candles of a pair as a dataframe.
func (c CSVFeed) Dataframe(pair, timeframe string) (*model.Dataframe, error) {
	candles := c.Candles(pair, timeframe)
	if len(candles) == 0 {
		return nil, fmt.Errorf("%s %s: %w", pair, timeframe, model.ErrInsufficientData)
	}
	return model.NewDataframe(pair, candles), nil
}

func isFirstCandlePeriod(t time.Time, fromTimeframe, targetTimeframe string) (bool, error) {
	fromDuration, err := str2duration.ParseDuration(fromTimeframe)
	if err != nil {
		return false, err
	}

	prev := t.Add(-fromDuration).UTC()
	return isLastCandlePeriod(prev, fromTimeframe, targetTimeframe)
}

func isLastCandlePeriod(t time.Time, fromTimeframe, targetTimeframe string) (bool, error) {
	if fromTimeframe == targetTimeframe {
		return true, nil
	}

	fromDuration, err := str2duration.ParseDuration(fromTimeframe)
	if err != nil {
		return false, err
	}

	next := t.Add(fromDuration).UTC()

	switch targetTimeframe {
	case "1m":
		return next.Second()%60 == 0, nil
	case "5m":
		return next.Minute()%5 == 0, nil
	case "10m":
		return next.Minute()%10 == 0, nil
	case "15m":
		return next.Minute()%15 == 0, nil
	case "30m":
		return next.Minute()%30 == 0, nil
	case "1h":
		return next.Minute()%60 == 0, nil
	case "2h":
		return next.Minute() == 0 && next.Hour()%2 == 0, nil
	case "4h":
		return next.Minute() == 0 && next.Hour()%4 == 0, nil
	case "12h":
		return next.Minute() == 0 && next.Hour()%12 == 0, nil
	case "1d":
		return next.Minute() == 0 && next.Hour()%24 == 0, nil
	case "1w":
		return next.Minute() == 0 && next.Hour()%24 == 0 && next.Weekday() == time.Sunday, nil
	}

	return false, &model.ParameterError{Name: "timeframe", Value: targetTimeframe, Reason: "unsupported"}
}

// resample merges source candles into target timeframe candles: the first
// open, the last close, the extreme high and low and the summed volume. A
// trailing incomplete period is dropped.
func (c *CSVFeed) resample(pair, sourceTimeframe, targetTimeframe string) error {
	source := c.candles[key(pair, sourceTimeframe)]

	var i int
	for ; i < len(source); i++ {
		if ok, err := isFirstCandlePeriod(source[i].Time, sourceTimeframe, targetTimeframe); err != nil {
			return err
		} else if ok {
			break
		}
	}

	candles := make([]model.Candle, 0, len(source))
	for ; i < len(source); i++ {
		candle := source[i]
		last, err := isLastCandlePeriod(candle.Time, sourceTimeframe, targetTimeframe)
		if err != nil {
			return err
		}
		candle.Complete = last

		lastIndex := len(candles) - 1
		if lastIndex >= 0 && !candles[lastIndex].Complete {
			candle.Time = candles[lastIndex].Time
			candle.Open = candles[lastIndex].Open
			candle.High = math.Max(candles[lastIndex].High, candle.High)
			candle.Low = math.Min(candles[lastIndex].Low, candle.Low)
			candle.Volume += candles[lastIndex].Volume
			candles[lastIndex] = candle
			continue
		}
		candles = append(candles, candle)
	}

	if len(candles) > 0 && !candles[len(candles)-1].Complete {
		candles = candles[:len(candles)-1]
	}

	c.candles[key(pair, targetTimeframe)] = candles
	return nil
}
