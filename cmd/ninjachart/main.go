package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/rodrigo-brito/ninjachart/feed"
	"github.com/rodrigo-brito/ninjachart/model"
	"github.com/rodrigo-brito/ninjachart/tools/log"
)

var inputFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    "timeframe",
		Aliases: []string{"t"},
		Usage:   "candle size of the input files, eg. 1h",
		Value:   "1h",
	},
	&cli.StringFlag{
		Name:  "resample",
		Usage: "resample candles to a larger timeframe, eg. 4h",
	},
	&cli.StringFlag{
		Name:  "last",
		Usage: "keep only the most recent window, eg. 30d",
	},
	&cli.IntFlag{
		Name:  "limit",
		Usage: "keep only the newest N candles",
	},
	&cli.BoolFlag{
		Name:  "heikin-ashi",
		Usage: "convert candles to Heikin-Ashi",
	},
}

func main() {
	app := &cli.App{
		Name:     "ninjachart",
		HelpName: "ninjachart",
		Usage:    "Chart computations over OHLCV files",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn or error",
				Value: "info",
			},
		},
		Before: func(c *cli.Context) error {
			level, err := log.ParseLevel(c.String("log-level"))
			if err != nil {
				return err
			}
			log.SetLevel(level)
			log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
			return nil
		},
		Commands: []*cli.Command{
			renderCommand(),
			indicatorCommand(),
			ticksCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// pairName derives a pair from a file name, eg. ./data/btcusdt-1h.csv -> BTCUSDT.
func pairName(path string) string {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if i := strings.IndexAny(name, "-_."); i > 0 {
		name = name[:i]
	}
	return strings.ToUpper(name)
}

// loadDataframe reads a single CSV input using the shared input flags.
func loadDataframe(c *cli.Context, path string) (*model.Dataframe, error) {
	pair := pairName(path)
	timeframe := c.String("timeframe")

	csvFeed, err := feed.NewCSVFeed(c.String("resample"), feed.Source{
		Pair:       pair,
		File:       path,
		Timeframe:  timeframe,
		HeikinAshi: c.Bool("heikin-ashi"),
	})
	if err != nil {
		return nil, err
	}

	if last := c.String("last"); last != "" {
		if csvFeed, err = csvFeed.LimitString(last); err != nil {
			return nil, err
		}
	}

	if resample := c.String("resample"); resample != "" {
		timeframe = resample
	}
	df, err := csvFeed.Dataframe(pair, timeframe)
	if err != nil {
		return nil, err
	}
	if limit := c.Int("limit"); limit > 0 {
		sample := df.Sample(limit)
		df = &sample
	}
	log.WithField("pair", pair).Infof("%d candles from %s", df.Len(), path)
	return df, nil
}
