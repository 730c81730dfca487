package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v2"

	"github.com/rodrigo-brito/ninjachart/config"
	"github.com/rodrigo-brito/ninjachart/model"
	"github.com/rodrigo-brito/ninjachart/tools/log"
)

func renderCommand() *cli.Command {
	return &cli.Command{
		Name:     "render",
		HelpName: "render",
		Usage:    "Compute a chart frame and write it as JSON",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "eg. ./chart.yml",
			},
			&cli.StringSliceFlag{
				Name:     "input",
				Aliases:  []string{"i"},
				Usage:    "eg. ./btc.csv (repeatable)",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "eg. ./frame.json (default stdout)",
			},
		}, inputFlags...),
		Action: render,
	}
}

func render(c *cli.Context) error {
	cfg := config.Default()
	if path := c.String("config"); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return err
		}
	}

	chart, err := cfg.Chart()
	if err != nil {
		return fmt.Errorf("chart: %w", err)
	}

	inputs := c.StringSlice("input")
	progressBar := progressbar.Default(int64(len(inputs)), "loading")
	series := make([]model.Series, 0, len(inputs))
	for _, input := range inputs {
		df, err := loadDataframe(c, input)
		if err != nil {
			return err
		}

		s := df.Series("", cfg.Y.Field)
		if cfg.X.Field != "" {
			s.XField = cfg.X.Field
		}
		series = append(series, s)
		log.CheckErr(log.WarnLevel, progressBar.Add(1))
	}

	frame, err := chart.Render(series...)
	if err != nil {
		return err
	}

	var output io.Writer = os.Stdout
	if path := c.String("output"); path != "" {
		file, err := os.Create(path)
		if err != nil {
			return err
		}
		defer file.Close()
		output = file
	}

	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(frame); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}

	log.WithField("series", len(frame.Series)).Infof("rendered %d indicators", len(frame.Indicators))
	return nil
}
