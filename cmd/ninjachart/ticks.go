package main

import (
	"fmt"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"

	"github.com/rodrigo-brito/ninjachart/scale"
	"github.com/rodrigo-brito/ninjachart/tick"
)

func ticksCommand() *cli.Command {
	return &cli.Command{
		Name:     "ticks",
		HelpName: "ticks",
		Usage:    "Print the tick plan of a numeric or time range",
		Flags: []cli.Flag{
			&cli.Float64Flag{Name: "min"},
			&cli.Float64Flag{Name: "max"},
			&cli.IntFlag{
				Name:  "count",
				Usage: "requested number of intervals",
				Value: 10,
			},
			&cli.BoolFlag{
				Name:  "log",
				Usage: "plan ticks for a log scale",
			},
			&cli.Float64Flag{
				Name:  "base",
				Value: scale.DefaultLogBase,
			},
			&cli.TimestampFlag{
				Name:   "start",
				Usage:  "eg. 2021-12-01",
				Layout: "2006-01-02",
			},
			&cli.TimestampFlag{
				Name:   "end",
				Usage:  "eg. 2021-12-31",
				Layout: "2006-01-02",
			},
			&cli.StringFlag{
				Name:  "timezone",
				Value: "UTC",
			},
		},
		Action: printTicks,
	}
}

func printTicks(c *cli.Context) error {
	var (
		s   *scale.Scale
		err error
	)

	start, end := c.Timestamp("start"), c.Timestamp("end")
	switch {
	case start != nil && end != nil:
		s = scale.NewTime(*start, *end, scale.Pair{0, 1})
	case start != nil || end != nil:
		return fmt.Errorf("start and end must be informed together")
	case c.Bool("log"):
		if s, err = scale.NewLog(scale.Pair{c.Float64("min"), c.Float64("max")}, scale.Pair{0, 1}, c.Float64("base")); err != nil {
			return err
		}
	default:
		s = scale.NewLinear(scale.Pair{c.Float64("min"), c.Float64("max")}, scale.Pair{0, 1})
	}

	location, err := time.LoadLocation(c.String("timezone"))
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Value", "Unit", "Label"})
	for _, t := range tick.ForScale(s, c.Int("count"), tick.WithLocation(location)) {
		unit := ""
		if t.Unit != 0 {
			unit = t.Unit.String()
		}
		table.Append([]string{fmt.Sprint(t.Value), unit, t.Label})
	}
	table.Render()
	return nil
}
