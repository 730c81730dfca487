package main

import (
	"os"
	"sort"
	"strconv"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"github.com/urfave/cli/v2"

	"github.com/rodrigo-brito/ninjachart/config"
	"github.com/rodrigo-brito/ninjachart/indicator"
	"github.com/rodrigo-brito/ninjachart/model"
)

func indicatorCommand() *cli.Command {
	return &cli.Command{
		Name:     "indicator",
		HelpName: "indicator",
		Usage:    "Print an indicator series as a table",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:     "input",
				Aliases:  []string{"i"},
				Usage:    "eg. ./btc.csv",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "type",
				Usage:    "sma, ema, wma, bb, rsi, macd or atr",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "field",
				Usage: "input field, eg. close",
				Value: model.FieldClose,
			},
			&cli.IntFlag{Name: "period"},
			&cli.Float64Flag{Name: "deviations"},
			&cli.IntFlag{Name: "fast"},
			&cli.IntFlag{Name: "slow"},
			&cli.IntFlag{Name: "signal"},
			&cli.BoolFlag{
				Name:  "hist",
				Usage: "print a histogram of the indicator values",
			},
		}, inputFlags...),
		Action: printIndicator,
	}
}

func printIndicator(c *cli.Context) error {
	spec, err := config.IndicatorConfig{
		Type:       c.String("type"),
		Period:     c.Int("period"),
		Deviations: c.Float64("deviations"),
		Fast:       c.Int("fast"),
		Slow:       c.Int("slow"),
		Signal:     c.Int("signal"),
	}.Spec()
	if err != nil {
		return err
	}

	df, err := loadDataframe(c, c.String("input"))
	if err != nil {
		return err
	}

	out, err := indicator.Compute(df.Series("", c.String("field")), spec)
	if err != nil {
		return err
	}

	fields := outputFields(out)
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(append([]string{"Time"}, fields...))
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	for _, point := range out.Points {
		row := []string{"-"}
		if t, ok := point.Time(out.X()); ok {
			row[0] = t.Format("2006-01-02 15:04")
		}
		for _, field := range fields {
			value, _ := point.Value(field)
			row = append(row, strconv.FormatFloat(value, 'f', 4, 64))
		}
		table.Append(row)
	}
	table.SetFooter(append([]string{out.Key}, lo.Times(len(fields), func(int) string { return "" })...))
	table.Render()

	if c.Bool("hist") && out.Len() > 0 {
		values := lo.Map(out.Pairs(out.Y()), func(p model.Pair, _ int) float64 { return p.Value })
		hist := histogram.Hist(15, values)
		return histogram.Fprint(os.Stdout, hist, histogram.Linear(10))
	}
	return nil
}

// outputFields lists the indicator fields of a series, leading with its y field.
func outputFields(s model.Series) []string {
	if s.Len() == 0 {
		return []string{s.Y()}
	}

	fields := make([]string, 0, len(s.Points[0]))
	for field := range s.Points[0] {
		if field != s.X() && field != s.Y() {
			fields = append(fields, field)
		}
	}
	sort.Strings(fields)
	return append([]string{s.Y()}, fields...)
}
