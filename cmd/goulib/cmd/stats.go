package cmd

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goulu/goulib/render"
	"github.com/goulu/goulib/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats [values...]",
	Short: "Summarize a numeric sample",
	Long: `Stats prints descriptive statistics of a sample given as arguments or,
when no arguments are given, read from stdin one value per line.

Examples:
  goulib stats 2 4 4 4 5 5 7 9
  seq 1 100 | goulib stats`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	data, err := collectValues(cmd, args)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return fmt.Errorf("no values given")
	}

	s := stats.Summarize(data)
	prec := cfg.Output.Precision

	tbl := render.NewTable("statistic", "value")
	tbl.Append("n", strconv.Itoa(s.N))
	tbl.Append("min", formatValue(s.Min, prec))
	tbl.Append("max", formatValue(s.Max, prec))
	tbl.Append("sum", formatValue(s.Sum, prec))
	tbl.Append("mean", formatValue(s.Mean(), prec))

	if median, err := stats.Median(data); err == nil {
		tbl.Append("median", formatValue(median, prec))
	}
	if sd, err := stats.StdDev(data); err == nil {
		tbl.Append("stddev", formatValue(sd, prec))
	}

	if cfg.Output.Format == "html" {
		cmd.Println(tbl.HTML())
	} else {
		cmd.Print(tbl.String())
	}
	return nil
}

// collectValues parses floats from args or, when there are none, from the
// command's stdin, whitespace separated.
func collectValues(cmd *cobra.Command, args []string) ([]float64, error) {
	values := args
	if len(values) == 0 {
		scanner := bufio.NewScanner(cmd.InOrStdin())
		for scanner.Scan() {
			values = append(values, strings.Fields(scanner.Text())...)
		}
		if err := scanner.Err(); err != nil {
			return nil, err
		}
	}

	data := make([]float64, len(values))
	for i, v := range values {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("bad value %q: %w", v, err)
		}
		data[i] = f
	}
	return data, nil
}
