package cmd

import (
	"fmt"
	"iter"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/goulu/goulib/expr"
	"github.com/goulu/goulib/internal/logger"
	"github.com/goulu/goulib/seq"
)

var (
	cycleIterate string
	cycleSeed    float64
)

var cycleCmd = &cobra.Command{
	Use:   "cycle [values...]",
	Short: "Detect a cycle in a sequence",
	Long: `Cycle finds the start and length of a cycle in a sequence: an explicit
list of values given as arguments or read from stdin, or the orbit of an
iterated function.

Examples:
  goulib cycle 1 2 3 4 5 4 5 4 5
  seq 1 5 | goulib cycle
  goulib cycle --iterate "(3*x+1) % 11" --seed 1
  goulib cycle --iterate "x^2 % 97" --seed 2 --algorithm floyd`,
	RunE: runCycle,
}

func init() {
	cycleCmd.Flags().StringVar(&cycleIterate, "iterate", "",
		"Expression in x to iterate instead of an explicit list")
	cycleCmd.Flags().Float64Var(&cycleSeed, "seed", 0,
		"Initial value for --iterate")
	rootCmd.AddCommand(cycleCmd)
}

func runCycle(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	var source iter.Seq[float64]
	if cycleIterate != "" {
		e, err := expr.Parse(cycleIterate)
		if err != nil {
			return err
		}
		if _, err := e.Eval(map[string]float64{"x": cycleSeed}); err != nil {
			return fmt.Errorf("cannot iterate %q: %w", cycleIterate, err)
		}
		f := func(x float64) float64 {
			v, _ := e.Eval(map[string]float64{"x": x})
			return v
		}
		source = seq.Iterate(f, cycleSeed)
	} else {
		values, err := collectValues(cmd, args)
		if err != nil {
			return err
		}
		if len(values) == 0 {
			return fmt.Errorf("no values given")
		}
		source = slices.Values(values)
	}

	clog := log.WithAlgorithm(cfg.Cycle.Algorithm)
	if cycleIterate != "" {
		clog = clog.WithInput(cycleIterate)
	}
	clog.Debugw("detecting cycle", "limit", cfg.Cycle.Limit)

	detect := seq.Brent[float64]
	if cfg.Cycle.Algorithm == "floyd" {
		detect = seq.Floyd[float64]
	}

	cycle, found := detect(source, cfg.Cycle.Limit)
	if !found {
		cmd.Printf("no cycle found within %d elements\n", cfg.Cycle.Limit)
		return nil
	}

	cmd.Printf("cycle found: start=%d length=%d\n", cycle.Start, cycle.Length)

	period := slices.Collect(seq.Take(seq.Drop(source, cycle.Start), cycle.Length))
	cmd.Printf("period:")
	for _, v := range period {
		cmd.Printf(" %s", formatValue(v, cfg.Output.Precision))
	}
	cmd.Println()
	return nil
}

func formatValue(v float64, precision int) string {
	if precision <= 0 {
		precision = -1
	}
	return strconv.FormatFloat(v, 'g', precision, 64)
}
