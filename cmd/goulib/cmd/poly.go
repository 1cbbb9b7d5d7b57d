package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/goulu/goulib/polynomial"
)

var (
	polyDerive    bool
	polyIntegrate bool
	polyEvalAt    string
	polyMul       string
	polyFormat    string
)

var polyCmd = &cobra.Command{
	Use:   "poly <polynomial>",
	Short: "Parse and manipulate a polynomial",
	Long: `Poly parses a polynomial in x, optionally differentiates, integrates or
multiplies it, and prints the result or its value at a point.

Examples:
  goulib poly "3x+x^2-x"
  goulib poly "x^2+2x+1" --eval 3
  goulib poly "x^3" --derive
  goulib poly "x+1" --mul "x-1"
  goulib poly "x^12+1" --format latex`,
	Args: cobra.ExactArgs(1),
	RunE: runPoly,
}

func init() {
	polyCmd.Flags().BoolVar(&polyDerive, "derive", false,
		"Differentiate the polynomial")
	polyCmd.Flags().BoolVar(&polyIntegrate, "integrate", false,
		"Integrate the polynomial (zero constant term)")
	polyCmd.Flags().StringVar(&polyEvalAt, "eval", "",
		"Evaluate at the given x instead of printing the polynomial")
	polyCmd.Flags().StringVar(&polyMul, "mul", "",
		"Multiply by another polynomial")
	polyCmd.Flags().StringVar(&polyFormat, "format", "",
		"Output format (text, go, latex), overrides config")
	rootCmd.AddCommand(polyCmd)
}

func runPoly(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	format := cfg.Output.Format
	if polyFormat != "" {
		format = polyFormat
	}

	p, err := polynomial.Parse(args[0])
	if err != nil {
		return err
	}

	if polyMul != "" {
		q, err := polynomial.Parse(polyMul)
		if err != nil {
			return err
		}
		p = p.Mul(q)
	}
	if polyDerive {
		p = p.Derivative()
	}
	if polyIntegrate {
		p = p.Integral()
	}

	if polyEvalAt != "" {
		x, err := strconv.ParseFloat(polyEvalAt, 64)
		if err != nil {
			return err
		}
		cmd.Println(formatValue(p.Eval(x), cfg.Output.Precision))
		return nil
	}

	switch format {
	case "latex":
		cmd.Println(p.Latex())
	case "go":
		cmd.Println(p.GoString())
	default:
		cmd.Println(p.String())
	}
	return nil
}
