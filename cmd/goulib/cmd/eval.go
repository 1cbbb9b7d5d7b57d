package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goulu/goulib/expr"
)

var (
	evalVars   []string
	evalFormat string
)

var evalCmd = &cobra.Command{
	Use:   "eval <expression>",
	Short: "Evaluate or render a symbolic expression",
	Long: `Eval parses an expression, binds variables given with --var, and prints
its value. If free variables remain the expression is printed
symbolically, in the format chosen with --format.

Examples:
  goulib eval "3*x^2 + sin(pi*x)" --var x=0.5
  goulib eval "x^2/(x+1)" --format latex
  goulib eval "2^10"`,
	Args: cobra.ExactArgs(1),
	RunE: runEval,
}

func init() {
	evalCmd.Flags().StringArrayVar(&evalVars, "var", nil,
		"Variable binding as name=value, repeatable")
	evalCmd.Flags().StringVar(&evalFormat, "format", "",
		"Symbolic output format (text, go, latex), overrides config")
	rootCmd.AddCommand(evalCmd)
}

func runEval(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	format := cfg.Output.Format
	if evalFormat != "" {
		format = evalFormat
	}

	e, err := expr.Parse(args[0])
	if err != nil {
		return err
	}

	vars, err := parseBindings(evalVars)
	if err != nil {
		return err
	}

	v, err := e.Eval(vars)
	switch {
	case err == nil:
		cmd.Println(formatValue(v, cfg.Output.Precision))
		return nil
	case errors.Is(err, expr.ErrUnknownName):
		// free variables remain, render symbolically
		bound := e.Bind(vars)
		switch format {
		case "latex":
			cmd.Println(bound.Latex())
		case "go":
			cmd.Println(bound.GoString())
		default:
			cmd.Println(bound.String())
		}
		return nil
	default:
		return err
	}
}

func parseBindings(specs []string) (map[string]float64, error) {
	vars := make(map[string]float64, len(specs))
	for _, spec := range specs {
		name, value, ok := strings.Cut(spec, "=")
		if !ok {
			return nil, fmt.Errorf("bad binding %q, want name=value", spec)
		}
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("bad binding %q: %w", spec, err)
		}
		vars[name] = v
	}
	return vars, nil
}
