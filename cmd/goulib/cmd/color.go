package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goulu/goulib/colors"
	"github.com/goulu/goulib/render"
)

var (
	colorTo    string
	colorSteps int
)

var colorCmd = &cobra.Command{
	Use:   "color <hex>",
	Short: "Convert a color between color spaces",
	Long: `Color prints a color in RGB, HSV, Lab and CMYK, with a terminal swatch
and its complement. With --to and --steps it prints a gradient between
two colors instead.

Examples:
  goulib color "#ff8000"
  goulib color "#ff0000" --to "#0000ff" --steps 7`,
	Args: cobra.ExactArgs(1),
	RunE: runColor,
}

func init() {
	colorCmd.Flags().StringVar(&colorTo, "to", "",
		"End color for a gradient")
	colorCmd.Flags().IntVar(&colorSteps, "steps", 5,
		"Number of gradient steps")
	rootCmd.AddCommand(colorCmd)
}

func runColor(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	prec := cfg.Output.Precision

	c, err := colors.FromHex(args[0])
	if err != nil {
		return err
	}

	if colorTo != "" {
		end, err := colors.FromHex(colorTo)
		if err != nil {
			return err
		}
		if colorSteps < 2 {
			return fmt.Errorf("--steps must be at least 2")
		}
		for _, g := range colors.Range(colorSteps, c, end) {
			cmd.Println(render.Swatch(g.Hex()))
		}
		return nil
	}

	cmd.Println(render.Swatch(c.Hex()))

	r, g, b := c.RGB255()
	h, s, v := c.HSV()
	l, a, bb := c.Lab()
	cy, m, y, k := c.CMYK()

	tbl := render.NewTable("space", "value")
	tbl.Append("hex", c.Hex())
	tbl.Append("rgb", fmt.Sprintf("%d, %d, %d", r, g, b))
	tbl.Append("hsv", joinValues(prec, h, s, v))
	tbl.Append("lab", joinValues(prec, l, a, bb))
	tbl.Append("cmyk", joinValues(prec, cy, m, y, k))
	tbl.Append("complement", c.Complement().Hex())
	cmd.Print(tbl.String())
	return nil
}

func joinValues(precision int, vs ...float64) string {
	out := ""
	for i, v := range vs {
		if i > 0 {
			out += ", "
		}
		out += formatValue(v, min(precision, 4))
	}
	return out
}
