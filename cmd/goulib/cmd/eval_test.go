package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetEvalFlags() {
	evalVars = nil
	evalFormat = ""
	cfgFile = "/nonexistent/goulib.yaml"
}

func TestEvalCommandStructure(t *testing.T) {
	assert.NotNil(t, evalCmd)
	assert.Equal(t, "eval <expression>", evalCmd.Use)
	assert.NotNil(t, evalCmd.RunE)
}

func TestRunEvalConstant(t *testing.T) {
	resetEvalFlags()

	var buf bytes.Buffer
	evalCmd.SetOut(&buf)

	err := runEval(evalCmd, []string{"2^10"})
	require.NoError(t, err)
	assert.Equal(t, "1024", strings.TrimSpace(buf.String()))
}

func TestRunEvalWithVars(t *testing.T) {
	resetEvalFlags()
	evalVars = []string{"x=2"}

	var buf bytes.Buffer
	evalCmd.SetOut(&buf)

	err := runEval(evalCmd, []string{"3*x^2"})
	require.NoError(t, err)
	assert.Equal(t, "12", strings.TrimSpace(buf.String()))
}

func TestRunEvalSymbolic(t *testing.T) {
	resetEvalFlags()

	var buf bytes.Buffer
	evalCmd.SetOut(&buf)

	err := runEval(evalCmd, []string{"3*x^2"})
	require.NoError(t, err)
	assert.Equal(t, "3x^2", strings.TrimSpace(buf.String()))
}

func TestRunEvalLatex(t *testing.T) {
	resetEvalFlags()
	evalFormat = "latex"

	var buf bytes.Buffer
	evalCmd.SetOut(&buf)

	err := runEval(evalCmd, []string{"x/2"})
	require.NoError(t, err)
	assert.Equal(t, "\\frac{x}{2}", strings.TrimSpace(buf.String()))
}

func TestRunEvalPartialBinding(t *testing.T) {
	resetEvalFlags()
	evalVars = []string{"a=2"}

	var buf bytes.Buffer
	evalCmd.SetOut(&buf)

	err := runEval(evalCmd, []string{"a*x+a"})
	require.NoError(t, err)
	out := strings.TrimSpace(buf.String())
	assert.Contains(t, out, "x")
	assert.NotContains(t, out, "a")
}

func TestRunEvalErrors(t *testing.T) {
	resetEvalFlags()

	err := runEval(evalCmd, []string{"x +"})
	assert.Error(t, err)

	evalVars = []string{"oops"}
	err = runEval(evalCmd, []string{"x"})
	assert.Error(t, err)

	evalVars = []string{"x=abc"}
	err = runEval(evalCmd, []string{"x"})
	assert.Error(t, err)
}

func TestParseBindings(t *testing.T) {
	vars, err := parseBindings([]string{"x=1.5", "y=-2"})
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"x": 1.5, "y": -2}, vars)

	_, err = parseBindings([]string{"bad"})
	assert.Error(t, err)
}
