package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetPolyFlags() {
	polyDerive = false
	polyIntegrate = false
	polyEvalAt = ""
	polyMul = ""
	polyFormat = ""
	cfgFile = "/nonexistent/goulib.yaml"
}

func runPolyCapture(t *testing.T, args []string) string {
	t.Helper()
	var buf bytes.Buffer
	polyCmd.SetOut(&buf)
	err := runPoly(polyCmd, args)
	require.NoError(t, err)
	return strings.TrimSpace(buf.String())
}

func TestPolyCommandStructure(t *testing.T) {
	assert.NotNil(t, polyCmd)
	assert.Equal(t, "poly <polynomial>", polyCmd.Use)
	assert.NotNil(t, polyCmd.RunE)
}

func TestRunPolyNormalize(t *testing.T) {
	resetPolyFlags()
	assert.Equal(t, "x^2+2x", runPolyCapture(t, []string{"3x+x^2-x"}))
}

func TestRunPolyEval(t *testing.T) {
	resetPolyFlags()
	polyEvalAt = "3"
	assert.Equal(t, "16", runPolyCapture(t, []string{"x^2+2x+1"}))
}

func TestRunPolyDerive(t *testing.T) {
	resetPolyFlags()
	polyDerive = true
	assert.Equal(t, "3x^2", runPolyCapture(t, []string{"x^3"}))
}

func TestRunPolyIntegrate(t *testing.T) {
	resetPolyFlags()
	polyIntegrate = true
	assert.Equal(t, "x^2", runPolyCapture(t, []string{"2x"}))
}

func TestRunPolyMul(t *testing.T) {
	resetPolyFlags()
	polyMul = "x-1"
	assert.Equal(t, "x^2-1", runPolyCapture(t, []string{"x+1"}))
}

func TestRunPolyLatex(t *testing.T) {
	resetPolyFlags()
	polyFormat = "latex"
	assert.Equal(t, "x^{12}+1", runPolyCapture(t, []string{"x^12+1"}))
}

func TestRunPolyErrors(t *testing.T) {
	resetPolyFlags()

	err := runPoly(polyCmd, []string{"y+1"})
	assert.Error(t, err)

	polyMul = "garbage^"
	err = runPoly(polyCmd, []string{"x"})
	assert.Error(t, err)

	resetPolyFlags()
	polyEvalAt = "abc"
	err = runPoly(polyCmd, []string{"x"})
	assert.Error(t, err)
}
