package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetColorFlags() {
	colorTo = ""
	colorSteps = 5
	cfgFile = "/nonexistent/goulib.yaml"
}

func TestColorCommandStructure(t *testing.T) {
	assert.NotNil(t, colorCmd)
	assert.Equal(t, "color <hex>", colorCmd.Use)
	assert.NotNil(t, colorCmd.RunE)
}

func TestRunColor(t *testing.T) {
	resetColorFlags()

	var buf bytes.Buffer
	colorCmd.SetOut(&buf)

	err := runColor(colorCmd, []string{"#ff0000"})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "#ff0000")
	assert.Contains(t, out, "255, 0, 0")
	assert.Contains(t, out, "hsv")
	assert.Contains(t, out, "lab")
	assert.Contains(t, out, "cmyk")
	assert.Contains(t, out, "complement")
	assert.Contains(t, out, "#00ffff")
}

func TestRunColorGradient(t *testing.T) {
	resetColorFlags()
	colorTo = "#0000ff"
	colorSteps = 3

	var buf bytes.Buffer
	colorCmd.SetOut(&buf)

	err := runColor(colorCmd, []string{"#ff0000"})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[0], "#ff0000")
	assert.Contains(t, lines[2], "#0000ff")
}

func TestRunColorErrors(t *testing.T) {
	resetColorFlags()

	err := runColor(colorCmd, []string{"not-a-color"})
	assert.Error(t, err)

	colorTo = "bad"
	err = runColor(colorCmd, []string{"#ff0000"})
	assert.Error(t, err)

	colorTo = "#00ff00"
	colorSteps = 1
	err = runColor(colorCmd, []string{"#ff0000"})
	assert.Error(t, err)
}
