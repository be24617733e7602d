package ui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestSpinner_NonTerminalPrintsFinalLineOnly(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)
	var buf bytes.Buffer

	s := NewSpinner("Restarting api", &buf)
	s.Start()
	time.Sleep(30 * time.Millisecond)
	s.Success()

	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, "\n"))
	assert.True(t, strings.HasPrefix(out, SymbolSuccess+" Restarting api "))
	assert.NotContains(t, out, "\r")
	assert.Equal(t, SpinnerSuccess, s.State())
}

func TestSpinner_Fail(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)
	var buf bytes.Buffer

	s := NewSpinner("Checking", &buf)
	s.Start()
	s.SetLabel("Checked 3 services")
	s.Fail()

	assert.Contains(t, buf.String(), SymbolFail+" Checked 3 services")
	assert.Equal(t, SpinnerFailed, s.State())
}

func TestSpinner_StopWithoutStart(t *testing.T) {
	var buf bytes.Buffer
	s := NewSpinner("idle", &buf)

	s.Stop()

	assert.Equal(t, SpinnerPending, s.State())
	assert.Empty(t, buf.String())
}

func TestSpinner_DoubleStart(t *testing.T) {
	var buf bytes.Buffer
	s := NewSpinner("twice", &buf)

	s.Start()
	s.Start()
	s.Success()

	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0.05s", formatDuration(50*time.Millisecond))
	assert.Equal(t, "1.2s", formatDuration(1200*time.Millisecond))
}
