package io

import (
	"fmt"
	"math"
	"strings"

	"gopkg.in/gcfg.v1"
)

const (
	ExampleResampleFile = `[Resample]

#######################
# Required Parameters #
#######################

# Whitespace-separated table containing the samples. Lines starting with '#'
# are ignored. The x column must be strictly increasing.
Input = path/to/samples.txt

# Number of evenly spaced points in the output grid.
Points = 100

#######################
# Optional Parameters #
#######################

# Zero-indexed columns of Input holding the x and y values. Default is 0 and 1.
# XColumn = 0
# YColumn = 1

# By default the output grid runs from the first to the last sample. Set both
# of these (never just one) to use different limits. Both must lie inside the
# range of the samples: nothing is extrapolated.
# LowerLimit = 0.5
# UpperLimit = 3.5

# Two-column table the resampled curve is written to. Default is stdout.
# Output = path/to/resampled.txt

# Plot must be one of [ None | File | Screen ]. File writes a chart to
# PlotFile (the format is taken from the extension: png, svg, pdf, ...).
# Screen opens a matplotlib window and requires a working python install.
# Plot = File
# PlotFile = resampled.png

# LogLevel must be one of [ CRITICAL | ERROR | WARNING | NOTICE | INFO | DEBUG ].
# LogFile = log.out
# LogLevel = INFO`
)

// PlotMode is the way a ResampleConfig asks for its chart to be drawn.
type PlotMode string

const (
	PlotNone   PlotMode = "None"
	PlotFile   PlotMode = "File"
	PlotScreen PlotMode = "Screen"
)

var plotModes = []PlotMode{PlotNone, PlotFile, PlotScreen}

// ParsePlotMode returns the PlotMode with the given name, ignoring case and
// surrounding whitespace. An empty name is PlotNone.
func ParsePlotMode(name string) (PlotMode, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return PlotNone, nil
	}
	for _, mode := range plotModes {
		if strings.EqualFold(string(mode), name) {
			return mode, nil
		}
	}

	names := make([]string, len(plotModes))
	for i := range plotModes {
		names[i] = string(plotModes[i])
	}
	return PlotNone, fmt.Errorf(
		"Plot mode '%s' not recognized. Must be one of [%s].",
		name, strings.Join(names, " | "),
	)
}

type SharedConfig struct {
	// Required
	Input string
	// Optional
	Output, LogFile, LogLevel string
}

func (con *SharedConfig) ValidInput() bool {
	return con.Input != ""
}
func (con *SharedConfig) ValidOutput() bool {
	return con.Output != ""
}
func (con *SharedConfig) ValidLogFile() bool {
	return con.LogFile != ""
}

type ResampleConfig struct {
	SharedConfig

	// Required
	Points int

	// Optional
	XColumn, YColumn       int
	LowerLimit, UpperLimit float64
	Plot, PlotFile         string
}

type ResampleWrapper struct {
	Resample ResampleConfig
}

// DefaultResampleWrapper returns a wrapper with every optional value set to
// its default. The limits are NaN until they are read from a file.
func DefaultResampleWrapper() *ResampleWrapper {
	con := ResampleConfig{}
	con.XColumn, con.YColumn = 0, 1
	con.LowerLimit, con.UpperLimit = math.NaN(), math.NaN()
	con.Plot = string(PlotNone)
	con.LogLevel = "INFO"
	return &ResampleWrapper{con}
}

// ReadResampleConfig reads and checks the [Resample] section of fname.
func ReadResampleConfig(fname string) (*ResampleConfig, error) {
	wrap := DefaultResampleWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}
	if err := wrap.Resample.Check(); err != nil {
		return nil, err
	}
	return &wrap.Resample, nil
}

func (con *ResampleConfig) ValidPoints() bool {
	return con.Points > 0
}
func (con *ResampleConfig) ValidColumns() bool {
	return con.XColumn >= 0 && con.YColumn >= 0 && con.XColumn != con.YColumn
}
func (con *ResampleConfig) ValidLowerLimit() bool {
	return !math.IsNaN(con.LowerLimit) && !math.IsInf(con.LowerLimit, 0)
}
func (con *ResampleConfig) ValidUpperLimit() bool {
	return !math.IsNaN(con.UpperLimit) && !math.IsInf(con.UpperLimit, 0)
}
func (con *ResampleConfig) ValidPlotFile() bool {
	return con.PlotFile != ""
}

// CustomLimits returns true if both limits have been set.
func (con *ResampleConfig) CustomLimits() bool {
	return con.ValidLowerLimit() && con.ValidUpperLimit()
}

// PlotMode returns the parsed Plot value. Check must have succeeded.
func (con *ResampleConfig) PlotMode() PlotMode {
	mode, err := ParsePlotMode(con.Plot)
	if err != nil {
		panic(err.Error())
	}
	return mode
}

// Check returns an error describing the first invalid value in con.
func (con *ResampleConfig) Check() error {
	if !con.ValidInput() {
		return fmt.Errorf("Invalid/non-existent 'Input' value.")
	} else if !con.ValidPoints() {
		return fmt.Errorf(
			"'Points' must be positive, but is %d.", con.Points,
		)
	} else if !con.ValidColumns() {
		return fmt.Errorf(
			"'XColumn' and 'YColumn' must be distinct and non-negative, " +
				"but are %d and %d.", con.XColumn, con.YColumn,
		)
	}

	if con.ValidLowerLimit() != con.ValidUpperLimit() {
		return fmt.Errorf(
			"You must set both 'LowerLimit' and 'UpperLimit' or neither.",
		)
	} else if con.CustomLimits() && con.LowerLimit > con.UpperLimit {
		return fmt.Errorf(
			"'LowerLimit' = %g is larger than 'UpperLimit' = %g.",
			con.LowerLimit, con.UpperLimit,
		)
	}

	mode, err := ParsePlotMode(con.Plot)
	if err != nil {
		return err
	}
	if mode == PlotFile && !con.ValidPlotFile() {
		return fmt.Errorf("'Plot' is set to File, but 'PlotFile' is not set.")
	}

	if _, err := ParseLogLevel(con.LogLevel); err != nil {
		return err
	}

	return nil
}
