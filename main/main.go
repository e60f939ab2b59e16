package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/op/go-logging"

	"github.com/phil-mansfield/resample"
	"github.com/phil-mansfield/resample/io"
	"github.com/phil-mansfield/resample/render"
)

var (
	demoXs = []float64{0, 1, 2, 3, 4, 5}
	demoYs = []float64{0, 2, 3, 1, 4, 5}
)

const demoPoints = 100

type FileGroup struct {
	log, output *os.File
}

func (fg *FileGroup) Close() {
	if fg.output != nil {
		err := fg.output.Close()
		if err != nil {
			log.Fatal(err.Error())
		}
	}

	if fg.log != nil {
		err := fg.log.Close()
		if err != nil {
			log.Fatal(err.Error())
		}
	}
}

func main() {
	var (
		resampleConfig, demo string
		exampleConfig        string
	)
	vars := map[string]*string{
		"Resample":      &resampleConfig,
		"Demo":          &demo,
		"ExampleConfig": &exampleConfig,
	}

	flag.StringVar(
		&resampleConfig, "Resample", "",
		"Configuration file for [Resample] mode.",
	)
	flag.StringVar(
		&demo, "Demo", "",
		"Runs the six point demonstration. The argument is the plot mode " +
			"and must be one of 'None', 'File', or 'Screen'.",
	)
	flag.StringVar(
		&exampleConfig,
		"ExampleConfig", "", "Prints an example configuration file of the " +
			"specified type to stdout. The only accepted argument is 'Resample'.",
	)

	flag.Parse()

	modeName, err := getModeName(vars)
	if err != nil {
		log.Fatal(err.Error())
	}

	switch modeName {
	case "Resample":
		con, err := io.ReadResampleConfig(resampleConfig)
		if err != nil {
			log.Fatal(err.Error())
		}
		if err := resampleMain(con); err != nil {
			log.Fatal(err.Error())
		}

	case "Demo":
		mode, err := io.ParsePlotMode(demo)
		if err != nil {
			log.Fatal(err.Error())
		}
		if err := demoMain(mode); err != nil {
			log.Fatal(err.Error())
		}

	case "ExampleConfig":
		switch exampleConfig {
		case "Resample":
			fmt.Println(io.ExampleResampleFile)
		default:
			log.Fatal(
				"Unrecognized 'ExampleConfig' argument. The only recognized " +
					"argument is 'Resample'.",
			)
		}
	default:
		panic("Impossible")
	}
}

func getModeName(vars map[string]*string) (string, error) {
	setNames := []string{}

	for name, varPtr := range vars {
		if *varPtr != "" {
			setNames = append(setNames, name)
		}
	}

	if len(setNames) == 0 {
		return "", fmt.Errorf("No flags have been set.")
	}

	if len(setNames) > 1 {
		return "", fmt.Errorf(
			"The following flags were set: %s, but resample " +
				"only accepts one flag at a time.",
			strings.Join(setNames, ", "),
		)
	}

	return setNames[0], nil
}

func resampleMain(con *io.ResampleConfig) error {
	fg := &FileGroup{}
	defer fg.Close()

	level, err := io.ParseLogLevel(con.LogLevel)
	if err != nil {
		return err
	}
	var logger *logging.Logger
	if con.ValidLogFile() {
		fg.log, err = os.Create(con.LogFile)
		if err != nil {
			return err
		}
		logger = io.NewLogger(level, fg.log)
	} else {
		logger = io.NewLogger(level)
	}

	samples, err := io.ReadSamples(con.Input, con.XColumn, con.YColumn)
	if err != nil {
		return err
	}
	logger.Infof(
		"Read %d samples from columns %d and %d of %s.",
		samples.Len(), con.XColumn, con.YColumn, con.Input,
	)

	rs, err := resample.New(samples.Xs, samples.Ys)
	if err != nil {
		return err
	}

	rng := resample.SampleRange()
	if con.CustomLimits() {
		rng = resample.Limits(con.LowerLimit, con.UpperLimit)
	}

	renderers, err := plotRenderers(con.PlotMode(), con.PlotFile)
	if err != nil {
		return err
	}
	logger.Debugf(
		"Resampling onto %d points over %s with plot mode %s.",
		con.Points, rng, con.PlotMode(),
	)

	curve, err := rs.Resample(con.Points, rng, renderers...)
	if err != nil {
		return err
	}

	out := os.Stdout
	if con.ValidOutput() {
		fg.output, err = os.Create(con.Output)
		if err != nil {
			return err
		}
		out = fg.output
	}
	if err = io.WriteSeries(out, curve); err != nil {
		return err
	}

	logger.Infof("Wrote %d resampled points.", curve.Len())
	return nil
}

func plotRenderers(
	mode io.PlotMode, plotFile string,
) ([]resample.Renderer, error) {
	switch mode {
	case io.PlotNone:
		return nil, nil
	case io.PlotFile:
		if plotFile == "" {
			return nil, fmt.Errorf("No file given for the File plot mode.")
		}
		return []resample.Renderer{&render.File{Path: plotFile}}, nil
	case io.PlotScreen:
		return []resample.Renderer{&render.Screen{}}, nil
	}
	return nil, fmt.Errorf("Plot mode '%s' not recognized.", mode)
}

// demoMain resamples a fixed six point trace twice: once over the range of
// the trace and once over [0.5, 3.5].
func demoMain(mode io.PlotMode) error {
	logger := io.NewLogger(logging.INFO)

	rs, err := resample.New(demoXs, demoYs)
	if err != nil {
		return err
	}

	runs := []struct {
		name string
		rng  resample.Range
	}{
		{"default", resample.SampleRange()},
		{"custom", resample.Limits(0.5, 3.5)},
	}

	for _, run := range runs {
		renderers, err := plotRenderers(
			mode, fmt.Sprintf("demo_%s.png", run.name),
		)
		if err != nil {
			return err
		}

		curve, err := rs.Resample(demoPoints, run.rng, renderers...)
		if err != nil {
			return err
		}

		logger.Infof(
			"%s limits %s: %d points, first (%.3g, %.3g), last (%.3g, %.3g).",
			run.name, run.rng, curve.Len(), curve.Xs[0], curve.Ys[0],
			curve.Xs[curve.Len()-1], curve.Ys[curve.Len()-1],
		)
		if err := io.WriteSeries(os.Stdout, curve); err != nil {
			return err
		}
	}

	return nil
}
