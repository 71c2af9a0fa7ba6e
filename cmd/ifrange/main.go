package main

import (
	"flag"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/norasector/ifrange/pkg/ifrange"
	"github.com/norasector/ifrange/pkg/ifrange/config"
	"github.com/norasector/ifrange/pkg/ifrange/output"
	"github.com/norasector/ifrange/pkg/util"
)

const defaultConfigFile = "ifrange.yaml"

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.InfoLevel)

	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("exited program")
	}
}

func run(args []string, stdout io.Writer) error {
	fset := flag.NewFlagSet("ifrange", flag.ContinueOnError)
	configFile := fset.String("config", defaultConfigFile, "YAML config file")
	fs := fset.Float64("fs", 0, "sampling frequency override in MHz")
	fcStart := fset.Float64("fc-start", 0, "first center frequency in MHz")
	fcEnd := fset.Float64("fc-end", 0, "center frequency the sweep approaches in MHz")
	fcSteps := fset.Int("fc-steps", 0, "number of sweep steps")
	format := fset.String("format", "", "output format: plain, csv, json, yaml, table or png")
	logLevel := fset.String("log-level", "", "log level: debug, info, warn, error")

	if err := fset.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	set := make(map[string]bool)
	fset.Visit(func(f *flag.Flag) { set[f.Name] = true })

	opts, err := config.Load(*configFile, set["config"])
	if err != nil {
		return err
	}

	if set["fs"] {
		opts.SampleRate = *fs
	}
	if set["fc-start"] {
		opts.Sweep.Start = *fcStart
	}
	if set["fc-end"] {
		opts.Sweep.End = *fcEnd
	}
	if set["fc-steps"] {
		opts.Sweep.Steps = *fcSteps
	}
	if set["format"] {
		opts.Format = *format
	}
	if set["log-level"] {
		opts.LogLevel = *logLevel
	}

	if err := opts.Validate(); err != nil {
		return err
	}

	lvl, _ := opts.Level()
	if opts.ConsoleLogging {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(lvl)
	} else {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger().Level(lvl)
	}

	writer, err := output.New(opts.Format)
	if err != nil {
		return err
	}

	calc := ifrange.NewCalculator(
		ifrange.WithPlan(opts.Plan),
		ifrange.WithLogger(log.Logger),
	)

	var points []ifrange.Point
	elapsed, err := util.TimeOperationMicroseconds(func() error {
		var err error
		points, err = calc.Run(opts.SampleRate, opts.Sweep)
		return err
	})
	if err != nil {
		return err
	}
	log.Debug().Int64("elapsed_us", elapsed).Int("points", len(points)).Msg("sweep complete")

	if err := writer.Write(stdout, opts.SampleRate, points); err != nil {
		return err
	}

	log.Info().
		Float64("fs", opts.SampleRate).
		EmbedObject(ifrange.Summarize(opts.SampleRate, points)).
		Msg("sweep summary")

	return nil
}
