package cli

import (
	"flag"

	"gatetrainer/internal/config"
	"gatetrainer/internal/dataset"
)

// Flags are the override flags of the gate trainer, registered on a FlagSet.
type Flags struct {
	fs         *flag.FlagSet
	Config     *string
	gate       *string
	debug      *string
	rate       *string
	iterations *string
	seed       *int64
	logEvery   *int
}

// RegisterFlags defines the trainer's flags on fs.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	return &Flags{
		fs:         fs,
		Config:     fs.String("config", "", "Path to YAML config"),
		gate:       fs.String("gate", "", "Gate selector: 0 & ~ ^ | >"),
		debug:      fs.String("debug", "", "Print the cost every iteration (y/n)"),
		rate:       fs.String("rate", "", "Learning rate, e.g. 1.0"),
		iterations: fs.String("iterations", "", "Number of training iterations"),
		seed:       fs.Int64("seed", 0, "PRNG seed (0 seeds from the clock)"),
		logEvery:   fs.Int("log-every", 0, "Log progress every N iterations"),
	}
}

// Overrides validates the flags that were set, then the positional
// arguments. Positional values win over flags. It must be called after the
// FlagSet was parsed; failures are *ExitError values.
func (f *Flags) Overrides() (config.Overrides, error) {
	var o config.Overrides
	var err error
	f.fs.Visit(func(fl *flag.Flag) {
		if err != nil {
			return
		}
		switch fl.Name {
		case "gate":
			if _, perr := dataset.ParseGate(*f.gate); perr != nil {
				err = &ExitError{Code: ExitGate, Err: perr}
				return
			}
			o.Gate = f.gate
		case "debug":
			v, perr := ParseDebug(*f.debug)
			if perr != nil {
				err = &ExitError{Code: ExitDebug, Err: perr}
				return
			}
			o.Debug = &v
		case "rate":
			v, perr := ParseRate(*f.rate)
			if perr != nil {
				err = &ExitError{Code: ExitRate, Err: perr}
				return
			}
			o.Rate = &v
		case "iterations":
			v, perr := ParseIterations(*f.iterations)
			if perr != nil {
				err = &ExitError{Code: ExitIterations, Err: perr}
				return
			}
			o.Iterations = &v
		case "seed":
			o.Seed = f.seed
		case "log-every":
			o.LogEvery = f.logEvery
		}
	})
	if err != nil {
		return config.Overrides{}, err
	}

	if f.fs.NArg() > 0 {
		args, err := Parse(f.fs.Args())
		if err != nil {
			return config.Overrides{}, err
		}
		gate := string(rune(args.Gate))
		o.Gate = &gate
		o.Debug = &args.Debug
		o.Rate = &args.Rate
		o.Iterations = &args.Iterations
	}
	return o, nil
}
