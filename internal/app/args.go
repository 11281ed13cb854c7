package app

import (
	"flag"
	"fmt"
	"io"

	"watchlistcli/internal/config"
	apperrors "watchlistcli/internal/errors"
)

const usageLine = "Usage: %s [flags] <input_txt_or_csv> <output_csv>\n"

func (a *App) newFlagSet(inv *Invocation) *flag.FlagSet {
	fs := flag.NewFlagSet(config.AppName, flag.ContinueOnError)
	fs.SetOutput(a.stdout)
	fs.StringVar(&inv.ConfigFile, "config", "", "YAML configuration file (default $"+config.ConfigFileEnv+")")
	fs.StringVar(&inv.Format, "format", "", "output format: auto | csv | xlsx (default from configuration)")
	fs.StringVar(&inv.MetricsTextfile, "metrics-textfile", "", "write Prometheus metrics to this file on exit")
	fs.BoolVar(&inv.ShowVersion, "version", false, "print version and exit")
	fs.Usage = func() { printUsage(fs, a.stdout) }
	return fs
}

// parseArgs parses flags and the input and output paths. Usage problems are
// reported on stdout.
func (a *App) parseArgs(args []string) (*Invocation, error) {
	inv := &Invocation{}
	fs := a.newFlagSet(inv)

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, err
		}
		return nil, apperrors.NewUsageError(err.Error())
	}
	if inv.ShowVersion {
		return inv, nil
	}

	if fs.NArg() < 2 {
		printUsage(fs, a.stdout)
		return nil, apperrors.NewUsageError("expected an input and an output path")
	}

	inv.InputPath = fs.Arg(0)
	inv.OutputPath = fs.Arg(1)
	return inv, nil
}

func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintf(w, usageLine, fs.Name())
	fs.SetOutput(w)
	fs.PrintDefaults()
}
