package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"vmsim/config"
	"vmsim/console"
	"vmsim/logger"
	"vmsim/system"
)

type options struct {
	configPath string
	backing    string
	frames     int
	tlb        int
	backfill   bool
	logPath    string
	dumpPath   string
	gui        bool
	verbose    bool
	tracePath  string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the simulator and returns the process exit code
func run(args []string, stdout, stderr io.Writer) int {
	opts, cfg, err := parseArgs(args, stderr)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(stderr, err)
		}
		return 1
	}

	var l *log.Logger
	switch {
	case cfg.LogFile != "":
		var closer io.Closer
		l, closer, err = logger.New(cfg.LogFile)
		if err != nil {
			fmt.Fprintf(stderr, "%v: log file: %v\n", system.ErrConfiguration, err)
			return 1
		}
		defer closer.Close()
	case opts.verbose && !opts.gui:
		l, _, _ = logger.New("")
	default:
		// stderr would tear up the gui
		l = logger.Discard()
	}

	if opts.gui {
		err = runGui(cfg, opts.tracePath, l)
	} else {
		err = runBatch(cfg, opts.tracePath, stdout, l)
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// runBatch writes the translations and the report to stdout
func runBatch(cfg config.Config, tracePath string, stdout io.Writer, l *log.Logger) error {
	out := console.NewSimple(stdout)
	sys, err := system.InitializeSystem(cfg, out, l)
	if err != nil {
		return err
	}
	if err := sys.RunFile(tracePath); err != nil {
		return err
	}
	if err := sys.Report(out); err != nil {
		return err
	}
	return sys.Dump()
}

func parseArgs(args []string, stderr io.Writer) (options, config.Config, error) {
	var opts options
	fs := flag.NewFlagSet("vmsim", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: vmsim [flags] <addresses.txt>\n")
		fs.PrintDefaults()
	}
	fs.StringVar(&opts.configPath, "config", "", "JSON config file")
	fs.StringVar(&opts.backing, "backing", config.DefaultBackingStore, "backing store image")
	fs.IntVar(&opts.frames, "frames", 256, "number of physical frames (1-256)")
	fs.IntVar(&opts.tlb, "tlb", 16, "number of TLB entries")
	fs.BoolVar(&opts.backfill, "backfill", false, "copy page table hits into the TLB")
	fs.StringVar(&opts.logPath, "log", "", "log file")
	fs.BoolVar(&opts.verbose, "v", false, "log to stderr when no log file is set")
	fs.StringVar(&opts.dumpPath, "dump", "", "write TLB and physical memory to this file after the run")
	fs.BoolVar(&opts.gui, "gui", false, "show the run in a terminal ui")

	if err := fs.Parse(args); err != nil {
		return opts, config.Config{}, err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return opts, config.Config{}, flag.ErrHelp
	}
	opts.tracePath = fs.Arg(0)

	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(opts.configPath); err != nil {
			return opts, cfg, fmt.Errorf("%w: %w", system.ErrConfiguration, err)
		}
	}

	// flags given on the command line win over the config file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "backing":
			cfg.BackingStore = opts.backing
		case "frames":
			cfg.Frames = opts.frames
		case "tlb":
			cfg.TLBEntries = opts.tlb
		case "backfill":
			cfg.TLBBackfill = opts.backfill
		case "log":
			cfg.LogFile = opts.logPath
		case "dump":
			cfg.DumpFile = opts.dumpPath
		}
	})
	return opts, cfg, nil
}
