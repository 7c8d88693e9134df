package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/labstack/gommon/color"
	"github.com/sirupsen/logrus"

	"kestrel/internal"
	"kestrel/internal/config"
)

type stdPrinter struct{}

func (s stdPrinter) Println(a ...interface{}) (n int, err error) {
	return fmt.Println(a...)
}

func (s stdPrinter) Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error) {
	return fmt.Fprintf(w, format, a...)
}

func (s stdPrinter) Fprintln(w io.Writer, a ...interface{}) (n int, err error) {
	return fmt.Fprintln(w, a...)
}

var (
	configFile = flag.String("config", "", "path to a kestrel.yaml config file")
	printTree  = flag.Bool("ast", false, "print the syntax tree instead of running")
	logLevel   = flag.String("log-level", "", "log level (panic, fatal, error, warning, info, debug, trace)")
	noColor    = flag.Bool("no-color", false, "disable coloured error output")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "Usage: kestrel [flags] /path/to/source.ks")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := loadConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	level, _ := cfg.Level()
	logger.SetLevel(level)
	log := logger.WithField("run", uuid.New().String())

	absPath, err := filepath.Abs(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}

	b, err := os.ReadFile(absPath)
	if err != nil {
		log.Fatal(err)
	}
	source := string(b)

	c := color.New()
	if !cfg.Color {
		c.Disable()
	}
	runner := &internal.Runner{
		Printer: stdPrinter{},
		Log:     log,
		Color:   c,
	}

	if cfg.PrintTree {
		program, err := internal.Parse(absPath, source)
		if err != nil {
			runner.Report(err)
			os.Exit(1)
		}
		fmt.Println(program.Tree())
		return
	}

	if err := runner.Run(absPath, source); err != nil {
		log.WithError(err).Debug("run failed")
		os.Exit(1)
	}
}

// loadConfig reads the -config file, or kestrel.yaml from the working
// directory when it exists, and applies the command line flags over it.
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	path := *configFile
	if path == "" {
		if _, err := os.Stat(config.FileName); err == nil {
			path = config.FileName
		}
	}
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *noColor {
		cfg.Color = false
	}
	if *printTree {
		cfg.PrintTree = true
	}
	return cfg, cfg.Validate()
}
