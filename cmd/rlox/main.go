package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Socksonme/rlox/internal"
	"github.com/Socksonme/rlox/internal/config"
	"github.com/labstack/gommon/color"
	"github.com/sirupsen/logrus"
)

const (
	exitOK      = 0
	exitUsage   = 64
	exitStatic  = 65
	exitRuntime = 70
	exitIO      = 74
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

func main() {
	os.Exit(run(os.Args[1:], stdPrinter{}))
}

func run(args []string, p internal.IPrinter) int {
	fs := flag.NewFlagSet("rlox", flag.ContinueOnError)
	configPath := fs.String("config", "", "config file (default $HOME/.rlox.yaml)")
	logLevel := fs.String("log-level", "", "log level, overrides the config file")
	noColor := fs.Bool("no-color", false, "disable colored diagnostics")
	dumpTokens := fs.Bool("tokens", false, "print the tokens of the script and exit")
	dumpTree := fs.Bool("ast", false, "print the syntax tree of the script and exit")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: rlox [flags] [script]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return exitUsage
	}
	if fs.NArg() == 0 && (*dumpTokens || *dumpTree) {
		fmt.Fprintln(fs.Output(), "rlox: -tokens and -ast need a script")
		return exitUsage
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitUsage
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
		if err := cfg.Validate(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return exitUsage
		}
	}
	if *noColor {
		cfg.Color = false
		color.Disable()
	}

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(cfg.Level())
	logger.WithField("config", *configPath).Debug("config loaded")

	in := internal.NewInterpreter(
		p,
		internal.WithLogger(logger),
		internal.WithColor(cfg.Color),
	)

	if fs.NArg() == 0 {
		return runPrompt(in, cfg, logger)
	}

	source, err := readSource(fs.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitIO
	}

	switch {
	case *dumpTokens:
		if !in.DumpTokens(source) {
			return exitStatic
		}
		return exitOK
	case *dumpTree:
		if !in.DumpTree(source) {
			return exitStatic
		}
		return exitOK
	}

	return exitCode(in.Run(source))
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path, false)
	}
	return config.Load(config.DefaultPath(), true)
}

func readSource(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	b, err := os.ReadFile(absPath)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, internal.ErrStatic):
		return exitStatic
	case errors.Is(err, internal.ErrRuntime):
		return exitRuntime
	}
	return exitIO
}
