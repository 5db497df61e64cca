package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	goversion "github.com/caarlos0/go-version"

	"github.com/rualang/rua/internal/config"
	"github.com/rualang/rua/internal/core"
)

var (
	version   = "0.0.1"
	commit    = ""
	treeState = ""
	date      = ""
	builtBy   = ""
	debug     = flag.Bool("debug", false, "Enable debug logging")
	output    = flag.String("output", "", "Output file for the generated program. Defaults to stdout.")
	optsFile  = flag.String("config", "", "Path to a YAML options file.")
	logFile   = flag.String("log-file", "", "Path to a file where logs should be written. If empty, logs go to stderr.")
)

func main() {
	flag.Parse()

	// Configure log output
	var logWriter *os.File
	if *logFile != "" {
		var err error
		logWriter, err = os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			slog.Error("Failed to open log file", "file", *logFile, "error", err)
			os.Exit(1)
		}
		defer logWriter.Close()
	} else {
		logWriter = os.Stderr
	}

	logLevel := slog.LevelWarn
	if *debug {
		logLevel = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		Level: logLevel,
	})))

	if len(flag.Args()) == 0 {
		v := buildVersion(version, commit, date, builtBy, treeState)
		fmt.Println(v.String())
		fmt.Println("Usage: rua [options] <file.rs>")
		flag.PrintDefaults()
		return
	}

	var cfg *config.Config
	var err error
	if *optsFile != "" {
		cfg, err = config.Load(*optsFile)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		slog.Error("Failed to load options file", "error", err)
		os.Exit(1)
	}
	if *output != "" {
		cfg.Output = *output
	}

	sourceFile := flag.Arg(0)
	slog.Info("Starting rua", "sourceFile", sourceFile)

	if err := core.NewTranslator(cfg).Run(sourceFile); err != nil {
		slog.Error("Translation failed", "error", err)
		os.Exit(1)
	}

	slog.Info("rua finished successfully.")
}

func buildVersion(version, commit, date, builtBy, treeState string) goversion.Info {
	return goversion.GetVersionInfo(
		goversion.WithAppDetails(config.Application, config.Description, config.WebSite),
		func(i *goversion.Info) {
			i.ASCIIName = config.UI
			if commit != "" {
				i.GitCommit = commit
			}
			if version != "" {
				i.GitVersion = version
			}
			if treeState != "" {
				i.GitTreeState = treeState
			}
			if date != "" {
				i.BuildDate = date
			}
			if builtBy != "" {
				i.BuiltBy = builtBy
			}
		},
	)
}
