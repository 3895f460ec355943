package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/idilsaglam/studytasks/internal/cli"
	"github.com/idilsaglam/studytasks/internal/config"
	"github.com/idilsaglam/studytasks/internal/logging"
	"github.com/idilsaglam/studytasks/internal/store/jsonstore"
	"github.com/idilsaglam/studytasks/internal/tasks"
	"github.com/idilsaglam/studytasks/internal/tui"
	"github.com/idilsaglam/studytasks/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "optional TOML config file")
	fullScreen := flag.Bool("tui", false, "run the full-screen interface")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: tasks [-config file.toml] [-tui]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 0 {
		flag.Usage()
		os.Exit(2)
	}

	os.Exit(run(*configPath, *fullScreen))
}

func run(configPath string, fullScreen bool) int {
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		return 1
	}

	logger := logging.NewFromConfig(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	store := jsonstore.New(cfg.StoreFile, logger)
	theme := ui.LookupTheme(cfg.Theme)
	printer := ui.NewPrinter(os.Stdout, os.Stderr, theme, ui.ColorMode(cfg.Color))

	if fullScreen {
		build := func(p *ui.Printer) *tasks.Repository { return tasks.New(store, p, logger) }
		if err := tui.Run(tui.New(build, printer), os.Stdin, os.Stdout); err != nil {
			printer.Fail("tui: " + err.Error())
		}
		return 0
	}

	sh := cli.NewShell(os.Stdin, printer, tasks.New(store, printer, logger))
	if err := sh.Run(); err != nil {
		logger.Error("shell stopped", "err", err)
	}
	return 0
}
