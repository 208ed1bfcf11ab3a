// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/northbound/filereader/internal/config"
	"github.com/northbound/filereader/internal/logger"
)

var (
	configPath = flag.String("config", "", "Path to a YAML config file")
	readers    = flag.String("readers", "", "Comma separated reader order (e.g. pdf,html,text)")
	parser     = flag.String("parser", "", "Parser applied to the content: raw, lines, chunks, json, yaml")
	logLevel   = flag.String("log-level", "", "Minimum log level: debug, info, warn, error")
	watchFiles = flag.Bool("watch", false, "Keep re-reading the files when they change")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] FILE...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	config.ApplyCLIFlags(cfg, *readers, *parser, *logLevel, *watchFiles)
	if err := cfg.Validate(); err != nil {
		logger.Fatalf("Invalid configuration: %v", err)
	}

	level, _ := logger.ParseLevel(cfg.Log.Level)
	l, err := logger.Init(cfg.Log.File, level)
	if err != nil {
		logger.Fatalf("Failed to initialize logger: %v", err)
	}
	defer l.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := newApp(cfg, os.Stdout)
	if err != nil {
		l.Errorf("Failed to set up reader chain: %v", err)
		os.Exit(1)
	}
	app.headers = flag.NArg() > 1

	code := app.readAll(flag.Args())
	if cfg.Watch.Enabled {
		if err := app.watch(ctx, flag.Args()); err != nil {
			l.Errorf("Watch failed: %v", err)
			code = 1
		}
	}

	if code != 0 {
		l.Close()
		os.Exit(code)
	}
}
