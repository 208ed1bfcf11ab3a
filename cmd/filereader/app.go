// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"

	"github.com/northbound/filereader/internal/config"
	"github.com/northbound/filereader/internal/filereader"
	"github.com/northbound/filereader/internal/logger"
	"github.com/northbound/filereader/internal/parse"
	"github.com/northbound/filereader/internal/reader"
	"github.com/northbound/filereader/internal/watch"
)

// app reads files through the configured chain and prints the parsed values
type app struct {
	cfg     *config.Config
	chain   *filereader.Chain[any]
	headers bool // print "==> path <==" before text results

	mu  sync.Mutex // serializes writes to out
	out io.Writer
}

func newApp(cfg *config.Config, out io.Writer) (*app, error) {
	readers, err := reader.LookupAll(cfg.Readers)
	if err != nil {
		return nil, err
	}
	parseFn, err := parse.Lookup(cfg.Parser, cfg.ParseOptions())
	if err != nil {
		return nil, err
	}

	logger.Debugf("Reader chain: %v, parser: %s", cfg.Readers, cfg.Parser)
	return &app{
		cfg:   cfg,
		chain: filereader.New(parseFn, readers...),
		out:   out,
	}, nil
}

// readAll reads every path once and returns the process exit code
func (a *app) readAll(paths []string) int {
	code := 0
	for _, path := range paths {
		id := uuid.New().String()
		logger.Debugf("[%s] reading %s", id, path)

		value, err := a.chain.Read(path)
		if err != nil {
			logger.Errorf("[%s] %v", id, err)
			code = 1
			continue
		}

		if err := a.print(path, value); err != nil {
			logger.Errorf("[%s] failed to write result for %s: %v", id, path, err)
			code = 1
		}
	}
	return code
}

// watch re-reads paths on change until ctx is done
func (a *app) watch(ctx context.Context, paths []string) error {
	w, err := watch.New(a.chain, paths, a.cfg.Watch.Debounce, func(r watch.Result[any]) {
		if r.Err != nil {
			logger.Errorf("[%s] %v", r.ID, r.Err)
			return
		}
		if err := a.print(r.Path, r.Value); err != nil {
			logger.Errorf("[%s] failed to write result for %s: %v", r.ID, r.Path, err)
		}
	})
	if err != nil {
		return err
	}

	logger.Printf("Watching %d file(s) for changes", len(paths))
	return w.Start(ctx)
}

func (a *app) print(path string, value any) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if text, ok := value.(string); ok {
		if a.headers {
			if _, err := fmt.Fprintf(a.out, "==> %s <==\n", path); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintln(a.out, text)
		return err
	}

	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]any{"path": path, "value": value})
}
