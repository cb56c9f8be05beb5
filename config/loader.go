// SPDX-License-Identifier: MIT
//
// File: loader.go
// Role: Loader, file-backed Config with fsnotify hot reload.
// Concurrency:
//   - Config/OnChange/Reload/SetLogger are safe from any goroutine.
//   - Callbacks run on the reloading goroutine, outside the lock.

package config

import (
	"fmt"
	"log/slog"
	"os"
	"slices"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Loader reads a YAML config file and watches it for changes.
type Loader struct {
	path     string
	log      *slog.Logger
	mu       sync.RWMutex
	current  *Config
	onChange []func(*Config)
}

// NewLoader performs the initial load; the file must parse and validate.
// A nil logger discards reload diagnostics.
func NewLoader(path string, log *slog.Logger) (*Loader, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	l := &Loader{path: path, log: log}
	cfg, err := l.load()
	if err != nil {
		return nil, err
	}
	l.current = cfg

	return l, nil
}

// SetLogger replaces the logger used for reload diagnostics. A nil logger
// discards them.
func (l *Loader) SetLogger(log *slog.Logger) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	l.log = log
}

func (l *Loader) logger() *slog.Logger {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.log
}

// Path returns the watched file.
func (l *Loader) Path() string { return l.path }

// Config returns the current configuration. Callers must not modify it.
func (l *Loader) Config() *Config {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.current
}

// OnChange registers a callback invoked after every successful reload.
func (l *Loader) OnChange(fn func(*Config)) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.onChange = append(l.onChange, fn)
}

// Reload re-reads the file now. On error the current config is kept.
func (l *Loader) Reload() (*Config, error) {
	cfg, err := l.load()
	if err != nil {
		return nil, err
	}
	l.publish(cfg)

	return cfg, nil
}

// Watch starts a goroutine that reloads on write/create events. Call the
// returned stop function to end it.
func (l *Loader) Watch() (stop func(), err error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config watcher: %w", err)
	}
	if err := w.Add(l.path); err != nil {
		w.Close()

		return nil, fmt.Errorf("config watcher add %s: %w", l.path, err)
	}

	done := make(chan struct{})
	var once sync.Once
	go func() {
		defer w.Close()
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				if _, err := l.Reload(); err != nil {
					l.logger().Warn("config reload skipped", slog.String("path", l.path), slog.Any("error", err))
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				l.logger().Warn("config watcher error", slog.Any("error", err))
			case <-done:
				return
			}
		}
	}()

	return func() { once.Do(func() { close(done) }) }, nil
}

func (l *Loader) publish(cfg *Config) {
	l.mu.Lock()
	l.current = cfg
	callbacks := slices.Clone(l.onChange)
	log := l.log
	l.mu.Unlock()

	log.Info("config reloaded", slog.String("path", l.path))
	for _, fn := range callbacks {
		fn(cfg)
	}
}

func (l *Loader) load() (*Config, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", l.path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", l.path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", l.path, err)
	}

	return cfg, nil
}
