// File: watch.go
// Title: Configuration File Watching Implementation
// Description: Implements file system watching for configuration files to
//              support hot reloading. Change events come from fsnotify on the
//              parent directory so editors that replace files are covered.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of file watching
// - 2026-10-16 v0.2.0: fsnotify based watcher bound to a context

package config

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	gerror "github.com/msto63/gauss/foundation/core/error"
	"github.com/msto63/gauss/foundation/core/errors"
	"github.com/msto63/gauss/foundation/core/log"
)

// Watch starts monitoring the configuration file until ctx is done.
// Registered change handlers run on the watcher goroutine after every
// successful reload. Reload failures are logged and the previous data kept.
func (c *Config) Watch(ctx context.Context) error {
	path := c.FilePath()
	if path == "" {
		return errors.NewErrorBuilder(errors.ModuleConfig).
			Operation("watch").
			Code(gerror.CodeMissingConfig).
			Message("file path required for watching").
			Build()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.OperationFailed(errors.ModuleConfig, "watch", gerror.CodeConfigError, err)
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return errors.OperationFailed(errors.ModuleConfig, "watch", gerror.CodeConfigError, err)
	}

	logger := log.GetDefault().WithName("config").WithField("file", path)
	target := filepath.Clean(path)

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target || !event.Has(fsnotify.Write|fsnotify.Create) {
					continue
				}
				if err := c.reload(); err != nil {
					logger.WarnWithErr("config reload failed", err)
					continue
				}
				logger.Info("config reloaded")
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.WarnWithErr("config watcher error", err)
			}
		}
	}()

	return nil
}

// reload reloads the configuration from the file and notifies watchers
func (c *Config) reload() error {
	content, err := os.ReadFile(c.FilePath())
	if err != nil {
		return errors.OperationFailed(errors.ModuleConfig, "reload", gerror.CodeConfigError, err)
	}

	newData, err := parseContent(content, c.Format())
	if err != nil {
		return err
	}

	c.mu.Lock()
	oldConfig := &Config{data: c.data, filePath: c.filePath, format: c.format, envPrefix: c.envPrefix}
	c.data = newData
	newConfig := &Config{data: deepCopyMap(newData), filePath: c.filePath, format: c.format, envPrefix: c.envPrefix}
	watchers := append([]ChangeHandler(nil), c.watchers...)
	c.mu.Unlock()

	for _, handler := range watchers {
		if handler != nil {
			handler(oldConfig, newConfig)
		}
	}

	return nil
}
