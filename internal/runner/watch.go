package runner

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceDelay batches bursts of file events into one regeneration.
const debounceDelay = 200 * time.Millisecond

// Watch runs Gen once, then again whenever a descriptor or Go source in
// the watched directories changes, until ctx is cancelled. Generation
// failures are logged and do not stop the loop.
func (r *Runner) Watch(ctx context.Context, inputs []string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	dirs, err := r.regenerate(ctx, inputs)
	if err != nil && dirs == nil {
		return err
	}

	r.watchDirs(watcher, dirs)

	var (
		timer   *time.Timer
		trigger <-chan time.Time
	)

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}

			r.log.Info("stopping watcher")

			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if !r.relevant(event) {
				continue
			}

			r.log.Debug("change detected", "file", event.Name, "op", event.Op.String())

			if timer != nil {
				timer.Stop()
			}

			timer = time.NewTimer(debounceDelay)
			trigger = timer.C
		case <-trigger:
			trigger = nil

			dirs, _ := r.regenerate(ctx, inputs)
			r.watchDirs(watcher, dirs)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			r.log.Error("watcher error", "error", err)
		}
	}
}

// regenerate runs one generation and returns the directories to watch.
func (r *Runner) regenerate(ctx context.Context, inputs []string) ([]string, error) {
	units, err := r.Load(ctx, inputs)
	if err != nil {
		r.log.Error("load failed", "error", err)
		return nil, err
	}

	failed := r.reportDiagnostics(units)

	outputs, err := r.Generate(ctx, units)
	if werr := r.Write(outputs); werr != nil {
		err = errors.Join(err, werr)
	}

	if err != nil {
		r.log.Error("generation failed", "error", err)
	} else if !failed {
		r.log.Info("regenerated", "files", len(outputs))
	}

	var dirs []string

	for _, u := range units {
		dirs = append(dirs, u.SourceDir)
	}

	slices.Sort(dirs)

	return slices.Compact(dirs), err
}

func (r *Runner) watchDirs(w *fsnotify.Watcher, dirs []string) {
	watched := w.WatchList()

	for _, dir := range dirs {
		abs, err := filepath.Abs(dir)
		if err != nil || slices.Contains(watched, abs) {
			continue
		}

		if err := w.Add(abs); err != nil {
			r.log.Warn("failed to watch directory", "dir", abs, "error", err)
		}
	}
}

// relevant reports whether an event touches an input rather than a file
// enumconv itself writes.
func (r *Runner) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}

	name := filepath.Base(event.Name)

	switch {
	case strings.HasSuffix(name, r.cfg.Output.Suffix),
		name == r.cfg.Output.SupportFile,
		strings.HasSuffix(name, ".unformatted.go"):
		return false
	case IsDescriptor(name), strings.HasSuffix(name, ".go"):
		return true
	default:
		return false
	}
}
