package serv

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

// settleDelay is how long to wait after a change event before reading
// the file, so editors finish writing.
const settleDelay = 500 * time.Millisecond

// startWatcher watches the schema directory, non-recursively, and
// regenerates a document on create and write events.
func (s *Service) startWatcher(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("cannot setup watcher: %w", err)
	}
	defer watcher.Close() // nolint:errcheck

	dir, err := filepath.Abs(s.conf.SchemaDir)
	if err != nil {
		return fmt.Errorf("cannot get absolute path to %q: %w", s.conf.SchemaDir, err)
	}

	st, err := os.Stat(dir)
	if err != nil {
		return errors.Wrap(err, "os.Stat")
	}
	if !st.IsDir() {
		return fmt.Errorf("not a directory: %q; can only watch directories", dir)
	}

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("cannot add %q to watcher: %w", dir, err)
	}
	s.log.Infof("watching %s for changes", dir)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case err := <-watcher.Errors:
			s.log.Infof("watch error: %v", err)

		case event := <-watcher.Events:
			// Ensure that we use the correct events, as they are not uniform across
			// platforms. See https://github.com/fsnotify/fsnotify/issues/74
			if event.Op != fsnotify.Create && event.Op != fsnotify.Write {
				continue
			}
			if !s.matchExt(event.Name) {
				continue
			}

			// Wait for writes to finish.
			time.Sleep(settleDelay)

			if err := s.generateFile(event.Name); err != nil {
				s.log.Errorf("cannot regenerate %s: %v", event.Name, err)
			}
		}
	}
}
