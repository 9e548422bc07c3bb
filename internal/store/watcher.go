package store

import (
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce coalesces the burst of events editors produce on save.
const DefaultDebounce = 200 * time.Millisecond

// FileWatcher watches files in a single directory and reports changes on
// a channel, coalescing bursts into a single notification.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	logger   *slog.Logger
	dir      string
	names    map[string]struct{}
	debounce time.Duration
	changes  chan struct{}
	done     chan struct{}
	mu       sync.Mutex
	running  bool
}

// NewFileWatcher creates a watcher for the given files.
// All paths must share a parent directory; the directory is what is watched.
func NewFileWatcher(logger *slog.Logger, paths ...string) (*FileWatcher, error) {
	if logger == nil {
		logger = slog.Default()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	fw := &FileWatcher{
		watcher:  watcher,
		logger:   logger,
		names:    make(map[string]struct{}, len(paths)),
		debounce: DefaultDebounce,
		changes:  make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
	for _, p := range paths {
		fw.dir = filepath.Dir(p)
		fw.names[filepath.Base(p)] = struct{}{}
	}

	return fw, nil
}

// SetDebounce sets the quiet period before a change is reported.
func (fw *FileWatcher) SetDebounce(d time.Duration) {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	fw.debounce = d
}

// Changes returns the channel that receives a value after watched files change.
// Pending notifications are merged, so a slow reader sees at most one.
func (fw *FileWatcher) Changes() <-chan struct{} {
	return fw.changes
}

// Start begins watching.
func (fw *FileWatcher) Start() error {
	fw.mu.Lock()
	if fw.running {
		fw.mu.Unlock()
		return nil
	}
	fw.running = true
	debounce := fw.debounce
	fw.mu.Unlock()

	// Watch the directory, not the files: writers may replace them.
	if err := fw.watcher.Add(fw.dir); err != nil {
		return err
	}

	go fw.watch(debounce)
	return nil
}

// watch is the main watch loop.
func (fw *FileWatcher) watch(debounce time.Duration) {
	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}

			if _, watched := fw.names[filepath.Base(event.Name)]; !watched {
				continue
			}

			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				fw.logger.Debug("watched file changed", "file", event.Name, "op", event.Op.String())
				timer.Reset(debounce)
			}

		case <-timer.C:
			select {
			case fw.changes <- struct{}{}:
			default:
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			fw.logger.Warn("file watcher error", "error", err)

		case <-fw.done:
			return
		}
	}
}

// Stop stops the file watcher.
func (fw *FileWatcher) Stop() error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if !fw.running {
		return nil
	}

	fw.running = false
	close(fw.done)
	return fw.watcher.Close()
}
