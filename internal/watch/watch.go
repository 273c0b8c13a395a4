// Package watch re-runs work whenever a file changes on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/orizon-lang/lexscan/internal/logging"
	"github.com/orizon-lang/lexscan/internal/logging/logfields"
)

var log = logging.DefaultLogger.WithField(logfields.LogSubsys, "watch")

// DefaultDebounce coalesces the bursts of events editors produce on save
const DefaultDebounce = 100 * time.Millisecond

// Op indicates a change operation in the filesystem.
type Op uint32

const (
	OpCreate Op = 1 << iota
	OpWrite
	OpRemove
	OpRename
	OpChmod
)

var opNames = []string{"CREATE", "WRITE", "REMOVE", "RENAME", "CHMOD"}

// String joins the names of the set bits, e.g. "CREATE|WRITE"
func (op Op) String() string {
	var names []string
	for i, name := range opNames {
		if op&(1<<i) != 0 {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return "NONE"
	}
	return strings.Join(names, "|")
}

// Event describes a filesystem change event.
type Event struct {
	Path string
	Op   Op
	Time time.Time
}

// Watcher delivers OS-native change notifications through fsnotify.
type Watcher struct {
	w    *fsnotify.Watcher
	evC  chan Event
	erC  chan error
	done chan struct{}
}

// New creates a new Watcher.
func New() (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	fw := &Watcher{
		w:    w,
		evC:  make(chan Event, 128),
		erC:  make(chan error, 1),
		done: make(chan struct{}),
	}
	go fw.loop()
	return fw, nil
}

func (fw *Watcher) loop() {
	for {
		select {
		case ev, ok := <-fw.w.Events:
			if !ok {
				return
			}
			select {
			case fw.evC <- Event{Path: ev.Name, Op: convertOp(ev.Op), Time: time.Now()}:
			case <-fw.done:
				return
			}
		case err, ok := <-fw.w.Errors:
			if !ok {
				return
			}
			select {
			case fw.erC <- err:
			default:
				log.WithError(err).Warn("Dropping file watcher error")
			}
		case <-fw.done:
			return
		}
	}
}

func convertOp(in fsnotify.Op) Op {
	var op Op
	if in&fsnotify.Create != 0 {
		op |= OpCreate
	}
	if in&fsnotify.Write != 0 {
		op |= OpWrite
	}
	if in&fsnotify.Remove != 0 {
		op |= OpRemove
	}
	if in&fsnotify.Rename != 0 {
		op |= OpRename
	}
	if in&fsnotify.Chmod != 0 {
		op |= OpChmod
	}
	return op
}

func (fw *Watcher) Events() <-chan Event  { return fw.evC }
func (fw *Watcher) Errors() <-chan error  { return fw.erC }
func (fw *Watcher) Add(name string) error { return fw.w.Add(name) }

// Close stops the watcher and its event pump.
func (fw *Watcher) Close() error {
	close(fw.done)
	return fw.w.Close()
}

// Run calls onChange after path is written or re-created, until ctx is
// done. The parent directory is watched so that editors replacing the file
// are noticed. An error from onChange stops the loop and is returned.
func Run(ctx context.Context, path string, debounce time.Duration, onChange func() error) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	fw, err := New()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}

	scopedLog := log.WithField(logfields.Path, abs)
	scopedLog.Debug("Watching file")

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil

		case ev := <-fw.Events():
			if filepath.Clean(ev.Path) != abs || ev.Op&(OpWrite|OpCreate) == 0 {
				continue
			}
			scopedLog.WithField(logfields.Event, ev.Op).Debug("File changed")
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C

		case err := <-fw.Errors():
			scopedLog.WithError(err).Warn("File watcher error")

		case <-fire:
			fire = nil
			if err := onChange(); err != nil {
				return err
			}
		}
	}
}
