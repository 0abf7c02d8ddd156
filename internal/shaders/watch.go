package shaders

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"shader-showcase/internal/materials"
)

// Change reports a shader file that was written on disk. All is set when the
// shared vertex stage changed or changes were dropped, and every program must
// be rebuilt. Err carries
// watcher failures; Kind and All are unset then.
type Change struct {
	Path string
	Kind materials.Kind
	All  bool
	Err  error
}

// changeBuffer bounds pending changes. When it fills up, further changes
// collapse into one Change with All set, sent once the reader catches up.
const changeBuffer = 32

// Watch reports writes to shader files in dir until ctx is cancelled. The
// returned channel is closed when the watcher stops. Changes are meant to be
// drained by the frame loop, which owns the GL context.
func Watch(ctx context.Context, dir string) (<-chan Change, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch shaders: %w", err)
	}
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watch shaders %s: %w", dir, err)
	}

	out := make(chan Change, changeBuffer)
	go func() {
		defer w.Close()
		forward(ctx, w.Events, w.Errors, out)
	}()
	return out, nil
}

// forward turns watcher events into changes on out and closes out when ctx
// is done or the watcher stops. It never blocks on a full out: the change is
// dropped and a full reload is queued instead.
func forward(ctx context.Context, events <-chan fsnotify.Event, errs <-chan error, out chan<- Change) {
	defer close(out)
	overflow := false
	send := func(c Change) {
		select {
		case out <- c:
		default:
			overflow = true
		}
	}
	for {
		// A nil channel never becomes ready, so the reload case is off until needed.
		var retry chan<- Change
		if overflow {
			retry = out
		}
		select {
		case <-ctx.Done():
			return
		case retry <- Change{All: true}:
			overflow = false
		case ev, ok := <-events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if c, ok := changeFor(ev.Name); ok && !overflow {
				send(c)
			}
		case err, ok := <-errs:
			if !ok {
				return
			}
			if !overflow {
				send(Change{Err: err})
			}
		}
	}
}

// changeFor maps a file path to the kind whose program it feeds.
func changeFor(path string) (Change, bool) {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if ext != ".fs" && ext != ".vs" {
		return Change{}, false
	}
	stem := strings.TrimSuffix(base, ext)
	if base == CommonVertex {
		return Change{Path: path, All: true}, true
	}
	k, err := materials.ParseKind(stem)
	if err != nil {
		return Change{}, false
	}
	return Change{Path: path, Kind: k}, true
}

// Apply reloads the programs a change affects.
func (l *Library) Apply(c Change) {
	if c.Err != nil {
		return
	}
	if c.All {
		l.ReloadAll()
		return
	}
	l.Reload(c.Kind)
}
