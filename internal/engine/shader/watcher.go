package shader

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/Faultbox/orrery/internal/logger"
)

// Shader source extensions that trigger a reload.
var watchedExts = map[string]bool{
	".vert": true,
	".frag": true,
	".glsl": true,
}

// Watcher reports edits to shader sources in a directory.
type Watcher struct {
	fw  *fsnotify.Watcher
	dir string
}

// NewWatcher starts watching dir.
func NewWatcher(dir string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}
	return &Watcher{fw: fw, dir: dir}, nil
}

// Changed drains pending events without blocking and reports whether any
// shader source was written, created or renamed since the last call.
func (w *Watcher) Changed() bool {
	changed := false
	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return changed
			}
			if relevant(ev) {
				changed = true
			}
		case err, ok := <-w.fw.Errors:
			if !ok {
				return changed
			}
			logger.Category(logger.CategoryShader).Warn("watcher error",
				zap.String("dir", w.dir), zap.Error(err))
		default:
			return changed
		}
	}
}

func relevant(ev fsnotify.Event) bool {
	if !watchedExts[filepath.Ext(ev.Name)] {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename)
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.fw.Close()
}
