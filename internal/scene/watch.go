package scene

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/Faultbox/cullcore/internal/logger"
)

// Update is a reload attempt triggered by a change to the watched file.
// Exactly one of Scene and Err is set.
type Update struct {
	Scene *Scene
	Err   error
}

// Watcher reloads a scene file whenever it is written or replaced.
type Watcher struct {
	path string
	log  *zap.Logger

	fsnotify *fsnotify.Watcher
	updates  chan Update
	done     chan struct{}
	once     sync.Once
}

// Watch starts watching path. The parent directory is watched so editors
// that replace the file on save are seen too.
func Watch(path string, log *zap.Logger) (*Watcher, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		path:     filepath.Clean(path),
		log:      logger.OrNop(log),
		fsnotify: fsWatch,
		updates:  make(chan Update),
		done:     make(chan struct{}),
	}

	if err := fsWatch.Add(filepath.Dir(w.path)); err != nil {
		fsWatch.Close()
		return nil, fmt.Errorf("watching %s: %w", w.path, err)
	}

	go w.start()
	return w, nil
}

// Updates delivers reload results until the watcher is closed.
func (w *Watcher) Updates() <-chan Update {
	return w.updates
}

// Close stops the watcher and closes Updates.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fsnotify.Close()
	})
	return err
}

func (w *Watcher) start() {
	defer close(w.updates)

	for {
		select {
		case e, ok := <-w.fsnotify.Events:
			if !ok {
				return
			}
			if filepath.Clean(e.Name) != w.path || e.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}

			w.log.Debug("scene changed", zap.String("path", w.path), zap.Stringer("op", e.Op))
			s, err := Load(w.path, w.log)

			select {
			case w.updates <- Update{Scene: s, Err: err}:
			case <-w.done:
				return
			}

		case err, ok := <-w.fsnotify.Errors:
			if !ok {
				return
			}
			w.log.Warn("scene watcher error", zap.Error(err))

		case <-w.done:
			return
		}
	}
}
