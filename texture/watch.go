package texture

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/gogpu/uidriver"
)

// Watcher keeps a MemoryStore in sync with a texture directory: created or
// written files are (re)loaded, removed or renamed files are dropped.
type Watcher struct {
	root    string
	store   *MemoryStore
	watcher *fsnotify.Watcher
	done    chan struct{}
	wg      sync.WaitGroup

	closeOnce sync.Once

	// onChange, if set, is called with the texture id after every applied
	// event. Used by tests to synchronize.
	onChange func(id string)
}

// Watch starts watching root and every directory below it.
func Watch(store *MemoryStore, root string) (*Watcher, error) {
	return watch(store, root, nil)
}

func watch(store *MemoryStore, root string, onChange func(string)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return fw.Add(path)
		}
		return nil
	})
	if err != nil {
		_ = fw.Close()
		return nil, err
	}

	w := &Watcher{
		root:     root,
		store:    store,
		watcher:  fw,
		done:     make(chan struct{}),
		onChange: onChange,
	}
	w.wg.Add(1)
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handle(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			uidriver.Logger().Warn("texture: watcher error", "root", w.root, "err", err)
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			w.addDir(event.Name)
			return
		}
	}

	id, err := IDForPath(w.root, event.Name)
	if err != nil {
		return
	}

	switch {
	case event.Has(fsnotify.Create) || event.Has(fsnotify.Write):
		if !w.load(id, event.Name) {
			return
		}
	case event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename):
		w.store.Remove(id)
		uidriver.Logger().Info("texture removed", "id", id)
	default:
		return
	}
	w.notify(id)
}

// addDir starts watching a directory created after Watch and loads the
// files already in it, which may have been written before the watch was
// in place.
func (w *Watcher) addDir(dir string) {
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.watcher.Add(path)
		}
		id, err := IDForPath(w.root, path)
		if err != nil {
			return nil
		}
		if w.load(id, path) {
			w.notify(id)
		}
		return nil
	})
	if err != nil {
		uidriver.Logger().Warn("texture: watch directory", "dir", dir, "err", err)
	}
}

// load reports whether the file at path was stored under id.
func (w *Watcher) load(id, path string) bool {
	err := LoadFile(w.store, id, path)
	if errors.Is(err, ErrUnsupportedFormat) {
		return false
	}
	if err != nil {
		// Editors often write in several steps; the next event retries.
		uidriver.Logger().Debug("texture: reload failed", "id", id, "err", err)
		return false
	}
	return true
}

func (w *Watcher) notify(id string) {
	if w.onChange != nil {
		w.onChange(id)
	}
}

// Close stops the watcher and waits for its goroutine to exit. Calls after
// the first return nil.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.watcher.Close()
		w.wg.Wait()
	})
	return err
}
