package watch

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// Notifier is the push-mode Source. A goroutine forwards fsnotify write and
// create events for the target file into a Queue; it never decodes or touches
// render state.
//
// The parent directory is watched rather than the file itself so that editors
// which save by writing a temporary file and renaming it over the target are
// still seen (as a create).
type Notifier struct {
	path    string
	queue   *Queue
	watcher *fsnotify.Watcher
	log     zerolog.Logger
	wg      sync.WaitGroup
	once    sync.Once
}

// NewNotifier starts watching path. queueSize bounds the number of pending
// events.
func NewNotifier(path string, queueSize int, log zerolog.Logger) (*Notifier, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}
	n := &Notifier{
		path:    abs,
		queue:   NewQueue(queueSize),
		watcher: w,
		log:     log.With().Str("component", "watch").Str("path", abs).Logger(),
	}
	n.wg.Add(1)
	go n.forward()
	return n, nil
}

func (n *Notifier) forward() {
	defer n.wg.Done()
	for {
		select {
		case ev, ok := <-n.watcher.Events:
			if !ok {
				return
			}
			if op, match := n.filter(ev); match {
				if !n.queue.Push(Event{Path: n.path, Op: op}) {
					n.log.Trace().Msg("watch queue full, event dropped")
				}
			}
		case err, ok := <-n.watcher.Errors:
			if !ok {
				return
			}
			n.log.Warn().Err(err).Msg("file watcher error")
		}
	}
}

func (n *Notifier) filter(ev fsnotify.Event) (Op, bool) {
	if filepath.Clean(ev.Name) != n.path {
		return 0, false
	}
	var op Op
	if ev.Has(fsnotify.Write) {
		op |= Write
	}
	if ev.Has(fsnotify.Create) {
		op |= Create
	}
	return op, op != 0
}

// TryRecv drains every pending event and reports a single change.
func (n *Notifier) TryRecv() (string, bool) {
	ev, ok := n.queue.Drain()
	return ev.Path, ok
}

// Close stops the watcher and waits for the forwarding goroutine to exit.
func (n *Notifier) Close() error {
	var err error
	n.once.Do(func() {
		err = n.watcher.Close()
		n.wg.Wait()
	})
	return err
}
