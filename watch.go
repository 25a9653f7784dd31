// FILE: inifile/watch.go
package inifile

import (
	"context"
	"fmt"
	"os"
	"slices"
	"sync"
	"sync/atomic"
	"time"
)

// Timing constants for file watching.
const (
	SpinWaitInterval    = 5 * time.Millisecond   // CPU-friendly busy-wait quantum
	MinPollInterval     = 100 * time.Millisecond // Hard floor for file stat polling
	ShutdownTimeout     = 100 * time.Millisecond // Graceful watcher termination window
	DefaultDebounce     = 500 * time.Millisecond // File change coalescence period
	DefaultPollInterval = time.Second            // Standard file monitoring frequency

	DefaultMaxWatchers = 100 // Prevent resource exhaustion
)

// WatchOptions configures file watching behavior.
type WatchOptions struct {
	// PollInterval for file stat checks (minimum 100ms)
	PollInterval time.Duration

	// Debounce duration to avoid rapid reloads
	Debounce time.Duration

	// MaxWatchers limits concurrent subscriber channels
	MaxWatchers int
}

// DefaultWatchOptions returns sensible defaults for file watching.
func DefaultWatchOptions() WatchOptions {
	return WatchOptions{
		PollInterval: DefaultPollInterval,
		Debounce:     DefaultDebounce,
		MaxWatchers:  DefaultMaxWatchers,
	}
}

// Watcher polls an ini file and reloads it when it changes. Each reload
// parses into a fresh Document which replaces the previous one wholesale,
// so documents handed out by Document stay coherent: the Document type
// itself carries no locking, the Watcher owns the only mutable reference.
type Watcher struct {
	mu   sync.RWMutex
	path string
	opts WatchOptions

	ctx    context.Context
	cancel context.CancelFunc

	doc         *Document
	lastModTime time.Time
	lastSize    int64

	watching      atomic.Bool
	subscribers   map[int64]chan string
	subscriberID  atomic.Int64
	debounceTimer *time.Timer
}

// WatchFile loads the file and starts watching it for changes. The initial
// load must succeed; afterwards a reload failure is reported to subscribers
// and the previous document stays in place.
func WatchFile(path string, opts WatchOptions) (*Watcher, error) {
	if opts.PollInterval < MinPollInterval {
		opts.PollInterval = MinPollInterval
	}
	if opts.MaxWatchers <= 0 {
		opts.MaxWatchers = DefaultMaxWatchers
	}

	doc := New()
	if err := doc.LoadFile(path, false); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		path:        path,
		opts:        opts,
		ctx:         ctx,
		cancel:      cancel,
		doc:         doc,
		subscribers: make(map[int64]chan string),
	}

	if info, err := os.Stat(path); err == nil {
		w.lastModTime = info.ModTime()
		w.lastSize = info.Size()
	}

	go w.watchLoop()
	return w, nil
}

// Document returns the current document. It must be treated as read-only:
// reloads never mutate a handed-out document, they swap in a new one.
func (w *Watcher) Document() *Document {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.doc
}

// Subscribe returns a channel receiving "section.key" paths of entries that
// changed on reload (or a bare section name for raw-mode and section-level
// changes). The channel closes when the watcher stops. Beyond MaxWatchers
// subscriptions, a closed channel is returned.
func (w *Watcher) Subscribe() <-chan string {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.subscribers) >= w.opts.MaxWatchers {
		ch := make(chan string)
		close(ch)
		return ch
	}

	// Buffered to avoid blocking the reload path.
	ch := make(chan string, 10)
	id := w.subscriberID.Add(1)
	w.subscribers[id] = ch

	go func() {
		<-w.ctx.Done()
		w.mu.Lock()
		delete(w.subscribers, id)
		close(ch)
		w.mu.Unlock()
	}()

	return ch
}

// IsWatching reports whether the watch loop is running.
func (w *Watcher) IsWatching() bool {
	return w.watching.Load()
}

// Stop terminates the watcher and waits briefly for the loop to exit.
func (w *Watcher) Stop() {
	w.cancel()

	w.mu.Lock()
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
		w.debounceTimer = nil
	}
	w.mu.Unlock()

	deadline := time.Now().Add(ShutdownTimeout)
	for w.watching.Load() && time.Now().Before(deadline) {
		time.Sleep(SpinWaitInterval)
	}
}

// watchLoop is the main file polling loop.
func (w *Watcher) watchLoop() {
	if !w.watching.CompareAndSwap(false, true) {
		return
	}
	defer w.watching.Store(false)

	ticker := time.NewTicker(w.opts.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			w.checkAndReload()
		}
	}
}

// checkAndReload compares file metadata and schedules a debounced reload.
func (w *Watcher) checkAndReload() {
	info, err := os.Stat(w.path)
	if err != nil {
		if os.IsNotExist(err) {
			w.notify("file_deleted")
		}
		return
	}

	if info.ModTime().Equal(w.lastModTime) && info.Size() == w.lastSize {
		return
	}
	w.lastModTime = info.ModTime()
	w.lastSize = info.Size()

	w.mu.Lock()
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.debounceTimer = time.AfterFunc(w.opts.Debounce, w.reload)
	w.mu.Unlock()
}

// reload parses the file into a fresh document, swaps it in, and notifies
// subscribers of every changed path.
func (w *Watcher) reload() {
	next := New()
	if err := next.LoadFile(w.path, false); err != nil {
		w.notify(fmt.Sprintf("reload_error:%v", err))
		return
	}

	w.mu.Lock()
	previous := w.doc
	w.doc = next
	w.mu.Unlock()

	for _, path := range diffDocuments(previous, next) {
		w.notify(path)
	}
}

// notify sends a change notification to all subscribers, dropping it for
// subscribers whose channel is full.
func (w *Watcher) notify(path string) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	for _, ch := range w.subscribers {
		select {
		case ch <- path:
		default:
		}
	}
}

// diffDocuments lists changed paths between two documents: "section.key"
// for entry changes, the bare section name for added/removed sections and
// raw body changes.
func diffDocuments(previous, next *Document) []string {
	var changes []string

	for _, ns := range next.Sections() {
		ps, existed := previous.Section(ns.Name())
		if !existed {
			changes = append(changes, ns.Name())
			continue
		}

		if !slices.Equal(ps.lines, ns.lines) {
			changes = append(changes, ns.Name())
		}

		for _, key := range ns.sortedKeys() {
			nv, _ := ns.Get(key)
			if pv, ok := ps.Get(key); !ok || pv != nv {
				changes = append(changes, ns.Name()+"."+key)
			}
		}
		for _, key := range ps.sortedKeys() {
			if !ns.Exists(key) {
				changes = append(changes, ps.Name()+"."+key)
			}
		}
	}

	for _, ps := range previous.Sections() {
		if _, exists := next.Section(ps.Name()); !exists {
			changes = append(changes, ps.Name())
		}
	}

	return changes
}
