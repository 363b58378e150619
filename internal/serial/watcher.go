package serial

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// DefaultDeviceDir is where serial devices appear on this platform.
const DefaultDeviceDir = "/dev"

// Watcher signals when a serial-looking device node is created or removed,
// so the UI can refresh its port list without polling. Signals are
// coalesced; a burst of device churn produces at least one.
type Watcher struct {
	fsw    *fsnotify.Watcher
	events chan struct{}
}

// NewWatcher watches dir for serial device hotplug.
func NewWatcher(dir string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create device watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}
	w := &Watcher{fsw: fsw, events: make(chan struct{}, 1)}
	go w.loop()
	return w, nil
}

// Events delivers one signal per hotplug burst. The channel closes when
// the watcher shuts down.
func (w *Watcher) Events() <-chan struct{} {
	return w.events
}

// Close stops watching and closes the events channel.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

func (w *Watcher) loop() {
	defer close(w.events)
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Create|fsnotify.Remove) == 0 {
				continue
			}
			if !isSerialDevice(filepath.Base(ev.Name)) {
				continue
			}
			select {
			case w.events <- struct{}{}:
			default:
			}
		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
		}
	}
}

var serialDevicePrefixes = []string{"ttyUSB", "ttyACM", "ttyAMA", "rfcomm", "cu.", "tty."}

func isSerialDevice(name string) bool {
	for _, p := range serialDevicePrefixes {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	return false
}
