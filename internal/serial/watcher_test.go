package serial

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestIsSerialDevice(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"ttyUSB0", true},
		{"ttyACM3", true},
		{"ttyAMA0", true},
		{"cu.usbserial-1410", true},
		{"tty.usbmodem14101", true},
		{"rfcomm0", true},
		{"sda1", false},
		{"random.txt", false},
		{"ttys000", false},
	}
	for _, tt := range tests {
		if got := isSerialDevice(tt.name); got != tt.want {
			t.Errorf("isSerialDevice(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestWatcher_SignalsOnSerialDevice(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "ttyUSB0"), nil, 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-w.Events():
	case <-time.After(3 * time.Second):
		t.Fatal("no hotplug signal within 3s")
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-w.Events():
		t.Fatal("unexpected signal for a non-serial file")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcher_CloseEndsEvents(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}

	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	select {
	case _, ok := <-w.Events():
		if ok {
			t.Fatal("got a signal after Close")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("events channel did not close")
	}
}
