package serial

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/creack/pty"
	"golang.org/x/term"

	"serimux/internal/config"
)

// DemoEnv enables the pty-backed demo transport when set to a non-empty
// value, for trying the UI without serial hardware.
const DemoEnv = "SERIMUX_DEMO"

const (
	demoPollTimeout = 200 * time.Millisecond
	demoHeartbeat   = time.Second
)

// DemoTransport exposes one virtual serial device backed by a pty pair.
// The listed port name is a real tty path, so other programs can open the
// far end and talk to the app. A feeder goroutine echoes everything sent
// and emits a heartbeat line every second so the log shows traffic
// immediately.
type DemoTransport struct {
	master *os.File
	tty    *os.File
	done   chan struct{}
	once   sync.Once
}

// Ensure DemoTransport implements Transport.
var _ Transport = (*DemoTransport)(nil)

// NewDemoTransport opens the pty pair and starts the feeder.
func NewDemoTransport() (*DemoTransport, error) {
	master, tty, err := pty.Open()
	if err != nil {
		return nil, fmt.Errorf("open demo pty: %w", err)
	}
	// Raw mode keeps the line discipline from echoing or buffering.
	_, _ = term.MakeRaw(int(tty.Fd()))

	d := &DemoTransport{master: master, tty: tty, done: make(chan struct{})}
	go d.feed()
	return d, nil
}

// ListPorts returns the demo tty's path.
func (d *DemoTransport) ListPorts() ([]string, error) {
	return []string{d.tty.Name()}, nil
}

// Open hands out the app side of the pty pair. Closing the returned port
// does not tear down the device; the session can reconnect to it.
func (d *DemoTransport) Open(cfg config.Config) (Port, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Port != d.tty.Name() {
		return nil, fmt.Errorf("unknown port %q", cfg.Port)
	}
	return &filePort{f: d.master, timeout: driverReadTimeout}, nil
}

// Close stops the feeder and releases both pty ends.
func (d *DemoTransport) Close() error {
	d.once.Do(func() {
		close(d.done)
		d.tty.Close()
		d.master.Close()
	})
	return nil
}

func (d *DemoTransport) feed() {
	buf := make([]byte, ReadBufferSize)
	seq := 0
	last := time.Now()
	for {
		select {
		case <-d.done:
			return
		default:
		}

		d.tty.SetReadDeadline(time.Now().Add(demoPollTimeout))
		n, err := d.tty.Read(buf)
		if n > 0 {
			d.tty.Write(buf[:n])
		}
		if err != nil && !errors.Is(err, os.ErrDeadlineExceeded) {
			return
		}
		if time.Since(last) >= demoHeartbeat {
			seq++
			fmt.Fprintf(d.tty, "HB %04d OK\r\n", seq)
			last = time.Now()
		}
	}
}

// filePort adapts an *os.File to the Port contract using read deadlines.
type filePort struct {
	f       *os.File
	timeout time.Duration
	closed  bool
}

func (p *filePort) Read(buf []byte) (int, error) {
	if p.closed {
		return 0, os.ErrClosed
	}
	p.f.SetReadDeadline(time.Now().Add(p.timeout))
	n, err := p.f.Read(buf)
	if err != nil && errors.Is(err, os.ErrDeadlineExceeded) {
		return n, nil
	}
	return n, err
}

func (p *filePort) Write(data []byte) (int, error) {
	if p.closed {
		return 0, os.ErrClosed
	}
	return p.f.Write(data)
}

// Close detaches from the shared pty without closing it.
func (p *filePort) Close() error {
	p.closed = true
	return nil
}
