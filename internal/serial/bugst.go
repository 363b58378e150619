package serial

import (
	"fmt"
	"sort"
	"time"

	bugst "go.bug.st/serial"

	"serimux/internal/config"
)

const driverReadTimeout = 10 * time.Millisecond

// SystemTransport talks to real serial hardware through the OS driver.
type SystemTransport struct {
	readTimeout time.Duration
}

// Ensure SystemTransport implements Transport.
var _ Transport = (*SystemTransport)(nil)

// NewSystemTransport returns the hardware-backed transport.
func NewSystemTransport() *SystemTransport {
	return &SystemTransport{readTimeout: driverReadTimeout}
}

// ListPorts enumerates the system's serial devices in sorted order.
func (t *SystemTransport) ListPorts() ([]string, error) {
	ports, err := bugst.GetPortsList()
	if err != nil {
		return nil, fmt.Errorf("list serial ports: %w", err)
	}
	sort.Strings(ports)
	return ports, nil
}

// Open opens cfg.Port with cfg's line parameters. The driver exposes no
// flow-control knob, so that setting stays display-only.
func (t *SystemTransport) Open(cfg config.Config) (Port, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	mode := &bugst.Mode{
		BaudRate: cfg.BaudRate,
		DataBits: cfg.DataBits,
		Parity:   driverParity(cfg.Parity),
		StopBits: driverStopBits(cfg.StopBits),
	}
	p, err := bugst.Open(cfg.Port, mode)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.Port, err)
	}
	if err := p.SetReadTimeout(t.readTimeout); err != nil {
		p.Close()
		return nil, fmt.Errorf("set read timeout on %s: %w", cfg.Port, err)
	}
	return &systemPort{p: p}, nil
}

func driverParity(p config.Parity) bugst.Parity {
	switch p {
	case config.ParityEven:
		return bugst.EvenParity
	case config.ParityOdd:
		return bugst.OddParity
	default:
		return bugst.NoParity
	}
}

func driverStopBits(n int) bugst.StopBits {
	if n == 2 {
		return bugst.TwoStopBits
	}
	return bugst.OneStopBit
}

type systemPort struct {
	p bugst.Port
}

// Read returns whatever arrived within the driver timeout. The driver
// already reports a timeout as (0, nil), matching the Port contract.
func (s *systemPort) Read(buf []byte) (int, error) {
	return s.p.Read(buf)
}

func (s *systemPort) Write(data []byte) (int, error) {
	return s.p.Write(data)
}

func (s *systemPort) Close() error {
	return s.p.Close()
}
