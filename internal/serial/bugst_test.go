package serial

import (
	"testing"

	bugst "go.bug.st/serial"

	"serimux/internal/config"
)

func TestDriverParity(t *testing.T) {
	tests := []struct {
		in   config.Parity
		want bugst.Parity
	}{
		{config.ParityNone, bugst.NoParity},
		{config.ParityEven, bugst.EvenParity},
		{config.ParityOdd, bugst.OddParity},
	}
	for _, tt := range tests {
		if got := driverParity(tt.in); got != tt.want {
			t.Errorf("driverParity(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDriverStopBits(t *testing.T) {
	if got := driverStopBits(1); got != bugst.OneStopBit {
		t.Errorf("driverStopBits(1) = %v", got)
	}
	if got := driverStopBits(2); got != bugst.TwoStopBits {
		t.Errorf("driverStopBits(2) = %v", got)
	}
}

func TestSystemTransport_OpenRejectsInvalidConfig(t *testing.T) {
	tr := NewSystemTransport()

	cases := []config.Config{
		config.Default(), // no port
		{Port: "/dev/ttyUSB0", BaudRate: 0, DataBits: 8, StopBits: 1},
		{Port: "/dev/ttyUSB0", BaudRate: 9600, DataBits: 9, StopBits: 1},
		{Port: "/dev/ttyUSB0", BaudRate: 9600, DataBits: 8, StopBits: 3},
	}
	for _, cfg := range cases {
		if _, err := tr.Open(cfg); err == nil {
			t.Errorf("Open(%+v) succeeded, want validation error", cfg)
		}
	}
}
