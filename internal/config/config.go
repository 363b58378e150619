package config

import (
	"encoding/json"
	"fmt"
)

// Parity is the serial parity setting.
type Parity int

const (
	ParityNone Parity = iota
	ParityEven
	ParityOdd
)

func (p Parity) String() string {
	switch p {
	case ParityEven:
		return "Even"
	case ParityOdd:
		return "Odd"
	default:
		return "None"
	}
}

// Letter returns the single-letter form used in config display strings (N/E/O).
func (p Parity) Letter() byte {
	switch p {
	case ParityEven:
		return 'E'
	case ParityOdd:
		return 'O'
	default:
		return 'N'
	}
}

// MarshalJSON implements json.Marshaler. Parity is stored by name in config files.
func (p Parity) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Parity) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := ParseParity(s)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// ParseParity converts a name back to a Parity value.
func ParseParity(s string) (Parity, error) {
	switch s {
	case "None":
		return ParityNone, nil
	case "Even":
		return ParityEven, nil
	case "Odd":
		return ParityOdd, nil
	}
	return ParityNone, fmt.Errorf("unknown parity: %s", s)
}

// FlowControl is the serial flow-control setting.
type FlowControl int

const (
	FlowNone FlowControl = iota
	FlowHardware
	FlowSoftware
)

func (f FlowControl) String() string {
	switch f {
	case FlowHardware:
		return "Hardware"
	case FlowSoftware:
		return "Software"
	default:
		return "None"
	}
}

// MarshalJSON implements json.Marshaler.
func (f FlowControl) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlowControl) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := ParseFlowControl(s)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// ParseFlowControl converts a name back to a FlowControl value.
func ParseFlowControl(s string) (FlowControl, error) {
	switch s {
	case "None":
		return FlowNone, nil
	case "Hardware":
		return FlowHardware, nil
	case "Software":
		return FlowSoftware, nil
	}
	return FlowNone, fmt.Errorf("unknown flow control: %s", s)
}

// Option catalogues for the cycling field widgets. Order is display order;
// cycling is index arithmetic over these slices.
var (
	BaudRates       = []int{300, 1200, 2400, 4800, 9600, 19200, 38400, 57600, 115200, 230400}
	DataBitsOptions = []int{5, 6, 7, 8}
	StopBitsOptions = []int{1, 2}
	Parities        = []Parity{ParityNone, ParityEven, ParityOdd}
	FlowControls    = []FlowControl{FlowNone, FlowHardware, FlowSoftware}
)

// NextOption returns the element after cur in opts, wrapping at the end.
// When cur is not present, the first element is returned.
func NextOption[T comparable](opts []T, cur T) T {
	for i, v := range opts {
		if v == cur {
			return opts[(i+1)%len(opts)]
		}
	}
	return opts[0]
}

// PrevOption returns the element before cur in opts, wrapping at the start.
func PrevOption[T comparable](opts []T, cur T) T {
	for i, v := range opts {
		if v == cur {
			return opts[(i+len(opts)-1)%len(opts)]
		}
	}
	return opts[0]
}

// Config holds the serial parameters for one connection.
type Config struct {
	Port        string      `json:"port"`
	BaudRate    int         `json:"baud_rate"`
	DataBits    int         `json:"data_bits"`
	Parity      Parity      `json:"parity"`
	StopBits    int         `json:"stop_bits"`
	FlowControl FlowControl `json:"flow_control"`
}

// Default returns the standard 9600 8-N-1 configuration with no port selected.
func Default() Config {
	return Config{
		Port:        "",
		BaudRate:    9600,
		DataBits:    8,
		Parity:      ParityNone,
		StopBits:    1,
		FlowControl: FlowNone,
	}
}

// WithPort returns a default configuration for the given port.
func WithPort(port string) Config {
	c := Default()
	c.Port = port
	return c
}

// Validate checks the configuration before a connection attempt.
func (c Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port cannot be empty")
	}
	if c.BaudRate <= 0 {
		return fmt.Errorf("baud rate must be greater than 0")
	}
	if c.DataBits < 5 || c.DataBits > 8 {
		return fmt.Errorf("data bits must be between 5 and 8")
	}
	if c.StopBits < 1 || c.StopBits > 2 {
		return fmt.Errorf("stop bits must be 1 or 2")
	}
	return nil
}

// Display formats the configuration as "{port} @ {baud} bps, {data}-{parity}-{stop}".
func (c Config) Display() string {
	return fmt.Sprintf("%s @ %d bps, %d-%c-%d", c.Port, c.BaudRate, c.DataBits, c.Parity.Letter(), c.StopBits)
}
