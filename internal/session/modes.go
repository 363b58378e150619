package session

// DisplayMode selects how log bytes are rendered.
type DisplayMode int

const (
	DisplayHex DisplayMode = iota
	DisplayText
)

const displayModeCount = 2

func (m DisplayMode) String() string {
	if m == DisplayText {
		return "Text"
	}
	return "Hex"
}

// Toggle returns the other display mode.
func (m DisplayMode) Toggle() DisplayMode {
	return (m + 1) % displayModeCount
}

// TxMode selects how the input line is interpreted when sending.
type TxMode int

const (
	TxHex TxMode = iota
	TxAscii
)

const txModeCount = 2

func (m TxMode) String() string {
	if m == TxAscii {
		return "ASCII"
	}
	return "HEX"
}

// Toggle returns the other tx mode.
func (m TxMode) Toggle() TxMode {
	return (m + 1) % txModeCount
}

// AppendMode selects the byte suffix appended to every send.
type AppendMode int

const (
	AppendNone AppendMode = iota
	AppendLF
	AppendCR
	AppendCRLF
	AppendLFCR
)

const appendModeCount = 5

// Bytes returns the suffix for this append mode.
func (m AppendMode) Bytes() []byte {
	switch m {
	case AppendLF:
		return []byte{0x0A}
	case AppendCR:
		return []byte{0x0D}
	case AppendCRLF:
		return []byte{0x0D, 0x0A}
	case AppendLFCR:
		return []byte{0x0A, 0x0D}
	default:
		return nil
	}
}

func (m AppendMode) String() string {
	switch m {
	case AppendLF:
		return `\n`
	case AppendCR:
		return `\r`
	case AppendCRLF:
		return `\r\n`
	case AppendLFCR:
		return `\n\r`
	default:
		return "None"
	}
}

// Next returns the cyclic successor.
func (m AppendMode) Next() AppendMode {
	return (m + 1) % appendModeCount
}

// Prev returns the cyclic predecessor.
func (m AppendMode) Prev() AppendMode {
	return (m + appendModeCount - 1) % appendModeCount
}

// Field identifies the configuration widget holding keyboard focus.
// The values form a fixed ring walked by Next/Prev.
type Field int

const (
	FieldPort Field = iota
	FieldBaudRate
	FieldDataBits
	FieldParity
	FieldStopBits
	FieldFlowControl
	FieldLogArea
	FieldTxInput
)

const fieldCount = 8

// Next returns the cyclic successor in the focus ring.
func (f Field) Next() Field {
	return (f + 1) % fieldCount
}

// Prev returns the cyclic predecessor in the focus ring.
func (f Field) Prev() Field {
	return (f + fieldCount - 1) % fieldCount
}

// IsConfig reports whether the field edits a serial parameter, and so is
// frozen while the config is locked.
func (f Field) IsConfig() bool {
	return f >= FieldPort && f <= FieldFlowControl
}

func (f Field) String() string {
	switch f {
	case FieldPort:
		return "Port"
	case FieldBaudRate:
		return "Baud"
	case FieldDataBits:
		return "Data"
	case FieldParity:
		return "Parity"
	case FieldStopBits:
		return "Stop"
	case FieldFlowControl:
		return "Flow"
	case FieldLogArea:
		return "Log"
	case FieldTxInput:
		return "TX"
	default:
		return "Unknown"
	}
}

// ConfigFields lists the lockable fields in focus-ring order, for rendering.
var ConfigFields = []Field{
	FieldPort, FieldBaudRate, FieldDataBits, FieldParity, FieldStopBits, FieldFlowControl,
}
