package session

import (
	"bytes"
	"testing"

	"serimux/internal/notify"
)

func TestNew_Defaults(t *testing.T) {
	s := New(0, "Session 1", 0)

	if s.DisplayMode != DisplayHex {
		t.Errorf("DisplayMode = %v, want DisplayHex", s.DisplayMode)
	}
	if !s.AutoScroll {
		t.Error("AutoScroll = false, want true")
	}
	if s.TxMode != TxAscii {
		t.Errorf("TxMode = %v, want TxAscii", s.TxMode)
	}
	if s.TxAppend != AppendNone {
		t.Errorf("TxAppend = %v, want AppendNone", s.TxAppend)
	}
	if s.FocusedField != FieldPort {
		t.Errorf("FocusedField = %v, want FieldPort", s.FocusedField)
	}
	if s.Connected || s.ConfigLocked {
		t.Error("session starts connected or locked")
	}
}

func TestSession_FocusRing(t *testing.T) {
	s := New(0, "s", 0)

	want := []Field{
		FieldBaudRate, FieldDataBits, FieldParity, FieldStopBits,
		FieldFlowControl, FieldLogArea, FieldTxInput, FieldPort,
	}
	for i, w := range want {
		s.FocusNext()
		if s.FocusedField != w {
			t.Fatalf("step %d: FocusedField = %v, want %v", i+1, s.FocusedField, w)
		}
	}

	s.FocusPrev()
	if s.FocusedField != FieldTxInput {
		t.Errorf("FocusPrev from FieldPort = %v, want FieldTxInput", s.FocusedField)
	}
}

func TestField_IsConfig(t *testing.T) {
	for _, f := range ConfigFields {
		if !f.IsConfig() {
			t.Errorf("%v.IsConfig() = false, want true", f)
		}
	}
	if FieldLogArea.IsConfig() {
		t.Error("FieldLogArea.IsConfig() = true")
	}
	if FieldTxInput.IsConfig() {
		t.Error("FieldTxInput.IsConfig() = true")
	}
}

func TestSession_NextFieldValue_BaudRate(t *testing.T) {
	s := New(0, "s", 0)
	s.FocusedField = FieldBaudRate

	if !s.NextFieldValue(nil) {
		t.Fatal("NextFieldValue refused on baud field")
	}
	if s.Config.BaudRate != 19200 {
		t.Errorf("BaudRate = %d, want 19200", s.Config.BaudRate)
	}

	s.Config.BaudRate = 230400
	s.NextFieldValue(nil)
	if s.Config.BaudRate != 300 {
		t.Errorf("BaudRate after wrap = %d, want 300", s.Config.BaudRate)
	}

	s.Config.BaudRate = 9600
	s.PrevFieldValue(nil)
	if s.Config.BaudRate != 4800 {
		t.Errorf("BaudRate = %d, want 4800", s.Config.BaudRate)
	}
}

func TestSession_NextFieldValue_Ports(t *testing.T) {
	s := New(0, "s", 0)
	ports := []string{"/dev/ttyUSB0", "/dev/ttyUSB1"}

	if s.NextFieldValue(nil) {
		t.Error("port cycling succeeded with no ports")
	}
	if !s.NextFieldValue(ports) {
		t.Fatal("port cycling refused with ports available")
	}
	if s.Config.Port != "/dev/ttyUSB0" {
		t.Errorf("Port = %q, want /dev/ttyUSB0", s.Config.Port)
	}
	s.NextFieldValue(ports)
	if s.Config.Port != "/dev/ttyUSB1" {
		t.Errorf("Port = %q, want /dev/ttyUSB1", s.Config.Port)
	}
	s.NextFieldValue(ports)
	if s.Config.Port != "/dev/ttyUSB0" {
		t.Errorf("Port after wrap = %q, want /dev/ttyUSB0", s.Config.Port)
	}
}

func TestSession_NextFieldValue_GatedWhileLocked(t *testing.T) {
	s := New(0, "s", 0)
	s.FocusedField = FieldBaudRate
	s.Lock()

	if s.NextFieldValue(nil) {
		t.Error("NextFieldValue succeeded while locked")
	}
	if s.Config.BaudRate != 9600 {
		t.Errorf("BaudRate changed to %d while locked", s.Config.BaudRate)
	}

	s.Unlock()
	if !s.NextFieldValue(nil) {
		t.Error("NextFieldValue refused after unlock")
	}
}

func TestSession_NextFieldValue_NonConfigFields(t *testing.T) {
	s := New(0, "s", 0)
	for _, f := range []Field{FieldLogArea, FieldTxInput} {
		s.FocusedField = f
		if s.NextFieldValue(nil) {
			t.Errorf("NextFieldValue succeeded on %v", f)
		}
	}
}

func TestSession_SelectPort(t *testing.T) {
	s := New(0, "s", 0)

	if !s.SelectPort("/dev/ttyACM0") {
		t.Fatal("SelectPort refused while unlocked")
	}
	if s.Config.Port != "/dev/ttyACM0" {
		t.Errorf("Port = %q, want /dev/ttyACM0", s.Config.Port)
	}

	s.Lock()
	if s.SelectPort("/dev/ttyACM1") {
		t.Error("SelectPort succeeded while locked")
	}
	if s.Config.Port != "/dev/ttyACM0" {
		t.Errorf("Port changed to %q while locked", s.Config.Port)
	}
}

func TestSession_Toggles(t *testing.T) {
	s := New(0, "s", 0)

	s.ToggleDisplayMode()
	if s.DisplayMode != DisplayText {
		t.Errorf("DisplayMode = %v, want DisplayText", s.DisplayMode)
	}
	s.ToggleDisplayMode()
	if s.DisplayMode != DisplayHex {
		t.Errorf("DisplayMode = %v, want DisplayHex", s.DisplayMode)
	}

	s.ToggleTxMode()
	if s.TxMode != TxHex {
		t.Errorf("TxMode = %v, want TxHex", s.TxMode)
	}
	s.ToggleTxMode()
	if s.TxMode != TxAscii {
		t.Errorf("TxMode = %v, want TxAscii", s.TxMode)
	}
}

func TestSession_AppendModeCycle(t *testing.T) {
	s := New(0, "s", 0)

	want := []AppendMode{AppendLF, AppendCR, AppendCRLF, AppendLFCR, AppendNone}
	for _, w := range want {
		s.NextAppendMode()
		if s.TxAppend != w {
			t.Fatalf("TxAppend = %v, want %v", s.TxAppend, w)
		}
	}
	s.PrevAppendMode()
	if s.TxAppend != AppendLFCR {
		t.Errorf("TxAppend after Prev = %v, want AppendLFCR", s.TxAppend)
	}
}

func TestAppendMode_Bytes(t *testing.T) {
	tests := []struct {
		mode AppendMode
		want []byte
	}{
		{AppendNone, nil},
		{AppendLF, []byte{0x0A}},
		{AppendCR, []byte{0x0D}},
		{AppendCRLF, []byte{0x0D, 0x0A}},
		{AppendLFCR, []byte{0x0A, 0x0D}},
	}
	for _, tt := range tests {
		if got := tt.mode.Bytes(); !bytes.Equal(got, tt.want) {
			t.Errorf("%v.Bytes() = %v, want %v", tt.mode, got, tt.want)
		}
	}
}

func TestSession_Scrolling(t *testing.T) {
	s := New(0, "s", 0)
	for i := 0; i < 5; i++ {
		s.Log.PushRx([]byte{byte(i)})
	}

	s.ScrollUp(3)
	if s.AutoScroll {
		t.Error("ScrollUp left auto-scroll enabled")
	}
	if s.ScrollOffset != 3 {
		t.Errorf("ScrollOffset = %d, want 3", s.ScrollOffset)
	}

	s.ScrollUp(100)
	if s.ScrollOffset != 5 {
		t.Errorf("ScrollOffset = %d, want clamp at 5", s.ScrollOffset)
	}

	s.ScrollDown(2)
	if s.ScrollOffset != 3 {
		t.Errorf("ScrollOffset = %d, want 3", s.ScrollOffset)
	}
	s.ScrollDown(100)
	if s.ScrollOffset != 0 {
		t.Errorf("ScrollOffset = %d, want clamp at 0", s.ScrollOffset)
	}

	s.ScrollUp(2)
	s.ToggleAutoScroll()
	if !s.AutoScroll || s.ScrollOffset != 0 {
		t.Errorf("ToggleAutoScroll: AutoScroll=%v offset=%d, want true/0",
			s.AutoScroll, s.ScrollOffset)
	}
}

func TestSession_TxEditing(t *testing.T) {
	s := New(0, "s", 0)

	s.TxInsert("hello")
	if s.TxInput != "hello" || s.TxCursor != 5 {
		t.Fatalf("after insert: input=%q cursor=%d", s.TxInput, s.TxCursor)
	}

	s.TxHome()
	s.TxInsert("°")
	if s.TxInput != "°hello" || s.TxCursor != 1 {
		t.Fatalf("after rune insert: input=%q cursor=%d", s.TxInput, s.TxCursor)
	}

	s.TxRight()
	s.TxRight()
	s.TxBackspace()
	if s.TxInput != "°hllo" || s.TxCursor != 2 {
		t.Fatalf("after backspace: input=%q cursor=%d", s.TxInput, s.TxCursor)
	}

	s.TxDelete()
	if s.TxInput != "°hlo" {
		t.Fatalf("after delete: input=%q", s.TxInput)
	}

	s.TxEnd()
	if s.TxCursor != 4 {
		t.Errorf("TxEnd cursor = %d, want 4", s.TxCursor)
	}
	s.TxDelete() // no-op at end
	if s.TxInput != "°hlo" {
		t.Errorf("delete at end changed input to %q", s.TxInput)
	}

	s.TxHome()
	s.TxBackspace() // no-op at start
	if s.TxInput != "°hlo" || s.TxCursor != 0 {
		t.Errorf("backspace at start: input=%q cursor=%d", s.TxInput, s.TxCursor)
	}

	s.TxClear()
	if s.TxInput != "" || s.TxCursor != 0 {
		t.Errorf("after clear: input=%q cursor=%d", s.TxInput, s.TxCursor)
	}
}

func TestSession_Notifications(t *testing.T) {
	s := New(0, "s", 0)

	s.AddError("open failed")
	s.AddSuccess("connected")

	if s.Notifications.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Notifications.Len())
	}
	latest, ok := s.Notifications.Latest()
	if !ok {
		t.Fatal("Latest() empty")
	}
	if latest.Level != notify.LevelSuccess {
		t.Errorf("latest level = %v, want success", latest.Level)
	}
	if latest.Message != "connected" {
		t.Errorf("latest message = %q", latest.Message)
	}
}
