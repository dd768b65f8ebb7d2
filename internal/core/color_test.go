package core

import "testing"

func TestRGBHex(t *testing.T) {
	tests := []struct {
		c        RGB
		expected string
	}{
		{ColorBlue, "#0000ff"},
		{ColorWhite, "#ffffff"},
		{RGB{R: 0x12, G: 0x34, B: 0x56}, "#123456"},
	}

	for _, tc := range tests {
		if got := tc.c.Hex(); got != tc.expected {
			t.Errorf("Hex() = %q, expected %q", got, tc.expected)
		}
	}
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#0000FF")
	if err != nil {
		t.Fatalf("ParseHex() error: %v", err)
	}
	if c != ColorBlue {
		t.Errorf("ParseHex(#0000FF) = %v, expected blue", c)
	}

	short, err := ParseHex("#f00")
	if err != nil {
		t.Fatalf("ParseHex() short form error: %v", err)
	}
	if short != (RGB{R: 0xFF}) {
		t.Errorf("ParseHex(#f00) = %v, expected #ff0000", short)
	}

	if _, err := ParseHex("blue"); err == nil {
		t.Error("ParseHex should reject non-hex input")
	}
}

func TestHexRoundTripAllChannels(t *testing.T) {
	for v := 0; v < 256; v++ {
		c := RGB{R: uint8(v), G: uint8(255 - v), B: uint8(v / 2)}
		back, err := ParseHex(c.Hex())
		if err != nil {
			t.Fatalf("ParseHex(%q) error: %v", c.Hex(), err)
		}
		if back != c {
			t.Fatalf("round trip of %v gave %v", c, back)
		}
	}
}

func TestStyleBuilders(t *testing.T) {
	st := Foreground(ColorBlue).WithBackground(ColorWhite)
	if !st.HasFG || st.FG != ColorBlue {
		t.Errorf("Foreground not set: %+v", st)
	}
	if !st.HasBG || st.BG != ColorWhite {
		t.Errorf("Background not set: %+v", st)
	}
	if (Style{}).HasFG || (Style{}).HasBG {
		t.Error("zero Style should carry no colors")
	}
}
