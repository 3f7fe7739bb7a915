package fpaq0f2

import "testing"

func TestSplitInvariant(t *testing.T) {
	cases := []struct{ x1, x2 uint32 }{
		{0, 0xFFFFFFFF},
		{0, 1},
		{0x7FFFFFFF, 0x80000000},
		{100, 200},
	}
	for _, c := range cases {
		for _, p := range []uint16{0, 1, 0x7FFF, 0x8000, 0xFFFE} {
			xmid := split(c.x1, c.x2, p)
			if xmid < c.x1 || xmid >= c.x2 {
				t.Fatalf("split(%d,%d,%d) = %d, want in [%d,%d)", c.x1, c.x2, p, xmid, c.x1, c.x2)
			}
		}
	}
}

func TestEncodeDecodeRoundTripBits(t *testing.T) {
	bits := []uint32{1, 0, 1, 1, 0, 0, 0, 1, 1, 1, 0, 1, 0, 0, 1, 0}

	out := make([]byte, 64)
	enc := NewEncoder(out)
	for _, b := range bits {
		if !enc.Encode(b) {
			t.Fatal("unexpected overflow")
		}
	}
	if !enc.Flush() {
		t.Fatal("unexpected overflow on flush")
	}
	n := enc.BufIdx()

	dec := NewDecoder(out[:n])
	for i, want := range bits {
		got := dec.Decode()
		if got != want {
			t.Fatalf("bit %d: got %d, want %d", i, got, want)
		}
	}
}

func TestEncodeReportsOverflow(t *testing.T) {
	out := make([]byte, 0)
	enc := NewEncoder(out)
	ok := true
	for i := 0; i < 64 && ok; i++ {
		ok = enc.Encode(uint32(i) & 1)
	}
	if ok {
		t.Fatal("expected overflow with zero-capacity buffer")
	}
}

func TestDecoderPrimesFromShortInput(t *testing.T) {
	// Fewer than four bytes of input must not panic, and must prime x
	// with zeros for the missing bytes.
	dec := NewDecoder([]byte{0xAB})
	if dec.x != 0xAB000000 {
		t.Fatalf("x = %#x, want 0xab000000", dec.x)
	}
	_ = dec.Decode()
}

func TestDecoderPrimesFromEmptyInput(t *testing.T) {
	dec := NewDecoder(nil)
	if dec.x != 0 {
		t.Fatalf("x = %#x, want 0 for empty input", dec.x)
	}
}
