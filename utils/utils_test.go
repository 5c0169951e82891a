package utils

import "testing"

func bitTest(t *testing.T, in uint16, bits int, expected string) {
	s := BitString(in, bits)
	if s != expected {
		t.Fatalf("BitString(0x%x, %d) != %s (got %s)\n", in, bits, expected, s)
	}

	back, err := ParseBits(s)
	if err != nil {
		t.Fatalf("ParseBits(%s) failed: %s", s, err)
	}
	if back != in&(1<<uint(bits)-1) {
		t.Fatalf("ParseBits(%s) = 0x%x, expected 0x%x", s, back, in)
	}
}

func Test_BitString(t *testing.T) {
	bitTest(t, 0x97, 9, "0_1001_0111")
	bitTest(t, 0x79, 9, "0_0111_1001")
	bitTest(t, 0x0A, 6, "00_1010")
	bitTest(t, 0x1, 1, "1")
	bitTest(t, 0x3, 2, "11")
	bitTest(t, 0xFFFF, 16, "1111_1111_1111_1111")
	bitTest(t, 0x1FF, 4, "1111")
}

func Test_ParseBits(t *testing.T) {
	v, err := ParseBits("0b10_1001_0111")
	if err != nil || v != 0b10_1001_0111 {
		t.Errorf("Got 0b%b (%v)", v, err)
	}

	if _, err := ParseBits("0b102"); err == nil {
		t.Errorf("Expected an error for a non-binary digit")
	}
	if _, err := ParseBits(""); err == nil {
		t.Errorf("Expected an error for an empty string")
	}
	if _, err := ParseBits("1_0000_0000_0000_0000"); err == nil {
		t.Errorf("Expected an error for more than 16 bits")
	}
}
