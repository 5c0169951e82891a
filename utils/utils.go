package utils

import (
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"

	"github.com/handegar/wm8731/settings"
)

func Assert(cond bool, format string, args ...interface{}) {
	if !cond {
		color.Red("Assertion failed: "+format, args...)
		os.Exit(-1)
	}
}

// BitString prints the lowest 'bits' bits of v in groups of four, counted
// from the LSB: BitString(0x97, 9) is "0_1001_0111".
func BitString(v uint16, bits int) string {
	var sb strings.Builder
	for i := bits - 1; i >= 0; i-- {
		if v>>uint(i)&1 == 1 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
		if i > 0 && i%4 == 0 {
			sb.WriteByte('_')
		}
	}
	return sb.String()
}

// ParseBits reads a binary literal the way BitString prints it. A "0b"
// prefix and underscores are allowed.
func ParseBits(s string) (uint16, error) {
	s = strings.TrimPrefix(strings.ReplaceAll(s, "_", ""), "0b")
	if len(s) == 0 || len(s) > 16 {
		return 0, errors.Errorf("invalid bit string %q", s)
	}

	var v uint16
	for _, c := range s {
		switch c {
		case '0':
			v <<= 1
		case '1':
			v = v<<1 | 1
		default:
			return 0, errors.Errorf("invalid bit %q", c)
		}
	}
	return v, nil
}

func Debugf(format string, args ...interface{}) {
	if settings.PrintDebug {
		color.Cyan(format, args...)
	}
}

func Warnf(format string, args ...interface{}) {
	color.Yellow(format, args...)
}

func Errorf(format string, args ...interface{}) {
	color.Red(format, args...)
}
