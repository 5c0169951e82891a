package transport

import (
	"github.com/pkg/errors"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/spi"

	"github.com/handegar/wm8731/command"
)

// Conn writes each frame as two bytes, MSB first. It works for an i2c.Dev
// and for an SPI port opened with 8 bits per word.
type Conn struct {
	C conn.Conn
}

func (c *Conn) WriteFrame(f command.Frame) error {
	b := f.Bytes()
	if err := c.C.Tx(b[:], nil); err != nil {
		return errors.Wrapf(err, "wm8731: %s", c.C)
	}
	return nil
}

// SPI16 writes each frame as a single 16-bit word. spidev takes words in
// host byte order; the buffer is little-endian as on arm and x86 hosts.
type SPI16 struct {
	C spi.Conn
}

func (s *SPI16) WriteFrame(f command.Frame) error {
	w := f.Words()
	buf := []byte{byte(w[0]), byte(w[0] >> 8)}

	err := s.C.TxPackets([]spi.Packet{{W: buf, BitsPerWord: 16}})
	if err != nil {
		return errors.Wrapf(err, "wm8731: %s", s.C)
	}
	return nil
}
