package transport

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/platinasystems/i2c"

	"github.com/handegar/wm8731/command"
)

// busLock serializes transactions from every I2C writer in the process.
var busLock sync.Mutex

// I2C writes frames through the Linux i2c-dev interface. The codec takes
// the frame as an SMBus byte-data write: the first byte goes out as the
// command and the second as the data.
type I2C struct {
	Bus  int
	Addr int
}

func (h *I2C) WriteFrame(f command.Frame) error {
	b := f.Bytes()

	var data i2c.SMBusData
	data[0] = b[1]

	busLock.Lock()
	defer busLock.Unlock()

	return h.i2cDo(i2c.Write, b[0], i2c.ByteData, &data)
}

func (h *I2C) i2cDo(rw i2c.RW, regOffset uint8, size i2c.SMBusSize, data *i2c.SMBusData) error {
	var bus i2c.Bus

	err := bus.Open(h.Bus)
	if err != nil {
		return errors.Wrapf(err, "wm8731: open i2c-%d", h.Bus)
	}
	defer bus.Close()

	err = bus.ForceSlaveAddress(h.Addr)
	if err != nil {
		return errors.Wrapf(err, "wm8731: slave address 0x%02x", h.Addr)
	}

	err = bus.Do(rw, regOffset, size, data)
	if err != nil {
		return errors.Wrapf(err, "wm8731: i2c-%d write 0x%02x", h.Bus, regOffset)
	}
	return nil
}
