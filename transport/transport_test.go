package transport

import (
	"bytes"
	"strings"
	"testing"

	"github.com/eiannone/keyboard"
	"github.com/pkg/errors"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/conntest"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2ctest"
	"periph.io/x/conn/v3/spi"

	"github.com/handegar/wm8731/command"
)

var activate = command.NewActiveControl().Active().Frame()

func Test_Recorder(t *testing.T) {
	var r Recorder
	r.WriteFrame(command.NewReset().Frame())
	r.WriteFrame(activate)

	if len(r.Frames) != 2 || r.Frames[1] != activate {
		t.Fatalf("Got %v", r.Frames)
	}
	r.Reset()
	if len(r.Frames) != 0 {
		t.Errorf("Reset kept %d frames", len(r.Frames))
	}
}

func Test_ConnWritesBigEndian(t *testing.T) {
	rec := &conntest.Record{}
	c := &Conn{C: rec}

	if err := c.WriteFrame(activate); err != nil {
		t.Fatalf("WriteFrame failed: %s", err)
	}
	if len(rec.Ops) != 1 || !bytes.Equal(rec.Ops[0].W, []byte{0x12, 0x01}) {
		t.Errorf("Got %+v", rec.Ops)
	}
}

func Test_ConnOverI2CDev(t *testing.T) {
	bus := &i2ctest.Record{}
	c := &Conn{C: &i2c.Dev{Bus: bus, Addr: AddrCSBLow}}

	if err := c.WriteFrame(command.NewLeftHeadphoneOut().Frame()); err != nil {
		t.Fatalf("WriteFrame failed: %s", err)
	}
	if len(bus.Ops) != 1 {
		t.Fatalf("Expected one transaction. Got %d", len(bus.Ops))
	}
	if bus.Ops[0].Addr != AddrCSBLow || !bytes.Equal(bus.Ops[0].W, []byte{0x04, 0x79}) {
		t.Errorf("Got %+v", bus.Ops[0])
	}
}

func Test_ConnPlayback(t *testing.T) {
	pb := &conntest.Playback{
		Ops:       []conntest.IO{{W: []byte{0x0C, 0x9F}}},
		DontPanic: true,
	}
	c := &Conn{C: pb}

	if err := c.WriteFrame(command.NewReset().Frame()); err != nil {
		t.Fatalf("WriteFrame failed: %s", err)
	}
	if err := c.WriteFrame(activate); err == nil {
		t.Errorf("Expected an error for an unexpected write")
	}
}

type fakeSPI struct {
	packets []spi.Packet
}

func (f *fakeSPI) String() string       { return "fakeSPI" }
func (f *fakeSPI) Tx(w, r []byte) error { return errors.New("use TxPackets") }
func (f *fakeSPI) Duplex() conn.Duplex  { return conn.Half }
func (f *fakeSPI) TxPackets(p []spi.Packet) error {
	f.packets = append(f.packets, p...)
	return nil
}

func Test_SPI16(t *testing.T) {
	port := &fakeSPI{}
	s := &SPI16{C: port}

	if err := s.WriteFrame(activate); err != nil {
		t.Fatalf("WriteFrame failed: %s", err)
	}
	if len(port.packets) != 1 {
		t.Fatalf("Expected one packet. Got %d", len(port.packets))
	}
	p := port.packets[0]
	if p.BitsPerWord != 16 || !bytes.Equal(p.W, []byte{0x01, 0x12}) {
		t.Errorf("Got %+v", p)
	}
}

func Test_I2CMissingBus(t *testing.T) {
	h := &I2C{Bus: 9999, Addr: AddrCSBLow}
	if err := h.WriteFrame(activate); err == nil {
		t.Errorf("Expected an error for a missing bus")
	}

	// The bus lock is released on failure
	if !busLock.TryLock() {
		t.Fatalf("Bus lock still held after a failed write")
	}
	busLock.Unlock()

	done := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() { done <- h.WriteFrame(activate) }()
	}
	for i := 0; i < 2; i++ {
		if err := <-done; err == nil {
			t.Errorf("Expected an error for a missing bus")
		}
	}
}

type keys struct {
	runes []rune
	keys  []keyboard.Key
}

func (k *keys) GetKey() (rune, keyboard.Key, error) {
	if len(k.runes) == 0 {
		return 0, 0, errors.New("no more keys")
	}
	r, key := k.runes[0], k.keys[0]
	k.runes, k.keys = k.runes[1:], k.keys[1:]
	return r, key, nil
}

func Test_Stepper(t *testing.T) {
	rec := &Recorder{}
	var out bytes.Buffer
	s := &Stepper{
		W:   rec,
		Out: &out,
		Keys: &keys{
			runes: []rune{'x', 0, 's', 'q'},
			keys:  []keyboard.Key{0, keyboard.KeyEnter, 0, 0},
		},
	}

	// 'x' is ignored, enter sends
	if err := s.WriteFrame(activate); err != nil {
		t.Fatalf("WriteFrame failed: %s", err)
	}
	if err := s.WriteFrame(command.NewReset().Frame()); err != nil {
		t.Fatalf("Skip failed: %s", err)
	}
	if err := s.WriteFrame(activate); err != ErrAborted {
		t.Fatalf("Expected ErrAborted. Got %v", err)
	}

	if len(rec.Frames) != 1 || rec.Frames[0] != activate {
		t.Errorf("Got %v", rec.Frames)
	}
	if !strings.Contains(out.String(), "Active Control") {
		t.Errorf("Expected a decoded frame in the output:\n%s", out.String())
	}
	if err := s.Close(); err != nil {
		t.Errorf("Close: %s", err)
	}
}
