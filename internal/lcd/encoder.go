package lcd

import (
	"github.com/pkg/errors"
	"sync"
	"time"
)

// Transport writes a single byte to the device at the given address. Calls must complete before returning.
type Transport interface {
	Send(addr uint16, value byte) error
}

// Encoder pushes bytes through the 4-bit data path of the display, one nibble at a time.
type Encoder struct {
	transport Transport
	addr      uint16
	delay     time.Duration
	sleep     func(time.Duration)
	mu        sync.Mutex
}

func NewEncoder(t Transport, addr uint16, delay time.Duration) *Encoder {
	return &Encoder{
		transport: t,
		addr:      addr,
		delay:     delay,
		sleep:     time.Sleep,
	}
}

// SendByte transmits the high nibble followed by the low nibble of value, latching each with a strobe pulse.
func (e *Encoder) SendByte(value byte, mode Mode) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	high := byte(mode) | (value & 0xF0) | backlightBit
	low := byte(mode) | ((value << 4) & 0xF0) | backlightBit

	if err := e.write(high); err != nil {
		return err
	}
	if err := e.strobe(high); err != nil {
		return err
	}
	if err := e.write(low); err != nil {
		return err
	}
	return e.strobe(low)
}

func (e *Encoder) strobe(bits byte) error {
	e.sleep(e.delay)
	if err := e.write(bits | enableBit); err != nil {
		return err
	}
	e.sleep(e.delay)
	if err := e.write(bits &^ enableBit); err != nil {
		return err
	}
	e.sleep(e.delay)
	return nil
}

func (e *Encoder) write(b byte) error {
	if err := e.transport.Send(e.addr, b); err != nil {
		return errors.Wrapf(err, "writing 0x%02x to device 0x%02x", b, e.addr)
	}
	return nil
}
