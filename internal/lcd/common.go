package lcd

import (
	"errors"
	"time"
)

type Line byte

func (l Line) String() string {
	switch l {
	case Line1:
		return "L1"
	case Line2:
		return "L2"
	}
	return "N/A"
}

func (l Line) valid() bool {
	return l == Line1 || l == Line2
}

type Mode byte

func (m Mode) String() string {
	if m == Data {
		return "data"
	}
	return "command"
}

const (
	Line1 Line = 0x80
	Line2 Line = 0xC0

	Command Mode = 0x00
	Data    Mode = 0x01

	DefaultAddress = 0x27
	DefaultWidth   = 16

	// PCF8574 backpack wiring: P0=RS, P2=E, P3=backlight, P4-P7=D4-D7.
	enableBit    byte = 0x04
	backlightBit byte = 0x08

	MinStrobeDelay = 500 * time.Microsecond
	MinSettleDelay = 5 * time.Millisecond
)

// initSequence probes 8-bit mode, switches to 4-bit, sets entry mode, turns the display on with the cursor
// off, selects 2 lines with a 5x8 font and finally clears the display.
var initSequence = []byte{0x33, 0x32, 0x06, 0x0C, 0x28, 0x01}

var (
	ErrNotInitialized = errors.New("lcd: display is not initialized")
	ErrInvalidLine    = errors.New("lcd: invalid line selector")
	ErrUnencodable    = errors.New("lcd: character cannot be encoded in a single byte")
)

type Config struct {
	Address     uint16
	Width       int
	StrobeDelay time.Duration
	SettleDelay time.Duration
}

func DefaultConfig() Config {
	return Config{
		Address:     DefaultAddress,
		Width:       DefaultWidth,
		StrobeDelay: MinStrobeDelay,
		SettleDelay: MinSettleDelay,
	}
}
