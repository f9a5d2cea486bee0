package lcd

import (
	"periph.io/x/conn/v3/i2c"
)

// BusTransport sends single byte transactions over an I2C bus.
type BusTransport struct {
	Bus i2c.Bus
}

func (t BusTransport) Send(addr uint16, value byte) error {
	return t.Bus.Tx(addr, []byte{value}, nil)
}
