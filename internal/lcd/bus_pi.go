//go:build pi

package lcd

import (
	"fmt"
	log "github.com/sirupsen/logrus"
	"io"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

// OpenTransport opens the named I2C bus. An empty name selects the first bus available.
func OpenTransport(bus string) (Transport, io.Closer, error) {
	if _, err := host.Init(); err != nil {
		return nil, nil, fmt.Errorf("unable to initialize periph: %w", err)
	}
	b, err := i2creg.Open(bus)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to open I2C bus %q: %w", bus, err)
	}
	log.Infof("Using I2C bus %v", b)
	return BusTransport{Bus: b}, b, nil
}
