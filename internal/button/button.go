//go:build pi

package button

import (
	"fmt"
	log "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
	"time"
)

// Open initializes the named button pin.
func Open(name string, pullUp bool, debounce time.Duration) (*Button, error) {
	log.Infof("Initializing button handler on %s", name)
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("unable to initialize periph: %w", err)
	}
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("no such pin %q", name)
	}
	return New(PinSource(p, pullUp, debounce)), nil
}
