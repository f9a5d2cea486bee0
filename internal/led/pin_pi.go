//go:build pi

package led

import (
	"fmt"
	ws "github.com/rpi-ws281x/rpi-ws281x-go"
	log "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

const pixelCount = 64

// OpenPin looks up the named GPIO pin and returns it as an LED, switched off.
func OpenPin(name string, activeHigh bool) (Output, error) {
	log.Infof("Initializing LED on %s", name)
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("unable to initialize periph: %w", err)
	}
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("no such pin %q", name)
	}
	l := NewPin(p, activeHigh)
	return l, l.Off()
}

// OpenPixel initializes the WS281x strip on the default channel.
func OpenPixel(color, brightness uint32) (*Pixel, error) {
	log.Infof("Initializing pixel LED with color %06x", color)
	opt := ws.DefaultOptions
	opt.Channels[0].Brightness = 255
	opt.Channels[0].LedCount = pixelCount

	dev, err := ws.MakeWS2811(&opt)
	if err != nil {
		return nil, err
	}
	if err := dev.Init(); err != nil {
		return nil, err
	}
	return newPixel(dev, color, brightness), nil
}
