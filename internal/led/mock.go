//go:build !pi

package led

import (
	log "github.com/sirupsen/logrus"
)

type mockOutput struct {
	name string
}

func (m mockOutput) On() error {
	log.Infof("LED %s: on", m.name)
	return nil
}

func (m mockOutput) Off() error {
	log.Infof("LED %s: off", m.name)
	return nil
}

type mockEngine struct {
	colors []uint32
}

func (d mockEngine) Init() error {
	return nil
}

func (d mockEngine) Render() error {
	log.Debugf("pixel: render %06x", d.colors)
	return nil
}

func (d mockEngine) Wait() error {
	return nil
}

func (d mockEngine) Fini() {
	log.Debug("pixel: fini")
}

func (d mockEngine) Leds(_ int) []uint32 {
	return d.colors
}

func OpenPin(name string, activeHigh bool) (Output, error) {
	log.Infof("Initializing LED on %s without hardware", name)
	return mockOutput{name: name}, nil
}

func OpenPixel(color, brightness uint32) (*Pixel, error) {
	log.Infof("Initializing pixel LED with color %06x without hardware", color)
	return newPixel(mockEngine{colors: make([]uint32, 1)}, color, brightness), nil
}
