package led

import (
	log "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/gpio"
)

// Pin is an LED on a GPIO pin. When activeHigh is false the LED lights up with the pin driven low.
type Pin struct {
	pin        gpio.PinOut
	activeHigh bool
}

func NewPin(p gpio.PinOut, activeHigh bool) *Pin {
	return &Pin{pin: p, activeHigh: activeHigh}
}

func (p *Pin) On() error {
	log.Debugf("LED %v on", p.pin)
	return p.pin.Out(p.level(true))
}

func (p *Pin) Off() error {
	log.Debugf("LED %v off", p.pin)
	return p.pin.Out(p.level(false))
}

func (p *Pin) level(on bool) gpio.Level {
	return gpio.Level(on == p.activeHigh)
}
