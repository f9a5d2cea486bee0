package led

import (
	log "github.com/sirupsen/logrus"
	"sync"
)

type wsEngine interface {
	Init() error
	Render() error
	Wait() error
	Fini()
	Leds(channel int) []uint32
}

// Pixel uses a strip of WS281x LEDs as a single light, filled with one color.
type Pixel struct {
	ws    wsEngine
	color uint32
	mu    sync.Mutex
}

func newPixel(ws wsEngine, color uint32, brightness uint32) *Pixel {
	return &Pixel{
		ws:    ws,
		color: withBrightness(color, brightness),
	}
}

func (p *Pixel) On() error {
	log.Debugf("Pixel on with color %06x", p.color)
	return p.setColor(p.color)
}

func (p *Pixel) Off() error {
	log.Debug("Pixel off")
	return p.setColor(0)
}

func (p *Pixel) Close() error {
	err := p.setColor(0)
	p.ws.Fini()
	return err
}

func (p *Pixel) setColor(color uint32) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	leds := p.ws.Leds(0)
	for i := range leds {
		leds[i] = color
	}
	if err := p.ws.Render(); err != nil {
		return err
	}
	return p.ws.Wait()
}

// withBrightness scales every channel of an RGB color to light percent.
func withBrightness(color uint32, light uint32) uint32 {
	if light >= 100 {
		return color
	}
	r := (color >> 16 & 0xff) * light / 100
	g := (color >> 8 & 0xff) * light / 100
	b := (color & 0xff) * light / 100
	return r<<16 | g<<8 | b
}
