package button

import (
	"context"
	"periph.io/x/conn/v3/gpio"
	"time"
)

var edgeTimeout = time.Second

// PinSource reads a push button on p. With pullUp the button is expected to pull the pin low when pressed.
func PinSource(p gpio.PinIn, pullUp bool, debounce time.Duration) Source {
	timeout := edgeTimeout
	return func(ctx context.Context, emit func(Event)) error {
		pull, active := gpio.PullDown, gpio.High
		if pullUp {
			pull, active = gpio.PullUp, gpio.Low
		}
		if err := p.In(pull, gpio.BothEdges); err != nil {
			return err
		}

		last := p.Read()
		for ctx.Err() == nil {
			// wait for the edge
			if !p.WaitForEdge(timeout) {
				continue
			}

			// debounce
			l := p.Read()
			if l == last {
				continue
			}

			time.Sleep(debounce)
			if l == p.Read() {
				// ... and handle
				last = l
				emit(Event{
					Pressed: l == active,
				})
			}
		}
		return ctx.Err()
	}
}
