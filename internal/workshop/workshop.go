package workshop

import (
	"context"
	"github.com/callebjorkell/pi-workshop/internal/button"
	"github.com/callebjorkell/pi-workshop/internal/lcd"
	"github.com/callebjorkell/pi-workshop/internal/led"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"time"
)

type Config struct {
	Lines       [2]string
	BlinkCount  int
	BlinkPeriod time.Duration
	// PressedOn lights the LED while the button is held. When false the LED is lit while the button is up.
	PressedOn bool
}

type Workshop struct {
	display *lcd.Display
	led     led.Output
	button  *button.Button
	conf    Config
}

func New(d *lcd.Display, l led.Output, b *button.Button, c Config) *Workshop {
	return &Workshop{
		display: d,
		led:     l,
		button:  b,
		conf:    c,
	}
}

// Run blinks the LED, hooks the button up to it, writes the configured lines to the display and then services
// button events until ctx is cancelled. The LED is switched off before returning.
func (w *Workshop) Run(ctx context.Context) error {
	defer w.shutdown()

	if err := led.Blink(ctx, w.led, w.conf.BlinkCount, w.conf.BlinkPeriod); err != nil {
		return errors.Wrap(err, "blinking LED")
	}
	if ctx.Err() != nil {
		return nil
	}

	Bind(w.button, w.led, w.conf.PressedOn)

	if err := w.display.Init(); err != nil {
		return errors.Wrap(err, "initializing display")
	}
	if err := w.display.Print(w.conf.Lines[0], w.conf.Lines[1]); err != nil {
		return errors.Wrap(err, "writing to display")
	}
	log.Info("Message displayed on LCD.")

	if w.conf.PressedOn {
		log.Info("Press the button to turn ON the LED. Release to turn it OFF.")
	} else {
		log.Info("Press the button to turn OFF the LED. Release to turn it ON.")
	}
	return w.button.Run(ctx)
}

func (w *Workshop) shutdown() {
	if err := w.led.Off(); err != nil {
		log.Warn("Unable to turn the LED off: ", err)
	}
}

// Bind registers callbacks on b that switch out. The callbacks are only invoked when the button fires.
func Bind(b *button.Button, out led.Output, pressedOn bool) {
	pressed, released := out.On, out.Off
	if !pressedOn {
		pressed, released = out.Off, out.On
	}
	b.OnPressed(func() {
		if err := pressed(); err != nil {
			log.Warn("Unable to switch LED on press: ", err)
		}
	})
	b.OnReleased(func() {
		if err := released(); err != nil {
			log.Warn("Unable to switch LED on release: ", err)
		}
	})
}
