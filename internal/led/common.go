package led

import (
	"context"
	log "github.com/sirupsen/logrus"
	"time"
)

// Output is anything that can be switched on and off.
type Output interface {
	On() error
	Off() error
}

// Blink switches out on for half of period and off for the other half, count times.
func Blink(ctx context.Context, out Output, count int, period time.Duration) error {
	log.Infof("Blinking the LED %d times...", count)
	half := period / 2
	for i := 0; i < count; i++ {
		if err := out.On(); err != nil {
			return err
		}
		if !wait(ctx, half) {
			return out.Off()
		}
		if err := out.Off(); err != nil {
			return err
		}
		if !wait(ctx, half) {
			return nil
		}
	}
	log.Debug("Done blinking.")
	return nil
}

func wait(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	}
}
