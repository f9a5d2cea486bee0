//go:build !pi

package button

import (
	"context"
	log "github.com/sirupsen/logrus"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// Open returns a button that toggles between pressed and released on every SIGHUP.
func Open(name string, _ bool, _ time.Duration) (*Button, error) {
	log.Infof("Initializing button handler for %s. Send SIGHUP to toggle it.", name)
	return New(simulateButton), nil
}

func simulateButton(ctx context.Context, emit func(Event)) error {
	hupChan := make(chan os.Signal, 1)
	signal.Notify(hupChan, syscall.SIGHUP)
	defer signal.Stop(hupChan)

	pressed := false
	for {
		select {
		case <-hupChan:
			pressed = !pressed
			emit(Event{
				Pressed: pressed,
			})
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
