package button

import (
	"context"
	"errors"
	"fmt"
	log "github.com/sirupsen/logrus"
	"sync"
)

var ErrNoSource = errors.New("button: no event source")

type Event struct {
	Pressed bool
}

func (b Event) String() string {
	action := "pressed"
	if !b.Pressed {
		action = "released"
	}
	return fmt.Sprintf("Button was %v", action)
}

// Source produces button events until ctx is cancelled. emit must not be called concurrently.
type Source func(ctx context.Context, emit func(Event)) error

// Button dispatches press and release events to the registered callbacks. Callbacks run one at a time on the
// goroutine calling Run or Dispatch.
type Button struct {
	source     Source
	mu         sync.Mutex
	onPressed  func()
	onReleased func()
}

func New(s Source) *Button {
	return &Button{source: s}
}

func (b *Button) OnPressed(f func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.onPressed = f
}

func (b *Button) OnReleased(f func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.onReleased = f
}

// Dispatch runs the callback registered for e, if any.
func (b *Button) Dispatch(e Event) {
	log.Debugf("Event: %v", e)
	b.mu.Lock()
	f := b.onReleased
	if e.Pressed {
		f = b.onPressed
	}
	b.mu.Unlock()

	if f != nil {
		f()
	}
}

// Run services events from the source until ctx is cancelled.
func (b *Button) Run(ctx context.Context) error {
	if b.source == nil {
		return ErrNoSource
	}
	err := b.source(ctx, b.Dispatch)
	if ctx.Err() != nil {
		return nil
	}
	return err
}
