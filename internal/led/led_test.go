package led

import (
	"context"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
	"testing"
	"time"
)

type countingOutput struct {
	ons, offs int
	last      bool
}

func (c *countingOutput) On() error {
	c.ons++
	c.last = true
	return nil
}

func (c *countingOutput) Off() error {
	c.offs++
	c.last = false
	return nil
}

func TestPin(t *testing.T) {
	tt := []struct {
		name       string
		activeHigh bool
		on         gpio.Level
		off        gpio.Level
	}{
		{"active low", false, gpio.Low, gpio.High},
		{"active high", true, gpio.High, gpio.Low},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			p := &gpiotest.Pin{N: "GPIO17", Num: 17}
			l := NewPin(p, tc.activeHigh)

			require.NoError(t, l.On())
			assert.Equal(t, tc.on, p.Read())
			require.NoError(t, l.Off())
			assert.Equal(t, tc.off, p.Read())
		})
	}
}

func TestBlink(t *testing.T) {
	c := &countingOutput{}

	require.NoError(t, Blink(context.Background(), c, 5, 2*time.Millisecond))
	assert.Equal(t, 5, c.ons)
	assert.Equal(t, 5, c.offs)
	assert.False(t, c.last)
}

func TestBlink_Cancelled(t *testing.T) {
	c := &countingOutput{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, Blink(ctx, c, 5, time.Second))
	assert.Equal(t, 1, c.ons)
	assert.Equal(t, 1, c.offs)
	assert.False(t, c.last)
}

func TestBlink_Zero(t *testing.T) {
	c := &countingOutput{}

	require.NoError(t, Blink(context.Background(), c, 0, time.Second))
	assert.Zero(t, c.ons)
}
