package lcd

import (
	"errors"
	"fmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

type write struct {
	addr  uint16
	value byte
}

type recordingTransport struct {
	writes []write
	failAt int
	err    error
}

func (r *recordingTransport) Send(addr uint16, value byte) error {
	if r.err != nil && len(r.writes) == r.failAt {
		return r.err
	}
	r.writes = append(r.writes, write{addr, value})
	return nil
}

func (r *recordingTransport) values() []byte {
	v := make([]byte, len(r.writes))
	for i, w := range r.writes {
		v[i] = w.value
	}
	return v
}

type recordingSleep struct {
	calls []time.Duration
}

func (r *recordingSleep) sleep(d time.Duration) {
	r.calls = append(r.calls, d)
}

func newTestEncoder(t Transport) (*Encoder, *recordingSleep) {
	s := &recordingSleep{}
	e := NewEncoder(t, DefaultAddress, MinStrobeDelay)
	e.sleep = s.sleep
	return e, s
}

func TestSendByte(t *testing.T) {
	tt := []struct {
		name   string
		value  byte
		mode   Mode
		writes []byte
	}{
		{
			"command 0x33",
			0x33,
			Command,
			[]byte{0x38, 0x3C, 0x38, 0x38, 0x3C, 0x38},
		},
		{
			"command line 2",
			byte(Line2),
			Command,
			[]byte{0xC8, 0xCC, 0xC8, 0x08, 0x0C, 0x08},
		},
		{
			"character H",
			'H',
			Data,
			[]byte{0x49, 0x4D, 0x49, 0x89, 0x8D, 0x89},
		},
		{
			"character 0xff",
			0xFF,
			Data,
			[]byte{0xF9, 0xFD, 0xF9, 0xF9, 0xFD, 0xF9},
		},
		{
			"zero command",
			0x00,
			Command,
			[]byte{0x08, 0x0C, 0x08, 0x08, 0x0C, 0x08},
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			tr := &recordingTransport{}
			e, _ := newTestEncoder(tr)

			require.NoError(t, e.SendByte(tc.value, tc.mode))
			assert.Equal(t, tc.writes, tr.values())
			for _, w := range tr.writes {
				assert.Equal(t, uint16(DefaultAddress), w.addr)
			}
		})
	}
}

func TestSendByte_AllValues(t *testing.T) {
	for _, mode := range []Mode{Command, Data} {
		for v := 0; v < 256; v++ {
			tr := &recordingTransport{}
			e, _ := newTestEncoder(tr)
			require.NoError(t, e.SendByte(byte(v), mode))

			w := tr.values()
			require.Len(t, w, 6)
			assert.Equal(t, byte(v)&0xF0, w[0]&0xF0, "high nibble of 0x%02x", v)
			assert.Equal(t, (byte(v)<<4)&0xF0, w[3]&0xF0, "low nibble of 0x%02x", v)
			for i, b := range w {
				assert.Equal(t, byte(mode), b&0x01, "mode bit in write %d of 0x%02x", i, v)
				assert.Equal(t, backlightBit, b&backlightBit, "backlight bit in write %d of 0x%02x", i, v)
			}
			// enable is only raised in the middle of each strobe
			assert.Equal(t, []byte{0, enableBit, 0, 0, enableBit, 0}, []byte{
				w[0] & enableBit, w[1] & enableBit, w[2] & enableBit,
				w[3] & enableBit, w[4] & enableBit, w[5] & enableBit,
			})
		}
	}
}

func TestSendByte_StrobeTiming(t *testing.T) {
	tr := &recordingTransport{}
	e, s := newTestEncoder(tr)

	require.NoError(t, e.SendByte('A', Data))
	require.Len(t, s.calls, 6)
	for _, d := range s.calls {
		assert.GreaterOrEqual(t, d, MinStrobeDelay)
	}
}

type timeline struct {
	steps []string
}

func (tl *timeline) Send(_ uint16, value byte) error {
	tl.steps = append(tl.steps, fmt.Sprintf("write 0x%02x", value))
	return nil
}

func (tl *timeline) sleep(d time.Duration) {
	tl.steps = append(tl.steps, fmt.Sprintf("sleep %v", d))
}

func TestSendByte_StrobeOrder(t *testing.T) {
	tl := &timeline{}
	e := NewEncoder(tl, DefaultAddress, MinStrobeDelay)
	e.sleep = tl.sleep

	require.NoError(t, e.SendByte('H', Data))
	assert.Equal(t, []string{
		"write 0x49",
		"sleep 500µs",
		"write 0x4d",
		"sleep 500µs",
		"write 0x49",
		"sleep 500µs",
		"write 0x89",
		"sleep 500µs",
		"write 0x8d",
		"sleep 500µs",
		"write 0x89",
		"sleep 500µs",
	}, tl.steps)
}

func TestSendByte_TransportFailure(t *testing.T) {
	busErr := errors.New("remote I/O error")
	tr := &recordingTransport{failAt: 1, err: busErr}
	e, _ := newTestEncoder(tr)

	err := e.SendByte(0x28, Command)
	require.Error(t, err)
	assert.True(t, errors.Is(err, busErr))
	assert.Contains(t, err.Error(), "0x27")
	assert.Len(t, tr.writes, 1, "no writes should follow a failed one")
}
