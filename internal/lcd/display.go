package lcd

import (
	"fmt"
	log "github.com/sirupsen/logrus"
	"time"
	"unicode/utf8"
)

type Display struct {
	enc    *Encoder
	width  int
	settle time.Duration
	sleep  func(time.Duration)
	ready  bool
}

func NewDisplay(t Transport, c Config) *Display {
	return &Display{
		enc:    NewEncoder(t, c.Address, c.StrobeDelay),
		width:  c.Width,
		settle: c.SettleDelay,
		sleep:  time.Sleep,
	}
}

// Init runs the controller reset program. It must be called before any text is written.
func (d *Display) Init() error {
	log.Infoln("Initializing LCD")
	d.ready = false
	for _, cmd := range initSequence {
		if err := d.enc.SendByte(cmd, Command); err != nil {
			return err
		}
	}
	d.sleep(d.settle)
	d.ready = true
	return nil
}

// WriteLine pads text with spaces to the display width and writes it to the given line. Text longer than the
// display is sent as is.
func (d *Display) WriteLine(l Line, text string) error {
	if !d.ready {
		return ErrNotInitialized
	}
	if !l.valid() {
		return fmt.Errorf("%w: 0x%02x", ErrInvalidLine, byte(l))
	}
	codes, err := encode(text)
	if err != nil {
		return err
	}
	for len(codes) < d.width {
		codes = append(codes, ' ')
	}

	log.Debugf("Print line %v: %q", l, string(codes))
	if err := d.enc.SendByte(byte(l), Command); err != nil {
		return err
	}
	for _, c := range codes {
		if err := d.enc.SendByte(c, Data); err != nil {
			return err
		}
	}
	return nil
}

func (d *Display) Clear(l Line) error {
	return d.WriteLine(l, "")
}

func (d *Display) Print(line1, line2 string) error {
	if err := d.WriteLine(Line1, line1); err != nil {
		return err
	}
	return d.WriteLine(Line2, line2)
}

func (d *Display) Width() int {
	return d.width
}

func encode(text string) ([]byte, error) {
	codes := make([]byte, 0, utf8.RuneCountInString(text))
	for _, r := range text {
		if r > 0xFF {
			return nil, fmt.Errorf("%w: %q", ErrUnencodable, r)
		}
		codes = append(codes, byte(r))
	}
	return codes, nil
}

// Encodable reports whether every character of text fits the single byte character codes of the display.
func Encodable(text string) bool {
	_, err := encode(text)
	return err == nil
}
