package main

import (
	"fmt"
	"github.com/callebjorkell/pi-workshop/internal/lcd"
	"gopkg.in/yaml.v3"
	"os"
	"time"
)

const (
	ledKindGPIO  = "gpio"
	ledKindPixel = "pixel"
)

type Config struct {
	Display struct {
		Bus         string        `yaml:"bus"`
		Address     uint16        `yaml:"address"`
		Width       int           `yaml:"width"`
		StrobeDelay time.Duration `yaml:"strobeDelay"`
		SettleDelay time.Duration `yaml:"settleDelay"`
		Lines       []string      `yaml:"lines"`
	} `yaml:"display"`
	Led struct {
		Kind        string        `yaml:"kind"`
		Pin         string        `yaml:"pin"`
		ActiveHigh  bool          `yaml:"activeHigh"`
		Color       uint32        `yaml:"color"`
		Brightness  uint32        `yaml:"brightness"`
		BlinkCount  int           `yaml:"blinkCount"`
		BlinkPeriod time.Duration `yaml:"blinkPeriod"`
	} `yaml:"led"`
	Button struct {
		Pin       string        `yaml:"pin"`
		PullUp    bool          `yaml:"pullUp"`
		Debounce  time.Duration `yaml:"debounce"`
		PressedOn bool          `yaml:"pressedOn"`
	} `yaml:"button"`
}

func defaultConfig() *Config {
	c := &Config{}
	d := lcd.DefaultConfig()
	c.Display.Address = d.Address
	c.Display.Width = d.Width
	c.Display.StrobeDelay = d.StrobeDelay
	c.Display.SettleDelay = d.SettleDelay
	c.Display.Lines = []string{"Hello, world!", "Raspberry Pi <3"}

	c.Led.Kind = ledKindGPIO
	c.Led.Pin = "GPIO17"
	c.Led.Color = 0xffffff
	c.Led.Brightness = 100
	c.Led.BlinkCount = 5
	c.Led.BlinkPeriod = time.Second

	c.Button.Pin = "GPIO27"
	c.Button.PullUp = true
	c.Button.Debounce = 15 * time.Millisecond
	c.Button.PressedOn = true
	return c
}

func (c *Config) LCD() lcd.Config {
	return lcd.Config{
		Address:     c.Display.Address,
		Width:       c.Display.Width,
		StrobeDelay: c.Display.StrobeDelay,
		SettleDelay: c.Display.SettleDelay,
	}
}

func (c *Config) Lines() [2]string {
	var lines [2]string
	copy(lines[:], c.Display.Lines)
	return lines
}

// parseConfig reads content on top of the defaults, so any value left out of the file keeps its default.
func parseConfig(content []byte) (*Config, error) {
	c := defaultConfig()
	err := yaml.Unmarshal(content, c)
	if err != nil {
		return nil, err
	}

	if c.Display.Address < 0x03 || c.Display.Address > 0x77 {
		return nil, fmt.Errorf("display address 0x%02x is not a valid 7-bit address", c.Display.Address)
	}
	if c.Display.Width <= 0 {
		return nil, fmt.Errorf("display width must be positive")
	}
	if c.Display.StrobeDelay < lcd.MinStrobeDelay {
		return nil, fmt.Errorf("display strobe delay must be at least %v", lcd.MinStrobeDelay)
	}
	if c.Display.SettleDelay < lcd.MinSettleDelay {
		return nil, fmt.Errorf("display settle delay must be at least %v", lcd.MinSettleDelay)
	}
	if len(c.Display.Lines) > 2 {
		return nil, fmt.Errorf("the display only has 2 lines, got %d", len(c.Display.Lines))
	}
	for i, l := range c.Display.Lines {
		if !lcd.Encodable(l) {
			return nil, fmt.Errorf("line %d contains characters the display cannot show", i+1)
		}
	}
	if c.Led.Kind != ledKindGPIO && c.Led.Kind != ledKindPixel {
		return nil, fmt.Errorf("unknown LED kind %q", c.Led.Kind)
	}
	if c.Led.Kind == ledKindGPIO && c.Led.Pin == "" {
		return nil, fmt.Errorf("LED pin is missing")
	}
	if c.Led.Brightness > 100 {
		return nil, fmt.Errorf("LED brightness is a percentage, got %d", c.Led.Brightness)
	}
	if c.Led.BlinkCount < 0 {
		return nil, fmt.Errorf("LED blink count cannot be negative")
	}
	if c.Led.BlinkCount > 0 && c.Led.BlinkPeriod <= 0 {
		return nil, fmt.Errorf("LED blink period must be positive")
	}
	if c.Button.Pin == "" {
		return nil, fmt.Errorf("button pin is missing")
	}
	if c.Button.Debounce < 0 {
		return nil, fmt.Errorf("button debounce cannot be negative")
	}

	return c, nil
}

func readConfig(f string) (*Config, error) {
	if f == "" {
		return parseConfig(nil)
	}
	content, err := os.ReadFile(f)
	if err != nil {
		return nil, err
	}
	return parseConfig(content)
}
