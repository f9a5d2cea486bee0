package main

import (
	"context"
	"fmt"
	"github.com/callebjorkell/pi-workshop/internal/button"
	"github.com/callebjorkell/pi-workshop/internal/lcd"
	"github.com/callebjorkell/pi-workshop/internal/led"
	"github.com/callebjorkell/pi-workshop/internal/workshop"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gopkg.in/alecthomas/kingpin.v2"
	"os"
	"os/signal"
	"syscall"
)

var (
	app        = kingpin.New("pi-workshop", "Raspberry Pi basic I/O workshop")
	debug      = app.Flag("debug", "Turn on debug logging.").Bool()
	configFile = app.Flag("config", "YAML file overriding the built-in hardware configuration.").Short('c').String()
	start      = app.Command("start", "Run the whole workshop: blink, button and LCD.")
	lcdCmd     = app.Command("lcd", "Initialize the LCD and print two lines.")
	lcdLine1   = lcdCmd.Arg("line1", "Text for the first line.").String()
	lcdLine2   = lcdCmd.Arg("line2", "Text for the second line.").String()
	blink      = app.Command("blink", "Blink the LED.")
	blinkCount = blink.Flag("count", "Number of blinks. Defaults to the configured count.").Default("-1").Int()
	version    = app.Command("version", "Show current version.")
)

var buildTime, buildVersion string

func showVersion() {
	if buildTime != "" && buildVersion != "" {
		fmt.Printf("%s (built: %s)\n", buildVersion, buildTime)
	} else {
		fmt.Println("pi-workshop: dev")
	}
}

func main() {
	cmd, err := app.Parse(os.Args[1:])
	if err != nil {
		fmt.Printf("%v: Try --help\n", err.Error())
		os.Exit(1)
	}

	log.SetFormatter(&log.TextFormatter{
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if *debug {
		log.Info("Enabling debug output...")
		log.SetLevel(log.DebugLevel)
	}

	if cmd == version.FullCommand() {
		showVersion()
		return
	}

	conf, err := readConfig(*configFile)
	if err != nil {
		log.Fatal("Unable to read configuration: ", err)
	}

	switch cmd {
	case start.FullCommand():
		err = startWorkshop(conf)
	case lcdCmd.FullCommand():
		err = printLines(conf, *lcdLine1, *lcdLine2)
	case blink.FullCommand():
		err = blinkLED(conf, *blinkCount)
	default:
		kingpin.FatalUsage("Unrecognized command")
	}
	if err != nil {
		log.Fatal(err)
	}
}

// withSignals returns a context that is cancelled on SIGINT or SIGTERM, and a group to run work in under it.
func withSignals() (*errgroup.Group, context.Context) {
	ctx, cancel := context.WithCancel(context.Background())
	g, ctx := errgroup.WithContext(ctx)

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)
	g.Go(func() error {
		defer signal.Stop(signalChan)
		select {
		case s := <-signalChan:
			log.Infof("Received %v, shutting down", s)
			cancel()
		case <-ctx.Done():
		}
		return nil
	})
	return g, ctx
}

func openLED(conf *Config) (led.Output, func(), error) {
	if conf.Led.Kind == ledKindPixel {
		p, err := led.OpenPixel(conf.Led.Color, conf.Led.Brightness)
		if err != nil {
			return nil, nil, err
		}
		return p, func() { p.Close() }, nil
	}
	p, err := led.OpenPin(conf.Led.Pin, conf.Led.ActiveHigh)
	return p, func() {}, err
}

func openDisplay(conf *Config) (*lcd.Display, func(), error) {
	t, closer, err := lcd.OpenTransport(conf.Display.Bus)
	if err != nil {
		return nil, nil, err
	}
	return lcd.NewDisplay(t, conf.LCD()), func() { closer.Close() }, nil
}

func startWorkshop(conf *Config) error {
	display, closeDisplay, err := openDisplay(conf)
	if err != nil {
		return err
	}
	defer closeDisplay()

	out, closeLED, err := openLED(conf)
	if err != nil {
		return err
	}
	defer closeLED()

	b, err := button.Open(conf.Button.Pin, conf.Button.PullUp, conf.Button.Debounce)
	if err != nil {
		return err
	}

	w := workshop.New(display, out, b, workshop.Config{
		Lines:       conf.Lines(),
		BlinkCount:  conf.Led.BlinkCount,
		BlinkPeriod: conf.Led.BlinkPeriod,
		PressedOn:   conf.Button.PressedOn,
	})

	g, ctx := withSignals()
	g.Go(func() error {
		err := w.Run(ctx)
		if err == nil {
			// stop the signal watcher as well
			err = context.Canceled
		}
		return err
	})
	if err := g.Wait(); err != nil && err != context.Canceled {
		return err
	}

	log.Info("Workshop complete.")
	return nil
}

func printLines(conf *Config, line1, line2 string) error {
	if line1 == "" && line2 == "" {
		lines := conf.Lines()
		line1, line2 = lines[0], lines[1]
	}
	if !lcd.Encodable(line1) || !lcd.Encodable(line2) {
		return fmt.Errorf("text contains characters the display cannot show")
	}

	display, closeDisplay, err := openDisplay(conf)
	if err != nil {
		return err
	}
	defer closeDisplay()

	if err := display.Init(); err != nil {
		return err
	}
	if err := display.Print(line1, line2); err != nil {
		return err
	}
	log.Info("Message displayed on LCD.")
	return nil
}

func blinkLED(conf *Config, count int) error {
	if count < 0 {
		count = conf.Led.BlinkCount
	}

	out, closeLED, err := openLED(conf)
	if err != nil {
		return err
	}
	defer closeLED()

	g, ctx := withSignals()
	g.Go(func() error {
		err := led.Blink(ctx, out, count, conf.Led.BlinkPeriod)
		if err == nil {
			err = context.Canceled
		}
		return err
	})
	if err := g.Wait(); err != nil && err != context.Canceled {
		return err
	}
	return out.Off()
}
