package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"codeberg.org/mutker/statusbar/internal/config"
	"codeberg.org/mutker/statusbar/internal/cpu"
	"codeberg.org/mutker/statusbar/internal/display"
	"codeberg.org/mutker/statusbar/internal/errors"
	"codeberg.org/mutker/statusbar/internal/logger"
	"codeberg.org/mutker/statusbar/internal/pid"
	"codeberg.org/mutker/statusbar/internal/power"
	"codeberg.org/mutker/statusbar/internal/ui"
	"github.com/spf13/pflag"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	level, err := logger.ParseLevel(cfg.GetLogLevel().String())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger.Init(level, logger.IsService())
	logger.Debug().Msg("Config loaded")

	if err := run(cfg); err != nil {
		var appErr errors.Error
		if errors.As(err, &appErr) {
			logger.FatalWithCode(appErr).Msg("Exiting with error")
		}
		logger.Fatal().Err(err).Msg("Exiting with error")
	}
}

func run(cfg config.Provider) error {
	errFactory := errors.New()

	if err := pid.Write(cfg.GetPIDFile()); err != nil {
		return errFactory.Wrap(errors.ErrInitApp, err)
	}
	defer func() {
		if err := pid.Remove(cfg.GetPIDFile()); err != nil {
			logger.Warn().Err(err).Msg("Failed to remove PID file")
		}
	}()

	battery, err := openBattery(power.NewSystemRegistry(), cfg.GetBattery())
	if err != nil {
		return errFactory.Wrap(errors.ErrOpenPower, err)
	}
	if battery != nil {
		defer closeBattery(battery)
	}

	bar := ui.NewBar(
		cpu.NewSampler(cpu.HostTicks{}, logger.New()),
		batteryReader(battery),
		display.IconsFor(cfg.GetIconSet().String()),
		logger.New(),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go handleSignals(cancel)

	if cfg.IsMonitorMode() {
		err = loop(ctx, bar, cfg.GetInterval())
	} else {
		err = ui.Run(ctx, bar, cfg.GetInterval())
	}
	if err != nil {
		return errFactory.Wrap(errors.ErrMainLoop, err)
	}

	logger.Info().Msg("Exiting...")

	return nil
}

// openBattery opens the named power source. A machine without a battery
// yields a nil source and no error.
func openBattery(registry power.Registry, name string) (*power.Source, error) {
	if name == "" {
		name = power.DefaultServiceName
	}

	source := power.NewSource(registry, name, logger.New())
	if err := source.Open(); err != nil {
		if errors.HasCode(err, power.ErrServiceNotFound) {
			logger.Info().Str("service", name).Msg("No battery found, hiding battery segment")
			return nil, nil
		}
		return nil, err
	}

	return source, nil
}

func closeBattery(source *power.Source) {
	if err := source.Close(); err != nil {
		logger.Warn().Err(err).Msg("Failed to release power source")
	}
}

// batteryReader keeps a nil *power.Source from becoming a non-nil interface.
func batteryReader(source *power.Source) ui.BatteryReader {
	if source == nil {
		return nil
	}
	return source
}

func loop(ctx context.Context, bar *ui.Bar, interval time.Duration) error {
	if interval <= 0 {
		return errors.New().WithData(errors.ErrInvalidInterval, interval)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Info().Msg("Monitor mode activated. Logging status...")

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			logSegments(bar.Refresh())
		}
	}
}

func handleSignals(cancel context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	logger.Info().Msg("Received termination signal.")
	cancel()
}

func logSegments(s ui.Segments) {
	event := logger.Info().
		Str("clock", s.Clock).
		Str("cpu", s.CPU)
	if s.Battery != "" {
		event = event.Str("battery", s.Battery)
	}
	event.Msg("")
}
