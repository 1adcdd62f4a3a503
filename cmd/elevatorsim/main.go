package main

import (
	"time"

	"github.com/eiannone/keyboard"

	"github.com/jsejcksn/elevatorsaga/internal/logger"
	"github.com/jsejcksn/elevatorsaga/internal/simcfg"
	"github.com/jsejcksn/elevatorsaga/internal/simctl"
	"github.com/jsejcksn/elevatorsaga/internal/simmeta"
	"github.com/jsejcksn/elevatorsaga/internal/simutils"
	"github.com/jsejcksn/elevatorsaga/internal/simworld"
)

const tickRate = 30 // engine ticks per wall-clock second

func main() {
	args := simutils.ProcessCmdArgs()
	Logger := logger.GetLoggerConfigured(logger.ParseLevel(args.LogLevel))

	scenario := simcfg.Default()
	if args.ScenarioPath != "" {
		var err error
		scenario, err = simcfg.Load(args.ScenarioPath)
		if err != nil {
			Logger.Fatal().Msgf("Error loading scenario: %v", err)
		}
	}

	metadata := &simmeta.RunMetaData{
		SoftwareVersion: simutils.Version,
		ScenarioName:    scenario.Name,
		RunID:           args.RunID,
		Seed:            scenario.Seed,
	}
	Logger.Info().Msg("Starting Simulation Programme")
	Logger.Info().Msgf("Run: %v", metadata.String())

	world, err := simworld.NewWorld(scenario, simctl.NewCollective())
	if err != nil {
		Logger.Fatal().Msgf("Error creating world: %v", err)
	}
	world.Start()

	keyEvents, err := keyboard.GetKeys(10)
	if err != nil {
		Logger.Warn().Msgf("Keyboard unavailable, running without controls: %v", err)
		keyEvents = nil
	} else {
		defer keyboard.Close()
		Logger.Info().Msg("Controls: space pause, + faster, - slower, q quit")
	}

	timeScale := args.TimeScale
	paused := false
	dt := 1.0 / tickRate

	ticker := time.NewTicker(time.Second / tickRate)
	defer ticker.Stop()

loop:
	for {
		select {
		case <-ticker.C:
			if paused {
				continue
			}
			world.Tick(dt * timeScale)
			if scenario.Duration > 0 && world.Elapsed() >= scenario.Duration {
				break loop
			}

		case keyEvent := <-keyEvents:
			if keyEvent.Err != nil {
				Logger.Warn().Msgf("Keyboard error: %v", keyEvent.Err)
				continue
			}
			switch {
			case keyEvent.Key == keyboard.KeySpace:
				paused = !paused
				Logger.Info().Msgf("Paused: %v", paused)
			case keyEvent.Rune == '+':
				timeScale *= 2
				Logger.Info().Msgf("Time scale: %vx", timeScale)
			case keyEvent.Rune == '-':
				timeScale /= 2
				Logger.Info().Msgf("Time scale: %vx", timeScale)
			case keyEvent.Rune == 'q' || keyEvent.Key == keyboard.KeyEsc || keyEvent.Key == keyboard.KeyCtrlC:
				Logger.Info().Msg("Quit requested")
				break loop
			}
		}
	}

	stats := world.Stats()
	Logger.Info().Msgf("Run %v finished after %.1fs simulated", metadata.Describe(), stats.Elapsed())
	Logger.Info().Msgf("Transported %d users (%.3f/s), %d stops, avg trip %.1fs, max trip %.1fs",
		stats.Transported(), stats.TransportedPerSec(), stats.StopCount(), stats.AvgTripTime(), stats.MaxTripTime())
}
