package main

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jsejcksn/elevatorsaga/internal/logger"
	"github.com/jsejcksn/elevatorsaga/internal/simcfg"
	"github.com/jsejcksn/elevatorsaga/internal/simctl"
	"github.com/jsejcksn/elevatorsaga/internal/simmeta"
	"github.com/jsejcksn/elevatorsaga/internal/simutils"
	"github.com/jsejcksn/elevatorsaga/internal/simworld"
)

const batchStep = 0.1 // simulated seconds per tick

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
	if scenario.Duration <= 0 {
		Logger.Fatal().Msg("Batch runs need a scenario with a bounded duration")
	}

	metadata := &simmeta.RunMetaData{
		SoftwareVersion: simutils.Version,
		ScenarioName:    scenario.Name,
		RunID:           args.RunID,
		Seed:            scenario.Seed,
	}
	Logger.Info().Msgf("Run: %v", metadata.String())

	world, err := simworld.NewWorld(scenario, simctl.NewCollective())
	if err != nil {
		Logger.Fatal().Msgf("Error creating world: %v", err)
	}
	world.Run(batchStep)

	printReport(world, metadata)
}

func printReport(world *simworld.World, metadata *simmeta.RunMetaData) {
	printer := message.NewPrinter(language.English)
	stats := world.Stats()

	printer.Printf("Run %s (%.1fs simulated)\n", metadata.Describe(), stats.Elapsed())
	printer.Printf("  transported: %d users (%.3f/s)\n", stats.Transported(), stats.TransportedPerSec())
	printer.Printf("  stops:       %d\n", stats.StopCount())
	printer.Printf("  avg trip:    %.1fs\n", stats.AvgTripTime())
	printer.Printf("  max trip:    %.1fs\n", stats.MaxTripTime())

	snapshot := world.Snapshot()
	for _, car := range snapshot.Cars {
		printer.Printf("  %s: floor %d, load %.2f, queue %v\n", car.Identifier, car.CurrentFloor, car.LoadFactor, car.DestinationQueue)
	}
	waiting := 0
	for _, floor := range snapshot.Floors {
		waiting += floor.WaitingUsers
	}
	printer.Printf("  left waiting: %d users\n", waiting)
}
