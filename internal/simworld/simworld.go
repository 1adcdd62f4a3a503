package simworld

import (
	"errors"
	"fmt"

	"github.com/jsejcksn/elevatorsaga/internal/logger"
	"github.com/jsejcksn/elevatorsaga/internal/simcfg"
	"github.com/jsejcksn/elevatorsaga/internal/simelevator"
	"github.com/jsejcksn/elevatorsaga/internal/simfloor"
	"github.com/jsejcksn/elevatorsaga/internal/simstats"
	"github.com/jsejcksn/elevatorsaga/internal/simuser"
)

var Log = logger.GetLogger()

// Controller is the external control program. The engine calls Init exactly
// once before the first tick and Update every tick; the controller registers
// listeners and drives the cars through their public surface. The engine
// never depends on what the controller decides.
type Controller interface {
	Init(cars []*simelevator.Car, floors []*simfloor.Floor)
	Update(dt float64, cars []*simelevator.Car, floors []*simfloor.Floor)
}

// World owns the building and drives one tick at a time. Everything is
// single threaded: per tick the order is clock advance, passenger spawning,
// per-car motion resolution with event dispatch and boarding (cars in
// creation order), then the controller update.
type World struct {
	scenario   simcfg.Scenario
	floors     []*simfloor.Floor
	cars       []*simelevator.Car
	users      *simuser.Model
	stats      *simstats.Recorder
	controller Controller

	elapsed    float64
	spawnCarry float64
	started    bool
}

func NewWorld(scenario simcfg.Scenario, controller Controller) (*World, error) {
	if controller == nil {
		return nil, errors.New("world needs a controller")
	}
	if err := scenario.Validate(); err != nil {
		return nil, err
	}

	floors := make([]*simfloor.Floor, scenario.Floors)
	for i := range floors {
		floors[i] = simfloor.NewFloor(i)
	}

	cars := make([]*simelevator.Car, len(scenario.Cars))
	for i, carConfig := range scenario.Cars {
		cars[i] = simelevator.NewCar(fmt.Sprintf("car-%d", i), scenario.Floors-1, carConfig.Speed, carConfig.Capacity)
	}

	return &World{
		scenario:   scenario,
		floors:     floors,
		cars:       cars,
		users:      simuser.NewModel(scenario.Seed, floors),
		stats:      simstats.NewRecorder(),
		controller: controller,
	}, nil
}

// Start runs the controller's Init exactly once, then kicks every car's
// queue check so an empty, stationary car reports idle at time zero.
func (w *World) Start() {
	if w.started {
		Log.Error().Msg("World already started")
		return
	}
	w.started = true

	w.controller.Init(w.cars, w.floors)
	for _, car := range w.cars {
		car.CheckDestinationQueue()
	}
}

// Tick advances the simulation by dt seconds.
func (w *World) Tick(dt float64) {
	if !w.started {
		Log.Error().Msg("World not started, ignoring tick")
		return
	}
	if dt <= 0 {
		Log.Warn().Msgf("Ignoring non-positive tick dt %v", dt)
		return
	}

	w.elapsed += dt
	w.stats.Advance(dt)

	w.spawnCarry += dt * w.scenario.SpawnRate
	for w.spawnCarry >= 1 {
		w.spawnCarry--
		user := w.users.SpawnRandom(w.elapsed)
		Log.Debug().Msgf("Spawned user %v on floor %d heading to %d", user.ID, user.OriginFloor, user.DestinationFloor)
	}

	for _, car := range w.cars {
		floorNum, arrived := car.Step(dt)
		if !arrived {
			continue
		}
		w.stats.RecordStop()
		resolution := w.users.ResolveStop(w.elapsed, car, floorNum)
		for _, tripTime := range resolution.TripTimes {
			w.stats.RecordTrip(tripTime)
		}
		if resolution.Alighted > 0 || resolution.Boarded > 0 {
			Log.Debug().Msgf("Car %v at floor %d: %d alighted, %d boarded, load factor %.2f",
				car.Identifier(), floorNum, resolution.Alighted, resolution.Boarded, car.LoadFactor())
		}
		car.FinishStop()
	}

	w.controller.Update(dt, w.cars, w.floors)
}

// Run starts the world and ticks it with a fixed step until the scenario
// duration is reached. The final tick is clamped so the run ends exactly at
// the duration rather than overshooting by a step.
func (w *World) Run(dt float64) {
	if dt <= 0 {
		Log.Error().Msgf("Run needs a positive dt, got %v", dt)
		return
	}
	if w.scenario.Duration <= 0 {
		Log.Error().Msg("Run needs a bounded scenario duration")
		return
	}

	w.Start()
	for w.elapsed < w.scenario.Duration {
		step := dt
		if remaining := w.scenario.Duration - w.elapsed; remaining < step {
			step = remaining
		}
		w.Tick(step)
	}
}

func (w *World) Cars() []*simelevator.Car {
	return w.cars
}

func (w *World) Floors() []*simfloor.Floor {
	return w.floors
}

func (w *World) Users() *simuser.Model {
	return w.users
}

func (w *World) Stats() *simstats.Recorder {
	return w.stats
}

func (w *World) Elapsed() float64 {
	return w.elapsed
}
