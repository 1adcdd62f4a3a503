package simelevator

import (
	"math"
	"sort"

	"github.com/jsejcksn/elevatorsaga/internal/logger"
	"github.com/jsejcksn/elevatorsaga/internal/simconsts"
	"github.com/jsejcksn/elevatorsaga/internal/simevent"

	"github.com/xyproto/randomstring"
)

var Log = logger.GetLogger()

const IDENTIFIER_DEFAULT_LEN = 10

// Car is a single elevator: its motion state machine, destination queue,
// direction indicators, internal floor buttons and passenger load.
//
// DestinationQueue is deliberately exported and mutable: the control program
// may reorder or rewrite it, as long as CheckDestinationQueue is called
// afterwards. The engine reconciles a forgotten call at the next tick.
type Car struct {
	simevent.Emitter

	identifier        string
	topFloor          int
	speed             float64 // floors per second
	maxPassengerCount int
	capacityWeight    float64

	DestinationQueue []int

	position float64
	state    simconsts.MotionState
	target   int
	legDirn  simconsts.Dirn
	legStart float64

	goingUpIndicator   bool
	goingDownIndicator bool

	load          float64
	pressedFloors map[int]bool
}

func NewCar(identifier string, topFloor int, speed float64, maxPassengerCount int) *Car {
	if identifier == "" {
		identifier = randomstring.EnglishFrequencyString(IDENTIFIER_DEFAULT_LEN) //this should be random enough
		Log.Warn().Msgf("No car identifier provided, generated random identifier \"%v\"", identifier)
	}
	if topFloor < 1 {
		topFloor = 1
	}
	if speed <= 0 {
		speed = simconsts.DefaultCarSpeed
	}
	if maxPassengerCount < 1 {
		maxPassengerCount = simconsts.DefaultCapacity
	}

	return &Car{
		identifier:         identifier,
		topFloor:           topFloor,
		speed:              speed,
		maxPassengerCount:  maxPassengerCount,
		capacityWeight:     float64(maxPassengerCount) * simconsts.PassengerUnitWeight,
		state:              simconsts.Idle,
		legDirn:            simconsts.Stop,
		goingUpIndicator:   true,
		goingDownIndicator: true,
		pressedFloors:      make(map[int]bool),
	}
}

func (c *Car) Identifier() string {
	return c.identifier
}

func (c *Car) TopFloor() int {
	return c.topFloor
}

// Position is the exact position in floor units; fractional while moving.
func (c *Car) Position() float64 {
	return c.position
}

// CurrentFloor reports the nearest floor to the car's position.
func (c *Car) CurrentFloor() int {
	return int(math.Round(c.position))
}

func (c *Car) MotionState() simconsts.MotionState {
	return c.state
}

func (c *Car) MaxPassengerCount() int {
	return c.maxPassengerCount
}

func (c *Car) LoadFactor() float64 {
	return c.load / c.capacityWeight
}

func (c *Car) GoingUpIndicator() bool {
	return c.goingUpIndicator
}

func (c *Car) SetGoingUpIndicator(state bool) {
	c.goingUpIndicator = state
}

func (c *Car) GoingDownIndicator() bool {
	return c.goingDownIndicator
}

func (c *Car) SetGoingDownIndicator(state bool) {
	c.goingDownIndicator = state
}

// DestinationDirection is derived, never independently settable: the
// direction of the committed leg while moving, otherwise the direction
// toward the queue head, otherwise stopped. A car sent to the floor it is
// already at commits a zero-length leg and reports stopped for the single
// step until it arrives there.
func (c *Car) DestinationDirection() simconsts.Dirn {
	if c.state == simconsts.Moving {
		return c.legDirn
	}
	if len(c.DestinationQueue) > 0 {
		head := float64(c.DestinationQueue[0])
		switch {
		case head > c.position:
			return simconsts.Up
		case head < c.position:
			return simconsts.Down
		}
	}
	return simconsts.Stop
}

// Board attempts to take on the given weight. Boarding that would push the
// load factor above 1 is refused as a silent no-op.
func (c *Car) Board(weight float64) bool {
	if c.load+weight > c.capacityWeight {
		return false
	}
	c.load += weight
	return true
}

func (c *Car) Alight(weight float64) {
	c.load -= weight
	if c.load < 0 {
		Log.Error().Msgf("Car %v load went negative, resetting to 0", c.identifier)
		c.load = 0
	}
}

// PressFloorButton registers an internal floor request, as made by a
// passenger who just boarded. The event fires only on the first press of a
// not-yet-pressed floor.
func (c *Car) PressFloorButton(floorNum int) {
	if floorNum < 0 || floorNum > c.topFloor {
		Log.Warn().Msgf("Car %v ignoring floor button press for invalid floor %d", c.identifier, floorNum)
		return
	}
	if c.pressedFloors[floorNum] {
		return
	}
	c.pressedFloors[floorNum] = true
	c.Trigger(simevent.SimulationEvent{Value: simevent.FloorButtonPressedEvent{Floor: floorNum}})
}

// GetPressedFloors returns the floors requested from inside the car, in
// ascending order.
func (c *Car) GetPressedFloors() []int {
	pressed := make([]int, 0, len(c.pressedFloors))
	for floorNum, active := range c.pressedFloors {
		if active {
			pressed = append(pressed, floorNum)
		}
	}
	sort.Ints(pressed)
	return pressed
}
