package simuser

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/jsejcksn/elevatorsaga/internal/logger"
	"github.com/jsejcksn/elevatorsaga/internal/simconsts"
	"github.com/jsejcksn/elevatorsaga/internal/simelevator"
	"github.com/jsejcksn/elevatorsaga/internal/simfloor"
)

var Log = logger.GetLogger()

// User is a passenger: spawned on a floor, destroyed on alighting at its
// destination.
type User struct {
	ID               uuid.UUID
	OriginFloor      int
	DestinationFloor int
	Weight           float64
	SpawnedAt        float64 // simulated seconds
}

// Dirn is derived from origin and destination.
func (u *User) Dirn() simconsts.Dirn {
	if u.DestinationFloor > u.OriginFloor {
		return simconsts.Up
	}
	return simconsts.Down
}

// Resolution reports what happened at one stop, for statistics.
type Resolution struct {
	Alighted  int
	Boarded   int
	TripTimes []float64 // spawn-to-destination, one per alighted user
}

// Model tracks the waiting queues per floor and direction and the riders
// per car. It is the only mutator of floor call buttons besides the floors
// themselves.
type Model struct {
	rng         *rand.Rand
	floors      []*simfloor.Floor
	waitingUp   [][]*User
	waitingDown [][]*User
	riders      map[string][]*User
}

func NewModel(seed int64, floors []*simfloor.Floor) *Model {
	return &Model{
		rng:         rand.New(rand.NewSource(seed)),
		floors:      floors,
		waitingUp:   make([][]*User, len(floors)),
		waitingDown: make([][]*User, len(floors)),
		riders:      make(map[string][]*User),
	}
}

// Spawn places a user on its origin floor and presses the call button for
// its direction.
func (m *Model) Spawn(user *User) {
	if user.OriginFloor < 0 || user.OriginFloor >= len(m.floors) ||
		user.DestinationFloor < 0 || user.DestinationFloor >= len(m.floors) ||
		user.OriginFloor == user.DestinationFloor {
		Log.Warn().Msgf("Ignoring user spawn with invalid floors %d -> %d", user.OriginFloor, user.DestinationFloor)
		return
	}

	floor := m.floors[user.OriginFloor]
	if user.Dirn() == simconsts.Up {
		m.waitingUp[user.OriginFloor] = append(m.waitingUp[user.OriginFloor], user)
		floor.PressUpButton()
	} else {
		m.waitingDown[user.OriginFloor] = append(m.waitingDown[user.OriginFloor], user)
		floor.PressDownButton()
	}
}

// SpawnRandom creates a user with a random origin, a distinct random
// destination and a random weight, and spawns it.
func (m *Model) SpawnRandom(now float64) *User {
	origin := m.rng.Intn(len(m.floors))
	destination := m.rng.Intn(len(m.floors) - 1)
	if destination >= origin {
		destination++
	}
	weight := simconsts.PassengerWeightMin + m.rng.Float64()*(simconsts.PassengerWeightMax-simconsts.PassengerWeightMin)

	user := &User{
		ID:               uuid.New(),
		OriginFloor:      origin,
		DestinationFloor: destination,
		Weight:           weight,
		SpawnedAt:        now,
	}
	m.Spawn(user)
	return user
}

// ResolveStop runs alighting then boarding for a car stopped at a floor.
// Boarding in a direction is admitted by the matching indicator; admitting a
// direction clears that call button, and passengers left behind (car full)
// immediately re-press it.
func (m *Model) ResolveStop(now float64, car *simelevator.Car, floorNum int) Resolution {
	resolution := Resolution{}
	floor := m.floors[floorNum]

	// Alight first so the freed capacity is available for boarding.
	remaining := m.riders[car.Identifier()][:0]
	for _, rider := range m.riders[car.Identifier()] {
		if rider.DestinationFloor == floorNum {
			car.Alight(rider.Weight)
			resolution.Alighted++
			resolution.TripTimes = append(resolution.TripTimes, now-rider.SpawnedAt)
		} else {
			remaining = append(remaining, rider)
		}
	}
	m.riders[car.Identifier()] = remaining

	if car.GoingUpIndicator() {
		floor.ClearUpButton()
		m.waitingUp[floorNum] = m.boardQueue(m.waitingUp[floorNum], car, &resolution)
		if len(m.waitingUp[floorNum]) > 0 {
			floor.PressUpButton()
		}
	}
	if car.GoingDownIndicator() {
		floor.ClearDownButton()
		m.waitingDown[floorNum] = m.boardQueue(m.waitingDown[floorNum], car, &resolution)
		if len(m.waitingDown[floorNum]) > 0 {
			floor.PressDownButton()
		}
	}

	return resolution
}

// boardQueue lets each waiting user attempt to board in arrival order. A
// refused user stays waiting in place; a lighter user behind may still fit.
func (m *Model) boardQueue(queue []*User, car *simelevator.Car, resolution *Resolution) []*User {
	left := queue[:0]
	for _, user := range queue {
		if !car.Board(user.Weight) {
			left = append(left, user)
			continue
		}
		m.riders[car.Identifier()] = append(m.riders[car.Identifier()], user)
		car.PressFloorButton(user.DestinationFloor)
		resolution.Boarded++
	}
	return left
}

// WaitingCount reports the users still waiting on a floor, both directions.
func (m *Model) WaitingCount(floorNum int) int {
	return len(m.waitingUp[floorNum]) + len(m.waitingDown[floorNum])
}

// RiderCount reports the users currently inside the given car.
func (m *Model) RiderCount(car *simelevator.Car) int {
	return len(m.riders[car.Identifier()])
}
