package simuser

import (
	"testing"

	"github.com/google/uuid"

	"github.com/jsejcksn/elevatorsaga/internal/logger"
	"github.com/jsejcksn/elevatorsaga/internal/simconsts"
	"github.com/jsejcksn/elevatorsaga/internal/simelevator"
	"github.com/jsejcksn/elevatorsaga/internal/simevent"
	"github.com/jsejcksn/elevatorsaga/internal/simfloor"
	"github.com/rs/zerolog"
)

func newTestModel(numFloors int) (*Model, []*simfloor.Floor) {
	_ = logger.GetLoggerConfigured(zerolog.Disabled)
	floors := make([]*simfloor.Floor, numFloors)
	for i := range floors {
		floors[i] = simfloor.NewFloor(i)
	}
	return NewModel(1, floors), floors
}

func newUser(origin, destination int, weight float64) *User {
	return &User{
		ID:               uuid.New(),
		OriginFloor:      origin,
		DestinationFloor: destination,
		Weight:           weight,
	}
}

func TestUserDirn(t *testing.T) {
	if newUser(0, 3, 70).Dirn() != simconsts.Up {
		t.Error("Expected direction up for 0 -> 3")
	}
	if newUser(3, 0, 70).Dirn() != simconsts.Down {
		t.Error("Expected direction down for 3 -> 0")
	}
}

func TestSpawnPressesButton(t *testing.T) {
	model, floors := newTestModel(4)

	upPresses := 0
	floors[1].On(simevent.UpButtonPressed, func(event simevent.SimulationEvent) {
		upPresses++
	})

	model.Spawn(newUser(1, 3, 70))
	if upPresses != 1 {
		t.Errorf("Expected 1 up_button_pressed, got %d", upPresses)
	}
	if !floors[1].UpButtonActive() {
		t.Error("Expected up button active after spawn")
	}
	if model.WaitingCount(1) != 1 {
		t.Errorf("Expected 1 waiting user, got %d", model.WaitingCount(1))
	}
}

func TestSpawnInvalidIgnored(t *testing.T) {
	model, _ := newTestModel(4)
	model.Spawn(newUser(2, 2, 70))
	model.Spawn(newUser(-1, 2, 70))
	model.Spawn(newUser(0, 9, 70))
	for f := 0; f < 4; f++ {
		if model.WaitingCount(f) != 0 {
			t.Errorf("Expected no waiting users on floor %d, got %d", f, model.WaitingCount(f))
		}
	}
}

func TestSpawnRandomDeterministic(t *testing.T) {
	modelA, _ := newTestModel(6)
	modelB, _ := newTestModel(6)

	for i := 0; i < 20; i++ {
		userA := modelA.SpawnRandom(float64(i))
		userB := modelB.SpawnRandom(float64(i))
		if userA.OriginFloor != userB.OriginFloor || userA.DestinationFloor != userB.DestinationFloor || userA.Weight != userB.Weight {
			t.Fatalf("Expected identical spawns for identical seeds, got %+v vs %+v", userA, userB)
		}
		if userA.OriginFloor == userA.DestinationFloor {
			t.Fatalf("Expected distinct origin and destination, got %+v", userA)
		}
		if userA.Weight < simconsts.PassengerWeightMin || userA.Weight > simconsts.PassengerWeightMax {
			t.Fatalf("Expected weight within [%v,%v], got %v", simconsts.PassengerWeightMin, simconsts.PassengerWeightMax, userA.Weight)
		}
	}
}

func TestBoardAndAlight(t *testing.T) {
	model, _ := newTestModel(4)
	car := simelevator.NewCar("test-car", 3, 2.0, 4)

	var pressedEvents []int
	car.On(simevent.FloorButtonPressed, func(event simevent.SimulationEvent) {
		pressedEvents = append(pressedEvents, event.Value.(simevent.FloorButtonPressedEvent).Floor)
	})

	model.Spawn(newUser(0, 2, 70))
	resolution := model.ResolveStop(1.0, car, 0)
	if resolution.Boarded != 1 || resolution.Alighted != 0 {
		t.Fatalf("Expected 1 boarded, 0 alighted, got %+v", resolution)
	}
	if model.RiderCount(car) != 1 {
		t.Errorf("Expected 1 rider, got %d", model.RiderCount(car))
	}
	if len(pressedEvents) != 1 || pressedEvents[0] != 2 {
		t.Errorf("Expected floor_button_pressed for floor 2, got %v", pressedEvents)
	}
	if car.LoadFactor() == 0 {
		t.Error("Expected non-zero load factor after boarding")
	}

	resolution = model.ResolveStop(5.0, car, 2)
	if resolution.Alighted != 1 {
		t.Fatalf("Expected 1 alighted at destination, got %+v", resolution)
	}
	if len(resolution.TripTimes) != 1 || resolution.TripTimes[0] != 5.0 {
		t.Errorf("Expected trip time 5.0, got %v", resolution.TripTimes)
	}
	if model.RiderCount(car) != 0 {
		t.Errorf("Expected no riders after alighting, got %d", model.RiderCount(car))
	}
	if car.LoadFactor() != 0 {
		t.Errorf("Expected load factor 0 after alighting, got %v", car.LoadFactor())
	}
}

func TestOverloadRepressesButton(t *testing.T) {
	model, floors := newTestModel(4)
	car := simelevator.NewCar("test-car", 3, 2.0, 1) // capacity weight 100

	model.Spawn(newUser(0, 3, 80))
	model.Spawn(newUser(0, 2, 80)) // will not fit

	upPresses := 0
	floors[0].On(simevent.UpButtonPressed, func(event simevent.SimulationEvent) {
		upPresses++
	})

	resolution := model.ResolveStop(1.0, car, 0)
	if resolution.Boarded != 1 {
		t.Fatalf("Expected 1 boarded, got %+v", resolution)
	}
	if model.WaitingCount(0) != 1 {
		t.Errorf("Expected 1 user still waiting, got %d", model.WaitingCount(0))
	}
	// Board attempt cleared the button, the refused user re-pressed it.
	if upPresses != 1 {
		t.Errorf("Expected 1 re-press event, got %d", upPresses)
	}
	if !floors[0].UpButtonActive() {
		t.Error("Expected up button active again after failed boarding")
	}
	if car.LoadFactor() != 0.8 {
		t.Errorf("Expected load factor 0.8, got %v", car.LoadFactor())
	}
}

func TestIndicatorsGateBoarding(t *testing.T) {
	model, floors := newTestModel(4)
	car := simelevator.NewCar("test-car", 3, 2.0, 4)
	car.SetGoingUpIndicator(false)
	car.SetGoingDownIndicator(false)

	model.Spawn(newUser(1, 3, 70))
	model.Spawn(newUser(1, 0, 70))

	resolution := model.ResolveStop(1.0, car, 1)
	if resolution.Boarded != 0 {
		t.Fatalf("Expected nobody to board with both indicators off, got %+v", resolution)
	}
	if !floors[1].UpButtonActive() || !floors[1].DownButtonActive() {
		t.Error("Expected call buttons to stay active")
	}

	car.SetGoingDownIndicator(true)
	resolution = model.ResolveStop(2.0, car, 1)
	if resolution.Boarded != 1 {
		t.Fatalf("Expected only the downward user to board, got %+v", resolution)
	}
	if model.WaitingCount(1) != 1 {
		t.Errorf("Expected the upward user still waiting, got %d", model.WaitingCount(1))
	}
	if !floors[1].UpButtonActive() {
		t.Error("Expected up button untouched")
	}
	if floors[1].DownButtonActive() {
		t.Error("Expected down button cleared after boarding")
	}
}

func TestLighterUserBehindRefusedOne(t *testing.T) {
	model, _ := newTestModel(4)
	car := simelevator.NewCar("test-car", 3, 2.0, 1) // capacity weight 100

	model.Spawn(newUser(0, 3, 60))
	model.Spawn(newUser(0, 2, 90)) // refused
	model.Spawn(newUser(0, 1, 30)) // still fits

	resolution := model.ResolveStop(1.0, car, 0)
	if resolution.Boarded != 2 {
		t.Fatalf("Expected 2 boarded, got %+v", resolution)
	}
	if model.WaitingCount(0) != 1 {
		t.Errorf("Expected the 90-weight user still waiting, got %d", model.WaitingCount(0))
	}
	if car.LoadFactor() != 0.9 {
		t.Errorf("Expected load factor 0.9, got %v", car.LoadFactor())
	}
}
