package simworld

import (
	"github.com/tiendc/go-deepcopy"
)

// CarSnapshot is a detached view of one car. The queue and pressed floors
// are deep copies; mutating a snapshot never touches the live engine state.
type CarSnapshot struct {
	Identifier       string
	Position         float64
	CurrentFloor     int
	MotionState      string
	Direction        string
	DestinationQueue []int
	PressedFloors    []int
	LoadFactor       float64
}

type FloorSnapshot struct {
	FloorNum         int
	UpButtonActive   bool
	DownButtonActive bool
	WaitingUsers     int
}

type WorldSnapshot struct {
	Elapsed float64
	Cars    []CarSnapshot
	Floors  []FloorSnapshot
}

// Snapshot captures the externally observable world state.
func (w *World) Snapshot() WorldSnapshot {
	snapshot := WorldSnapshot{
		Elapsed: w.elapsed,
		Cars:    make([]CarSnapshot, len(w.cars)),
		Floors:  make([]FloorSnapshot, len(w.floors)),
	}

	for i, car := range w.cars {
		carSnapshot := CarSnapshot{
			Identifier:    car.Identifier(),
			Position:      car.Position(),
			CurrentFloor:  car.CurrentFloor(),
			MotionState:   car.MotionState().String(),
			Direction:     car.DestinationDirection().String(),
			PressedFloors: car.GetPressedFloors(),
			LoadFactor:    car.LoadFactor(),
		}
		if err := deepcopy.Copy(&carSnapshot.DestinationQueue, &car.DestinationQueue); err != nil {
			Log.Error().Msgf("Error deep copying destination queue of car %v: %v", car.Identifier(), err)
		}
		snapshot.Cars[i] = carSnapshot
	}

	for i, floor := range w.floors {
		snapshot.Floors[i] = FloorSnapshot{
			FloorNum:         floor.FloorNum(),
			UpButtonActive:   floor.UpButtonActive(),
			DownButtonActive: floor.DownButtonActive(),
			WaitingUsers:     w.users.WaitingCount(floor.FloorNum()),
		}
	}

	return snapshot
}
