// Package simctl provides a reference control program for the simulation.
// It is a consumer of the engine's elevator/floor surface, kept simple and
// deterministic; the engine itself never depends on it.
package simctl

import (
	"github.com/jsejcksn/elevatorsaga/internal/simelevator"
	"github.com/jsejcksn/elevatorsaga/internal/simevent"
	"github.com/jsejcksn/elevatorsaga/internal/simfloor"
)

// Collective is a naive collective-control strategy: every hall call is
// assigned to the car with the shortest destination queue, every cab call
// goes to the tail of the pressed car's queue. Ties go to the lower car
// index, which keeps runs reproducible.
type Collective struct {
	cars []*simelevator.Car
}

func NewCollective() *Collective {
	return &Collective{}
}

func (ctl *Collective) Init(cars []*simelevator.Car, floors []*simfloor.Floor) {
	ctl.cars = cars

	for _, car := range cars {
		car := car
		car.On(simevent.FloorButtonPressed, func(event simevent.SimulationEvent) {
			floorNum := event.Value.(simevent.FloorButtonPressedEvent).Floor
			if !queued(car, floorNum) {
				car.GoToFloor(floorNum)
			}
		})
	}

	for _, floor := range floors {
		floorNum := floor.FloorNum()
		floor.On(simevent.UpButtonPressed, func(event simevent.SimulationEvent) {
			ctl.dispatch(floorNum)
		})
		floor.On(simevent.DownButtonPressed, func(event simevent.SimulationEvent) {
			ctl.dispatch(floorNum)
		})
	}
}

// Update is a no-op; the strategy is entirely event driven.
func (ctl *Collective) Update(dt float64, cars []*simelevator.Car, floors []*simfloor.Floor) {
}

func (ctl *Collective) dispatch(floorNum int) {
	// A car already heading there covers the call.
	for _, car := range ctl.cars {
		if queued(car, floorNum) {
			return
		}
	}

	var best *simelevator.Car
	for _, car := range ctl.cars {
		if best == nil || len(car.DestinationQueue) < len(best.DestinationQueue) {
			best = car
		}
	}
	if best != nil {
		best.GoToFloor(floorNum)
	}
}

func queued(car *simelevator.Car, floorNum int) bool {
	for _, queuedFloor := range car.DestinationQueue {
		if queuedFloor == floorNum {
			return true
		}
	}
	return false
}
