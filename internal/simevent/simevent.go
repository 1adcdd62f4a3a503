package simevent

import (
	"github.com/jsejcksn/elevatorsaga/internal/simconsts"
)

// Event names on the control-program surface.
const (
	Idle               = "idle"
	FloorButtonPressed = "floor_button_pressed"
	PassingFloor       = "passing_floor"
	StoppedAtFloor     = "stopped_at_floor"
	UpButtonPressed    = "up_button_pressed"
	DownButtonPressed  = "down_button_pressed"
)

type SimulationEvent struct {
	//Golang doesnt support union types,
	//so we have to pass any of the below
	//structs
	Value any
}

type IdleEvent struct {
}

type FloorButtonPressedEvent struct {
	Floor int
}

type PassingFloorEvent struct {
	Floor int
	Dirn  simconsts.Dirn
}

type StoppedAtFloorEvent struct {
	Floor int
}

type UpButtonPressedEvent struct {
	Floor int
}

type DownButtonPressedEvent struct {
	Floor int
}

func (e *SimulationEvent) EventType() string {
	switch e.Value.(type) {
	case IdleEvent:
		return Idle
	case FloorButtonPressedEvent:
		return FloorButtonPressed
	case PassingFloorEvent:
		return PassingFloor
	case StoppedAtFloorEvent:
		return StoppedAtFloor
	case UpButtonPressedEvent:
		return UpButtonPressed
	case DownButtonPressedEvent:
		return DownButtonPressed
	default:
		return "unknown_event"
	}
}
