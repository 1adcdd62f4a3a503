package simfloor

import (
	"github.com/jsejcksn/elevatorsaga/internal/simevent"
)

// Floor holds the static per-floor state: its immutable number and the two
// hall call buttons. Button state is only ever cleared by the engine; the
// control program observes it through the button events.
type Floor struct {
	simevent.Emitter

	floorNum         int
	upButtonActive   bool
	downButtonActive bool
}

func NewFloor(floorNum int) *Floor {
	return &Floor{floorNum: floorNum}
}

func (f *Floor) FloorNum() int {
	return f.floorNum
}

func (f *Floor) UpButtonActive() bool {
	return f.upButtonActive
}

func (f *Floor) DownButtonActive() bool {
	return f.downButtonActive
}

// PressUpButton activates the up call button. The event fires only on the
// inactive-to-active transition, once per press, never once per tick.
func (f *Floor) PressUpButton() {
	previous := f.upButtonActive
	f.upButtonActive = true
	if !previous {
		f.Trigger(simevent.SimulationEvent{Value: simevent.UpButtonPressedEvent{Floor: f.floorNum}})
	}
}

func (f *Floor) PressDownButton() {
	previous := f.downButtonActive
	f.downButtonActive = true
	if !previous {
		f.Trigger(simevent.SimulationEvent{Value: simevent.DownButtonPressedEvent{Floor: f.floorNum}})
	}
}

// ClearUpButton is called by the engine when a stopped car accepts boarding
// in the up direction.
func (f *Floor) ClearUpButton() {
	f.upButtonActive = false
}

func (f *Floor) ClearDownButton() {
	f.downButtonActive = false
}
