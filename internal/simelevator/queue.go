package simelevator

import (
	"github.com/jsejcksn/elevatorsaga/internal/simconsts"
	"github.com/jsejcksn/elevatorsaga/internal/simevent"
)

// GoToFloor appends the floor to the tail of the destination queue.
// Invalid floor numbers are ignored; a misbehaving control program must not
// be able to stall the simulation.
func (c *Car) GoToFloor(floorNum int) {
	if !c.validFloor(floorNum) {
		return
	}
	c.DestinationQueue = append(c.DestinationQueue, floorNum)
	c.CheckDestinationQueue()
}

// GoToFloorDirectly moves the floor to the head of the queue and retargets
// the current leg, diverting the car even while it is moving. The rest of
// the queue is preserved and the floor is not duplicated if already queued.
func (c *Car) GoToFloorDirectly(floorNum int) {
	if !c.validFloor(floorNum) {
		return
	}
	queue := make([]int, 0, len(c.DestinationQueue)+1)
	queue = append(queue, floorNum)
	for _, queued := range c.DestinationQueue {
		if queued != floorNum {
			queue = append(queue, queued)
		}
	}
	c.DestinationQueue = queue

	if c.state == simconsts.Moving {
		c.commit(floorNum)
		return
	}
	c.CheckDestinationQueue()
}

// Stop clears the destination queue and halts the car where it is, possibly
// between floors. No boarding or alighting happens at a mid-floor halt; this
// is an escape hatch for rescheduling, not a normal stop.
func (c *Car) Stop() {
	c.DestinationQueue = c.DestinationQueue[:0]
	c.legDirn = simconsts.Stop
	c.state = simconsts.Idle
	c.Trigger(simevent.SimulationEvent{Value: simevent.IdleEvent{}})
}

// CheckDestinationQueue resynchronizes the state machine with the queue
// contents. The engine calls it after every internal queue mutation; the
// control program must call it after mutating DestinationQueue directly.
// A committed leg is never interrupted: the new head takes effect at the
// next leg boundary.
func (c *Car) CheckDestinationQueue() {
	switch c.state {
	case simconsts.Moving:
		return
	case simconsts.Stopped:
		if len(c.DestinationQueue) > 0 {
			c.commit(c.DestinationQueue[0])
		}
		// An empty queue resolves to idle when the stop finishes.
	default:
		if len(c.DestinationQueue) > 0 {
			c.commit(c.DestinationQueue[0])
			return
		}
		c.Trigger(simevent.SimulationEvent{Value: simevent.IdleEvent{}})
	}
}

// Step advances the car by dt seconds of travel. It fires passing_floor for
// every floor marker crossed (in traversal order) and stopped_at_floor on
// arrival at the committed target. The returned floor is valid only when
// arrived is true; the caller resolves boarding and then calls FinishStop.
func (c *Car) Step(dt float64) (floorNum int, arrived bool) {
	if c.state == simconsts.Idle && len(c.DestinationQueue) > 0 {
		Log.Debug().Msgf("Car %v destination queue changed without CheckDestinationQueue, reconciling", c.identifier)
		c.CheckDestinationQueue()
	}
	if c.state != simconsts.Moving {
		return 0, false
	}

	oldPosition := c.position
	newPosition := oldPosition + float64(c.legDirn)*c.speed*dt
	targetPosition := float64(c.target)
	if c.legDirn == simconsts.Stop ||
		(c.legDirn == simconsts.Up && newPosition >= targetPosition) ||
		(c.legDirn == simconsts.Down && newPosition <= targetPosition) {
		newPosition = targetPosition
	}

	c.firePassingFloors(oldPosition, newPosition)
	c.position = newPosition

	if newPosition == targetPosition {
		return c.arrive(), true
	}
	return 0, false
}

// FinishStop resolves a completed stop, after boarding and alighting have
// run: either the next leg is committed or the car goes idle. A listener
// that already committed a new leg during the stop wins.
func (c *Car) FinishStop() {
	if c.state != simconsts.Stopped {
		return
	}
	c.state = simconsts.Idle
	c.CheckDestinationQueue()
}

func (c *Car) validFloor(floorNum int) bool {
	if floorNum < 0 || floorNum > c.topFloor {
		Log.Warn().Msgf("Car %v ignoring request for invalid floor %d (building has floors 0..%d)", c.identifier, floorNum, c.topFloor)
		return false
	}
	return true
}

func (c *Car) commit(floorNum int) {
	c.target = floorNum
	c.legStart = c.position
	targetPosition := float64(floorNum)
	switch {
	case targetPosition > c.position:
		c.legDirn = simconsts.Up
	case targetPosition < c.position:
		c.legDirn = simconsts.Down
	default:
		c.legDirn = simconsts.Stop
	}
	c.state = simconsts.Moving
}

// firePassingFloors fires passing_floor for every floor whose center lies
// strictly between the leg start and the target, exactly once per leg. The
// usual trigger point is PassingFloorLookahead before the floor center in
// travel direction; for a floor whose trigger point lies behind the leg
// start (a car restarted between floors) the trigger point clamps to the
// leg start, so it fires on the first step of the leg. The leg target never
// fires; a wide time step fires each crossed floor in traversal order.
func (c *Car) firePassingFloors(oldPosition, newPosition float64) {
	switch c.legDirn {
	case simconsts.Up:
		for floorNum := 0; floorNum <= c.topFloor; floorNum++ {
			if floorNum == c.target || float64(floorNum) <= c.legStart {
				continue
			}
			marker := float64(floorNum) - simconsts.PassingFloorLookahead
			if marker < c.legStart {
				marker = c.legStart
			}
			if oldPosition <= marker && marker < newPosition {
				c.Trigger(simevent.SimulationEvent{Value: simevent.PassingFloorEvent{Floor: floorNum, Dirn: simconsts.Up}})
			}
		}
	case simconsts.Down:
		for floorNum := c.topFloor; floorNum >= 0; floorNum-- {
			if floorNum == c.target || float64(floorNum) >= c.legStart {
				continue
			}
			marker := float64(floorNum) + simconsts.PassingFloorLookahead
			if marker > c.legStart {
				marker = c.legStart
			}
			if oldPosition >= marker && marker > newPosition {
				c.Trigger(simevent.SimulationEvent{Value: simevent.PassingFloorEvent{Floor: floorNum, Dirn: simconsts.Down}})
			}
		}
	}
}

// arrive services the target floor: the queue is pruned of every occurrence
// of the floor before listeners observe it, and the internal floor button is
// cleared.
func (c *Car) arrive() int {
	floorNum := c.target
	c.state = simconsts.Stopped
	c.legDirn = simconsts.Stop

	queue := c.DestinationQueue[:0]
	for _, queued := range c.DestinationQueue {
		if queued != floorNum {
			queue = append(queue, queued)
		}
	}
	c.DestinationQueue = queue

	delete(c.pressedFloors, floorNum)

	c.Trigger(simevent.SimulationEvent{Value: simevent.StoppedAtFloorEvent{Floor: floorNum}})
	return floorNum
}
