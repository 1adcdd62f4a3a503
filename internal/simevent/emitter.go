package simevent

import (
	"github.com/jsejcksn/elevatorsaga/internal/logger"
)

var Log = logger.GetLogger()

type Listener func(event SimulationEvent)

// Emitter is a per-object subscription list. Listeners for an event name are
// invoked synchronously, in registration order, within the tick that produced
// the condition. There is no global bus and no cross-tick delay.
type Emitter struct {
	listeners map[string][]Listener
}

func (em *Emitter) On(eventName string, listener Listener) {
	if listener == nil {
		Log.Warn().Msgf("Ignoring nil listener registered for %q", eventName)
		return
	}
	if em.listeners == nil {
		em.listeners = make(map[string][]Listener)
	}
	em.listeners[eventName] = append(em.listeners[eventName], listener)
}

func (em *Emitter) Trigger(event SimulationEvent) {
	for _, listener := range em.listeners[event.EventType()] {
		listener(event)
	}
}

func (em *Emitter) ListenerCount(eventName string) int {
	return len(em.listeners[eventName])
}
