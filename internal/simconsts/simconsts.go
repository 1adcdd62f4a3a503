package simconsts

const (
	// PassingFloorLookahead is how far (in floors) before a floor's center
	// the passing_floor event fires. The contract only demands a fixed,
	// deterministic choice.
	PassingFloorLookahead = 0.25

	// PassengerUnitWeight scales maxPassengerCount into capacity weight,
	// so loadFactor = load / (maxPassengerCount * PassengerUnitWeight).
	PassengerUnitWeight = 100.0

	PassengerWeightMin = 55.0
	PassengerWeightMax = 100.0

	DefaultCarSpeed = 2.0 // floors per second
	DefaultCapacity = 4
)

type Dirn int

const (
	Down Dirn = -1
	Stop Dirn = 0
	Up   Dirn = 1
)

// String returns the direction names used on the control-program surface.
func (d Dirn) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Stop:
		return "stopped"
	default:
		return "undefined"
	}
}

type MotionState int

const (
	Idle MotionState = iota // 0
	Moving
	Stopped
)

func (ms MotionState) String() string {
	switch ms {
	case Idle:
		return "MS_Idle"
	case Moving:
		return "MS_Moving"
	case Stopped:
		return "MS_Stopped"
	default:
		return "MS_UNDEFINED"
	}
}
