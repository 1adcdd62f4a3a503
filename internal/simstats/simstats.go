package simstats

// Recorder accumulates the running score of a simulation: how many users
// reached their destination, how long they took, and how often the cars
// stopped. The world feeds it once per tick; display is someone else's job.
type Recorder struct {
	elapsed       float64
	transported   int
	stopCount     int
	totalTripTime float64
	maxTripTime   float64
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Advance(dt float64) {
	r.elapsed += dt
}

func (r *Recorder) RecordStop() {
	r.stopCount++
}

// RecordTrip registers one user reaching its destination, with the
// spawn-to-arrival duration.
func (r *Recorder) RecordTrip(duration float64) {
	r.transported++
	r.totalTripTime += duration
	if duration > r.maxTripTime {
		r.maxTripTime = duration
	}
}

func (r *Recorder) Elapsed() float64 {
	return r.elapsed
}

func (r *Recorder) Transported() int {
	return r.transported
}

func (r *Recorder) StopCount() int {
	return r.stopCount
}

func (r *Recorder) MaxTripTime() float64 {
	return r.maxTripTime
}

func (r *Recorder) AvgTripTime() float64 {
	if r.transported == 0 {
		return 0
	}
	return r.totalTripTime / float64(r.transported)
}

// TransportedPerSec is the throughput over the whole run so far.
func (r *Recorder) TransportedPerSec() float64 {
	if r.elapsed == 0 {
		return 0
	}
	return float64(r.transported) / r.elapsed
}
