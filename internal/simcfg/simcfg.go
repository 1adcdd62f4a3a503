package simcfg

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jsejcksn/elevatorsaga/internal/simconsts"
)

type CarConfig struct {
	Capacity int     `yaml:"capacity"`
	Speed    float64 `yaml:"speed"`
}

// Scenario describes one simulation run: the building, the cars, and the
// passenger arrival process.
type Scenario struct {
	Name      string      `yaml:"name"`
	Floors    int         `yaml:"floors"`
	SpawnRate float64     `yaml:"spawn_rate"` // users per simulated second
	Seed      int64       `yaml:"seed"`
	Duration  float64     `yaml:"duration"` // simulated seconds, 0 = unbounded
	Cars      []CarConfig `yaml:"cars"`
}

func Default() Scenario {
	return Scenario{
		Name:      "default",
		Floors:    4,
		SpawnRate: 0.5,
		Seed:      1,
		Duration:  60,
		Cars: []CarConfig{
			{Capacity: simconsts.DefaultCapacity, Speed: simconsts.DefaultCarSpeed},
		},
	}
}

func Load(path string) (Scenario, error) {
	scenario := Default()

	file, err := os.Open(path)
	if err != nil {
		return scenario, fmt.Errorf("opening scenario file: %w", err)
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(&scenario); err != nil {
		return scenario, fmt.Errorf("decoding scenario file %s: %w", path, err)
	}

	if err := scenario.Validate(); err != nil {
		return scenario, err
	}
	return scenario, nil
}

// Validate checks the hard constraints and fills in per-car defaults.
func (s *Scenario) Validate() error {
	if s.Floors < 2 {
		return fmt.Errorf("scenario needs at least 2 floors, got %d", s.Floors)
	}
	if s.SpawnRate < 0 {
		return fmt.Errorf("spawn rate must not be negative, got %v", s.SpawnRate)
	}
	if s.Duration < 0 {
		return fmt.Errorf("duration must not be negative, got %v", s.Duration)
	}
	if len(s.Cars) == 0 {
		return fmt.Errorf("scenario needs at least one car")
	}
	for i := range s.Cars {
		if s.Cars[i].Capacity < 0 {
			return fmt.Errorf("car %d capacity must not be negative, got %d", i, s.Cars[i].Capacity)
		}
		if s.Cars[i].Capacity == 0 {
			s.Cars[i].Capacity = simconsts.DefaultCapacity
		}
		if s.Cars[i].Speed < 0 {
			return fmt.Errorf("car %d speed must not be negative, got %v", i, s.Cars[i].Speed)
		}
		if s.Cars[i].Speed == 0 {
			s.Cars[i].Speed = simconsts.DefaultCarSpeed
		}
	}
	return nil
}
