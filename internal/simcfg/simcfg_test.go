package simcfg

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	scenario := Default()
	if err := scenario.Validate(); err != nil {
		t.Errorf("Default().Validate() = %v, expected nil", err)
	}
}

func TestLoadScenario(t *testing.T) {
	content := `name: rush-hour
floors: 8
spawn_rate: 1.5
seed: 42
duration: 120
cars:
  - capacity: 6
    speed: 2.5
  - capacity: 4
`
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	scenario, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v, expected nil", err)
	}
	if scenario.Name != "rush-hour" {
		t.Errorf("Name = %q, expected rush-hour", scenario.Name)
	}
	if scenario.Floors != 8 {
		t.Errorf("Floors = %d, expected 8", scenario.Floors)
	}
	if scenario.SpawnRate != 1.5 {
		t.Errorf("SpawnRate = %v, expected 1.5", scenario.SpawnRate)
	}
	if len(scenario.Cars) != 2 {
		t.Fatalf("Expected 2 cars, got %d", len(scenario.Cars))
	}
	if scenario.Cars[0].Capacity != 6 || scenario.Cars[0].Speed != 2.5 {
		t.Errorf("Car 0 = %+v, expected capacity 6 speed 2.5", scenario.Cars[0])
	}
	// Omitted speed falls back to the default.
	if scenario.Cars[1].Speed == 0 {
		t.Errorf("Car 1 speed = 0, expected a default")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() of missing file, expected error")
	}
}

func TestValidateRejectsBadScenarios(t *testing.T) {
	badScenarios := []Scenario{
		{Floors: 1, SpawnRate: 1, Cars: []CarConfig{{Capacity: 4, Speed: 2}}},
		{Floors: 4, SpawnRate: -1, Cars: []CarConfig{{Capacity: 4, Speed: 2}}},
		{Floors: 4, SpawnRate: 1, Duration: -5, Cars: []CarConfig{{Capacity: 4, Speed: 2}}},
		{Floors: 4, SpawnRate: 1},
		{Floors: 4, SpawnRate: 1, Cars: []CarConfig{{Capacity: -1, Speed: 2}}},
		{Floors: 4, SpawnRate: 1, Cars: []CarConfig{{Capacity: 4, Speed: -2}}},
	}

	for index, scenario := range badScenarios {
		if err := scenario.Validate(); err == nil {
			t.Errorf("Validate() of bad scenario %d returned nil, expected error", index)
		}
	}
}
