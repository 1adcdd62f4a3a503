package simmeta

import (
	"encoding/json"
	"fmt"

	"github.com/jsejcksn/elevatorsaga/internal/logger"
)

var Log = logger.GetLogger()

// RunMetaData identifies one simulation run in log output and reports.
type RunMetaData struct {
	SoftwareVersion string `json:"software_version"`
	ScenarioName    string `json:"scenario_name"`
	RunID           string `json:"run_id"`
	Seed            int64  `json:"seed"`
}

func (runMetaData *RunMetaData) String() string {
	jsonData, err := json.Marshal(runMetaData)

	if err != nil {
		Log.Error().Msg("Error Serialising RunMetaData Object to JSON")
		return ""
	}
	return string(jsonData)
}

func (runMetaData *RunMetaData) Describe() string {
	return fmt.Sprintf("%s/%s", runMetaData.ScenarioName, runMetaData.RunID)
}
