package simutils

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/xyproto/randomstring"
)

const Version = "0.3.0"

const runIDDefaultLen = 10

// Args holds everything the binaries take from the command line.
type Args struct {
	ScenarioPath string
	RunID        string
	TimeScale    float64
	LogLevel     string
}

// ProcessCmdArgs parses the command line, with an optional .env file in the
// working directory providing defaults (SCENARIO, RUN_ID, TIME_SCALE,
// LOG_LEVEL). Explicit flags win over the environment file.
func ProcessCmdArgs() Args {
	envDefaults := readEnvDefaults()

	help := flag.Bool("help", false, "Show Help Window")
	version := flag.Bool("version", false, "Show Version")
	scenarioPath := flag.String("scenario", envDefaults["SCENARIO"], "Path to a YAML scenario file. Defaults to a built-in scenario")
	runID := flag.String("id", envDefaults["RUN_ID"], "Set the identifier of the run. Defaults to random string")
	timeScale := flag.Float64("timescale", 1.0, "Simulated seconds per wall-clock second")
	logLevel := flag.String("loglevel", envDefaults["LOG_LEVEL"], "Log level (trace, debug, info, warn, error)")

	flag.Parse()

	if *version {
		fmt.Println("Version:", Version)
		os.Exit(0)
	}

	if *help {
		fmt.Println("Usage: [OPTIONS]")
		fmt.Println("Elevator dispatch simulation")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		os.Exit(0)
	}

	if *timeScale <= 0 {
		fmt.Println("Time scale must be positive")
		os.Exit(1)
	}

	args := Args{
		ScenarioPath: *scenarioPath,
		RunID:        *runID,
		TimeScale:    *timeScale,
		LogLevel:     *logLevel,
	}
	if scale, ok := envDefaults["TIME_SCALE"]; ok && !flagWasSet("timescale") {
		if _, err := fmt.Sscanf(scale, "%f", &args.TimeScale); err != nil || args.TimeScale <= 0 {
			fmt.Println("TIME_SCALE in .env must be a positive number")
			os.Exit(1)
		}
	}
	if args.RunID == "" {
		args.RunID = randomstring.EnglishFrequencyString(runIDDefaultLen)
	}
	return args
}

func readEnvDefaults() map[string]string {
	envFile, err := godotenv.Read(".env")
	if err != nil {
		return map[string]string{}
	}
	return envFile
}

func flagWasSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
