package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"flowhealth/internal/flow"
	"flowhealth/internal/scorecard"
)

// AppConfig holds the complete application configuration.
type AppConfig struct {
	DataPath string
	LogDir   string
	Workflow *flow.WorkflowConfig
	Params   scorecard.Params
}

// Load loads the configuration from .env files and environment variables.
func Load() (*AppConfig, error) {
	// 1. Try to load from the executable's directory (highest priority for MCP servers)
	exePath, err := os.Executable()
	exeDir := ""
	if err == nil {
		exeDir = filepath.Dir(exePath)
		envPath := filepath.Join(exeDir, ".env")
		if err := godotenv.Load(envPath); err == nil {
			log.Debug().Str("path", envPath).Msg("Loaded configuration from binary directory")
		}
	}

	// 2. Fallback to current working directory (useful for development/go run)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found in working directory, relying on environment variables or binary-relative .env")
	}

	// 3. Resolve data paths
	dataPath := os.Getenv("DATA_PATH")
	if dataPath == "" {
		if exeDir != "" {
			dataPath = exeDir
		} else {
			dataPath = "."
		}
	}
	logDir := filepath.Join(dataPath, "logs")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.Warn().Err(err).Str("path", logDir).Msg("Failed to create log directory")
	}

	// 4. Workflow taxonomy: a JSON file when configured, defaults otherwise
	wf := DefaultWorkflow()
	if wfPath := os.Getenv("WORKFLOW_FILE"); wfPath != "" {
		loaded, err := LoadWorkflow(wfPath)
		if err != nil {
			return nil, err
		}
		wf = loaded
	}
	if err := wf.Validate(); err != nil {
		return nil, err
	}

	params := scorecard.DefaultParams()
	params.Resamples = getEnvInt("STAT_RESAMPLES", params.Resamples)
	params.ConfidenceLevel = getEnvFloat("STAT_CONFIDENCE", params.ConfidenceLevel)
	params.EWMAAlpha = getEnvFloat("STAT_EWMA_ALPHA", params.EWMAAlpha)
	params.CUSUMKFactor = getEnvFloat("STAT_CUSUM_K", params.CUSUMKFactor)
	params.CUSUMHFactor = getEnvFloat("STAT_CUSUM_H", params.CUSUMHFactor)
	params.CVWindow = getEnvInt("STAT_CV_WINDOW", params.CVWindow)
	params.TestingThresholdDays = getEnvFloat("STAT_TESTING_THRESHOLD_DAYS", params.TestingThresholdDays)
	params.Seed = int64(getEnvInt("STAT_SEED", int(params.Seed)))
	if err := params.Validate(); err != nil {
		return nil, err
	}

	return &AppConfig{
		DataPath: dataPath,
		LogDir:   logDir,
		Workflow: wf,
		Params:   params,
	}, nil
}

// LoadWorkflow reads a workflow taxonomy from a JSON file.
func LoadWorkflow(path string) (*flow.WorkflowConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading workflow file: %w", err)
	}
	var wf flow.WorkflowConfig
	if err := json.Unmarshal(data, &wf); err != nil {
		return nil, fmt.Errorf("config: parsing workflow file %s: %w", path, err)
	}
	return &wf, nil
}

// DefaultWorkflow is the standard software-delivery taxonomy used when no
// workflow file is configured.
func DefaultWorkflow() *flow.WorkflowConfig {
	return &flow.WorkflowConfig{
		StatusOrder: []string{"To Do", "In Progress", "Code Review", "Testing", "Done"},
		Classification: map[string]flow.StageClass{
			"To Do":       flow.StageWaiting,
			"In Progress": flow.StageActive,
			"Code Review": flow.StageWaiting,
			"Testing":     flow.StageActive,
		},
		CycleStartStatus: "In Progress",
		CycleEndStatus:   "Done",
		DoneStatuses:     []string{"Done"},
		ActiveStatuses:   []string{"In Progress", "Code Review", "Testing"},
		SlowStage:        "Testing",
	}
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}
