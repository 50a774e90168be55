// Package app wires Solva's configuration, storage, and services together.
package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/tomasvidela/solva/internal/common"
	"github.com/tomasvidela/solva/internal/interfaces"
	"github.com/tomasvidela/solva/internal/services/analysis"
	"github.com/tomasvidela/solva/internal/storage/badger"
)

// App holds all initialized services and storage. It is the shared core
// used by cmd/solva-server and by tests.
type App struct {
	Config          *common.Config
	Logger          *common.Logger
	Storage         interfaces.AnalysisStorage
	AnalysisService interfaces.AnalysisService
	StartupTime     time.Time
}

// getBinaryDir returns the directory containing the executable.
func getBinaryDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// NewApp initializes configuration, storage, and services.
// configPath may be empty, in which case the default resolution logic is used.
func NewApp(configPath string) (*App, error) {
	common.LoadVersionFromFile()

	// Load configuration - check provided path, SOLVA_CONFIG, then binary
	// dir, then the development fallback.
	if configPath == "" {
		configPath = os.Getenv("SOLVA_CONFIG")
	}
	if configPath == "" {
		configPath = filepath.Join(getBinaryDir(), "solva.toml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			configPath = "config/solva.toml"
		}
	}

	config, err := common.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := common.NewLogger(config.Logging.Level)

	store, err := badger.NewStore(logger, config.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}
	analysisStorage := badger.NewAnalysisStorage(store, logger)

	svc := analysis.NewService(analysisStorage, config.Analysis, logger)

	return &App{
		Config:          config,
		Logger:          logger,
		Storage:         analysisStorage,
		AnalysisService: svc,
		StartupTime:     time.Now(),
	}, nil
}

// Close releases the app's resources.
func (a *App) Close() error {
	if a.Storage != nil {
		return a.Storage.Close()
	}
	return nil
}
