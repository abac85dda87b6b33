package bootstrap

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/osse101/WheelOfFortune_Go/internal/config"
	"github.com/osse101/WheelOfFortune_Go/internal/logger"
)

// SetupLogger initializes the application logger. Logs always go to stdout; when
// cfg.LogDir is set they are also written to a timestamped file there and older
// files beyond the retention count are removed.
// The returned closer is nil when no file was opened.
func SetupLogger(cfg *config.Config) (io.Closer, error) {
	addSource := cfg.Environment == "dev" || cfg.Environment == "development"
	logCfg := logger.NewConfig(cfg.LogLevel, cfg.LogFormat, cfg.ServiceName, cfg.Version, cfg.Environment, addSource)

	var (
		out     io.Writer = os.Stdout
		logFile *os.File
	)
	if cfg.LogDir != "" {
		if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
			return nil, fmt.Errorf("%s: %w", LogMsgFailedCreateLogsDir, err)
		}
		cleanupLogs(cfg.LogDir, LogFileRetentionCount)

		name := filepath.Join(cfg.LogDir, fmt.Sprintf(LogFileNamePattern, time.Now().Format(LogFileTimestampFormat)))
		f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", LogMsgFailedOpenLogFile, err)
		}
		logFile = f
		out = io.MultiWriter(os.Stdout, f)
	}

	logger.InitLoggerWithWriter(logCfg, out)

	logger.Info(LogMsgLoggingInitialized, "level", logCfg.LogLevel(), "file", cfg.LogDir != "")
	logger.Info(LogMsgStartingService,
		"environment", cfg.Environment,
		"version", cfg.Version,
		"store", cfg.StoreBackend)
	logger.Debug(LogMsgConfigurationLoaded,
		"port", cfg.Port,
		"game_config", cfg.GameConfigPath,
		"catalog", cfg.CatalogPath,
		"db_host", cfg.DBHost,
		"db_name", cfg.DBName)

	if logFile == nil {
		return nil, nil
	}
	return logFile, nil
}

// cleanupLogs keeps the newest keep log files in logDir so the next file makes keep+1
func cleanupLogs(logDir string, keep int) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var logFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), LogFileExtension) {
			logFiles = append(logFiles, entry.Name())
		}
	}
	if len(logFiles) <= keep {
		return
	}

	// timestamped names sort oldest first
	sort.Strings(logFiles)
	for _, name := range logFiles[:len(logFiles)-keep] {
		if err := os.Remove(filepath.Join(logDir, name)); err != nil {
			logger.Warn(LogMsgFailedDeleteOldLog, "file", name, "error", err)
		}
	}
}
