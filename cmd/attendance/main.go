package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/username/attendance-tracker/internal/attendance"
	"github.com/username/attendance-tracker/internal/config"
	"github.com/username/attendance-tracker/internal/storage"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	configPath string
	logger     *zap.Logger = zap.NewNop()
)

func main() {
	rootCmd := newRootCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "attendance",
		Short:         "Daily attendance tracker",
		Long:          "Track daily attendance for a roster of workers and export attendance reports",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load config to get log file path and level
			level := "info"
			cfg, err := config.Load(configPath)
			if err == nil {
				level = cfg.Log.GetLogLevel()
			}
			if err == nil && cfg.Log.File != "" {
				logger, err = initFileLogger(cfg.Log.File, level)
				if err == nil {
					return
				}
			}
			logger = initLogger(level) // Console logger
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "Config file path")

	rootCmd.AddCommand(workerCmd())
	rootCmd.AddCommand(markCmd())
	rootCmd.AddCommand(timeCmd())
	rootCmd.AddCommand(statsCmd())
	rootCmd.AddCommand(reportCmd())

	return rootCmd
}

// session is one command's view of the roster: the store plus the state
// manager that persists it
type session struct {
	cfg   *config.Config
	state *storage.StateManager
	store *attendance.Store
}

func (s *session) Close() {
	if err := s.state.Close(); err != nil {
		logger.Warn("Failed to close storage", zap.Error(err))
	}
}

func openSession(ctx context.Context) (*session, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	var backend storage.Backend
	switch cfg.Storage.Type {
	case "file":
		logger.Debug("Using file storage", zap.String("path", cfg.Storage.File))
		backend = storage.NewFileBackend(cfg.Storage.File)

	case "sqlite":
		logger.Debug("Using sqlite storage",
			zap.String("path", cfg.Storage.SQLitePath),
			zap.String("key", cfg.Storage.Key))
		backend, err = storage.OpenSQLiteBackend(cfg.Storage.SQLitePath, cfg.Storage.Key)
		if err != nil {
			return nil, err
		}

	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Storage.Type)
	}

	state := storage.NewStateManager(backend, logger)
	roster, err := state.Load(ctx)
	if err != nil {
		state.Close()
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}

	return &session{
		cfg:   cfg,
		state: state,
		store: attendance.NewStore(roster, state, logger),
	}, nil
}

func initLogger(level string) *zap.Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	// stdout carries command output
	config.OutputPaths = []string{"stderr"}

	zapLevel, err := zapcore.ParseLevel(level)
	if err != nil {
		zapLevel = zapcore.InfoLevel
	}
	config.Level = zap.NewAtomicLevelAt(zapLevel)

	l, err := config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	return l
}

func initFileLogger(logFile string, level string) (*zap.Logger, error) {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    100,  // MB
		MaxBackups: 3,    // Keep max 3 old log files
		MaxAge:     28,   // days
		Compress:   true, // Compress old logs with gzip
	}

	// Setup encoder
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	// Parse log level
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	// Create core with lumberjack writer
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		zapLevel,
	)

	return zap.New(core), nil
}
