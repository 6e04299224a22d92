package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/username/biz-days/internal/businesstime"
	"github.com/username/biz-days/internal/calendar"
	"github.com/username/biz-days/internal/config"
	"github.com/username/biz-days/internal/ptax"
	"github.com/username/biz-days/internal/session"
	"github.com/username/biz-days/internal/store"
)

// app carries what every sub-command needs once the root pre-run has loaded config
type app struct {
	configPath string
	cfg        *config.Config
	logger     *zap.Logger
	fs         afero.Fs
	logSink    io.Writer // console log destination when no log file is configured
}

func main() {
	a := &app{fs: afero.NewOsFs(), logSink: os.Stderr}

	if err := newRootCmd(a).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "bizdays",
		Short:         "Business day and hour calculator",
		Long:          "Count weekdays between two dates, convert them to 8-hour business hours and project an hourly rate over them",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			a.cfg = cfg

			if cfg.Log.File != "" {
				a.logger = initFileLogger(cfg.Log.File, cfg.Log.Level)
			} else {
				a.logger = initLogger(a.logSink, cfg.Log.Level)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Config file path (default: ./config.yaml, $HOME/.biz-days/config.yaml)")

	rootCmd.AddCommand(calcCmd(a))
	rootCmd.AddCommand(rateCmd(a))
	rootCmd.AddCommand(showCmd(a))
	rootCmd.AddCommand(monthCmd(a))
	rootCmd.AddCommand(usdBrlCmd(a))

	return rootCmd
}

// openSession builds a session over the configured store and rehydrates it.
// A store that cannot be read is logged and the session starts empty.
func (a *app) openSession() *session.Session {
	st := store.NewFileStore(a.fs, a.cfg.Store.Path, a.logger)
	calc := businesstime.NewCalculator(calendar.NewWeekdayCalendar())

	s := session.New(st, calc, a.logger)
	if err := s.Load(); err != nil {
		a.logger.Warn("Failed to rehydrate form state, starting empty",
			zap.String("path", a.cfg.Store.Path),
			zap.Error(err))
	}
	return s
}

func (a *app) ptaxClient() *ptax.Client {
	return ptax.NewClient(a.cfg.PTAX.Endpoint, a.cfg.PTAX.GetTimeout(), a.logger)
}

func initLogger(w io.Writer, level string) *zap.Logger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(w),
		parseLevel(level),
	)

	return zap.New(core)
}

func initFileLogger(logFile string, level string) *zap.Logger {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		parseLevel(level),
	)

	return zap.New(core)
}

func parseLevel(level string) zapcore.Level {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		return zapcore.InfoLevel
	}
	return zapLevel
}
