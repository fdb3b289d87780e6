package logger

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const serviceName = "ayushyaa-be"

var log *zap.Logger

// Init builds the global logger for the given APP_ENV and LOG_LEVEL.
// An empty or unknown level keeps the environment default (info in
// production, debug elsewhere).
func Init(env, level string) {
	var cfg zap.Config

	if env == "production" {
		cfg = zap.NewProductionConfig()
		cfg.Encoding = "json"
		cfg.EncoderConfig.TimeKey = "timestamp"
		cfg.EncoderConfig.MessageKey = "message"
		cfg.EncoderConfig.LevelKey = "level"
		cfg.EncoderConfig.CallerKey = "caller"
		cfg.EncoderConfig.EncodeLevel = zapcore.LowercaseLevelEncoder
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		cfg.OutputPaths = []string{"stdout"}
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	if lvl, ok := parseLevel(level); ok {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	var err error
	log, err = cfg.Build(
		zap.AddCaller(),
		zap.AddCallerSkip(1),
		zap.Fields(zap.String("service", serviceName)),
	)
	if err != nil {
		panic(err)
	}
}

func parseLevel(level string) (zapcore.Level, bool) {
	level = strings.TrimSpace(level)
	if level == "" {
		return zapcore.InfoLevel, false
	}
	lvl, err := zapcore.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zapcore.InfoLevel, false
	}
	return lvl, true
}

// L returns the global logger, building it from the environment on first use.
func L() *zap.Logger {
	if log == nil {
		Init(os.Getenv("APP_ENV"), os.Getenv("LOG_LEVEL"))
	}
	return log
}

// Replace swaps the global logger and returns a func restoring the previous one.
// Tests use it to plug in an observer core.
func Replace(l *zap.Logger) func() {
	prev := log
	log = l
	return func() { log = prev }
}

// Sync flushes logs.
func Sync() {
	if log != nil {
		_ = log.Sync()
	}
}
