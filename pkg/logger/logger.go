package logger

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu    sync.RWMutex
	log   *zap.Logger
	sugar *zap.SugaredLogger
)

// Init initializes the global logger.
// Environment can be "dev", "uat", or "prod"; anything but "dev" logs JSON.
func Init(service, env, level string) error {
	var cfg zap.Config

	if env == "dev" {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
	}

	if lvl, err := zapcore.ParseLevel(level); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	// stdout stays clean for CLI output
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	l, err := cfg.Build(zap.AddCaller(), zap.Fields(zap.String("service", service)))
	if err != nil {
		return err
	}

	Set(l)
	l.Debug("logger initialized",
		zap.String("env", env),
		zap.String("level", level),
	)
	return nil
}

// Set replaces the global logger. Tests use it to install zap.NewNop().
func Set(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	log = l
	sugar = l.Sugar()
}

// L returns the base structured Zap logger (for performance-sensitive paths).
func L() *zap.Logger {
	mu.RLock()
	l := log
	mu.RUnlock()
	if l == nil {
		if err := Init("unknown", "dev", "info"); err != nil {
			Set(zap.NewNop())
		}
		mu.RLock()
		l = log
		mu.RUnlock()
	}
	return l
}

// S returns the Sugared logger (for convenience).
func S() *zap.SugaredLogger {
	L()
	mu.RLock()
	defer mu.RUnlock()
	return sugar
}

// Sync flushes any buffered logs (defer this in main()).
func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	if log != nil {
		_ = log.Sync()
	}
}
