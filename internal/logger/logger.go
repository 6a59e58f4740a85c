package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const serviceName = "product-categories"

var log *zap.Logger

// newConfig returns JSON output for production and colored console output
// for every other environment.
func newConfig(env string) zap.Config {
	if env != "production" {
		cfg := zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		return cfg
	}

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stdout"}
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.MessageKey = "message"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg
}

// Init builds the global logger for env. Every entry carries the service name.
func Init(env string) {
	l, err := newConfig(env).Build(zap.AddCaller())
	if err != nil {
		panic(err)
	}
	log = l.With(zap.String("service", serviceName))
}

// L returns the global logger, building it from APP_ENV on first use.
func L() *zap.Logger {
	if log == nil {
		Init(os.Getenv("APP_ENV"))
	}
	return log
}

func Sync() {
	if log != nil {
		_ = log.Sync()
	}
}

// Replace installs l as the global logger. The returned func puts the
// previous one back, which tests defer.
func Replace(l *zap.Logger) func() {
	prev := log
	log = l
	return func() { log = prev }
}
