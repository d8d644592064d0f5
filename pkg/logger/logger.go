package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Log = zap.NewNop()

// Init builds the process-wide logger. Production emits JSON to stdout,
// anything else gets the development console encoder at debug level.
func Init(env string) *zap.Logger {
	var config zap.Config
	if env == "production" {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
	}
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.MessageKey = "message"
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}

	l, err := config.Build(zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	if err != nil {
		// Fallback to a basic logger if config fails
		l, _ = zap.NewProduction()
	}
	Log = l
	return l
}

// Named returns a child of the process logger, e.g. Named("usecase.skill")
func Named(name string) *zap.Logger {
	return Log.Named(name)
}

// Sync flushes buffered entries; errors from syncing stdout are ignored
func Sync() {
	_ = Log.Sync()
}
