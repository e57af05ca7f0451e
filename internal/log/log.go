// Package log holds the process-wide zap logger of the curb tools.
package log

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log *zap.SugaredLogger

// outputPaths are the zap sinks all logs go to.
var outputPaths = []string{"stderr"}

// config returns the zap configuration for the tools. Both variants write to
// outputPaths, stderr unless changed, so that stdout stays free for results.
// Debug mode logs at debug level in the console format.
func config(debug bool) zap.Config {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.OutputPaths = outputPaths
	cfg.ErrorOutputPaths = outputPaths
	return cfg
}

// Init initializes the package-level logger.
func Init(debug bool) error {
	zapLogger, err := config(debug).Build()
	if err != nil {
		return fmt.Errorf("can't initialize zap logger: %w", err)
	}
	log = zapLogger.Named("curb").Sugar()
	return nil
}

// GetSugaredLogger returns the logger set up by Init. Before Init, it sets up
// a production logger, or a no-op logger if that can't be built.
func GetSugaredLogger() *zap.SugaredLogger {
	if log == nil {
		if err := Init(false); err != nil {
			log = zap.NewNop().Sugar()
		}
	}
	return log
}

// Sync flushes any buffered log entries
func Sync() {
	if log != nil {
		_ = log.Sync()
	}
}
