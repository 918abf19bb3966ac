package logging

import (
	"go.uber.org/zap"
)

// Logger is the global logger instance
var Logger = zap.NewNop()

// Setup builds the global logger. Debug mode uses zap's development config,
// otherwise the production (JSON) config is used.
func Setup(debug bool, appName, appVersion string) error {
	var cfg zap.Config

	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	// Add default fields
	cfg.InitialFields = map[string]interface{}{
		"appName":    appName,
		"appVersion": appVersion,
	}

	logger, err := cfg.Build()
	if err != nil {
		Logger = zap.NewExample()
		return err
	}

	Logger = logger
	zap.ReplaceGlobals(Logger)
	return nil
}
