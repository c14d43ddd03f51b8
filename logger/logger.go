package logger

import (
	"go.uber.org/zap"
)

// Init builds the application logger. Production gets JSON output at info
// level, everything else gets the human-readable development config.
func Init(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
