package logger

import (
	"go.uber.org/zap"
)

// New builds a named zap logger for the given environment: human-readable
// output in development, JSON in anything else.
func New(env, name string) (*zap.Logger, error) {
	var cfg zap.Config
	if env == "development" {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	log, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return log.Named(name), nil
}
