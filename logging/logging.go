// Package logging builds the zap logger for the configured environment.
package logging

import "go.uber.org/zap"

// New creates a new zap logger for the given environment. "production"
// returns the sampled JSON logger, "development" the verbose development
// logger, anything else the example logger used in tests and local runs.
func New(env string) (*zap.Logger, error) {
	switch env {
	case "production":
		return zap.NewProduction()
	case "development":
		return zap.NewDevelopment()
	default:
		return zap.NewExample(), nil
	}
}
