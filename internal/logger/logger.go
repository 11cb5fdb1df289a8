// Package logger builds the process zap logger.
package logger

import (
	"go.uber.org/zap"
)

// New returns a production JSON logger, or a human-readable development
// logger when development is true.
func New(development bool) (*zap.Logger, error) {
	if development {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
