package dex

import "github.com/go-logr/logr"

var internalLogger = logr.Discard()

// SetInternalLogger sets the logger used while loading data. Logging is discarded until this is called.
func SetInternalLogger(logger logr.Logger) {
	internalLogger = logger.WithName("dex")
}
