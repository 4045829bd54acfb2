package logs

import (
	"os"
	"sync"

	"go.uber.org/zap"
)

var (
	loggers = make(map[string]*zap.Logger)
	mu      sync.Mutex
)

// Get returns the named logger, creating it on first use. Loggers default
// to the development config; set COLORBOOK_ENV=production for JSON output.
func Get(name string) *zap.Logger {
	mu.Lock()
	defer mu.Unlock()

	if l, ok := loggers[name]; ok {
		return l
	}

	var logger *zap.Logger
	if os.Getenv("COLORBOOK_ENV") == "production" {
		logger = zap.Must(zap.NewProduction())
	} else {
		logger = zap.Must(zap.NewDevelopment())
	}
	logger = logger.Named(name)
	loggers[name] = logger
	return logger
}
